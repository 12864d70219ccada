package command

// SetSleep puts the device in sleep mode.
//
// TX layout:
//
//	[OPCODE][SLEEP_CONFIG]
type SetSleep struct {
	TxBuf [2]byte
	RxBuf [2]byte
}

// NewSetSleep builds a SetSleep command from the packed sleep
// configuration.
func NewSetSleep(cfg SleepConfig) SetSleep {
	return SetSleep{TxBuf: [2]byte{OpSetSleep, cfg.Bits()}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetSleep) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// SleepConfig packs the SetSleep configuration byte. The datasheet numbers
// this register MSB-first: bits 7..3 are reserved, bit 2 selects warm
// start, bits 1..0 are reserved.
type SleepConfig struct {
	// WarmStart retains the device configuration in sleep so the next
	// wake-up skips the full calibration sequence.
	WarmStart bool
}

const sleepWarmStart = 1 << 2

// Bits packs the configuration into its wire byte. Reserved bits are
// forced to zero.
func (c SleepConfig) Bits() byte {
	var b byte
	if c.WarmStart {
		b |= sleepWarmStart
	}
	return b
}

// SleepConfigFrom unpacks a raw configuration byte. Reserved bits are
// ignored.
func SleepConfigFrom(value byte) SleepConfig {
	return SleepConfig{WarmStart: value&sleepWarmStart != 0}
}

// SetStandby puts the device in standby mode.
//
// TX layout:
//
//	[OPCODE][STDBY_CONFIG]
type SetStandby struct {
	TxBuf [2]byte
	RxBuf [2]byte
}

// NewSetStandby builds a SetStandby command.
func NewSetStandby(cfg StdbyConfig) SetStandby {
	return SetStandby{TxBuf: [2]byte{OpSetStandby, byte(cfg)}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetStandby) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// SetTx puts the device in transmit mode. The timeout is in 15.625 us
// steps; only the low 24 bits are encoded, 0 disables the timeout.
//
// TX layout:
//
//	[OPCODE][TIMEOUT_23:16][TIMEOUT_15:8][TIMEOUT_7:0]
type SetTx struct {
	TxBuf [4]byte
	RxBuf [4]byte
}

// NewSetTx builds a SetTx command. Timeout bits above 23 are truncated.
func NewSetTx(timeout uint32) SetTx {
	return SetTx{TxBuf: [4]byte{
		OpSetTx,
		byte(timeout >> 16),
		byte(timeout >> 8),
		byte(timeout),
	}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetTx) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// SetRx puts the device in receive mode. The timeout is in 15.625 us
// steps; 0 is single-shot, 0xFFFFFF is continuous.
//
// TX layout:
//
//	[OPCODE][TIMEOUT_23:16][TIMEOUT_15:8][TIMEOUT_7:0]
type SetRx struct {
	TxBuf [4]byte
	RxBuf [4]byte
}

// NewSetRx builds a SetRx command. Timeout bits above 23 are truncated.
func NewSetRx(timeout uint32) SetRx {
	return SetRx{TxBuf: [4]byte{
		OpSetRx,
		byte(timeout >> 16),
		byte(timeout >> 8),
		byte(timeout),
	}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetRx) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// SetPaConfig configures the power amplifier. The trailing two bytes
// select the SX1262 PA; the SX1261 low-power PA is not supported.
//
// TX layout:
//
//	[OPCODE][PA_DUTY_CYCLE][HP_MAX][DEVICE_SEL=0x00][PA_LUT=0x01]
type SetPaConfig struct {
	TxBuf [5]byte
	RxBuf [5]byte
}

// NewSetPaConfig builds a SetPaConfig command.
func NewSetPaConfig(paDutyCycle, hpMax byte) SetPaConfig {
	return SetPaConfig{TxBuf: [5]byte{OpSetPaConfig, paDutyCycle, hpMax, 0x00, 0x01}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetPaConfig) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// SetRfFrequency sets the RF frequency in PLL steps. Use PllSteps to
// convert from Hz.
//
// TX layout:
//
//	[OPCODE][FREQ_31:24][FREQ_23:16][FREQ_15:8][FREQ_7:0]
type SetRfFrequency struct {
	TxBuf [5]byte
	RxBuf [5]byte
}

// NewSetRfFrequency builds a SetRfFrequency command.
func NewSetRfFrequency(steps uint32) SetRfFrequency {
	return SetRfFrequency{TxBuf: [5]byte{
		OpSetRfFrequency,
		byte(steps >> 24),
		byte(steps >> 16),
		byte(steps >> 8),
		byte(steps),
	}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetRfFrequency) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// SetPacketType selects the packet engine. Must be the first
// configuration command after leaving sleep.
//
// TX layout:
//
//	[OPCODE][PACKET_TYPE]
type SetPacketType struct {
	TxBuf [2]byte
	RxBuf [2]byte
}

// NewSetPacketType builds a SetPacketType command.
func NewSetPacketType(t PacketType) SetPacketType {
	return SetPacketType{TxBuf: [2]byte{OpSetPacketType, byte(t)}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetPacketType) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// GetPacketType reads back the configured packet type.
//
// TX layout:
//
//	[OPCODE][NOP][NOP]
type GetPacketType struct {
	TxBuf [3]byte
	RxBuf [3]byte
}

// NewGetPacketType builds a GetPacketType command.
func NewGetPacketType() GetPacketType {
	return GetPacketType{TxBuf: [3]byte{OpGetPacketType, 0, 0}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *GetPacketType) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// PacketType decodes the packet type from the filled receive buffer.
func (c *GetPacketType) PacketType() PacketType {
	return PacketTypeFrom(c.RxBuf[2])
}

// SetTxParams sets the TX output power and PA ramp time. Power is in dBm,
// encoded as its two's-complement byte (-9..+22 for the SX1262).
//
// TX layout:
//
//	[OPCODE][POWER][RAMP_TIME]
type SetTxParams struct {
	TxBuf [3]byte
	RxBuf [3]byte
}

// NewSetTxParams builds a SetTxParams command.
func NewSetTxParams(power int8, rampTime RampTime) SetTxParams {
	return SetTxParams{TxBuf: [3]byte{OpSetTxParams, byte(power), byte(rampTime)}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetTxParams) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// SetModulationParamsLora configures the LoRa modulation parameters.
//
// TX layout:
//
//	[OPCODE][SF][BW][CR][LOW_DATA_RATE_OPTIMIZE]
type SetModulationParamsLora struct {
	TxBuf [5]byte
	RxBuf [5]byte
}

// NewSetModulationParamsLora builds a SetModulationParamsLora command.
func NewSetModulationParamsLora(sf Sf, bw Bw, cr Cr, lowDataRateOptimize bool) SetModulationParamsLora {
	return SetModulationParamsLora{TxBuf: [5]byte{
		OpSetModulationParams,
		byte(sf),
		byte(bw),
		byte(cr),
		boolByte(lowDataRateOptimize),
	}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetModulationParamsLora) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// SetPacketParams configures the LoRa packet handling block.
//
// TX layout:
//
//	[OPCODE][PREAMBLE_15:8][PREAMBLE_7:0][HEADER_TYPE][PAYLOAD_LEN][CRC_TYPE][INVERT_IQ]
type SetPacketParams struct {
	TxBuf [7]byte
	RxBuf [7]byte
}

// NewSetPacketParams builds a SetPacketParams command.
func NewSetPacketParams(preambleLength uint16, headerType HeaderType, payloadLength byte, crcOn bool, invertIq InvertIq) SetPacketParams {
	return SetPacketParams{TxBuf: [7]byte{
		OpSetPacketParams,
		byte(preambleLength >> 8),
		byte(preambleLength),
		byte(headerType),
		payloadLength,
		boolByte(crcOn),
		byte(invertIq),
	}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetPacketParams) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// SetBufferBaseAddress sets the base addresses of the TX and RX regions
// inside the 256-byte data buffer.
//
// TX layout:
//
//	[OPCODE][TX_BASE][RX_BASE]
type SetBufferBaseAddress struct {
	TxBuf [3]byte
	RxBuf [3]byte
}

// NewSetBufferBaseAddress builds a SetBufferBaseAddress command.
func NewSetBufferBaseAddress(txBase, rxBase byte) SetBufferBaseAddress {
	return SetBufferBaseAddress{TxBuf: [3]byte{OpSetBufferBaseAddress, txBase, rxBase}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetBufferBaseAddress) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// SetLoraSymbNumTimeout sets the number of symbols the modem uses to
// validate a successful reception.
//
// TX layout:
//
//	[OPCODE][SYMB_NUM]
type SetLoraSymbNumTimeout struct {
	TxBuf [2]byte
	RxBuf [2]byte
}

// NewSetLoraSymbNumTimeout builds a SetLoraSymbNumTimeout command.
func NewSetLoraSymbNumTimeout(symbNum byte) SetLoraSymbNumTimeout {
	return SetLoraSymbNumTimeout{TxBuf: [2]byte{OpSetLoraSymbNumTimeout, symbNum}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetLoraSymbNumTimeout) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// SetDio2AsRfSwitchCtrl configures DIO2 to drive an external RF switch.
//
// TX layout:
//
//	[OPCODE][ENABLE]
type SetDio2AsRfSwitchCtrl struct {
	TxBuf [2]byte
	RxBuf [2]byte
}

// NewSetDio2AsRfSwitchCtrl builds a SetDio2AsRfSwitchCtrl command.
func NewSetDio2AsRfSwitchCtrl(enable bool) SetDio2AsRfSwitchCtrl {
	return SetDio2AsRfSwitchCtrl{TxBuf: [2]byte{OpSetDio2AsRfSwitchCtrl, boolByte(enable)}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetDio2AsRfSwitchCtrl) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// SetDio3AsTcxoCtrl configures DIO3 to supply an external TCXO. The delay
// is the oscillator stabilization time in 15.625 us steps; only the low
// 24 bits are encoded.
//
// TX layout:
//
//	[OPCODE][TCXO_VOLTAGE][DELAY_23:16][DELAY_15:8][DELAY_7:0]
type SetDio3AsTcxoCtrl struct {
	TxBuf [5]byte
	RxBuf [5]byte
}

// NewSetDio3AsTcxoCtrl builds a SetDio3AsTcxoCtrl command. Delay bits
// above 23 are truncated.
func NewSetDio3AsTcxoCtrl(voltage TcxoVoltage, delay uint32) SetDio3AsTcxoCtrl {
	return SetDio3AsTcxoCtrl{TxBuf: [5]byte{
		OpSetDio3AsTcxoCtrl,
		byte(voltage),
		byte(delay >> 16),
		byte(delay >> 8),
		byte(delay),
	}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetDio3AsTcxoCtrl) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

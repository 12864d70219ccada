// Package register defines the SX126x registers reachable through the
// WriteRegister/ReadRegister commands.
//
// Each register is a value type carrying its one-byte content. The fixed
// 16-bit address and the byte codec hang off the type, so a register
// value is all a command constructor needs, and a zero value is enough to
// address a read. Most registers are plain bytes; RxGain maps its byte
// onto a closed setting enumeration.
package register

// Register is implemented by every register value type. FromBits is total
// over the byte domain; registers with an enumerated content map reserved
// codes onto a defined tag instead of failing, because the hardware is
// the source of truth for what it returns.
type Register[R any] interface {
	// Address is the fixed 16-bit register address.
	Address() uint16

	// Bits is the wire byte for the current value.
	Bits() byte

	// FromBits decodes a wire byte into a register value. The receiver
	// is only used for its type.
	FromBits(value byte) R
}

// LoraSyncWordMsb is the high byte of the LoRa sync word.
type LoraSyncWordMsb byte

func (LoraSyncWordMsb) Address() uint16 { return 0x0740 }

func (r LoraSyncWordMsb) Bits() byte { return byte(r) }

func (LoraSyncWordMsb) FromBits(value byte) LoraSyncWordMsb { return LoraSyncWordMsb(value) }

// LoraSyncWordLsb is the low byte of the LoRa sync word.
type LoraSyncWordLsb byte

func (LoraSyncWordLsb) Address() uint16 { return 0x0741 }

func (r LoraSyncWordLsb) Bits() byte { return byte(r) }

func (LoraSyncWordLsb) FromBits(value byte) LoraSyncWordLsb { return LoraSyncWordLsb(value) }

// RandomNumberGen0 is the first of four contiguous entropy registers.
// Read all four with a batched read to collect 32 random bits.
type RandomNumberGen0 byte

func (RandomNumberGen0) Address() uint16 { return 0x0819 }

func (r RandomNumberGen0) Bits() byte { return byte(r) }

func (RandomNumberGen0) FromBits(value byte) RandomNumberGen0 { return RandomNumberGen0(value) }

// RxGainSetting enumerates the defined RX gain register contents. Codes
// the datasheet does not define decode to RxGainUnknown.
type RxGainSetting byte

const (
	RxGainUnknown     RxGainSetting = 0x00
	RxGainPowerSaving RxGainSetting = 0x94
	RxGainBoosted     RxGainSetting = 0x96
)

// RxGain selects between power-saving and boosted RX gain.
type RxGain RxGainSetting

func (RxGain) Address() uint16 { return 0x08AC }

func (r RxGain) Bits() byte { return byte(r) }

func (RxGain) FromBits(value byte) RxGain {
	switch value {
	case byte(RxGainPowerSaving):
		return RxGain(RxGainPowerSaving)
	case byte(RxGainBoosted):
		return RxGain(RxGainBoosted)
	default:
		return RxGain(RxGainUnknown)
	}
}

// Setting returns the decoded gain setting.
func (r RxGain) Setting() RxGainSetting { return RxGainSetting(r) }

// RxGainRetention0 is the first RX gain retention register. Writing 0x01
// here, and the RxGain address into the other two retention registers,
// keeps the boosted gain setting across warm starts.
type RxGainRetention0 byte

func (RxGainRetention0) Address() uint16 { return 0x029F }

func (r RxGainRetention0) Bits() byte { return byte(r) }

func (RxGainRetention0) FromBits(value byte) RxGainRetention0 { return RxGainRetention0(value) }

// RxGainRetention1 is the second RX gain retention register.
type RxGainRetention1 byte

func (RxGainRetention1) Address() uint16 { return 0x02A0 }

func (r RxGainRetention1) Bits() byte { return byte(r) }

func (RxGainRetention1) FromBits(value byte) RxGainRetention1 { return RxGainRetention1(value) }

// RxGainRetention2 is the third RX gain retention register.
type RxGainRetention2 byte

func (RxGainRetention2) Address() uint16 { return 0x02A1 }

func (r RxGainRetention2) Bits() byte { return byte(r) }

func (RxGainRetention2) FromBits(value byte) RxGainRetention2 { return RxGainRetention2(value) }

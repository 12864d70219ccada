package command

// The RF PLL derives its frequency from the 32 MHz crystal through a
// 25-bit divider: f_RF = steps * fXosc / 2^25.
const (
	fXosc        = 32_000_000
	pllStepShift = 25
)

// PllSteps converts a frequency in Hz to the raw PLL step count
// SetRfFrequency encodes. 434 MHz converts to 455_081_984 steps.
func PllSteps(hz uint32) uint32 {
	return uint32((uint64(hz) << pllStepShift) / fXosc)
}

// Frequency converts a raw PLL step count back to Hz, truncating
// fractional steps.
func Frequency(steps uint32) uint32 {
	return uint32(uint64(steps) * fXosc >> pllStepShift)
}

package device

import (
	"fmt"

	"github.com/moffa90/go-sx126x/command"
)

// PayloadTooLargeError indicates a payload exceeding the radio's data
// buffer.
type PayloadTooLargeError struct {
	Size int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("payload of %d bytes exceeds the %d-byte data buffer",
		e.Size, command.PayloadCapacity)
}

// IrqTimeoutError indicates that an expected IRQ flag never fired within
// the configured window.
type IrqTimeoutError struct {
	// Op is the operation that was waiting
	Op string
}

func (e *IrqTimeoutError) Error() string {
	return fmt.Sprintf("%s: IRQ wait timed out", e.Op)
}

// CrcError indicates that the received packet failed its CRC check.
type CrcError struct{}

func (e *CrcError) Error() string {
	return "received packet failed CRC check"
}

// DeviceErrorsError indicates that the radio reported error flags, for
// example a failed calibration or a PLL lock failure.
type DeviceErrorsError struct {
	Errors command.OpError
}

func (e *DeviceErrorsError) Error() string {
	return fmt.Sprintf("device reported error flags 0x%04X", e.Errors.Bits())
}

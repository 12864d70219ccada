// Package device sequences SX126x commands over a transport to provide a
// high-level radio API.
//
// # Overview
//
// The command package only builds and decodes byte buffers; this package
// drives them: it waits for the radio's busy line, runs each command's
// descriptor through a Transport, decodes the results, and strings
// commands into the sequences the datasheet prescribes for
// configuration, transmission and reception.
//
// # Basic Usage
//
//	// User provides the hardware link (see the transport package for a
//	// periph.io SPI implementation).
//	dev := device.New(tr)
//
//	err := dev.Configure(ctx, device.RadioParams{
//	    FrequencyHz:     868_000_000,
//	    SpreadingFactor: command.Sf7,
//	    Bandwidth:       command.Bw125,
//	    CodingRate:      command.Cr4_5,
//	    PreambleLength:  8,
//	    CrcOn:           true,
//	    Power:           14,
//	    RampTime:        command.Ramp200us,
//	    PaDutyCycle:     0x04,
//	    HpMax:           0x07,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = dev.Transmit(ctx, []byte("hello"))
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	dev := device.New(tr,
//	    device.WithLogger(myLogger),
//	    device.WithSyncWord(device.SyncWordPublic),
//	    device.WithTcxo(command.TcxoV3_3, 5*time.Millisecond),
//	    device.WithDio2RfSwitch(true),
//	    device.WithIrqTimeout(10*time.Second),
//	)
//
// # Logging
//
// Integrate with any logging framework by implementing the Logger
// interface; when none is set the device is silent.
//
// # Context Support
//
// All operations take a context for cancellation. IRQ polling stops as
// soon as the context is done.
//
// # Error Handling
//
// The package provides structured error types:
//   - PayloadTooLargeError: payload exceeds the radio's data buffer
//   - IrqTimeoutError: an expected IRQ never fired
//   - CrcError: the received packet failed its CRC check
//   - DeviceErrorsError: the radio reported calibration or PLL errors
//
// # Hardware Independence
//
// This package does not implement hardware communication. Users provide
// a Transport for their platform; anything that can run a full-duplex
// byte exchange and observe the busy line works, including mocks for
// testing.
package device

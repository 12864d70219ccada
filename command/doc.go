// Package command builds and decodes the SPI command buffers of the
// Semtech SX126x radio transceiver family.
//
// # Protocol Overview
//
// The SX126x is controlled over a half-duplex SPI link. Every command is a
// single full-duplex transfer: the host clocks out an opcode byte followed
// by the command's parameter bytes, and the radio simultaneously clocks
// back a buffer of the same length. For "set" commands the returned bytes
// are don't-care; for "get" commands the trailing bytes carry the response
// payload.
//
//	TX: [OPCODE][PARAM...]
//	RX: [STATUS][STATUS/DATA...]
//
// # Command Values
//
// Each command is a plain value holding its transmit and receive buffers,
// fully built at construction time:
//
//	cmd := command.NewSetRfFrequency(455_081_984)
//	// cmd.TxBuf == [5]byte{0x86, 0x1B, 0x20, 0x00, 0x00}
//
// Constructors never fail and never allocate: out-of-range field values
// are masked to their declared bit width, matching what the hardware does
// with out-of-range register writes.
//
// # Descriptors
//
// Descriptor returns the view a transport layer needs to perform the
// transfer:
//
//	desc := cmd.Descriptor()
//	// clock out desc.Tx while filling desc.Rx
//
// The descriptor aliases the command's own buffers; see Descriptor for the
// validity rules.
//
// # Decoding Results
//
// After the transport has filled the receive buffer, typed accessors on
// the command value decode the result fields:
//
//	status := command.NewGetIrqStatus()
//	// ... transport runs status.Descriptor() ...
//	irq := status.IrqStatus()
//	if irq.RxDone { ... }
//
// Accessors are total over the byte domain: every raw value decodes to
// something, reserved codes included. There is no error path anywhere in
// this package.
//
// # Reference
//
// Semtech SX1261/2 Data Sheet DS.SX1261-2.W.APP, chapter 13
// (Operational Modes Commands).
package command

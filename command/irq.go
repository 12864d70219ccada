package command

// Irq is the 16-bit IRQ flag register, used both as a mask when routing
// interrupts and as the decoded status. The datasheet numbers these flags
// LSB-first.
type Irq struct {
	TxDone           bool
	RxDone           bool
	PreambleDetected bool
	SyncWordValid    bool
	HeaderValid      bool
	HeaderErr        bool
	CrcErr           bool
	CadDone          bool
	CadDetected      bool
	Timeout          bool
	LrFhssHop        bool
}

const (
	irqTxDone           = 1 << 0
	irqRxDone           = 1 << 1
	irqPreambleDetected = 1 << 2
	irqSyncWordValid    = 1 << 3
	irqHeaderValid      = 1 << 4
	irqHeaderErr        = 1 << 5
	irqCrcErr           = 1 << 6
	irqCadDone          = 1 << 7
	irqCadDetected      = 1 << 8
	irqTimeout          = 1 << 9
	// bits 10..13 reserved
	irqLrFhssHop = 1 << 14
	// bit 15 reserved
)

// Bits packs the flags into the wire representation. Reserved bits are
// forced to zero.
func (i Irq) Bits() uint16 {
	var v uint16
	if i.TxDone {
		v |= irqTxDone
	}
	if i.RxDone {
		v |= irqRxDone
	}
	if i.PreambleDetected {
		v |= irqPreambleDetected
	}
	if i.SyncWordValid {
		v |= irqSyncWordValid
	}
	if i.HeaderValid {
		v |= irqHeaderValid
	}
	if i.HeaderErr {
		v |= irqHeaderErr
	}
	if i.CrcErr {
		v |= irqCrcErr
	}
	if i.CadDone {
		v |= irqCadDone
	}
	if i.CadDetected {
		v |= irqCadDetected
	}
	if i.Timeout {
		v |= irqTimeout
	}
	if i.LrFhssHop {
		v |= irqLrFhssHop
	}
	return v
}

// IrqFrom unpacks a raw IRQ register value. Reserved bits are ignored.
func IrqFrom(value uint16) Irq {
	return Irq{
		TxDone:           value&irqTxDone != 0,
		RxDone:           value&irqRxDone != 0,
		PreambleDetected: value&irqPreambleDetected != 0,
		SyncWordValid:    value&irqSyncWordValid != 0,
		HeaderValid:      value&irqHeaderValid != 0,
		HeaderErr:        value&irqHeaderErr != 0,
		CrcErr:           value&irqCrcErr != 0,
		CadDone:          value&irqCadDone != 0,
		CadDetected:      value&irqCadDetected != 0,
		Timeout:          value&irqTimeout != 0,
		LrFhssHop:        value&irqLrFhssHop != 0,
	}
}

// None reports whether no flag is set.
func (i Irq) None() bool {
	return i.Bits() == 0
}

// SetDioIrqParams routes IRQ sources to the DIO pins. The global mask
// gates which sources can fire at all; the per-pin masks select which of
// them drive each pin. Each mask is serialized big-endian.
//
// TX layout:
//
//	[OPCODE][IRQ_MASK(2)][DIO1_MASK(2)][DIO2_MASK(2)][DIO3_MASK(2)]
type SetDioIrqParams struct {
	TxBuf [9]byte
	RxBuf [9]byte
}

// NewSetDioIrqParams builds a SetDioIrqParams command.
func NewSetDioIrqParams(irqMask, dio1Mask, dio2Mask, dio3Mask Irq) SetDioIrqParams {
	return SetDioIrqParams{TxBuf: [9]byte{
		OpSetDioIrqParams,
		byte(irqMask.Bits() >> 8),
		byte(irqMask.Bits()),
		byte(dio1Mask.Bits() >> 8),
		byte(dio1Mask.Bits()),
		byte(dio2Mask.Bits() >> 8),
		byte(dio2Mask.Bits()),
		byte(dio3Mask.Bits() >> 8),
		byte(dio3Mask.Bits()),
	}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *SetDioIrqParams) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// GetIrqStatus reads the IRQ register.
//
// TX layout:
//
//	[OPCODE][NOP][NOP][NOP]
type GetIrqStatus struct {
	TxBuf [4]byte
	RxBuf [4]byte
}

// NewGetIrqStatus builds a GetIrqStatus command.
func NewGetIrqStatus() GetIrqStatus {
	return GetIrqStatus{TxBuf: [4]byte{OpGetIrqStatus, 0, 0, 0}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *GetIrqStatus) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// IrqStatus decodes the IRQ flags from the filled receive buffer.
func (c *GetIrqStatus) IrqStatus() Irq {
	return IrqFrom(uint16(c.RxBuf[2])<<8 | uint16(c.RxBuf[3]))
}

// ClearIrqStatus clears the given flags in the IRQ register.
//
// TX layout:
//
//	[OPCODE][CLEAR_MASK_15:8][CLEAR_MASK_7:0]
type ClearIrqStatus struct {
	TxBuf [3]byte
	RxBuf [3]byte
}

// NewClearIrqStatus builds a ClearIrqStatus command.
func NewClearIrqStatus(clear Irq) ClearIrqStatus {
	return ClearIrqStatus{TxBuf: [3]byte{
		OpClearIrqStatus,
		byte(clear.Bits() >> 8),
		byte(clear.Bits()),
	}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *ClearIrqStatus) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

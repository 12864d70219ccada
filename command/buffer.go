package command

// PayloadCapacity is the size of the radio's data buffer. It bounds the
// payload a single buffer transfer can carry.
const PayloadCapacity = 256

// WriteBuffer stores payload bytes into the data buffer for
// transmission. The radio auto-increments the write address per byte and
// wraps from 255 back to 0; callers chaining writes must account for the
// wrap, the encoding itself does not.
//
// TX layout:
//
//	[OPCODE][OFFSET][DATA x dataLength]
//
// The command holds a full-capacity buffer; SetDataLength shrinks the
// declared transfer without touching buffer contents, so one value can be
// reused for transfers of varying size.
type WriteBuffer struct {
	TxBuf [2 + PayloadCapacity]byte
	RxBuf [2 + PayloadCapacity]byte

	dataLength uint16
}

// NewWriteBuffer builds a WriteBuffer command with the payload placed
// after the starting offset. Payloads longer than PayloadCapacity are
// truncated.
func NewWriteBuffer(offset byte, data []byte) WriteBuffer {
	c := WriteBuffer{}
	c.TxBuf[0] = OpWriteBuffer
	c.TxBuf[1] = offset
	c.dataLength = uint16(copy(c.TxBuf[2:], data))
	return c
}

// SetDataLength declares how many payload bytes the next transfer
// carries. Buffer contents are untouched; only the descriptor length
// changes. Lengths beyond PayloadCapacity are clamped.
func (c *WriteBuffer) SetDataLength(dataLength uint16) {
	if dataLength > PayloadCapacity {
		dataLength = PayloadCapacity
	}
	c.dataLength = dataLength
}

// Descriptor returns the transfer view over the command's buffers, sized
// to the current effective data length plus the 2-byte header.
func (c *WriteBuffer) Descriptor() Descriptor {
	n := c.dataLength + 2
	return Descriptor{Tx: c.TxBuf[:n], Rx: c.RxBuf[:n]}
}

// ReadBuffer reads received payload bytes starting at an offset in the
// data buffer. The read address auto-increments and wraps like the write
// address.
//
// TX layout:
//
//	[OPCODE][OFFSET][NOP][NOP x dataLength]
//
// The payload arrives in the receive buffer after the 3-byte header.
type ReadBuffer struct {
	TxBuf [3 + PayloadCapacity]byte
	RxBuf [3 + PayloadCapacity]byte

	dataLength uint16
}

// NewReadBuffer builds a ReadBuffer command reading dataLength bytes from
// the given offset. Lengths beyond PayloadCapacity are clamped.
func NewReadBuffer(offset byte, dataLength uint16) ReadBuffer {
	c := ReadBuffer{}
	c.TxBuf[0] = OpReadBuffer
	c.TxBuf[1] = offset
	if dataLength > PayloadCapacity {
		dataLength = PayloadCapacity
	}
	c.dataLength = dataLength
	return c
}

// SetDataLength declares how many payload bytes the next transfer
// carries. Buffer contents are untouched; only the descriptor length and
// the span Data returns change. Lengths beyond PayloadCapacity are
// clamped.
func (c *ReadBuffer) SetDataLength(dataLength uint16) {
	if dataLength > PayloadCapacity {
		dataLength = PayloadCapacity
	}
	c.dataLength = dataLength
}

// Descriptor returns the transfer view over the command's buffers, sized
// to the current effective data length plus the 3-byte header.
func (c *ReadBuffer) Descriptor() Descriptor {
	n := c.dataLength + 3
	return Descriptor{Tx: c.TxBuf[:n], Rx: c.RxBuf[:n]}
}

// Data returns the received payload bytes. The slice aliases the
// command's receive buffer.
func (c *ReadBuffer) Data() []byte {
	return c.RxBuf[3 : 3+c.dataLength]
}

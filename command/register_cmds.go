package command

import "github.com/moffa90/go-sx126x/register"

// registerBatchCap is the largest contiguous register run the batched
// commands can carry in one transfer.
const registerBatchCap = 8

// WriteRegister writes a single register.
//
// TX layout:
//
//	[OPCODE][ADDR_15:8][ADDR_7:0][VALUE]
type WriteRegister struct {
	TxBuf [4]byte
	RxBuf [4]byte
}

// NewWriteRegister builds a WriteRegister command carrying the given
// register value.
func NewWriteRegister[R register.Register[R]](reg R) WriteRegister {
	addr := reg.Address()
	return WriteRegister{TxBuf: [4]byte{
		OpWriteRegister,
		byte(addr >> 8),
		byte(addr),
		reg.Bits(),
	}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *WriteRegister) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// ReadRegister reads a single register. The type parameter selects the
// register; its address goes into the request and its codec decodes the
// response byte.
//
// TX layout:
//
//	[OPCODE][ADDR_15:8][ADDR_7:0][NOP][NOP]
//
// The register value arrives in the last receive byte.
type ReadRegister[R register.Register[R]] struct {
	TxBuf [5]byte
	RxBuf [5]byte
}

// NewReadRegister builds a ReadRegister command for register type R.
func NewReadRegister[R register.Register[R]]() ReadRegister[R] {
	var reg R
	addr := reg.Address()
	return ReadRegister[R]{TxBuf: [5]byte{
		OpReadRegister,
		byte(addr >> 8),
		byte(addr),
		0,
		0,
	}}
}

// Descriptor returns the transfer view over the command's buffers.
func (c *ReadRegister[R]) Descriptor() Descriptor {
	return Descriptor{Tx: c.TxBuf[:], Rx: c.RxBuf[:]}
}

// Register decodes the register value from the filled receive buffer.
func (c *ReadRegister[R]) Register() R {
	var reg R
	return reg.FromBits(c.RxBuf[4])
}

// WriteRegisters writes a run of contiguous registers starting at the
// address of register type R, relying on the radio's per-byte address
// auto-increment. Values beyond the batch capacity are dropped.
//
// TX layout:
//
//	[OPCODE][ADDR_15:8][ADDR_7:0][VALUE x count]
type WriteRegisters struct {
	TxBuf [3 + registerBatchCap]byte
	RxBuf [3 + registerBatchCap]byte

	count uint16
}

// NewWriteRegisters builds a WriteRegisters command starting at register
// type R with the given raw values.
func NewWriteRegisters[R register.Register[R]](values ...byte) WriteRegisters {
	var reg R
	addr := reg.Address()

	c := WriteRegisters{count: uint16(len(values))}
	if c.count > registerBatchCap {
		c.count = registerBatchCap
	}
	c.TxBuf[0] = OpWriteRegister
	c.TxBuf[1] = byte(addr >> 8)
	c.TxBuf[2] = byte(addr)
	copy(c.TxBuf[3:3+c.count], values)
	return c
}

// Descriptor returns the transfer view over the command's buffers, sized
// to the number of values carried.
func (c *WriteRegisters) Descriptor() Descriptor {
	n := 3 + c.count
	return Descriptor{Tx: c.TxBuf[:n], Rx: c.RxBuf[:n]}
}

// ReadRegisters reads a run of contiguous registers starting at the
// address of register type R. Counts beyond the batch capacity are
// clamped.
//
// TX layout:
//
//	[OPCODE][ADDR_15:8][ADDR_7:0][NOP][NOP x count]
//
// The register values arrive in the trailing count receive bytes.
type ReadRegisters[R register.Register[R]] struct {
	TxBuf [4 + registerBatchCap]byte
	RxBuf [4 + registerBatchCap]byte

	count uint16
}

// NewReadRegisters builds a ReadRegisters command for count registers
// starting at register type R.
func NewReadRegisters[R register.Register[R]](count int) ReadRegisters[R] {
	var reg R
	addr := reg.Address()

	c := ReadRegisters[R]{}
	if count > 0 {
		c.count = uint16(count)
	}
	if c.count > registerBatchCap {
		c.count = registerBatchCap
	}
	c.TxBuf[0] = OpReadRegister
	c.TxBuf[1] = byte(addr >> 8)
	c.TxBuf[2] = byte(addr)
	return c
}

// Descriptor returns the transfer view over the command's buffers, sized
// to the number of registers read.
func (c *ReadRegisters[R]) Descriptor() Descriptor {
	n := 4 + c.count
	return Descriptor{Tx: c.TxBuf[:n], Rx: c.RxBuf[:n]}
}

// Values returns the raw register bytes from the filled receive buffer.
// The slice aliases the command's receive buffer.
func (c *ReadRegisters[R]) Values() []byte {
	return c.RxBuf[4 : 4+c.count]
}

// First decodes the first register of the run through R's codec.
func (c *ReadRegisters[R]) First() R {
	var reg R
	return reg.FromBits(c.RxBuf[4])
}

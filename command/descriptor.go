package command

// Descriptor is the view of a command's buffers handed to a transport
// layer for the actual byte exchange. Tx holds the bytes to clock out and
// Rx the buffer the transport fills; both have exactly the transfer
// length.
//
// A Descriptor does not own its buffers. It aliases the command value it
// was taken from and is valid only while that value is alive and
// unmodified: after SetDataLength on a buffer command, or after copying
// the command value, a fresh descriptor must be fetched. The transmit
// bytes must stay stable between fetching the descriptor and running the
// transfer.
type Descriptor struct {
	Tx []byte
	Rx []byte
}

// TransferLength reports the number of bytes the transport must clock in
// each direction.
func (d Descriptor) TransferLength() uint16 {
	return uint16(len(d.Tx))
}

package device

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/moffa90/go-sx126x/command"
)

// mockTransport records every transmitted frame and fills receive
// buffers through per-opcode handlers.
type mockTransport struct {
	frames   [][]byte
	resets   int
	handlers map[byte]func(tx, rx []byte)
}

func newMockTransport() *mockTransport {
	return &mockTransport{handlers: make(map[byte]func(tx, rx []byte))}
}

func (m *mockTransport) Exchange(_ context.Context, desc command.Descriptor) error {
	frame := make([]byte, len(desc.Tx))
	copy(frame, desc.Tx)
	m.frames = append(m.frames, frame)
	if handler, ok := m.handlers[desc.Tx[0]]; ok {
		handler(desc.Tx, desc.Rx)
	}
	return nil
}

func (m *mockTransport) WaitBusy(context.Context) error { return nil }

func (m *mockTransport) Reset(context.Context) error {
	m.resets++
	return nil
}

// opcodes returns the first byte of every recorded frame.
func (m *mockTransport) opcodes() []byte {
	ops := make([]byte, len(m.frames))
	for i, frame := range m.frames {
		ops[i] = frame[0]
	}
	return ops
}

func testParams() RadioParams {
	return RadioParams{
		FrequencyHz:     868_000_000,
		SpreadingFactor: command.Sf7,
		Bandwidth:       command.Bw125,
		CodingRate:      command.Cr4_5,
		PreambleLength:  8,
		CrcOn:           true,
		Power:           14,
		RampTime:        command.Ramp200us,
		PaDutyCycle:     0x04,
		HpMax:           0x07,
	}
}

func TestConfigureSequence(t *testing.T) {
	tr := newMockTransport()
	dev := New(tr)

	if err := dev.Configure(context.Background(), testParams()); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	if tr.resets != 1 {
		t.Errorf("resets = %d, want 1", tr.resets)
	}

	wantOps := []byte{
		command.OpSetStandby,
		command.OpSetPacketType,
		command.OpSetRfFrequency,
		command.OpSetPaConfig,
		command.OpSetTxParams,
		command.OpSetBufferBaseAddress,
		command.OpSetModulationParams,
		command.OpSetPacketParams,
		command.OpWriteRegister,
		command.OpSetDioIrqParams,
		command.OpGetDeviceErrors,
	}
	if !bytes.Equal(tr.opcodes(), wantOps) {
		t.Errorf("opcode sequence = % X, want % X", tr.opcodes(), wantOps)
	}

	// Default sync word is the private network one.
	wantSync := []byte{command.OpWriteRegister, 0x07, 0x40, 0x14, 0x24}
	if !bytes.Equal(tr.frames[8], wantSync) {
		t.Errorf("sync word frame = % X, want % X", tr.frames[8], wantSync)
	}

	// 868 MHz in PLL steps, big-endian after the opcode.
	wantFreq := []byte{command.OpSetRfFrequency, 0x36, 0x40, 0x00, 0x00}
	if !bytes.Equal(tr.frames[2], wantFreq) {
		t.Errorf("frequency frame = % X, want % X", tr.frames[2], wantFreq)
	}
}

func TestConfigureWithTcxoAndRfSwitch(t *testing.T) {
	tr := newMockTransport()
	dev := New(tr,
		WithTcxo(command.TcxoV1_8, 5*time.Millisecond),
		WithDio2RfSwitch(true),
	)

	if err := dev.Configure(context.Background(), testParams()); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	// 5 ms is 320 steps of 15.625 us.
	wantTcxo := []byte{command.OpSetDio3AsTcxoCtrl, 0x02, 0x00, 0x01, 0x40}
	if !bytes.Equal(tr.frames[1], wantTcxo) {
		t.Errorf("tcxo frame = % X, want % X", tr.frames[1], wantTcxo)
	}

	wantSwitch := []byte{command.OpSetDio2AsRfSwitchCtrl, 0x01}
	if !bytes.Equal(tr.frames[2], wantSwitch) {
		t.Errorf("rf switch frame = % X, want % X", tr.frames[2], wantSwitch)
	}
}

func TestConfigureReportsDeviceErrors(t *testing.T) {
	tr := newMockTransport()
	tr.handlers[command.OpGetDeviceErrors] = func(_, rx []byte) {
		rx[3] = 0x40 // PLL lock failure
	}
	dev := New(tr)

	err := dev.Configure(context.Background(), testParams())
	var devErr *DeviceErrorsError
	if !errors.As(err, &devErr) {
		t.Fatalf("Configure error = %v, want DeviceErrorsError", err)
	}
	if !devErr.Errors.PllLockErr {
		t.Errorf("Errors = %+v, want PllLockErr set", devErr.Errors)
	}
}

func TestTransmit(t *testing.T) {
	tr := newMockTransport()
	tr.handlers[command.OpGetIrqStatus] = func(_, rx []byte) {
		rx[3] = 0x01 // TX done
	}
	dev := New(tr)
	if err := dev.Configure(context.Background(), testParams()); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	tr.frames = nil

	if err := dev.Transmit(context.Background(), []byte("hello")); err != nil {
		t.Fatalf("Transmit: %v", err)
	}

	wantOps := []byte{
		command.OpSetPacketParams,
		command.OpWriteBuffer,
		command.OpClearIrqStatus,
		command.OpSetTx,
		command.OpGetIrqStatus,
		command.OpClearIrqStatus,
	}
	if !bytes.Equal(tr.opcodes(), wantOps) {
		t.Errorf("opcode sequence = % X, want % X", tr.opcodes(), wantOps)
	}

	wantWrite := []byte{command.OpWriteBuffer, 0x00, 'h', 'e', 'l', 'l', 'o'}
	if !bytes.Equal(tr.frames[1], wantWrite) {
		t.Errorf("write buffer frame = % X, want % X", tr.frames[1], wantWrite)
	}

	// Immediate TX, no timeout.
	wantSetTx := []byte{command.OpSetTx, 0x00, 0x00, 0x00}
	if !bytes.Equal(tr.frames[3], wantSetTx) {
		t.Errorf("set tx frame = % X, want % X", tr.frames[3], wantSetTx)
	}
}

func TestTransmitIrqTimeout(t *testing.T) {
	tr := newMockTransport()
	dev := New(tr,
		WithPollInterval(time.Millisecond),
		WithIrqTimeout(10*time.Millisecond),
	)

	err := dev.Transmit(context.Background(), []byte("hello"))
	var timeoutErr *IrqTimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("Transmit error = %v, want IrqTimeoutError", err)
	}
	if timeoutErr.Op != "transmit" {
		t.Errorf("Op = %q, want %q", timeoutErr.Op, "transmit")
	}
}

func TestTransmitPayloadTooLarge(t *testing.T) {
	tr := newMockTransport()
	dev := New(tr)

	err := dev.Transmit(context.Background(), make([]byte, command.PayloadCapacity+1))
	var sizeErr *PayloadTooLargeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("Transmit error = %v, want PayloadTooLargeError", err)
	}
	if sizeErr.Size != command.PayloadCapacity+1 {
		t.Errorf("Size = %d, want %d", sizeErr.Size, command.PayloadCapacity+1)
	}
	if len(tr.frames) != 0 {
		t.Errorf("transport saw %d frames, want 0", len(tr.frames))
	}
}

func TestReceive(t *testing.T) {
	tr := newMockTransport()
	tr.handlers[command.OpGetIrqStatus] = func(_, rx []byte) {
		rx[3] = 0x02 // RX done
	}
	tr.handlers[command.OpGetRxBufferStatus] = func(_, rx []byte) {
		rx[2] = 5    // payload length
		rx[3] = 0x20 // start offset
	}
	tr.handlers[command.OpReadBuffer] = func(_, rx []byte) {
		copy(rx[3:], "hello")
	}
	dev := New(tr)

	payload, err := dev.Receive(context.Background())
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if !bytes.Equal(payload, []byte("hello")) {
		t.Errorf("payload = %q, want %q", payload, "hello")
	}

	wantOps := []byte{
		command.OpClearIrqStatus,
		command.OpSetRx,
		command.OpGetIrqStatus,
		command.OpGetRxBufferStatus,
		command.OpReadBuffer,
		command.OpClearIrqStatus,
	}
	if !bytes.Equal(tr.opcodes(), wantOps) {
		t.Errorf("opcode sequence = % X, want % X", tr.opcodes(), wantOps)
	}

	// Continuous RX.
	wantSetRx := []byte{command.OpSetRx, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(tr.frames[1], wantSetRx) {
		t.Errorf("set rx frame = % X, want % X", tr.frames[1], wantSetRx)
	}

	// Read starts at the reported offset and spans the reported length.
	wantRead := []byte{command.OpReadBuffer, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(tr.frames[4], wantRead) {
		t.Errorf("read buffer frame = % X, want % X", tr.frames[4], wantRead)
	}
}

func TestReceiveCrcError(t *testing.T) {
	tr := newMockTransport()
	tr.handlers[command.OpGetIrqStatus] = func(_, rx []byte) {
		rx[3] = 0x40 // CRC error
	}
	dev := New(tr)

	_, err := dev.Receive(context.Background())
	var crcErr *CrcError
	if !errors.As(err, &crcErr) {
		t.Fatalf("Receive error = %v, want CrcError", err)
	}
}

func TestReceiveContextCancel(t *testing.T) {
	tr := newMockTransport()
	dev := New(tr, WithIrqTimeout(time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := dev.Receive(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Receive error = %v, want context deadline", err)
	}
}

func TestPacketStatus(t *testing.T) {
	tr := newMockTransport()
	tr.handlers[command.OpGetPacketStatus] = func(_, rx []byte) {
		rx[2] = 184  // -92 dBm
		rx[3] = 0xFC // -1 dB
		rx[4] = 162  // -81 dBm
	}
	dev := New(tr)

	status, err := dev.PacketStatus(context.Background())
	if err != nil {
		t.Fatalf("PacketStatus: %v", err)
	}
	want := PacketStatus{Rssi: -92, Snr: -1, SignalRssi: -81}
	if status != want {
		t.Errorf("status = %+v, want %+v", status, want)
	}
}

func TestStats(t *testing.T) {
	tr := newMockTransport()
	tr.handlers[command.OpGetStats] = func(_, rx []byte) {
		rx[2], rx[3] = 0x01, 0x02 // 258 received
		rx[4], rx[5] = 0x00, 0x03 // 3 CRC errors
		rx[6], rx[7] = 0x00, 0x01 // 1 header error
	}
	dev := New(tr)

	stats, err := dev.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	want := Stats{Received: 258, CrcErrors: 3, HeaderErrs: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}

	if err := dev.ResetStats(context.Background()); err != nil {
		t.Fatalf("ResetStats: %v", err)
	}
	last := tr.frames[len(tr.frames)-1]
	if last[0] != command.OpResetStats {
		t.Errorf("last opcode = 0x%02X, want 0x%02X", last[0], command.OpResetStats)
	}
}

func TestRandom(t *testing.T) {
	tr := newMockTransport()
	tr.handlers[command.OpReadRegister] = func(_, rx []byte) {
		copy(rx[4:], []byte{0x12, 0x34, 0x56, 0x78})
	}
	dev := New(tr)

	value, err := dev.Random(context.Background())
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	if value != 0x12345678 {
		t.Errorf("value = 0x%08X, want 0x12345678", value)
	}

	// Four entropy bytes from the RNG register block.
	wantFrame := []byte{command.OpReadRegister, 0x08, 0x19, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(tr.frames[0], wantFrame) {
		t.Errorf("frame = % X, want % X", tr.frames[0], wantFrame)
	}
}

func TestSetBoostedRxGain(t *testing.T) {
	tr := newMockTransport()
	dev := New(tr)

	if err := dev.SetBoostedRxGain(context.Background(), true); err != nil {
		t.Fatalf("SetBoostedRxGain: %v", err)
	}

	wantFrames := [][]byte{
		{command.OpWriteRegister, 0x08, 0xAC, 0x96},
		{command.OpWriteRegister, 0x02, 0x9F, 0x01},
		{command.OpWriteRegister, 0x02, 0xA0, 0x08, 0xAC},
	}
	if len(tr.frames) != len(wantFrames) {
		t.Fatalf("got %d frames, want %d", len(tr.frames), len(wantFrames))
	}
	for i, want := range wantFrames {
		if !bytes.Equal(tr.frames[i], want) {
			t.Errorf("frame %d = % X, want % X", i, tr.frames[i], want)
		}
	}

	tr.frames = nil
	if err := dev.SetBoostedRxGain(context.Background(), false); err != nil {
		t.Fatalf("SetBoostedRxGain: %v", err)
	}
	wantGain := []byte{command.OpWriteRegister, 0x08, 0xAC, 0x94}
	if !bytes.Equal(tr.frames[0], wantGain) {
		t.Errorf("gain frame = % X, want % X", tr.frames[0], wantGain)
	}
}

func TestSleep(t *testing.T) {
	tr := newMockTransport()
	dev := New(tr)

	if err := dev.Sleep(context.Background(), true); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	want := []byte{command.OpSetSleep, 0x04}
	if !bytes.Equal(tr.frames[0], want) {
		t.Errorf("frame = % X, want % X", tr.frames[0], want)
	}
}

func TestNewNilTransportPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil transport")
		}
	}()
	New(nil)
}

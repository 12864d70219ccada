package device

import (
	"context"
	"fmt"
	"time"

	"github.com/moffa90/go-sx126x/command"
	"github.com/moffa90/go-sx126x/register"
)

// Transport runs the byte exchanges a Device asks for. Implementations
// own the physical link; the Device never touches hardware directly.
type Transport interface {
	// Exchange clocks desc.Tx out while filling desc.Rx. The buffers
	// alias the originating command and must not be retained.
	Exchange(ctx context.Context, desc command.Descriptor) error

	// WaitBusy blocks until the radio's busy line is released.
	WaitBusy(ctx context.Context) error

	// Reset pulses the radio's reset line and waits for it to come up.
	Reset(ctx context.Context) error
}

// timeout and TCXO delay fields count 15.625 us steps.
const stepNanos = 15_625

// rxContinuous keeps the receiver open until a packet arrives.
const rxContinuous = 0xFFFFFF

// RadioParams is the LoRa configuration applied by Configure.
type RadioParams struct {
	// FrequencyHz is the RF carrier frequency
	FrequencyHz uint32

	// SpreadingFactor, Bandwidth and CodingRate are the modulation
	// parameters
	SpreadingFactor command.Sf
	Bandwidth       command.Bw
	CodingRate      command.Cr

	// LowDataRateOptimize must be set for symbol times above 16 ms
	LowDataRateOptimize bool

	// PreambleLength is the preamble length in symbols
	PreambleLength uint16

	// HeaderType selects explicit or implicit headers
	HeaderType command.HeaderType

	// PayloadLength is the expected payload length for implicit
	// headers; Transmit overrides it per packet
	PayloadLength byte

	// CrcOn appends and checks a payload CRC
	CrcOn bool

	// InvertIq selects the IQ polarity
	InvertIq command.InvertIq

	// Power is the TX output power in dBm
	Power int8

	// RampTime is the PA ramp-up duration
	RampTime command.RampTime

	// PaDutyCycle and HpMax configure the power amplifier
	PaDutyCycle byte
	HpMax       byte
}

// PacketStatus is the signal quality of the last received packet.
type PacketStatus struct {
	// Rssi is the average packet RSSI in dBm
	Rssi int8

	// Snr is the packet SNR in dB
	Snr int8

	// SignalRssi is the RSSI of the despread signal in dBm
	SignalRssi int8
}

// Stats are the radio's packet reception counters.
type Stats struct {
	Received   uint16
	CrcErrors  uint16
	HeaderErrs uint16
}

// Device drives an SX126x radio over a Transport.
//
// A Device is not safe for concurrent use: the radio is a single
// half-duplex peripheral and each operation is a multi-command sequence.
type Device struct {
	transport Transport
	config    Config
	params    RadioParams
}

// New creates a Device over the given transport and options.
//
// Example:
//
//	tr, _ := transport.NewSPI("SPI0.0", "GPIO24", "GPIO17")
//	dev := device.New(tr, device.WithSyncWord(device.SyncWordPublic))
func New(transport Transport, opts ...Option) *Device {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Device{
		transport: transport,
		config:    cfg,
	}
}

// exchange waits for the busy line and runs one descriptor.
func (d *Device) exchange(ctx context.Context, desc command.Descriptor) error {
	if err := d.transport.WaitBusy(ctx); err != nil {
		return fmt.Errorf("wait busy: %w", err)
	}
	return d.transport.Exchange(ctx, desc)
}

// Configure resets the radio and applies the full LoRa configuration
// sequence: standby, oscillator and RF switch setup, packet type,
// frequency, PA and modulation parameters, sync word and IRQ routing.
// It returns a DeviceErrorsError if the radio reports error flags after
// the sequence.
func (d *Device) Configure(ctx context.Context, params RadioParams) error {
	if err := d.transport.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	standby := command.NewSetStandby(command.StdbyRc)
	if err := d.exchange(ctx, standby.Descriptor()); err != nil {
		return fmt.Errorf("set standby: %w", err)
	}

	if d.config.TcxoEnabled {
		steps := uint32(d.config.TcxoDelay.Nanoseconds() / stepNanos)
		tcxo := command.NewSetDio3AsTcxoCtrl(d.config.TcxoVoltage, steps)
		if err := d.exchange(ctx, tcxo.Descriptor()); err != nil {
			return fmt.Errorf("set tcxo ctrl: %w", err)
		}
	}

	if d.config.Dio2RfSwitch {
		rfSwitch := command.NewSetDio2AsRfSwitchCtrl(true)
		if err := d.exchange(ctx, rfSwitch.Descriptor()); err != nil {
			return fmt.Errorf("set rf switch ctrl: %w", err)
		}
	}

	packetType := command.NewSetPacketType(command.PacketTypeLora)
	if err := d.exchange(ctx, packetType.Descriptor()); err != nil {
		return fmt.Errorf("set packet type: %w", err)
	}

	frequency := command.NewSetRfFrequency(command.PllSteps(params.FrequencyHz))
	if err := d.exchange(ctx, frequency.Descriptor()); err != nil {
		return fmt.Errorf("set rf frequency: %w", err)
	}

	paConfig := command.NewSetPaConfig(params.PaDutyCycle, params.HpMax)
	if err := d.exchange(ctx, paConfig.Descriptor()); err != nil {
		return fmt.Errorf("set pa config: %w", err)
	}

	txParams := command.NewSetTxParams(params.Power, params.RampTime)
	if err := d.exchange(ctx, txParams.Descriptor()); err != nil {
		return fmt.Errorf("set tx params: %w", err)
	}

	baseAddr := command.NewSetBufferBaseAddress(0, 0)
	if err := d.exchange(ctx, baseAddr.Descriptor()); err != nil {
		return fmt.Errorf("set buffer base address: %w", err)
	}

	modParams := command.NewSetModulationParamsLora(
		params.SpreadingFactor,
		params.Bandwidth,
		params.CodingRate,
		params.LowDataRateOptimize,
	)
	if err := d.exchange(ctx, modParams.Descriptor()); err != nil {
		return fmt.Errorf("set modulation params: %w", err)
	}

	if err := d.applyPacketParams(ctx, params); err != nil {
		return err
	}

	syncWord := command.NewWriteRegisters[register.LoraSyncWordMsb](
		byte(d.config.SyncWord>>8),
		byte(d.config.SyncWord),
	)
	if err := d.exchange(ctx, syncWord.Descriptor()); err != nil {
		return fmt.Errorf("write sync word: %w", err)
	}

	allIrqs := command.Irq{
		TxDone: true, RxDone: true, Timeout: true,
		HeaderErr: true, CrcErr: true,
	}
	dioIrq := command.NewSetDioIrqParams(allIrqs, allIrqs, command.Irq{}, command.Irq{})
	if err := d.exchange(ctx, dioIrq.Descriptor()); err != nil {
		return fmt.Errorf("set dio irq params: %w", err)
	}

	opErr, err := d.DeviceErrors(ctx)
	if err != nil {
		return err
	}
	if !opErr.None() {
		return &DeviceErrorsError{Errors: opErr}
	}

	d.params = params
	d.logInfo("radio configured",
		"frequency_hz", params.FrequencyHz,
		"sf", params.SpreadingFactor,
		"bw", params.Bandwidth,
	)
	return nil
}

// applyPacketParams pushes the packet handling configuration.
func (d *Device) applyPacketParams(ctx context.Context, params RadioParams) error {
	packetParams := command.NewSetPacketParams(
		params.PreambleLength,
		params.HeaderType,
		params.PayloadLength,
		params.CrcOn,
		params.InvertIq,
	)
	if err := d.exchange(ctx, packetParams.Descriptor()); err != nil {
		return fmt.Errorf("set packet params: %w", err)
	}
	return nil
}

// Transmit writes the payload into the data buffer, starts the
// transmitter and waits for the TX done IRQ.
func (d *Device) Transmit(ctx context.Context, payload []byte) error {
	if len(payload) > command.PayloadCapacity {
		return &PayloadTooLargeError{Size: len(payload)}
	}

	d.params.PayloadLength = byte(len(payload))
	if err := d.applyPacketParams(ctx, d.params); err != nil {
		return err
	}

	writeBuffer := command.NewWriteBuffer(0, payload)
	if err := d.exchange(ctx, writeBuffer.Descriptor()); err != nil {
		return fmt.Errorf("write buffer: %w", err)
	}

	if err := d.clearIrqs(ctx); err != nil {
		return err
	}

	setTx := command.NewSetTx(0)
	if err := d.exchange(ctx, setTx.Descriptor()); err != nil {
		return fmt.Errorf("set tx: %w", err)
	}

	irq, err := d.waitIrq(ctx, "transmit", func(irq command.Irq) bool {
		return irq.TxDone || irq.Timeout
	})
	if err != nil {
		return err
	}
	if irq.Timeout {
		return &IrqTimeoutError{Op: "transmit"}
	}

	if err := d.clearIrqs(ctx); err != nil {
		return err
	}

	d.logDebug("transmitted", "bytes", len(payload))
	return nil
}

// Receive opens the receiver and blocks until a packet arrives, the IRQ
// window expires or the context is cancelled. The returned slice is a
// copy of the payload.
func (d *Device) Receive(ctx context.Context) ([]byte, error) {
	if err := d.clearIrqs(ctx); err != nil {
		return nil, err
	}

	setRx := command.NewSetRx(rxContinuous)
	if err := d.exchange(ctx, setRx.Descriptor()); err != nil {
		return nil, fmt.Errorf("set rx: %w", err)
	}

	irq, err := d.waitIrq(ctx, "receive", func(irq command.Irq) bool {
		return irq.RxDone || irq.Timeout || irq.CrcErr
	})
	if err != nil {
		return nil, err
	}
	if irq.Timeout {
		return nil, &IrqTimeoutError{Op: "receive"}
	}
	if irq.CrcErr {
		return nil, &CrcError{}
	}

	bufferStatus := command.NewGetRxBufferStatus()
	if err := d.exchange(ctx, bufferStatus.Descriptor()); err != nil {
		return nil, fmt.Errorf("get rx buffer status: %w", err)
	}
	length := bufferStatus.PayloadLengthRx()
	offset := bufferStatus.RxStartBufferPointer()

	readBuffer := command.NewReadBuffer(offset, uint16(length))
	if err := d.exchange(ctx, readBuffer.Descriptor()); err != nil {
		return nil, fmt.Errorf("read buffer: %w", err)
	}

	if err := d.clearIrqs(ctx); err != nil {
		return nil, err
	}

	payload := make([]byte, length)
	copy(payload, readBuffer.Data())
	d.logDebug("received", "bytes", length, "offset", offset)
	return payload, nil
}

// PacketStatus reads the signal quality of the last received packet.
func (d *Device) PacketStatus(ctx context.Context) (PacketStatus, error) {
	cmd := command.NewGetPacketStatusLora()
	if err := d.exchange(ctx, cmd.Descriptor()); err != nil {
		return PacketStatus{}, fmt.Errorf("get packet status: %w", err)
	}
	return PacketStatus{
		Rssi:       cmd.RssiPkt(),
		Snr:        cmd.SnrPkt(),
		SignalRssi: cmd.SignalRssiPkt(),
	}, nil
}

// Stats reads the packet reception counters.
func (d *Device) Stats(ctx context.Context) (Stats, error) {
	cmd := command.NewGetStatsLora()
	if err := d.exchange(ctx, cmd.Descriptor()); err != nil {
		return Stats{}, fmt.Errorf("get stats: %w", err)
	}
	return Stats{
		Received:   cmd.NbPktReceived(),
		CrcErrors:  cmd.NbPktCrcError(),
		HeaderErrs: cmd.NbPktHeaderErr(),
	}, nil
}

// ResetStats resets the packet reception counters.
func (d *Device) ResetStats(ctx context.Context) error {
	cmd := command.NewResetStats()
	if err := d.exchange(ctx, cmd.Descriptor()); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	return nil
}

// DeviceErrors reads the radio's error flags.
func (d *Device) DeviceErrors(ctx context.Context) (command.OpError, error) {
	cmd := command.NewGetDeviceErrors()
	if err := d.exchange(ctx, cmd.Descriptor()); err != nil {
		return command.OpError{}, fmt.Errorf("get device errors: %w", err)
	}
	return cmd.OpError(), nil
}

// ClearDeviceErrors clears the radio's error flags.
func (d *Device) ClearDeviceErrors(ctx context.Context) error {
	cmd := command.NewClearDeviceErrors()
	if err := d.exchange(ctx, cmd.Descriptor()); err != nil {
		return fmt.Errorf("clear device errors: %w", err)
	}
	return nil
}

// Random collects 32 bits of entropy from the radio's RNG registers.
func (d *Device) Random(ctx context.Context) (uint32, error) {
	cmd := command.NewReadRegisters[register.RandomNumberGen0](4)
	if err := d.exchange(ctx, cmd.Descriptor()); err != nil {
		return 0, fmt.Errorf("read rng registers: %w", err)
	}
	values := cmd.Values()
	return uint32(values[0])<<24 | uint32(values[1])<<16 |
		uint32(values[2])<<8 | uint32(values[3]), nil
}

// SetBoostedRxGain switches the receiver between boosted and
// power-saving gain, and programs the retention registers so the setting
// survives warm starts.
func (d *Device) SetBoostedRxGain(ctx context.Context, boosted bool) error {
	setting := register.RxGainPowerSaving
	if boosted {
		setting = register.RxGainBoosted
	}

	gain := command.NewWriteRegister(register.RxGain(setting))
	if err := d.exchange(ctx, gain.Descriptor()); err != nil {
		return fmt.Errorf("write rx gain: %w", err)
	}

	retention0 := command.NewWriteRegister(register.RxGainRetention0(0x01))
	if err := d.exchange(ctx, retention0.Descriptor()); err != nil {
		return fmt.Errorf("write rx gain retention: %w", err)
	}

	gainAddr := register.RxGain(0).Address()
	retention12 := command.NewWriteRegisters[register.RxGainRetention1](
		byte(gainAddr>>8),
		byte(gainAddr),
	)
	if err := d.exchange(ctx, retention12.Descriptor()); err != nil {
		return fmt.Errorf("write rx gain retention: %w", err)
	}
	return nil
}

// Sleep puts the radio to sleep. With warm start the configuration is
// retained and the next wake-up skips calibration.
func (d *Device) Sleep(ctx context.Context, warmStart bool) error {
	cmd := command.NewSetSleep(command.SleepConfig{WarmStart: warmStart})
	if err := d.exchange(ctx, cmd.Descriptor()); err != nil {
		return fmt.Errorf("set sleep: %w", err)
	}
	return nil
}

// clearIrqs clears every IRQ flag.
func (d *Device) clearIrqs(ctx context.Context) error {
	cmd := command.NewClearIrqStatus(command.IrqFrom(0xFFFF))
	if err := d.exchange(ctx, cmd.Descriptor()); err != nil {
		return fmt.Errorf("clear irq status: %w", err)
	}
	return nil
}

// waitIrq polls the IRQ register until match reports done, the context
// is cancelled or the configured window expires.
func (d *Device) waitIrq(ctx context.Context, op string, match func(command.Irq) bool) (command.Irq, error) {
	deadline := time.Now().Add(d.config.IrqTimeout)
	for {
		status := command.NewGetIrqStatus()
		if err := d.exchange(ctx, status.Descriptor()); err != nil {
			return command.Irq{}, fmt.Errorf("get irq status: %w", err)
		}
		irq := status.IrqStatus()
		if match(irq) {
			return irq, nil
		}

		if time.Now().After(deadline) {
			return command.Irq{}, &IrqTimeoutError{Op: op}
		}

		select {
		case <-ctx.Done():
			return command.Irq{}, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(d.config.PollInterval):
		}
	}
}

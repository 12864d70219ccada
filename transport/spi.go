// Package transport provides a periph.io SPI transport for SX126x
// radios on Linux hosts.
//
// # Overview
//
// The SX126x speaks a full-duplex command protocol over SPI mode 0 and
// signals readiness through a dedicated BUSY line. This package opens
// the SPI port and the BUSY and RESET GPIO pins through periph.io and
// implements the device.Transport interface over them.
//
// # Basic Usage
//
//	tr, err := transport.NewSPI("SPI0.0", "GPIO24", "GPIO17")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tr.Close()
//
//	dev := device.New(tr)
package transport

import (
	"context"
	"fmt"
	"time"

	"periph.io/x/conn/v3/driver/driverreg"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/moffa90/go-sx126x/command"
)

const (
	// spiSpeed is the SPI clock rate. The radio tolerates up to 16 MHz.
	spiSpeed = 8 * physic.MegaHertz

	// busyPollInterval is the delay between BUSY line samples.
	busyPollInterval = 100 * time.Microsecond

	// resetPulse is how long the RESET line is held low. The datasheet
	// asks for at least 100 us.
	resetPulse = time.Millisecond

	// resetSettle is the wait after releasing RESET before the radio
	// accepts commands.
	resetSettle = 10 * time.Millisecond
)

// SPI drives an SX126x over a periph.io SPI port and its BUSY and RESET
// GPIO pins. It implements the device.Transport interface.
type SPI struct {
	port  spi.PortCloser
	conn  spi.Conn
	busy  gpio.PinIO
	reset gpio.PinIO
}

// NewSPI opens the named SPI port and GPIO pins. Names follow periph.io
// conventions, for example "SPI0.0", "GPIO24" and "GPIO17" on a
// Raspberry Pi.
func NewSPI(spiPort, busyPin, resetPin string) (*SPI, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	if _, err := driverreg.Init(); err != nil {
		return nil, fmt.Errorf("driver init: %w", err)
	}

	port, err := spireg.Open(spiPort)
	if err != nil {
		return nil, fmt.Errorf("open SPI port %q: %w", spiPort, err)
	}

	conn, err := port.Connect(spiSpeed, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("connect SPI port %q: %w", spiPort, err)
	}

	busy := gpioreg.ByName(busyPin)
	if busy == nil {
		port.Close()
		return nil, fmt.Errorf("busy pin %q not found", busyPin)
	}
	if err := busy.In(gpio.PullDown, gpio.NoEdge); err != nil {
		port.Close()
		return nil, fmt.Errorf("configure busy pin %q: %w", busyPin, err)
	}

	reset := gpioreg.ByName(resetPin)
	if reset == nil {
		port.Close()
		return nil, fmt.Errorf("reset pin %q not found", resetPin)
	}
	if err := reset.Out(gpio.High); err != nil {
		port.Close()
		return nil, fmt.Errorf("configure reset pin %q: %w", resetPin, err)
	}

	return &SPI{
		port:  port,
		conn:  conn,
		busy:  busy,
		reset: reset,
	}, nil
}

// Exchange clocks the descriptor's transmit bytes out while filling its
// receive bytes.
func (s *SPI) Exchange(_ context.Context, desc command.Descriptor) error {
	if err := s.conn.Tx(desc.Tx, desc.Rx); err != nil {
		return fmt.Errorf("SPI transfer of %d bytes: %w", desc.TransferLength(), err)
	}
	return nil
}

// WaitBusy polls the BUSY line until the radio releases it or the
// context is cancelled.
func (s *SPI) WaitBusy(ctx context.Context) error {
	for s.busy.Read() == gpio.High {
		select {
		case <-ctx.Done():
			return fmt.Errorf("busy line: %w", ctx.Err())
		case <-time.After(busyPollInterval):
		}
	}
	return nil
}

// Reset pulses the RESET line low and waits for the radio to come back
// up.
func (s *SPI) Reset(ctx context.Context) error {
	if err := s.reset.Out(gpio.Low); err != nil {
		return fmt.Errorf("assert reset: %w", err)
	}
	time.Sleep(resetPulse)
	if err := s.reset.Out(gpio.High); err != nil {
		return fmt.Errorf("release reset: %w", err)
	}
	time.Sleep(resetSettle)
	return s.WaitBusy(ctx)
}

// Close releases the SPI port. GPIO pins need no teardown.
func (s *SPI) Close() error {
	return s.port.Close()
}

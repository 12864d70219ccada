package device

import (
	"time"

	"github.com/moffa90/go-sx126x/command"
)

// LoRa sync words. Networks on different sync words do not hear each
// other.
const (
	// SyncWordPrivate is the sync word for private networks
	SyncWordPrivate uint16 = 0x1424

	// SyncWordPublic is the sync word for public networks (LoRaWAN)
	SyncWordPublic uint16 = 0x3444
)

// Config holds the device configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// PollInterval is the delay between IRQ register polls
	PollInterval time.Duration

	// IrqTimeout bounds how long an operation waits for its IRQ
	IrqTimeout time.Duration

	// SyncWord is the LoRa sync word written during Configure
	SyncWord uint16

	// TcxoEnabled selects DIO3-controlled TCXO supply
	TcxoEnabled bool

	// TcxoVoltage is the supply voltage DIO3 drives
	TcxoVoltage command.TcxoVoltage

	// TcxoDelay is the oscillator stabilization time
	TcxoDelay time.Duration

	// Dio2RfSwitch makes DIO2 drive an external RF switch
	Dio2RfSwitch bool
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		PollInterval: time.Millisecond,
		IrqTimeout:   5 * time.Second,
		SyncWord:     SyncWordPrivate,
	}
}

// Option is a functional option for configuring the Device.
type Option func(*Config)

// WithLogger sets a logger for device operations.
//
// Example:
//
//	dev := device.New(tr, device.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithPollInterval sets the delay between IRQ register polls.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval > 0 {
			c.PollInterval = interval
		}
	}
}

// WithIrqTimeout bounds how long operations wait for their completion
// IRQ.
func WithIrqTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.IrqTimeout = timeout
		}
	}
}

// WithSyncWord sets the LoRa sync word written during Configure.
//
// Example:
//
//	dev := device.New(tr, device.WithSyncWord(device.SyncWordPublic))
func WithSyncWord(syncWord uint16) Option {
	return func(c *Config) {
		c.SyncWord = syncWord
	}
}

// WithTcxo configures DIO3 to supply an external TCXO at the given
// voltage, waiting the given stabilization delay after power-up.
func WithTcxo(voltage command.TcxoVoltage, delay time.Duration) Option {
	return func(c *Config) {
		c.TcxoEnabled = true
		c.TcxoVoltage = voltage
		c.TcxoDelay = delay
	}
}

// WithDio2RfSwitch makes DIO2 drive an external RF switch.
func WithDio2RfSwitch(enable bool) Option {
	return func(c *Config) {
		c.Dio2RfSwitch = enable
	}
}

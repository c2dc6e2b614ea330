package explode

import (
	"errors"
)

// Default values for the explode functions.
const (
	// DefaultMaxDims is the cap used when a row does not name one.
	DefaultMaxDims = 3

	// DefaultTagged selects the tagged variant.
	DefaultTagged = true

	// DefaultGlobal emits the global XUnit for every row.
	DefaultGlobal = true
)

// Config represents the configuration of the explode functions run outside
// the host engine.
type Config struct {
	// MaxDims is the default dimension cap of the tagged variant. Zero
	// disables the cap.
	MaxDims int `toml:"max-dims"`

	// Tagged selects the tagged variant instead of the untagged one.
	Tagged bool `toml:"tagged"`

	// Global controls whether the tagged variant emits the global XUnit.
	Global bool `toml:"global"`
}

// NewConfig returns a new instance of Config with defaults.
func NewConfig() Config {
	return Config{
		MaxDims: DefaultMaxDims,
		Tagged:  DefaultTagged,
		Global:  DefaultGlobal,
	}
}

// Validate returns an error if the Config is invalid.
func (c Config) Validate() error {
	if c.MaxDims < 0 {
		return errors.New("max-dims must not be negative")
	}
	return nil
}

// Options returns the tagged options for the config.
func (c Config) Options() Options {
	return Options{MaxDims: c.MaxDims, Global: c.Global}
}

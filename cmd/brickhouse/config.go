package main

import (
	"github.com/BurntSushi/toml"
	"github.com/klout/brickhouse/explode"
	"github.com/klout/brickhouse/logger"
	"github.com/pkg/errors"
)

// Config represents the configuration format for the brickhouse command.
type Config struct {
	Explode explode.Config `toml:"explode"`
	Logging logger.Config  `toml:"logging"`
}

// NewConfig returns an instance of Config with reasonable defaults.
func NewConfig() Config {
	return Config{
		Explode: explode.NewConfig(),
		Logging: logger.NewConfig(),
	}
}

// ParseConfig returns the defaults overridden by the TOML file at path. An
// empty path returns the defaults.
func ParseConfig(path string) (Config, error) {
	c := NewConfig()
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	return c, nil
}

// Validate returns an error if the config is invalid.
func (c Config) Validate() error {
	if err := c.Explode.Validate(); err != nil {
		return errors.Wrap(err, "explode")
	}
	return nil
}

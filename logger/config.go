package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the logging section of the configuration file.
type Config struct {
	Format string        `toml:"format"`
	Level  zapcore.Level `toml:"level"`
}

// NewConfig returns a new instance of Config with defaults.
func NewConfig() Config {
	return Config{
		Format: "auto",
		Level:  zapcore.InfoLevel,
	}
}

// New builds a logger writing to w with the configured format and level.
// "auto" and "console" use the console encoder; "json" uses the JSON encoder.
func (c Config) New(w io.Writer) (*zap.Logger, error) {
	config := newEncoderConfig()
	var encoder zapcore.Encoder
	switch c.Format {
	case "auto", "console", "":
		encoder = zapcore.NewConsoleEncoder(config)
	case "json":
		encoder = zapcore.NewJSONEncoder(config)
	default:
		return nil, fmt.Errorf("unknown log format: %q", c.Format)
	}
	return zap.New(zapcore.NewCore(
		encoder,
		zapcore.Lock(zapcore.AddSync(w)),
		c.Level,
	)), nil
}

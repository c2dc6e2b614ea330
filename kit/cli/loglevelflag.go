package cli

import (
	"fmt"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// levelFlag adapts a zapcore.Level to pflag.Value.
type levelFlag struct {
	level *zapcore.Level
}

func (f levelFlag) String() string {
	if f.level == nil {
		return zapcore.InfoLevel.String()
	}
	return f.level.String()
}

func (f levelFlag) Set(s string) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("unknown log level %q; supported levels are debug, info, warn, error", s)
	}
	*f.level = level
	return nil
}

func (levelFlag) Type() string {
	return "level"
}

// LevelVarP defines a zapcore.Level flag stored in p, starting at value. An
// empty shorthand means the flag has none.
func LevelVarP(fs *pflag.FlagSet, p *zapcore.Level, name, shorthand string, value zapcore.Level, usage string) {
	*p = value
	fs.VarP(levelFlag{level: p}, name, shorthand, usage)
}

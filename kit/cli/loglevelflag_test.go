package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLevelVarP(t *testing.T) {
	var level zapcore.Level
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	LevelVarP(fs, &level, "log-level", "l", zapcore.WarnLevel, "log level")
	require.Equal(t, zapcore.WarnLevel, level)
	require.Equal(t, "warn", fs.Lookup("log-level").DefValue)

	require.NoError(t, fs.Parse([]string{"-l", "debug"}))
	require.Equal(t, zapcore.DebugLevel, level)

	err := fs.Parse([]string{"--log-level=verbose"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown log level "verbose"`)
}

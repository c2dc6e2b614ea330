// Command brickhouse runs the xunit functions over JSON line files outside
// the query engine.
package main

import (
	"io"
	"os"

	"github.com/klout/brickhouse/kit/cli"
	"github.com/klout/brickhouse/logger"
	"github.com/klout/brickhouse/udf"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cmd, err := NewCommand().Root(viper.New())
	if err != nil {
		logger.New(os.Stderr).Fatal("Failed to build command", zap.Error(err))
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Command represents the program execution for "brickhouse".
type Command struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	v          *viper.Viper
	configPath string
	logLevel   zapcore.Level
}

// NewCommand returns a new instance of Command.
func NewCommand() *Command {
	return &Command{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Root builds the command tree. Options are read from flags, then from
// BRICKHOUSE_ environment variables, then from the config file.
func (c *Command) Root(v *viper.Viper) (*cobra.Command, error) {
	c.v = v
	root, err := cli.NewCommand(v, &cli.Program{Name: "brickhouse"})
	if err != nil {
		return nil, err
	}
	root.Short = "Explode and validate xunits"
	root.SetIn(c.Stdin)
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)

	if err := cli.BindPersistentOptions(v, root, []cli.Opt{
		{
			DestP: &c.configPath,
			Flag:  "config",
			Desc:  "path to a TOML config file",
		},
		{
			DestP:   &c.logLevel,
			Flag:    "log-level",
			Default: zapcore.InfoLevel,
			Desc:    "log level: debug, info, warn or error",
		},
	}); err != nil {
		return nil, err
	}

	for _, sub := range []func() (*cobra.Command, error){
		c.explodeCommand,
		c.validateCommand,
		c.functionsCommand,
	} {
		cmd, err := sub()
		if err != nil {
			return nil, err
		}
		root.AddCommand(cmd)
	}
	return root, nil
}

// config loads the config file and applies the logging options given on the
// command line or in the environment.
func (c *Command) config() (Config, error) {
	config, err := ParseConfig(c.configPath)
	if err != nil {
		return Config{}, err
	}
	if c.v.IsSet("log-level") {
		config.Logging.Level = c.logLevel
	}
	return config, nil
}

// env builds the collaborators handed to function instances. Counters are
// registered with the returned registry.
func (c *Command) env(config Config) (udf.Env, *prometheus.Registry, error) {
	log, err := config.Logging.New(c.Stderr)
	if err != nil {
		return udf.Env{}, nil, err
	}

	reporter := udf.NewPrometheusReporter()
	reg := prometheus.NewRegistry()
	reg.MustRegister(reporter.PrometheusCollectors()...)
	return udf.Env{Logger: log, Reporter: reporter}, reg, nil
}

// open returns the named input; "-" is stdin.
func (c *Command) open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(c.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return f, nil
}

// printMetrics writes the gathered metrics in the text exposition format.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}

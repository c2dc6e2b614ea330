package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klout/brickhouse/explode"
	"github.com/klout/brickhouse/kit/cli"
	"github.com/klout/brickhouse/logger"
	"github.com/klout/brickhouse/udf"
	"github.com/klout/brickhouse/udf/builtin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxRowSize bounds a single JSON line.
const maxRowSize = 4 * 1024 * 1024

// explodeRow is one input line of "brickhouse explode". Missing max_dims and
// global fall back to the config.
type explodeRow struct {
	Groups  []explode.DimGroup `json:"groups"`
	MaxDims *int               `json:"max_dims"`
	Global  *bool              `json:"global"`
}

func (r explodeRow) args(config explode.Config) []interface{} {
	if !config.Tagged {
		return []interface{}{r.Groups}
	}
	maxDims, global := config.MaxDims, config.Global
	if r.MaxDims != nil {
		maxDims = *r.MaxDims
	}
	if r.Global != nil {
		global = *r.Global
	}
	return []interface{}{r.Groups, maxDims, global}
}

func (c *Command) explodeCommand() (*cobra.Command, error) {
	var (
		maxDims int
		tagged  bool
		metrics bool
	)
	cmd := &cobra.Command{
		Use:   "explode [files...]",
		Short: "Write the xunits of every JSON line row, one per line",
		Long: `Reads rows of dimension groups as JSON lines from the files, or from
stdin when no file is given, and writes the xunits generated for each row.
Files are processed concurrently; the output keeps the order of the files.`,
		Args: cobra.ArbitraryArgs,
	}
	if err := cli.BindOptions(c.v, cmd, []cli.Opt{
		{
			DestP:   &maxDims,
			Flag:    "max-dims",
			Default: explode.DefaultMaxDims,
			Desc:    "maximum number of dimensions in a tagged xunit, 0 for no cap",
		},
		{
			DestP:   &tagged,
			Flag:    "tagged",
			Default: explode.DefaultTagged,
			Desc:    "use the tagged explosion",
		},
		{
			DestP: &metrics,
			Flag:  "print-metrics",
			Desc:  "write the counters to stderr when done",
		},
	}); err != nil {
		return nil, err
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		config, err := c.config()
		if err != nil {
			return err
		}
		if c.v.IsSet("max-dims") {
			config.Explode.MaxDims = maxDims
		}
		if c.v.IsSet("tagged") {
			config.Explode.Tagged = tagged
		}
		if err := config.Validate(); err != nil {
			return err
		}
		if len(args) == 0 {
			args = []string{"-"}
		}
		return c.runExplode(cmd.Context(), config, args, metrics)
	}
	return cmd, nil
}

func (c *Command) runExplode(ctx context.Context, config Config, paths []string, metrics bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	env, reg, err := c.env(config)
	if err != nil {
		return err
	}
	defer func() { _ = env.Logger.Sync() }()

	registry, err := builtin.NewRegistry(env)
	if err != nil {
		return err
	}

	e := &exploder{
		registry: registry,
		config:   config.Explode,
	}
	ctx = logger.NewContextWithLogger(ctx, env.Logger)

	outputs := make([]bytes.Buffer, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			r, err := c.open(path)
			if err != nil {
				return err
			}
			defer r.Close()
			return e.run(ctx, path, r, &outputs[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range outputs {
		if _, err := outputs[i].WriteTo(c.Stdout); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	if metrics {
		return printMetrics(c.Stderr, reg)
	}
	return nil
}

// exploder runs one explode function instance per input.
type exploder struct {
	registry *udf.Registry
	config   explode.Config
}

func (e *exploder) function() string {
	if e.config.Tagged {
		return "tagged_xunit_explode"
	}
	return "xunit_explode"
}

func (e *exploder) run(ctx context.Context, source string, r io.Reader, w io.Writer) error {
	tf, err := e.registry.Table(e.function())
	if err != nil {
		return err
	}
	types := []udf.Type{udf.List}
	if e.config.Tagged {
		types = append(types, udf.Int, udf.Bool)
	}
	if _, err := tf.Initialize(types); err != nil {
		return err
	}

	out := udf.CollectorFunc(func(row []interface{}) error {
		_, err := fmt.Fprintln(w, row[0])
		return err
	})

	log := logger.FromContext(ctx).With(zap.String("source", source))
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxRowSize)
	for line := 1; scanner.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}

		var row explodeRow
		if err := json.Unmarshal(text, &row); err != nil {
			log.Warn("Skipping malformed row", zap.Int("line", line), zap.Error(err))
			continue
		}
		if err := tf.Process(row.args(e.config), out); err != nil {
			return errors.Wrapf(err, "%s:%d", source, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "read %s", source)
	}
	return tf.Close()
}

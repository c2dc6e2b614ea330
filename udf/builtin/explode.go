package builtin

import (
	"github.com/klout/brickhouse/explode"
	"github.com/klout/brickhouse/udf"
	"go.uber.org/zap"
)

// Counter names reported by the explode functions.
const (
	ExplodeCounterGroup = "XUnitExplode"
	NumXUnitsCounter    = "NumXUnits"
	BadRowsCounter      = "BadRows"
)

// explodeFunc emits one row per XUnit generated from a list of dimension
// groups. A row that cannot be exploded is logged and skipped.
type explodeFunc struct {
	name     string
	tagged   bool
	logger   *zap.Logger
	reporter udf.Reporter

	// maxDims holds the last cap seen so rows with a NULL cap reuse it.
	maxDims int
}

func newExplodeFunc(name string, tagged bool, env udf.Env) *explodeFunc {
	return &explodeFunc{
		name:     name,
		tagged:   tagged,
		logger:   env.Logger.With(zap.String("function", name)),
		reporter: env.Reporter,
	}
}

func (f *explodeFunc) Initialize(args []udf.Type) ([]udf.Type, error) {
	if !f.tagged {
		if err := udf.CheckArity(f.name, args, 1, 1); err != nil {
			return nil, err
		}
		if err := udf.CheckType(f.name, args, 0, udf.List); err != nil {
			return nil, err
		}
		return []udf.Type{udf.String}, nil
	}

	if err := udf.CheckArity(f.name, args, 2, 3); err != nil {
		return nil, err
	}
	if err := udf.CheckType(f.name, args, 0, udf.List); err != nil {
		return nil, err
	}
	if err := udf.CheckType(f.name, args, 1, udf.Int); err != nil {
		return nil, err
	}
	if len(args) == 3 {
		if err := udf.CheckType(f.name, args, 2, udf.Bool); err != nil {
			return nil, err
		}
	}
	return []udf.Type{udf.String}, nil
}

func (f *explodeFunc) Process(args []interface{}, out udf.Collector) error {
	xunits, err := f.explode(args)
	if err != nil {
		f.logger.Warn("Skipping row", zap.Error(err))
		f.reporter.IncrCounter(ExplodeCounterGroup, BadRowsCounter, 1)
		return nil
	}
	for _, s := range xunits {
		if err := out.Collect([]interface{}{s}); err != nil {
			return err
		}
	}
	f.reporter.IncrCounter(ExplodeCounterGroup, NumXUnitsCounter, int64(len(xunits)))
	return nil
}

func (f *explodeFunc) explode(args []interface{}) ([]string, error) {
	if len(args) == 0 {
		return nil, udf.ArgumentError(f.name, 0, "missing dimension groups")
	}
	groups, err := groupsArg(f.name, 0, args[0])
	if err != nil {
		return nil, err
	}
	if !f.tagged {
		return explode.Untagged(groups)
	}

	opts := explode.Options{Global: true}
	if len(args) > 1 && args[1] != nil {
		if f.maxDims, err = udf.AsInt(f.name, 1, args[1]); err != nil {
			return nil, err
		}
	}
	opts.MaxDims = f.maxDims
	if len(args) > 2 && args[2] != nil {
		if opts.Global, err = udf.AsBool(f.name, 2, args[2]); err != nil {
			return nil, err
		}
	}
	return explode.Tagged(groups, opts)
}

func (f *explodeFunc) Close() error {
	return nil
}

func tableDefinitions() []udf.Definition {
	return []udf.Definition{
		{
			Name:        "xunit_explode",
			Description: "Emits the global xunit and every combination of the ypaths of each dimension group.",
			NewTable: func(env udf.Env) udf.TableGenerating {
				return newExplodeFunc("xunit_explode", false, env)
			},
		},
		{
			Name:        "tagged_xunit_explode",
			Description: "Emits the xunits of a tagged event row, capped at a maximum number of dimensions.",
			NewTable: func(env udf.Env) udf.TableGenerating {
				return newExplodeFunc("tagged_xunit_explode", true, env)
			},
		},
	}
}

package builtin

import (
	"github.com/klout/brickhouse/kit/platform/errors"
	"github.com/klout/brickhouse/udf"
	"github.com/retailnext/hllpp"
)

// hllAggregate estimates distinct counts with an HLL++ sketch. With union set
// its input rows are serialized sketches instead of strings.
type hllAggregate struct {
	name   string
	union  bool
	sketch *hllpp.HLLPP
}

func (a *hllAggregate) Initialize(args []udf.Type) (udf.Type, error) {
	if err := udf.CheckArity(a.name, args, 1, 1); err != nil {
		return 0, err
	}
	want := udf.String
	if a.union {
		want = udf.Binary
	}
	if err := udf.CheckType(a.name, args, 0, want); err != nil {
		return 0, err
	}
	return udf.Binary, nil
}

func (a *hllAggregate) Reset() {
	a.sketch = nil
}

func (a *hllAggregate) Iterate(args []interface{}) error {
	if len(args) != 1 {
		return errors.Invalidf(a.name, "%s takes 1 argument, got %d", a.name, len(args))
	}
	if args[0] == nil {
		return nil
	}
	if a.union {
		b, err := udf.AsBytes(a.name, 0, args[0])
		if err != nil {
			return err
		}
		return a.Merge(b)
	}
	s, err := udf.AsString(a.name, 0, args[0])
	if err != nil {
		return err
	}
	a.init().Add([]byte(s))
	return nil
}

// Partial returns the serialized sketch, or nil when nothing was added.
func (a *hllAggregate) Partial() ([]byte, error) {
	if a.sketch == nil {
		return nil, nil
	}
	return a.sketch.Marshal(), nil
}

func (a *hllAggregate) Merge(partial []byte) error {
	if len(partial) == 0 {
		return nil
	}
	other, err := unmarshalSketch(a.name, partial)
	if err != nil {
		return err
	}
	if a.sketch == nil {
		a.sketch = other
		return nil
	}
	if err := a.sketch.Merge(other); err != nil {
		return errors.NewError(
			errors.WithErrorErr(err),
			errors.WithErrorCode(errors.EInvalid),
			errors.WithErrorOp(a.name),
			errors.WithErrorMsg("incompatible sketch"),
		)
	}
	return nil
}

func (a *hllAggregate) Terminate() (interface{}, error) {
	b, err := a.Partial()
	if err != nil || b == nil {
		return nil, err
	}
	return b, nil
}

func (a *hllAggregate) init() *hllpp.HLLPP {
	if a.sketch == nil {
		a.sketch = hllpp.New()
	}
	return a.sketch
}

func unmarshalSketch(fn string, b []byte) (*hllpp.HLLPP, error) {
	h, err := hllpp.Unmarshal(b)
	if err != nil {
		return nil, errors.NewError(
			errors.WithErrorErr(err),
			errors.WithErrorCode(errors.EInvalid),
			errors.WithErrorOp(fn),
			errors.WithErrorMsg("invalid sketch"),
		)
	}
	return h, nil
}

func hllDefinitions() []udf.Definition {
	reach := &scalarFunc{
		name:   "estimated_reach",
		desc:   "Returns the distinct count estimated by a hyperloglog sketch.",
		args:   [][]udf.Type{{udf.Binary}},
		result: udf.Int,
		eval: func(fn string, args []interface{}) (interface{}, error) {
			b, err := udf.AsBytes(fn, 0, args[0])
			if err != nil {
				return nil, err
			}
			h, err := unmarshalSketch(fn, b)
			if err != nil {
				return nil, err
			}
			return int64(h.Count()), nil
		},
	}

	return []udf.Definition{
		{
			Name:        "hyperloglog",
			Description: "Builds a hyperloglog sketch of the distinct strings in a group.",
			NewAggregate: func(udf.Env) udf.Aggregate {
				return &hllAggregate{name: "hyperloglog"}
			},
		},
		{
			Name:        "union_hyperloglog",
			Description: "Merges the hyperloglog sketches of a group.",
			NewAggregate: func(udf.Env) udf.Aggregate {
				return &hllAggregate{name: "union_hyperloglog", union: true}
			},
		},
		{
			Name:        reach.name,
			Description: reach.desc,
			NewScalar: func(udf.Env) udf.Scalar {
				c := *reach
				return &c
			},
		},
	}
}

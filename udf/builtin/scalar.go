package builtin

import (
	"github.com/klout/brickhouse/kit/platform/errors"
	"github.com/klout/brickhouse/udf"
	"github.com/klout/brickhouse/xunit"
)

var (
	xunitArgType  = []udf.Type{udf.String, udf.Struct}
	ypathArgType  = []udf.Type{udf.String, udf.Struct}
	stringArgType = []udf.Type{udf.String}
)

// scalarFunc is a stateless scalar function described by its signature.
// A NULL argument yields a NULL result without calling eval.
type scalarFunc struct {
	name   string
	desc   string
	args   [][]udf.Type
	result udf.Type
	eval   func(fn string, args []interface{}) (interface{}, error)
}

func (f *scalarFunc) Initialize(args []udf.Type) (udf.Type, error) {
	if err := udf.CheckArity(f.name, args, len(f.args), len(f.args)); err != nil {
		return 0, err
	}
	for i, want := range f.args {
		if err := udf.CheckType(f.name, args, i, want...); err != nil {
			return 0, err
		}
	}
	return f.result, nil
}

func (f *scalarFunc) Evaluate(args []interface{}) (interface{}, error) {
	if len(args) != len(f.args) {
		return nil, errors.Invalidf(f.name, "%s takes %d arguments, got %d", f.name, len(f.args), len(args))
	}
	for _, a := range args {
		if a == nil {
			return nil, nil
		}
	}
	return f.eval(f.name, args)
}

func scalarDefinitions() []udf.Definition {
	fns := []*scalarFunc{
		{
			name:   "xunit_contains_dim",
			desc:   "Reports whether an xunit has a ypath for the dimension.",
			args:   [][]udf.Type{xunitArgType, stringArgType},
			result: udf.Bool,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				x, err := xunitArg(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				dim, err := udf.AsString(fn, 1, args[1])
				if err != nil {
					return nil, err
				}
				return xunit.ContainsDim(x, dim), nil
			},
		},
		{
			name:   "xunit_contains_ypath",
			desc:   "Reports whether an xunit holds a matching ypath.",
			args:   [][]udf.Type{xunitArgType, ypathArgType},
			result: udf.Bool,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				x, err := xunitArg(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				yp, err := ypathArg(fn, 1, args[1])
				if err != nil {
					return nil, err
				}
				return xunit.ContainsYPath(x, yp), nil
			},
		},
		{
			name:   "xunit_contains_only_dims",
			desc:   "Reports whether the dimensions of an xunit are exactly the listed ones.",
			args:   [][]udf.Type{xunitArgType, {udf.List}},
			result: udf.Bool,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				x, err := xunitArg(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				dims, err := udf.AsStrings(fn, 1, args[1])
				if err != nil {
					return nil, err
				}
				return xunit.ContainsOnlyDims(x, dims), nil
			},
		},
		{
			name:   "xunit_all_dims",
			desc:   "Returns the dimension names of an xunit.",
			args:   [][]udf.Type{xunitArgType},
			result: udf.List,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				x, err := xunitArg(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				return xunit.AllDims(x), nil
			},
		},
		{
			name:   "xunit_attribute",
			desc:   "Returns an attribute value of the ypath for a dimension, or NULL.",
			args:   [][]udf.Type{xunitArgType, stringArgType, stringArgType},
			result: udf.String,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				x, err := xunitArg(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				dim, err := udf.AsString(fn, 1, args[1])
				if err != nil {
					return nil, err
				}
				attr, err := udf.AsString(fn, 2, args[2])
				if err != nil {
					return nil, err
				}
				if v, ok := xunit.AttributeValue(x, dim, attr); ok {
					return v, nil
				}
				return nil, nil
			},
		},
		{
			name:   "xunit_get_ypath",
			desc:   "Returns the ypath for a dimension, or NULL.",
			args:   [][]udf.Type{xunitArgType, stringArgType},
			result: udf.String,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				x, err := xunitArg(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				dim, err := udf.AsString(fn, 1, args[1])
				if err != nil {
					return nil, err
				}
				if yp, ok := x.YPath(dim); ok {
					return yp.String(), nil
				}
				return nil, nil
			},
		},
		{
			name:   "xunit_remove_ypath",
			desc:   "Returns the xunit without the ypath for a dimension.",
			args:   [][]udf.Type{xunitArgType, stringArgType},
			result: udf.String,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				x, err := xunitArg(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				dim, err := udf.AsString(fn, 1, args[1])
				if err != nil {
					return nil, err
				}
				return x.RemoveYPath(dim).String(), nil
			},
		},
		{
			name:   "xunit_add_ypath",
			desc:   "Returns the xunit with a ypath added in sorted position.",
			args:   [][]udf.Type{xunitArgType, ypathArgType},
			result: udf.String,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				x, err := xunitArg(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				yp, err := ypathArg(fn, 1, args[1])
				if err != nil {
					return nil, err
				}
				return x.AddYPath(yp).String(), nil
			},
		},
		{
			name:   "xunit_num_dims",
			desc:   "Returns the number of ypaths in an xunit.",
			args:   [][]udf.Type{xunitArgType},
			result: udf.Int,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				x, err := xunitArg(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				return x.NumDims(), nil
			},
		},
		{
			name:   "xunit_is_global",
			desc:   "Reports whether an xunit is the global xunit.",
			args:   [][]udf.Type{xunitArgType},
			result: udf.Bool,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				x, err := xunitArg(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				return x.IsGlobal(), nil
			},
		},
		{
			name:   "xunit_is_valid",
			desc:   "Reports whether a string is a well-formed xunit.",
			args:   [][]udf.Type{stringArgType},
			result: udf.Bool,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				s, err := udf.AsString(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				return xunit.IsValidXUnit(s), nil
			},
		},
		{
			name:   "ypath_is_valid",
			desc:   "Reports whether a string is a well-formed ypath.",
			args:   [][]udf.Type{stringArgType},
			result: udf.Bool,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				s, err := udf.AsString(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				return xunit.IsValidYPath(s), nil
			},
		},
		{
			name:   "xunit_global",
			desc:   "Returns the global xunit.",
			result: udf.String,
			eval: func(string, []interface{}) (interface{}, error) {
				return xunit.GlobalString, nil
			},
		},
		{
			name:   "xunit_to_struct",
			desc:   "Converts an xunit to its structured form.",
			args:   [][]udf.Type{xunitArgType},
			result: udf.Struct,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				x, err := xunitArg(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				return xunit.ToStruct(x), nil
			},
		},
		{
			name:   "ypath_add_attribute",
			desc:   "Returns the ypath with an attribute appended.",
			args:   [][]udf.Type{ypathArgType, stringArgType, stringArgType},
			result: udf.String,
			eval: func(fn string, args []interface{}) (interface{}, error) {
				yp, err := ypathArg(fn, 0, args[0])
				if err != nil {
					return nil, err
				}
				name, err := udf.AsString(fn, 1, args[1])
				if err != nil {
					return nil, err
				}
				value, err := udf.AsString(fn, 2, args[2])
				if err != nil {
					return nil, err
				}
				return yp.AddAttribute(name, value).String(), nil
			},
		},
	}

	defs := make([]udf.Definition, 0, len(fns))
	for _, f := range fns {
		f := f
		defs = append(defs, udf.Definition{
			Name:        f.name,
			Description: f.desc,
			NewScalar: func(udf.Env) udf.Scalar {
				c := *f
				return &c
			},
		})
	}
	return defs
}

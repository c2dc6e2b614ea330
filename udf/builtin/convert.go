package builtin

import (
	"github.com/klout/brickhouse/explode"
	"github.com/klout/brickhouse/udf"
	"github.com/klout/brickhouse/xunit"
)

// xunitArg decodes an XUnit argument given as a string or a struct.
func xunitArg(fn string, pos int, v interface{}) (xunit.XUnit, error) {
	val, err := xunit.ValueOf(v)
	if err != nil {
		return xunit.XUnit{}, udf.ArgumentError(fn, pos, "%v", err)
	}
	return val.XUnit()
}

// ypathArg decodes a YPath argument given as a string or a struct.
func ypathArg(fn string, pos int, v interface{}) (xunit.YPath, error) {
	val, err := xunit.YPathValueOf(v)
	if err != nil {
		return xunit.YPath{}, udf.ArgumentError(fn, pos, "%v", err)
	}
	return val.YPath()
}

// groupsArg decodes the list of dimension groups of an explode call. Each
// element may be an explode.DimGroup, an xunit.YPathStruct or a map with the
// keys dim, attr_names and attr_values.
func groupsArg(fn string, pos int, v interface{}) ([]explode.DimGroup, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []explode.DimGroup:
		return v, nil
	case []interface{}:
		groups := make([]explode.DimGroup, 0, len(v))
		for _, e := range v {
			g, err := groupArg(fn, pos, e)
			if err != nil {
				return nil, err
			}
			groups = append(groups, g)
		}
		return groups, nil
	}
	return nil, udf.ArgumentError(fn, pos, "expected list of dimension structs, got %T", v)
}

func groupArg(fn string, pos int, v interface{}) (explode.DimGroup, error) {
	switch v := v.(type) {
	case explode.DimGroup:
		return v, nil
	case *explode.DimGroup:
		if v != nil {
			return *v, nil
		}
	case xunit.YPathStruct:
		return explode.DimGroup{Dim: v.Dim, AttrNames: v.AttrNames, AttrValues: v.AttrValues}, nil
	case map[string]interface{}:
		dim, err := udf.AsString(fn, pos, v["dim"])
		if err != nil {
			return explode.DimGroup{}, err
		}
		names, err := udf.AsStrings(fn, pos, v["attr_names"])
		if err != nil {
			return explode.DimGroup{}, err
		}
		values, err := udf.AsStrings(fn, pos, v["attr_values"])
		if err != nil {
			return explode.DimGroup{}, err
		}
		return explode.DimGroup{Dim: dim, AttrNames: names, AttrValues: values}, nil
	}
	return explode.DimGroup{}, udf.ArgumentError(fn, pos, "expected dimension struct, got %T", v)
}

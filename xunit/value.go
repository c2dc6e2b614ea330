package xunit

import (
	"github.com/klout/brickhouse/kit/platform/errors"
)

// Value is an XUnit as handed over by the host engine: either the canonical
// string or the structured form. Both variants decode the same way.
type Value interface {
	XUnit() (XUnit, error)
}

// YPathValue is the YPath counterpart of Value.
type YPathValue interface {
	YPath() (YPath, error)
}

// StringValue is a canonically encoded XUnit.
type StringValue string

// XUnit parses the string.
func (v StringValue) XUnit() (XUnit, error) {
	return ParseXUnit(string(v))
}

// StructValue is the structured XUnit form: an is_global flag and a list of
// YPath structs.
type StructValue struct {
	IsGlobal bool          `json:"is_global"`
	YPaths   []YPathStruct `json:"ypaths"`
}

// XUnit builds the XUnit, keeping the YPath order of the struct. A set
// IsGlobal flag wins over any YPaths.
func (v StructValue) XUnit() (XUnit, error) {
	if v.IsGlobal {
		return Global(), nil
	}
	yps := make([]YPath, 0, len(v.YPaths))
	for _, s := range v.YPaths {
		yp, err := s.YPath()
		if err != nil {
			return XUnit{}, err
		}
		yps = append(yps, yp)
	}
	return NewXUnit(yps...)
}

// YPathString is a canonically encoded YPath.
type YPathString string

// YPath parses the string.
func (v YPathString) YPath() (YPath, error) {
	return ParseYPath(string(v))
}

// YPathStruct is the structured YPath form with parallel name and value lists.
type YPathStruct struct {
	Dim        string   `json:"dim"`
	AttrNames  []string `json:"attr_names"`
	AttrValues []string `json:"attr_values"`
}

// YPath builds the YPath, appending the attributes in order.
func (s YPathStruct) YPath() (YPath, error) {
	const op = "xunit.YPathStruct"
	if s.Dim == "" {
		return YPath{}, errors.Invalidf(op, "ypath struct has an empty dimension")
	}
	if len(s.AttrNames) != len(s.AttrValues) {
		return YPath{}, errors.Invalidf(op, "ypath %q has %d attribute names but %d values",
			s.Dim, len(s.AttrNames), len(s.AttrValues))
	}
	yp := NewYPath(s.Dim)
	for i, name := range s.AttrNames {
		yp = yp.AddAttribute(name, s.AttrValues[i])
	}
	return yp, nil
}

// ToStruct converts x to its structured form.
func ToStruct(x XUnit) StructValue {
	if x.IsGlobal() {
		return StructValue{IsGlobal: true}
	}
	v := StructValue{YPaths: make([]YPathStruct, 0, len(x.ypaths))}
	for _, yp := range x.ypaths {
		v.YPaths = append(v.YPaths, YPathStructOf(yp))
	}
	return v
}

// YPathStructOf converts yp to its structured form.
func YPathStructOf(yp YPath) YPathStruct {
	return YPathStruct{
		Dim:        yp.dim,
		AttrNames:  yp.AttributeNames(),
		AttrValues: yp.AttributeValues(),
	}
}

// ValueOf adapts a host argument to a Value. Accepted shapes are string,
// StringValue, StructValue, *StructValue and XUnit.
func ValueOf(arg interface{}) (Value, error) {
	switch v := arg.(type) {
	case string:
		return StringValue(v), nil
	case StringValue:
		return v, nil
	case StructValue:
		return v, nil
	case *StructValue:
		if v == nil {
			break
		}
		return *v, nil
	case XUnit:
		return ToStruct(v), nil
	}
	return nil, errors.Invalidf("xunit.ValueOf", "cannot use %T as an xunit", arg)
}

// YPathValueOf adapts a host argument to a YPathValue. Accepted shapes are
// string, YPathString, YPathStruct, *YPathStruct and YPath.
func YPathValueOf(arg interface{}) (YPathValue, error) {
	switch v := arg.(type) {
	case string:
		return YPathString(v), nil
	case YPathString:
		return v, nil
	case YPathStruct:
		return v, nil
	case *YPathStruct:
		if v == nil {
			break
		}
		return *v, nil
	case YPath:
		return YPathStructOf(v), nil
	}
	return nil, errors.Invalidf("xunit.YPathValueOf", "cannot use %T as a ypath", arg)
}

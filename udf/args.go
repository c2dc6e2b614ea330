package udf

import (
	"fmt"

	"github.com/klout/brickhouse/kit/platform/errors"
)

// ArgumentError returns the EInvalid error reported when function fn is
// called with a bad argument at position pos (0-based).
func ArgumentError(fn string, pos int, format string, args ...interface{}) error {
	return &errors.Error{
		Code: errors.EInvalid,
		Op:   fn,
		Msg:  fmt.Sprintf("argument %d: %s", pos+1, fmt.Sprintf(format, args...)),
	}
}

// CheckArity returns an error unless lo <= len(args) <= hi.
func CheckArity(fn string, args []Type, lo, hi int) error {
	if len(args) >= lo && len(args) <= hi {
		return nil
	}
	want := fmt.Sprintf("%d", lo)
	if hi != lo {
		want = fmt.Sprintf("%d to %d", lo, hi)
	}
	return errors.Invalidf(fn, "%s takes %s arguments, got %d", fn, want, len(args))
}

// CheckType returns an error unless args[pos] is one of want. Any matches
// everything, on either side.
func CheckType(fn string, args []Type, pos int, want ...Type) error {
	got := args[pos]
	if got == Any {
		return nil
	}
	for _, w := range want {
		if w == Any || w == got {
			return nil
		}
	}
	return ArgumentError(fn, pos, "expected %v, got %s", want, got)
}

// AsString converts a row value to a string.
func AsString(fn string, pos int, v interface{}) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return "", ArgumentError(fn, pos, "expected string, got %T", v)
}

// AsInt converts a row value to an int.
func AsInt(fn string, pos int, v interface{}) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint32:
		return int(v), nil
	}
	return 0, ArgumentError(fn, pos, "expected int, got %T", v)
}

// AsBool converts a row value to a bool.
func AsBool(fn string, pos int, v interface{}) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, ArgumentError(fn, pos, "expected bool, got %T", v)
}

// AsBytes converts a row value to a byte slice.
func AsBytes(fn string, pos int, v interface{}) ([]byte, error) {
	switch v := v.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}
	return nil, ArgumentError(fn, pos, "expected binary, got %T", v)
}

// AsStrings converts a list row value to strings. Nil elements become "".
func AsStrings(fn string, pos int, v interface{}) ([]string, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, len(v))
		for i, e := range v {
			if e == nil {
				continue
			}
			s, err := AsString(fn, pos, e)
			if err != nil {
				return nil, err
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, ArgumentError(fn, pos, "expected list of strings, got %T", v)
}

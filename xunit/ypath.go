package xunit

import (
	"strings"

	"github.com/klout/brickhouse/kit/platform/errors"
)

// YPath is one hierarchical dimension tag: a dimension name followed by an
// ordered chain of attribute name/value pairs, e.g. /geo/continent=EU/country=FR.
//
// YPath is a value type. AddAttribute returns a new YPath and never touches
// the receiver's slices.
type YPath struct {
	dim    string
	names  []string
	values []string
}

// NewYPath returns a YPath for dim with no attributes.
func NewYPath(dim string) YPath {
	return YPath{dim: dim}
}

// ParseYPath parses the canonical form /dim[/name=value]*.
func ParseYPath(s string) (YPath, error) {
	const op = "xunit.ParseYPath"
	if !strings.HasPrefix(s, "/") {
		return YPath{}, errors.Invalidf(op, "ypath %q must start with '/'", s)
	}

	parts := strings.Split(s[1:], "/")
	if parts[0] == "" {
		return YPath{}, errors.Invalidf(op, "ypath %q has an empty dimension", s)
	}

	yp := YPath{dim: parts[0]}
	if n := len(parts) - 1; n > 0 {
		yp.names = make([]string, 0, n)
		yp.values = make([]string, 0, n)
	}
	for _, part := range parts[1:] {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return YPath{}, errors.Invalidf(op, "ypath %q: attribute %q is missing '='", s, part)
		}
		yp.names = append(yp.names, name)
		yp.values = append(yp.values, value)
	}
	return yp, nil
}

// Dim returns the dimension name.
func (y YPath) Dim() string { return y.dim }

// NumAttributes returns the length of the attribute chain.
func (y YPath) NumAttributes() int { return len(y.names) }

// AttributeNames returns a copy of the attribute names in insertion order.
func (y YPath) AttributeNames() []string { return copyStrings(y.names) }

// AttributeValues returns a copy of the attribute values in insertion order.
func (y YPath) AttributeValues() []string { return copyStrings(y.values) }

// AttributeValue returns the value of the first attribute called name.
func (y YPath) AttributeValue(name string) (string, bool) {
	for i, n := range y.names {
		if n == name {
			return y.values[i], true
		}
	}
	return "", false
}

// AddAttribute returns a new YPath with name=value appended to the chain.
// '/' is reserved as the segment separator, so any '/' in value is replaced
// with a space.
func (y YPath) AddAttribute(name, value string) YPath {
	n := len(y.names)
	names := make([]string, n+1)
	values := make([]string, n+1)
	copy(names, y.names)
	copy(values, y.values)
	names[n] = name
	values[n] = EscapeValue(value)
	return YPath{dim: y.dim, names: names, values: values}
}

// Compare orders YPaths by dimension name in reverse: it returns
// strings.Compare(other.Dim(), y.Dim()). Existing canonical XUnit strings were
// produced with this ordering, so it must not be flipped.
func (y YPath) Compare(other YPath) int {
	return strings.Compare(other.dim, y.dim)
}

// Equal reports whether both YPaths have the same dimension and attribute chain.
func (y YPath) Equal(other YPath) bool {
	if y.dim != other.dim || len(y.names) != len(other.names) {
		return false
	}
	for i := range y.names {
		if y.names[i] != other.names[i] || y.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// String returns the canonical encoding.
func (y YPath) String() string {
	var b strings.Builder
	b.WriteByte('/')
	b.WriteString(y.dim)
	for i, name := range y.names {
		b.WriteByte('/')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(y.values[i])
	}
	return b.String()
}

// EscapeValue replaces the reserved '/' separator with a space.
func EscapeValue(v string) string {
	return strings.ReplaceAll(v, "/", " ")
}

func copyStrings(a []string) []string {
	if a == nil {
		return nil
	}
	return append(make([]string, 0, len(a)), a...)
}

package xunit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/klout/brickhouse/kit/platform/errors"
)

// GlobalString is the canonical encoding of the global XUnit.
const GlobalString = "/G"

// XUnit is a set of YPaths describing one fact. The zero value is the global
// XUnit, which holds no YPaths and encodes as /G; every other XUnit holds at
// least one YPath.
//
// XUnit is a value type: AddYPath and RemoveYPath return new XUnits.
type XUnit struct {
	ypaths []YPath
}

// Global returns the global XUnit.
func Global() XUnit {
	return XUnit{}
}

// NewXUnit returns an XUnit holding yps in the given order. At least one YPath
// is required; use Global for the empty unit.
func NewXUnit(yps ...YPath) (XUnit, error) {
	if len(yps) == 0 {
		return XUnit{}, errors.Invalidf("xunit.NewXUnit", "an xunit needs at least one ypath")
	}
	return XUnit{ypaths: append(make([]YPath, 0, len(yps)), yps...)}, nil
}

// ParseXUnit parses a canonical XUnit string. The YPaths are kept in the order
// they appear in s; parsing does not sort.
func ParseXUnit(s string) (XUnit, error) {
	const op = "xunit.ParseXUnit"
	if s == GlobalString {
		return Global(), nil
	}
	if s == "" {
		return XUnit{}, errors.Invalidf(op, "empty xunit")
	}

	parts := strings.Split(s, ",")
	yps := make([]YPath, 0, len(parts))
	for _, part := range parts {
		yp, err := ParseYPath(part)
		if err != nil {
			return XUnit{}, &errors.Error{
				Code: errors.EInvalid,
				Op:   op,
				Msg:  fmt.Sprintf("invalid xunit %q", s),
				Err:  err,
			}
		}
		yps = append(yps, yp)
	}
	return XUnit{ypaths: yps}, nil
}

// IsGlobal reports whether x is the global XUnit.
func (x XUnit) IsGlobal() bool { return len(x.ypaths) == 0 }

// NumDims returns the number of YPaths in x.
func (x XUnit) NumDims() int { return len(x.ypaths) }

// YPaths returns a copy of the YPaths in stored order.
func (x XUnit) YPaths() []YPath {
	if x.IsGlobal() {
		return nil
	}
	return append(make([]YPath, 0, len(x.ypaths)), x.ypaths...)
}

// AddYPath returns a new XUnit with yp inserted and the YPaths sorted by
// YPath.Compare.
func (x XUnit) AddYPath(yp YPath) XUnit {
	yps := make([]YPath, 0, len(x.ypaths)+1)
	yps = append(yps, yp)
	yps = append(yps, x.ypaths...)
	sort.SliceStable(yps, func(i, j int) bool {
		return yps[i].Compare(yps[j]) < 0
	})
	return XUnit{ypaths: yps}
}

// ContainsDim reports whether x has a YPath for dim.
func (x XUnit) ContainsDim(dim string) bool {
	_, ok := x.YPath(dim)
	return ok
}

// YPath returns the first YPath for dim.
func (x XUnit) YPath(dim string) (YPath, bool) {
	for _, yp := range x.ypaths {
		if yp.dim == dim {
			return yp, true
		}
	}
	return YPath{}, false
}

// RemoveYPath returns a new XUnit without any YPath for dim. Removing the last
// YPath yields the global XUnit.
func (x XUnit) RemoveYPath(dim string) XUnit {
	yps := make([]YPath, 0, len(x.ypaths))
	for _, yp := range x.ypaths {
		if yp.dim != dim {
			yps = append(yps, yp)
		}
	}
	if len(yps) == 0 {
		return Global()
	}
	return XUnit{ypaths: yps}
}

// Dims returns the dimension names in stored order.
func (x XUnit) Dims() []string {
	dims := make([]string, 0, len(x.ypaths))
	for _, yp := range x.ypaths {
		dims = append(dims, yp.dim)
	}
	return dims
}

// String returns the canonical encoding: /G, or the YPath strings joined by ','.
func (x XUnit) String() string {
	if x.IsGlobal() {
		return GlobalString
	}
	var b strings.Builder
	for i, yp := range x.ypaths {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(yp.String())
	}
	return b.String()
}

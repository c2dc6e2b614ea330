package xunit

// ContainsDim reports whether x has a YPath for dim.
func ContainsDim(x XUnit, dim string) bool {
	return x.ContainsDim(dim)
}

// ContainsYPath reports whether x holds a YPath with the same dimension and
// attribute count as yp whose attribute pairs match yp's.
//
// Only the pairs before the last one are compared, so /age/bucket=18-24 is
// "contained" in an XUnit holding /age/bucket=25-34. Existing queries depend
// on this matching behavior.
func ContainsYPath(x XUnit, yp YPath) bool {
	for _, cand := range x.ypaths {
		if cand.dim != yp.dim || len(cand.names) != len(yp.names) {
			continue
		}
		if prefixMatches(cand, yp) {
			return true
		}
	}
	return false
}

func prefixMatches(a, b YPath) bool {
	for i := 0; i < len(b.names)-1; i++ {
		if a.names[i] != b.names[i] || a.values[i] != b.values[i] {
			return false
		}
	}
	return true
}

// ContainsOnlyDims reports whether the dimension set of x is exactly dims.
// Duplicates in dims are ignored. The global XUnit matches only an empty dims.
func ContainsOnlyDims(x XUnit, dims []string) bool {
	want := make(map[string]struct{}, len(dims))
	for _, d := range dims {
		want[d] = struct{}{}
	}

	have := make(map[string]struct{}, len(x.ypaths))
	for _, yp := range x.ypaths {
		if _, ok := want[yp.dim]; !ok {
			return false
		}
		have[yp.dim] = struct{}{}
	}
	return len(have) == len(want)
}

// AllDims returns the dimension names of x in stored order.
func AllDims(x XUnit) []string {
	return x.Dims()
}

// AttributeValue returns the value of attr on the YPath for dim.
func AttributeValue(x XUnit, dim, attr string) (string, bool) {
	yp, ok := x.YPath(dim)
	if !ok {
		return "", false
	}
	return yp.AttributeValue(attr)
}

// IsValidXUnit reports whether s parses as an XUnit.
func IsValidXUnit(s string) bool {
	_, err := ParseXUnit(s)
	return err == nil
}

// IsValidYPath reports whether s parses as a YPath.
func IsValidYPath(s string) bool {
	_, err := ParseYPath(s)
	return err == nil
}

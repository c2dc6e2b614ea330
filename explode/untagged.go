package explode

import (
	"github.com/klout/brickhouse/xunit"
)

// Untagged returns the XUnits for one row of the untagged variant, the global
// XUnit first.
//
// The groups are combined recursively: the XUnits of group 0 alone, then the
// XUnits of the remaining groups, then every group-0 YPath joined with ','
// to every XUnit of the remaining groups. The join is plain string
// concatenation in group order; nothing is sorted, capped or de-duplicated.
func Untagged(groups []DimGroup) ([]string, error) {
	own := make([][]string, len(groups))
	for i, g := range groups {
		yps, err := YPaths(g)
		if err != nil {
			return nil, err
		}
		strs := make([]string, len(yps))
		for j, yp := range yps {
			strs[j] = yp.String()
		}
		own[i] = strs
	}

	return append([]string{xunit.GlobalString}, combine(own)...), nil
}

func combine(own [][]string) []string {
	if len(own) == 0 {
		return nil
	}

	first := own[0]
	rest := combine(own[1:])

	out := make([]string, 0, len(first)+len(rest)+len(first)*len(rest))
	out = append(out, first...)
	out = append(out, rest...)
	for _, a := range first {
		for _, b := range rest {
			out = append(out, a+","+b)
		}
	}
	return out
}

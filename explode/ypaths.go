package explode

import (
	"strings"

	"github.com/klout/brickhouse/kit/platform/errors"
	"github.com/klout/brickhouse/xunit"
)

// DimGroup is one dimension of an input row: a dimension name and parallel
// lists of attribute names and values. A value holding '|' is a multi-value
// and fans out into one branch per sub-value.
type DimGroup struct {
	Dim        string   `json:"dim"`
	AttrNames  []string `json:"attr_names"`
	AttrValues []string `json:"attr_values"`
}

// YPaths returns every YPath obtained by walking g's attribute chain, at
// every depth, in generation order: all depth-1 branches, then all depth-2
// branches, and so on. The bare dimension is not included.
//
// A null value (empty after trimming, or "null" in any case) skips its
// attribute; later attributes keep extending the previous depth. A '|'
// multi-value multiplies the branches at its depth.
func YPaths(g DimGroup) ([]xunit.YPath, error) {
	const op = "explode.YPaths"
	if g.Dim == "" {
		return nil, errors.Invalidf(op, "dimension group has no dimension name")
	}
	if len(g.AttrNames) != len(g.AttrValues) {
		return nil, errors.Invalidf(op, "dimension %q has %d attribute names but %d values",
			g.Dim, len(g.AttrNames), len(g.AttrValues))
	}

	prev := []xunit.YPath{xunit.NewYPath(g.Dim)}
	var out []xunit.YPath
	for i, name := range g.AttrNames {
		subs := splitValue(g.AttrValues[i])
		if len(subs) == 0 {
			continue
		}

		next := make([]xunit.YPath, 0, len(prev)*len(subs))
		for _, p := range prev {
			for _, s := range subs {
				next = append(next, p.AddAttribute(name, s))
			}
		}
		out = append(out, next...)
		prev = next
	}
	return out, nil
}

// splitValue returns the cleaned sub-values of v. Null sub-values are dropped.
func splitValue(v string) []string {
	if !strings.Contains(v, "|") {
		if c, ok := cleanValue(v); ok {
			return []string{c}
		}
		return nil
	}

	var subs []string
	for _, s := range strings.Split(v, "|") {
		if c, ok := cleanValue(s); ok {
			subs = append(subs, c)
		}
	}
	return subs
}

// cleanValue trims v and reports false for null values.
func cleanValue(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "null") {
		return "", false
	}
	return v, true
}

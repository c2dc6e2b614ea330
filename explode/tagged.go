package explode

import (
	"strings"

	"github.com/klout/brickhouse/kit/platform/errors"
	"github.com/klout/brickhouse/xunit"
)

// Dimension names with special meaning in a tagged row. Matching is
// case-insensitive.
const (
	EventDim  = "event"
	ABTestDim = "abtest"
	SpamDim   = "spam"

	// CustomDimPrefix marks custom dimensions, e.g. custom1, custom_campaign.
	CustomDimPrefix = "custom"

	// NonSpammerValidated is the spam attribute value that unlocks the full
	// explosion for a row.
	NonSpammerValidated = "nonspammer-validated"
)

// Options configures the tagged variant.
type Options struct {
	// MaxDims caps the number of YPaths in a generated XUnit. Zero or less
	// means no cap.
	MaxDims int

	// Global controls whether the global XUnit is emitted.
	Global bool
}

// IsSegmentDim reports whether dim may lead a tagged row.
func IsSegmentDim(dim string) bool {
	return strings.EqualFold(dim, EventDim) || strings.EqualFold(dim, ABTestDim)
}

// IsCustomDim reports whether dim is a custom dimension.
func IsCustomDim(dim string) bool {
	return len(dim) >= len(CustomDimPrefix) && strings.EqualFold(dim[:len(CustomDimPrefix)], CustomDimPrefix)
}

// Tagged returns the distinct XUnits for one row of the tagged variant, the
// global XUnit first when opts.Global is set.
//
// groups[0] must be an event or abtest dimension; each of its YPaths is a
// base XUnit. When groups[1] is the spam dimension its YPaths are paired with
// every base XUnit. Spammer rows stop there. Non-spammer rows, and rows with
// no spam dimension, then fold in each remaining dimension in order, and
// finally all custom dimensions in a single pass. Every stage drops XUnits
// with more than opts.MaxDims YPaths.
//
// Any error abandons the whole row; nothing is returned alongside it.
func Tagged(groups []DimGroup, opts Options) ([]string, error) {
	const op = "explode.Tagged"
	if len(groups) == 0 {
		return nil, errors.Invalidf(op, "no dimension groups")
	}
	if !IsSegmentDim(groups[0].Dim) {
		return nil, errors.Invalidf(op, "first dimension must be %q or %q, got %q",
			EventDim, ABTestDim, groups[0].Dim)
	}

	yps := make([][]xunit.YPath, len(groups))
	for i, g := range groups {
		var err error
		if yps[i], err = YPaths(g); err != nil {
			return nil, err
		}
	}

	acc := newAccumulator(opts.MaxDims)
	base := make([]xunit.XUnit, 0, len(yps[0]))
	for _, yp := range yps[0] {
		base = append(base, xunit.Global().AddYPath(yp))
	}
	acc.addAll(base)

	rest, restYPs := groups[1:], yps[1:]
	nonSpammer := true
	if len(rest) > 0 && strings.EqualFold(rest[0].Dim, SpamDim) {
		nonSpammer = isNonSpammer(rest[0])
		acc.fold(base, singles(restYPs[0]))
		rest, restYPs = rest[1:], restYPs[1:]
	}

	if nonSpammer {
		var customs [][]xunit.YPath
		for i, g := range rest {
			if IsCustomDim(g.Dim) {
				if len(restYPs[i]) > 0 {
					customs = append(customs, restYPs[i])
				}
				continue
			}
			acc.fold(acc.snapshot(), singles(restYPs[i]))
		}
		if len(customs) > 0 {
			acc.fold(acc.snapshot(), customUnits(customs))
		}
	}

	out := make([]string, 0, len(acc.units)+1)
	if opts.Global {
		out = append(out, xunit.GlobalString)
	}
	for _, x := range acc.units {
		out = append(out, x.String())
	}
	return out, nil
}

// isNonSpammer reports whether any value of the spam group is the validated
// non-spammer marker.
func isNonSpammer(g DimGroup) bool {
	for _, v := range g.AttrValues {
		for _, s := range splitValue(v) {
			if strings.EqualFold(s, NonSpammerValidated) {
				return true
			}
		}
	}
	return false
}

// customUnits returns the YPath sets folded in for the custom dimensions:
// each custom YPath alone, plus the pairwise products when there are exactly
// two custom dimensions, plus the pairwise and triple products when there are
// exactly three.
func customUnits(customs [][]xunit.YPath) [][]xunit.YPath {
	var units [][]xunit.YPath
	for _, c := range customs {
		units = append(units, singles(c)...)
	}

	switch len(customs) {
	case 2:
		units = append(units, product(customs[0], customs[1])...)
	case 3:
		units = append(units, product(customs[0], customs[1])...)
		units = append(units, product(customs[0], customs[2])...)
		units = append(units, product(customs[1], customs[2])...)
		for _, pair := range product(customs[0], customs[1]) {
			for _, c := range customs[2] {
				units = append(units, []xunit.YPath{pair[0], pair[1], c})
			}
		}
	}
	return units
}

func singles(yps []xunit.YPath) [][]xunit.YPath {
	units := make([][]xunit.YPath, len(yps))
	for i, yp := range yps {
		units[i] = []xunit.YPath{yp}
	}
	return units
}

func product(a, b []xunit.YPath) [][]xunit.YPath {
	units := make([][]xunit.YPath, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			units = append(units, []xunit.YPath{x, y})
		}
	}
	return units
}

// accumulator collects distinct XUnits in first-seen order.
type accumulator struct {
	maxDims int
	units   []xunit.XUnit
	seen    map[string]struct{}
}

func newAccumulator(maxDims int) *accumulator {
	return &accumulator{
		maxDims: maxDims,
		seen:    make(map[string]struct{}),
	}
}

func (a *accumulator) snapshot() []xunit.XUnit {
	return append([]xunit.XUnit(nil), a.units...)
}

func (a *accumulator) addAll(xs []xunit.XUnit) {
	for _, x := range xs {
		a.add(x)
	}
}

func (a *accumulator) add(x xunit.XUnit) {
	if a.maxDims > 0 && x.NumDims() > a.maxDims {
		return
	}
	s := x.String()
	if _, ok := a.seen[s]; ok {
		return
	}
	a.seen[s] = struct{}{}
	a.units = append(a.units, x)
}

// fold adds every XUnit of from extended by every unit. Extensions that would
// repeat a dimension are skipped.
func (a *accumulator) fold(from []xunit.XUnit, units [][]xunit.YPath) {
	for _, x := range from {
		for _, u := range units {
			if y, ok := extend(x, u); ok {
				a.add(y)
			}
		}
	}
}

func extend(x xunit.XUnit, unit []xunit.YPath) (xunit.XUnit, bool) {
	for _, yp := range unit {
		if x.ContainsDim(yp.Dim()) {
			return xunit.XUnit{}, false
		}
		x = x.AddYPath(yp)
	}
	return x, true
}

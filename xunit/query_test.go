package xunit_test

import (
	"testing"

	"github.com/klout/brickhouse/xunit"
	"github.com/stretchr/testify/require"
)

func TestContainsOnlyDims(t *testing.T) {
	tests := []struct {
		name  string
		xunit string
		dims  []string
		exp   bool
	}{
		{name: "exact", xunit: "/geo/continent=EU,/age/bucket=18-24", dims: []string{"age", "geo"}, exp: true},
		{name: "exact with duplicates", xunit: "/geo/continent=EU,/age/bucket=18-24", dims: []string{"age", "geo", "age"}, exp: true},
		{name: "subset", xunit: "/age/bucket=18-24", dims: []string{"age", "geo"}, exp: false},
		{name: "superset", xunit: "/zip/code=1,/geo/continent=EU,/age/bucket=18-24", dims: []string{"age", "geo"}, exp: false},
		{name: "disjoint", xunit: "/zip/code=1,/gender/g=F", dims: []string{"age", "geo"}, exp: false},
		{name: "global with no dims", xunit: "/G", dims: nil, exp: true},
		{name: "global with dims", xunit: "/G", dims: []string{"age"}, exp: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.exp, xunit.ContainsOnlyDims(mustXUnit(t, tt.xunit), tt.dims))
		})
	}
}

func TestContainsYPath(t *testing.T) {
	x := mustXUnit(t, "/geo/continent=EU/country=FR,/age/bucket=25-34")

	tests := []struct {
		name  string
		ypath string
		exp   bool
	}{
		{name: "identical", ypath: "/geo/continent=EU/country=FR", exp: true},
		// The last attribute pair is never compared.
		{name: "last value differs", ypath: "/geo/continent=EU/country=DE", exp: true},
		{name: "single attribute always matches", ypath: "/age/bucket=18-24", exp: true},
		{name: "earlier value differs", ypath: "/geo/continent=NA/country=FR", exp: false},
		{name: "earlier name differs", ypath: "/geo/region=EU/country=FR", exp: false},
		{name: "different attribute count", ypath: "/geo/continent=EU", exp: false},
		{name: "missing dimension", ypath: "/gender/g=F", exp: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.exp, xunit.ContainsYPath(x, mustYPath(t, tt.ypath)))
		})
	}

	require.False(t, xunit.ContainsYPath(xunit.Global(), mustYPath(t, "/age/bucket=1")))
}

func TestAllDimsAndAttributeValue(t *testing.T) {
	x := mustXUnit(t, "/geo/continent=EU/country=FR,/age/bucket=25-34")

	require.Equal(t, []string{"geo", "age"}, xunit.AllDims(x))
	require.Empty(t, xunit.AllDims(xunit.Global()))
	require.True(t, xunit.ContainsDim(x, "age"))

	v, ok := xunit.AttributeValue(x, "geo", "country")
	require.True(t, ok)
	require.Equal(t, "FR", v)

	_, ok = xunit.AttributeValue(x, "geo", "city")
	require.False(t, ok)
	_, ok = xunit.AttributeValue(x, "gender", "g")
	require.False(t, ok)
}

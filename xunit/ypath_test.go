package xunit_test

import (
	"testing"

	"github.com/klout/brickhouse/kit/platform/errors"
	"github.com/klout/brickhouse/xunit"
	"github.com/stretchr/testify/require"
)

func TestParseYPath(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		dim    string
		names  []string
		values []string
	}{
		{
			name: "dimension only",
			in:   "/age",
			dim:  "age",
		},
		{
			name:   "one attribute",
			in:     "/age/bucket=18-24",
			dim:    "age",
			names:  []string{"bucket"},
			values: []string{"18-24"},
		},
		{
			name:   "attribute chain keeps insertion order",
			in:     "/geo/continent=EU/country=FR/city=Paris",
			dim:    "geo",
			names:  []string{"continent", "country", "city"},
			values: []string{"EU", "FR", "Paris"},
		},
		{
			name:   "value split on first equals only",
			in:     "/event/expr=a=b",
			dim:    "event",
			names:  []string{"expr"},
			values: []string{"a=b"},
		},
		{
			name:   "empty value",
			in:     "/event/type=",
			dim:    "event",
			names:  []string{"type"},
			values: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yp, err := xunit.ParseYPath(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.dim, yp.Dim())
			require.Equal(t, tt.names, yp.AttributeNames())
			require.Equal(t, tt.values, yp.AttributeValues())
			require.Equal(t, tt.in, yp.String())
		})
	}
}

func TestParseYPath_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"age",
		"age/bucket=1",
		"/",
		"//bucket=1",
		"/age/bucket",
		"/age/",
		"/age/bucket=1/range",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := xunit.ParseYPath(in)
			require.Error(t, err)
			require.Equal(t, errors.EInvalid, errors.ErrorCode(err))
			require.Equal(t, "xunit.ParseYPath", errors.ErrorOp(err))
			require.False(t, xunit.IsValidYPath(in))
		})
	}
}

func TestYPath_RoundTrip(t *testing.T) {
	yp := xunit.NewYPath("geo").
		AddAttribute("continent", "EU").
		AddAttribute("country", "FR").
		AddAttribute("region", "Ile-de-France")

	parsed, err := xunit.ParseYPath(yp.String())
	require.NoError(t, err)
	require.True(t, parsed.Equal(yp))
	require.Equal(t, yp.AttributeNames(), parsed.AttributeNames())
	require.Equal(t, yp.AttributeValues(), parsed.AttributeValues())
}

func TestYPath_AddAttributeEscapesSlash(t *testing.T) {
	yp := xunit.NewYPath("age").AddAttribute("range", "18/24")
	require.Equal(t, "/age/range=18 24", yp.String())

	parsed, err := xunit.ParseYPath(yp.String())
	require.NoError(t, err)
	require.Equal(t, 1, parsed.NumAttributes())
	v, ok := parsed.AttributeValue("range")
	require.True(t, ok)
	require.Equal(t, "18 24", v)
}

func TestYPath_AddAttributeDoesNotMutate(t *testing.T) {
	base := xunit.NewYPath("geo").AddAttribute("continent", "EU")
	fr := base.AddAttribute("country", "FR")
	de := base.AddAttribute("country", "DE")

	require.Equal(t, "/geo/continent=EU", base.String())
	require.Equal(t, "/geo/continent=EU/country=FR", fr.String())
	require.Equal(t, "/geo/continent=EU/country=DE", de.String())

	names := fr.AttributeNames()
	names[0] = "changed"
	require.Equal(t, []string{"continent", "country"}, fr.AttributeNames())
}

func TestYPath_AttributeValue(t *testing.T) {
	yp := xunit.NewYPath("geo").AddAttribute("continent", "EU").AddAttribute("country", "FR")

	v, ok := yp.AttributeValue("country")
	require.True(t, ok)
	require.Equal(t, "FR", v)

	_, ok = yp.AttributeValue("city")
	require.False(t, ok)
}

func TestYPath_CompareIsReversed(t *testing.T) {
	age := xunit.NewYPath("age")
	geo := xunit.NewYPath("geo")

	require.Equal(t, 1, age.Compare(geo))
	require.Equal(t, -1, geo.Compare(age))
	require.Equal(t, 0, age.Compare(xunit.NewYPath("age").AddAttribute("bucket", "1")))
}

func TestYPath_Equal(t *testing.T) {
	a := xunit.NewYPath("age").AddAttribute("bucket", "18-24")
	require.True(t, a.Equal(xunit.NewYPath("age").AddAttribute("bucket", "18-24")))
	require.False(t, a.Equal(xunit.NewYPath("age").AddAttribute("bucket", "25-34")))
	require.False(t, a.Equal(xunit.NewYPath("age")))
	require.False(t, a.Equal(xunit.NewYPath("geo").AddAttribute("bucket", "18-24")))
}

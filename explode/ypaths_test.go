package explode_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/klout/brickhouse/explode"
	"github.com/klout/brickhouse/kit/platform/errors"
	"github.com/klout/brickhouse/xunit"
	"github.com/stretchr/testify/require"
)

func group(dim string, kv ...string) explode.DimGroup {
	g := explode.DimGroup{Dim: dim}
	for i := 0; i+1 < len(kv); i += 2 {
		g.AttrNames = append(g.AttrNames, kv[i])
		g.AttrValues = append(g.AttrValues, kv[i+1])
	}
	return g
}

func ypathStrings(t *testing.T, g explode.DimGroup) []string {
	t.Helper()
	yps, err := explode.YPaths(g)
	require.NoError(t, err)
	out := make([]string, len(yps))
	for i, yp := range yps {
		out[i] = yp.String()
	}
	return out
}

func TestYPaths(t *testing.T) {
	tests := []struct {
		name  string
		group explode.DimGroup
		exp   []string
	}{
		{
			name:  "single attribute",
			group: group("age", "bucket", "18-24"),
			exp:   []string{"/age/bucket=18-24"},
		},
		{
			name:  "every depth is emitted",
			group: group("geo", "continent", "EU", "country", "FR", "city", "Paris"),
			exp: []string{
				"/geo/continent=EU",
				"/geo/continent=EU/country=FR",
				"/geo/continent=EU/country=FR/city=Paris",
			},
		},
		{
			name:  "multi-value fans out",
			group: group("interest", "topic", "a|b"),
			exp:   []string{"/interest/topic=a", "/interest/topic=b"},
		},
		{
			name:  "fan-out compounds across attributes",
			group: group("d", "x", "a|b", "y", "c|d"),
			exp: []string{
				"/d/x=a",
				"/d/x=b",
				"/d/x=a/y=c",
				"/d/x=a/y=d",
				"/d/x=b/y=c",
				"/d/x=b/y=d",
			},
		},
		{
			name:  "null attribute is skipped and the chain continues",
			group: group("geo", "continent", "EU", "country", "null", "city", "Paris"),
			exp: []string{
				"/geo/continent=EU",
				"/geo/continent=EU/city=Paris",
			},
		},
		{
			name:  "leading null attribute",
			group: group("geo", "continent", "  ", "country", "FR"),
			exp:   []string{"/geo/country=FR"},
		},
		{
			name:  "null sub-values are dropped",
			group: group("interest", "topic", "a| |NULL|b"),
			exp:   []string{"/interest/topic=a", "/interest/topic=b"},
		},
		{
			name:  "values are trimmed",
			group: group("geo", "continent", " EU "),
			exp:   []string{"/geo/continent=EU"},
		},
		{
			name:  "slash is replaced with a space",
			group: group("age", "range", "18/24"),
			exp:   []string{"/age/range=18 24"},
		},
		{
			name:  "no attributes",
			group: group("age"),
			exp:   []string{},
		},
		{
			name:  "only nulls",
			group: group("age", "bucket", "Null", "range", ""),
			exp:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ypathStrings(t, tt.group)
			if diff := cmp.Diff(tt.exp, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("unexpected ypaths (-want +got):\n%s", diff)
			}
		})
	}
}

func TestYPaths_FanOutDepthCount(t *testing.T) {
	yps, err := explode.YPaths(group("d", "x", "a|b", "y", "c|d"))
	require.NoError(t, err)

	byDepth := map[int]int{}
	for _, yp := range yps {
		byDepth[yp.NumAttributes()]++
	}
	require.Equal(t, map[int]int{1: 2, 2: 4}, byDepth)
}

func TestYPaths_NeverEmbedNulls(t *testing.T) {
	g := group("d", "a", "null", "b", "NULL|x", "c", " \t", "d", "Null|nUlL|y")
	for _, s := range ypathStrings(t, g) {
		yp, err := xunit.ParseYPath(s)
		require.NoError(t, err)
		for _, v := range yp.AttributeValues() {
			require.NotEqual(t, "null", strings.ToLower(v))
			require.NotEmpty(t, strings.TrimSpace(v))
		}
	}
}

func TestYPaths_Invalid(t *testing.T) {
	_, err := explode.YPaths(explode.DimGroup{
		Dim:        "geo",
		AttrNames:  []string{"continent", "country"},
		AttrValues: []string{"EU"},
	})
	require.Error(t, err)
	require.Equal(t, errors.EInvalid, errors.ErrorCode(err))

	_, err = explode.YPaths(group("", "a", "b"))
	require.Equal(t, errors.EInvalid, errors.ErrorCode(err))
}

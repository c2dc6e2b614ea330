package explode_test

import (
	"testing"

	"github.com/klout/brickhouse/explode"
	"github.com/klout/brickhouse/kit/platform/errors"
	"github.com/stretchr/testify/require"
)

func TestUntagged_SingleGroup(t *testing.T) {
	got, err := explode.Untagged([]explode.DimGroup{
		group("age", "bucket", "18-24"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"/G", "/age/bucket=18-24"}, got)
}

func TestUntagged_TwoGroups(t *testing.T) {
	got, err := explode.Untagged([]explode.DimGroup{
		group("geo", "continent", "EU"),
		group("gender", "g", "F"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"/G",
		"/geo/continent=EU",
		"/gender/g=F",
		"/geo/continent=EU,/gender/g=F",
	}, got)
}

func TestUntagged_JoinsInGroupOrder(t *testing.T) {
	// The tagged variant would sort /geo before /age; the untagged join keeps
	// the group order.
	got, err := explode.Untagged([]explode.DimGroup{
		group("age", "bucket", "18-24"),
		group("geo", "continent", "EU"),
	})
	require.NoError(t, err)
	require.Contains(t, got, "/age/bucket=18-24,/geo/continent=EU")
	require.NotContains(t, got, "/geo/continent=EU,/age/bucket=18-24")
}

func TestUntagged_ThreeGroups(t *testing.T) {
	got, err := explode.Untagged([]explode.DimGroup{
		group("a", "x", "1"),
		group("b", "x", "2"),
		group("c", "x", "3"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"/G",
		"/a/x=1",
		"/b/x=2",
		"/c/x=3",
		"/b/x=2,/c/x=3",
		"/a/x=1,/b/x=2",
		"/a/x=1,/c/x=3",
		"/a/x=1,/b/x=2,/c/x=3",
	}, got)
}

func TestUntagged_NoCap(t *testing.T) {
	groups := []explode.DimGroup{
		group("a", "x", "1", "y", "2"),
		group("b", "x", "1"),
		group("c", "x", "1"),
		group("d", "x", "1"),
	}
	got, err := explode.Untagged(groups)
	require.NoError(t, err)
	require.Contains(t, got, "/a/x=1/y=2,/b/x=1,/c/x=1,/d/x=1")
	// own(a)=2, own(b..d)=1 each: (2+1)*(1+1)^3 - 1 combinations plus /G.
	require.Len(t, got, 3*2*2*2-1+1)
}

func TestUntagged_Empty(t *testing.T) {
	got, err := explode.Untagged(nil)
	require.NoError(t, err)
	require.Equal(t, []string{"/G"}, got)
}

func TestUntagged_InvalidGroup(t *testing.T) {
	got, err := explode.Untagged([]explode.DimGroup{
		group("age", "bucket", "18-24"),
		{Dim: "geo", AttrNames: []string{"continent"}},
	})
	require.Error(t, err)
	require.Equal(t, errors.EInvalid, errors.ErrorCode(err))
	require.Nil(t, got)
}

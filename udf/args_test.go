package udf_test

import (
	"testing"

	"github.com/klout/brickhouse/kit/platform/errors"
	"github.com/klout/brickhouse/udf"
	"github.com/stretchr/testify/require"
)

func TestCheckArity(t *testing.T) {
	args := []udf.Type{udf.String, udf.Int}
	require.NoError(t, udf.CheckArity("f", args, 2, 2))
	require.NoError(t, udf.CheckArity("f", args, 1, 3))

	err := udf.CheckArity("f", args, 3, 3)
	require.Equal(t, errors.EInvalid, errors.ErrorCode(err))
	require.Equal(t, "f takes 3 arguments, got 2", err.Error())

	err = udf.CheckArity("f", args, 3, 4)
	require.Equal(t, "f takes 3 to 4 arguments, got 2", err.Error())
}

func TestConversions(t *testing.T) {
	s, err := udf.AsString("f", 0, []byte("abc"))
	require.NoError(t, err)
	require.Equal(t, "abc", s)

	_, err = udf.AsString("f", 0, 1)
	require.Equal(t, errors.EInvalid, errors.ErrorCode(err))

	n, err := udf.AsInt("f", 1, int64(3))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = udf.AsInt("f", 1, "3")
	require.Error(t, err)

	b, err := udf.AsBool("f", 2, true)
	require.NoError(t, err)
	require.True(t, b)

	strs, err := udf.AsStrings("f", 0, []interface{}{"a", nil, "c"})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "", "c"}, strs)

	_, err = udf.AsStrings("f", 0, []interface{}{"a", 2})
	require.Error(t, err)

	raw, err := udf.AsBytes("f", 0, "xy")
	require.NoError(t, err)
	require.Equal(t, []byte("xy"), raw)
}

package errors_test

import (
	"fmt"
	"testing"

	"github.com/klout/brickhouse/kit/platform/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorMsg(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{
			name: "simple error",
			err:  &errors.Error{Code: errors.ENotFound},
			msg:  "<not found>",
		},
		{
			name: "with message",
			err: &errors.Error{
				Code: errors.EInvalid,
				Msg:  "missing '=' in attribute",
			},
			msg: "missing '=' in attribute",
		},
		{
			name: "with message and wrapped error",
			err: &errors.Error{
				Code: errors.EInvalid,
				Msg:  "bad row",
				Err:  fmt.Errorf("length mismatch"),
			},
			msg: "bad row: length mismatch",
		},
		{
			name: "wrapped error only",
			err: &errors.Error{
				Err: fmt.Errorf("boom"),
			},
			msg: "boom",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.msg, c.err.Error())
		})
	}
}

func TestErrorCode(t *testing.T) {
	require.Equal(t, "", errors.ErrorCode(nil))
	require.Equal(t, errors.EInternal, errors.ErrorCode(fmt.Errorf("plain")))

	inner := errors.Invalidf("xunit.ParseYPath", "bad %q", "x")
	require.Equal(t, errors.EInvalid, errors.ErrorCode(inner))

	outer := &errors.Error{Err: inner}
	require.Equal(t, errors.EInvalid, errors.ErrorCode(outer))
	require.Equal(t, "xunit.ParseYPath", errors.ErrorOp(outer))
	require.Equal(t, `bad "x"`, errors.ErrorMessage(outer))

	// fmt wrapping keeps the code visible.
	wrapped := fmt.Errorf("row 3: %w", inner)
	require.Equal(t, errors.EInvalid, errors.ErrorCode(wrapped))
}

func TestNewError(t *testing.T) {
	err := errors.NewError(
		errors.WithErrorCode(errors.EConflict),
		errors.WithErrorMsg("function already registered"),
		errors.WithErrorOp("udf.Register"),
	)
	require.Equal(t, errors.EConflict, err.Code)
	require.Equal(t, "udf.Register", errors.ErrorOp(err))
	require.Equal(t, "An internal error has occurred.", errors.ErrorMessage(fmt.Errorf("x")))
}

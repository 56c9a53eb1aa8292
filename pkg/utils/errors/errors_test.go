package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		typ  ErrorType
	}{
		{"new", New("plain"), ErrorTypeUnknown},
		{"invalid argument", InvalidArgument("bad input"), ErrorTypeInvalidArgument},
		{"not found", NotFound("missing"), ErrorTypeNotFound},
		{"unavailable", Unavailable("down"), ErrorTypeUnavailable},
		{"internal", Internal("boom"), ErrorTypeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, TypeOf(tt.err))
			assert.True(t, IsType(tt.err, tt.typ))
		})
	}
}

func TestWrapPreservesType(t *testing.T) {
	inner := NotFound("portfolio not found: pf-9")
	wrapped := Wrap(inner, "loading analytics")

	assert.True(t, IsType(wrapped, ErrorTypeNotFound))
	assert.Equal(t, "loading analytics: portfolio not found: pf-9", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestWrapForeignError(t *testing.T) {
	inner := fmt.Errorf("dial tcp: connection refused")
	wrapped := Wrapf(inner, "publishing snapshot for %s", "pf-1")

	require.Error(t, wrapped)
	assert.Equal(t, ErrorTypeUnknown, TypeOf(wrapped))
	assert.Contains(t, wrapped.Error(), "publishing snapshot for pf-1")
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
}

func TestTypeOfForeignError(t *testing.T) {
	assert.Equal(t, ErrorTypeUnknown, TypeOf(stderrors.New("foreign")))
	assert.False(t, IsType(stderrors.New("foreign"), ErrorTypeNotFound))
}

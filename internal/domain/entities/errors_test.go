package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchError_Error(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewFetchError("Upstream API error.", cause)

	assert.Equal(t, "Upstream API error.: dial tcp: connection refused", err.Error())
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := errors.New("status 500")
	err := NewFetchError("Upstream API error.", cause)

	assert.ErrorIs(t, err, cause)

	var fetchErr *FetchError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &fetchErr))
	assert.Equal(t, "Upstream API error.", fetchErr.Message)
}

func TestSafeMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "fetch error exposes its message",
			err:  NewFetchError("Malformed upstream response.", errors.New("unexpected EOF")),
			want: "Malformed upstream response.",
		},
		{
			name: "wrapped fetch error exposes its message",
			err:  fmt.Errorf("pipeline: %w", NewFetchError("Upstream API error.", nil)),
			want: "Upstream API error.",
		},
		{
			name: "unknown error is masked",
			err:  errors.New("pq: connection reset"),
			want: "Internal error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeMessage(tt.err))
		})
	}
}

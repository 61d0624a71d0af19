package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Conflict, KindOf(New(Conflict, "duplicate email")))
	assert.Equal(t, Internal, KindOf(errors.New("plain error")))

	// Kind survives further wrapping.
	wrapped := fmt.Errorf("handler: %w", New(Unavailable, "grader down"))
	assert.Equal(t, Unavailable, KindOf(wrapped))
}

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := Wrap(Internal, cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "connection refused", err.Error())

	assert.Nil(t, Wrap(Internal, nil))
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want int
	}{
		{InvalidInput, 400},
		{Unauthorized, 401},
		{Conflict, 409},
		{Unavailable, 503},
		{Internal, 500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.kind))
	}

	assert.Equal(t, 500, HTTPStatusOf(errors.New("untagged")))
	assert.Equal(t, 400, HTTPStatusOf(New(InvalidInput, "missing field")))
}

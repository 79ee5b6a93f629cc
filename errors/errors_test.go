package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusPerKind(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Unauthorized("no token"), http.StatusUnauthorized},
		{NotFound("missing"), http.StatusNotFound},
		{Conflict("taken"), http.StatusConflict},
		{New(KindUnavailable, "down"), http.StatusServiceUnavailable},
		{Internal("boom", stderrors.New("cause")), http.StatusInternalServerError},
		{stderrors.New("plain"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	inner := NotFound("guest not found")
	wrapped := fmt.Errorf("lookup: %w", inner)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestMessageOfHidesInternalCause(t *testing.T) {
	err := Internal("failed to load booking", stderrors.New("dial tcp: connection refused"))

	msg := MessageOf(err)
	assert.NotContains(t, msg, "connection refused")
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := stderrors.New("duplicate entry")
	err := Wrap(KindConflict, "username already exists", cause)

	assert.True(t, stderrors.Is(err, cause))
}

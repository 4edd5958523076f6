package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesSentinelByKind(t *testing.T) {
	err := NotFound("Pet não encontrado!")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))

	wrapped := fmt.Errorf("repo: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, "Pet não encontrado!", MessageOf(wrapped))
}

func TestKindOf_UntypedIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindConflict, KindOf(Conflict("dup")))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("x"), http.StatusUnprocessableEntity},
		{Forbidden("x"), http.StatusUnprocessableEntity},
		{Conflict("x"), http.StatusUnprocessableEntity},
		{Unauthorized("x"), http.StatusUnauthorized},
		{InvalidToken("x", nil), http.StatusBadRequest},
		{NotFound("x"), http.StatusNotFound},
		{Internal(errors.New("db down")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HTTPStatus(c.err), c.err.Error())
	}
}

func TestInternal_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "", MessageOf(err))
}

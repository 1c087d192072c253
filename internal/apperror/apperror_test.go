package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[int]error{
		http.StatusNotFound:            NotFound("missing"),
		http.StatusUnprocessableEntity: Validation("bad"),
		http.StatusUnauthorized:        Authentication("who"),
		http.StatusForbidden:           Authorization("no"),
		http.StatusConflict:            Conflict("dup"),
		http.StatusBadGateway:          Generation("ai", nil),
		http.StatusInternalServerError: Internal("boom", errors.New("cause")),
	}
	for status, err := range cases {
		assert.Equal(t, status, HTTPStatus(err))
	}
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestDetailMasksUnknownErrors(t *testing.T) {
	assert.Equal(t, "missing", DetailOf(NotFound("missing")))
	assert.Equal(t, "Internal server error", DetailOf(errors.New("secret cause")))
	assert.Equal(t, "INTERNAL_ERROR", CodeOf(errors.New("secret cause")))
	assert.Equal(t, "NOT_FOUND", CodeOf(NotFound("missing")))
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("driver broke")
	err := Internal("db failed", cause)
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsKind(err, KindInternal))
	assert.False(t, IsKind(err, KindNotFound))
	assert.Contains(t, err.Error(), "driver broke")
}

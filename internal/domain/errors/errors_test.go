package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, CodeInvalidInput, "bad", ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeInvalidInput, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrInvalidInput.Error(), err.Error())

	cases := []struct {
		err    *AppError
		status int
		code   string
		target error
	}{
		{NotFound("missing"), http.StatusNotFound, CodeNotFound, ErrNotFound},
		{Conflict("exists"), http.StatusConflict, CodeConflict, ErrConflict},
		{BadRequest("bad"), http.StatusBadRequest, CodeInvalidInput, ErrInvalidInput},
		{Validation("shape"), http.StatusBadRequest, CodeValidation, ErrValidation},
		{Unauthorized("who"), http.StatusUnauthorized, CodeUnauthorized, ErrUnauthorized},
		{Forbidden("no"), http.StatusForbidden, CodeForbidden, ErrForbidden},
		{InvalidCredentials(), http.StatusUnauthorized, CodeInvalidCredentials, ErrInvalidCredentials},
		{AccountDeactivated(), http.StatusUnauthorized, CodeAccountDeactivated, ErrAccountDeactivated},
		{InvalidToken("bad token"), http.StatusUnauthorized, CodeInvalidToken, ErrInvalidToken},
		{AlreadyActive("on"), http.StatusBadRequest, CodeAlreadyActive, ErrAlreadyActive},
		{AlreadyInactive("off"), http.StatusBadRequest, CodeAlreadyInactive, ErrAlreadyInactive},
		{InternalError(stderrors.New("db down")), http.StatusInternalServerError, CodeInternalError, nil},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status, tc.code)
		assert.Equal(t, tc.code, tc.err.Code)
		if tc.target != nil {
			assert.ErrorIs(t, tc.err, tc.target)
		}
	}
}

func TestAppError_MessageFallback(t *testing.T) {
	err := &AppError{Status: http.StatusTeapot, Message: "only message"}
	assert.Equal(t, "only message", err.Error())
	assert.Nil(t, err.Unwrap())

	assert.ErrorIs(t, InternalError(nil), ErrInternal)
}

func TestFromSentinel(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, FromSentinel(ErrNotFound, "x").Status)
	assert.Equal(t, http.StatusNotFound, FromSentinel(fmt.Errorf("wrap: %w", ErrNotFound), "x").Status)
	assert.Equal(t, http.StatusConflict, FromSentinel(ErrConflict, "x").Status)
	assert.Equal(t, http.StatusForbidden, FromSentinel(ErrForbidden, "x").Status)
	assert.Equal(t, CodeAlreadyActive, FromSentinel(ErrAlreadyActive, "x").Code)
	assert.Equal(t, CodeAlreadyInactive, FromSentinel(ErrAlreadyInactive, "x").Code)
	assert.Equal(t, CodeInvalidInput, FromSentinel(ErrInvalidInput, "x").Code)
	assert.Equal(t, CodeValidation, FromSentinel(ErrValidation, "x").Code)
	assert.Equal(t, http.StatusUnauthorized, FromSentinel(ErrUnauthorized, "x").Status)
	assert.Equal(t, CodeInvalidToken, FromSentinel(ErrInvalidToken, "x").Code)
	assert.Equal(t, CodeInvalidCredentials, FromSentinel(ErrInvalidCredentials, "x").Code)
	assert.Equal(t, CodeAccountDeactivated, FromSentinel(ErrAccountDeactivated, "x").Code)
	assert.Equal(t, http.StatusInternalServerError, FromSentinel(stderrors.New("boom"), "x").Status)

	existing := Forbidden("kept")
	assert.Same(t, existing, FromSentinel(existing, "ignored"))
}

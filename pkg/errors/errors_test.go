package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Wrapping(t *testing.T) {
	cause := stderrors.New("row not found")
	err := NotFound("user", cause)

	assert.Equal(t, "user not found: row not found", err.Error())
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, 404, err.HTTPStatus())
}

func TestAppError_WrappedThroughFmt(t *testing.T) {
	err := fmt.Errorf("handling request: %w", Unauthorized("", ErrInvalidToken))

	assert.True(t, IsUnauthorized(err))
	assert.True(t, stderrors.Is(err, ErrInvalidToken))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", NotFound("brand", ErrNotFound), IsNotFound},
		{"unauthorized", Unauthorized("", ErrUnauthorized), IsUnauthorized},
		{"invalid token is unauthorized", Unauthorized("bad token", ErrInvalidToken), IsUnauthorized},
		{"forbidden", Forbidden("", ErrForbidden), IsForbidden},
		{"pending approval is forbidden", Forbidden("pending", ErrPendingApproval), IsForbidden},
		{"rejected is forbidden", Forbidden("rejected", ErrAccountRejected), IsForbidden},
		{"admin required is forbidden", Forbidden("admin", ErrAdminRequired), IsForbidden},
		{"conflict", Conflict("exists", ErrUserExists), IsConflict},
		{"bad request", BadRequest("bad", ErrInvalidInput), IsBadRequest},
		{"self action is bad request", BadRequest("self", ErrSelfAction), IsBadRequest},
		{"federation", FederationError("exchange failed", nil), IsFederation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}
}

func TestPredicates_Negative(t *testing.T) {
	plain := stderrors.New("something else")

	assert.False(t, IsNotFound(plain))
	assert.False(t, IsUnauthorized(plain))
	assert.False(t, IsConflict(plain))
	assert.False(t, IsNotFound(nil))
}

func TestFederationError_Details(t *testing.T) {
	cause := stderrors.New("invalid_grant")
	err := FederationError("code exchange failed", cause)

	require.NotNil(t, err.Details)
	assert.Equal(t, "invalid_grant", err.Details["provider_error"])
	assert.Equal(t, 400, err.HTTPStatus())
}

func TestProviderError(t *testing.T) {
	err := ProviderError("image", stderrors.New("timeout"))

	assert.Equal(t, 503, err.HTTPStatus())
	assert.Equal(t, "image", err.Details["provider"])
}

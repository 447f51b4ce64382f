package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)
	subjectID := uuid.New()

	token, err := svc.Issue(subjectID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, subjectID, got)
}

func TestTokenService_VerifyExpired(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)
	subjectID := uuid.New()

	issuedAt := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(subjectID)
	require.NoError(t, err)

	svc.now = time.Now

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", 30*time.Minute)
	verifier := NewTokenService("secret-two", 30*time.Minute)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestTokenService_VerifyTampered(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	last := byte('A')
	if token[len(token)-1] == 'A' {
		last = 'B'
	}
	tampered := token[:len(token)-1] + string(last)

	_, err = svc.Verify(tampered)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestTokenService_VerifyGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(input)
		require.Error(t, err)
		assert.True(t, apperrors.IsUnauthorized(err))
	}
}

func TestTokenService_Lifetime(t *testing.T) {
	svc := NewTokenService("test-secret", 45*time.Minute)
	assert.Equal(t, 45*time.Minute, svc.Lifetime())
}

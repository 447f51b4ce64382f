package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
)

func testIdentity() *Identity {
	return &Identity{
		Subject:    "google-sub-1",
		Email:      "Alice@Example.com",
		Name:       "Alice",
		PictureURL: "https://example.com/alice.png",
	}
}

func identityProviderReturning(identity *Identity) *mockIdentityProvider {
	return &mockIdentityProvider{
		authenticateFunc: func(ctx context.Context, code, redirectURI string) (*Identity, error) {
			return identity, nil
		},
	}
}

func TestDecideInitialRoleAndStatus(t *testing.T) {
	tests := []struct {
		name       string
		count      int64
		wantRole   models.Role
		wantStatus models.Status
	}{
		{"first user becomes approved admin", 0, models.RoleAdmin, models.StatusApproved},
		{"second user is pending", 1, models.RoleUser, models.StatusPending},
		{"later users are pending", 100, models.RoleUser, models.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, status := DecideInitialRoleAndStatus(tt.count)
			assert.Equal(t, tt.wantRole, role)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestAuthService_Login_FirstUserBootstrap(t *testing.T) {
	var created *models.User
	repo := &mockUserRepo{
		countFunc: func(ctx context.Context) (int64, error) { return 0, nil },
		createFunc: func(ctx context.Context, user *models.User) error {
			user.ID = uuid.New()
			created = user
			return nil
		},
	}
	tokens := NewTokenService("test-secret", 30*time.Minute)
	svc := NewAuthService(repo, identityProviderReturning(testIdentity()), tokens)

	user, token, err := svc.Login(context.Background(), "auth-code", "")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, token)

	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, models.StatusApproved, user.Status)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "google-sub-1", user.GoogleSubject)
	require.NotNil(t, user.LastLogin)
}

func TestAuthService_Login_SecondUserIsPending(t *testing.T) {
	repo := &mockUserRepo{
		countFunc: func(ctx context.Context) (int64, error) { return 1, nil },
		createFunc: func(ctx context.Context, user *models.User) error {
			user.ID = uuid.New()
			return nil
		},
	}
	tokens := NewTokenService("test-secret", 30*time.Minute)
	svc := NewAuthService(repo, identityProviderReturning(testIdentity()), tokens)

	user, _, err := svc.Login(context.Background(), "auth-code", "")
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, models.StatusPending, user.Status)
}

func TestAuthService_Login_RepeatLoginKeepsStatus(t *testing.T) {
	existing := &models.User{
		ID:            uuid.New(),
		Email:         "alice@example.com",
		GoogleSubject: "google-sub-1",
		Role:          models.RoleUser,
		Status:        models.StatusRejected,
	}

	var updated *models.User
	repo := &mockUserRepo{
		findByGoogleSubjectFunc: func(ctx context.Context, subject string) (*models.User, error) {
			require.Equal(t, "google-sub-1", subject)
			return existing, nil
		},
		updateFunc: func(ctx context.Context, user *models.User) error {
			updated = user
			return nil
		},
		createFunc: func(ctx context.Context, user *models.User) error {
			t.Fatal("create must not be called for an existing user")
			return nil
		},
	}
	tokens := NewTokenService("test-secret", 30*time.Minute)
	svc := NewAuthService(repo, identityProviderReturning(testIdentity()), tokens)

	user, token, err := svc.Login(context.Background(), "auth-code", "")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.NotEmpty(t, token)

	// A rejected user still gets a session; the approval gate is enforced
	// downstream, and login never mutates status or role.
	assert.Equal(t, models.StatusRejected, user.Status)
	assert.Equal(t, models.RoleUser, user.Role)
	require.NotNil(t, user.LastLogin)
}

func TestAuthService_Login_ConcurrentCreateFallsBackToLookup(t *testing.T) {
	winner := &models.User{
		ID:            uuid.New(),
		Email:         "alice@example.com",
		GoogleSubject: "google-sub-1",
		Role:          models.RoleUser,
		Status:        models.StatusPending,
	}

	lookups := 0
	repo := &mockUserRepo{
		findByGoogleSubjectFunc: func(ctx context.Context, subject string) (*models.User, error) {
			lookups++
			if lookups == 1 {
				return nil, apperrors.NotFound("user", apperrors.ErrNotFound)
			}
			return winner, nil
		},
		createFunc: func(ctx context.Context, user *models.User) error {
			return apperrors.Conflict("user already exists", apperrors.ErrUserExists)
		},
	}
	tokens := NewTokenService("test-secret", 30*time.Minute)
	svc := NewAuthService(repo, identityProviderReturning(testIdentity()), tokens)

	user, _, err := svc.Login(context.Background(), "auth-code", "")
	require.NoError(t, err)

	assert.Equal(t, winner.ID, user.ID)
	assert.Equal(t, 2, lookups)
}

func TestAuthService_Login_FederationFailure(t *testing.T) {
	provider := &mockIdentityProvider{
		authenticateFunc: func(ctx context.Context, code, redirectURI string) (*Identity, error) {
			return nil, apperrors.FederationError("code exchange failed", nil)
		},
	}
	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user *models.User) error {
			t.Fatal("no user may be created when federation fails")
			return nil
		},
	}
	tokens := NewTokenService("test-secret", 30*time.Minute)
	svc := NewAuthService(repo, provider, tokens)

	_, _, err := svc.Login(context.Background(), "bad-code", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsFederation(err))
}

func TestAuthService_AuthenticateSession(t *testing.T) {
	userID := uuid.New()
	existing := &models.User{ID: userID, Status: models.StatusApproved}

	repo := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			require.Equal(t, userID, id)
			return existing, nil
		},
	}
	tokens := NewTokenService("test-secret", 30*time.Minute)
	svc := NewAuthService(repo, identityProviderReturning(testIdentity()), tokens)

	token, err := tokens.Issue(userID)
	require.NoError(t, err)

	user, err := svc.AuthenticateSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestAuthService_AuthenticateSession_InvalidToken(t *testing.T) {
	repo := &mockUserRepo{}
	tokens := NewTokenService("test-secret", 30*time.Minute)
	svc := NewAuthService(repo, identityProviderReturning(testIdentity()), tokens)

	_, err := svc.AuthenticateSession(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_AuthenticateSession_DeletedUser(t *testing.T) {
	tokens := NewTokenService("test-secret", 30*time.Minute)
	repo := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return nil, apperrors.NotFound("user", apperrors.ErrNotFound)
		},
	}
	svc := NewAuthService(repo, identityProviderReturning(testIdentity()), tokens)

	token, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.AuthenticateSession(context.Background(), token)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/adstudio-ai/adstudio/internal/domain/repository"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// IdentityProvider resolves an authorization code to a federated identity
type IdentityProvider interface {
	Authenticate(ctx context.Context, code, redirectURI string) (*Identity, error)
}

// SessionTokens issues and verifies session tokens
type SessionTokens interface {
	Issue(subjectID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
	Lifetime() time.Duration
}

// AuthService drives the login flow and the approval lifecycle around it:
// federated identity resolution, first-user bootstrap, repeat-login updates
// and session verification.
type AuthService struct {
	userRepo repository.UserRepository
	identity IdentityProvider
	tokens   SessionTokens
	log      *logger.Logger
}

// NewAuthService creates a new AuthService instance
func NewAuthService(userRepo repository.UserRepository, identity IdentityProvider, tokens SessionTokens) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		identity: identity,
		tokens:   tokens,
		log:      logger.Get().WithFields(logger.Component("auth-service")),
	}
}

// DecideInitialRoleAndStatus returns the role and status a newly created
// user starts with. Exactly the first user ever created is auto-approved
// and promoted to admin; everyone else waits for approval. Pure function;
// the caller must evaluate it and insert within one transaction.
func DecideInitialRoleAndStatus(existingUserCount int64) (models.Role, models.Status) {
	if existingUserCount == 0 {
		return models.RoleAdmin, models.StatusApproved
	}
	return models.RoleUser, models.StatusPending
}

// Login exchanges the authorization code, finds or creates the user record
// and issues a session token. The returned user reflects the persisted
// status and role; callers map those to the session cookie and response.
func (s *AuthService) Login(ctx context.Context, code, redirectURI string) (*models.User, string, error) {
	identity, err := s.identity.Authenticate(ctx, code, redirectURI)
	if err != nil {
		return nil, "", err
	}

	user, err := s.findOrCreateUser(ctx, identity)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperrors.InternalError("failed to issue session token", err)
	}

	s.log.Info("User authenticated",
		logger.UserID(user.ID.String()),
		logger.String("status", string(user.Status)),
		logger.String("role", string(user.Role)),
	)

	return user, token, nil
}

// AuthenticateSession verifies a session token and loads the user record
func (s *AuthService) AuthenticateSession(ctx context.Context, token string) (*models.User, error) {
	subjectID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, subjectID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			// Token outlived the account; treat as no identity
			return nil, apperrors.Unauthorized("invalid or expired token", apperrors.ErrInvalidToken)
		}
		return nil, err
	}

	return user, nil
}

// TokenLifetime reports how long issued session tokens remain valid
func (s *AuthService) TokenLifetime() time.Duration {
	return s.tokens.Lifetime()
}

// findOrCreateUser locates the user for a federated identity, creating the
// record on first login. Status and role are never changed by login alone.
func (s *AuthService) findOrCreateUser(ctx context.Context, identity *Identity) (*models.User, error) {
	user, err := s.userRepo.FindByGoogleSubject(ctx, identity.Subject)
	if err == nil {
		return s.touchLogin(ctx, user, identity)
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}

	created, err := s.createUser(ctx, identity)
	if err == nil {
		return created, nil
	}

	// A concurrent first login for the same subject can lose the insert race;
	// the uniqueness constraint is the authority and the loser falls through
	// to the lookup path.
	if apperrors.IsConflict(err) {
		s.log.Debug("Concurrent user creation detected, falling back to lookup",
			logger.String("email", identity.Email),
		)
		user, lookupErr := s.userRepo.FindByGoogleSubject(ctx, identity.Subject)
		if lookupErr != nil {
			return nil, lookupErr
		}
		return s.touchLogin(ctx, user, identity)
	}

	return nil, err
}

// createUser inserts a new user record. The first-user decision and the
// insert it gates share one transaction so the bootstrap is atomic.
func (s *AuthService) createUser(ctx context.Context, identity *Identity) (*models.User, error) {
	now := time.Now()
	user := &models.User{
		Email:         strings.ToLower(identity.Email),
		Name:          identity.Name,
		PictureURL:    identity.PictureURL,
		GoogleSubject: identity.Subject,
		LastLogin:     &now,
	}

	err := s.userRepo.Transaction(ctx, func(repo repository.UserRepository) error {
		count, err := repo.Count(ctx)
		if err != nil {
			return err
		}

		user.Role, user.Status = DecideInitialRoleAndStatus(count)
		return repo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("New user created",
		logger.UserID(user.ID.String()),
		logger.String("email", user.Email),
		logger.String("status", string(user.Status)),
		logger.String("role", string(user.Role)),
	)

	return user, nil
}

// touchLogin refreshes last_login and provider-sourced display metadata
func (s *AuthService) touchLogin(ctx context.Context, user *models.User, identity *Identity) (*models.User, error) {
	now := time.Now()
	user.LastLogin = &now
	if identity.Name != "" {
		user.Name = identity.Name
	}
	if identity.PictureURL != "" {
		user.PictureURL = identity.PictureURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

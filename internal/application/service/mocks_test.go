package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/adstudio-ai/adstudio/internal/domain/repository"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
)

// mockUserRepo implements repository.UserRepository with overridable funcs
type mockUserRepo struct {
	createFunc              func(ctx context.Context, user *models.User) error
	findByIDFunc            func(ctx context.Context, id uuid.UUID) (*models.User, error)
	findByEmailFunc         func(ctx context.Context, email string) (*models.User, error)
	findByGoogleSubjectFunc func(ctx context.Context, subject string) (*models.User, error)
	updateFunc              func(ctx context.Context, user *models.User) error
	deleteFunc              func(ctx context.Context, id uuid.UUID) error
	listFunc                func(ctx context.Context, limit, offset int) ([]*models.User, error)
	countFunc               func(ctx context.Context) (int64, error)
	transactionFunc         func(ctx context.Context, fn func(repo repository.UserRepository) error) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, apperrors.NotFound("user", apperrors.ErrNotFound)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, apperrors.NotFound("user", apperrors.ErrNotFound)
}

func (m *mockUserRepo) FindByGoogleSubject(ctx context.Context, subject string) (*models.User, error) {
	if m.findByGoogleSubjectFunc != nil {
		return m.findByGoogleSubjectFunc(ctx, subject)
	}
	return nil, apperrors.NotFound("user", apperrors.ErrNotFound)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepo) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockUserRepo) Transaction(ctx context.Context, fn func(repo repository.UserRepository) error) error {
	if m.transactionFunc != nil {
		return m.transactionFunc(ctx, fn)
	}
	return fn(m)
}

// mockIdentityProvider implements IdentityProvider
type mockIdentityProvider struct {
	authenticateFunc func(ctx context.Context, code, redirectURI string) (*Identity, error)
}

func (m *mockIdentityProvider) Authenticate(ctx context.Context, code, redirectURI string) (*Identity, error) {
	return m.authenticateFunc(ctx, code, redirectURI)
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
)

func TestUserService_ApproveUser(t *testing.T) {
	adminID := uuid.New()
	targetID := uuid.New()
	target := &models.User{ID: targetID, Status: models.StatusPending, Role: models.RoleUser}

	var updated *models.User
	repo := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			require.Equal(t, targetID, id)
			return target, nil
		},
		updateFunc: func(ctx context.Context, user *models.User) error {
			updated = user
			return nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.ApproveUser(context.Background(), adminID, targetID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.StatusApproved, user.Status)
}

func TestUserService_ApproveUser_AlreadyApproved(t *testing.T) {
	target := &models.User{ID: uuid.New(), Status: models.StatusApproved}

	repo := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return target, nil
		},
		updateFunc: func(ctx context.Context, user *models.User) error {
			t.Fatal("no update may happen for an already approved user")
			return nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.ApproveUser(context.Background(), uuid.New(), target.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestUserService_ApproveUser_NotFound(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo)

	_, err := svc.ApproveUser(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserService_RejectUser(t *testing.T) {
	target := &models.User{ID: uuid.New(), Status: models.StatusApproved}

	repo := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return target, nil
		},
	}
	svc := NewUserService(repo)

	// Rejection is allowed from approved, not only pending
	user, err := svc.RejectUser(context.Background(), uuid.New(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, user.Status)
}

func TestUserService_RejectUser_Self(t *testing.T) {
	adminID := uuid.New()

	repo := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			t.Fatal("self-rejection must fail before any lookup")
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.RejectUser(context.Background(), adminID, adminID)
	require.Error(t, err)
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestUserService_DeleteUser(t *testing.T) {
	targetID := uuid.New()
	deleted := false

	repo := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{ID: targetID}, nil
		},
		deleteFunc: func(ctx context.Context, id uuid.UUID) error {
			require.Equal(t, targetID, id)
			deleted = true
			return nil
		},
	}
	svc := NewUserService(repo)

	err := svc.DeleteUser(context.Background(), uuid.New(), targetID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestUserService_DeleteUser_Self(t *testing.T) {
	adminID := uuid.New()
	svc := NewUserService(&mockUserRepo{})

	err := svc.DeleteUser(context.Background(), adminID, adminID)
	require.Error(t, err)
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	repo := &mockUserRepo{
		deleteFunc: func(ctx context.Context, id uuid.UUID) error {
			t.Fatal("delete must not run for a missing user")
			return nil
		},
	}
	svc := NewUserService(repo)

	err := svc.DeleteUser(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/adstudio-ai/adstudio/internal/domain/repository"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// UserService handles administrative user management: listing, approval,
// rejection and deletion. All mutations are explicit admin actions; login
// never changes status or role.
type UserService struct {
	userRepo repository.UserRepository
	log      *logger.Logger
}

// NewUserService creates a new UserService instance
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		log:      logger.Get().WithFields(logger.Component("user-service")),
	}
}

// ListUsers retrieves all users with pagination
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// GetUser retrieves a single user by id
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// ApproveUser transitions the target to approved. Approving an already
// approved user is a conflict and leaves the record untouched.
func (s *UserService) ApproveUser(ctx context.Context, actingUserID, targetID uuid.UUID) (*models.User, error) {
	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if target.Status == models.StatusApproved {
		return nil, apperrors.BadRequest("user is already approved", apperrors.ErrAlreadyApproved)
	}

	target.Status = models.StatusApproved
	if err := s.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	s.log.Info("User approved",
		logger.UserID(target.ID.String()),
		logger.String("acting_user_id", actingUserID.String()),
	)
	return target, nil
}

// RejectUser transitions the target to rejected. Rejection is allowed from
// any status, but an administrator can never reject their own account; that
// check runs before the mutation.
func (s *UserService) RejectUser(ctx context.Context, actingUserID, targetID uuid.UUID) (*models.User, error) {
	if actingUserID == targetID {
		return nil, apperrors.BadRequest("cannot reject your own account", apperrors.ErrSelfAction)
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	target.Status = models.StatusRejected
	if err := s.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	s.log.Info("User rejected",
		logger.UserID(target.ID.String()),
		logger.String("acting_user_id", actingUserID.String()),
	)
	return target, nil
}

// DeleteUser permanently removes the target record. An administrator can
// never delete their own account.
func (s *UserService) DeleteUser(ctx context.Context, actingUserID, targetID uuid.UUID) error {
	if actingUserID == targetID {
		return apperrors.BadRequest("cannot delete your own account", apperrors.ErrSelfAction)
	}

	// Resolve first so a missing target surfaces as 404, not a silent no-op
	if _, err := s.userRepo.FindByID(ctx, targetID); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		return err
	}

	s.log.Info("User deleted",
		logger.UserID(targetID.String()),
		logger.String("acting_user_id", actingUserID.String()),
	)
	return nil
}

package repository

import (
	"context"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access operations
type UserRepository interface {
	// Create creates a new user in the database.
	// A duplicate email or Google subject yields a conflict error.
	Create(ctx context.Context, user *models.User) error

	// FindByID retrieves a user by their ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByEmail retrieves a user by their email address
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByGoogleSubject retrieves a user by the provider's stable sub claim
	FindByGoogleSubject(ctx context.Context, subject string) (*models.User, error)

	// Update updates an existing user's information
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user from the database by their ID
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves all users with pagination
	List(ctx context.Context, limit, offset int) ([]*models.User, error)

	// Count returns the total number of users
	Count(ctx context.Context) (int64, error)

	// Transaction runs fn against a repository bound to a single database
	// transaction. The first-user bootstrap decision and the insert it
	// gates must share one transaction.
	Transaction(ctx context.Context, fn func(repo UserRepository) error) error
}

package service

import (
	"context"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
)

// AuthService resolves a session token to the user it identifies.
// Verification failures of any kind (bad signature, malformed payload,
// expiry) surface as "no identity", never as a fatal error.
type AuthService interface {
	// AuthenticateSession verifies a session token and loads the user record
	AuthenticateSession(ctx context.Context, token string) (*models.User, error)
}

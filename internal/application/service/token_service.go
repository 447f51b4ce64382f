package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
)

// TokenService issues and verifies the signed session token. The token
// carries only the subject id, issued-at and expiry; no other claims are
// trusted.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
	issuer   string
	now      func() time.Time
}

// SessionClaims represents the claims in the session JWT
type SessionClaims struct {
	jwt.RegisteredClaims
}

// NewTokenService creates a new TokenService instance
func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		lifetime: lifetime,
		issuer:   "adstudio",
		now:      time.Now,
	}
}

// Lifetime returns the configured token lifetime
func (s *TokenService) Lifetime() time.Duration {
	return s.lifetime
}

// Issue produces a signed token embedding the subject id
func (s *TokenService) Issue(subjectID uuid.UUID) (string, error) {
	now := s.now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subjectID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signedToken, nil
}

// Verify checks signature and expiry and returns the embedded subject id.
// Any signature mismatch, malformed payload or expiry violation yields an
// invalid-token error; callers treat that as "no identity".
func (s *TokenService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return uuid.Nil, apperrors.Unauthorized("invalid or expired token", apperrors.ErrInvalidToken)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return uuid.Nil, apperrors.Unauthorized("invalid or expired token", apperrors.ErrInvalidToken)
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperrors.Unauthorized("invalid token subject", apperrors.ErrInvalidToken)
	}

	return subjectID, nil
}

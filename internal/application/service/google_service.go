package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/adstudio-ai/adstudio/internal/config"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

const googleIssuerURL = "https://accounts.google.com"

// GoogleService exchanges an authorization code for a federated Google
// identity. It verifies the ID token from the exchange when present and
// falls back to the userinfo endpoint otherwise. It holds no local state
// beyond clients and configuration.
type GoogleService struct {
	config      *config.AuthConfig
	oauth2Cfg   *oauth2.Config
	verifier    *oidc.IDTokenVerifier
	userinfo    *resty.Client
	initialized bool
	log         *logger.Logger
}

// Identity is the federated profile returned by the provider
type Identity struct {
	Subject    string `json:"sub"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	PictureURL string `json:"picture"`
}

// NewGoogleService creates a new GoogleService instance
func NewGoogleService(cfg *config.AuthConfig) *GoogleService {
	return &GoogleService{
		config: cfg,
		oauth2Cfg: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
		userinfo: resty.New().
			SetBaseURL("https://openidconnect.googleapis.com").
			SetTimeout(cfg.ExchangeTimeout),
		log: logger.Get().WithFields(logger.Component("google-service")),
	}
}

// Initialize sets up the OIDC provider connection for ID token verification.
// This should be called once before the first exchange.
func (s *GoogleService) Initialize(ctx context.Context) error {
	provider, err := oidc.NewProvider(ctx, googleIssuerURL)
	if err != nil {
		return fmt.Errorf("failed to initialize OIDC provider: %w", err)
	}

	s.verifier = provider.Verifier(&oidc.Config{ClientID: s.config.GoogleClientID})
	s.initialized = true

	s.log.Info("Google identity provider initialized",
		logger.String("client_id", truncateClientID(s.config.GoogleClientID)),
	)
	return nil
}

// Authenticate exchanges an authorization code and resolves the federated
// identity. The redirect URI must match the one used for the authorization
// request; when empty, the configured default is used.
func (s *GoogleService) Authenticate(ctx context.Context, code, redirectURI string) (*Identity, error) {
	token, err := s.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		return nil, err
	}

	// Prefer the ID token from the exchange; it spares a network round trip
	// and is signature-checked locally.
	if s.initialized {
		if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
			identity, err := s.identityFromIDToken(ctx, rawIDToken)
			if err == nil {
				return identity, nil
			}
			s.log.Warn("ID token verification failed, falling back to userinfo",
				logger.Error(err),
			)
		}
	}

	return s.FetchIdentity(ctx, token.AccessToken)
}

// ExchangeCode performs the server-to-server exchange with Google
func (s *GoogleService) ExchangeCode(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.ExchangeTimeout)
	defer cancel()

	var opts []oauth2.AuthCodeOption
	if redirectURI != "" && redirectURI != s.oauth2Cfg.RedirectURL {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	}

	token, err := s.oauth2Cfg.Exchange(ctx, code, opts...)
	if err != nil {
		s.log.Warn("Authorization code exchange failed",
			logger.Error(err),
			logger.String("client_id", truncateClientID(s.config.GoogleClientID)),
		)
		return nil, apperrors.FederationError("failed to exchange authorization code", err)
	}

	return token, nil
}

// FetchIdentity fetches the federated profile using the provider access token
func (s *GoogleService) FetchIdentity(ctx context.Context, accessToken string) (*Identity, error) {
	var identity Identity

	resp, err := s.userinfo.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&identity).
		Get("/v1/userinfo")
	if err != nil {
		return nil, apperrors.FederationError("failed to fetch user profile", err)
	}
	if resp.IsError() {
		return nil, apperrors.FederationError("failed to fetch user profile",
			fmt.Errorf("userinfo returned status %d: %s", resp.StatusCode(), resp.String()))
	}

	if identity.Subject == "" || identity.Email == "" {
		return nil, apperrors.FederationError("provider profile missing required claims", nil)
	}

	return &identity, nil
}

// identityFromIDToken verifies the ID token and extracts the profile claims
func (s *GoogleService) identityFromIDToken(ctx context.Context, rawIDToken string) (*Identity, error) {
	idToken, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify id_token: %w", err)
	}

	var identity Identity
	if err := idToken.Claims(&identity); err != nil {
		return nil, fmt.Errorf("failed to parse id_token claims: %w", err)
	}

	if identity.Subject == "" || identity.Email == "" {
		return nil, fmt.Errorf("id_token missing required claims")
	}

	return &identity, nil
}

// truncateClientID shortens the client id for logs. Full credentials are
// never loggable.
func truncateClientID(clientID string) string {
	if len(clientID) <= 12 {
		return clientID
	}
	return clientID[:12] + strings.Repeat("*", 4)
}

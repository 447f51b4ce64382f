package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adstudio-ai/adstudio/internal/application/service"
	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/adstudio-ai/adstudio/internal/domain/repository"
	"github.com/adstudio-ai/adstudio/internal/transport/http/middleware"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
)

// memUserRepo is an in-memory repository.UserRepository for handler tests
type memUserRepo struct {
	users []*models.User
}

func (m *memUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	m.users = append(m.users, user)
	return nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("user", apperrors.ErrNotFound)
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("user", apperrors.ErrNotFound)
}

func (m *memUserRepo) FindByGoogleSubject(ctx context.Context, subject string) (*models.User, error) {
	for _, u := range m.users {
		if u.GoogleSubject == subject {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("user", apperrors.ErrNotFound)
}

func (m *memUserRepo) Update(ctx context.Context, user *models.User) error { return nil }

func (m *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (m *memUserRepo) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return m.users, nil
}

func (m *memUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *memUserRepo) Transaction(ctx context.Context, fn func(repo repository.UserRepository) error) error {
	return fn(m)
}

type stubIdentityProvider struct {
	identity *service.Identity
	err      error
}

func (s *stubIdentityProvider) Authenticate(ctx context.Context, code, redirectURI string) (*service.Identity, error) {
	return s.identity, s.err
}

func newAuthTestRouter(provider service.IdentityProvider, repo repository.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	tokens := service.NewTokenService("test-secret", 30*time.Minute)
	authService := service.NewAuthService(repo, provider, tokens)
	authHandler := NewAuthHandler(authService, false)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	r := gin.New()
	r.POST("/auth/google", authHandler.GoogleLogin)
	r.GET("/auth/me", authMiddleware.RequireAuth(), authHandler.Me)
	r.POST("/auth/logout", authHandler.Logout)
	return r
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := w.Result()
	defer res.Body.Close()
	for _, c := range res.Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_GoogleLogin(t *testing.T) {
	provider := &stubIdentityProvider{
		identity: &service.Identity{
			Subject: "sub-1",
			Email:   "first@example.com",
			Name:    "First User",
		},
	}
	r := newAuthTestRouter(provider, &memUserRepo{})

	req := httptest.NewRequest(http.MethodPost, "/auth/google", strings.NewReader(`{"code":"auth-code"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie, "session cookie must be set")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((30 * time.Minute).Seconds()), cookie.MaxAge)

	// The token travels only in the cookie
	assert.NotContains(t, w.Body.String(), cookie.Value)
	assert.Contains(t, w.Body.String(), "first@example.com")
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)
}

func TestAuthHandler_GoogleLogin_MissingCode(t *testing.T) {
	r := newAuthTestRouter(&stubIdentityProvider{}, &memUserRepo{})

	req := httptest.NewRequest(http.MethodPost, "/auth/google", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_GoogleLogin_FederationFailure(t *testing.T) {
	provider := &stubIdentityProvider{
		err: apperrors.FederationError("code exchange failed", nil),
	}
	r := newAuthTestRouter(provider, &memUserRepo{})

	req := httptest.NewRequest(http.MethodPost, "/auth/google", strings.NewReader(`{"code":"bad"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, sessionCookie(t, w))
}

func TestAuthHandler_LoginThenMe(t *testing.T) {
	provider := &stubIdentityProvider{
		identity: &service.Identity{Subject: "sub-1", Email: "a@example.com", Name: "A"},
	}
	r := newAuthTestRouter(provider, &memUserRepo{})

	req := httptest.NewRequest(http.MethodPost, "/auth/google", strings.NewReader(`{"code":"auth-code"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)

	meReq := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	meReq.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	meW := httptest.NewRecorder()
	r.ServeHTTP(meW, meReq)

	require.Equal(t, http.StatusOK, meW.Code)
	assert.Contains(t, meW.Body.String(), "a@example.com")
}

func TestAuthHandler_Logout(t *testing.T) {
	r := newAuthTestRouter(&stubIdentityProvider{}, &memUserRepo{})

	// No session needed; logout is idempotent
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie, "logout must clear the session cookie")
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
)

type stubAuthService struct {
	users map[string]*models.User
}

func (s *stubAuthService) AuthenticateSession(ctx context.Context, token string) (*models.User, error) {
	if user, ok := s.users[token]; ok {
		return user, nil
	}
	return nil, apperrors.Unauthorized("invalid or expired token", apperrors.ErrInvalidToken)
}

func newTestRouter(auth *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := func(c *gin.Context) {
		user := GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": user.ID.String()})
	}

	r.GET("/me", auth.RequireAuth(), handler)
	r.GET("/approved", auth.RequireApproved(), handler)
	r.GET("/admin", auth.RequireAdmin(), handler)
	return r
}

func makeUser(role models.Role, status models.Status) *models.User {
	return &models.User{ID: uuid.New(), Role: role, Status: status}
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_NoCookie(t *testing.T) {
	auth := NewAuthMiddleware(&stubAuthService{})
	r := newTestRouter(auth)

	for _, path := range []string{"/me", "/approved", "/admin"} {
		w := doRequest(r, path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "path %s", path)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := NewAuthMiddleware(&stubAuthService{})
	r := newTestRouter(auth)

	w := doRequest(r, "/approved", "bad-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_PendingUser(t *testing.T) {
	pending := makeUser(models.RoleUser, models.StatusPending)
	auth := NewAuthMiddleware(&stubAuthService{users: map[string]*models.User{"tok": pending}})
	r := newTestRouter(auth)

	// Pending users can still see their own profile
	w := doRequest(r, "/me", "tok")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "/approved", "tok")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "pending approval")

	// The approval gate runs before the role gate, so a pending user
	// hitting an admin route sees the approval message, not a role error
	w = doRequest(r, "/admin", "tok")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "pending approval")
}

func TestAuthMiddleware_RejectedUser(t *testing.T) {
	rejected := makeUser(models.RoleUser, models.StatusRejected)
	auth := NewAuthMiddleware(&stubAuthService{users: map[string]*models.User{"tok": rejected}})
	r := newTestRouter(auth)

	w := doRequest(r, "/approved", "tok")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "rejected")
}

func TestAuthMiddleware_ApprovedNonAdmin(t *testing.T) {
	user := makeUser(models.RoleUser, models.StatusApproved)
	auth := NewAuthMiddleware(&stubAuthService{users: map[string]*models.User{"tok": user}})
	r := newTestRouter(auth)

	w := doRequest(r, "/approved", "tok")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "/admin", "tok")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin privileges required")
}

func TestAuthMiddleware_ApprovedAdmin(t *testing.T) {
	admin := makeUser(models.RoleAdmin, models.StatusApproved)
	auth := NewAuthMiddleware(&stubAuthService{users: map[string]*models.User{"tok": admin}})
	r := newTestRouter(auth)

	for _, path := range []string{"/me", "/approved", "/admin"} {
		w := doRequest(r, path, "tok")
		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
		assert.Contains(t, w.Body.String(), admin.ID.String())
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/adstudio-ai/adstudio/internal/domain/service"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "access_token"

// ContextKey is a type for context keys
type ContextKey string

const (
	// UserContextKey is the key for storing user in context
	UserContextKey ContextKey = "user"
)

// AuthMiddleware gates HTTP requests on the session cookie and the user's
// approval state. The gate order is fixed: authenticate, then approval,
// then role, short-circuiting at the first failure so unapproved users
// never see role information.
type AuthMiddleware struct {
	authService service.AuthService
	log         *logger.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance
func NewAuthMiddleware(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		log:         logger.Get().WithFields(logger.Component("auth-middleware")),
	}
}

// RequireAuth requires a valid session; the user's approval status is not
// consulted. Used only for endpoints that must work for pending users,
// such as viewing one's own profile.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.authenticate(c)
		if !ok {
			return
		}
		m.setUserContext(c, user)
		c.Next()
	}
}

// RequireApproved requires a valid session for an approved account
func (m *AuthMiddleware) RequireApproved() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.authenticate(c)
		if !ok {
			return
		}
		if !m.checkApproved(c, user) {
			return
		}
		m.setUserContext(c, user)
		c.Next()
	}
}

// RequireAdmin requires a valid session for an approved admin account
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.authenticate(c)
		if !ok {
			return
		}
		if !m.checkApproved(c, user) {
			return
		}
		if !user.IsAdmin() {
			m.log.Warn("Non-admin user attempted to access admin endpoint",
				logger.UserID(user.ID.String()),
				logger.Path(c.Request.URL.Path),
				logger.Method(c.Request.Method),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "admin privileges required",
			})
			return
		}
		m.setUserContext(c, user)
		c.Next()
	}
}

// authenticate resolves the session cookie to a user. Missing, tampered
// and expired tokens are indistinguishable to the caller: all yield a
// generic 401.
func (m *AuthMiddleware) authenticate(c *gin.Context) (*models.User, bool) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		m.abortUnauthorized(c)
		return nil, false
	}

	user, err := m.authService.AuthenticateSession(c.Request.Context(), token)
	if err != nil || user == nil {
		m.abortUnauthorized(c)
		return nil, false
	}

	return user, true
}

// checkApproved enforces the approval gate with status-specific messages
func (m *AuthMiddleware) checkApproved(c *gin.Context, user *models.User) bool {
	switch user.Status {
	case models.StatusApproved:
		return true
	case models.StatusRejected:
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":   "forbidden",
			"message": "your account has been rejected",
		})
	default: // pending
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":   "forbidden",
			"message": "your account is pending approval",
		})
	}

	m.log.Debug("Unapproved user blocked",
		logger.UserID(user.ID.String()),
		logger.String("status", string(user.Status)),
		logger.Path(c.Request.URL.Path),
	)
	return false
}

func (m *AuthMiddleware) abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "unauthorized",
		"message": "authentication required",
	})
}

// setUserContext sets the user in the gin context
func (m *AuthMiddleware) setUserContext(c *gin.Context, user *models.User) {
	c.Set(string(UserContextKey), user)
}

// GetUserFromContext retrieves the authenticated user from the context
func GetUserFromContext(c *gin.Context) *models.User {
	if user, exists := c.Get(string(UserContextKey)); exists {
		if u, ok := user.(*models.User); ok {
			return u
		}
	}
	return nil
}

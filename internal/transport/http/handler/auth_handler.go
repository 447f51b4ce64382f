package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adstudio-ai/adstudio/internal/application/dto"
	"github.com/adstudio-ai/adstudio/internal/application/service"
	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/adstudio-ai/adstudio/internal/transport/http/middleware"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService  *service.AuthService
	cookieSecure bool
	log          *logger.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieSecure: cookieSecure,
		log:          logger.Get().WithFields(logger.Component("auth-handler")),
	}
}

// GoogleLogin exchanges a Google authorization code for a session. The
// session token travels only in an HTTP-only cookie, never in the body.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Code, req.RedirectURI)
	if err != nil {
		handleError(c, err)
		return
	}

	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, dto.LoginResponse{
		User:    dto.NewUserInfo(user),
		Message: loginMessage(user),
	})
}

// Me returns the authenticated user's own profile. Pending and rejected
// users can reach this endpoint so the frontend can explain their state.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "unauthorized",
			"message": "authentication required",
		})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserInfo(user))
}

// Logout clears the session cookie. Idempotent: always returns 200,
// whether or not a session existed.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(h.authService.TokenLifetime().Seconds()),
		"/",
		"",
		h.cookieSecure,
		true,
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)
}

func loginMessage(user *models.User) string {
	if user.IsApproved() {
		return "login successful"
	}
	return "login successful, account pending approval"
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adstudio-ai/adstudio/internal/application/dto"
	"github.com/adstudio-ai/adstudio/internal/application/service"
	"github.com/adstudio-ai/adstudio/internal/transport/http/middleware"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// AdminHandler handles user administration endpoints
type AdminHandler struct {
	userService *service.UserService
	log         *logger.Logger
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(userService *service.UserService) *AdminHandler {
	return &AdminHandler{
		userService: userService,
		log:         logger.Get().WithFields(logger.Component("admin-handler")),
	}
}

// ListUsers returns all users, newest first
func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	users, err := h.userService.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": dto.NewUserInfoList(users),
		"count": len(users),
	})
}

// GetUser returns a single user by id
func (h *AdminHandler) GetUser(c *gin.Context) {
	targetID, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), targetID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserInfo(user))
}

// ApproveUser transitions a user to the approved state
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	acting := middleware.GetUserFromContext(c)
	targetID, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.ApproveUser(c.Request.Context(), acting.ID, targetID)
	if err != nil {
		handleError(c, err)
		return
	}

	h.log.Info("User approved",
		logger.UserID(acting.ID.String()),
		logger.String("target_id", targetID.String()),
	)
	c.JSON(http.StatusOK, dto.NewUserInfo(user))
}

// RejectUser transitions a user to the rejected state
func (h *AdminHandler) RejectUser(c *gin.Context) {
	acting := middleware.GetUserFromContext(c)
	targetID, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.RejectUser(c.Request.Context(), acting.ID, targetID)
	if err != nil {
		handleError(c, err)
		return
	}

	h.log.Info("User rejected",
		logger.UserID(acting.ID.String()),
		logger.String("target_id", targetID.String()),
	)
	c.JSON(http.StatusOK, dto.NewUserInfo(user))
}

// DeleteUser removes a user account
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	acting := middleware.GetUserFromContext(c)
	targetID, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), acting.ID, targetID); err != nil {
		handleError(c, err)
		return
	}

	h.log.Info("User deleted",
		logger.UserID(acting.ID.String()),
		logger.String("target_id", targetID.String()),
	)
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

func parseUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handleError(c, apperrors.ValidationError("id", "invalid user id"))
		return uuid.Nil, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

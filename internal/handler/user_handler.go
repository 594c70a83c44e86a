package handler

import (
	"log/slog"
	"net/http"

	"newscheck/internal/dto"
	"newscheck/internal/middleware"
	"newscheck/internal/models"
	"newscheck/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	log         *slog.Logger
}

func NewUserHandler(userService service.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// List returns every registered user. ADMIN only.
// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateRole changes a user's role. ADMIN only; self-demotion is allowed.
// PATCH /users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.userService.UpdateRole(c.Param("id"), models.Role(req.Role))
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateProfile applies a partial edit to the caller's own name or avatar.
// The role field is not part of the request shape.
// PATCH /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	caller := middleware.CallerIdentity(c)
	if !caller.Authenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(caller.UserID, req)
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

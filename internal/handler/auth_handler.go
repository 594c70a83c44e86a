package handler

import (
	"log/slog"
	"net/http"

	"newscheck/internal/dto"
	"newscheck/internal/middleware"
	"newscheck/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
	log         *slog.Logger
}

func NewAuthHandler(authService service.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// Register creates a READER account and returns a token alongside the user.
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	token, user, err := h.authService.Register(req)
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.FromModelToUserResponse(user),
	})
}

// Login exchanges email and password for a token.
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.FromModelToUserResponse(user),
	})
}

// Me returns the authenticated caller's own record.
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	caller := middleware.CallerIdentity(c)
	if !caller.Authenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, err := h.authService.GetUser(caller.UserID)
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

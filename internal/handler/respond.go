package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"newscheck/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationIssue is one violated constraint on one request field. Binding
// failures report every violated field, not just the first.
type ValidationIssue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// bindingError turns a gin binding failure into a 400 with field-level detail.
func bindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]ValidationIssue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, ValidationIssue{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: fe.Error(),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": issues})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// serviceError maps service sentinels onto HTTP statuses. Anything
// unrecognized is logged server-side and reported opaquely.
func serviceError(c *gin.Context, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNewsNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyVoted),
		errors.Is(err, service.ErrEmailInUse):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

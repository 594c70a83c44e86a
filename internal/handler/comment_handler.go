package handler

import (
	"log/slog"
	"net/http"

	"newscheck/internal/dto"
	"newscheck/internal/middleware"
	"newscheck/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
	log            *slog.Logger
}

func NewCommentHandler(commentService service.CommentService, log *slog.Logger) *CommentHandler {
	return &CommentHandler{commentService: commentService, log: log}
}

// ListByNews retrieves the live comments for a news item with pagination.
// GET /news/:id/comments?page=1&pageSize=10
func (h *CommentHandler) ListByNews(c *gin.Context) {
	newsID := c.Param("id")
	if newsID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "news id is required"})
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindingError(c, err)
		return
	}

	page, err := h.commentService.ListByNews(newsID, query)
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Create posts a comment on a news item. Authenticated callers only; voting
// first is not required.
// POST /news/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	caller := middleware.CallerIdentity(c)
	if !caller.Authenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	comment, err := h.commentService.Create(c.Param("id"), caller.UserID, req)
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Delete soft-deletes a comment. ADMIN only; the record is hidden, not purged.
// DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	comment, err := h.commentService.SoftDelete(c.Param("id"))
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

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

type NewsHandler struct {
	newsService service.NewsService
	log         *slog.Logger
}

func NewNewsHandler(newsService service.NewsService, log *slog.Logger) *NewsHandler {
	return &NewsHandler{newsService: newsService, log: log}
}

// List returns a filtered page of news with vote tallies and comment counts.
// Reads are lenient about auth: an invalid token degrades to anonymous, a
// valid admin token unlocks includeDeleted.
// GET /news?page=1&pageSize=10&status=FAKE&q=...&includeDeleted=true
func (h *NewsHandler) List(c *gin.Context) {
	var query dto.NewsListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindingError(c, err)
		return
	}

	page, err := h.newsService.List(query, middleware.CallerIdentity(c))
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get returns one news item with aggregates and the caller's own vote.
// A hidden item is indistinguishable from a missing one for non-admins.
// GET /news/:id
func (h *NewsHandler) Get(c *gin.Context) {
	detail, err := h.newsService.GetByID(c.Param("id"), middleware.CallerIdentity(c))
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Create submits a news item. MEMBER or ADMIN only; enforced by route middleware.
// POST /news
func (h *NewsHandler) Create(c *gin.Context) {
	caller := middleware.CallerIdentity(c)
	if !caller.Authenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	news, err := h.newsService.Create(caller.UserID, req)
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, news)
}

// UpdateStatus sets the moderator-asserted classification. ADMIN only.
// PATCH /news/:id
func (h *NewsHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateNewsStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	news, err := h.newsService.UpdateStatus(c.Param("id"), models.NewsStatus(req.Status))
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// SetVisibility soft-deletes or restores a news item. ADMIN only, reversible.
// PATCH /news/:id/visibility
func (h *NewsHandler) SetVisibility(c *gin.Context) {
	var req dto.SetNewsVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	news, err := h.newsService.SetVisibility(c.Param("id"), *req.IsDeleted)
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

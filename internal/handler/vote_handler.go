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

type VoteHandler struct {
	voteService service.VoteService
	log         *slog.Logger
}

func NewVoteHandler(voteService service.VoteService, log *slog.Logger) *VoteHandler {
	return &VoteHandler{voteService: voteService, log: log}
}

// Cast records the caller's verdict on a news item. One vote per user per
// news; a duplicate loses with a 400.
// POST /news/:id/vote
func (h *VoteHandler) Cast(c *gin.Context) {
	caller := middleware.CallerIdentity(c)
	if !caller.Authenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	vote, err := h.voteService.Cast(c.Param("id"), caller.UserID, models.VoteValue(req.Vote))
	if err != nil {
		serviceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, vote)
}

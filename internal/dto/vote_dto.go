package dto

import (
	"time"

	"newscheck/internal/models"
)

// CastVoteRequest for voting on a news item. Votes are final: no update or
// retraction is representable.
type CastVoteRequest struct {
	Vote string `json:"vote" binding:"required,oneof=FAKE NOT_FAKE"`
}

// VoteResponse echoes the stored vote.
type VoteResponse struct {
	ID        int64            `json:"id"`
	NewsID    string           `json:"newsId"`
	UserID    string           `json:"userId"`
	Vote      models.VoteValue `json:"vote"`
	CreatedAt time.Time        `json:"createdAt"`
}

func FromModelToVoteResponse(vote *models.Vote) VoteResponse {
	return VoteResponse{
		ID:        vote.ID,
		NewsID:    vote.NewsID,
		UserID:    vote.UserID,
		Vote:      vote.Vote,
		CreatedAt: vote.CreatedAt,
	}
}

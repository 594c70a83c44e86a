package dto

import (
	"time"

	"newscheck/internal/models"
)

// CreateNewsRequest for submitting a news item. All three text fields are required.
type CreateNewsRequest struct {
	Topic       string  `json:"topic" binding:"required,min=1"`
	ShortDetail string  `json:"shortDetail" binding:"required,min=1"`
	FullDetail  string  `json:"fullDetail" binding:"required,min=1"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,url"`
}

// UpdateNewsStatusRequest for the admin-asserted classification. The status is
// independent of the community tally.
type UpdateNewsStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=UNKNOWN FAKE NOT_FAKE"`
}

// SetNewsVisibilityRequest toggles the soft-delete flag, both directions.
type SetNewsVisibilityRequest struct {
	IsDeleted *bool `json:"isDeleted" binding:"required"`
}

// NewsListQuery binds the list filters alongside pagination.
// includeDeleted is only honored for admin callers.
type NewsListQuery struct {
	PageQuery
	Status         string `form:"status" binding:"omitempty,oneof=UNKNOWN FAKE NOT_FAKE"`
	Q              string `form:"q"`
	IncludeDeleted bool   `form:"includeDeleted"`
}

// NewsResponse is one row of a news listing, with its read-time aggregates.
type NewsResponse struct {
	ID           string            `json:"id"`
	Topic        string            `json:"topic"`
	ShortDetail  string            `json:"shortDetail"`
	FullDetail   string            `json:"fullDetail"`
	ImageURL     *string           `json:"imageUrl"`
	Status       models.NewsStatus `json:"status"`
	IsDeleted    bool              `json:"isDeleted"`
	ReporterID   string            `json:"reporterId"`
	Reporter     UserSummary       `json:"reporter"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	VoteCounts   models.VoteCounts `json:"voteCounts"`
	CommentCount int64             `json:"commentCount"`
}

// NewsDetailResponse adds the caller's own vote, null when anonymous or unvoted.
type NewsDetailResponse struct {
	NewsResponse
	UserVote *models.VoteValue `json:"userVote"`
}

func FromModelToNewsResponse(news *models.News, votes models.VoteCounts, commentCount int64) NewsResponse {
	return NewsResponse{
		ID:           news.ID,
		Topic:        news.Topic,
		ShortDetail:  news.ShortDetail,
		FullDetail:   news.FullDetail,
		ImageURL:     news.ImageURL,
		Status:       news.Status,
		IsDeleted:    news.Visibility.Hidden(),
		ReporterID:   news.ReporterID,
		Reporter:     FromModelToUserSummary(&news.Reporter),
		CreatedAt:    news.CreatedAt,
		UpdatedAt:    news.UpdatedAt,
		VoteCounts:   votes,
		CommentCount: commentCount,
	}
}

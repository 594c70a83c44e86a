package dto

import (
	"time"

	"newscheck/internal/models"
)

// CreateCommentRequest for posting a comment. Content is always required;
// callers posting an image-only comment substitute placeholder text before
// calling, by convention.
type CreateCommentRequest struct {
	Content  string  `json:"content" binding:"required,min=1"`
	ImageURL *string `json:"imageUrl" binding:"omitempty,url"`
}

// CommentResponse for returning comment information.
type CommentResponse struct {
	ID        string      `json:"id"`
	NewsID    string      `json:"newsId"`
	UserID    string      `json:"userId"`
	Content   string      `json:"content"`
	ImageURL  *string     `json:"imageUrl"`
	IsDeleted bool        `json:"isDeleted"`
	CreatedAt time.Time   `json:"createdAt"`
	User      UserSummary `json:"user"`
}

func FromModelToCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		NewsID:    comment.NewsID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		ImageURL:  comment.ImageURL,
		IsDeleted: comment.Visibility.Hidden(),
		CreatedAt: comment.CreatedAt,
		User:      FromModelToUserSummary(&comment.User),
	}
}

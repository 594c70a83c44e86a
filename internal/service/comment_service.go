package service

import (
	"errors"

	"newscheck/internal/dto"
	"newscheck/internal/models"
	"newscheck/internal/repository"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService interface {
	ListByNews(newsID string, pageQuery dto.PageQuery) (dto.Page[dto.CommentResponse], error)
	Create(newsID, userID string, req dto.CreateCommentRequest) (*dto.CommentResponse, error)
	SoftDelete(id string) (*dto.CommentResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	newsRepo    repository.NewsRepository
}

func NewCommentService(commentRepo repository.CommentRepository, newsRepo repository.NewsRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		newsRepo:    newsRepo,
	}
}

// ListByNews returns the active comments for a news item, newest first.
// Hidden comments are invisible here for every caller, admins included.
func (s *commentService) ListByNews(newsID string, pageQuery dto.PageQuery) (dto.Page[dto.CommentResponse], error) {
	page, pageSize := pageQuery.Resolve()

	comments, total, err := s.commentRepo.ListByNews(newsID, page, pageSize)
	if err != nil {
		return dto.Page[dto.CommentResponse]{}, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, dto.FromModelToCommentResponse(&comments[i]))
	}

	return dto.NewPage(responses, total, page, pageSize), nil
}

// Create posts a comment on an existing news item. Commenting does not
// require having voted, and a hidden news item still accepts comments; only
// absence of the record fails.
func (s *commentService) Create(newsID, userID string, req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.newsRepo.GetByID(newsID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		NewsID:     newsID,
		UserID:     userID,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		Visibility: models.VisibilityActive,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// Reload with user data
	created, err := s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelToCommentResponse(created)
	return &resp, nil
}

// SoftDelete hides a comment. The record survives; it simply drops out of
// listings and live counts. Vote tallies are unaffected.
func (s *commentService) SoftDelete(id string) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.SetVisibility(id, models.VisibilityHidden)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	resp := dto.FromModelToCommentResponse(comment)
	return &resp, nil
}

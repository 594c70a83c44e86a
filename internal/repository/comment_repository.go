package repository

import (
	"newscheck/internal/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id string) (*models.Comment, error)
	ListByNews(newsID string, page, pageSize int) ([]models.Comment, int64, error)
	CountActiveByNews(newsIDs []string) (map[string]int64, error)
	SetVisibility(id string, visibility models.Visibility) (*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by its ID, hidden or not. Only admin paths
// reach individual comment records directly.
func (r *commentRepository) GetByID(id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", id).
		Preload("User").
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByNews retrieves the active comments for a news item with pagination.
// Hidden comments are excluded for every caller, admins included. Count and
// page run in one transaction so both observe the same state.
func (r *commentRepository) ListByNews(newsID string, page, pageSize int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		base := tx.Model(&models.Comment{}).
			Where("news_id = ? AND visibility = ?", newsID, models.VisibilityActive)
		if err := base.Count(&total).Error; err != nil {
			return err
		}

		offset := (page - 1) * pageSize
		return tx.Where("news_id = ? AND visibility = ?", newsID, models.VisibilityActive).
			Preload("User").
			Order("created_at DESC").
			Order("id DESC").
			Limit(pageSize).
			Offset(offset).
			Find(&comments).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// CountActiveByNews counts non-hidden comments per news id in one grouped
// query. Ids without comments map to zero.
func (r *commentRepository) CountActiveByNews(newsIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(newsIDs))
	for _, id := range newsIDs {
		counts[id] = 0
	}
	if len(newsIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		NewsID string
		N      int64
	}
	err := r.db.Model(&models.Comment{}).
		Select("news_id, COUNT(*) as n").
		Where("news_id IN ? AND visibility = ?", newsIDs, models.VisibilityActive).
		Group("news_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.NewsID] = row.N
	}
	return counts, nil
}

// SetVisibility flips the soft-delete state. The record itself is never purged.
func (r *commentRepository) SetVisibility(id string, visibility models.Visibility) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	comment.Visibility = visibility
	if err := r.db.Save(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

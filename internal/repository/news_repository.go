package repository

import (
	"newscheck/internal/models"

	"gorm.io/gorm"
)

// NewsFilter narrows a news listing. Query is a substring match over topic,
// shortDetail and fullDetail using the store's LIKE collation (case sensitive
// on PostgreSQL). IncludeHidden is only set by the service when the caller is
// an admin asking for hidden rows explicitly.
type NewsFilter struct {
	Status        models.NewsStatus
	Query         string
	IncludeHidden bool
}

type NewsRepository interface {
	Create(news *models.News) error
	GetByID(id string) (*models.News, error)
	List(filter NewsFilter, page, pageSize int) ([]models.News, int64, error)
	UpdateStatus(id string, status models.NewsStatus) (*models.News, error)
	SetVisibility(id string, visibility models.Visibility) (*models.News, error)
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// GetByID returns the row regardless of visibility; hiding deleted rows from
// non-admin callers is the service's decision, not the store's.
func (r *newsRepository) GetByID(id string) (*models.News, error) {
	var news models.News
	err := r.db.Where("id = ?", id).
		Preload("Reporter").
		First(&news).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// List returns one page of news plus the total row count. Count and page are
// read inside a single transaction so both observe the same state.
func (r *newsRepository) List(filter NewsFilter, page, pageSize int) ([]models.News, int64, error) {
	var items []models.News
	var total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		q := applyNewsFilter(tx.Model(&models.News{}), filter)
		if err := q.Count(&total).Error; err != nil {
			return err
		}

		offset := (page - 1) * pageSize
		return applyNewsFilter(tx.Model(&models.News{}), filter).
			Preload("Reporter").
			Order("created_at DESC").
			Order("id DESC"). // stable tie-break for identical timestamps
			Limit(pageSize).
			Offset(offset).
			Find(&items).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func applyNewsFilter(q *gorm.DB, filter NewsFilter) *gorm.DB {
	if !filter.IncludeHidden {
		q = q.Where("visibility = ?", models.VisibilityActive)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Where("topic LIKE ? OR short_detail LIKE ? OR full_detail LIKE ?", like, like, like)
	}
	return q
}

func (r *newsRepository) UpdateStatus(id string, status models.NewsStatus) (*models.News, error) {
	var news models.News
	if err := r.db.Where("id = ?", id).First(&news).Error; err != nil {
		return nil, err
	}
	news.Status = status
	if err := r.db.Save(&news).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

// SetVisibility toggles the soft-delete state. Idempotent and reversible.
func (r *newsRepository) SetVisibility(id string, visibility models.Visibility) (*models.News, error) {
	var news models.News
	if err := r.db.Where("id = ?", id).First(&news).Error; err != nil {
		return nil, err
	}
	news.Visibility = visibility
	if err := r.db.Save(&news).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

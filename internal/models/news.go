package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsStatus string

const (
	StatusUnknown NewsStatus = "UNKNOWN"
	StatusFake    NewsStatus = "FAKE"
	StatusNotFake NewsStatus = "NOT_FAKE"
)

// ValidNewsStatus reports whether s names a known moderation status.
func ValidNewsStatus(s string) bool {
	switch NewsStatus(s) {
	case StatusUnknown, StatusFake, StatusNotFake:
		return true
	}
	return false
}

// Visibility is the soft-delete state shared by News and Comment.
// A HIDDEN record still exists in the store; it is excluded from reads
// for everyone but admins asking for it explicitly.
type Visibility string

const (
	VisibilityActive Visibility = "ACTIVE"
	VisibilityHidden Visibility = "HIDDEN"
)

func (v Visibility) Hidden() bool {
	return v == VisibilityHidden
}

// VisibilityFromDeleted maps the wire-level isDeleted flag onto the state enum.
func VisibilityFromDeleted(deleted bool) Visibility {
	if deleted {
		return VisibilityHidden
	}
	return VisibilityActive
}

type News struct {
	ID          string     `gorm:"primaryKey;type:uuid" json:"id"`
	Topic       string     `gorm:"not null" json:"topic"`
	ShortDetail string     `gorm:"not null;type:text" json:"shortDetail"`
	FullDetail  string     `gorm:"not null;type:text" json:"fullDetail"`
	ImageURL    *string    `gorm:"column:image_url" json:"imageUrl"`
	Status      NewsStatus `gorm:"default:'UNKNOWN';not null" json:"status"`
	Visibility  Visibility `gorm:"default:'ACTIVE';not null;index" json:"-"`
	ReporterID  string     `gorm:"type:uuid;not null;index" json:"reporterId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Associations
	Reporter User `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
}

func (news *News) BeforeCreate(tx *gorm.DB) (err error) {
	if news.ID == "" {
		news.ID = uuid.New().String()
	}
	return
}

func (News) TableName() string {
	return "news"
}

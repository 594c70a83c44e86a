package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID         string     `gorm:"primaryKey;type:uuid" json:"id"`
	NewsID     string     `gorm:"type:uuid;not null;index" json:"newsId"`
	UserID     string     `gorm:"type:uuid;not null;index" json:"userId"`
	Content    string     `gorm:"not null;type:text" json:"content"`
	ImageURL   *string    `gorm:"column:image_url" json:"imageUrl"`
	Visibility Visibility `gorm:"default:'ACTIVE';not null;index" json:"-"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`

	// Associations
	News News `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE;" json:"-"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
}

func (comment *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	return
}

func (Comment) TableName() string {
	return "comments"
}

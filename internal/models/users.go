package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleReader Role = "READER"
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

// ValidRole reports whether s names one of the three known roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleReader, RoleMember, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	FirstName string    `gorm:"not null" json:"firstName"`
	LastName  string    `gorm:"not null" json:"lastName"`
	Role      Role      `gorm:"default:'READER';not null" json:"role"`
	AvatarURL *string   `gorm:"column:avatar_url" json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// If the ID is not already set, generate a new one.
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}

package dto

import (
	"time"

	"newscheck/internal/models"
)

// UserResponse is the full user shape returned to the user themselves and to admins.
type UserResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Role      models.Role `json:"role"`
	AvatarURL *string     `json:"avatarUrl"`
	CreatedAt time.Time   `json:"createdAt"`
}

// UserSummary is the attribution shape embedded in news and comment responses.
// Deliberately excludes email.
type UserSummary struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	AvatarURL *string `json:"avatarUrl"`
}

func FromModelToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}

func FromModelToUserSummary(user *models.User) UserSummary {
	return UserSummary{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		AvatarURL: user.AvatarURL,
	}
}

// UpdateRoleRequest for admin role changes. An admin demoting themselves is
// permitted, not special-cased.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=READER MEMBER ADMIN"`
}

// RoleResponse echoes the changed assignment.
type RoleResponse struct {
	ID   string      `json:"id"`
	Role models.Role `json:"role"`
}

// UpdateProfileRequest is a partial self-update. Role is not representable here.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,url"`
}

// Updates returns the column map for the fields actually present.
func (r UpdateProfileRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.FirstName != nil {
		updates["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		updates["last_name"] = *r.LastName
	}
	if r.AvatarURL != nil {
		updates["avatar_url"] = *r.AvatarURL
	}
	return updates
}

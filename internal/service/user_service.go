package service

import (
	"errors"

	"newscheck/internal/dto"
	"newscheck/internal/models"
	"newscheck/internal/repository"

	"gorm.io/gorm"
)

type UserService interface {
	List() ([]dto.UserResponse, error)
	UpdateRole(id string, role models.Role) (*dto.RoleResponse, error)
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List() ([]dto.UserResponse, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.FromModelToUserResponse(&users[i]))
	}
	return responses, nil
}

// UpdateRole changes a user's role. Nothing stops an admin from demoting
// themselves; that edge is permitted, not special-cased.
func (s *userService) UpdateRole(id string, role models.Role) (*dto.RoleResponse, error) {
	user, err := s.userRepo.UpdateRole(id, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &dto.RoleResponse{ID: user.ID, Role: user.Role}, nil
}

// UpdateProfile applies a partial self-edit. The role field is not part of
// the request shape, so it can never change here.
func (s *userService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.UpdateProfile(userID, req.Updates())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Re-read so the response reflects the applied update
	user, err = s.userRepo.FindByID(user.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelToUserResponse(user)
	return &resp, nil
}

package service

import (
	"errors"
	"fmt"
	"strings"

	"go-agroprod-ws/internal/model"
	"go-agroprod-ws/internal/repository"
	"go-agroprod-ws/pkg/validator"

	"github.com/google/uuid"
)

var ErrUsernameExists = errors.New("username already exists")

type UserService interface {
	CreateUser(req *CreateUserRequest, creatorID string) (*model.User, error)
	UpdateUser(userID uuid.UUID, req *UpdateUserRequest, updaterID string) (*model.User, error)
	UpdateUserTabs(userID uuid.UUID, tabs []model.Tab, updaterID string) (*model.User, error)
	DeleteUser(userID uuid.UUID) error
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
}

type CreateUserRequest struct {
	Username    string      `json:"username" validate:"required,min=3"`
	Password    string      `json:"password" validate:"required,min=6"`
	FullName    string      `json:"full_name" validate:"required"`
	Role        string      `json:"role" validate:"required,oneof=ADMIN OPERATOR"`
	AllowedTabs []model.Tab `json:"allowed_tabs"`
}

type UpdateUserRequest struct {
	Username    string      `json:"username" validate:"required,min=3"`
	Password    *string     `json:"password,omitempty" validate:"omitempty,min=6"`
	FullName    string      `json:"full_name" validate:"required"`
	Role        string      `json:"role" validate:"required,oneof=ADMIN OPERATOR"`
	AllowedTabs []model.Tab `json:"allowed_tabs"`
	IsActive    *bool       `json:"is_active"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(req *CreateUserRequest, creatorID string) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	existing, _ := s.userRepo.FindByUsername(username)
	if existing != nil {
		return nil, ErrUsernameExists
	}

	for _, tab := range req.AllowedTabs {
		if !model.ValidTab(string(tab)) {
			return nil, fmt.Errorf("unknown tab %q", tab)
		}
	}

	user := &model.User{
		Username:    username,
		FullName:    req.FullName,
		Role:        req.Role,
		AllowedTabs: req.AllowedTabs,
		IsActive:    true,
	}
	user.CreatedBy = creatorID
	user.UpdatedBy = creatorID

	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(userID uuid.UUID, req *UpdateUserRequest, updaterID string) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username != user.Username {
		existing, _ := s.userRepo.FindByUsername(username)
		if existing != nil {
			return nil, ErrUsernameExists
		}
	}

	for _, tab := range req.AllowedTabs {
		if !model.ValidTab(string(tab)) {
			return nil, fmt.Errorf("unknown tab %q", tab)
		}
	}

	user.Username = username
	user.FullName = req.FullName
	user.Role = req.Role
	user.AllowedTabs = req.AllowedTabs
	user.UpdatedBy = updaterID

	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUserTabs(userID uuid.UUID, tabs []model.Tab, updaterID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	for _, tab := range tabs {
		if !model.ValidTab(string(tab)) {
			return nil, fmt.Errorf("unknown tab %q", tab)
		}
	}

	user.AllowedTabs = tabs
	user.UpdatedBy = updaterID

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(user.ID)
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]model.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToResponse())
	}
	return out, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	resp := user.ToResponse()
	return &resp, nil
}

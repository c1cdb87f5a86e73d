package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role codes as constants
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
)

// User represents an authenticated user in the system
type User struct {
	BaseModel
	Username    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" validate:"required,lowercase"`
	Password    string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FullName    string `gorm:"type:varchar(255)" json:"full_name" validate:"required"`
	Role        string `gorm:"type:varchar(20);not null;default:'OPERATOR'" json:"role" validate:"required,oneof=ADMIN OPERATOR"`
	AllowedTabs []Tab  `gorm:"serializer:json" json:"allowed_tabs"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasTab checks if the user may access a tab. Admins implicitly have all tabs.
func (u *User) HasTab(tab Tab) bool {
	if u.IsAdmin() {
		return true
	}
	for _, t := range u.AllowedTabs {
		if t == tab {
			return true
		}
	}
	return false
}

// TabCodes returns the user's allowed tabs as plain strings. Admins get the
// full tab list so downstream consumers never need the role rule.
func (u *User) TabCodes() []string {
	tabs := u.AllowedTabs
	if u.IsAdmin() {
		tabs = AllTabs
	}
	codes := make([]string, len(tabs))
	for i, t := range tabs {
		codes[i] = string(t)
	}
	return codes
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	AllowedTabs []Tab     `json:"allowed_tabs"`
	IsActive    bool      `json:"is_active"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		FullName:    u.FullName,
		Role:        u.Role,
		AllowedTabs: u.AllowedTabs,
		IsActive:    u.IsActive,
	}
}

package dto

import (
	"time"

	"github.com/notewyze/backend/internal/model"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

// LoginRequest is bound from OAuth2-style form fields.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type UserResponse struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

type UserUpdateRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FullName  *string `json:"full_name"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	AvatarURL *string `json:"avatar_url"`
}

type ProfileResponse struct {
	ID               uint          `json:"id"`
	UserID           uint          `json:"user_id"`
	StudyPreferences model.JSONMap `json:"study_preferences"`
	Statistics       model.JSONMap `json:"statistics"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type ProfileUpdateRequest struct {
	StudyPreferences model.JSONMap `json:"study_preferences" binding:"required"`
}

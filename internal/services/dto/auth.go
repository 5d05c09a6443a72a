package dto

import (
	"time"

	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required,min=3,max=30,alphanum"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name,omitempty" binding:"omitempty,max=60"`
	Country     string `json:"country,omitempty" binding:"omitempty,len=2"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordResetConfirm struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// AuthResponse carries the token pair plus the user projection.
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

// UserDTO is the public user projection. PasswordHash and the token
// columns never leave the service layer.
type UserDTO struct {
	ID          string            `json:"id"`
	Email       string            `json:"email,omitempty"`
	Username    string            `json:"username"`
	DisplayName string            `json:"display_name,omitempty"`
	AvatarURL   string            `json:"avatar_url,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	Country     string            `json:"country,omitempty"`
	Role        models.UserRole   `json:"role"`
	Status      models.UserStatus `json:"status"`
	IsVerified  bool              `json:"is_verified"`
	LastSeenAt  *time.Time        `json:"last_seen_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ToUserDTO projects a model onto the public shape. includeEmail is
// true only for the account owner and staff.
func ToUserDTO(u *models.User, includeEmail bool) UserDTO {
	out := UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		Bio:         u.Bio,
		Country:     u.Country,
		Role:        u.Role,
		Status:      u.Status,
		IsVerified:  u.IsVerified,
		LastSeenAt:  u.LastSeenAt,
		CreatedAt:   u.CreatedAt,
	}
	if includeEmail {
		out.Email = u.Email
	}
	return out
}

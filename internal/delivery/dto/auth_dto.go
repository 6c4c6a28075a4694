package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterClientRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Address  string `json:"address" validate:"required"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

type RegisterLawyerRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	FullName          string `json:"full_name" validate:"required,min=2,max=255"`
	Address           string `json:"address" validate:"required"`
	Phone             string `json:"phone,omitempty" validate:"omitempty,max=30"`
	BarCouncilNumber  string `json:"bar_council_number" validate:"required,max=50"`
	Specialization    string `json:"specialization" validate:"required,max=255"`
	ExperienceYears   int    `json:"experience_years" validate:"gte=0"`
	ChargesPerHearing int    `json:"charges_per_hearing" validate:"gte=0"`
	Bio               string `json:"bio,omitempty" validate:"omitempty,max=1000"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Address    string    `json:"address,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

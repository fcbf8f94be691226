package dto

import (
	"hotel/infras/jwt"
	userDto "hotel/internal/domains/user/model/dto"
	"time"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

type LoginResponse struct {
	AccessToken  string               `json:"accessToken"`
	RefreshToken string               `json:"refreshToken"`
	TokenType    string               `json:"tokenType"`
	ExpiresIn    int64                `json:"expiresIn"`
	User         userDto.UserResponse `json:"user"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.TokenType = tokenPair.TokenType
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}

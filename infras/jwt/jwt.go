package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"hotel/config"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaim  = errors.New("invalid token claim")
	ErrMissingBearer = errors.New("authorization header must start with 'Bearer '")
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"

	bearerPrefix = "Bearer "
)

// Claims identifies the staff member behind a request.
type Claims struct {
	UserID  string    `json:"userId"`
	Email   string    `json:"email"`
	Role    string    `json:"role,omitempty"`
	TokenID string    `json:"tokenId"`
	Type    TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type JWT interface {
	GenerateTokenPair(userID, email, role string) (*TokenPair, error)
	ValidateToken(tokenString string, tokenType TokenType) (*Claims, error)
	RefreshTokens(refreshToken string) (*TokenPair, error)
}

type service struct {
	config *config.Config
}

func New(cfg *config.Config) JWT {
	return &service{
		config: cfg,
	}
}

func (s *service) GenerateTokenPair(userID, email, role string) (*TokenPair, error) {
	now := timezone.Now()

	access, err := s.sign(userID, email, role, AccessToken, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.sign(userID, email, role, RefreshToken, now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    strings.TrimSpace(bearerPrefix),
		ExpiresIn:    int64(s.config.JWT.AccessExpireMin * constant.MinutesToSeconds),
	}, nil
}

func (s *service) secretFor(tokenType TokenType) (secret string, expireMin int, err error) {
	switch tokenType {
	case AccessToken:
		return s.config.JWT.AccessSecret, s.config.JWT.AccessExpireMin, nil
	case RefreshToken:
		return s.config.JWT.RefreshSecret, s.config.JWT.RefreshExpireMin, nil
	default:
		return "", 0, fmt.Errorf("unknown token type: %s", tokenType)
	}
}

func (s *service) sign(userID, email, role string, tokenType TokenType, issuedAt time.Time) (string, error) {
	secret, expireMin, err := s.secretFor(tokenType)
	if err != nil {
		return "", err
	}

	tokenID := uuid.NewString()

	claims := Claims{
		UserID:  userID,
		Email:   email,
		Role:    role,
		TokenID: tokenID,
		Type:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Duration(expireMin) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   userID,
			ID:        tokenID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *service) ValidateToken(tokenString string, tokenType TokenType) (*Claims, error) {
	secret, _, err := s.secretFor(tokenType)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Type != tokenType || claims.UserID == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (s *service) RefreshTokens(refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(refreshToken, RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	return s.GenerateTokenPair(claims.UserID, claims.Email, claims.Role)
}

// ExtractTokenFromHeader strips the Bearer prefix from an Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || token == "" {
		return "", ErrMissingBearer
	}

	return token, nil
}

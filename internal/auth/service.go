package auth

import (
	"fmt"
	"time"

	"choir-portal-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents JWT token claims for a choir member
type AuthClaims struct {
	UserID   uuid.UUID             `json:"user_id"`
	Email    string                `json:"email"`
	Kind     string                `json:"kind"`
	Category models.MemberCategory `json:"category"`

	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService issues and validates JWT tokens
type AuthService struct {
	config *AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if config == nil {
		return nil, fmt.Errorf("auth config is required")
	}
	if err := config.ValidateConfig(); err != nil {
		return nil, err
	}
	return &AuthService{config: config}, nil
}

// GenerateJWT creates a JWT token for a choir member
func (s *AuthService) GenerateJWT(member *models.ChoirMember) (string, error) {
	kind := "user"
	if member.IsAdmin {
		kind = "admin"
	}

	now := time.Now()
	claims := &AuthClaims{
		UserID:   member.ID,
		Email:    member.Email,
		Kind:     kind,
		Category: member.Category,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   member.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token claims")
}

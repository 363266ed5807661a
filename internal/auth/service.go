package auth

import (
	"fmt"
	"time"

	"field-service-backend/internal/database/models"
	apperrors "field-service-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "field-service-backend"

// AuthService issues and verifies the bearer tokens that carry a caller's id and role
type AuthService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID uuid.UUID   `json:"user_id"`
	Role   models.Role `json:"role"`
	Email  string      `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenResponse is returned when a token is issued
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, expiry time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &AuthService{secret: []byte(secret), expiry: expiry, now: time.Now}, nil
}

// GenerateJWT creates a signed token for user
func (s *AuthService) GenerateJWT(user *models.User) (*TokenResponse, error) {
	if !user.Role.IsValid() {
		return nil, apperrors.ErrInvalidRoleInToken
	}

	now := s.now()
	claims := &AuthClaims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.expiry.Seconds()),
		UserID:      user.ID,
		Role:        string(user.Role),
	}, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("invalid token: %v", err))
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}
	if claims.UserID == uuid.Nil {
		return nil, apperrors.NewAuthenticationError("token has no user id")
	}
	if !claims.Role.IsValid() {
		return nil, apperrors.ErrInvalidRoleInToken
	}
	return claims, nil
}

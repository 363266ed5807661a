package auth

import (
	"errors"
	"net/http"

	"field-service-backend/internal/database/models"
	"field-service-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserLookup finds the user a development token is issued for
type UserLookup interface {
	GetByEmail(email string) (*models.User, error)
}

// DevTokenRequest asks for a token for an existing user
type DevTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	users   UserLookup
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, users UserLookup) *AuthHandler {
	return &AuthHandler{service: service, users: users}
}

// IssueDevToken handles POST /api/v1/auth/dev-token. It is only routed outside production,
// where an upstream identity provider issues tokens instead.
func (h *AuthHandler) IssueDevToken(c *gin.Context) {
	var req DevTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up user"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "user is inactive"})
		return
	}

	token, err := h.service.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.WithContext(c.Request.Context()).WithField("user_id", user.ID.String()).Info("issued development token")
	c.JSON(http.StatusOK, token)
}

// ValidateToken handles POST /api/v1/auth/validate
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be 'Bearer <token>'"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "claims": claims})
}

package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"field-service-backend/internal/database/models"
	apperrors "field-service-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	s, err := NewAuthService("test-signing-key", time.Hour)
	require.NoError(t, err)
	return s
}

func testUser(role models.Role) *models.User {
	u := &models.User{Email: string(role) + "@example.com", Role: role, IsActive: true}
	u.ID = uuid.New()
	return u
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	_, err := NewAuthService("", time.Hour)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestGenerateAndValidateJWT(t *testing.T) {
	s := newTestService(t)
	user := testUser(models.RoleClerk)

	token, err := s.GenerateJWT(user)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := s.ValidateJWT(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleClerk, claims.Role)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestJWTExpiration(t *testing.T) {
	s := newTestService(t)
	issued := time.Now().Add(-2 * time.Hour)
	s.now = func() time.Time { return issued }

	token, err := s.GenerateJWT(testUser(models.RoleAdmin))
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateJWT(token.AccessToken)
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestValidateJWTRejectsForeignSignature(t *testing.T) {
	other, err := NewAuthService("another-key", time.Hour)
	require.NoError(t, err)
	token, err := other.GenerateJWT(testUser(models.RoleAgent))
	require.NoError(t, err)

	_, err = newTestService(t).ValidateJWT(token.AccessToken)
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestValidateJWTRejectsUnknownRole(t *testing.T) {
	s := newTestService(t)
	claims := &AuthClaims{
		UserID: uuid.New(),
		Role:   models.Role("superuser"),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	require.NoError(t, err)

	_, err = s.ValidateJWT(signed)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRoleInToken)
}

func TestGenerateJWTRejectsUnknownRole(t *testing.T) {
	_, err := newTestService(t).GenerateJWT(testUser(models.Role("guest")))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRoleInToken)
}

func setupRouter(s *AuthService, roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(s)
	r := gin.New()
	handlers := []gin.HandlerFunc{m.RequireAuth()}
	if len(roles) > 0 {
		handlers = append(handlers, m.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestRequireAuth(t *testing.T) {
	s := newTestService(t)
	user := testUser(models.RoleClerk)
	token, err := s.GenerateJWT(user)
	require.NoError(t, err)
	router := setupRouter(s)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + token.AccessToken, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	s := newTestService(t)
	router := setupRouter(s, models.RoleAdmin, models.RoleAgent)

	for role, status := range map[models.Role]int{
		models.RoleAdmin: http.StatusOK,
		models.RoleAgent: http.StatusOK,
		models.RoleClerk: http.StatusForbidden,
	} {
		token, err := s.GenerateJWT(testUser(role))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, status, w.Code, role)
	}
}

type stubUsers map[string]*models.User

func (s stubUsers) GetByEmail(email string) (*models.User, error) {
	if email == "broken@example.com" {
		return nil, errors.New("db down")
	}
	u, ok := s[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func TestIssueDevToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestService(t)
	clerk := testUser(models.RoleClerk)
	inactive := testUser(models.RoleAgent)
	inactive.Email = "inactive@example.com"
	inactive.IsActive = false
	h := NewAuthHandler(s, stubUsers{clerk.Email: clerk, inactive.Email: inactive})

	r := gin.New()
	r.POST("/token", h.IssueDevToken)

	cases := []struct {
		body   string
		status int
	}{
		{`{"email":"clerk@example.com"}`, http.StatusOK},
		{`{"email":"nobody@example.com"}`, http.StatusNotFound},
		{`{"email":"inactive@example.com"}`, http.StatusForbidden},
		{`{"email":"broken@example.com"}`, http.StatusInternalServerError},
		{`{"email":"not-an-email"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, tc.status, w.Code, tc.body)

		if tc.status == http.StatusOK {
			var resp TokenResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			claims, err := s.ValidateJWT(resp.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, clerk.ID, claims.UserID)
		}
	}
}

func TestValidateTokenHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestService(t)
	h := NewAuthHandler(s, stubUsers{})
	token, err := s.GenerateJWT(testUser(models.RoleAdmin))
	require.NoError(t, err)

	r := gin.New()
	r.POST("/validate", h.ValidateToken)

	req := httptest.NewRequest(http.MethodPost, "/validate", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/validate", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

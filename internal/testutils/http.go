package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"field-service-backend/internal/auth"
	"field-service-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "handler-test-signing-key"

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router     *gin.Engine
	Auth       *auth.AuthService
	Middleware *auth.AuthMiddleware
}

// SetupHTTPTest initializes Gin for testing with a JWT service signing test tokens
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authService, err := auth.NewAuthService(testJWTSecret, time.Hour)
	if err != nil {
		panic(err)
	}

	return &HTTPTestSuite{
		Router:     router,
		Auth:       authService,
		Middleware: auth.NewAuthMiddleware(authService),
	}
}

// Protected returns a route group behind RequireAuth
func (suite *HTTPTestSuite) Protected() *gin.RouterGroup {
	return suite.Router.Group("/", suite.Middleware.RequireAuth())
}

// TokenFor issues a bearer token for user
func (suite *HTTPTestSuite) TokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := suite.Auth.GenerateJWT(user)
	require.NoError(t, err)
	return token.AccessToken
}

// MakeRequest creates and executes an HTTP request for testing
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeAuthedRequest executes a request carrying a bearer token for user
func (suite *HTTPTestSuite) MakeAuthedRequest(t *testing.T, user *models.User, method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, map[string]string{
		"Authorization": "Bearer " + suite.TokenFor(t, user),
	})
}

// MakeRequestWithHeaders creates and executes an HTTP request with custom headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader

	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)

	return recorder
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(recorder.Body.Bytes(), target)
		require.NoError(t, err)
	}
}

// AssertErrorResponse asserts an error response with specific message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())

	var errorResponse map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &errorResponse)
	require.NoError(t, err)

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "field-service-backend/internal/errors"
	"field-service-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	queryDateLayout = "2006-01-02"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// statusFor maps an application error to its HTTP status code
func statusFor(err error) int {
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsValidation(err), apperrors.IsInvalidCandidate(err),
		errors.Is(err, apperrors.ErrInvalidTimeRange), errors.Is(err, apperrors.ErrInvalidPaginationParams):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsStateConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body. Internal errors are logged and hidden.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).
			WithField("path", c.FullPath()).
			WithError(err).
			Error("Request failed")
		c.JSON(status, ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// pathUUID parses the named path parameter, writing a 400 response when it is not a UUID
func pathUUID(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional UUID query parameter
func queryUUID(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.NewValidationError(name, "must be a UUID")
	}
	return &id, nil
}

// queryDate parses an optional date query parameter given as YYYY-MM-DD or RFC 3339
func queryDate(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(queryDateLayout, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperrors.NewValidationError(name, "must be a date (YYYY-MM-DD)")
	}
	return &t, nil
}

// pagination reads page and page_size (per_page is accepted as an alias)
func pagination(c *gin.Context) (int, int, error) {
	page, err := intQuery(c, "page", defaultPage)
	if err != nil {
		return 0, 0, err
	}
	sizeKey := "page_size"
	if c.Query(sizeKey) == "" && c.Query("per_page") != "" {
		sizeKey = "per_page"
	}
	pageSize, err := intQuery(c, sizeKey, defaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	return page, pageSize, nil
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, apperrors.ErrInvalidPaginationParams
	}
	return v, nil
}

package handlers

import (
	"net/http"

	"field-service-backend/internal/auth"
	"field-service-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// actorFrom returns the verified caller set by the auth middleware, writing 401 when absent
func actorFrom(c *gin.Context) (service.Actor, bool) {
	claims, ok := auth.GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return service.Actor{}, false
	}
	return service.Actor{UserID: claims.UserID, Role: claims.Role}, true
}

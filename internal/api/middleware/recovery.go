package middleware

import (
	"net/http"
	"runtime/debug"

	"field-service-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 and logs the stack
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
					"panic":  err,
					"stack":  string(debug.Stack()),
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
				}).Error("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
			}
		}()
		c.Next()
	}
}

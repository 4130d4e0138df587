package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taxi/internal/service"
)

// AdminAuth returns middleware that gates mutating endpoints behind a valid
// admin bearer token. Any missing, malformed, expired, or badly-signed
// token aborts the request with 401.
func AdminAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrUnauthorized.Error()})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if err := authService.VerifyToken(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrUnauthorized.Error()})
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickbite-pos/helpers"
)

// AdminOnly guards history reads and export behind the admin session
// token. Any failure aborts before the gated handler runs.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("token")
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is required"})
			c.Abort()
			return
		}
		claims, err := helpers.ValidateToken(clientToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		if claims.Role != helpers.AdminRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Set("role", claims.Role)
		c.Next()
	}
}

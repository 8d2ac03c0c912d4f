package middlewares

import (
	"net/http"
	"strings"

	"github.com/ancientastronautunearthed/fiber-app/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		v, ok := claims["userId"]
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "userId claim missing"})
			return
		}

		switch id := v.(type) {
		case float64: // numeric claims decode as float64
			c.Set("userID", uint(id))
		case int64:
			c.Set("userID", uint(id))
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid userId claim"})
			return
		}

		if email, _ := claims["email"].(string); email != "" {
			c.Set("email", email)
		}

		c.Next()
	}
}

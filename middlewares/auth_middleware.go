// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"
	"strings"

	"github.com/sandro1422/workout-api/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer token before any
// handler runs, and stores the resolved user id in the context as "userID".
func AuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := issuer.Resolve(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

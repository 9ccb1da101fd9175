package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autopage/pkg/utils"
)

// JWTAuthMiddleware validates the bearer token and exposes both ownership
// channels of the caller to downstream handlers. Token issuance lives in the
// external auth service.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("owner_id", claims.OwnerID)
		c.Set("identity_key", claims.IdentityKey)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"member-auth/internal/token"
)

// JWTAuth rejects requests without a valid bearer access token and exposes
// the token's member id and role to downstream handlers.
func JWTAuth(tokens token.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const prefix = "Bearer "

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"code": http.StatusUnauthorized, "message": "Unauthorized"})
			return
		}

		claims, err := tokens.ParseAccessToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"code": http.StatusUnauthorized, "message": "Unauthorized"})
			return
		}

		c.Set("member_id", claims.MemberID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

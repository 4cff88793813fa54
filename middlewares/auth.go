package middlewares

import (
	"strings"

	"github.com/jibrilosman/self-order-kiosk/pkg/resp"
	"github.com/jibrilosman/self-order-kiosk/utils"

	"github.com/gin-gonic/gin"
)

// StaffOnly guards staff routes with a bearer token (or ?token= for
// WebSocket upgrades). An empty secret turns the guard off.
func StaffOnly(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}
		if claims.Role != utils.RoleStaff {
			resp.Forbidden(c, "forbidden")
			c.Abort()
			return
		}

		utils.SetRole(c, claims.Role)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return c.Query("token")
}

package utils

import "github.com/gin-gonic/gin"

const roleKey = "role"

func SetRole(c *gin.Context, role string) {
	c.Set(roleKey, role)
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(roleKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The kiosk client reads bare payloads and {message} bodies, so helpers
// write those shapes rather than an envelope.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
func Message(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"message": msg})
}
func BadRequest(c *gin.Context, msg string) {
	Message(c, http.StatusBadRequest, msg)
}
func Unauthorized(c *gin.Context, msg string) {
	Message(c, http.StatusUnauthorized, msg)
}
func Forbidden(c *gin.Context, msg string) {
	Message(c, http.StatusForbidden, msg)
}
func NotFound(c *gin.Context, msg string) {
	Message(c, http.StatusNotFound, msg)
}
func TooManyRequests(c *gin.Context) {
	Message(c, http.StatusTooManyRequests, "too many requests")
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}

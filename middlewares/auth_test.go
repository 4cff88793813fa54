package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jibrilosman/self-order-kiosk/middlewares"
	"github.com/jibrilosman/self-order-kiosk/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guarded(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/staff", middlewares.StaffOnly(secret), func(c *gin.Context) {
		c.String(http.StatusOK, utils.CurrentRole(c))
	})
	return r
}

func get(r http.Handler, target, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStaffOnlyDisabled(t *testing.T) {
	w := get(guarded(""), "/staff", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaffOnly(t *testing.T) {
	r := guarded("s3cret")

	staff, err := utils.GenerateToken(utils.RoleStaff, "s3cret", time.Hour)
	require.NoError(t, err)
	forged, err := utils.GenerateToken(utils.RoleStaff, "other", time.Hour)
	require.NoError(t, err)
	expired, err := utils.GenerateToken(utils.RoleStaff, "s3cret", -time.Minute)
	require.NoError(t, err)
	kiosk, err := utils.GenerateToken("kiosk", "s3cret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		target string
		auth   string
		code   int
	}{
		{"missing", "/staff", "", http.StatusUnauthorized},
		{"bearer", "/staff", "Bearer " + staff, http.StatusOK},
		{"query", "/staff?token=" + staff, "", http.StatusOK},
		{"wrong secret", "/staff", "Bearer " + forged, http.StatusUnauthorized},
		{"expired", "/staff", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong role", "/staff", "Bearer " + kiosk, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.target, tt.auth)
			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, utils.RoleStaff, w.Body.String())
			}
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", middlewares.RateLimit(0, 0), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusNoContent, get(r, "/", "").Code)
	}
}

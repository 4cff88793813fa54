package controllers

import (
	"errors"
	"net/http"

	"github.com/jibrilosman/self-order-kiosk/pkg/resp"
	"github.com/jibrilosman/self-order-kiosk/services"
	"github.com/jibrilosman/self-order-kiosk/utils"

	"github.com/gin-gonic/gin"
)

type StaffLoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/staff
func (a *AuthController) StaffLogin(c *gin.Context) {
	var req StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, err := a.Auth.Login(req.PIN)
	switch {
	case errors.Is(err, services.ErrStaffAuthDisabled):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"token": token})
	}
}

// GET /auth/staff/me
func (a *AuthController) Me(c *gin.Context) {
	role := utils.CurrentRole(c)
	if role == "" {
		// guard is off, so every caller is treated as staff
		role = utils.RoleStaff
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

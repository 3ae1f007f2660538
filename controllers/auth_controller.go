package controllers

import (
	"errors"
	"net/http"

	"deliverus/pkg/resp"
	"deliverus/services"
	"deliverus/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Service *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Service: s} }

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Service.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "email": user.Email, "firstName": user.FirstName,
			"lastName": user.LastName, "role": user.Role,
		},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Service.Me(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, gin.H{
		"id": user.ID, "email": user.Email, "firstName": user.FirstName,
		"lastName": user.LastName, "phoneNumber": user.PhoneNumber, "role": user.Role,
	})
}

package controllers

import (
	"net/http"

	"circuithouse-backend/services"
	"circuithouse-backend/utils"

	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	token, admin, err := ac.Auth.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":        admin.ID,
			"full_name": admin.FullName,
			"username":  admin.Username,
		},
	})
}

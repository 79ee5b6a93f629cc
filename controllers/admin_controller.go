package controllers

import (
	"net/http"

	"circuithouse-backend/services"
	"circuithouse-backend/utils"

	"github.com/gin-gonic/gin"
)

type createAdminPayload struct {
	FullName string `json:"full_name"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminController struct {
	Auth *services.AuthService
}

func NewAdminController(auth *services.AuthService) *AdminController {
	return &AdminController{Auth: auth}
}

func (ac *AdminController) GetAdmins(c *gin.Context) {
	admins, err := ac.Auth.ListAdmins(c.Request.Context())
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admins)
}

func (ac *AdminController) CreateAdmin(c *gin.Context) {
	var payload createAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	admin, err := ac.Auth.CreateAdmin(c.Request.Context(), payload.FullName, payload.Username, payload.Password)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, admin)
}

func (ac *AdminController) DeleteAdmin(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	// Do not let an admin remove their own account.
	if current, exists := c.Get("admin_id"); exists {
		if currentID, ok := current.(uint); ok && currentID == id {
			utils.JSONError(c, http.StatusConflict, "cannot delete the account you are signed in with")
			return
		}
	}

	if err := ac.Auth.DeleteAdmin(c.Request.Context(), id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "admin deleted"})
}

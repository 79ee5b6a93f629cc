package controllers

import (
	"net/http"

	"circuithouse-backend/models"
	"circuithouse-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SettingsController manages the single hotel profile row used on receipts
// and in confirmation emails.
type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

func (sc *SettingsController) GetHotelSettings(c *gin.Context) {
	var setting models.HotelSetting
	err := sc.DB.WithContext(c.Request.Context()).
		Where(models.HotelSetting{ID: 1}).
		FirstOrCreate(&setting).Error
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load hotel settings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

func (sc *SettingsController) UpdateHotelSettings(c *gin.Context) {
	var payload models.HotelSetting
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	var setting models.HotelSetting
	db := sc.DB.WithContext(c.Request.Context())
	if err := db.Where(models.HotelSetting{ID: 1}).FirstOrCreate(&setting).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load hotel settings")
		return
	}

	setting.Name = payload.Name
	setting.Address = payload.Address
	setting.Phone = payload.Phone
	setting.Email = payload.Email
	if err := db.Save(&setting).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save hotel settings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

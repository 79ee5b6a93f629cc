package controllers

import (
	"net/http"

	"circuithouse-backend/models"
	"circuithouse-backend/services"
	"circuithouse-backend/utils"

	"github.com/gin-gonic/gin"
)

type PricingController struct {
	Pricing *services.PricingService
}

func NewPricingController(pricing *services.PricingService) *PricingController {
	return &PricingController{Pricing: pricing}
}

func (pc *PricingController) GetPricing(c *gin.Context) {
	prices, err := pc.Pricing.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, prices)
}

func (pc *PricingController) GetPricingByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	price, err := pc.Pricing.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, price)
}

func (pc *PricingController) CreatePricing(c *gin.Context) {
	var price models.Pricing
	if err := c.ShouldBindJSON(&price); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	created, err := pc.Pricing.Create(c.Request.Context(), price)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (pc *PricingController) UpdatePricing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var price models.Pricing
	if err := c.ShouldBindJSON(&price); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	updated, err := pc.Pricing.Update(c.Request.Context(), id, price)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (pc *PricingController) DeletePricing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := pc.Pricing.Delete(c.Request.Context(), id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "pricing deleted"})
}

package controllers

import (
	"net/http"

	"circuithouse-backend/services"
	"circuithouse-backend/utils"

	"github.com/gin-gonic/gin"
)

// Charges are always booked on today's date, so the payloads deliberately
// have no date field.
type foodOrderPayload struct {
	Item       string  `json:"item" binding:"required"`
	Quantity   int     `json:"quantity"`
	Amount     float64 `json:"amount" binding:"required"`
	RoomNumber string  `json:"room_number"`
}

type otherCostPayload struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

type BillingController struct {
	Billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{Billing: billing}
}

func (bc *BillingController) CreateFoodOrder(c *gin.Context) {
	var payload foodOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	order, err := bc.Billing.CreateFoodOrder(c.Request.Context(), payload.Item, payload.Quantity, payload.Amount, payload.RoomNumber)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, order)
}

func (bc *BillingController) GetFoodOrders(c *gin.Context) {
	orders, err := bc.Billing.ListFoodOrders(c.Request.Context())
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

func (bc *BillingController) DeleteFoodOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := bc.Billing.DeleteFoodOrder(c.Request.Context(), id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "food order deleted"})
}

func (bc *BillingController) CreateOtherCost(c *gin.Context) {
	var payload otherCostPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	cost, err := bc.Billing.CreateOtherCost(c.Request.Context(), payload.Description, payload.Amount)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, cost)
}

func (bc *BillingController) GetOtherCosts(c *gin.Context) {
	costs, err := bc.Billing.ListOtherCosts(c.Request.Context())
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, costs)
}

func (bc *BillingController) DeleteOtherCost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := bc.Billing.DeleteOtherCost(c.Request.Context(), id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "other cost deleted"})
}

package controllers

import (
	"net/http"

	"circuithouse-backend/services"
	"circuithouse-backend/utils"

	"github.com/gin-gonic/gin"
)

// checkoutPayload mirrors what the front desk sends: the guest being checked
// out, how the bill was settled and the operator recording it.
type checkoutPayload struct {
	GuestID       uint   `json:"guest_id" binding:"required"`
	PaymentStatus string `json:"paymentStatus" binding:"required"`
	BillBy        string `json:"username" binding:"required"`
}

type CheckoutController struct {
	Lifecycle *services.LifecycleService
}

func NewCheckoutController(lifecycle *services.LifecycleService) *CheckoutController {
	return &CheckoutController{Lifecycle: lifecycle}
}

func (cc *CheckoutController) CreateCheckout(c *gin.Context) {
	var payload checkoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	summary, err := cc.Lifecycle.RecordCheckout(c.Request.Context(), payload.GuestID, payload.PaymentStatus, payload.BillBy)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, summary)
}

// GetCheckouts lists checkout summaries, newest first.
func (cc *CheckoutController) GetCheckouts(c *gin.Context) {
	summaries, err := cc.Lifecycle.ListCheckouts(c.Request.Context())
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summaries)
}

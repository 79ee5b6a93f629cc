// controllers/booking_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"circuithouse-backend/models"
	"circuithouse-backend/services"
	"circuithouse-backend/utils"

	"github.com/gin-gonic/gin"
)

// bookingPayload carries the booking fields. Dates come in as strings
// because clients send them with or without a time-of-day; the lifecycle
// service overwrites the time part anyway.
type bookingPayload struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	RoomID       uint   `json:"room_id" binding:"required"`
}

type BookingController struct {
	Lifecycle *services.LifecycleService
}

func NewBookingController(lifecycle *services.LifecycleService) *BookingController {
	return &BookingController{Lifecycle: lifecycle}
}

func parseStayDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (bc *BookingController) guestFromPayload(c *gin.Context) (models.Guest, bool) {
	var payload bookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return models.Guest{}, false
	}

	checkIn, err := parseStayDate(payload.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in_date: "+err.Error())
		return models.Guest{}, false
	}
	checkOut, err := parseStayDate(payload.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out_date: "+err.Error())
		return models.Guest{}, false
	}

	roomID := payload.RoomID
	return models.Guest{
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Address:      payload.Address,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		RoomID:       &roomID,
	}, true
}

// GetBookings returns guests that have not checked out yet.
func (bc *BookingController) GetBookings(c *gin.Context) {
	guests, err := bc.Lifecycle.ListBookableGuests(c.Request.Context())
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// GetAllBookings returns every guest record including checked-out ones.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	guests, err := bc.Lifecycle.ListAllGuests(c.Request.Context())
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	guest, err := bc.Lifecycle.GetBooking(c.Request.Context(), id)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	guest, ok := bc.guestFromPayload(c)
	if !ok {
		return
	}
	created, err := bc.Lifecycle.CreateBooking(c.Request.Context(), guest)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	guest, ok := bc.guestFromPayload(c)
	if !ok {
		return
	}
	updated, err := bc.Lifecycle.UpdateBooking(c.Request.Context(), id, guest)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := bc.Lifecycle.DeleteBooking(c.Request.Context(), id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "booking deleted"})
}

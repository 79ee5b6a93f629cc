package controllers

import (
	"net/http"

	"circuithouse-backend/models"
	"circuithouse-backend/services"
	"circuithouse-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Rooms.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	room, err := rc.Rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	created, err := rc.Rooms.Create(c.Request.Context(), room)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// UpdateRoom applies a partial update; this is also where housekeeping
// resets availability_status back to Vacant.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := rc.Rooms.Update(c.Request.Context(), id, fields)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := rc.Rooms.Delete(c.Request.Context(), id); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}

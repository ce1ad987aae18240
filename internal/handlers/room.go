package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/classroom-lite/internal/engine"
	"github.com/thereayou/classroom-lite/internal/handlers/dto"
	"github.com/thereayou/classroom-lite/internal/models"
)

type RoomHandler struct {
	manager *engine.Manager
}

func NewRoomHandler(manager *engine.Manager) *RoomHandler {
	return &RoomHandler{manager: manager}
}

// GetRooms lists every registered room.
func (h *RoomHandler) GetRooms(c *gin.Context) {
	eng := h.manager.Current()

	rooms := make([]models.RoomSummary, 0, eng.RoomCount())
	for summary := range eng.Rooms() {
		rooms = append(rooms, summary)
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// AddRoom registers a new room.
func (h *RoomHandler) AddRoom(c *gin.Context) {
	var req dto.AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	err := h.manager.Current().Register(req.RoomID, req.Building, req.Capacity, req.Floor, req.Facilities)
	switch {
	case errors.Is(err, engine.ErrDuplicateRoom):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Room already exists"})
	case errors.Is(err, engine.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to add room"})
	default:
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Room added successfully"})
	}
}

// GetRoom returns one room by id.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	summary, err := h.manager.Current().Lookup(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// FindAlternatives walks the adjacency graph from a room and returns the
// reachable rooms free for the requested slot.
func (h *RoomHandler) FindAlternatives(c *gin.Context) {
	var req dto.SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := models.ParseClock(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := models.ParseClock(req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alternatives := h.manager.Current().FindAlternatives(c.Param("id"), req.Date, start, end)
	c.JSON(http.StatusOK, gin.H{"alternatives": alternatives})
}

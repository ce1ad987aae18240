package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/classroom-lite/internal/engine"
)

type ScheduleHandler struct {
	manager *engine.Manager
}

func NewScheduleHandler(manager *engine.Manager) *ScheduleHandler {
	return &ScheduleHandler{manager: manager}
}

// GetSchedule lists bookings, optionally filtered by the room_id query
// parameter.
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	schedules := h.manager.Current().Schedule(c.Query("room_id"))
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// GetConflicts reports every pair of overlapping bookings.
func (h *ScheduleHandler) GetConflicts(c *gin.Context) {
	conflicts := h.manager.Current().Conflicts()
	c.JSON(http.StatusOK, gin.H{"conflicts": conflicts})
}

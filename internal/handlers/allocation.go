package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/classroom-lite/internal/engine"
	"github.com/thereayou/classroom-lite/internal/handlers/dto"
	"github.com/thereayou/classroom-lite/internal/models"
)

type AllocationHandler struct {
	manager *engine.Manager
}

func NewAllocationHandler(manager *engine.Manager) *AllocationHandler {
	return &AllocationHandler{manager: manager}
}

// Allocate books the best-fitting available room for a course request.
func (h *AllocationHandler) Allocate(c *gin.Context) {
	var req dto.AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	start, err := models.ParseClock(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	end, err := models.ParseClock(req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	result, err := h.manager.Current().Allocate(models.AllocationRequest{
		Course:     req.CourseName,
		Instructor: req.Instructor,
		Date:       req.Date,
		Start:      start,
		End:        end,
		Capacity:   req.Capacity,
		Building:   req.Building,
		Facilities: req.Facilities,
	})
	switch {
	case errors.Is(err, engine.ErrNoAvailableRoom):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No rooms match requirements or are available"})
	case errors.Is(err, engine.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to allocate room"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"room":       result.Room,
			"booking_id": result.BookingID,
		})
	}
}

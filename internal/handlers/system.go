package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/thereayou/classroom-lite/internal/engine"
)

type SystemHandler struct {
	manager *engine.Manager
	logger  *logrus.Logger
}

func NewSystemHandler(manager *engine.Manager, logger *logrus.Logger) *SystemHandler {
	return &SystemHandler{manager: manager, logger: logger}
}

// Health reports service liveness.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Classroom allocation system is running",
	})
}

// GetLogs returns activity entries, most recent first.
func (h *SystemHandler) GetLogs(c *gin.Context) {
	logs := h.manager.Current().ActivityEntries()
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// GetStatistics reports aggregate room and booking totals.
func (h *SystemHandler) GetStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.manager.Current().Stats())
}

// Reset discards all state and re-seeds the sample dataset.
func (h *SystemHandler) Reset(c *gin.Context) {
	if _, err := h.manager.Reset(); err != nil {
		h.logger.WithError(err).Error("failed to reset engine")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to reset system"})
		return
	}

	h.logger.Info("engine state reset with sample data")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "System reset with sample data",
	})
}

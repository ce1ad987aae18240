package server

import (
	"github.com/gin-gonic/gin"
	"github.com/thereayou/classroom-lite/internal/handlers"
)

func APIEndpoints(r *gin.Engine, roomH *handlers.RoomHandler, allocationH *handlers.AllocationHandler, scheduleH *handlers.ScheduleHandler, systemH *handlers.SystemHandler) {
	api := r.Group("/api")
	{
		api.GET("/health", systemH.Health)

		api.GET("/rooms", roomH.GetRooms)
		api.POST("/rooms", roomH.AddRoom)
		api.GET("/rooms/:id", roomH.GetRoom)
		api.POST("/alternatives/:id", roomH.FindAlternatives)

		api.POST("/allocate", allocationH.Allocate)
		api.GET("/schedule", scheduleH.GetSchedule)
		api.GET("/conflicts", scheduleH.GetConflicts)

		api.GET("/logs", systemH.GetLogs)
		api.GET("/statistics", systemH.GetStatistics)
		api.POST("/reset", systemH.Reset)
	}
}

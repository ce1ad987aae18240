package dto

import "github.com/thereayou/classroom-lite/internal/models"

type AddRoomRequest struct {
	RoomID     string            `json:"room_id" binding:"required"`
	Building   string            `json:"building" binding:"required"`
	Capacity   int               `json:"capacity" binding:"required"`
	Floor      int               `json:"floor"`
	Facilities models.Facilities `json:"facilities"`
}

type AllocateRequest struct {
	CourseName string            `json:"course_name" binding:"required"`
	Instructor string            `json:"instructor"`
	Date       string            `json:"date" binding:"required"`
	StartTime  string            `json:"start_time" binding:"required"`
	EndTime    string            `json:"end_time" binding:"required"`
	Capacity   int               `json:"capacity" binding:"required"`
	Building   string            `json:"building"`
	Facilities models.Facilities `json:"facilities"`
}

type SlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

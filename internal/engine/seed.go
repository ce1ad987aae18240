package engine

import (
	"fmt"

	"github.com/thereayou/classroom-lite/internal/models"
)

type seedRoom struct {
	id         string
	building   string
	capacity   int
	floor      int
	facilities models.Facilities
}

var sampleRooms = []seedRoom{
	{"101", "Main", 50, 1, models.Facilities{Projector: true, Accessible: true, Whiteboard: true, Audio: true}},
	{"102", "Main", 30, 1, models.Facilities{Projector: true, Accessible: true, Whiteboard: true, Smartboard: true}},
	{"201", "Science", 40, 2, models.Facilities{Projector: true, Lab: true, Whiteboard: true, Audio: true}},
	{"301", "Engineering", 60, 3, models.Facilities{Projector: true, Lab: true, Accessible: true, Whiteboard: true, Audio: true, Smartboard: true}},
	{"LAB-A", "Science", 25, 1, models.Facilities{Projector: true, Lab: true, Accessible: true, Smartboard: true}},
	{"401", "Engineering", 100, 4, models.Facilities{Projector: true, Accessible: true, Whiteboard: true, Audio: true, Smartboard: true}},
	{"AUD-1", "Arts", 200, 1, models.Facilities{Projector: true, Accessible: true, Audio: true}},
}

// NewSeeded builds an engine pre-populated with the sample campus used by
// the demo dataset and the tests.
func NewSeeded() (*Engine, error) {
	e := New()
	for _, room := range sampleRooms {
		if err := e.Register(room.id, room.building, room.capacity, room.floor, room.facilities); err != nil {
			return nil, fmt.Errorf("seed room %s: %w", room.id, err)
		}
	}
	e.log.Record(KindInfo, "System initialized with sample data")
	return e, nil
}

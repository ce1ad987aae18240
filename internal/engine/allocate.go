package engine

import (
	"fmt"

	"github.com/thereayou/classroom-lite/internal/models"
)

// AllocationResult reports the outcome of a successful allocation.
type AllocationResult struct {
	BookingID string             `json:"booking_id"`
	Room      models.RoomSummary `json:"room"`
}

func validateAllocation(req models.AllocationRequest) error {
	switch {
	case req.Course == "":
		return fmt.Errorf("%w: course name is required", ErrInvalidRequest)
	case !models.ValidDate(req.Date):
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidRequest)
	case !req.Start.Valid() || !req.End.Valid():
		return fmt.Errorf("%w: times must be HH:MM", ErrInvalidRequest)
	case req.Start >= req.End:
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidRequest)
	case req.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidRequest)
	}
	return nil
}

// Allocate finds the best-fitting available room for the request and books
// it. Among candidates that satisfy capacity, building, facilities and
// availability, the room whose capacity exceeds the requirement by the
// least wins; earlier-registered rooms win ties. The whole check-then-book
// runs under one write lock.
func (e *Engine) Allocate(req models.AllocationRequest) (AllocationResult, error) {
	if err := validateAllocation(req); err != nil {
		return AllocationResult{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.log.Record(KindInfo, fmt.Sprintf("Processing allocation for %s", req.Course))

	var best *models.Room
	bestDiff := 0
	for _, id := range e.order {
		room := e.rooms[id]
		if room.Capacity < req.Capacity {
			continue
		}
		if req.Building != "" && room.Building != req.Building {
			continue
		}
		if !room.Facilities.Covers(req.Facilities) {
			continue
		}
		if !room.IsAvailable(req.Date, req.Start, req.End) {
			continue
		}
		diff := room.Capacity - req.Capacity
		if best == nil || diff < bestDiff {
			best = room
			bestDiff = diff
		}
	}

	if best == nil {
		e.log.Record(KindError, fmt.Sprintf("No suitable rooms for %s", req.Course))
		return AllocationResult{}, ErrNoAvailableRoom
	}

	bookingID, err := e.book(best, req.Date, req.Start, req.End, req.Course, req.Instructor)
	if err != nil {
		return AllocationResult{}, err
	}
	e.log.Record(KindSuccess, fmt.Sprintf("Allocated %s %s for %s (ID: %s)", best.Building, best.ID, req.Course, bookingID))
	return AllocationResult{BookingID: bookingID, Room: best.Summary()}, nil
}

package engine

import (
	"sort"

	"github.com/thereayou/classroom-lite/internal/models"
)

// Conflict is a pair of overlapping bookings in one room.
type Conflict struct {
	RoomID string         `json:"room_id"`
	First  models.Booking `json:"booking1"`
	Second models.Booking `json:"booking2"`
}

// Conflicts scans every room for pairs of bookings that overlap in time on
// the same date. The allocator never books an occupied slot, so conflicts
// only appear when state is manipulated directly; the audit recomputes from
// scratch on every call rather than trusting incremental bookkeeping.
func (e *Engine) Conflicts() []Conflict {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.conflictsLocked()
}

// conflictsLocked requires e.mu held for reading.
func (e *Engine) conflictsLocked() []Conflict {
	conflicts := make([]Conflict, 0)
	for _, id := range e.order {
		room := e.rooms[id]
		if len(room.Bookings) < 2 {
			continue
		}
		sorted := make([]models.Booking, len(room.Bookings))
		copy(sorted, room.Bookings)
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Date != sorted[j].Date {
				return sorted[i].Date < sorted[j].Date
			}
			return sorted[i].Start < sorted[j].Start
		})
		for i := 0; i < len(sorted); i++ {
			for j := i + 1; j < len(sorted); j++ {
				if sorted[j].Date != sorted[i].Date || sorted[j].Start >= sorted[i].End {
					break
				}
				conflicts = append(conflicts, Conflict{RoomID: room.ID, First: sorted[i], Second: sorted[j]})
			}
		}
	}
	return conflicts
}

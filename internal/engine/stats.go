package engine

import "math"

// Statistics is the aggregate utilization picture computed on demand.
type Statistics struct {
	TotalRooms      int     `json:"total_rooms"`
	TotalBookings   int     `json:"total_bookings"`
	UtilizedRooms   int     `json:"utilized_rooms"`
	UtilizationRate float64 `json:"utilization_rate"`
	Conflicts       int     `json:"conflicts"`
}

// Stats computes room, booking and conflict totals under one read lock.
// The conflict count comes from a fresh audit pass rather than a cache,
// trading repeat work for guaranteed freshness.
func (e *Engine) Stats() Statistics {
	e.mu.RLock()
	defer e.mu.RUnlock()

	stats := Statistics{TotalRooms: len(e.rooms)}
	for _, id := range e.order {
		room := e.rooms[id]
		stats.TotalBookings += len(room.Bookings)
		if len(room.Bookings) > 0 {
			stats.UtilizedRooms++
		}
	}
	if stats.TotalRooms > 0 {
		rate := float64(stats.UtilizedRooms) / float64(stats.TotalRooms) * 100
		stats.UtilizationRate = math.RoundToEven(rate*100) / 100
	}
	stats.Conflicts = len(e.conflictsLocked())
	return stats
}

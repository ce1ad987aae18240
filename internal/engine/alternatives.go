package engine

import (
	"github.com/thereayou/classroom-lite/internal/models"
)

// FindAlternatives walks the adjacency graph breadth-first from the given
// room and collects every reachable room, the start included, that is free
// for the slot. Results follow discovery order. An unknown start id yields
// an empty list rather than an error.
func (e *Engine) FindAlternatives(startRoomID, date string, start, end models.Minutes) []models.RoomSummary {
	e.mu.RLock()
	defer e.mu.RUnlock()

	alternatives := make([]models.RoomSummary, 0)
	if _, ok := e.rooms[startRoomID]; !ok {
		return alternatives
	}

	visited := map[string]struct{}{startRoomID: {}}
	queue := []string{startRoomID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		room := e.rooms[current]
		if room.IsAvailable(date, start, end) {
			alternatives = append(alternatives, room.Summary())
		}
		for _, adjacentID := range room.Adjacent {
			if _, seen := visited[adjacentID]; seen {
				continue
			}
			visited[adjacentID] = struct{}{}
			queue = append(queue, adjacentID)
		}
	}
	return alternatives
}

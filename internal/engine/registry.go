package engine

import (
	"fmt"
	"iter"
	"math"

	"github.com/thereayou/classroom-lite/internal/models"
)

// capacitySimilarity is the relative capacity difference under which two
// rooms are considered similar enough for an adjacency edge.
const capacitySimilarity = 0.25

// Register adds a room to the registry and derives similarity edges
// against every room registered before it. Room ids are globally unique
// and rooms are never deleted; capacity, building, floor and facilities
// are immutable after this call.
func (e *Engine) Register(id, building string, capacity, floor int, facilities models.Facilities) error {
	switch {
	case id == "":
		return fmt.Errorf("%w: room id is required", ErrInvalidRequest)
	case building == "":
		return fmt.Errorf("%w: building is required", ErrInvalidRequest)
	case capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidRequest)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.rooms[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRoom, id)
	}

	room := &models.Room{
		ID:         id,
		Building:   building,
		Capacity:   capacity,
		Floor:      floor,
		Facilities: facilities,
	}
	e.linkAdjacent(room)
	e.rooms[id] = room
	e.order = append(e.order, id)

	e.log.Record(KindInfo, fmt.Sprintf("Added room %s %s to system", building, id))
	return nil
}

// linkAdjacent creates symmetric edges between the new room and every
// existing room that shares its building or has a similar capacity.
// AddAdjacent is idempotent, so a pair matching both rules still gets a
// single edge. Callers hold the write lock.
func (e *Engine) linkAdjacent(room *models.Room) {
	for _, id := range e.order {
		other := e.rooms[id]
		if other.Building == room.Building || similarCapacity(other.Capacity, room.Capacity) {
			room.AddAdjacent(other.ID)
			other.AddAdjacent(room.ID)
		}
	}
}

// similarCapacity applies the relative-difference rule |a-b|/max(a,b) <= 0.25.
func similarCapacity(a, b int) bool {
	diff := math.Abs(float64(a) - float64(b))
	biggest := math.Max(float64(a), float64(b))
	return diff/biggest <= capacitySimilarity
}

// Lookup returns a snapshot of the room with the given id.
func (e *Engine) Lookup(id string) (models.RoomSummary, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	room, ok := e.rooms[id]
	if !ok {
		return models.RoomSummary{}, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	return room.Summary(), nil
}

// Rooms yields room summaries in registration order. The sequence is lazy
// and restartable: each range re-reads the registry, and summaries are
// built one at a time as the consumer advances. Rooms registered after the
// id snapshot was taken are not included in that pass.
func (e *Engine) Rooms() iter.Seq[models.RoomSummary] {
	return func(yield func(models.RoomSummary) bool) {
		e.mu.RLock()
		order := make([]string, len(e.order))
		copy(order, e.order)
		e.mu.RUnlock()

		for _, id := range order {
			// Rooms are never deleted, so the id is always present.
			e.mu.RLock()
			summary := e.rooms[id].Summary()
			e.mu.RUnlock()
			if !yield(summary) {
				return
			}
		}
	}
}

// Package engine implements the in-memory allocation core: the room
// registry, the derived similarity graph, per-room booking calendars,
// capacity/facility-filtered allocation, conflict auditing, breadth-first
// alternative search, the bounded activity log and on-demand statistics.
//
// One Engine value owns all state. A single RWMutex serializes mutations,
// so the availability check and the booking write inside Allocate form one
// critical section and two concurrent allocations can never double-book a
// slot. Read operations take the read lock and observe the last committed
// state. Nothing is persisted: an Engine lives and dies with the process,
// and "reset" means building a fresh instance (see Manager).
package engine

import (
	"sync"
	"time"

	"github.com/thereayou/classroom-lite/internal/models"
)

// Engine holds the full allocation state.
type Engine struct {
	mu         sync.RWMutex
	rooms      map[string]*models.Room
	order      []string            // room ids in registration order
	bookingIDs map[string]struct{} // every issued booking id, for collision checks
	log        *ActivityLog
	now        func() time.Time
}

// New creates an empty engine.
func New() *Engine {
	return &Engine{
		rooms:      make(map[string]*models.Room),
		bookingIDs: make(map[string]struct{}),
		log:        NewActivityLog(DefaultLogCapacity),
		now:        time.Now,
	}
}

// ActivityEntries returns the activity log, most recent first.
func (e *Engine) ActivityEntries() []Entry {
	return e.log.Entries()
}

// RoomCount reports the number of registered rooms.
func (e *Engine) RoomCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.rooms)
}

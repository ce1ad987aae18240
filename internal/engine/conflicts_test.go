package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thereayou/classroom-lite/internal/models"
)

// inject plants a booking directly, bypassing the allocator, which is the
// only way overlapping state can come into existence.
func inject(e *Engine, roomID, id, date string, start, end models.Minutes) {
	e.mu.Lock()
	defer e.mu.Unlock()
	room := e.rooms[roomID]
	room.Bookings = append(room.Bookings, models.Booking{ID: id, Date: date, Start: start, End: end})
	e.bookingIDs[id] = struct{}{}
}

func TestConflictsEmptyAfterNormalAllocation(t *testing.T) {
	e := New()
	mustRegister(t, e, "101", "Main", 50, 1, models.Facilities{})

	_, err := e.Allocate(testRequest(30))
	require.NoError(t, err)
	second := testRequest(30)
	second.Start, second.End = 600, 660
	_, err = e.Allocate(second)
	require.NoError(t, err)

	conflicts := e.Conflicts()
	assert.NotNil(t, conflicts)
	assert.Empty(t, conflicts)
}

func TestConflictsDetectsOverlap(t *testing.T) {
	e := New()
	mustRegister(t, e, "201", "Science", 40, 2, models.Facilities{})
	inject(e, "201", "BK-A", "2024-01-10", 540, 600)
	inject(e, "201", "BK-B", "2024-01-10", 570, 630)

	conflicts := e.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, "201", conflicts[0].RoomID)
	assert.Equal(t, "BK-A", conflicts[0].First.ID)
	assert.Equal(t, "BK-B", conflicts[0].Second.ID)
}

func TestConflictsSortsBeforeScanning(t *testing.T) {
	e := New()
	mustRegister(t, e, "201", "Science", 40, 2, models.Facilities{})
	// Inserted out of time order; the auditor must still pair them.
	inject(e, "201", "BK-LATE", "2024-01-10", 570, 630)
	inject(e, "201", "BK-EARLY", "2024-01-10", 540, 600)

	conflicts := e.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, "BK-EARLY", conflicts[0].First.ID, "pairs are reported in time order")
	assert.Equal(t, "BK-LATE", conflicts[0].Second.ID)
}

func TestConflictsIgnoresBoundaryTouch(t *testing.T) {
	e := New()
	mustRegister(t, e, "201", "Science", 40, 2, models.Facilities{})
	inject(e, "201", "BK-A", "2024-01-10", 540, 600)
	inject(e, "201", "BK-B", "2024-01-10", 600, 660)

	assert.Empty(t, e.Conflicts())
}

func TestConflictsIgnoresOtherDates(t *testing.T) {
	e := New()
	mustRegister(t, e, "201", "Science", 40, 2, models.Facilities{})
	inject(e, "201", "BK-A", "2024-01-10", 540, 600)
	inject(e, "201", "BK-B", "2024-01-11", 540, 600)

	assert.Empty(t, e.Conflicts())
}

func TestConflictsReportsEveryOverlappingPair(t *testing.T) {
	e := New()
	mustRegister(t, e, "201", "Science", 40, 2, models.Facilities{})
	inject(e, "201", "BK-LONG", "2024-01-10", 540, 720)  // 09:00-12:00
	inject(e, "201", "BK-SHORT", "2024-01-10", 570, 600) // 09:30-10:00
	inject(e, "201", "BK-LATER", "2024-01-10", 660, 780) // 11:00-13:00

	conflicts := e.Conflicts()
	require.Len(t, conflicts, 2)
	assert.Equal(t, "BK-LONG", conflicts[0].First.ID)
	assert.Equal(t, "BK-SHORT", conflicts[0].Second.ID)
	assert.Equal(t, "BK-LONG", conflicts[1].First.ID)
	assert.Equal(t, "BK-LATER", conflicts[1].Second.ID)
}

func TestConflictsScanRoomsIndependently(t *testing.T) {
	e := New()
	mustRegister(t, e, "101", "Main", 50, 1, models.Facilities{})
	mustRegister(t, e, "102", "Main", 30, 1, models.Facilities{})
	// The same slot in two different rooms is not a conflict.
	inject(e, "101", "BK-A", "2024-01-10", 540, 600)
	inject(e, "102", "BK-B", "2024-01-10", 540, 600)

	assert.Empty(t, e.Conflicts())
}

package engine

import (
	"crypto/rand"
	"fmt"

	"github.com/thereayou/classroom-lite/internal/models"
)

const (
	bookingIDPrefix    = "BK"
	bookingSuffixLen   = 6
	bookingIDAttempts  = 5
	bookingIDTimestamp = "20060102150405"
	suffixAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// IsAvailable reports whether the room has no booking overlapping the slot.
// Bookings that merely touch the boundary do not block the slot.
func (e *Engine) IsAvailable(roomID, date string, start, end models.Minutes) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	room, ok := e.rooms[roomID]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
	}
	return room.IsAvailable(date, start, end), nil
}

// book appends a booking with a freshly generated id. Callers hold the
// write lock and have already verified availability.
func (e *Engine) book(room *models.Room, date string, start, end models.Minutes, course, instructor string) (string, error) {
	id, err := e.newBookingIDLocked()
	if err != nil {
		return "", err
	}
	room.Bookings = append(room.Bookings, models.Booking{
		ID:         id,
		Date:       date,
		Start:      start,
		End:        end,
		Course:     course,
		Instructor: instructor,
		CreatedAt:  e.now(),
	})
	e.bookingIDs[id] = struct{}{}
	return id, nil
}

// newBookingIDLocked generates a booking id of the form
// BK<yyyymmddhhmmss><6 random alphanumerics>. The timestamp+random scheme
// has a non-zero theoretical collision probability, so the id is checked
// against every id ever issued and regenerated on a hit.
func (e *Engine) newBookingIDLocked() (string, error) {
	for attempt := 0; attempt < bookingIDAttempts; attempt++ {
		suffix, err := randomSuffix(bookingSuffixLen)
		if err != nil {
			return "", fmt.Errorf("generate booking id: %w", err)
		}
		id := bookingIDPrefix + e.now().Format(bookingIDTimestamp) + suffix
		if _, taken := e.bookingIDs[id]; !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("generate booking id: collision after %d attempts", bookingIDAttempts)
}

func randomSuffix(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = suffixAlphabet[int(buf[i])%len(suffixAlphabet)]
	}
	return string(buf), nil
}

// ScheduleEntry pairs a booking with a snapshot of its room, the shape the
// schedule query returns.
type ScheduleEntry struct {
	Room    models.RoomSummary `json:"room"`
	Booking models.Booking     `json:"booking"`
}

// Schedule lists bookings, each paired with its room summary. With a room
// id it covers that room only; an unknown id produces an empty list. With
// an empty id it covers every room in registration order, bookings in
// insertion order.
func (e *Engine) Schedule(roomID string) []ScheduleEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	entries := make([]ScheduleEntry, 0)
	collect := func(room *models.Room) {
		for _, booking := range room.Bookings {
			entries = append(entries, ScheduleEntry{Room: room.Summary(), Booking: booking})
		}
	}

	if roomID != "" {
		if room, ok := e.rooms[roomID]; ok {
			collect(room)
		}
		return entries
	}
	for _, id := range e.order {
		collect(e.rooms[id])
	}
	return entries
}

package models

// Room is a physical classroom. Identity and physical attributes are fixed
// at registration; only the adjacency list and the booking list grow over
// time, and the engine serializes every mutation.
type Room struct {
	ID         string
	Building   string
	Capacity   int
	Floor      int
	Facilities Facilities

	// Adjacent holds the ids of similarity-linked rooms in the order the
	// links were created. Symmetric: the counterpart room lists this one.
	Adjacent []string

	// Bookings in insertion order.
	Bookings []Booking
}

// AddAdjacent links the room to another by id. Adding an existing link is
// a no-op, so edge derivation stays idempotent.
func (r *Room) AddAdjacent(id string) {
	for _, existing := range r.Adjacent {
		if existing == id {
			return
		}
	}
	r.Adjacent = append(r.Adjacent, id)
}

// IsAvailable reports whether no existing booking overlaps the slot.
func (r *Room) IsAvailable(date string, start, end Minutes) bool {
	for _, b := range r.Bookings {
		if b.Overlaps(date, start, end) {
			return false
		}
	}
	return true
}

// RoomSummary is the listing representation of a room: identity, physical
// attributes, graph neighbours and a booking count, but no booking bodies.
type RoomSummary struct {
	ID           string     `json:"room_id"`
	Building     string     `json:"building"`
	Capacity     int        `json:"capacity"`
	Floor        int        `json:"floor"`
	Facilities   Facilities `json:"facilities"`
	Adjacent     []string   `json:"adjacent_rooms"`
	BookingCount int        `json:"bookings_count"`
}

// Summary produces a detached snapshot of the room. The adjacency slice is
// copied so callers never alias engine-owned state.
func (r *Room) Summary() RoomSummary {
	adjacent := make([]string, len(r.Adjacent))
	copy(adjacent, r.Adjacent)
	return RoomSummary{
		ID:           r.ID,
		Building:     r.Building,
		Capacity:     r.Capacity,
		Floor:        r.Floor,
		Facilities:   r.Facilities,
		Adjacent:     adjacent,
		BookingCount: len(r.Bookings),
	}
}

package models

import "time"

// Booking is a confirmed reservation of a room for a same-day time
// interval. Bookings are append-only: once created they are never modified
// or removed.
type Booking struct {
	ID         string    `json:"booking_id"`
	Date       string    `json:"date"`
	Start      Minutes   `json:"start_time"`
	End        Minutes   `json:"end_time"`
	Course     string    `json:"course_name"`
	Instructor string    `json:"instructor"`
	CreatedAt  time.Time `json:"timestamp"`
}

// Overlaps reports whether the booking collides with the given slot on the
// given date. Sharing an endpoint is not a collision.
func (b Booking) Overlaps(date string, start, end Minutes) bool {
	if b.Date != date {
		return false
	}
	return Overlaps(start, end, b.Start, b.End)
}

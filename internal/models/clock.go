package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used everywhere in the system.
// ISO dates compare correctly as plain strings, which the schedule and
// conflict code relies on.
const DateLayout = "2006-01-02"

// Minutes is a time of day expressed as minutes since midnight. Keeping
// times as integers makes interval comparison trivial; the "HH:MM" form
// exists only at the HTTP boundary.
type Minutes int

const minutesPerDay = 24 * 60

// ParseClock converts a fixed-width "HH:MM" string into Minutes.
func ParseClock(s string) (Minutes, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: hour 00-23, minute 00-59", s)
	}
	return Minutes(t.Hour()*60 + t.Minute()), nil
}

// String renders the zero-padded "HH:MM" form.
func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Valid reports whether m lies within a single day.
func (m Minutes) Valid() bool {
	return m >= 0 && m < minutesPerDay
}

// MarshalJSON encodes Minutes as its "HH:MM" string.
func (m Minutes) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts the "HH:MM" string form.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ValidDate reports whether s is a well-formed ISO calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Overlaps reports whether [aStart,aEnd) and [bStart,bEnd) intersect.
// Intervals that only touch at an endpoint do not overlap, so back-to-back
// bookings are legal.
func Overlaps(aStart, aEnd, bStart, bEnd Minutes) bool {
	return aStart < bEnd && bStart < aEnd
}

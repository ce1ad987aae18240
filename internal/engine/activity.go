package engine

import (
	"sync"
	"time"
)

// EntryKind classifies an activity entry.
type EntryKind string

const (
	KindInfo    EntryKind = "info"
	KindSuccess EntryKind = "success"
	KindError   EntryKind = "error"
)

// DefaultLogCapacity is how many entries the activity log retains.
const DefaultLogCapacity = 100

// Entry is one recorded event.
type Entry struct {
	Kind      EntryKind `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityLog is a bounded, append-only event record. When the capacity is
// exceeded the oldest entries are discarded. It carries its own lock so it
// can be read while the engine is mutating elsewhere.
type ActivityLog struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
	now      func() time.Time
}

// NewActivityLog creates a log bounded to the given capacity; values < 1
// fall back to DefaultLogCapacity.
func NewActivityLog(capacity int) *ActivityLog {
	if capacity < 1 {
		capacity = DefaultLogCapacity
	}
	return &ActivityLog{capacity: capacity, now: time.Now}
}

// Record appends a timestamped entry, evicting the oldest entries if the
// log would exceed its capacity.
func (l *ActivityLog) Record(kind EntryKind, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Kind: kind, Message: message, Timestamp: l.now()})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Entries returns a copy of the log, most recent first.
func (l *ActivityLog) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	for i, entry := range l.entries {
		out[len(l.entries)-1-i] = entry
	}
	return out
}

// Len reports the current number of retained entries.
func (l *ActivityLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

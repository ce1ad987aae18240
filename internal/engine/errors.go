package engine

import "errors"

// Business errors returned by engine operations. All are recoverable,
// caller-facing conditions; the engine never panics for them. Wrapped
// variants carry detail, so match with errors.Is.
var (
	// ErrDuplicateRoom is returned when registering an id that already exists.
	ErrDuplicateRoom = errors.New("room already exists")

	// ErrRoomNotFound is returned when an operation references an unknown room id.
	ErrRoomNotFound = errors.New("room not found")

	// ErrNoAvailableRoom is returned when no room passes every allocation filter.
	ErrNoAvailableRoom = errors.New("no rooms match requirements or are available")

	// ErrInvalidRequest is returned for missing or malformed request fields.
	ErrInvalidRequest = errors.New("invalid request")
)

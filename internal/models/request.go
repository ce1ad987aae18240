package models

// AllocationRequest describes one course's need for a room. Building is an
// optional filter (empty means any building); a facility flag set to true
// is a hard requirement, false imposes nothing.
type AllocationRequest struct {
	Course     string
	Instructor string
	Date       string
	Start      Minutes
	End        Minutes
	Capacity   int
	Building   string
	Facilities Facilities
}

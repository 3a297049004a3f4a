package repositories

import "errors"

// ErrNotFound is returned by every repository lookup that matches no record.
var ErrNotFound = errors.New("record not found")

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Repository bundles all collection repositories. The process owns one
// instance; services borrow it. The shipped implementation is in-memory
// (internal/repositories/memory) — durable storage is supplied by an external
// collaborator, not this module.
type Repository interface {
	// Organizational hierarchy
	Hierarchy() HierarchyRepository

	// Roster
	Student() StudentRepository

	// Staff identities
	StaffAssignment() StaffAssignmentRepository
	Advisor() AdvisorRepository
	HOD() HODRepository

	// Schedules
	Timetable() TimetableRepository

	// Cycle history and config
	Archive() ArchiveRepository
	System() SystemRepository

	// Per-student transactional tracking (wiped on cycle advance)
	Tracker() TrackerRepository
}

package repositories

import (
	"context"

	"github.com/acadhub-2025/records-service/internal/models"
)

// ===== HIERARCHY =====

// HierarchyRepository stores the department tree. Writers replace whole
// departments (copy-on-write at the department level); readers receive
// copies they may not mutate in place.
type HierarchyRepository interface {
	List(ctx context.Context) ([]models.Department, error)
	Get(ctx context.Context, id string) (models.Department, error)
	Upsert(ctx context.Context, dept models.Department) error
	Delete(ctx context.Context, id string) error
}

// ===== ROSTER =====

type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	// Get matches the roll number case-insensitively.
	Get(ctx context.Context, rollNo string) (models.Student, error)
	// GetByEmail matches the recovery email case-insensitively.
	GetByEmail(ctx context.Context, email string) (models.Student, error)
	Create(ctx context.Context, s models.Student) error
	Update(ctx context.Context, s models.Student) error
	Delete(ctx context.Context, rollNo string) error
	// DeleteAll wipes the live roster. Only the cycle controller calls this.
	DeleteAll(ctx context.Context) error
}

// ===== STAFF IDENTITIES =====

type StaffAssignmentRepository interface {
	List(ctx context.Context) ([]models.StaffAssignment, error)
	Get(ctx context.Context, id string) (models.StaffAssignment, error)
	Create(ctx context.Context, a models.StaffAssignment) error
	Delete(ctx context.Context, id string) error
}

type AdvisorRepository interface {
	List(ctx context.Context) ([]models.FacultyAdvisorAccount, error)
	Create(ctx context.Context, a models.FacultyAdvisorAccount) error
	Delete(ctx context.Context, id string) error
}

type HODRepository interface {
	List(ctx context.Context) ([]models.HODAccount, error)
	Create(ctx context.Context, a models.HODAccount) error
	Delete(ctx context.Context, id string) error
}

// ===== TIMETABLES =====

type TimetableRepository interface {
	List(ctx context.Context) ([]models.TimeTableEntry, error)
	GetByTriple(ctx context.Context, deptID, year, section string) (models.TimeTableEntry, error)
	// Upsert replaces any prior entry carrying the same id.
	Upsert(ctx context.Context, entry models.TimeTableEntry) error
}

// ===== CYCLE HISTORY & CONFIG =====

type ArchiveRepository interface {
	// List returns archives most-recent-first.
	List(ctx context.Context) ([]models.AcademicArchive, error)
	// Prepend inserts a new archive at the head of the history.
	Prepend(ctx context.Context, a models.AcademicArchive) error
}

type SystemRepository interface {
	Get(ctx context.Context) (models.SystemConfig, error)
	Update(ctx context.Context, cfg models.SystemConfig) error
}

// ===== TRANSACTIONAL TRACKERS =====

// TrackerRepository keys everything by student id; ClearAll is the cycle
// controller's wipe of all per-student transactional state.
type TrackerRepository interface {
	SetAssignmentProgress(ctx context.Context, subject, studentID string, p models.AssignmentProgress) error
	GetAssignmentProgress(ctx context.Context, subject, studentID string) (models.AssignmentProgress, error)

	AppendExamResult(ctx context.Context, r models.ExamResult) error
	ListExamResults(ctx context.Context) ([]models.ExamResult, error)

	MarkAttendance(ctx context.Context, date, studentID string, status models.AttendanceStatus) error
	AttendanceForDate(ctx context.Context, date string) (map[string]models.AttendanceStatus, error)

	ClearAll(ctx context.Context) error
}

package services

import (
	"bytes"
	"context"

	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/validator"
)

// ===== REQUEST DTOs =====

// Use business validator types
type AddDepartmentRequest = validator.AddDepartmentRequest
type AddYearRequest = validator.AddYearRequest
type AddSectionRequest = validator.AddSectionRequest
type EnrollStudentRequest = validator.EnrollStudentRequest
type UpdateProfileRequest = validator.UpdateProfileRequest
type RecordMarksRequest = validator.RecordMarksRequest
type EnterResultRequest = validator.EnterResultRequest
type RecordExamResultRequest = validator.RecordExamResultRequest
type MarkAttendanceRequest = validator.MarkAttendanceRequest
type CreateHODRequest = validator.CreateHODRequest
type CreateAdvisorRequest = validator.CreateAdvisorRequest
type CreateStaffAssignmentRequest = validator.CreateStaffAssignmentRequest
type PublishTimetableRequest = validator.PublishTimetableRequest
type AdvanceCycleRequest = validator.AdvanceCycleRequest

// ===== SCOPING =====

// Coordinate is the (department, year, section) triple that scopes every
// non-administrator view.
type Coordinate struct {
	DepartmentID string `json:"department_id"`
	Year         string `json:"year"`
	Section      string `json:"section"`
}

// RoleScope is the closed set of role variants. Each variant carries exactly
// the scope payload its dashboard needs; the compiler keeps the set closed.
type RoleScope interface {
	Role() models.Role
}

type StudentScope struct{}

type HODScope struct {
	DepartmentID string
}

type AdvisorScope struct {
	DepartmentID string
	Year         string
	Section      string
}

type StaffScope struct {
	DepartmentID string
	Year         string
	Section      string
	Subject      string
}

type AdminScope struct{}

func (StudentScope) Role() models.Role { return models.RoleStudent }
func (HODScope) Role() models.Role     { return models.RoleHOD }
func (AdvisorScope) Role() models.Role { return models.RoleFacultyAdvisor }
func (StaffScope) Role() models.Role   { return models.RoleStaff }
func (AdminScope) Role() models.Role   { return models.RoleAdmin }

// ===== SERVICE INTERFACES =====

type HierarchyService interface {
	List(ctx context.Context) ([]models.Department, error)
	Get(ctx context.Context, id string) (models.Department, error)
	AddDepartment(ctx context.Context, req AddDepartmentRequest) (models.Department, error)
	AddYear(ctx context.Context, req AddYearRequest) (models.Department, error)
	AddSection(ctx context.Context, req AddSectionRequest) (models.Department, error)
	RemoveDepartment(ctx context.Context, id string, confirm bool) error
	RemoveYear(ctx context.Context, deptID, yearID string, confirm bool) error
	RemoveSection(ctx context.Context, deptID, yearID, section string, confirm bool) error
}

type RosterService interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, rollNo string) (models.Student, error)
	Enroll(ctx context.Context, req EnrollStudentRequest) (models.Student, error)
	Remove(ctx context.Context, rollNo string, confirm bool) error
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (models.Student, error)
	RecordMarks(ctx context.Context, req RecordMarksRequest) error
	EnterResult(ctx context.Context, req EnterResultRequest) error
	RecordExamResult(ctx context.Context, req RecordExamResultRequest) error
	ExamResults(ctx context.Context) ([]models.ExamResult, error)
	MarkDailyAttendance(ctx context.Context, req MarkAttendanceRequest) error
	DayAttendanceStats(ctx context.Context, coord Coordinate, date string) (DayAttendanceStats, error)
	SetAttendancePercentage(ctx context.Context, rollNo string, pct float64) error
	SetAssignmentProgress(ctx context.Context, subject, rollNo string, p models.AssignmentProgress) error
	AssignmentProgress(ctx context.Context, subject, rollNo string) (models.AssignmentProgress, error)
}

type AccountService interface {
	CreateHOD(ctx context.Context, req CreateHODRequest) (models.HODAccount, error)
	CreateAdvisor(ctx context.Context, req CreateAdvisorRequest) (models.FacultyAdvisorAccount, error)
	CreateStaffAssignment(ctx context.Context, req CreateStaffAssignmentRequest) (models.StaffAssignment, error)
	ListHODs(ctx context.Context) ([]models.HODAccount, error)
	ListAdvisors(ctx context.Context) ([]models.FacultyAdvisorAccount, error)
	ListStaffAssignments(ctx context.Context) ([]models.StaffAssignment, error)
	RemoveHOD(ctx context.Context, id string, confirm bool) error
	RemoveAdvisor(ctx context.Context, id string, confirm bool) error
	RemoveStaffAssignment(ctx context.Context, id string, confirm bool) error
}

type ScopeService interface {
	// VisibleStudents filters the live roster to what the given role scope may
	// observe. Admin receives the whole roster; a coordinate that matches
	// nothing yields an empty slice, never an error.
	VisibleStudents(ctx context.Context, scope RoleScope) ([]models.Student, error)
}

type AnalyticsService interface {
	Summarize(students []models.Student) ResultSummary
	GradeHistogram(students []models.Student) []GradeCount
	PerformanceIndex(students []models.Student) int
	DepartmentPerformance(ctx context.Context, students []models.Student) ([]UnitPerformance, error)
	CATSummary(students []models.Student, subject string) CATSummary
	Classify(gpa string) ResultClass
}

type CredentialService interface {
	// Begin opens a fresh per-attempt login flow for the given role scope.
	Begin(scope RoleScope) *LoginFlow
	// VerifyAdmin checks the single fixed administrator credential pair.
	VerifyAdmin(identity, secret string) bool
}

type TimetableService interface {
	Publish(ctx context.Context, req PublishTimetableRequest) (models.TimeTableEntry, error)
	Get(ctx context.Context, coord Coordinate) (models.TimeTableEntry, error)
}

type CycleService interface {
	// Advance archives the current cycle and resets transactional state.
	// Admin-only and confirmation-gated.
	Advance(ctx context.Context, actor models.Role, req AdvanceCycleRequest) (models.AcademicArchive, error)
	ListArchives(ctx context.Context) ([]models.AcademicArchive, error)
	ArchivedSectionCount(a models.AcademicArchive, coord Coordinate) int
	Current(ctx context.Context) (models.SystemConfig, error)
}

type ExportService interface {
	// ExportRoster renders the scoped roster plus its analytics summary as an
	// Excel workbook.
	ExportRoster(ctx context.Context, scope RoleScope) (*bytes.Buffer, string, error)
}

// ===== SHARED RESPONSE DTOs =====

type DayAttendanceStats struct {
	PresentPerc int `json:"present_perc"`
	AbsentPerc  int `json:"absent_perc"`
	NotMarked   int `json:"not_marked"`
}

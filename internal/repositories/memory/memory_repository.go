// Package memory holds the process-local implementation of the repository
// bundle. All collections live for the lifetime of the process; an external
// persistence collaborator would serialize them, this module never does.
//
// Each collection carries its own RWMutex. The interactive workload is a
// single operator, but mutations from different collections must not observe
// each other half-applied once an embedding host runs more than one goroutine.
package memory

import (
	"sync"

	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
)

type store struct {
	hierarchyMu sync.RWMutex
	departments []models.Department

	studentMu sync.RWMutex
	students  []models.Student

	staffMu  sync.RWMutex
	staff    []models.StaffAssignment
	advisors []models.FacultyAdvisorAccount
	hods     []models.HODAccount

	timetableMu sync.RWMutex
	timetables  []models.TimeTableEntry

	archiveMu sync.RWMutex
	archives  []models.AcademicArchive

	systemMu sync.RWMutex
	system   models.SystemConfig

	trackerMu   sync.RWMutex
	assignments map[string]map[string]models.AssignmentProgress // subject -> student -> progress
	examResults []models.ExamResult
	attendance  models.DailyAttendanceLog
}

type repository struct {
	s *store

	hierarchy *hierarchyRepository
	student   *studentRepository
	staff     *staffAssignmentRepository
	advisor   *advisorRepository
	hod       *hodRepository
	timetable *timetableRepository
	archive   *archiveRepository
	system    *systemRepository
	tracker   *trackerRepository
}

// NewRepository builds an empty in-memory repository seeded with the given
// system configuration.
func NewRepository(system models.SystemConfig) repositories.Repository {
	s := &store{
		system:      system,
		assignments: make(map[string]map[string]models.AssignmentProgress),
		attendance:  make(models.DailyAttendanceLog),
	}
	return &repository{
		s:         s,
		hierarchy: &hierarchyRepository{s: s},
		student:   &studentRepository{s: s},
		staff:     &staffAssignmentRepository{s: s},
		advisor:   &advisorRepository{s: s},
		hod:       &hodRepository{s: s},
		timetable: &timetableRepository{s: s},
		archive:   &archiveRepository{s: s},
		system:    &systemRepository{s: s},
		tracker:   &trackerRepository{s: s},
	}
}

func (r *repository) Hierarchy() repositories.HierarchyRepository             { return r.hierarchy }
func (r *repository) Student() repositories.StudentRepository                 { return r.student }
func (r *repository) StaffAssignment() repositories.StaffAssignmentRepository { return r.staff }
func (r *repository) Advisor() repositories.AdvisorRepository                 { return r.advisor }
func (r *repository) HOD() repositories.HODRepository                         { return r.hod }
func (r *repository) Timetable() repositories.TimetableRepository             { return r.timetable }
func (r *repository) Archive() repositories.ArchiveRepository                 { return r.archive }
func (r *repository) System() repositories.SystemRepository                   { return r.system }
func (r *repository) Tracker() repositories.TrackerRepository                 { return r.tracker }

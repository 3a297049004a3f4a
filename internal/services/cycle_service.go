package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/acadhub-2025/records-service/internal/events"
	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
	"github.com/acadhub-2025/records-service/internal/validator"
)

// cycleService rolls the institution from one academic term to the next.
//
// The defining invariant of the transition: students and every per-student
// tracker are wiped, while hierarchy, staff/advisor/HOD accounts, timetables
// and the archive history are preserved. The archive gets a deep,
// independent copy — later mutation of live state must never reach it.
type cycleService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewCycleService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) CycleService {
	return &cycleService{repo: repo, logger: logger, validator: validator, publisher: publisher}
}

func (s *cycleService) Advance(ctx context.Context, actor models.Role, req AdvanceCycleRequest) (models.AcademicArchive, error) {
	if actor != models.RoleAdmin {
		return models.AcademicArchive{}, ErrAdminOnly
	}
	if errs := s.validator.Validate(req); errs != nil {
		return models.AcademicArchive{}, errs
	}
	if !req.Confirm {
		return models.AcademicArchive{}, ErrConfirmationRequired
	}

	cfg, err := s.repo.System().Get(ctx)
	if err != nil {
		return models.AcademicArchive{}, fmt.Errorf("failed to read system config: %w", err)
	}
	students, err := s.repo.Student().List(ctx)
	if err != nil {
		return models.AcademicArchive{}, fmt.Errorf("failed to list students: %w", err)
	}
	depts, err := s.repo.Hierarchy().List(ctx)
	if err != nil {
		return models.AcademicArchive{}, fmt.Errorf("failed to list departments: %w", err)
	}

	archive := models.AcademicArchive{
		ID:         uuid.NewString(),
		Year:       cfg.CurrentYear,
		Semester:   cfg.CurrentSemester,
		ArchivedAt: time.Now().UTC(),
		Data: models.ArchivedData{
			Students:    models.CloneStudents(students),
			Departments: models.CloneDepartments(depts),
		},
	}

	if err := s.repo.Archive().Prepend(ctx, archive); err != nil {
		return models.AcademicArchive{}, fmt.Errorf("failed to store archive: %w", err)
	}

	cfg.CurrentYear = req.NewYear
	cfg.CurrentSemester = req.NewSemester
	if err := s.repo.System().Update(ctx, cfg); err != nil {
		return models.AcademicArchive{}, fmt.Errorf("failed to update system config: %w", err)
	}
	if err := s.repo.Student().DeleteAll(ctx); err != nil {
		return models.AcademicArchive{}, fmt.Errorf("failed to clear roster: %w", err)
	}
	if err := s.repo.Tracker().ClearAll(ctx); err != nil {
		return models.AcademicArchive{}, fmt.Errorf("failed to clear trackers: %w", err)
	}

	s.logger.Info("academic cycle advanced",
		"archived_year", archive.Year,
		"archived_semester", archive.Semester,
		"archived_students", len(archive.Data.Students),
		"new_year", req.NewYear,
		"new_semester", req.NewSemester)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.NewEvent(events.TypeCycleAdvanced, map[string]interface{}{
			"archived_year": archive.Year,
			"new_year":      req.NewYear,
			"new_semester":  req.NewSemester,
		})); err != nil {
			s.logger.Warn("event publish failed", "event_type", events.TypeCycleAdvanced, "error", err)
		}
	}
	return archive, nil
}

func (s *cycleService) ListArchives(ctx context.Context) ([]models.AcademicArchive, error) {
	return s.repo.Archive().List(ctx)
}

// ArchivedSectionCount is the history browser's drill-down: how many archived
// students sat in the given section of that cycle.
func (s *cycleService) ArchivedSectionCount(a models.AcademicArchive, coord Coordinate) int {
	return len(FilterByCoordinate(a.Data.Students, a.Data.Departments, coord))
}

func (s *cycleService) Current(ctx context.Context) (models.SystemConfig, error) {
	return s.repo.System().Get(ctx)
}

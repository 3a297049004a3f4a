package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/acadhub-2025/records-service/internal/events"
	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
	"github.com/acadhub-2025/records-service/internal/validator"
)

type timetableService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewTimetableService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) TimetableService {
	return &timetableService{repo: repo, logger: logger, validator: validator, publisher: publisher}
}

// Publish stores the schedule under the deterministic triple id, overwriting
// any prior entry for the same (department, year, section). Rows are padded
// or truncated to the fixed period count.
func (s *timetableService) Publish(ctx context.Context, req PublishTimetableRequest) (models.TimeTableEntry, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return models.TimeTableEntry{}, errs
	}

	schedule := models.BlankSchedule()
	for day, slots := range req.Schedule {
		row := make([]string, models.PeriodsPerDay)
		copy(row, slots)
		schedule[day] = row
	}

	entry := models.TimeTableEntry{
		ID:           models.TimetableID(req.DepartmentID, req.Year, req.Section),
		DepartmentID: req.DepartmentID,
		Year:         req.Year,
		Section:      req.Section,
		Schedule:     schedule,
	}
	if err := s.repo.Timetable().Upsert(ctx, entry); err != nil {
		return models.TimeTableEntry{}, fmt.Errorf("failed to store timetable: %w", err)
	}

	s.logger.Info("timetable published", "timetable_id", entry.ID)
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.NewEvent(events.TypeTimetablePublished, map[string]interface{}{"timetable_id": entry.ID})); err != nil {
			s.logger.Warn("event publish failed", "event_type", events.TypeTimetablePublished, "error", err)
		}
	}
	return entry, nil
}

// Get returns the published entry for the triple, or a blank Monday-Friday
// grid when nothing has been published yet.
func (s *timetableService) Get(ctx context.Context, coord Coordinate) (models.TimeTableEntry, error) {
	entry, err := s.repo.Timetable().GetByTriple(ctx, coord.DepartmentID, coord.Year, coord.Section)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return models.TimeTableEntry{
				ID:           models.TimetableID(coord.DepartmentID, coord.Year, coord.Section),
				DepartmentID: coord.DepartmentID,
				Year:         coord.Year,
				Section:      coord.Section,
				Schedule:     models.BlankSchedule(),
			}, nil
		}
		return models.TimeTableEntry{}, fmt.Errorf("failed to get timetable: %w", err)
	}
	return entry, nil
}

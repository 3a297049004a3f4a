package memory

import (
	"context"

	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
)

type timetableRepository struct {
	s *store
}

func (r *timetableRepository) List(_ context.Context) ([]models.TimeTableEntry, error) {
	r.s.timetableMu.RLock()
	defer r.s.timetableMu.RUnlock()
	out := make([]models.TimeTableEntry, len(r.s.timetables))
	for i, t := range r.s.timetables {
		out[i] = t.Clone()
	}
	return out, nil
}

func (r *timetableRepository) GetByTriple(_ context.Context, deptID, year, section string) (models.TimeTableEntry, error) {
	r.s.timetableMu.RLock()
	defer r.s.timetableMu.RUnlock()
	for _, t := range r.s.timetables {
		if t.DepartmentID == deptID && t.Year == year && t.Section == section {
			return t.Clone(), nil
		}
	}
	return models.TimeTableEntry{}, repositories.ErrNotFound
}

func (r *timetableRepository) Upsert(_ context.Context, entry models.TimeTableEntry) error {
	r.s.timetableMu.Lock()
	defer r.s.timetableMu.Unlock()
	for i, t := range r.s.timetables {
		if t.ID == entry.ID {
			r.s.timetables[i] = entry.Clone()
			return nil
		}
	}
	r.s.timetables = append(r.s.timetables, entry.Clone())
	return nil
}

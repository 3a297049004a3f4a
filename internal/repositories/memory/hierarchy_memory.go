package memory

import (
	"context"

	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
)

type hierarchyRepository struct {
	s *store
}

func (r *hierarchyRepository) List(_ context.Context) ([]models.Department, error) {
	r.s.hierarchyMu.RLock()
	defer r.s.hierarchyMu.RUnlock()
	return models.CloneDepartments(r.s.departments), nil
}

func (r *hierarchyRepository) Get(_ context.Context, id string) (models.Department, error) {
	r.s.hierarchyMu.RLock()
	defer r.s.hierarchyMu.RUnlock()
	for _, d := range r.s.departments {
		if d.ID == id {
			return d.Clone(), nil
		}
	}
	return models.Department{}, repositories.ErrNotFound
}

func (r *hierarchyRepository) Upsert(_ context.Context, dept models.Department) error {
	r.s.hierarchyMu.Lock()
	defer r.s.hierarchyMu.Unlock()
	for i, d := range r.s.departments {
		if d.ID == dept.ID {
			r.s.departments[i] = dept.Clone()
			return nil
		}
	}
	r.s.departments = append(r.s.departments, dept.Clone())
	return nil
}

func (r *hierarchyRepository) Delete(_ context.Context, id string) error {
	r.s.hierarchyMu.Lock()
	defer r.s.hierarchyMu.Unlock()
	for i, d := range r.s.departments {
		if d.ID == id {
			r.s.departments = append(r.s.departments[:i], r.s.departments[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

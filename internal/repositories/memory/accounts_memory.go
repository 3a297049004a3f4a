package memory

import (
	"context"

	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
)

type staffAssignmentRepository struct {
	s *store
}

func (r *staffAssignmentRepository) List(_ context.Context) ([]models.StaffAssignment, error) {
	r.s.staffMu.RLock()
	defer r.s.staffMu.RUnlock()
	return append([]models.StaffAssignment(nil), r.s.staff...), nil
}

func (r *staffAssignmentRepository) Get(_ context.Context, id string) (models.StaffAssignment, error) {
	r.s.staffMu.RLock()
	defer r.s.staffMu.RUnlock()
	for _, a := range r.s.staff {
		if a.ID == id {
			return a, nil
		}
	}
	return models.StaffAssignment{}, repositories.ErrNotFound
}

func (r *staffAssignmentRepository) Create(_ context.Context, a models.StaffAssignment) error {
	r.s.staffMu.Lock()
	defer r.s.staffMu.Unlock()
	r.s.staff = append(r.s.staff, a)
	return nil
}

func (r *staffAssignmentRepository) Delete(_ context.Context, id string) error {
	r.s.staffMu.Lock()
	defer r.s.staffMu.Unlock()
	for i, a := range r.s.staff {
		if a.ID == id {
			r.s.staff = append(r.s.staff[:i], r.s.staff[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type advisorRepository struct {
	s *store
}

func (r *advisorRepository) List(_ context.Context) ([]models.FacultyAdvisorAccount, error) {
	r.s.staffMu.RLock()
	defer r.s.staffMu.RUnlock()
	return append([]models.FacultyAdvisorAccount(nil), r.s.advisors...), nil
}

func (r *advisorRepository) Create(_ context.Context, a models.FacultyAdvisorAccount) error {
	r.s.staffMu.Lock()
	defer r.s.staffMu.Unlock()
	r.s.advisors = append(r.s.advisors, a)
	return nil
}

func (r *advisorRepository) Delete(_ context.Context, id string) error {
	r.s.staffMu.Lock()
	defer r.s.staffMu.Unlock()
	for i, a := range r.s.advisors {
		if a.ID == id {
			r.s.advisors = append(r.s.advisors[:i], r.s.advisors[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type hodRepository struct {
	s *store
}

func (r *hodRepository) List(_ context.Context) ([]models.HODAccount, error) {
	r.s.staffMu.RLock()
	defer r.s.staffMu.RUnlock()
	return append([]models.HODAccount(nil), r.s.hods...), nil
}

func (r *hodRepository) Create(_ context.Context, a models.HODAccount) error {
	r.s.staffMu.Lock()
	defer r.s.staffMu.Unlock()
	r.s.hods = append(r.s.hods, a)
	return nil
}

func (r *hodRepository) Delete(_ context.Context, id string) error {
	r.s.staffMu.Lock()
	defer r.s.staffMu.Unlock()
	for i, a := range r.s.hods {
		if a.ID == id {
			r.s.hods = append(r.s.hods[:i], r.s.hods[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

package memory

import (
	"context"
	"strings"

	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
)

type studentRepository struct {
	s *store
}

func (r *studentRepository) List(_ context.Context) ([]models.Student, error) {
	r.s.studentMu.RLock()
	defer r.s.studentMu.RUnlock()
	return models.CloneStudents(r.s.students), nil
}

func (r *studentRepository) Get(_ context.Context, rollNo string) (models.Student, error) {
	r.s.studentMu.RLock()
	defer r.s.studentMu.RUnlock()
	for _, st := range r.s.students {
		if strings.EqualFold(st.ID, rollNo) {
			return st.Clone(), nil
		}
	}
	return models.Student{}, repositories.ErrNotFound
}

func (r *studentRepository) GetByEmail(_ context.Context, email string) (models.Student, error) {
	r.s.studentMu.RLock()
	defer r.s.studentMu.RUnlock()
	for _, st := range r.s.students {
		if st.Email != "" && strings.EqualFold(st.Email, email) {
			return st.Clone(), nil
		}
	}
	return models.Student{}, repositories.ErrNotFound
}

func (r *studentRepository) Create(_ context.Context, s models.Student) error {
	r.s.studentMu.Lock()
	defer r.s.studentMu.Unlock()
	r.s.students = append(r.s.students, s.Clone())
	return nil
}

func (r *studentRepository) Update(_ context.Context, s models.Student) error {
	r.s.studentMu.Lock()
	defer r.s.studentMu.Unlock()
	for i, st := range r.s.students {
		if st.ID == s.ID {
			r.s.students[i] = s.Clone()
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *studentRepository) Delete(_ context.Context, rollNo string) error {
	r.s.studentMu.Lock()
	defer r.s.studentMu.Unlock()
	for i, st := range r.s.students {
		if st.ID == rollNo {
			r.s.students = append(r.s.students[:i], r.s.students[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *studentRepository) DeleteAll(_ context.Context) error {
	r.s.studentMu.Lock()
	defer r.s.studentMu.Unlock()
	r.s.students = nil
	return nil
}

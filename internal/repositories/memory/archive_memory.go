package memory

import (
	"context"

	"github.com/acadhub-2025/records-service/internal/models"
)

type archiveRepository struct {
	s *store
}

func (r *archiveRepository) List(_ context.Context) ([]models.AcademicArchive, error) {
	r.s.archiveMu.RLock()
	defer r.s.archiveMu.RUnlock()
	// Archives are frozen at creation, sharing the backing structs is safe;
	// only the slice header is copied.
	return append([]models.AcademicArchive(nil), r.s.archives...), nil
}

func (r *archiveRepository) Prepend(_ context.Context, a models.AcademicArchive) error {
	r.s.archiveMu.Lock()
	defer r.s.archiveMu.Unlock()
	r.s.archives = append([]models.AcademicArchive{a}, r.s.archives...)
	return nil
}

type systemRepository struct {
	s *store
}

func (r *systemRepository) Get(_ context.Context) (models.SystemConfig, error) {
	r.s.systemMu.RLock()
	defer r.s.systemMu.RUnlock()
	return r.s.system, nil
}

func (r *systemRepository) Update(_ context.Context, cfg models.SystemConfig) error {
	r.s.systemMu.Lock()
	defer r.s.systemMu.Unlock()
	r.s.system = cfg
	return nil
}

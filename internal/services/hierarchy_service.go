package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
	"github.com/acadhub-2025/records-service/internal/validator"
)

// hierarchyService owns the department/year/section tree. Every mutation
// rebuilds the affected department and writes it back whole, so readers never
// observe a half-edited tree. Removals cascade and perform no referential
// checks: student records pointing at a removed unit simply stop matching
// during scoping.
type hierarchyService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewHierarchyService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) HierarchyService {
	return &hierarchyService{repo: repo, logger: logger, validator: validator}
}

func (s *hierarchyService) List(ctx context.Context) ([]models.Department, error) {
	return s.repo.Hierarchy().List(ctx)
}

func (s *hierarchyService) Get(ctx context.Context, id string) (models.Department, error) {
	dept, err := s.repo.Hierarchy().Get(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return models.Department{}, ErrDepartmentNotFound
		}
		return models.Department{}, fmt.Errorf("failed to get department: %w", err)
	}
	return dept, nil
}

// AddDepartment derives the id from the name and appends the mandatory HOD
// sub-module. Every department carries exactly one.
func (s *hierarchyService) AddDepartment(ctx context.Context, req AddDepartmentRequest) (models.Department, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return models.Department{}, errs
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Department{}, NewValidationError("name", "must not be empty", req.Name)
	}

	id := models.SlugifyDepartmentName(name)
	dept := models.Department{
		ID:   id,
		Name: name,
		SubModules: []models.SubModule{
			{ID: id + "-hod", Name: models.HODModuleName},
		},
	}
	if err := s.repo.Hierarchy().Upsert(ctx, dept); err != nil {
		return models.Department{}, fmt.Errorf("failed to store department: %w", err)
	}

	s.logger.Info("department added", "department_id", id, "name", name)
	return dept, nil
}

func (s *hierarchyService) AddYear(ctx context.Context, req AddYearRequest) (models.Department, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return models.Department{}, errs
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Department{}, NewValidationError("name", "must not be empty", req.Name)
	}

	dept, err := s.Get(ctx, req.DepartmentID)
	if err != nil {
		return models.Department{}, err
	}

	dept.SubModules = append(dept.SubModules, models.SubModule{
		ID:       nextYearID(dept),
		Name:     name,
		Sections: []string{},
	})
	if err := s.repo.Hierarchy().Upsert(ctx, dept); err != nil {
		return models.Department{}, fmt.Errorf("failed to store department: %w", err)
	}

	s.logger.Info("year added", "department_id", dept.ID, "year", name)
	return dept, nil
}

// AddSection appends to the year's section list. No duplicate detection is
// performed; the caller is expected to avoid duplicates.
func (s *hierarchyService) AddSection(ctx context.Context, req AddSectionRequest) (models.Department, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return models.Department{}, errs
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Department{}, NewValidationError("name", "must not be empty", req.Name)
	}

	dept, err := s.Get(ctx, req.DepartmentID)
	if err != nil {
		return models.Department{}, err
	}

	found := false
	for i, sm := range dept.SubModules {
		if sm.ID == req.YearID && !sm.IsHOD() {
			dept.SubModules[i].Sections = append(dept.SubModules[i].Sections, name)
			found = true
			break
		}
	}
	if !found {
		return models.Department{}, ErrYearNotFound
	}

	if err := s.repo.Hierarchy().Upsert(ctx, dept); err != nil {
		return models.Department{}, fmt.Errorf("failed to store department: %w", err)
	}

	s.logger.Info("section added", "department_id", dept.ID, "year_id", req.YearID, "section", name)
	return dept, nil
}

// nextYearID derives the next sub-module id from the highest suffix already
// present, so ids stay unique across removals and never get reused.
func nextYearID(dept models.Department) string {
	next := 1
	for _, sm := range dept.SubModules {
		var n int
		if _, err := fmt.Sscanf(sm.ID, dept.ID+"-y-%d", &n); err == nil && n >= next {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s-y-%d", dept.ID, next)
}

func (s *hierarchyService) RemoveDepartment(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}
	if err := s.repo.Hierarchy().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to remove department: %w", err)
	}
	s.logger.Info("department removed", "department_id", id)
	return nil
}

func (s *hierarchyService) RemoveYear(ctx context.Context, deptID, yearID string, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}
	dept, err := s.Get(ctx, deptID)
	if err != nil {
		return err
	}

	kept := dept.SubModules[:0]
	removed := false
	for _, sm := range dept.SubModules {
		if sm.ID == yearID && !sm.IsHOD() {
			removed = true
			continue
		}
		kept = append(kept, sm)
	}
	if !removed {
		return ErrYearNotFound
	}
	dept.SubModules = kept

	if err := s.repo.Hierarchy().Upsert(ctx, dept); err != nil {
		return fmt.Errorf("failed to store department: %w", err)
	}
	s.logger.Info("year removed", "department_id", deptID, "year_id", yearID)
	return nil
}

func (s *hierarchyService) RemoveSection(ctx context.Context, deptID, yearID, section string, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}
	dept, err := s.Get(ctx, deptID)
	if err != nil {
		return err
	}

	removed := false
	for i, sm := range dept.SubModules {
		if sm.ID != yearID {
			continue
		}
		kept := sm.Sections[:0]
		for _, sec := range sm.Sections {
			if sec == section && !removed {
				removed = true
				continue
			}
			kept = append(kept, sec)
		}
		dept.SubModules[i].Sections = kept
	}
	if !removed {
		return ErrSectionNotFound
	}

	if err := s.repo.Hierarchy().Upsert(ctx, dept); err != nil {
		return fmt.Errorf("failed to store department: %w", err)
	}
	s.logger.Info("section removed", "department_id", deptID, "year_id", yearID, "section", section)
	return nil
}

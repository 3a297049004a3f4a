package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
)

// FilterByCoordinate returns the students visible at a scoping coordinate.
//
// Department matching is case-insensitive and accepts either the department id
// or its display name, because enrollment stores whichever form the editing
// surface had at hand. Year and section compare case-sensitively and exactly:
// they are free text chosen by hierarchy editors and propagated verbatim into
// student records, so no normalization opportunity exists downstream. The
// asymmetry is pinned by tests; see DESIGN.md before "fixing" it.
func FilterByCoordinate(students []models.Student, depts []models.Department, coord Coordinate) []models.Student {
	var dept *models.Department
	for i := range depts {
		if depts[i].ID == coord.DepartmentID {
			dept = &depts[i]
			break
		}
	}

	matchDept := func(ref string) bool {
		if dept != nil {
			return dept.Matches(ref)
		}
		// Dangling coordinate (department removed): compare against the raw id.
		return strings.EqualFold(ref, coord.DepartmentID)
	}

	out := make([]models.Student, 0)
	for _, st := range students {
		if matchDept(st.Department) && st.Year == coord.Year && st.Section == coord.Section {
			out = append(out, st)
		}
	}
	return out
}

// FilterByDepartment is the HOD view: all years and sections of one department.
func FilterByDepartment(students []models.Student, depts []models.Department, deptID string) []models.Student {
	var dept *models.Department
	for i := range depts {
		if depts[i].ID == deptID {
			dept = &depts[i]
			break
		}
	}

	out := make([]models.Student, 0)
	for _, st := range students {
		if dept != nil {
			if dept.Matches(st.Department) {
				out = append(out, st)
			}
		} else if strings.EqualFold(st.Department, deptID) {
			out = append(out, st)
		}
	}
	return out
}

type scopeService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewScopeService(repo repositories.Repository, logger *slog.Logger) ScopeService {
	return &scopeService{repo: repo, logger: logger}
}

func (s *scopeService) VisibleStudents(ctx context.Context, scope RoleScope) ([]models.Student, error) {
	students, err := s.repo.Student().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	switch sc := scope.(type) {
	case AdminScope:
		// Administrator bypasses scoping.
		return students, nil
	case HODScope:
		depts, err := s.repo.Hierarchy().List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list departments: %w", err)
		}
		return FilterByDepartment(students, depts, sc.DepartmentID), nil
	case AdvisorScope:
		depts, err := s.repo.Hierarchy().List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list departments: %w", err)
		}
		return FilterByCoordinate(students, depts, Coordinate{DepartmentID: sc.DepartmentID, Year: sc.Year, Section: sc.Section}), nil
	case StaffScope:
		depts, err := s.repo.Hierarchy().List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list departments: %w", err)
		}
		return FilterByCoordinate(students, depts, Coordinate{DepartmentID: sc.DepartmentID, Year: sc.Year, Section: sc.Section}), nil
	case StudentScope:
		// A student sees only their own record, resolved by the credential
		// flow; the scope alone grants nothing.
		return []models.Student{}, nil
	default:
		return []models.Student{}, nil
	}
}

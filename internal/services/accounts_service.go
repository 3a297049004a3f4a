package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
	"github.com/acadhub-2025/records-service/internal/validator"
)

// accountService is the staff-side identity registry: HOD, faculty advisor
// and subject-staff accounts. Hierarchy references are validated at creation;
// later hierarchy removals may leave accounts dangling, which is tolerated —
// they just stop matching at login.
type accountService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAccountService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) AccountService {
	return &accountService{repo: repo, logger: logger, validator: validator}
}

func (s *accountService) CreateHOD(ctx context.Context, req CreateHODRequest) (models.HODAccount, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return models.HODAccount{}, errs
	}
	if _, err := s.repo.Hierarchy().Get(ctx, req.DepartmentID); err != nil {
		if repositories.IsNotFoundError(err) {
			return models.HODAccount{}, ErrDepartmentNotFound
		}
		return models.HODAccount{}, fmt.Errorf("failed to resolve department: %w", err)
	}

	account := models.HODAccount{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		DepartmentID: req.DepartmentID,
	}
	if err := s.repo.HOD().Create(ctx, account); err != nil {
		return models.HODAccount{}, fmt.Errorf("failed to create hod account: %w", err)
	}
	s.logger.Info("hod account created", "department_id", req.DepartmentID)
	return account, nil
}

func (s *accountService) CreateAdvisor(ctx context.Context, req CreateAdvisorRequest) (models.FacultyAdvisorAccount, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return models.FacultyAdvisorAccount{}, errs
	}
	if err := s.validateScope(ctx, req.DepartmentID, req.Year, req.Section); err != nil {
		return models.FacultyAdvisorAccount{}, err
	}

	account := models.FacultyAdvisorAccount{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		DepartmentID: req.DepartmentID,
		Year:         req.Year,
		Section:      req.Section,
	}
	if err := s.repo.Advisor().Create(ctx, account); err != nil {
		return models.FacultyAdvisorAccount{}, fmt.Errorf("failed to create advisor account: %w", err)
	}
	s.logger.Info("advisor account created", "department_id", req.DepartmentID, "year", req.Year, "section", req.Section)
	return account, nil
}

func (s *accountService) CreateStaffAssignment(ctx context.Context, req CreateStaffAssignmentRequest) (models.StaffAssignment, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return models.StaffAssignment{}, errs
	}
	if err := s.validateScope(ctx, req.DepartmentID, req.Year, req.Section); err != nil {
		return models.StaffAssignment{}, err
	}

	assignment := models.StaffAssignment{
		ID:           uuid.NewString(),
		DepartmentID: req.DepartmentID,
		Year:         req.Year,
		Section:      req.Section,
		StaffName:    req.StaffName,
		Email:        req.Email,
		Password:     req.Password,
		Subject:      req.Subject,
		SubjectCode:  req.SubjectCode,
		Semester:     req.Semester,
	}
	if err := s.repo.StaffAssignment().Create(ctx, assignment); err != nil {
		return models.StaffAssignment{}, fmt.Errorf("failed to create staff assignment: %w", err)
	}
	s.logger.Info("staff assignment created", "department_id", req.DepartmentID, "subject", req.Subject, "section", req.Section)
	return assignment, nil
}

func (s *accountService) ListHODs(ctx context.Context) ([]models.HODAccount, error) {
	return s.repo.HOD().List(ctx)
}

func (s *accountService) ListAdvisors(ctx context.Context) ([]models.FacultyAdvisorAccount, error) {
	return s.repo.Advisor().List(ctx)
}

func (s *accountService) ListStaffAssignments(ctx context.Context) ([]models.StaffAssignment, error) {
	return s.repo.StaffAssignment().List(ctx)
}

func (s *accountService) RemoveHOD(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}
	if err := s.repo.HOD().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to remove hod account: %w", err)
	}
	s.logger.Info("hod account removed", "account_id", id)
	return nil
}

func (s *accountService) RemoveAdvisor(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}
	if err := s.repo.Advisor().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to remove advisor account: %w", err)
	}
	s.logger.Info("advisor account removed", "account_id", id)
	return nil
}

func (s *accountService) RemoveStaffAssignment(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}
	if err := s.repo.StaffAssignment().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to remove staff assignment: %w", err)
	}
	s.logger.Info("staff assignment removed", "assignment_id", id)
	return nil
}

// validateScope checks that the (department, year, section) triple exists in
// the hierarchy at creation time.
func (s *accountService) validateScope(ctx context.Context, deptID, year, section string) error {
	dept, err := s.repo.Hierarchy().Get(ctx, deptID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to resolve department: %w", err)
	}

	for _, sm := range dept.Years() {
		if sm.Name != year {
			continue
		}
		for _, sec := range sm.Sections {
			if sec == section {
				return nil
			}
		}
		return ErrSectionNotFound
	}
	return ErrYearNotFound
}

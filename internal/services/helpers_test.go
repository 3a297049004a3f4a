package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/acadhub-2025/records-service/internal/events"
	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
	"github.com/acadhub-2025/records-service/internal/repositories/memory"
	"github.com/acadhub-2025/records-service/internal/validator"
)

type testEnv struct {
	repo      repositories.Repository
	manager   ServiceManager
	publisher *events.MockEventPublisher
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testValidator() *validator.Validator {
	return validator.New()
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := testLogger()
	repo := memory.NewRepository(models.SystemConfig{
		CollegeName:     "Test Institute",
		CurrentYear:     "2025-2026",
		CurrentSemester: "1st",
	})
	publisher := events.NewMockEventPublisher(logger)
	manager := NewDefaultServiceManager(repo, logger, validator.New(), publisher, AdminCredentials{
		Email:    "admin@gmail.com",
		Password: "12345",
	})
	return &testEnv{repo: repo, manager: manager, publisher: publisher}
}

// seedDepartment creates a department with one year and one section.
func (e *testEnv) seedDepartment(t *testing.T, name, year, section string) models.Department {
	t.Helper()
	ctx := context.Background()
	svc := e.manager.Hierarchy()

	dept, err := svc.AddDepartment(ctx, AddDepartmentRequest{Name: name})
	if err != nil {
		t.Fatalf("AddDepartment(%q) failed: %v", name, err)
	}
	dept, err = svc.AddYear(ctx, AddYearRequest{DepartmentID: dept.ID, Name: year})
	if err != nil {
		t.Fatalf("AddYear(%q) failed: %v", year, err)
	}
	yearID := dept.Years()[len(dept.Years())-1].ID
	dept, err = svc.AddSection(ctx, AddSectionRequest{DepartmentID: dept.ID, YearID: yearID, Name: section})
	if err != nil {
		t.Fatalf("AddSection(%q) failed: %v", section, err)
	}
	return dept
}

func (e *testEnv) seedStudent(t *testing.T, st models.Student) {
	t.Helper()
	if err := e.repo.Student().Create(context.Background(), st); err != nil {
		t.Fatalf("seed student %s: %v", st.ID, err)
	}
}

func resultWithGPA(gpa string) *models.SemesterResult {
	return &models.SemesterResult{
		Subjects: []models.SubjectResult{{Subject: "Mathematics I", Grade: "A"}},
		GPA:      gpa,
		CGPA:     gpa,
	}
}

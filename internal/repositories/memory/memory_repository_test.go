package memory

import (
	"context"
	"testing"

	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
)

func newRepo() repositories.Repository {
	return NewRepository(models.SystemConfig{
		CollegeName:     "Test Institute",
		CurrentYear:     "2025-2026",
		CurrentSemester: "1st",
	})
}

func TestStudentRepository(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	st := models.Student{ID: "21CS101", Name: "Anitha R", Email: "anitha@example.com"}
	if err := repo.Student().Create(ctx, st); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Roll lookup is case-insensitive.
	got, err := repo.Student().Get(ctx, "21cs101")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Anitha R" {
		t.Errorf("Name = %q", got.Name)
	}

	got, err = repo.Student().GetByEmail(ctx, "ANITHA@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.ID != "21CS101" {
		t.Errorf("ID = %q", got.ID)
	}

	if _, err := repo.Student().Get(ctx, "NOPE"); !repositories.IsNotFoundError(err) {
		t.Errorf("missing roll: err = %v, want ErrNotFound", err)
	}

	// An empty search email must not match students without credentials.
	if err := repo.Student().Create(ctx, models.Student{ID: "21CS102"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := repo.Student().GetByEmail(ctx, ""); !repositories.IsNotFoundError(err) {
		t.Errorf("empty email: err = %v, want ErrNotFound", err)
	}

	if err := repo.Student().DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	all, err := repo.Student().List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("students after DeleteAll = %d, want 0", len(all))
	}
}

func TestStudentRepositoryReturnsCopies(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	if err := repo.Student().Create(ctx, models.Student{
		ID:        "21CS101",
		Documents: map[string]string{"aadhar": "ref-1"},
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.Student().Get(ctx, "21CS101")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	got.Documents["aadhar"] = "tampered"

	again, err := repo.Student().Get(ctx, "21CS101")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if again.Documents["aadhar"] != "ref-1" {
		t.Errorf("stored record mutated through a read copy: %q", again.Documents["aadhar"])
	}
}

func TestHierarchyRepository(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	dept := models.Department{ID: "cse", Name: "Computer Science"}
	if err := repo.Hierarchy().Upsert(ctx, dept); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	// Upsert with the same id replaces, never duplicates.
	dept.Name = "Computer Science Engineering"
	if err := repo.Hierarchy().Upsert(ctx, dept); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}
	all, err := repo.Hierarchy().List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 || all[0].Name != "Computer Science Engineering" {
		t.Errorf("departments = %+v", all)
	}

	if err := repo.Hierarchy().Delete(ctx, "cse"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Hierarchy().Delete(ctx, "cse"); !repositories.IsNotFoundError(err) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestTimetableRepository(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	entry := models.TimeTableEntry{
		ID:           models.TimetableID("cse", "I Year", "Section A"),
		DepartmentID: "cse", Year: "I Year", Section: "Section A",
		Schedule: map[string][]string{"Monday": {"Maths"}},
	}
	if err := repo.Timetable().Upsert(ctx, entry); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	got, err := repo.Timetable().GetByTriple(ctx, "cse", "I Year", "Section A")
	if err != nil {
		t.Fatalf("GetByTriple failed: %v", err)
	}
	if got.Schedule["Monday"][0] != "Maths" {
		t.Errorf("schedule = %v", got.Schedule)
	}

	if _, err := repo.Timetable().GetByTriple(ctx, "cse", "II Year", "Section A"); !repositories.IsNotFoundError(err) {
		t.Errorf("missing triple: err = %v, want ErrNotFound", err)
	}
}

func TestArchivePrependOrdering(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	if err := repo.Archive().Prepend(ctx, models.AcademicArchive{ID: "first", Year: "2024-2025"}); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}
	if err := repo.Archive().Prepend(ctx, models.AcademicArchive{ID: "second", Year: "2025-2026"}); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}

	archives, err := repo.Archive().List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(archives) != 2 || archives[0].ID != "second" || archives[1].ID != "first" {
		t.Errorf("order = %+v, want most-recent-first", archives)
	}
}

func TestTrackerClearAll(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()
	tracker := repo.Tracker()

	if err := tracker.SetAssignmentProgress(ctx, "Physics", "21CS101", models.AssignmentProgress{A1: true}); err != nil {
		t.Fatalf("SetAssignmentProgress failed: %v", err)
	}
	if err := tracker.MarkAttendance(ctx, "2026-08-31", "21CS101", models.AttendancePresent); err != nil {
		t.Fatalf("MarkAttendance failed: %v", err)
	}
	if err := tracker.AppendExamResult(ctx, models.ExamResult{StudentID: "21CS101", SubjectCode: "PH101", Marks: 72}); err != nil {
		t.Fatalf("AppendExamResult failed: %v", err)
	}

	if err := tracker.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}

	p, err := tracker.GetAssignmentProgress(ctx, "Physics", "21CS101")
	if err != nil {
		t.Fatalf("GetAssignmentProgress failed: %v", err)
	}
	if p.A1 {
		t.Error("assignment progress survived ClearAll")
	}
	day, err := tracker.AttendanceForDate(ctx, "2026-08-31")
	if err != nil {
		t.Fatalf("AttendanceForDate failed: %v", err)
	}
	if len(day) != 0 {
		t.Errorf("attendance survived ClearAll: %v", day)
	}
	results, err := tracker.ListExamResults(ctx)
	if err != nil {
		t.Fatalf("ListExamResults failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("exam results survived ClearAll: %v", results)
	}
}

func TestSystemRepository(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	cfg, err := repo.System().Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if cfg.CurrentYear != "2025-2026" {
		t.Errorf("seeded year = %q", cfg.CurrentYear)
	}

	cfg.CurrentYear = "2026-2027"
	cfg.CurrentSemester = "2nd"
	if err := repo.System().Update(ctx, cfg); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err := repo.System().Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.CurrentYear != "2026-2027" || got.CurrentSemester != "2nd" {
		t.Errorf("updated config = %+v", got)
	}
}

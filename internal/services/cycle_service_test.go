package services

import (
	"context"
	"errors"
	"testing"

	"github.com/acadhub-2025/records-service/internal/events"
	"github.com/acadhub-2025/records-service/internal/models"
)

func advanceRequest() AdvanceCycleRequest {
	return AdvanceCycleRequest{NewYear: "2026-2027", NewSemester: "2nd", Confirm: true}
}

func TestAdvanceGates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cycle := env.manager.Cycle()

	if _, err := cycle.Advance(ctx, models.RoleHOD, advanceRequest()); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("non-admin actor: err = %v, want ErrAdminOnly", err)
	}

	req := advanceRequest()
	req.Confirm = false
	if _, err := cycle.Advance(ctx, models.RoleAdmin, req); !errors.Is(err, ErrConfirmationRequired) {
		t.Errorf("unconfirmed: err = %v, want ErrConfirmationRequired", err)
	}

	bad := advanceRequest()
	bad.NewSemester = "3rd"
	if _, err := cycle.Advance(ctx, models.RoleAdmin, bad); err == nil {
		t.Error("semester label outside 1st/2nd accepted")
	}

	// None of the rejected attempts may have archived anything.
	archives, err := cycle.ListArchives(ctx)
	if err != nil {
		t.Fatalf("ListArchives failed: %v", err)
	}
	if len(archives) != 0 {
		t.Errorf("archives after rejected attempts = %d, want 0", len(archives))
	}
}

func TestAdvance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedDepartment(t, "CSE", "I Year", "Section A")
	roster := env.manager.Roster()
	cycle := env.manager.Cycle()

	if _, err := roster.Enroll(ctx, enrollRequest("21CS101")); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if err := roster.SetAssignmentProgress(ctx, "Physics", "21CS101", models.AssignmentProgress{A1: true}); err != nil {
		t.Fatalf("SetAssignmentProgress failed: %v", err)
	}
	if err := roster.RecordExamResult(ctx, RecordExamResultRequest{
		StudentID: "21CS101", SubjectCode: "PH101", Marks: 72, Grade: "A",
	}); err != nil {
		t.Fatalf("RecordExamResult failed: %v", err)
	}

	archive, err := cycle.Advance(ctx, models.RoleAdmin, advanceRequest())
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	// The archive captures the outgoing term, not the incoming one.
	if archive.Year != "2025-2026" || archive.Semester != "1st" {
		t.Errorf("archived term = %s/%s, want 2025-2026/1st", archive.Year, archive.Semester)
	}
	if len(archive.Data.Students) != 1 || archive.Data.Students[0].ID != "21CS101" {
		t.Fatalf("archived students = %+v", archive.Data.Students)
	}

	// Live roster and trackers are wiped.
	students, err := roster.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(students) != 0 {
		t.Errorf("live roster = %d students after advance, want 0", len(students))
	}
	p, err := roster.AssignmentProgress(ctx, "Physics", "21CS101")
	if err != nil {
		t.Fatalf("AssignmentProgress failed: %v", err)
	}
	if p.A1 || p.A2 {
		t.Errorf("tracker survived the advance: %+v", p)
	}
	results, err := roster.ExamResults(ctx)
	if err != nil {
		t.Fatalf("ExamResults failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("exam results survived the advance: %+v", results)
	}

	// Hierarchy survives.
	if _, err := env.manager.Hierarchy().Get(ctx, "cse"); err != nil {
		t.Errorf("hierarchy wiped by advance: %v", err)
	}

	// Config rolls to the new term.
	cfg, err := cycle.Current(ctx)
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if cfg.CurrentYear != "2026-2027" || cfg.CurrentSemester != "2nd" {
		t.Errorf("current term = %s/%s, want 2026-2027/2nd", cfg.CurrentYear, cfg.CurrentSemester)
	}

	found := false
	for _, ev := range env.publisher.GetPublishedEvents() {
		if ev.Type == events.TypeCycleAdvanced {
			found = true
		}
	}
	if !found {
		t.Errorf("no %s event published", events.TypeCycleAdvanced)
	}
}

func TestArchiveIsIndependentOfLaterMutation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedDepartment(t, "CSE", "I Year", "Section A")

	st := models.Student{
		ID: "21CS101", Name: "Anitha R", Department: "CSE", Year: "I Year", Section: "Section A",
		Documents:              map[string]string{"aadhar": "doc-ref-1"},
		SubjectMarks:           map[string]models.SubjectMarks{"Physics": {Semester1: models.CATScores{CAT1: 72}}},
		SemesterResultDetailed: resultWithGPA("8.0"),
	}
	env.seedStudent(t, st)

	archive, err := env.manager.Cycle().Advance(ctx, models.RoleAdmin, advanceRequest())
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	// Mutate the source structures the snapshot was taken from.
	st.Documents["aadhar"] = "tampered"
	st.SubjectMarks["Physics"] = models.SubjectMarks{}
	st.SemesterResultDetailed.GPA = "0"
	st.SemesterResultDetailed.Subjects[0].Grade = "U"

	got := archive.Data.Students[0]
	if got.Documents["aadhar"] != "doc-ref-1" {
		t.Errorf("archived document mutated: %q", got.Documents["aadhar"])
	}
	if got.SubjectMarks["Physics"].Semester1.CAT1 != 72 {
		t.Errorf("archived marks mutated: %+v", got.SubjectMarks["Physics"])
	}
	if got.SemesterResultDetailed.GPA != "8.0" || got.SemesterResultDetailed.Subjects[0].Grade != "A" {
		t.Errorf("archived result mutated: %+v", got.SemesterResultDetailed)
	}
}

func TestArchivesOrderedMostRecentFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cycle := env.manager.Cycle()

	if _, err := cycle.Advance(ctx, models.RoleAdmin, AdvanceCycleRequest{NewYear: "2026-2027", NewSemester: "1st", Confirm: true}); err != nil {
		t.Fatalf("first Advance failed: %v", err)
	}
	if _, err := cycle.Advance(ctx, models.RoleAdmin, AdvanceCycleRequest{NewYear: "2027-2028", NewSemester: "1st", Confirm: true}); err != nil {
		t.Fatalf("second Advance failed: %v", err)
	}

	archives, err := cycle.ListArchives(ctx)
	if err != nil {
		t.Fatalf("ListArchives failed: %v", err)
	}
	if len(archives) != 2 {
		t.Fatalf("archives = %d, want 2", len(archives))
	}
	if archives[0].Year != "2026-2027" || archives[1].Year != "2025-2026" {
		t.Errorf("order = %s, %s; want 2026-2027, 2025-2026", archives[0].Year, archives[1].Year)
	}
}

func TestArchivedSectionCount(t *testing.T) {
	env := newTestEnv(t)
	archive := models.AcademicArchive{
		Data: models.ArchivedData{
			Students: []models.Student{
				{ID: "101", Department: "CSE", Year: "I Year", Section: "Section A"},
				{ID: "102", Department: "cse", Year: "I Year", Section: "Section A"},
				{ID: "103", Department: "CSE", Year: "II Year", Section: "Section A"},
			},
			Departments: []models.Department{{ID: "cse", Name: "Computer Science"}},
		},
	}
	coord := Coordinate{DepartmentID: "cse", Year: "I Year", Section: "Section A"}
	if got := env.manager.Cycle().ArchivedSectionCount(archive, coord); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/acadhub-2025/records-service/internal/events"
	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
	"github.com/acadhub-2025/records-service/internal/validator"
)

// rosterService owns student records: enrollment, profile and document
// updates, CAT marks, published semester results, daily attendance and the
// assignment tracker.
type rosterService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewRosterService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) RosterService {
	return &rosterService{repo: repo, logger: logger, validator: validator, publisher: publisher}
}

func (s *rosterService) List(ctx context.Context) ([]models.Student, error) {
	return s.repo.Student().List(ctx)
}

func (s *rosterService) Get(ctx context.Context, rollNo string) (models.Student, error) {
	st, err := s.repo.Student().Get(ctx, rollNo)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return models.Student{}, ErrStudentNotFound
		}
		return models.Student{}, fmt.Errorf("failed to get student: %w", err)
	}
	return st, nil
}

// Enroll creates a student with credential fields absent. New enrollments
// start at grade O with full attendance; the department reference is stored
// uppercased, scoping tolerates either form.
func (s *rosterService) Enroll(ctx context.Context, req EnrollStudentRequest) (models.Student, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return models.Student{}, errs
	}

	if _, err := s.repo.Student().Get(ctx, req.ID); err == nil {
		return models.Student{}, ErrRollNumberExists
	}

	st := models.Student{
		ID:                   req.ID,
		Name:                 req.Name,
		DOB:                  req.DOB,
		Department:           strings.ToUpper(req.DepartmentID),
		Year:                 req.Year,
		Section:              req.Section,
		Grade:                "O",
		AttendancePercentage: 100,
	}
	if err := s.repo.Student().Create(ctx, st); err != nil {
		return models.Student{}, fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info("student enrolled", "roll_no", st.ID, "department", st.Department, "year", st.Year, "section", st.Section)
	s.publish(ctx, events.TypeStudentEnrolled, map[string]interface{}{"roll_no": st.ID})
	return st, nil
}

func (s *rosterService) Remove(ctx context.Context, rollNo string, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}
	if err := s.repo.Student().Delete(ctx, rollNo); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrStudentNotFound
		}
		return fmt.Errorf("failed to remove student: %w", err)
	}
	s.logger.Info("student removed", "roll_no", rollNo)
	s.publish(ctx, events.TypeStudentRemoved, map[string]interface{}{"roll_no": rollNo})
	return nil
}

func (s *rosterService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (models.Student, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return models.Student{}, errs
	}

	st, err := s.Get(ctx, req.StudentID)
	if err != nil {
		return models.Student{}, err
	}

	st.BloodGroup = req.BloodGroup
	st.HomeAddress = req.HomeAddress
	st.StudentPhone = req.StudentPhone
	st.ParentPhone = req.ParentPhone
	if req.Documents != nil {
		if st.Documents == nil {
			st.Documents = make(map[string]string, len(req.Documents))
		}
		for kind, ref := range req.Documents {
			st.Documents[kind] = ref
		}
	}

	if err := s.repo.Student().Update(ctx, st); err != nil {
		return models.Student{}, fmt.Errorf("failed to update student: %w", err)
	}
	return st, nil
}

func (s *rosterService) RecordMarks(ctx context.Context, req RecordMarksRequest) error {
	if errs := s.validator.Validate(req); errs != nil {
		return errs
	}

	st, err := s.Get(ctx, req.StudentID)
	if err != nil {
		return err
	}

	if st.SubjectMarks == nil {
		st.SubjectMarks = make(map[string]models.SubjectMarks)
	}
	marks := st.SubjectMarks[req.Subject]
	scores := models.CATScores{CAT1: req.CAT1, CAT2: req.CAT2}
	if req.Semester == 1 {
		marks.Semester1 = scores
	} else {
		marks.Semester2 = scores
	}
	st.SubjectMarks[req.Subject] = marks

	if err := s.repo.Student().Update(ctx, st); err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	s.logger.Info("marks recorded", "roll_no", st.ID, "subject", req.Subject, "semester", req.Semester)
	return nil
}

func (s *rosterService) EnterResult(ctx context.Context, req EnterResultRequest) error {
	if errs := s.validator.Validate(req); errs != nil {
		return errs
	}

	st, err := s.Get(ctx, req.StudentID)
	if err != nil {
		return err
	}

	st.SemesterResultDetailed = &models.SemesterResult{
		Subjects: append([]models.SubjectResult(nil), req.Subjects...),
		GPA:      req.GPA,
		CGPA:     req.CGPA,
	}
	if err := s.repo.Student().Update(ctx, st); err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	s.logger.Info("semester result entered", "roll_no", st.ID, "gpa", req.GPA)
	return nil
}

// RecordExamResult appends one exam outcome to the tracker. Transactional
// state: the cycle controller wipes it on advance.
func (s *rosterService) RecordExamResult(ctx context.Context, req RecordExamResultRequest) error {
	if errs := s.validator.Validate(req); errs != nil {
		return errs
	}
	if _, err := s.Get(ctx, req.StudentID); err != nil {
		return err
	}
	result := models.ExamResult{
		StudentID:   req.StudentID,
		SubjectCode: req.SubjectCode,
		Marks:       req.Marks,
		Grade:       req.Grade,
	}
	if err := s.repo.Tracker().AppendExamResult(ctx, result); err != nil {
		return fmt.Errorf("failed to record exam result: %w", err)
	}
	s.logger.Info("exam result recorded", "roll_no", req.StudentID, "subject_code", req.SubjectCode)
	return nil
}

func (s *rosterService) ExamResults(ctx context.Context) ([]models.ExamResult, error) {
	return s.repo.Tracker().ListExamResults(ctx)
}

func (s *rosterService) MarkDailyAttendance(ctx context.Context, req MarkAttendanceRequest) error {
	if errs := s.validator.Validate(req); errs != nil {
		return errs
	}
	if _, err := s.Get(ctx, req.StudentID); err != nil {
		return err
	}
	if err := s.repo.Tracker().MarkAttendance(ctx, req.Date, req.StudentID, req.Status); err != nil {
		return fmt.Errorf("failed to mark attendance: %w", err)
	}
	return nil
}

// DayAttendanceStats summarizes one day's markings for a section. OD counts
// as present.
func (s *rosterService) DayAttendanceStats(ctx context.Context, coord Coordinate, date string) (DayAttendanceStats, error) {
	depts, err := s.repo.Hierarchy().List(ctx)
	if err != nil {
		return DayAttendanceStats{}, fmt.Errorf("failed to list departments: %w", err)
	}
	students, err := s.repo.Student().List(ctx)
	if err != nil {
		return DayAttendanceStats{}, fmt.Errorf("failed to list students: %w", err)
	}
	scoped := FilterByCoordinate(students, depts, coord)

	day, err := s.repo.Tracker().AttendanceForDate(ctx, date)
	if err != nil {
		return DayAttendanceStats{}, fmt.Errorf("failed to read attendance log: %w", err)
	}

	var present, absent int
	for _, st := range scoped {
		switch day[st.ID] {
		case models.AttendancePresent, models.AttendanceOnDuty:
			present++
		case models.AttendanceAbsent:
			absent++
		}
	}

	total := len(scoped)
	divisor := total
	if divisor == 0 {
		divisor = 1
	}
	return DayAttendanceStats{
		PresentPerc: int(math.Round(float64(present) / float64(divisor) * 100)),
		AbsentPerc:  int(math.Round(float64(absent) / float64(divisor) * 100)),
		NotMarked:   total - present - absent,
	}, nil
}

func (s *rosterService) SetAttendancePercentage(ctx context.Context, rollNo string, pct float64) error {
	if pct < 0 || pct > 100 {
		return NewValidationError("attendance_percentage", "must be between 0 and 100", pct)
	}
	st, err := s.Get(ctx, rollNo)
	if err != nil {
		return err
	}
	st.AttendancePercentage = pct
	if err := s.repo.Student().Update(ctx, st); err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return nil
}

func (s *rosterService) SetAssignmentProgress(ctx context.Context, subject, rollNo string, p models.AssignmentProgress) error {
	if _, err := s.Get(ctx, rollNo); err != nil {
		return err
	}
	return s.repo.Tracker().SetAssignmentProgress(ctx, subject, rollNo, p)
}

func (s *rosterService) AssignmentProgress(ctx context.Context, subject, rollNo string) (models.AssignmentProgress, error) {
	return s.repo.Tracker().GetAssignmentProgress(ctx, subject, rollNo)
}

func (s *rosterService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewEvent(eventType, data)); err != nil {
		s.logger.Warn("event publish failed", "event_type", eventType, "error", err)
	}
}

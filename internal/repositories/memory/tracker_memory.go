package memory

import (
	"context"

	"github.com/acadhub-2025/records-service/internal/models"
)

type trackerRepository struct {
	s *store
}

func (r *trackerRepository) SetAssignmentProgress(_ context.Context, subject, studentID string, p models.AssignmentProgress) error {
	r.s.trackerMu.Lock()
	defer r.s.trackerMu.Unlock()
	bySubject, ok := r.s.assignments[subject]
	if !ok {
		bySubject = make(map[string]models.AssignmentProgress)
		r.s.assignments[subject] = bySubject
	}
	bySubject[studentID] = p
	return nil
}

func (r *trackerRepository) GetAssignmentProgress(_ context.Context, subject, studentID string) (models.AssignmentProgress, error) {
	r.s.trackerMu.RLock()
	defer r.s.trackerMu.RUnlock()
	return r.s.assignments[subject][studentID], nil
}

func (r *trackerRepository) AppendExamResult(_ context.Context, res models.ExamResult) error {
	r.s.trackerMu.Lock()
	defer r.s.trackerMu.Unlock()
	r.s.examResults = append(r.s.examResults, res)
	return nil
}

func (r *trackerRepository) ListExamResults(_ context.Context) ([]models.ExamResult, error) {
	r.s.trackerMu.RLock()
	defer r.s.trackerMu.RUnlock()
	return append([]models.ExamResult(nil), r.s.examResults...), nil
}

func (r *trackerRepository) MarkAttendance(_ context.Context, date, studentID string, status models.AttendanceStatus) error {
	r.s.trackerMu.Lock()
	defer r.s.trackerMu.Unlock()
	day, ok := r.s.attendance[date]
	if !ok {
		day = make(map[string]models.AttendanceStatus)
		r.s.attendance[date] = day
	}
	day[studentID] = status
	return nil
}

func (r *trackerRepository) AttendanceForDate(_ context.Context, date string) (map[string]models.AttendanceStatus, error) {
	r.s.trackerMu.RLock()
	defer r.s.trackerMu.RUnlock()
	out := make(map[string]models.AttendanceStatus, len(r.s.attendance[date]))
	for id, st := range r.s.attendance[date] {
		out[id] = st
	}
	return out, nil
}

func (r *trackerRepository) ClearAll(_ context.Context) error {
	r.s.trackerMu.Lock()
	defer r.s.trackerMu.Unlock()
	r.s.assignments = make(map[string]map[string]models.AssignmentProgress)
	r.s.examResults = nil
	r.s.attendance = make(models.DailyAttendanceLog)
	return nil
}

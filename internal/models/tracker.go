package models

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceOnDuty  AttendanceStatus = "OD"
)

// DailyAttendanceLog maps date (YYYY-MM-DD) -> student id -> status for one day.
type DailyAttendanceLog map[string]map[string]AttendanceStatus

// AssignmentProgress tracks the two assignment completions of one student in
// one subject. Cleared wholesale on cycle advance.
type AssignmentProgress struct {
	A1 bool `json:"a1"`
	A2 bool `json:"a2"`
}

// ExamResult is one recorded exam outcome, keyed by student. Transactional
// state: wiped on cycle advance.
type ExamResult struct {
	StudentID   string  `json:"student_id"`
	SubjectCode string  `json:"subject_code"`
	Marks       float64 `json:"marks"`
	Grade       string  `json:"grade"`
}

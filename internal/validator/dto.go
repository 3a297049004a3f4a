package validator

import "github.com/acadhub-2025/records-service/internal/models"

// ===== HIERARCHY REQUESTS =====

type AddDepartmentRequest struct {
	Name string `json:"name" validate:"required"`
}

type AddYearRequest struct {
	DepartmentID string `json:"department_id" validate:"required"`
	Name         string `json:"name" validate:"required"`
}

type AddSectionRequest struct {
	DepartmentID string `json:"department_id" validate:"required"`
	YearID       string `json:"year_id" validate:"required"`
	Name         string `json:"name" validate:"required"`
}

// ===== ROSTER REQUESTS =====

type EnrollStudentRequest struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	DOB          string `json:"dob" validate:"required,dob_date"`
	DepartmentID string `json:"department_id" validate:"required"`
	Year         string `json:"year" validate:"required"`
	Section      string `json:"section" validate:"required"`
}

type UpdateProfileRequest struct {
	StudentID    string            `json:"student_id" validate:"required"`
	BloodGroup   string            `json:"blood_group"`
	HomeAddress  string            `json:"home_address"`
	StudentPhone string            `json:"student_phone"`
	ParentPhone  string            `json:"parent_phone"`
	Documents    map[string]string `json:"documents"`
}

type RecordMarksRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	Subject   string  `json:"subject" validate:"required"`
	Semester  int     `json:"semester" validate:"required,min=1,max=2"`
	CAT1      float64 `json:"cat1" validate:"mark_range"`
	CAT2      float64 `json:"cat2" validate:"mark_range"`
}

type EnterResultRequest struct {
	StudentID string                 `json:"student_id" validate:"required"`
	Subjects  []models.SubjectResult `json:"subjects" validate:"required,min=1"`
	GPA       string                 `json:"gpa" validate:"required"`
	CGPA      string                 `json:"cgpa"`
}

type RecordExamResultRequest struct {
	StudentID   string  `json:"student_id" validate:"required"`
	SubjectCode string  `json:"subject_code" validate:"required"`
	Marks       float64 `json:"marks" validate:"mark_range"`
	Grade       string  `json:"grade" validate:"required"`
}

type MarkAttendanceRequest struct {
	Date      string                  `json:"date" validate:"required,dob_date"`
	StudentID string                  `json:"student_id" validate:"required"`
	Status    models.AttendanceStatus `json:"status" validate:"required,oneof=Present Absent OD"`
}

// ===== ACCOUNT REQUESTS =====

type CreateHODRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	DepartmentID string `json:"department_id" validate:"required"`
}

type CreateAdvisorRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	DepartmentID string `json:"department_id" validate:"required"`
	Year         string `json:"year" validate:"required"`
	Section      string `json:"section" validate:"required"`
}

type CreateStaffAssignmentRequest struct {
	StaffName    string `json:"staff_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	DepartmentID string `json:"department_id" validate:"required"`
	Year         string `json:"year" validate:"required"`
	Section      string `json:"section" validate:"required"`
	Subject      string `json:"subject" validate:"required"`
	SubjectCode  string `json:"subject_code" validate:"required"`
	Semester     string `json:"semester" validate:"required,semester_label"`
}

// ===== TIMETABLE REQUESTS =====

type PublishTimetableRequest struct {
	DepartmentID string              `json:"department_id" validate:"required"`
	Year         string              `json:"year" validate:"required"`
	Section      string              `json:"section" validate:"required"`
	Schedule     map[string][]string `json:"schedule" validate:"required"`
}

// ===== CYCLE REQUESTS =====

type AdvanceCycleRequest struct {
	NewYear     string `json:"new_year" validate:"required"`
	NewSemester string `json:"new_semester" validate:"required,semester_label"`
	// Destructive: the operator must confirm before anything is archived or wiped.
	Confirm bool `json:"confirm"`
}

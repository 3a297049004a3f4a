package models

type Role string

const (
	RoleStudent        Role = "student"
	RoleStaff          Role = "staff"
	RoleFacultyAdvisor Role = "faculty_advisor"
	RoleHOD            Role = "hod"
	RoleAdmin          Role = "admin"
)

// StaffAssignment binds one staff member to one subject taught to one section.
// A staff member may hold several assignments, one per subject/section.
type StaffAssignment struct {
	ID           string `json:"id"`
	DepartmentID string `json:"department_id"`
	Year         string `json:"year"`
	Section      string `json:"section"`
	StaffName    string `json:"staff_name"`
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
	Subject      string `json:"subject"`
	SubjectCode  string `json:"subject_code"`
	Semester     string `json:"semester"`
}

type HODAccount struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
	DepartmentID string `json:"department_id"`
}

type FacultyAdvisorAccount struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
	DepartmentID string `json:"department_id"`
	Year         string `json:"year"`
	Section      string `json:"section"`
}

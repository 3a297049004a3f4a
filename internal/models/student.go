package models

// Student is one roster record. ID is the roll number, globally unique and
// immutable once enrolled. Email and Password stay empty until the first-login
// bootstrap completes; from then on logins use the password path.
type Student struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DOB        string `json:"dob"`
	Department string `json:"department"` // dept id or display name, matched case-insensitively
	Year       string `json:"year"`
	Section    string `json:"section"`

	Grade                string  `json:"grade"`
	AttendancePercentage float64 `json:"attendance_percentage"`

	// Profile
	BloodGroup   string `json:"blood_group,omitempty"`
	HomeAddress  string `json:"home_address,omitempty"`
	StudentPhone string `json:"student_phone,omitempty"`
	ParentPhone  string `json:"parent_phone,omitempty"`

	// Credentials (absent until first-login bootstrap)
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`

	// Documents maps a document kind (aadhar, community, ...) to an opaque blob reference.
	Documents map[string]string `json:"documents,omitempty"`

	// SubjectMarks maps subject name to its CAT scores for up to two semesters.
	SubjectMarks map[string]SubjectMarks `json:"subject_marks,omitempty"`

	SemesterResultDetailed *SemesterResult `json:"semester_result_detailed,omitempty"`
}

type SubjectMarks struct {
	Semester1 CATScores `json:"semester1"`
	Semester2 CATScores `json:"semester2"`
}

type CATScores struct {
	CAT1 float64 `json:"cat1"`
	CAT2 float64 `json:"cat2"`
}

// SemesterResult is the detailed published result for one semester.
type SemesterResult struct {
	Subjects []SubjectResult `json:"subjects"`
	GPA      string          `json:"gpa"`
	CGPA     string          `json:"cgpa"`
}

type SubjectResult struct {
	Subject string `json:"subject"`
	Grade   string `json:"grade"`
}

// HasResult reports whether a detailed semester result has been entered.
func (s Student) HasResult() bool {
	return s.SemesterResultDetailed != nil
}

// LatestGrade is the first subject grade of the detailed result when present,
// else the coarse grade field.
func (s Student) LatestGrade() string {
	if s.SemesterResultDetailed != nil && len(s.SemesterResultDetailed.Subjects) > 0 {
		return s.SemesterResultDetailed.Subjects[0].Grade
	}
	return s.Grade
}

// CloneStudents returns a deep, independent copy of the roster. Archive
// snapshots rely on this: no sub-structure may be shared with the live slice.
func CloneStudents(students []Student) []Student {
	if students == nil {
		return nil
	}
	out := make([]Student, len(students))
	for i, s := range students {
		out[i] = s.Clone()
	}
	return out
}

func (s Student) Clone() Student {
	cp := s
	if s.Documents != nil {
		cp.Documents = make(map[string]string, len(s.Documents))
		for k, v := range s.Documents {
			cp.Documents[k] = v
		}
	}
	if s.SubjectMarks != nil {
		cp.SubjectMarks = make(map[string]SubjectMarks, len(s.SubjectMarks))
		for k, v := range s.SubjectMarks {
			cp.SubjectMarks[k] = v
		}
	}
	if s.SemesterResultDetailed != nil {
		res := *s.SemesterResultDetailed
		res.Subjects = append([]SubjectResult(nil), s.SemesterResultDetailed.Subjects...)
		cp.SemesterResultDetailed = &res
	}
	return cp
}

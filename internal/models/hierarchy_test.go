package models

import "testing"

func TestSlugifyDepartmentName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"CSE", "cse"},
		{"Computer Science Engineering", "computer-science-engineering"},
		{"  Mechanical   Engineering  ", "mechanical-engineering"},
		{"IT", "it"},
	}
	for _, tt := range tests {
		if got := SlugifyDepartmentName(tt.name); got != tt.want {
			t.Errorf("SlugifyDepartmentName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDepartmentMatches(t *testing.T) {
	dept := Department{ID: "cse", Name: "Computer Science"}

	tests := []struct {
		ref  string
		want bool
	}{
		{"cse", true},
		{"CSE", true},
		{"Computer Science", true},
		{"computer science", true},
		{"ece", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := dept.Matches(tt.ref); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestYearsSkipsHODSentinel(t *testing.T) {
	dept := Department{
		ID: "cse",
		SubModules: []SubModule{
			{ID: "cse-hod", Name: HODModuleName},
			{ID: "cse-y-1", Name: "I Year", Sections: []string{"Section A"}},
			{ID: "cse-y-2", Name: "II Year"},
		},
	}
	years := dept.Years()
	if len(years) != 2 {
		t.Fatalf("years = %d, want 2", len(years))
	}
	if years[0].Name != "I Year" || years[1].Name != "II Year" {
		t.Errorf("year order = %q, %q", years[0].Name, years[1].Name)
	}
}

func TestCloneDepartmentsIsIndependent(t *testing.T) {
	orig := []Department{{
		ID:   "cse",
		Name: "Computer Science",
		SubModules: []SubModule{
			{ID: "cse-hod", Name: HODModuleName},
			{ID: "cse-y-1", Name: "I Year", Sections: []string{"Section A"}},
		},
	}}

	cp := CloneDepartments(orig)
	orig[0].SubModules[1].Sections[0] = "tampered"
	orig[0].SubModules[1].Name = "changed"

	if cp[0].SubModules[1].Sections[0] != "Section A" {
		t.Errorf("cloned sections share backing array: %v", cp[0].SubModules[1].Sections)
	}
	if cp[0].SubModules[1].Name != "I Year" {
		t.Errorf("cloned sub-module mutated: %q", cp[0].SubModules[1].Name)
	}
}

func TestCloneStudentIsIndependent(t *testing.T) {
	orig := Student{
		ID:        "21CS101",
		Documents: map[string]string{"aadhar": "ref-1"},
		SubjectMarks: map[string]SubjectMarks{
			"Physics": {Semester1: CATScores{CAT1: 72}},
		},
		SemesterResultDetailed: &SemesterResult{
			Subjects: []SubjectResult{{Subject: "Physics", Grade: "A"}},
			GPA:      "8.0",
		},
	}

	cp := orig.Clone()
	orig.Documents["aadhar"] = "tampered"
	orig.SubjectMarks["Physics"] = SubjectMarks{}
	orig.SemesterResultDetailed.GPA = "0"
	orig.SemesterResultDetailed.Subjects[0].Grade = "U"

	if cp.Documents["aadhar"] != "ref-1" {
		t.Errorf("documents shared: %q", cp.Documents["aadhar"])
	}
	if cp.SubjectMarks["Physics"].Semester1.CAT1 != 72 {
		t.Errorf("marks shared: %+v", cp.SubjectMarks["Physics"])
	}
	if cp.SemesterResultDetailed.GPA != "8.0" || cp.SemesterResultDetailed.Subjects[0].Grade != "A" {
		t.Errorf("result shared: %+v", cp.SemesterResultDetailed)
	}
}

func TestLatestGrade(t *testing.T) {
	coarse := Student{Grade: "B"}
	if got := coarse.LatestGrade(); got != "B" {
		t.Errorf("LatestGrade without result = %q, want B", got)
	}

	detailed := Student{
		Grade: "B",
		SemesterResultDetailed: &SemesterResult{
			Subjects: []SubjectResult{{Subject: "Physics", Grade: "A+"}},
		},
	}
	if got := detailed.LatestGrade(); got != "A+" {
		t.Errorf("LatestGrade with result = %q, want A+", got)
	}
}

func TestTimetableID(t *testing.T) {
	if got := TimetableID("cse", "I Year", "Section A"); got != "tt-cse-I Year-Section A" {
		t.Errorf("TimetableID = %q", got)
	}
}

func TestBlankSchedule(t *testing.T) {
	sched := BlankSchedule()
	if len(sched) != len(Weekdays) {
		t.Fatalf("days = %d, want %d", len(sched), len(Weekdays))
	}
	for _, day := range Weekdays {
		if len(sched[day]) != PeriodsPerDay {
			t.Errorf("%s slots = %d, want %d", day, len(sched[day]), PeriodsPerDay)
		}
	}
}

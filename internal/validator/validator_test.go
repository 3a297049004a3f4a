package validator

import "testing"

func TestEnrollStudentRequestValidation(t *testing.T) {
	v := New()

	valid := EnrollStudentRequest{
		ID: "21CS101", Name: "Anitha R", DOB: "2004-05-15",
		DepartmentID: "cse", Year: "I Year", Section: "Section A",
	}
	if errs := v.Validate(valid); errs != nil {
		t.Fatalf("valid request rejected: %v", errs)
	}

	tests := []struct {
		name      string
		mutate    func(*EnrollStudentRequest)
		wantField string
	}{
		{name: "missing id", mutate: func(r *EnrollStudentRequest) { r.ID = "" }, wantField: "ID"},
		{name: "dob wrong layout", mutate: func(r *EnrollStudentRequest) { r.DOB = "15/05/2004" }, wantField: "DOB"},
		{name: "dob not a date", mutate: func(r *EnrollStudentRequest) { r.DOB = "2004-13-40" }, wantField: "DOB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			errs := v.Validate(req)
			if errs == nil {
				t.Fatal("expected validation errors, got none")
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestInstituteRules(t *testing.T) {
	v := New()

	type semester struct {
		Label string `validate:"semester_label"`
	}
	type mark struct {
		Score float64 `validate:"mark_range"`
	}
	type day struct {
		Name string `validate:"weekday"`
	}

	if errs := v.Validate(semester{Label: "1st"}); errs != nil {
		t.Errorf("1st rejected: %v", errs)
	}
	if errs := v.Validate(semester{Label: "3rd"}); errs == nil {
		t.Error("3rd accepted")
	}

	if errs := v.Validate(mark{Score: 0}); errs != nil {
		t.Errorf("0 rejected: %v", errs)
	}
	if errs := v.Validate(mark{Score: 100}); errs != nil {
		t.Errorf("100 rejected: %v", errs)
	}
	if errs := v.Validate(mark{Score: 100.5}); errs == nil {
		t.Error("100.5 accepted")
	}
	if errs := v.Validate(mark{Score: -1}); errs == nil {
		t.Error("-1 accepted")
	}

	if errs := v.Validate(day{Name: "Wednesday"}); errs != nil {
		t.Errorf("Wednesday rejected: %v", errs)
	}
	if errs := v.Validate(day{Name: "Sunday"}); errs == nil {
		t.Error("Sunday accepted (timetables are Monday-Friday)")
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	v := New()
	errs := v.Validate(AddDepartmentRequest{})
	if errs == nil {
		t.Fatal("expected errors")
	}
	if errs.Error() != "validation failed: Name is required" {
		t.Errorf("message = %q", errs.Error())
	}
}

package services

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/acadhub-2025/records-service/internal/models"
	"github.com/acadhub-2025/records-service/internal/repositories"
)

type ResultClass string

const (
	ClassPass     ResultClass = "Pass"
	ClassArrear   ResultClass = "Arrear"
	ClassReArrear ResultClass = "RA"
)

// GradeLetters is the fixed histogram order. Letters outside this set are
// silently dropped.
var GradeLetters = []string{"O", "A+", "A", "B+", "B", "C", "U", "RA"}

// AnalyticsPolicy carries the domain policy constants. The defaults encode
// current institutional practice; they are configuration, not laws of nature.
type AnalyticsPolicy struct {
	PassGPAThreshold float64
	PassRateWeight   float64
	AttendanceWeight float64
	CATPassMark      float64
}

func DefaultAnalyticsPolicy() AnalyticsPolicy {
	return AnalyticsPolicy{
		PassGPAThreshold: 5.0,
		PassRateWeight:   0.6,
		AttendanceWeight: 0.4,
		CATPassMark:      50,
	}
}

// ===== RESPONSE DTOs =====

// ResultSummary aggregates one (usually pre-scoped) student collection.
//
// Two denominators are in play and must not be conflated: the class
// percentages divide by the number of students who entered a result, while
// AvgAttendance divides by the full collection size. Each percentage is
// rounded independently, so the three need not sum to 100.
type ResultSummary struct {
	TotalStudents int `json:"total_students"`
	ResultEntered int `json:"result_entered"`

	Pass     int `json:"pass"`
	Arrear   int `json:"arrear"`
	ReArrear int `json:"ra"`

	PassPerc   int `json:"pass_perc"`
	ArrearPerc int `json:"arrear_perc"`
	RAPerc     int `json:"ra_perc"`

	AvgAttendance int `json:"avg_attendance"`
}

type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

type UnitPerformance struct {
	Name        string `json:"name"`
	Performance int    `json:"performance"`
	Attendance  int    `json:"attendance"`
}

type CATSummary struct {
	Total    int `json:"total"`
	CAT1Pass int `json:"cat1_pass"`
	CAT2Pass int `json:"cat2_pass"`
	CAT1Perc int `json:"cat1_perc"`
	CAT2Perc int `json:"cat2_perc"`
}

// ===== SERVICE IMPLEMENTATION =====

// analyticsService is pure aggregation over given collections; only
// DepartmentPerformance touches the repository, to resolve unit names.
type analyticsService struct {
	repo   repositories.Repository
	policy AnalyticsPolicy
}

func NewAnalyticsService(repo repositories.Repository, policy AnalyticsPolicy) AnalyticsService {
	return &analyticsService{repo: repo, policy: policy}
}

// Classify maps a GPA string to its result class. An unparsable or missing
// GPA on an entered result counts as 0, which is Re-Arrear.
func (s *analyticsService) Classify(gpa string) ResultClass {
	v, err := strconv.ParseFloat(gpa, 64)
	if err != nil || v < 0 {
		v = 0
	}
	switch {
	case v >= s.policy.PassGPAThreshold:
		return ClassPass
	case v > 0:
		return ClassArrear
	default:
		return ClassReArrear
	}
}

func (s *analyticsService) Summarize(students []models.Student) ResultSummary {
	sum := ResultSummary{TotalStudents: len(students)}
	if len(students) == 0 {
		return sum
	}

	var totalAttendance float64
	for _, st := range students {
		totalAttendance += st.AttendancePercentage

		if !st.HasResult() {
			continue
		}
		sum.ResultEntered++
		switch s.Classify(st.SemesterResultDetailed.GPA) {
		case ClassPass:
			sum.Pass++
		case ClassArrear:
			sum.Arrear++
		default:
			sum.ReArrear++
		}
	}

	if sum.ResultEntered > 0 {
		divisor := float64(sum.ResultEntered)
		sum.PassPerc = roundPct(float64(sum.Pass) / divisor)
		sum.ArrearPerc = roundPct(float64(sum.Arrear) / divisor)
		sum.RAPerc = roundPct(float64(sum.ReArrear) / divisor)
	}
	sum.AvgAttendance = int(math.Round(totalAttendance / float64(len(students))))
	return sum
}

func (s *analyticsService) GradeHistogram(students []models.Student) []GradeCount {
	counts := make(map[string]int, len(GradeLetters))
	for _, letter := range GradeLetters {
		counts[letter] = 0
	}
	for _, st := range students {
		grade := st.LatestGrade()
		if _, known := counts[grade]; known {
			counts[grade]++
		}
	}

	out := make([]GradeCount, len(GradeLetters))
	for i, letter := range GradeLetters {
		out[i] = GradeCount{Grade: letter, Count: counts[letter]}
	}
	return out
}

// PerformanceIndex is the weighted unit score: pass rate over result-entered
// students weighted against mean attendance over all unit students. Empty
// units report 0 rather than erroring.
func (s *analyticsService) PerformanceIndex(students []models.Student) int {
	if len(students) == 0 {
		return 0
	}

	var withResults, passed int
	var totalAttendance float64
	for _, st := range students {
		totalAttendance += st.AttendancePercentage
		if st.HasResult() {
			withResults++
			if s.Classify(st.SemesterResultDetailed.GPA) == ClassPass {
				passed++
			}
		}
	}

	var passRate float64
	if withResults > 0 {
		passRate = float64(passed) / float64(withResults) * 100
	}
	avgAttendance := totalAttendance / float64(len(students))

	return int(math.Round(passRate*s.policy.PassRateWeight + avgAttendance*s.policy.AttendanceWeight))
}

func (s *analyticsService) DepartmentPerformance(ctx context.Context, students []models.Student) ([]UnitPerformance, error) {
	depts, err := s.repo.Hierarchy().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	out := make([]UnitPerformance, 0, len(depts))
	for _, dept := range depts {
		unit := make([]models.Student, 0)
		for _, st := range students {
			if dept.Matches(st.Department) {
				unit = append(unit, st)
			}
		}

		var attendance float64
		for _, st := range unit {
			attendance += st.AttendancePercentage
		}
		avg := 0
		if len(unit) > 0 {
			avg = int(math.Round(attendance / float64(len(unit))))
		}

		out = append(out, UnitPerformance{
			Name:        dept.Name,
			Performance: s.PerformanceIndex(unit),
			Attendance:  avg,
		})
	}
	return out, nil
}

// CATSummary reports continuous-assessment pass rates for one subject over
// the first semester scores.
func (s *analyticsService) CATSummary(students []models.Student, subject string) CATSummary {
	sum := CATSummary{}
	for _, st := range students {
		marks, ok := st.SubjectMarks[subject]
		if !ok {
			continue
		}
		sum.Total++
		if marks.Semester1.CAT1 >= s.policy.CATPassMark {
			sum.CAT1Pass++
		}
		if marks.Semester1.CAT2 >= s.policy.CATPassMark {
			sum.CAT2Pass++
		}
	}
	if sum.Total > 0 {
		sum.CAT1Perc = roundPct(float64(sum.CAT1Pass) / float64(sum.Total))
		sum.CAT2Perc = roundPct(float64(sum.CAT2Pass) / float64(sum.Total))
	}
	return sum
}

func roundPct(ratio float64) int {
	return int(math.Round(ratio * 100))
}

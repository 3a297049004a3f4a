package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/acadhub-2025/records-service/internal/repositories"
)

// exportService renders a scoped roster and its analytics summary as an
// Excel workbook. File delivery is the embedding host's concern; the service
// returns the buffer plus a suggested filename.
type exportService struct {
	repo      repositories.Repository
	scope     ScopeService
	analytics AnalyticsService
	logger    *slog.Logger
}

func NewExportService(repo repositories.Repository, scope ScopeService, analytics AnalyticsService, logger *slog.Logger) ExportService {
	return &exportService{repo: repo, scope: scope, analytics: analytics, logger: logger}
}

func (s *exportService) ExportRoster(ctx context.Context, scope RoleScope) (*bytes.Buffer, string, error) {
	students, err := s.scope.VisibleStudents(ctx, scope)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("failed to close workbook", "error", err)
		}
	}()

	const rosterSheet = "Roster"
	f.SetSheetName(f.GetSheetName(0), rosterSheet)

	headers := []string{"Roll No", "Name", "Department", "Year", "Section", "Grade", "Attendance %", "GPA"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(rosterSheet, cell, h); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, st := range students {
		gpa := ""
		if st.HasResult() {
			gpa = st.SemesterResultDetailed.GPA
		}
		values := []interface{}{st.ID, st.Name, st.Department, st.Year, st.Section, st.LatestGrade(), st.AttendancePercentage, gpa}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(rosterSheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("failed to write roster row: %w", err)
			}
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, "", fmt.Errorf("failed to add summary sheet: %w", err)
	}

	sum := s.analytics.Summarize(students)
	summaryRows := [][]interface{}{
		{"Total Students", sum.TotalStudents},
		{"Results Entered", sum.ResultEntered},
		{"Pass", sum.Pass},
		{"Arrear", sum.Arrear},
		{"Re-Arrear", sum.ReArrear},
		{"Pass %", sum.PassPerc},
		{"Arrear %", sum.ArrearPerc},
		{"RA %", sum.RAPerc},
		{"Avg Attendance %", sum.AvgAttendance},
		{"Performance Index", s.analytics.PerformanceIndex(students)},
	}
	for i, row := range summaryRows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("failed to write summary row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	s.logger.Info("roster exported", "students", len(students), "role", scope.Role())
	return &buf, "roster.xlsx", nil
}

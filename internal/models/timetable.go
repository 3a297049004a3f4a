package models

import "fmt"

// PeriodsPerDay is the fixed slot count of every timetable row.
const PeriodsPerDay = 8

// Weekdays is the fixed row order of a published timetable.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TimeTableEntry is the published schedule for one (department, year, section)
// triple. At most one entry exists per triple; publishing replaces any prior one.
type TimeTableEntry struct {
	ID           string              `json:"id"`
	DepartmentID string              `json:"department_id"`
	Year         string              `json:"year"`
	Section      string              `json:"section"`
	Schedule     map[string][]string `json:"schedule"` // weekday -> 8 subject-or-empty slots
}

// TimetableID derives the deterministic entry id for a scoping triple.
func TimetableID(deptID, year, section string) string {
	return fmt.Sprintf("tt-%s-%s-%s", deptID, year, section)
}

// BlankSchedule returns an empty Monday-Friday grid with PeriodsPerDay slots.
func BlankSchedule() map[string][]string {
	sched := make(map[string][]string, len(Weekdays))
	for _, day := range Weekdays {
		sched[day] = make([]string, PeriodsPerDay)
	}
	return sched
}

func (t TimeTableEntry) Clone() TimeTableEntry {
	cp := t
	if t.Schedule != nil {
		cp.Schedule = make(map[string][]string, len(t.Schedule))
		for day, slots := range t.Schedule {
			cp.Schedule[day] = append([]string(nil), slots...)
		}
	}
	return cp
}

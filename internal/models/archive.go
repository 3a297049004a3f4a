package models

import "time"

// AcademicArchive is an immutable snapshot of one finished academic cycle.
// Students and Departments are deep copies; nothing is shared with live state
// and nothing mutates an archive after creation.
type AcademicArchive struct {
	ID         string       `json:"id"`
	Year       string       `json:"year"`
	Semester   string       `json:"semester"`
	ArchivedAt time.Time    `json:"archived_at"`
	Data       ArchivedData `json:"data"`
}

type ArchivedData struct {
	Students    []Student    `json:"students"`
	Departments []Department `json:"departments"`
}

// SystemConfig is the single process-wide institutional configuration.
type SystemConfig struct {
	CollegeName     string `json:"college_name"`
	LogoLeft        string `json:"logo_left"`
	LogoRight       string `json:"logo_right"`
	CurrentYear     string `json:"current_year"`
	CurrentSemester string `json:"current_semester"` // "1st" | "2nd"
}

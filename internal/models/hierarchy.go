package models

import "strings"

// HODModuleName is the sentinel sub-module every department carries exactly once.
const HODModuleName = "HOD"

// Department is an organizational unit. SubModules hold the HOD sentinel plus
// one entry per year label.
type Department struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	SubModules []SubModule `json:"sub_modules"`
}

// SubModule is either the HOD sentinel (no sections) or a year with its sections.
type SubModule struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Sections []string `json:"sections,omitempty"`
}

func (sm SubModule) IsHOD() bool {
	return sm.Name == HODModuleName
}

// Years returns the non-HOD sub-modules in declaration order.
func (d Department) Years() []SubModule {
	years := make([]SubModule, 0, len(d.SubModules))
	for _, sm := range d.SubModules {
		if !sm.IsHOD() {
			years = append(years, sm)
		}
	}
	return years
}

// Matches reports whether the given student department reference points at this
// department. Matching is case-insensitive and accepts either the id or the
// display name.
func (d Department) Matches(ref string) bool {
	return strings.EqualFold(ref, d.ID) || strings.EqualFold(ref, d.Name)
}

// SlugifyDepartmentName derives a department id from its display name:
// lowercased, whitespace runs collapsed to a single dash.
func SlugifyDepartmentName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// CloneDepartments returns a deep, independent copy of the hierarchy.
func CloneDepartments(depts []Department) []Department {
	if depts == nil {
		return nil
	}
	out := make([]Department, len(depts))
	for i, d := range depts {
		out[i] = d.Clone()
	}
	return out
}

func (d Department) Clone() Department {
	cp := d
	cp.SubModules = make([]SubModule, len(d.SubModules))
	for i, sm := range d.SubModules {
		cp.SubModules[i] = sm.Clone()
	}
	return cp
}

func (sm SubModule) Clone() SubModule {
	cp := sm
	if sm.Sections != nil {
		cp.Sections = append([]string(nil), sm.Sections...)
	}
	return cp
}

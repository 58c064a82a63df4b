package types

import (
	"strings"

	"github.com/google/uuid"
)

// ResumeRecord is the complete data model for one resume: personal details,
// work and education history, skills, plus the layout and color selectors.
type ResumeRecord struct {
	Personal    PersonalDetails  `json:"personal" yaml:"personal" toml:"personal"`
	Work        []WorkEntry      `json:"work" yaml:"work" toml:"work"`
	Education   []EducationEntry `json:"education" yaml:"education" toml:"education"`
	Skills      []string         `json:"skills" yaml:"skills" toml:"skills"`
	Layout      Layout           `json:"layout" yaml:"layout" toml:"layout"`
	ColorScheme ColorSchemeID    `json:"color_scheme" yaml:"color_scheme" toml:"color_scheme"`
}

// PersonalDetails holds the header and summary fields of a resume
type PersonalDetails struct {
	FullName string `json:"full_name" yaml:"full_name" toml:"full_name"`
	Email    string `json:"email" yaml:"email" toml:"email"`
	Phone    string `json:"phone" yaml:"phone" toml:"phone"`
	Address  string `json:"address" yaml:"address" toml:"address"`
	Title    string `json:"title" yaml:"title" toml:"title"`
	Summary  string `json:"summary" yaml:"summary" toml:"summary"`
	Photo    string `json:"photo,omitempty" yaml:"photo,omitempty" toml:"photo,omitempty"` // data URI, empty when absent
}

// WorkEntry represents a single position held at a company
type WorkEntry struct {
	ID          string `json:"id" yaml:"id" toml:"id"`
	Company     string `json:"company" yaml:"company" toml:"company"`
	Position    string `json:"position" yaml:"position" toml:"position"`
	StartDate   string `json:"start_date" yaml:"start_date" toml:"start_date"` // YYYY-MM or empty
	EndDate     string `json:"end_date" yaml:"end_date" toml:"end_date"`       // YYYY-MM or empty
	IsCurrent   bool   `json:"is_current" yaml:"is_current" toml:"is_current"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// EducationEntry represents a single degree or course of study
type EducationEntry struct {
	ID          string `json:"id" yaml:"id" toml:"id"`
	Institution string `json:"institution" yaml:"institution" toml:"institution"`
	Degree      string `json:"degree" yaml:"degree" toml:"degree"`
	Field       string `json:"field" yaml:"field" toml:"field"`
	StartDate   string `json:"start_date" yaml:"start_date" toml:"start_date"`
	EndDate     string `json:"end_date" yaml:"end_date" toml:"end_date"`
	IsCurrent   bool   `json:"is_current" yaml:"is_current" toml:"is_current"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// NewResumeRecord returns an empty record with the default layout and color scheme
func NewResumeRecord() *ResumeRecord {
	return &ResumeRecord{
		Work:        []WorkEntry{},
		Education:   []EducationEntry{},
		Skills:      []string{},
		Layout:      DefaultLayout,
		ColorScheme: DefaultColorScheme,
	}
}

// NewEntryID generates a fresh identifier for a work or education entry
func NewEntryID() string {
	return uuid.NewString()
}

// DateRange formats the entry period as "start - end", substituting present
// for the end date when the entry is current.
func (w WorkEntry) DateRange(present string) string {
	return formatDateRange(w.StartDate, w.EndDate, w.IsCurrent, present)
}

// DateRange formats the entry period as "start - end", substituting present
// for the end date when the entry is current.
func (e EducationEntry) DateRange(present string) string {
	return formatDateRange(e.StartDate, e.EndDate, e.IsCurrent, present)
}

func formatDateRange(start, end string, current bool, present string) string {
	if current {
		return start + " - " + present
	}
	return start + " - " + end
}

// HasSkill reports whether label is already present (exact, case-sensitive match)
func (r *ResumeRecord) HasSkill(label string) bool {
	for _, s := range r.Skills {
		if s == label {
			return true
		}
	}
	return false
}

// AddSkill appends a trimmed skill label. Empty or duplicate labels are ignored
// and false is returned.
func (r *ResumeRecord) AddSkill(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" || r.HasSkill(label) {
		return false
	}
	r.Skills = append(r.Skills, label)
	return true
}

// RemoveSkill deletes a skill label, preserving the order of the rest
func (r *ResumeRecord) RemoveSkill(label string) bool {
	for i, s := range r.Skills {
		if s == label {
			r.Skills = append(r.Skills[:i:i], r.Skills[i+1:]...)
			return true
		}
	}
	return false
}

// AddWorkEntry appends an entry under a newly generated ID and returns that ID.
// Any ID set on the input is ignored.
func (r *ResumeRecord) AddWorkEntry(entry WorkEntry) string {
	entry.ID = NewEntryID()
	r.Work = append(r.Work, entry)
	return entry.ID
}

// UpdateWorkEntry replaces the entry with the given ID, keeping its ID
func (r *ResumeRecord) UpdateWorkEntry(id string, entry WorkEntry) bool {
	for i := range r.Work {
		if r.Work[i].ID == id {
			entry.ID = id
			r.Work[i] = entry
			return true
		}
	}
	return false
}

// RemoveWorkEntry deletes the entry with the given ID
func (r *ResumeRecord) RemoveWorkEntry(id string) bool {
	for i := range r.Work {
		if r.Work[i].ID == id {
			r.Work = append(r.Work[:i:i], r.Work[i+1:]...)
			return true
		}
	}
	return false
}

// AddEducationEntry appends an entry under a newly generated ID and returns that ID.
func (r *ResumeRecord) AddEducationEntry(entry EducationEntry) string {
	entry.ID = NewEntryID()
	r.Education = append(r.Education, entry)
	return entry.ID
}

// UpdateEducationEntry replaces the entry with the given ID, keeping its ID
func (r *ResumeRecord) UpdateEducationEntry(id string, entry EducationEntry) bool {
	for i := range r.Education {
		if r.Education[i].ID == id {
			entry.ID = id
			r.Education[i] = entry
			return true
		}
	}
	return false
}

// RemoveEducationEntry deletes the entry with the given ID
func (r *ResumeRecord) RemoveEducationEntry(id string) bool {
	for i := range r.Education {
		if r.Education[i].ID == id {
			r.Education = append(r.Education[:i:i], r.Education[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the record
func (r *ResumeRecord) Clone() *ResumeRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.Work = append([]WorkEntry{}, r.Work...)
	out.Education = append([]EducationEntry{}, r.Education...)
	out.Skills = append([]string{}, r.Skills...)
	return &out
}

// Normalize brings a record loaded from outside into a state that satisfies
// the record invariants: trimmed text, unique skills, every entry carrying an
// ID, cleared end dates on current entries and resolvable selectors.
func (r *ResumeRecord) Normalize() {
	p := &r.Personal
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = strings.TrimSpace(p.Address)
	p.Title = strings.TrimSpace(p.Title)
	p.Summary = strings.TrimSpace(p.Summary)
	p.Photo = strings.TrimSpace(p.Photo)

	seenIDs := make(map[string]bool)
	if r.Work == nil {
		r.Work = []WorkEntry{}
	}
	for i := range r.Work {
		w := &r.Work[i]
		if w.ID == "" || seenIDs[w.ID] {
			w.ID = NewEntryID()
		}
		seenIDs[w.ID] = true
		w.Company = strings.TrimSpace(w.Company)
		w.Position = strings.TrimSpace(w.Position)
		w.StartDate = strings.TrimSpace(w.StartDate)
		w.EndDate = strings.TrimSpace(w.EndDate)
		w.Description = strings.TrimSpace(w.Description)
		if w.IsCurrent {
			w.EndDate = ""
		}
	}

	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	for i := range r.Education {
		e := &r.Education[i]
		if e.ID == "" || seenIDs[e.ID] {
			e.ID = NewEntryID()
		}
		seenIDs[e.ID] = true
		e.Institution = strings.TrimSpace(e.Institution)
		e.Degree = strings.TrimSpace(e.Degree)
		e.Field = strings.TrimSpace(e.Field)
		e.StartDate = strings.TrimSpace(e.StartDate)
		e.EndDate = strings.TrimSpace(e.EndDate)
		e.Description = strings.TrimSpace(e.Description)
		if e.IsCurrent {
			e.EndDate = ""
		}
	}

	skills := r.Skills
	r.Skills = make([]string, 0, len(skills))
	for _, s := range skills {
		r.AddSkill(s)
	}

	if !r.Layout.Valid() {
		r.Layout = ParseLayout(string(r.Layout))
	}
	if !r.ColorScheme.Valid() {
		r.ColorScheme = ParseColorScheme(string(r.ColorScheme))
	}
}

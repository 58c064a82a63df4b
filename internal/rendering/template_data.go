// Package rendering renders a ResumeRecord into one of the HTML resume layouts.
package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/theme"
	"github.com/jonathan/resume-builder/internal/types"
)

// MountID is the id of the root element of every rendered resume. The export
// engine locates the visual tree by this id.
const MountID = "resume-to-print"

// TemplateData is the view model shared by all layouts. Placeholders, date
// ranges and colors are resolved once here so every layout exposes the same
// information.
type TemplateData struct {
	MountID     string
	Layout      types.Layout
	Colors      theme.ColorScheme
	PrimaryTint string // primary at 10% opacity
	PrimaryWash string // primary at ~6% opacity

	Name     string
	Title    string
	Email    string
	Phone    string
	Address  string
	Photo    template.URL
	PhotoAlt string
	Summary  string

	Labels    SectionLabels
	Work      []EntrySection
	Education []EntrySection
	Skills    []string
}

// SectionLabels holds the localized section headings
type SectionLabels struct {
	Summary   string
	Work      string
	Education string
	Skills    string
}

// EntrySection is a work or education entry ready for display
type EntrySection struct {
	ID          string
	Heading     string // position, or degree with field of study
	Subheading  string // company or institution
	DateRange   string
	Description string
}

// HasContact reports whether any contact field is filled
func (d *TemplateData) HasContact() bool {
	return d.Email != "" || d.Phone != "" || d.Address != ""
}

// SkillList joins the skills with commas, for layouts that print them inline
func (d *TemplateData) SkillList() string {
	return strings.Join(d.Skills, ", ")
}

// buildTemplateData constructs the template data structure from a record.
// The record is expected to be normalized.
func buildTemplateData(rec *types.ResumeRecord, layout types.Layout, loc *i18n.Localizer) *TemplateData {
	colors := theme.Resolve(rec.ColorScheme)
	p := rec.Personal

	data := &TemplateData{
		MountID:     MountID,
		Layout:      layout,
		Colors:      colors,
		PrimaryTint: theme.Tint(colors.Primary, "1a"),
		PrimaryWash: theme.Tint(colors.Primary, "10"),
		Name:        placeholder(p.FullName, loc.T(i18n.YourName)),
		Title:       placeholder(p.Title, loc.T(i18n.ProfessionalTitleDefault)),
		Email:       p.Email,
		Phone:       p.Phone,
		Address:     p.Address,
		Photo:       photoURL(p.Photo),
		PhotoAlt:    loc.T(i18n.PhotoAlt),
		Summary:     p.Summary,
		Labels: SectionLabels{
			Summary:   loc.T(i18n.Summary),
			Work:      loc.T(i18n.WorkExperienceTitle),
			Education: loc.T(i18n.EducationPreviewTitle),
			Skills:    loc.T(i18n.SkillsPreviewTitle),
		},
		Work:      make([]EntrySection, 0, len(rec.Work)),
		Education: make([]EntrySection, 0, len(rec.Education)),
		Skills:    append([]string{}, rec.Skills...),
	}

	present := loc.T(i18n.Present)
	for _, w := range rec.Work {
		data.Work = append(data.Work, EntrySection{
			ID:          w.ID,
			Heading:     w.Position,
			Subheading:  w.Company,
			DateRange:   w.DateRange(present),
			Description: w.Description,
		})
	}

	connector := loc.T(i18n.FieldConnector)
	for _, e := range rec.Education {
		heading := e.Degree
		if e.Field != "" {
			heading = strings.TrimSpace(heading + " " + connector + " " + e.Field)
		}
		data.Education = append(data.Education, EntrySection{
			ID:          e.ID,
			Heading:     heading,
			Subheading:  e.Institution,
			DateRange:   e.DateRange(present),
			Description: e.Description,
		})
	}

	return data
}

func placeholder(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// photoURL only lets embedded image payloads through; anything else is dropped
// rather than rendered as a broken image.
func photoURL(photo string) template.URL {
	if !strings.HasPrefix(photo, "data:image/") {
		return ""
	}
	return template.URL(photo) //nolint:gosec // restricted to data:image payloads
}

package editor

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/photo"
	"github.com/jonathan/resume-builder/internal/types"
)

// PersonalEditor edits the personal details
type PersonalEditor struct {
	data   types.PersonalDetails
	update func(types.PersonalDetails)
}

// Details returns the editor's copy of the personal details
func (e *PersonalEditor) Details() types.PersonalDetails {
	return e.data
}

// Save replaces the personal details. The photo is kept as is; use SetPhoto
// and ClearPhoto to change it.
func (e *PersonalEditor) Save(p types.PersonalDetails) {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = strings.TrimSpace(p.Address)
	p.Title = strings.TrimSpace(p.Title)
	p.Summary = strings.TrimSpace(p.Summary)
	p.Photo = e.data.Photo
	e.data = p
	e.update(e.data)
}

// SetPhoto loads an image file and stores it as a data URI. The details are
// left unchanged when the file is rejected.
func (e *PersonalEditor) SetPhoto(path string) error {
	uri, err := photo.LoadFile(path)
	if err != nil {
		return err
	}
	e.data.Photo = uri
	e.update(e.data)
	return nil
}

// ClearPhoto removes the photo
func (e *PersonalEditor) ClearPhoto() {
	if e.data.Photo == "" {
		return
	}
	e.data.Photo = ""
	e.update(e.data)
}

// WorkEditor edits the list of work entries
type WorkEditor struct {
	data   []types.WorkEntry
	update func([]types.WorkEntry)
}

// Entries returns a copy of the work entries in order
func (e *WorkEditor) Entries() []types.WorkEntry {
	return append([]types.WorkEntry{}, e.data...)
}

// Find returns the form values of the entry with the given ID, for editing
func (e *WorkEditor) Find(id string) (WorkInput, bool) {
	for _, w := range e.data {
		if w.ID == id {
			return WorkInput{
				Company:     w.Company,
				Position:    w.Position,
				StartDate:   w.StartDate,
				EndDate:     w.EndDate,
				IsCurrent:   w.IsCurrent,
				Description: w.Description,
			}, true
		}
	}
	return WorkInput{}, false
}

// Save stores in as the entry with the given ID, or appends it under a new ID
// when id is empty or unknown. It returns the ID of the stored entry.
func (e *WorkEditor) Save(id string, in WorkInput) (string, error) {
	in = in.trimmed()
	if err := checkInput("work entry", in); err != nil {
		return "", err
	}
	entry := types.WorkEntry{
		Company:     in.Company,
		Position:    in.Position,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsCurrent:   in.IsCurrent,
		Description: in.Description,
	}

	scratch := types.ResumeRecord{Work: e.data}
	if id == "" || !scratch.UpdateWorkEntry(id, entry) {
		id = scratch.AddWorkEntry(entry)
	}
	e.data = scratch.Work
	e.update(e.Entries())
	return id, nil
}

// Remove deletes the entry with the given ID
func (e *WorkEditor) Remove(id string) bool {
	scratch := types.ResumeRecord{Work: e.data}
	if !scratch.RemoveWorkEntry(id) {
		return false
	}
	e.data = scratch.Work
	e.update(e.Entries())
	return true
}

// EducationEditor edits the list of education entries
type EducationEditor struct {
	data   []types.EducationEntry
	update func([]types.EducationEntry)
}

// Entries returns a copy of the education entries in order
func (e *EducationEditor) Entries() []types.EducationEntry {
	return append([]types.EducationEntry{}, e.data...)
}

// Find returns the form values of the entry with the given ID
func (e *EducationEditor) Find(id string) (EducationInput, bool) {
	for _, ed := range e.data {
		if ed.ID == id {
			return EducationInput{
				Institution: ed.Institution,
				Degree:      ed.Degree,
				Field:       ed.Field,
				StartDate:   ed.StartDate,
				EndDate:     ed.EndDate,
				IsCurrent:   ed.IsCurrent,
				Description: ed.Description,
			}, true
		}
	}
	return EducationInput{}, false
}

// Save stores in as the entry with the given ID, or appends it under a new ID
func (e *EducationEditor) Save(id string, in EducationInput) (string, error) {
	in = in.trimmed()
	if err := checkInput("education entry", in); err != nil {
		return "", err
	}
	entry := types.EducationEntry{
		Institution: in.Institution,
		Degree:      in.Degree,
		Field:       in.Field,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsCurrent:   in.IsCurrent,
		Description: in.Description,
	}

	scratch := types.ResumeRecord{Education: e.data}
	if id == "" || !scratch.UpdateEducationEntry(id, entry) {
		id = scratch.AddEducationEntry(entry)
	}
	e.data = scratch.Education
	e.update(e.Entries())
	return id, nil
}

// Remove deletes the entry with the given ID
func (e *EducationEditor) Remove(id string) bool {
	scratch := types.ResumeRecord{Education: e.data}
	if !scratch.RemoveEducationEntry(id) {
		return false
	}
	e.data = scratch.Education
	e.update(e.Entries())
	return true
}

// SkillsEditor edits the skill labels
type SkillsEditor struct {
	data   []string
	update func([]string)
}

// Skills returns a copy of the skills in order
func (e *SkillsEditor) Skills() []string {
	return append([]string{}, e.data...)
}

// Add appends label after trimming. Empty and duplicate labels are ignored.
func (e *SkillsEditor) Add(label string) bool {
	scratch := types.ResumeRecord{Skills: e.data}
	if !scratch.AddSkill(label) {
		return false
	}
	e.data = scratch.Skills
	e.update(e.Skills())
	return true
}

// Remove deletes label
func (e *SkillsEditor) Remove(label string) bool {
	scratch := types.ResumeRecord{Skills: e.data}
	if !scratch.RemoveSkill(label) {
		return false
	}
	e.data = scratch.Skills
	e.update(e.Skills())
	return true
}

// TemplateEditor selects the layout and color scheme
type TemplateEditor struct {
	layout types.Layout
	color  types.ColorSchemeID
	update func(types.Layout, types.ColorSchemeID)
}

// LayoutOption describes one selectable layout
type LayoutOption struct {
	Layout      types.Layout
	Implemented bool
	Selected    bool
}

// Layout returns the selected layout
func (e *TemplateEditor) Layout() types.Layout {
	return e.layout
}

// ColorScheme returns the selected color scheme
func (e *TemplateEditor) ColorScheme() types.ColorSchemeID {
	return e.color
}

// LayoutOptions lists every declared layout, including those that render
// with the default layout.
func (e *TemplateEditor) LayoutOptions() []LayoutOption {
	layouts := types.AllLayouts()
	out := make([]LayoutOption, 0, len(layouts))
	for _, l := range layouts {
		out = append(out, LayoutOption{Layout: l, Implemented: l.Implemented(), Selected: l == e.layout})
	}
	return out
}

// SetLayout selects a declared layout
func (e *TemplateEditor) SetLayout(l types.Layout) error {
	if !l.Valid() {
		return fmt.Errorf("unknown layout %q", l)
	}
	e.layout = l
	e.update(e.layout, e.color)
	return nil
}

// SetColorScheme selects one of the fixed color schemes
func (e *TemplateEditor) SetColorScheme(c types.ColorSchemeID) error {
	if !c.Valid() {
		return fmt.Errorf("unknown color scheme %q", c)
	}
	e.color = c
	e.update(e.layout, e.color)
	return nil
}

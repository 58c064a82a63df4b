// Package editor holds the form state of the resume wizard.
//
// A Controller exclusively owns the ResumeRecord. Section editors receive a
// copy of their slice of the record and a callback; they never touch the
// record directly and push every change up through the callback.
package editor

import (
	"github.com/rs/zerolog"

	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/types"
)

// Step is one page of the wizard
type Step int

const (
	StepPersonal Step = iota
	StepWork
	StepEducation
	StepSkills
	StepTemplate
)

// Steps returns the wizard steps in order
func Steps() []Step {
	return []Step{StepPersonal, StepWork, StepEducation, StepSkills, StepTemplate}
}

func (s Step) String() string {
	switch s {
	case StepPersonal:
		return "personal"
	case StepWork:
		return "work"
	case StepEducation:
		return "education"
	case StepSkills:
		return "skills"
	case StepTemplate:
		return "template"
	}
	return "unknown"
}

// LabelKey is the localization key of the step title
func (s Step) LabelKey() i18n.Key {
	switch s {
	case StepWork:
		return i18n.StepWork
	case StepEducation:
		return i18n.StepEducation
	case StepSkills:
		return i18n.StepSkills
	case StepTemplate:
		return i18n.StepTemplate
	}
	return i18n.StepPersonal
}

// Controller owns the record being edited and the current step
type Controller struct {
	record    *types.ResumeRecord
	step      Step
	listeners []func(*types.ResumeRecord)
	logger    zerolog.Logger
}

// NewController starts editing a copy of rec, or an empty record when rec is nil
func NewController(rec *types.ResumeRecord) *Controller {
	if rec == nil {
		rec = types.NewResumeRecord()
	} else {
		rec = rec.Clone()
		rec.Normalize()
	}
	return &Controller{
		record: rec,
		step:   StepPersonal,
		logger: logging.Component("editor"),
	}
}

// Record returns a snapshot of the record; changes to it do not affect the controller
func (c *Controller) Record() *types.ResumeRecord {
	return c.record.Clone()
}

// OnChange registers fn to receive a snapshot after every accepted change
func (c *Controller) OnChange(fn func(*types.ResumeRecord)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) changed(section string) {
	c.logger.Debug().Str("section", section).Msg("Record updated")
	for _, fn := range c.listeners {
		fn(c.record.Clone())
	}
}

// Step returns the current step
func (c *Controller) Step() Step {
	return c.step
}

// Next advances one step; it stays on the last step
func (c *Controller) Next() Step {
	if c.step < StepTemplate {
		c.step++
	}
	return c.step
}

// Previous goes back one step; it stays on the first step
func (c *Controller) Previous() Step {
	if c.step > StepPersonal {
		c.step--
	}
	return c.step
}

// GoTo jumps to step, ignoring unknown steps
func (c *Controller) GoTo(step Step) Step {
	if step >= StepPersonal && step <= StepTemplate {
		c.step = step
	}
	return c.step
}

// PersonalEditor returns an editor over a copy of the personal details
func (c *Controller) PersonalEditor() *PersonalEditor {
	return &PersonalEditor{
		data: c.record.Personal,
		update: func(p types.PersonalDetails) {
			c.record.Personal = p
			c.changed("personal")
		},
	}
}

// WorkEditor returns an editor over a copy of the work entries
func (c *Controller) WorkEditor() *WorkEditor {
	return &WorkEditor{
		data: append([]types.WorkEntry{}, c.record.Work...),
		update: func(entries []types.WorkEntry) {
			c.record.Work = entries
			c.changed("work")
		},
	}
}

// EducationEditor returns an editor over a copy of the education entries
func (c *Controller) EducationEditor() *EducationEditor {
	return &EducationEditor{
		data: append([]types.EducationEntry{}, c.record.Education...),
		update: func(entries []types.EducationEntry) {
			c.record.Education = entries
			c.changed("education")
		},
	}
}

// SkillsEditor returns an editor over a copy of the skills
func (c *Controller) SkillsEditor() *SkillsEditor {
	return &SkillsEditor{
		data: append([]string{}, c.record.Skills...),
		update: func(skills []string) {
			c.record.Skills = skills
			c.changed("skills")
		},
	}
}

// TemplateEditor returns an editor over the layout and color scheme
func (c *Controller) TemplateEditor() *TemplateEditor {
	return &TemplateEditor{
		layout: c.record.Layout,
		color:  c.record.ColorScheme,
		update: func(l types.Layout, cs types.ColorSchemeID) {
			c.record.Layout = l
			c.record.ColorScheme = cs
			c.changed("template")
		},
	}
}

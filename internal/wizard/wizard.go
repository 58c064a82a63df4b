// Package wizard walks the user through the resume form on the terminal,
// one step at a time, feeding every answer into an editor.Controller.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/photo"
	"github.com/jonathan/resume-builder/internal/theme"
	"github.com/jonathan/resume-builder/internal/types"
)

// Wizard runs the step-by-step form
type Wizard struct {
	prompter Prompter
	ctrl     *editor.Controller
	loc      *i18n.Localizer
	logger   zerolog.Logger
}

// New returns a wizard that edits the record owned by ctrl
func New(p Prompter, ctrl *editor.Controller, loc *i18n.Localizer) *Wizard {
	return &Wizard{
		prompter: p,
		ctrl:     ctrl,
		loc:      loc,
		logger:   logging.Component("wizard"),
	}
}

// Run asks for every step until the user finishes on the last one, and
// returns the edited record.
func (w *Wizard) Run(ctx context.Context) (*types.ResumeRecord, error) {
	for {
		step := w.ctrl.Step()
		w.logger.Debug().Str("step", step.String()).Msg("Entering step")
		if err := w.prompter.Info(ctx, fmt.Sprintf("== %s ==", w.loc.T(step.LabelKey()))); err != nil {
			return nil, err
		}
		if err := w.runStep(ctx, step); err != nil {
			return nil, err
		}

		finished, err := w.navigate(ctx, step)
		if err != nil {
			return nil, err
		}
		if finished {
			return w.ctrl.Record(), nil
		}
	}
}

func (w *Wizard) runStep(ctx context.Context, step editor.Step) error {
	switch step {
	case editor.StepPersonal:
		return w.personal(ctx)
	case editor.StepWork:
		return w.work(ctx)
	case editor.StepEducation:
		return w.education(ctx)
	case editor.StepSkills:
		return w.skills(ctx)
	case editor.StepTemplate:
		return w.template(ctx)
	}
	return fmt.Errorf("unknown step %v", step)
}

// navigate asks where to go after a step. It reports true when the user
// finishes on the last step.
func (w *Wizard) navigate(ctx context.Context, step editor.Step) (bool, error) {
	forward := w.loc.T(i18n.NextStep)
	if step == editor.StepTemplate {
		forward = w.loc.T(i18n.Finish)
	}
	options := []string{forward}
	if step != editor.StepPersonal {
		options = append(options, w.loc.T(i18n.PreviousStep))
	}

	choice := 0
	if len(options) > 1 {
		var err error
		choice, err = w.prompter.Select(ctx, SelectConfig{Message: w.loc.T(step.LabelKey()), Options: options})
		if err != nil {
			return false, err
		}
	}

	if choice == 1 {
		w.ctrl.Previous()
		return false, nil
	}
	if step == editor.StepTemplate {
		return true, nil
	}
	w.ctrl.Next()
	return false, nil
}

func (w *Wizard) input(ctx context.Context, key i18n.Key, def string, validate func(string) error) (string, error) {
	return w.prompter.Input(ctx, InputConfig{Message: w.loc.T(key), Default: def, Validator: validate})
}

func (w *Wizard) personal(ctx context.Context) error {
	ed := w.ctrl.PersonalEditor()
	p := ed.Details()

	fields := []struct {
		key i18n.Key
		dst *string
	}{
		{i18n.FullName, &p.FullName},
		{i18n.ProfessionalTitle, &p.Title},
		{i18n.Email, &p.Email},
		{i18n.Phone, &p.Phone},
		{i18n.Address, &p.Address},
	}
	for _, f := range fields {
		v, err := w.input(ctx, f.key, *f.dst, nil)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	summary, err := w.prompter.TextArea(ctx, TextAreaConfig{Message: w.loc.T(i18n.ProfessionalSummary), Default: p.Summary})
	if err != nil {
		return err
	}
	p.Summary = summary
	ed.Save(p)

	path, err := w.input(ctx, i18n.PhotoPath, "", validatePhotoPath)
	if err != nil {
		return err
	}
	if path = strings.TrimSpace(path); path != "" {
		if err := ed.SetPhoto(path); err != nil {
			return w.prompter.Info(ctx, err.Error())
		}
	}
	return nil
}

func validatePhotoPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	_, err := photo.LoadFile(s)
	return err
}

func validateMonth(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01", s); err != nil {
		return fmt.Errorf("%q is not a month in YYYY-MM format", s)
	}
	return nil
}

// listAction asks whether to add, remove or move on. It returns 0 for add,
// 1 for remove and 2 to continue.
func (w *Wizard) listAction(ctx context.Context, addKey i18n.Key, entries []string) (int, error) {
	for _, e := range entries {
		if err := w.prompter.Info(ctx, "  • "+e); err != nil {
			return 0, err
		}
	}
	options := []string{w.loc.T(addKey)}
	if len(entries) > 0 {
		options = append(options, w.loc.T(i18n.RemoveEntry))
	}
	options = append(options, w.loc.T(i18n.Continue))

	idx, err := w.prompter.Select(ctx, SelectConfig{Message: w.loc.T(addKey), Options: options, DefaultIndex: len(options) - 1})
	if err != nil {
		return 0, err
	}
	switch {
	case idx == 0:
		return 0, nil
	case idx == 1 && len(entries) > 0:
		return 1, nil
	}
	return 2, nil
}

func (w *Wizard) chooseEntry(ctx context.Context, entries []string) (int, error) {
	return w.prompter.Select(ctx, SelectConfig{Message: w.loc.T(i18n.ChooseEntry), Options: entries})
}

func (w *Wizard) work(ctx context.Context) error {
	ed := w.ctrl.WorkEditor()
	for {
		entries := ed.Entries()
		labels := make([]string, len(entries))
		for i, e := range entries {
			labels[i] = entryLabel(e.Position, e.Company, e.DateRange(w.loc.T(i18n.Present)))
		}

		action, err := w.listAction(ctx, i18n.AddExperience, labels)
		if err != nil {
			return err
		}
		switch action {
		case 0:
			if err := w.addWork(ctx, ed); err != nil {
				return err
			}
		case 1:
			idx, err := w.chooseEntry(ctx, labels)
			if err != nil {
				return err
			}
			if idx >= 0 && idx < len(entries) {
				ed.Remove(entries[idx].ID)
			}
		default:
			return nil
		}
	}
}

func (w *Wizard) addWork(ctx context.Context, ed *editor.WorkEditor) error {
	var in editor.WorkInput
	var err error
	if in.Company, err = w.input(ctx, i18n.Company, "", nil); err != nil {
		return err
	}
	if in.Position, err = w.input(ctx, i18n.Position, "", nil); err != nil {
		return err
	}
	if in.StartDate, err = w.input(ctx, i18n.StartDate, "", validateMonth); err != nil {
		return err
	}
	if in.IsCurrent, err = w.prompter.Confirm(ctx, ConfirmConfig{Message: w.loc.T(i18n.CurrentlyWorkHere)}); err != nil {
		return err
	}
	if !in.IsCurrent {
		if in.EndDate, err = w.input(ctx, i18n.EndDate, "", validateMonth); err != nil {
			return err
		}
	}
	if in.Description, err = w.prompter.TextArea(ctx, TextAreaConfig{Message: w.loc.T(i18n.Description)}); err != nil {
		return err
	}

	if _, err := ed.Save("", in); err != nil {
		var inputErr *editor.InputError
		if errors.As(err, &inputErr) {
			return w.prompter.Info(ctx, err.Error())
		}
		return err
	}
	return nil
}

func (w *Wizard) education(ctx context.Context) error {
	ed := w.ctrl.EducationEditor()
	connector := w.loc.T(i18n.FieldConnector)
	for {
		entries := ed.Entries()
		labels := make([]string, len(entries))
		for i, e := range entries {
			degree := e.Degree
			if e.Field != "" {
				degree = strings.TrimSpace(degree + " " + connector + " " + e.Field)
			}
			labels[i] = entryLabel(degree, e.Institution, e.DateRange(w.loc.T(i18n.Present)))
		}

		action, err := w.listAction(ctx, i18n.AddEducation, labels)
		if err != nil {
			return err
		}
		switch action {
		case 0:
			if err := w.addEducation(ctx, ed); err != nil {
				return err
			}
		case 1:
			idx, err := w.chooseEntry(ctx, labels)
			if err != nil {
				return err
			}
			if idx >= 0 && idx < len(entries) {
				ed.Remove(entries[idx].ID)
			}
		default:
			return nil
		}
	}
}

func (w *Wizard) addEducation(ctx context.Context, ed *editor.EducationEditor) error {
	var in editor.EducationInput
	var err error
	if in.Institution, err = w.input(ctx, i18n.Institution, "", nil); err != nil {
		return err
	}
	if in.Degree, err = w.input(ctx, i18n.Degree, "", nil); err != nil {
		return err
	}
	if in.Field, err = w.input(ctx, i18n.FieldOfStudy, "", nil); err != nil {
		return err
	}
	if in.StartDate, err = w.input(ctx, i18n.StartDate, "", validateMonth); err != nil {
		return err
	}
	if in.IsCurrent, err = w.prompter.Confirm(ctx, ConfirmConfig{Message: w.loc.T(i18n.CurrentlyStudying)}); err != nil {
		return err
	}
	if !in.IsCurrent {
		if in.EndDate, err = w.input(ctx, i18n.EndDate, "", validateMonth); err != nil {
			return err
		}
	}
	if in.Description, err = w.prompter.TextArea(ctx, TextAreaConfig{Message: w.loc.T(i18n.Description)}); err != nil {
		return err
	}

	if _, err := ed.Save("", in); err != nil {
		var inputErr *editor.InputError
		if errors.As(err, &inputErr) {
			return w.prompter.Info(ctx, err.Error())
		}
		return err
	}
	return nil
}

// skills reads labels until an empty answer. A label starting with "-"
// removes that skill instead.
func (w *Wizard) skills(ctx context.Context) error {
	ed := w.ctrl.SkillsEditor()
	for {
		if current := ed.Skills(); len(current) > 0 {
			if err := w.prompter.Info(ctx, "  "+strings.Join(current, ", ")); err != nil {
				return err
			}
		}
		label, err := w.prompter.Input(ctx, InputConfig{
			Message: w.loc.T(i18n.AddSkill),
			Help:    "-<skill> removes a skill",
		})
		if err != nil {
			return err
		}
		label = strings.TrimSpace(label)
		if label == "" {
			return nil
		}
		if strings.HasPrefix(label, "-") {
			ed.Remove(strings.TrimSpace(label[1:]))
			continue
		}
		ed.Add(label)
	}
}

func (w *Wizard) template(ctx context.Context) error {
	ed := w.ctrl.TemplateEditor()

	layouts := ed.LayoutOptions()
	options := make([]string, len(layouts))
	selected := 0
	for i, o := range layouts {
		options[i] = string(o.Layout)
		if !o.Implemented {
			options[i] += " (" + w.loc.T(i18n.NotImplementedHint) + ")"
		}
		if o.Selected {
			selected = i
		}
	}
	idx, err := w.prompter.Select(ctx, SelectConfig{Message: w.loc.T(i18n.ChooseTemplate), Options: options, DefaultIndex: selected})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(layouts) {
		if err := ed.SetLayout(layouts[idx].Layout); err != nil {
			return err
		}
	}

	ids := theme.AllIDs()
	colors := make([]string, len(ids))
	selected = 0
	for i, id := range ids {
		colors[i] = theme.DisplayName(id)
		if id == ed.ColorScheme() {
			selected = i
		}
	}
	idx, err = w.prompter.Select(ctx, SelectConfig{Message: w.loc.T(i18n.ChooseColor), Options: colors, DefaultIndex: selected})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(ids) {
		return ed.SetColorScheme(ids[idx])
	}
	return nil
}

func entryLabel(title, org, dates string) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{title, org} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " @ ") + " (" + dates + ")"
}

package wizard

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/types"
)

// scriptPrompter answers prompts from a fixed queue. Input and TextArea take
// strings, Confirm takes bools and Select takes ints.
type scriptPrompter struct {
	answers  []interface{}
	pos      int
	messages []string
	infos    []string
	selects  [][]string
}

func (s *scriptPrompter) next(kind, msg string) (interface{}, error) {
	s.messages = append(s.messages, msg)
	if s.pos >= len(s.answers) {
		return nil, fmt.Errorf("no answer scripted for %s %q", kind, msg)
	}
	v := s.answers[s.pos]
	s.pos++
	return v, nil
}

func (s *scriptPrompter) Input(_ context.Context, cfg InputConfig) (string, error) {
	v, err := s.next("input", cfg.Message)
	if err != nil {
		return "", err
	}
	if e, ok := v.(error); ok {
		return "", e
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("input %q got %T", cfg.Message, v)
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(str); err != nil {
			return "", err
		}
	}
	return str, nil
}

func (s *scriptPrompter) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	v, err := s.next("confirm", cfg.Message)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("confirm %q got %T", cfg.Message, v)
	}
	return b, nil
}

func (s *scriptPrompter) Select(_ context.Context, cfg SelectConfig) (int, error) {
	v, err := s.next("select", cfg.Message)
	if err != nil {
		return 0, err
	}
	s.selects = append(s.selects, cfg.Options)
	i, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("select %q got %T", cfg.Message, v)
	}
	return i, nil
}

func (s *scriptPrompter) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	v, err := s.next("textarea", cfg.Message)
	if err != nil {
		return "", err
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("textarea %q got %T", cfg.Message, v)
	}
	return str, nil
}

func (s *scriptPrompter) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func TestRun_FullFlow(t *testing.T) {
	p := &scriptPrompter{answers: []interface{}{
		// personal
		"Ana Silva", "Engineer", "ana@example.com", "", "São Paulo",
		"Builds things",
		"",
		// work: add one entry, then continue and go next
		0, "Acme", "Engineer", "2020-01", true, "Go services",
		2, 0,
		// education: an empty entry is rejected, then go back
		0, "", "", "CS", "", false, "", "",
		1, 1,
		// work again: remove the entry, continue, next
		1, 0, 1, 0,
		// education: add a degree
		0, "USP", "BSc", "Computer Science", "2014-02", false, "2018-12", "",
		2, 0,
		// skills
		"Go", "SQL", "-Go", "", 0,
		// template: classic, green, finish
		1, 1, 0,
	}}

	ctrl := editor.NewController(nil)
	rec, err := New(p, ctrl, i18n.New(i18n.EnglishUS)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(p.answers), p.pos, "every scripted answer consumed")

	assert.Equal(t, "Ana Silva", rec.Personal.FullName)
	assert.Equal(t, "Engineer", rec.Personal.Title)
	assert.Equal(t, "São Paulo", rec.Personal.Address)
	assert.Equal(t, "Builds things", rec.Personal.Summary)
	assert.Empty(t, rec.Personal.Photo)

	assert.Empty(t, rec.Work, "work entry was removed")
	require.Len(t, rec.Education, 1)
	assert.Equal(t, "USP", rec.Education[0].Institution)
	assert.Equal(t, "2018-12", rec.Education[0].EndDate)

	assert.Equal(t, []string{"SQL"}, rec.Skills)
	assert.Equal(t, types.LayoutClassic, rec.Layout)
	assert.Equal(t, types.ColorGreen, rec.ColorScheme)
	assert.Equal(t, editor.StepTemplate, ctrl.Step())

	assert.Contains(t, p.infos, "invalid education entry: institution or degree is required")
	assert.Contains(t, p.infos, "  • Engineer @ Acme (2020-01 - Present)")
	assert.Contains(t, p.infos, "== Skills ==")
	assert.Contains(t, p.selects, []string{
		"modern", "classic", "minimal", "professional", "creative",
		"elegant (uses the default layout)", "corporate (uses the default layout)", "simple (uses the default layout)",
	})
}

func TestRun_Localized(t *testing.T) {
	p := &scriptPrompter{answers: []interface{}{ErrAborted}}
	_, err := New(p, editor.NewController(nil), i18n.New(i18n.PortugueseBR)).Run(context.Background())
	assert.ErrorIs(t, err, ErrAborted)
	require.NotEmpty(t, p.messages)
	assert.Equal(t, "Nome Completo", p.messages[0])
	assert.Equal(t, []string{"== Pessoal =="}, p.infos)
}

func TestRun_KeepsExistingValuesAsDefaults(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Personal.FullName = "Ana Silva"
	rec.Skills = []string{"Go"}

	var defaults []string
	p := &defaultsPrompter{scriptPrompter: scriptPrompter{answers: []interface{}{ErrAborted}}, seen: &defaults}
	_, err := New(p, editor.NewController(rec), i18n.New(i18n.EnglishUS)).Run(context.Background())
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, []string{"Ana Silva"}, defaults)
}

type defaultsPrompter struct {
	scriptPrompter
	seen *[]string
}

func (d *defaultsPrompter) Input(ctx context.Context, cfg InputConfig) (string, error) {
	*d.seen = append(*d.seen, cfg.Default)
	return d.scriptPrompter.Input(ctx, cfg)
}

func TestValidateMonth(t *testing.T) {
	assert.NoError(t, validateMonth(""))
	assert.NoError(t, validateMonth(" 2020-01 "))
	assert.Error(t, validateMonth("2020-13"))
	assert.Error(t, validateMonth("01/2020"))
}

func TestValidatePhotoPath(t *testing.T) {
	assert.NoError(t, validatePhotoPath("  "))
	assert.Error(t, validatePhotoPath("/nonexistent/me.png"))
	assert.Error(t, validatePhotoPath("notes.txt"))
}

func TestEntryLabel(t *testing.T) {
	assert.Equal(t, "Engineer @ Acme (2020-01 - 2021-02)", entryLabel("Engineer", "Acme", "2020-01 - 2021-02"))
	assert.Equal(t, "Acme ( - )", entryLabel("", "Acme", " - "))
}

package rendering

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/types"
)

const tinyPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

var implemented = []types.Layout{
	types.LayoutModern,
	types.LayoutClassic,
	types.LayoutMinimal,
	types.LayoutProfessional,
	types.LayoutCreative,
}

func fullRecord() *types.ResumeRecord {
	rec := types.NewResumeRecord()
	rec.Personal = types.PersonalDetails{
		FullName: "Ana Silva",
		Email:    "ana@example.com",
		Phone:    "+55 11 99999-0000",
		Address:  "Rua Principal, 123",
		Title:    "Software Engineer",
		Summary:  "Builds reliable systems.",
		Photo:    tinyPNG,
	}
	rec.AddWorkEntry(types.WorkEntry{Company: "Acme", Position: "Engineer", StartDate: "2020-01", EndDate: "2023-12", IsCurrent: true, Description: "Shipped things."})
	rec.AddWorkEntry(types.WorkEntry{Company: "Globex", Position: "Intern", StartDate: "2018-06", EndDate: "2019-12"})
	rec.AddEducationEntry(types.EducationEntry{Institution: "USP", Degree: "BSc", Field: "Computer Science", StartDate: "2014-02", EndDate: "2018-12"})
	rec.AddEducationEntry(types.EducationEntry{Institution: "Unicamp", Degree: "MSc", StartDate: "2019-02", IsCurrent: true})
	rec.AddSkill("Go")
	rec.AddSkill("PostgreSQL")
	rec.AddSkill("Kubernetes")
	return rec
}

func renderDoc(t *testing.T, rec *types.ResumeRecord, layout types.Layout, lang i18n.Language) *goquery.Document {
	t.Helper()
	r := SelectRenderer(layout)
	view, err := r.Render(rec, i18n.New(lang))
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(view.HTML)))
	require.NoError(t, err)
	return doc
}

func TestRenderers_Completeness(t *testing.T) {
	rec := fullRecord()

	for _, layout := range implemented {
		t.Run(string(layout), func(t *testing.T) {
			doc := renderDoc(t, rec, layout, i18n.EnglishUS)
			root := doc.Find("#" + MountID)
			require.Equal(t, 1, root.Length(), "exactly one mount point")
			assert.Equal(t, string(layout), root.AttrOr("data-layout", ""))

			text := root.Text()
			for _, want := range []string{
				"Ana Silva", "Software Engineer", "ana@example.com", "+55 11 99999-0000",
				"Rua Principal, 123", "Builds reliable systems.",
				"Engineer", "Acme", "Intern", "Globex",
				"BSc in Computer Science", "USP", "MSc", "Unicamp",
				"Go", "PostgreSQL", "Kubernetes",
			} {
				assert.Contains(t, text, want)
			}
			assert.Equal(t, 1, doc.Find(`img[data-role="photo"]`).Length(), "photo rendered")
		})
	}
}

func TestRenderers_CurrentEntryShowsPresent(t *testing.T) {
	rec := fullRecord()

	for _, layout := range implemented {
		t.Run(string(layout), func(t *testing.T) {
			doc := renderDoc(t, rec, layout, i18n.EnglishUS)
			var dates []string
			doc.Find(".entry-dates").Each(func(_ int, s *goquery.Selection) {
				dates = append(dates, strings.TrimSpace(s.Text()))
			})
			assert.Contains(t, dates, "2020-01 - Present")
			assert.Contains(t, dates, "2018-06 - 2019-12")
			assert.Contains(t, dates, "2019-02 - Present")
			assert.NotContains(t, doc.Text(), "2023-12", "stored end date of a current entry is never shown")
		})
	}
}

func TestRenderers_EmptySectionsOmitted(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Personal.FullName = "Ana Silva"

	for _, layout := range implemented {
		t.Run(string(layout), func(t *testing.T) {
			doc := renderDoc(t, rec, layout, i18n.EnglishUS)
			text := doc.Text()
			assert.NotContains(t, text, "Work Experience")
			assert.NotContains(t, text, "Education")
			assert.NotContains(t, text, "Skills")
			assert.NotContains(t, text, "Summary")
			assert.Equal(t, 0, doc.Find(`[data-section="work"]`).Length())
			assert.Equal(t, 0, doc.Find(`[data-section="contact"]`).Length())
			assert.Equal(t, 0, doc.Find(`img`).Length())
		})
	}
}

func TestRenderers_Placeholders(t *testing.T) {
	rec := types.NewResumeRecord()

	for _, layout := range implemented {
		t.Run(string(layout), func(t *testing.T) {
			doc := renderDoc(t, rec, layout, i18n.PortugueseBR)
			assert.Equal(t, "Seu Nome", strings.TrimSpace(doc.Find("h1.name").Text()))
			assert.Equal(t, "Cargo Profissional", strings.TrimSpace(doc.Find(".title").First().Text()))
		})
	}
}

func TestRenderers_Localized(t *testing.T) {
	rec := fullRecord()
	doc := renderDoc(t, rec, types.LayoutModern, i18n.PortugueseBR)
	text := doc.Text()

	assert.Contains(t, text, "Experiência Profissional")
	assert.Contains(t, text, "2020-01 - Presente")
	assert.Contains(t, text, "BSc em Computer Science")
}

func TestRenderers_Deterministic(t *testing.T) {
	rec := fullRecord()
	loc := i18n.New(i18n.EnglishUS)

	for _, layout := range implemented {
		r := SelectRenderer(layout)
		first, err := r.Render(rec, loc)
		require.NoError(t, err)
		second, err := r.Render(rec, loc)
		require.NoError(t, err)
		assert.Equal(t, first.HTML, second.HTML, string(layout))
	}
}

func TestRenderers_OrderPreserved(t *testing.T) {
	rec := fullRecord()

	for _, layout := range implemented {
		doc := renderDoc(t, rec, layout, i18n.EnglishUS)
		var headings []string
		doc.Find(`[data-section="work"] .entry-heading`).Each(func(_ int, s *goquery.Selection) {
			headings = append(headings, s.Text())
		})
		assert.Equal(t, []string{"Engineer", "Intern"}, headings, string(layout))
	}
}

func TestClassicScenario_AnaSilvaGreen(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Personal.FullName = "Ana Silva"
	rec.AddWorkEntry(types.WorkEntry{Company: "Acme", Position: "Engineer", StartDate: "2020-01", EndDate: "", IsCurrent: true})
	rec.Layout = types.LayoutClassic
	rec.ColorScheme = types.ColorGreen

	view, err := RenderRecord(rec, i18n.New(i18n.EnglishUS))
	require.NoError(t, err)
	assert.Equal(t, types.LayoutClassic, view.Layout)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(view.HTML)))
	require.NoError(t, err)

	h1 := doc.Find("h1.name")
	assert.Equal(t, "Ana Silva", h1.Text())
	assert.Contains(t, h1.AttrOr("style", ""), "#15803d")
	assert.Equal(t, "2020-01 - Present", strings.TrimSpace(doc.Find(".entry-dates").Text()))
}

func TestMinimal_SkillsCommaJoined(t *testing.T) {
	doc := renderDoc(t, fullRecord(), types.LayoutMinimal, i18n.EnglishUS)
	assert.Equal(t, "Go, PostgreSQL, Kubernetes", doc.Find(".skill-list").Text())
}

func TestProfessional_SidebarCarriesContactAndSkills(t *testing.T) {
	doc := renderDoc(t, fullRecord(), types.LayoutProfessional, i18n.EnglishUS)
	sidebar := doc.Find("aside.sidebar")

	assert.Contains(t, sidebar.AttrOr("style", ""), "#1e40af")
	assert.Equal(t, 1, sidebar.Find(`[data-field="email"]`).Length())
	assert.Equal(t, 1, sidebar.Find(`[data-section="skills"]`).Length())
	assert.Equal(t, 1, sidebar.Find(`img[data-role="photo"]`).Length())
	assert.Equal(t, 0, sidebar.Find(`[data-section="work"]`).Length())
}

func TestCreative_TimelineMarkers(t *testing.T) {
	doc := renderDoc(t, fullRecord(), types.LayoutCreative, i18n.EnglishUS)
	assert.Equal(t, 4, doc.Find(".timeline-entry .timeline-dot").Length())
}

func TestSelectRenderer_Fallback(t *testing.T) {
	modern := SelectRenderer(types.LayoutModern)

	assert.Same(t, modern, SelectRenderer(types.Layout("nonexistent-id")))
	for _, l := range []types.Layout{types.LayoutElegant, types.LayoutCorporate, types.LayoutSimple} {
		assert.Same(t, modern, SelectRenderer(l), string(l))
	}
	assert.Equal(t, types.LayoutClassic, SelectRenderer(types.LayoutClassic).Layout())
}

func TestRegistry_Layouts(t *testing.T) {
	assert.Equal(t, implemented, DefaultRegistry().Layouts())
}

func TestNewRegistry_RequiresDefault(t *testing.T) {
	classic, err := newTemplateRenderer(types.LayoutClassic)
	require.NoError(t, err)

	_, err = NewRegistry(classic)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRenderRecord_DoesNotMutateInput(t *testing.T) {
	rec := fullRecord()
	rec.Skills = append(rec.Skills, "Go")
	rec.Layout = "nope"
	before := rec.Clone()

	_, err := RenderRecord(rec, nil)
	require.NoError(t, err)
	assert.Equal(t, before, rec)
}

func TestRender_NilRecord(t *testing.T) {
	_, err := RenderRecord(nil, nil)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRender_EscapesMarkup(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Personal.FullName = `<script>alert("x")</script>`

	view, err := RenderRecord(rec, nil)
	require.NoError(t, err)
	assert.NotContains(t, string(view.HTML), "<script>")
}

func TestRender_NonDataPhotoDropped(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Personal.Photo = "javascript:alert(1)"

	doc := renderDoc(t, rec, types.LayoutModern, i18n.EnglishUS)
	assert.Equal(t, 0, doc.Find("img").Length())
}

func TestRenderPage(t *testing.T) {
	view, err := RenderRecord(fullRecord(), i18n.New(i18n.EnglishUS))
	require.NoError(t, err)

	page, err := RenderPage(view, i18n.New(i18n.EnglishUS))
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "en-US", doc.Find("html").AttrOr("lang", ""))
	assert.Contains(t, doc.Find("style").Text(), ".resume-classic")
	assert.Equal(t, 1, doc.Find("body #"+MountID).Length())
}

func TestTemplateError(t *testing.T) {
	cause := errors.New("unexpected EOF")

	err := &TemplateError{Layout: types.LayoutClassic, Message: "failed to execute template", Cause: cause}
	assert.Equal(t, "template error (classic layout): failed to execute template: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)

	page := &TemplateError{Message: "failed to read stylesheet"}
	assert.Equal(t, "template error (page): failed to read stylesheet", page.Error())
}

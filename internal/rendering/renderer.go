package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/theme"
	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.html.tmpl templates/resume.css
var templatesFS embed.FS

// View is the visual tree produced by a renderer: an HTML fragment rooted at
// the element with id MountID.
type View struct {
	Layout      types.Layout
	ColorScheme theme.ColorScheme
	HTML        template.HTML
}

// Renderer turns a record into the visual tree of one layout
type Renderer interface {
	Layout() types.Layout
	Render(rec *types.ResumeRecord, loc *i18n.Localizer) (*View, error)
}

// templateRenderer renders a layout from its embedded html/template file
type templateRenderer struct {
	layout types.Layout
	name   string
	tmpl   *template.Template
}

func newTemplateRenderer(layout types.Layout) (*templateRenderer, error) {
	name := string(layout) + ".html.tmpl"
	tmpl, err := template.New(name).ParseFS(templatesFS, "templates/partials.html.tmpl", "templates/"+name)
	if err != nil {
		return nil, &TemplateError{Layout: layout, Message: "failed to parse template", Cause: err}
	}
	return &templateRenderer{layout: layout, name: name, tmpl: tmpl}, nil
}

func (r *templateRenderer) Layout() types.Layout {
	return r.layout
}

// Render executes the layout template against the record. Identical input
// always yields identical output.
func (r *templateRenderer) Render(rec *types.ResumeRecord, loc *i18n.Localizer) (*View, error) {
	if rec == nil {
		return nil, &RenderError{Message: "record is nil"}
	}
	data := buildTemplateData(rec, r.layout, loc)

	var sb strings.Builder
	if err := r.tmpl.ExecuteTemplate(&sb, r.name, data); err != nil {
		return nil, &TemplateError{Layout: r.layout, Message: "failed to execute template", Cause: err}
	}

	return &View{
		Layout:      r.layout,
		ColorScheme: data.Colors,
		HTML:        template.HTML(sb.String()), //nolint:gosec // produced by html/template
	}, nil
}

// Registry maps layouts to their renderers
type Registry struct {
	renderers map[types.Layout]Renderer
	fallback  Renderer
}

// NewRegistry builds a registry from the given renderers. The renderer for
// types.DefaultLayout must be present; it is used for every layout without
// its own renderer.
func NewRegistry(renderers ...Renderer) (*Registry, error) {
	reg := &Registry{renderers: make(map[types.Layout]Renderer, len(renderers))}
	for _, r := range renderers {
		reg.renderers[r.Layout()] = r
	}
	fallback, ok := reg.renderers[types.DefaultLayout]
	if !ok {
		return nil, &RenderError{Message: fmt.Sprintf("registry has no renderer for default layout %s", types.DefaultLayout)}
	}
	reg.fallback = fallback
	return reg, nil
}

var defaultRegistry = mustDefaultRegistry()

func mustDefaultRegistry() *Registry {
	layouts := []types.Layout{
		types.LayoutModern,
		types.LayoutClassic,
		types.LayoutMinimal,
		types.LayoutProfessional,
		types.LayoutCreative,
	}
	renderers := make([]Renderer, 0, len(layouts))
	for _, l := range layouts {
		r, err := newTemplateRenderer(l)
		if err != nil {
			panic(err)
		}
		renderers = append(renderers, r)
	}
	reg, err := NewRegistry(renderers...)
	if err != nil {
		panic(err)
	}
	return reg
}

// DefaultRegistry returns the registry of the built-in layouts
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Select returns the renderer for layout. Layouts without a renderer, declared
// or not, get the default layout's renderer.
func (reg *Registry) Select(layout types.Layout) Renderer {
	if r, ok := reg.renderers[layout]; ok {
		return r
	}
	log.Debug().
		Str("component", "rendering").
		Str("layout", string(layout)).
		Str("fallback", string(types.DefaultLayout)).
		Msg("layout has no renderer, using fallback")
	return reg.fallback
}

// Layouts returns the layouts that have their own renderer, in declaration order
func (reg *Registry) Layouts() []types.Layout {
	out := make([]types.Layout, 0, len(reg.renderers))
	for _, l := range types.AllLayouts() {
		if _, ok := reg.renderers[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// SelectRenderer picks the built-in renderer for layout, falling back to modern
func SelectRenderer(layout types.Layout) Renderer {
	return defaultRegistry.Select(layout)
}

// RenderRecord normalizes a copy of rec and renders it with the renderer
// selected by its layout. The caller's record is left untouched.
func RenderRecord(rec *types.ResumeRecord, loc *i18n.Localizer) (*View, error) {
	return defaultRegistry.Render(rec, loc)
}

// Render normalizes a copy of rec and renders it with the selected renderer
func (reg *Registry) Render(rec *types.ResumeRecord, loc *i18n.Localizer) (*View, error) {
	if rec == nil {
		return nil, &RenderError{Message: "record is nil"}
	}
	if loc == nil {
		loc = i18n.New(i18n.DefaultLanguage)
	}
	normalized := rec.Clone()
	normalized.Normalize()
	return reg.Select(normalized.Layout).Render(normalized, loc)
}

package rendering

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/i18n"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>{{.Stylesheet}}</style>
</head>
<body>
<main class="preview">
{{.Body}}
</main>
</body>
</html>
`))

type pageData struct {
	Lang       string
	Title      string
	Stylesheet template.CSS
	Body       template.HTML
}

// Stylesheet returns the CSS shared by all layouts
func Stylesheet() (string, error) {
	b, err := templatesFS.ReadFile("templates/resume.css")
	if err != nil {
		return "", &TemplateError{Message: "failed to read stylesheet", Cause: err}
	}
	return string(b), nil
}

// RenderPage wraps a view in a complete HTML document. This page is the live
// document the export engine snapshots.
func RenderPage(view *View, loc *i18n.Localizer) (string, error) {
	if view == nil {
		return "", &RenderError{Message: "view is nil"}
	}
	css, err := Stylesheet()
	if err != nil {
		return "", err
	}
	if loc == nil {
		loc = i18n.New(i18n.DefaultLanguage)
	}

	var sb strings.Builder
	err = pageTemplate.Execute(&sb, pageData{
		Lang:       string(loc.Language()),
		Title:      fmt.Sprintf("%s - %s", loc.T(i18n.ResumeBuilder), view.Layout),
		Stylesheet: template.CSS(css), //nolint:gosec // embedded asset
		Body:       view.HTML,
	})
	if err != nil {
		return "", &TemplateError{Message: "failed to execute page template", Cause: err}
	}
	return sb.String(), nil
}

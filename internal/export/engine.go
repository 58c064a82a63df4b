// Package export snapshots the rendered resume out of the live document and
// prints the snapshot to PDF.
//
// The live document is never altered by an export: the engine works on a
// detached copy of the mount point, stages it in an off-screen container that
// is removed before Export returns, and hands a standalone HTML document to a
// Rasterizer.
package export

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/photo"
)

// StagingAttr marks the off-screen container while an export is in flight
const StagingAttr = "data-export-staging"

const stagingContainer = `<div ` + StagingAttr + `="true" style="position: absolute; left: -9999px; top: 0"></div>`

const stagingDocument = `<!DOCTYPE html>
<html lang="%s">
<head>
%s
<style>html, body { margin: 0; padding: 0; background-color: #ffffff; }</style>
</head>
<body>
%s
</body>
</html>
`

// Result describes a saved PDF
type Result struct {
	Filename string
	Path     string
	Bytes    int
}

// Engine exports the visual tree found in a live document. It keeps no state
// between calls; callers sharing one document must serialize their exports.
type Engine struct {
	rasterizer Rasterizer
	sink       Sink
	opts       Options
	logger     zerolog.Logger
}

// NewEngine creates an export engine. Zero option fields take their defaults.
func NewEngine(rasterizer Rasterizer, sink Sink, opts Options) *Engine {
	return &Engine{
		rasterizer: rasterizer,
		sink:       sink,
		opts:       opts.withDefaults(),
		logger:     logging.Component("export"),
	}
}

// Options returns the effective options
func (e *Engine) Options() Options {
	return e.opts
}

// ExportHTML parses page as the live document and exports it
func (e *Engine) ExportHTML(ctx context.Context, page, mountID, filename string) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, &Error{Stage: "parse", Message: "failed to parse document", Cause: err}
	}
	return e.Export(ctx, doc, mountID, filename)
}

// Export snapshots the element with id mountID and saves it as a PDF named
// filename (DefaultFilename when empty). A missing element is reported as a
// *TargetNotFoundError and nothing else happens.
func (e *Engine) Export(ctx context.Context, doc *goquery.Document, mountID, filename string) (*Result, error) {
	target := doc.Find(idSelector(mountID)).First()
	if target.Length() == 0 {
		e.logger.Warn().Str("mount_id", mountID).Msg("Export target not found")
		return nil, &TargetNotFoundError{MountID: mountID}
	}
	if filename == "" {
		filename = DefaultFilename
	}
	filename = SanitizeFilename(filename)
	done := logging.LogOperationStart(e.logger, "export")
	defer done()

	snapshot := target.Clone()
	applyPrintStyle(snapshot, e.opts)
	e.encodePhotos(snapshot)

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, &Error{Stage: "stage", Message: "document has no body"}
	}
	body.AppendHtml(stagingContainer)
	container := body.ChildrenFiltered("[" + StagingAttr + "]").Last()
	defer container.Remove()
	container.AppendSelection(snapshot)

	staging, err := stagingHTML(doc, container)
	if err != nil {
		return nil, &Error{Stage: "stage", Message: "failed to serialize snapshot", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
	defer cancel()

	pdf, err := e.rasterizer.Rasterize(ctx, staging, e.opts)
	if err != nil {
		e.logger.Error().Err(err).Str("filename", filename).Msg("Rasterization failed")
		return nil, &Error{Stage: "rasterize", Message: "failed to print PDF", Cause: err}
	}

	path, err := e.sink.Save(ctx, filename, pdf)
	if err != nil {
		e.logger.Error().Err(err).Str("filename", filename).Msg("Saving PDF failed")
		return nil, &Error{Stage: "save", Message: "failed to save PDF", Cause: err}
	}

	e.logger.Info().Str("filename", filename).Str("path", path).Int("bytes", len(pdf)).Msg("PDF exported")
	return &Result{Filename: filename, Path: path, Bytes: len(pdf)}, nil
}

// encodePhotos re-encodes embedded photos as high quality JPEG. A photo that
// cannot be decoded is printed as is.
func (e *Engine) encodePhotos(snapshot *goquery.Selection) {
	snapshot.Find(`img[data-role="photo"]`).Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || !strings.HasPrefix(src, "data:") {
			return
		}
		jpeg, err := photo.ToJPEG(src, e.opts.JPEGQuality, e.opts.PhotoMaxSide)
		if err != nil {
			e.logger.Warn().Err(err).Msg("Photo re-encoding failed, keeping original")
			return
		}
		img.SetAttr("src", jpeg)
	})
}

func applyPrintStyle(snapshot *goquery.Selection, opts Options) {
	style := mergeStyle(snapshot.AttrOr("style", ""), [][2]string{
		{"width", fmt.Sprintf("%dpx", opts.PageWidthPx)},
		{"background-color", "#ffffff"},
		{"padding", fmt.Sprintf("%dpx", opts.PaddingPx)},
	})
	snapshot.SetAttr("style", style)
}

// mergeStyle sets the given declarations on an inline style, replacing any
// existing declaration of the same property in place.
func mergeStyle(existing string, overrides [][2]string) string {
	type decl struct{ prop, value string }
	var decls []decl
	for _, part := range strings.Split(existing, ";") {
		prop, value, ok := strings.Cut(part, ":")
		prop = strings.ToLower(strings.TrimSpace(prop))
		if !ok || prop == "" {
			continue
		}
		decls = append(decls, decl{prop: prop, value: strings.TrimSpace(value)})
	}

	for _, o := range overrides {
		replaced := false
		for i := range decls {
			if decls[i].prop == o[0] {
				decls[i].value = o[1]
				replaced = true
			}
		}
		if !replaced {
			decls = append(decls, decl{prop: o[0], value: o[1]})
		}
	}

	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

func stagingHTML(doc *goquery.Document, container *goquery.Selection) (string, error) {
	head, err := doc.Find("head").First().Html()
	if err != nil {
		return "", err
	}
	body, err := container.Html()
	if err != nil {
		return "", err
	}
	lang := html.EscapeString(doc.Find("html").AttrOr("lang", ""))
	return fmt.Sprintf(stagingDocument, lang, head, body), nil
}

func idSelector(id string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(id)
	return `[id="` + escaped + `"]`
}

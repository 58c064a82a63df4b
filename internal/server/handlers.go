package server

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/theme"
	"github.com/jonathan/resume-builder/internal/types"
)

// LayoutResponse describes one declared layout
type LayoutResponse struct {
	ID          types.Layout `json:"id"`
	Implemented bool         `json:"implemented"`
	RendersAs   types.Layout `json:"renders_as"`
}

// ColorResponse describes one color scheme
type ColorResponse struct {
	ID         types.ColorSchemeID `json:"id"`
	Name       string              `json:"name"`
	Primary    string              `json:"primary"`
	Secondary  string              `json:"secondary"`
	Accent     string              `json:"accent"`
	Text       string              `json:"text"`
	Background string              `json:"background"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLayouts lists every declared layout and the renderer it resolves to
func (s *Server) handleLayouts(w http.ResponseWriter, _ *http.Request) {
	layouts := types.AllLayouts()
	resp := make([]LayoutResponse, 0, len(layouts))
	for _, l := range layouts {
		resp = append(resp, LayoutResponse{
			ID:          l,
			Implemented: l.Implemented(),
			RendersAs:   rendering.SelectRenderer(l).Layout(),
		})
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleColors lists the color schemes in selection order
func (s *Server) handleColors(w http.ResponseWriter, _ *http.Request) {
	ids := theme.AllIDs()
	resp := make([]ColorResponse, 0, len(ids))
	for _, id := range ids {
		cs := theme.Resolve(id)
		resp = append(resp, ColorResponse{
			ID:         id,
			Name:       theme.DisplayName(id),
			Primary:    cs.Primary,
			Secondary:  cs.Secondary,
			Accent:     cs.Accent,
			Text:       cs.Text,
			Background: cs.Background,
		})
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handlePreview renders the posted record as a complete HTML page
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	rec, loc, err := s.decodeRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	page, err := s.renderPage(rec, loc)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, page); err != nil {
		s.logger.Error().Err(err).Msg("Error writing preview")
	}
}

// handleExport renders the posted record and returns it as a PDF
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	rec, loc, err := s.decodeRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	page, err := s.renderPage(rec, loc)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	pdf, filename, err := s.exportPage(r.Context(), page, export.FilenameFor(rec))
	if err != nil {
		s.logger.Warn().Err(err).Msg("Export failed")
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		s.logger.Error().Err(err).Msg("Error writing PDF")
	}
}

// decodeRequest reads the record body and the ?lang= selector
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (*types.ResumeRecord, *i18n.Localizer, error) {
	lang := s.language
	if tag := r.URL.Query().Get("lang"); tag != "" {
		parsed, ok := i18n.ParseLanguage(tag)
		if !ok {
			return nil, nil, &i18n.UnsupportedLanguageError{Language: tag}
		}
		lang = parsed
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, err
	}
	if len(body) == 0 {
		return nil, nil, &ErrValidation{Field: "body", Message: "record is required"}
	}

	rec, err := ingestion.DecodeRecord(body, ingestion.FormatJSON)
	if err != nil {
		return nil, nil, err
	}
	return rec, i18n.New(lang), nil
}

func (s *Server) renderPage(rec *types.ResumeRecord, loc *i18n.Localizer) (string, error) {
	view, err := rendering.RenderRecord(rec, loc)
	if err != nil {
		return "", err
	}
	return rendering.RenderPage(view, loc)
}

// exportPage prints page to PDF. Exports run one at a time.
func (s *Server) exportPage(ctx context.Context, page, filename string) ([]byte, string, error) {
	if err := s.exportSem.Acquire(ctx, 1); err != nil {
		return nil, "", &ErrBusy{Cause: err}
	}
	defer s.exportSem.Release(1)

	sink := &responseSink{}
	engine := export.NewEngine(s.rasterizer, sink, s.exportOpts)
	res, err := engine.ExportHTML(ctx, page, s.mountID, filename)
	if err != nil {
		return nil, "", err
	}
	return sink.data, res.Filename, nil
}

// responseSink keeps the PDF in memory so it can be written to the response
type responseSink struct {
	data []byte
}

func (rs *responseSink) Save(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rs.data = append(rs.data[:0], data...)
	return export.SanitizeFilename(filename), nil
}

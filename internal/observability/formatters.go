// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/theme"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a new Printer that writes to the given writer. Color
// swatches are drawn only when out is a terminal.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, color: isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// PrintRecordSummary outputs a short overview of a resume record
func (p *Printer) PrintRecordSummary(rec *types.ResumeRecord, loc *i18n.Localizer) {
	if rec == nil {
		return
	}
	present := loc.T(i18n.Present)

	var sb strings.Builder
	name := rec.Personal.FullName
	if name == "" {
		name = loc.T(i18n.YourName)
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if rec.Personal.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", rec.Personal.Title))
	}
	sb.WriteString(fmt.Sprintf("Layout:   %s (%s)\n", rec.Layout, theme.DisplayName(rec.ColorScheme)))
	if rec.Personal.Photo != "" {
		sb.WriteString("Photo:    yes\n")
	}

	if len(rec.Work) > 0 {
		sb.WriteString(fmt.Sprintf("\n%s:\n", loc.T(i18n.WorkExperienceTitle)))
		count := min(len(rec.Work), maxItemsToShow)
		for i := 0; i < count; i++ {
			w := rec.Work[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%s)\n", w.Position, w.Company, w.DateRange(present)))
		}
		if len(rec.Work) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.Work)-maxItemsToShow))
		}
	}

	if len(rec.Education) > 0 {
		sb.WriteString(fmt.Sprintf("\n%s:\n", loc.T(i18n.EducationPreviewTitle)))
		count := min(len(rec.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := rec.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%s)\n", e.Degree, e.Institution, e.DateRange(present)))
		}
		if len(rec.Education) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.Education)-maxItemsToShow))
		}
	}

	if len(rec.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("\n%s: %s\n", loc.T(i18n.SkillsPreviewTitle), strings.Join(rec.Skills, ", ")))
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLayouts lists the declared layouts, marking those without their own renderer
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintLayouts(layouts []types.Layout, selected types.Layout) {
	for _, l := range layouts {
		marker := " "
		if l == selected {
			marker = "*"
		}
		line := fmt.Sprintf("%s %s", marker, l)
		if !l.Implemented() {
			line += fmt.Sprintf("  (renders as %s)", types.DefaultLayout)
		}
		fmt.Fprintln(p.out, line)
	}
}

// PrintColorSchemes lists every palette with its primary, secondary and accent colors
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintColorSchemes(selected types.ColorSchemeID) {
	for _, id := range theme.AllIDs() {
		cs := theme.Resolve(id)
		marker := " "
		if id == selected {
			marker = "*"
		}
		fmt.Fprintf(p.out, "%s %-8s %s %s %s\n", marker, id,
			p.swatch(cs.Primary), p.swatch(cs.Secondary), p.swatch(cs.Accent))
	}
}

func (p *Printer) swatch(hex string) string {
	if !p.color {
		return hex
	}
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
	return block + " " + hex
}

// PrintExportResult outputs where a PDF was written
func (p *Printer) PrintExportResult(res *export.Result) {
	if res == nil {
		return
	}
	content := fmt.Sprintf("File:  %s\nPath:  %s\nSize:  %s", res.Filename, res.Path, humanSize(res.Bytes))
	p.printBox("PDF EXPORTED", content)
}

func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}

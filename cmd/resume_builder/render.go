package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume record to an HTML page",
	Long:  "Renders a JSON, YAML or TOML resume record with the selected layout and color scheme and writes the complete HTML page.",
	RunE:  runRender,
}

var (
	renderRecordFile string
	renderLayout     string
	renderColor      string
	renderOutputFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderRecordFile, "record", "r", "", "Path to the resume record (json, yaml or toml)")
	renderCmd.Flags().StringVar(&renderLayout, "layout", "", "Layout override (modern, classic, minimal, ...)")
	renderCmd.Flags().StringVar(&renderColor, "color", "", "Color scheme override (blue, green, ...)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to the output HTML file (stdout when empty)")

	_ = renderCmd.MarkFlagRequired("record")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	rec, err := loadRecord(renderRecordFile, renderLayout, renderColor)
	if err != nil {
		return err
	}

	page, err := renderPage(rec, localizer())
	if err != nil {
		return err
	}

	if renderOutputFile == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), page)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(renderOutputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(renderOutputFile, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s layout to %s\n", rendering.SelectRenderer(rec.Layout).Layout(), renderOutputFile)
	return nil
}

// loadRecord reads a record file and applies the layout and color overrides
// given on the command line. Unknown overrides fall back to the defaults.
func loadRecord(path, layout, color string) (*types.ResumeRecord, error) {
	if path == "" {
		return nil, fmt.Errorf("--record is required")
	}
	rec, err := ingestion.LoadRecord(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	if layout != "" {
		rec.Layout = types.ParseLayout(layout)
	}
	if color != "" {
		rec.ColorScheme = types.ParseColorScheme(color)
	}
	return rec, nil
}

func renderPage(rec *types.ResumeRecord, loc *i18n.Localizer) (string, error) {
	view, err := rendering.RenderRecord(rec, loc)
	if err != nil {
		return "", err
	}
	return rendering.RenderPage(view, loc)
}

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume record to PDF",
	Long: `Renders a resume record and prints it to an A4 PDF with headless Chrome.
The file is named after the person's full name unless --filename is given.`,
	RunE: runExport,
}

var (
	exportRecordFile string
	exportLayout     string
	exportColor      string
	exportOutputDir  string
	exportFilename   string
)

func init() {
	exportCmd.Flags().StringVarP(&exportRecordFile, "record", "r", "", "Path to the resume record (json, yaml or toml)")
	exportCmd.Flags().StringVar(&exportLayout, "layout", "", "Layout override")
	exportCmd.Flags().StringVar(&exportColor, "color", "", "Color scheme override")
	exportCmd.Flags().StringVarP(&exportOutputDir, "out", "o", "", "Output directory (defaults to output_dir from config)")
	exportCmd.Flags().StringVar(&exportFilename, "filename", "", "PDF file name (defaults to \"<full name>.pdf\")")

	_ = exportCmd.MarkFlagRequired("record")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	rec, err := loadRecord(exportRecordFile, exportLayout, exportColor)
	if err != nil {
		return err
	}

	cfg := settings
	if exportOutputDir != "" {
		cfg.OutputDir = exportOutputDir
	}

	res, err := exportRecord(cmd.Context(), rec, localizer(), cfg, export.NewChromeRasterizer(), exportFilename)
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintExportResult(res)
	return nil
}

// exportOptions maps the configuration onto export options
func exportOptions(cfg config.Config) export.Options {
	opts := export.DefaultOptions()
	opts.ChromePath = cfg.ChromePath
	if t := cfg.ExportTimeout(); t > 0 {
		opts.Timeout = t
	}
	return opts
}

// exportRecord renders rec and saves it as a PDF under cfg.OutputDir
func exportRecord(ctx context.Context, rec *types.ResumeRecord, loc *i18n.Localizer, cfg config.Config, r export.Rasterizer, filename string) (*export.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	page, err := renderPage(rec, loc)
	if err != nil {
		return nil, err
	}
	if filename == "" {
		filename = export.FilenameFor(rec)
	}
	engine := export.NewEngine(r, export.FileSink{Dir: cfg.OutputDir}, exportOptions(cfg))
	return engine.ExportHTML(ctx, page, cfg.MountID, filename)
}

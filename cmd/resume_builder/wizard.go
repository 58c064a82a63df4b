package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Fill in a resume step by step",
	Long: `Walks through the personal, work, education, skills and template steps
interactively. Start from an existing record with --record, save the result
with --save, and print it to PDF with --export.`,
	RunE: runWizard,
}

var (
	wizardRecordFile string
	wizardSaveFile   string
	wizardExport     bool
)

func init() {
	wizardCmd.Flags().StringVarP(&wizardRecordFile, "record", "r", "", "Existing record to start from")
	wizardCmd.Flags().StringVarP(&wizardSaveFile, "save", "s", "", "Where to save the finished record (json, yaml or toml)")
	wizardCmd.Flags().BoolVar(&wizardExport, "export", false, "Export the finished resume to PDF")

	rootCmd.AddCommand(wizardCmd)
}

func runWizard(cmd *cobra.Command, _ []string) error {
	var start *types.ResumeRecord
	if wizardRecordFile != "" {
		rec, err := ingestion.LoadRecord(wizardRecordFile)
		if err != nil {
			return fmt.Errorf("failed to load record: %w", err)
		}
		start = rec
	} else {
		start = types.NewResumeRecord()
		start.Layout = types.ParseLayout(settings.Layout)
		start.ColorScheme = types.ParseColorScheme(settings.ColorScheme)
	}

	loc := localizer()
	w := wizard.New(wizard.NewSurveyPrompter(), editor.NewController(start), loc)
	rec, err := w.Run(cmd.Context())
	if errors.Is(err, wizard.ErrAborted) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Aborted, nothing saved")
		return nil
	}
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRecordSummary(rec, loc)

	if wizardSaveFile != "" {
		if err := ingestion.WriteRecord(wizardSaveFile, rec); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved record to %s\n", wizardSaveFile)
	}

	if wizardExport {
		res, err := exportRecord(cmd.Context(), rec, loc, settings, export.NewChromeRasterizer(), "")
		if err != nil {
			return err
		}
		printer.PrintExportResult(res)
	}
	return nil
}

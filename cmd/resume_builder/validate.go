package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume record against the record schema",
	Long: `Validates a JSON, YAML or TOML resume record against the embedded JSON Schema
and reports every violation. With --schema, a JSON document is checked against
the given schema file instead.`,
	RunE: runValidate,
}

var (
	validateRecordFile string
	validateSchemaFile string
)

func init() {
	validateCmd.Flags().StringVarP(&validateRecordFile, "record", "r", "", "Path to the resume record")
	validateCmd.Flags().StringVar(&validateSchemaFile, "schema", "", "Path to a JSON Schema file (JSON documents only)")
	_ = validateCmd.MarkFlagRequired("record")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	if validateSchemaFile != "" {
		err = schemas.ValidateJSON(validateSchemaFile, validateRecordFile)
	} else {
		_, err = ingestion.LoadRecord(validateRecordFile)
	}
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed: %v\n", err)
		return fmt.Errorf("validation failed")
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}

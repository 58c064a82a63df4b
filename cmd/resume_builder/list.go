package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the available layouts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		observability.NewPrinter(cmd.OutOrStdout()).PrintLayouts(types.AllLayouts(), types.ParseLayout(settings.Layout))
		return nil
	},
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the available color schemes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		observability.NewPrinter(cmd.OutOrStdout()).PrintColorSchemes(types.ParseColorScheme(settings.ColorScheme))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(colorsCmd)
}

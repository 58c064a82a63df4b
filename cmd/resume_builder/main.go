// Package main provides the entry point for the resume builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/logging"
)

var (
	rootConfigPath string
	rootVerbose    int
	rootLang       string

	// settings is resolved once per invocation in PersistentPreRunE
	settings config.Config
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Build, preview and export resumes",
	Long: `Resume Builder renders a resume record with one of several layouts and color
schemes, and exports the rendered resume to an A4 PDF.

Configuration can be loaded from a JSON, YAML or TOML file using --config. Environment
variables (CHROME_PATH, RESUME_LANG, PORT, also read from .env) override the file,
and command-line flags override both.`,
	SilenceUsage:      true,
	PersistentPreRunE: resolveSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to a JSON, YAML or TOML config file")
	rootCmd.PersistentFlags().CountVarP(&rootVerbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")
	rootCmd.PersistentFlags().StringVar(&rootLang, "lang", "", "Interface language (pt-BR or en-US)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resolveSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := buildSettings(rootConfigPath, os.Getenv)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("lang") {
		cfg.Language = rootLang
	}
	if cfg.Verbose && rootVerbose == 0 {
		rootVerbose = 1
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Setup(rootVerbose, os.Stderr)
	settings = cfg
	return nil
}

// buildSettings layers defaults, the config file and the environment
func buildSettings(path string, getenv func(string) string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return config.Config{}, err
	}
	return cfg.MergeWithDefaults(config.Defaults()), nil
}

// localizer returns the Localizer for the resolved language
func localizer() *i18n.Localizer {
	lang, ok := i18n.ParseLanguage(settings.Language)
	if !ok {
		lang = i18n.DefaultLanguage
	}
	return i18n.New(lang)
}

// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON,
// YAML or TOML file. All fields are optional; missing values use defaults or
// must be provided via CLI flags.
type Config struct {
	// Presentation
	Language    string `json:"language,omitempty" yaml:"language,omitempty" toml:"language,omitempty" validate:"omitempty,language"`
	Layout      string `json:"layout,omitempty" yaml:"layout,omitempty" toml:"layout,omitempty" validate:"omitempty,layout"`
	ColorScheme string `json:"color_scheme,omitempty" yaml:"color_scheme,omitempty" toml:"color_scheme,omitempty" validate:"omitempty,color_scheme"`

	// Export
	OutputDir            string `json:"output_dir,omitempty" yaml:"output_dir,omitempty" toml:"output_dir,omitempty"`
	ChromePath           string `json:"chrome_path,omitempty" yaml:"chrome_path,omitempty" toml:"chrome_path,omitempty"`
	ExportTimeoutSeconds int    `json:"export_timeout_seconds,omitempty" yaml:"export_timeout_seconds,omitempty" toml:"export_timeout_seconds,omitempty" validate:"gte=0,lte=600"`
	MountID              string `json:"mount_id,omitempty" yaml:"mount_id,omitempty" toml:"mount_id,omitempty" validate:"omitempty,excludesall= #."`

	// Server
	Port int `json:"port,omitempty" yaml:"port,omitempty" toml:"port,omitempty" validate:"gte=0,lte=65535"`

	// Behavior
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty" toml:"verbose,omitempty"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Language:             string(i18n.DefaultLanguage),
		Layout:               string(types.DefaultLayout),
		ColorScheme:          string(types.DefaultColorScheme),
		OutputDir:            ".",
		ExportTimeoutSeconds: 60,
		MountID:              rendering.MountID,
		Port:                 8080,
	}
}

// LoadConfig loads configuration from a JSON, YAML or TOML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		_, ok := i18n.ParseLanguage(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("layout", func(fl validator.FieldLevel) bool {
		return types.Layout(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("color_scheme", func(fl validator.FieldLevel) bool {
		return types.ColorSchemeID(fl.Field().String()).Valid()
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	err := newValidator().Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config error: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("'%s' %s", fe.Field(), describe(fe)))
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "language":
		return fmt.Sprintf("must be one of %v, got %q", i18n.Languages(), fe.Value())
	case "layout":
		return fmt.Sprintf("must be one of %v, got %q", types.AllLayouts(), fe.Value())
	case "color_scheme":
		return fmt.Sprintf("must be one of %v, got %q", types.AllColorSchemes(), fe.Value())
	case "gte":
		return "must be non-negative"
	case "lte":
		return "must be at most " + fe.Param()
	case "excludesall":
		return "must not contain spaces, '#' or '.'"
	}
	return "is invalid (" + fe.Tag() + ")"
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Language == "" {
		result.Language = defaults.Language
	}
	if result.Layout == "" {
		result.Layout = defaults.Layout
	}
	if result.ColorScheme == "" {
		result.ColorScheme = defaults.ColorScheme
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.MountID == "" {
		result.MountID = defaults.MountID
	}

	// Int fields: use default if zero
	if result.ExportTimeoutSeconds == 0 {
		result.ExportTimeoutSeconds = defaults.ExportTimeoutSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from CHROME_PATH, RESUME_LANG and PORT.
// getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("CHROME_PATH"); v != "" {
		c.ChromePath = v
	}
	if v := getenv("RESUME_LANG"); v != "" {
		c.Language = v
	}
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: PORT must be a number, got %q", v)
		}
		c.Port = port
	}
	return nil
}

// ExportTimeout returns the export timeout as a duration
func (c *Config) ExportTimeout() time.Duration {
	return time.Duration(c.ExportTimeoutSeconds) * time.Second
}

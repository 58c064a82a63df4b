// Package ingestion loads resume records from JSON, YAML or TOML files,
// validates them against the record schema and cleans their free text.
package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// Format is a record file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// UnsupportedFormatError is returned for file extensions with no decoder
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported record format %q (want .json, .yaml, .yml or .toml)", filepath.Ext(e.Path))
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", &UnsupportedFormatError{Path: path}
}

// LoadRecord reads, validates and normalizes a record file
func LoadRecord(path string) (*types.ResumeRecord, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("record file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	return DecodeRecord(data, format)
}

// DecodeRecord decodes a record in the given format. YAML and TOML documents
// are converted to JSON first so every format is checked against the same
// schema. The result is sanitized and normalized.
func DecodeRecord(data []byte, format Format) (*types.ResumeRecord, error) {
	canonical, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateRecord(canonical); err != nil {
		return nil, err
	}

	rec := types.NewResumeRecord()
	if err := json.Unmarshal(canonical, rec); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	SanitizeRecord(rec)
	rec.Normalize()
	return rec, nil
}

func toJSON(data []byte, format Format) ([]byte, error) {
	var doc map[string]interface{}
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML record: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML record: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown record format %q", format)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s record to JSON: %w", format, err)
	}
	return out, nil
}

// SanitizeRecord strips markup from every free-text field. The photo is left
// alone; the schema already restricts it to image data URIs.
func SanitizeRecord(rec *types.ResumeRecord) {
	p := &rec.Personal
	p.FullName = CleanLine(p.FullName)
	p.Email = CleanLine(p.Email)
	p.Phone = CleanLine(p.Phone)
	p.Address = CleanLine(p.Address)
	p.Title = CleanLine(p.Title)
	p.Summary = CleanText(p.Summary)

	for i := range rec.Work {
		w := &rec.Work[i]
		w.Company = CleanLine(w.Company)
		w.Position = CleanLine(w.Position)
		w.Description = CleanText(w.Description)
	}
	for i := range rec.Education {
		e := &rec.Education[i]
		e.Institution = CleanLine(e.Institution)
		e.Degree = CleanLine(e.Degree)
		e.Field = CleanLine(e.Field)
		e.Description = CleanText(e.Description)
	}
	for i, s := range rec.Skills {
		rec.Skills[i] = CleanLine(s)
	}
}

// EncodeRecord serializes a record in the given format
func EncodeRecord(rec *types.ResumeRecord, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		return toml.Marshal(rec)
	}
	return nil, fmt.Errorf("unknown record format %q", format)
}

// WriteRecord saves a record, choosing the format from the file extension
func WriteRecord(path string, rec *types.ResumeRecord) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := EncodeRecord(rec, format)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write record file: %w", err)
	}
	return nil
}

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultFilename is used when no filename is given
const DefaultFilename = "resume.pdf"

// Sink receives the finished PDF
type Sink interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
}

// FileSink writes PDFs into a directory
type FileSink struct {
	Dir string
}

// Save writes data to Dir/filename and returns the written path. The
// filename is reduced to its base name so it can never escape Dir.
func (s FileSink) Save(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, SanitizeFilename(filename))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}
	return path, nil
}

// FilenameFor derives the download name from the person's full name,
// "resume.pdf" when the name is empty. Path separators in the name become
// dashes so no part of the name is lost.
func FilenameFor(rec *types.ResumeRecord) string {
	if rec == nil || strings.TrimSpace(rec.Personal.FullName) == "" {
		return DefaultFilename
	}
	name := strings.NewReplacer("/", "-", `\`, "-").Replace(strings.TrimSpace(rec.Personal.FullName))
	return SanitizeFilename(name + ".pdf")
}

// SanitizeFilename strips directories and characters that are not portable
// in file names, and makes sure the result ends in .pdf.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f:
			return -1
		case strings.ContainsRune(`:*?"<>|`, r):
			return '_'
		}
		return r
	}, name)
	name = strings.TrimSpace(strings.TrimLeft(name, "."))

	base := strings.TrimSpace(strings.TrimSuffix(name, filepath.Ext(name)))
	if base == "" {
		return DefaultFilename
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return name + ".pdf"
	}
	return name
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/export"
)

const sampleRecord = `{
	"personal": {"full_name": "Ana Silva", "title": "Engineer", "email": "ana@example.com"},
	"work": [{"company": "Acme", "position": "Engineer", "start_date": "2020-01", "is_current": true}],
	"education": [{"institution": "USP", "degree": "BSc", "field": "Computer Science", "start_date": "2014-02", "end_date": "2018-12"}],
	"skills": ["Go", "SQL"],
	"layout": "classic",
	"color_scheme": "green"
}`

// getBinaryPath returns the path to the resume_builder binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_builder"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_builder ./cmd/resume_builder'", binaryPath)
	}

	return binaryPath
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// executeRoot runs the root command in process and returns its stdout
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

type fakeRasterizer struct {
	calls int
	last  string
}

func (f *fakeRasterizer) Rasterize(_ context.Context, html string, _ export.Options) ([]byte, error) {
	f.calls++
	f.last = html
	return []byte("%PDF-1.4 fake"), nil
}

package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ana Silva.pdf", "Ana Silva.pdf"},
		{"Ana Silva", "Ana Silva.pdf"},
		{"../../etc/passwd", "passwd.pdf"},
		{`C:\Users\ana\cv.PDF`, "cv.PDF"},
		{`what?<now>.pdf`, "what__now_.pdf"},
		{"", DefaultFilename},
		{".pdf", "pdf.pdf"},
		{"dir/ cv.pdf", "cv.pdf"},
		{"João Silva", "João Silva.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestFilenameFor(t *testing.T) {
	rec := types.NewResumeRecord()
	assert.Equal(t, "resume.pdf", FilenameFor(rec))
	assert.Equal(t, "resume.pdf", FilenameFor(nil))

	tests := []struct {
		name string
		want string
	}{
		{"  Ana Silva ", "Ana Silva.pdf"},
		{"Ana Silva / Souza", "Ana Silva - Souza.pdf"},
		{"AC/DC Fan", "AC-DC Fan.pdf"},
		{`Ana\Souza`, "Ana-Souza.pdf"},
		{"../Ana", "-Ana.pdf"},
		{"Ana: CV", "Ana_ CV.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec.Personal.FullName = tt.name
			assert.Equal(t, tt.want, FilenameFor(rec))
		})
	}
}

func TestFileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	sink := FileSink{Dir: dir}

	path, err := sink.Save(context.Background(), "../escape.pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
}

func TestFileSink_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FileSink{Dir: t.TempDir()}.Save(ctx, "resume.pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, context.Canceled)
}

package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Ana Silva", "Ana Silva"},
		{"tags removed", "<b>Senior</b> <i>Engineer</i>", "Senior Engineer"},
		{"script content dropped", `<script>alert("x")</script>Ana`, "Ana"},
		{"entities decoded once", "R&amp;D &lt;team&gt;", "R&D <team>"},
		{"bare ampersand kept", "Tom & Jerry", "Tom & Jerry"},
		{"comparison kept", "latency < 10ms", "latency < 10ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkup(tt.input))
		})
	}
}

func TestCleanLine(t *testing.T) {
	assert.Equal(t, "Software Engineer", CleanLine("  Software \t  Engineer \n"))
	assert.Equal(t, "Acme Corp", CleanLine("<a href='x'>Acme</a>   Corp"))
	assert.Equal(t, "", CleanLine("   "))
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n  - Nested   item\n* Item 3"
	result := CleanText(input)

	assert.Equal(t, "- Item 1\n  - Nested item\n* Item 3", result)
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with    multiple    spaces"
	result := CleanText(input)

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_StripsMarkupKeepsLines(t *testing.T) {
	input := "<p>Led the <strong>payments</strong> team</p>\n- Shipped <em>v2</em>"
	result := CleanText(input)

	assert.Equal(t, "Led the payments team\n- Shipped v2", result)
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	input := "Experiência com émojis 🚀 e acentuação"
	assert.Equal(t, input, CleanText(input))
}

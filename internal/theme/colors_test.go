package theme

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestResolve_AllSchemes(t *testing.T) {
	for _, id := range AllIDs() {
		t.Run(string(id), func(t *testing.T) {
			cs := Resolve(id)
			assert.Equal(t, id, cs.ID)
			for _, c := range []string{cs.Primary, cs.Secondary, cs.Accent, cs.Text, cs.Background} {
				assert.Regexp(t, `^#[0-9a-f]{6}$`, c)
			}
			assert.NotEmpty(t, DisplayName(id))
		})
	}
}

func TestResolve_ExactValues(t *testing.T) {
	green := Resolve(types.ColorGreen)
	assert.Equal(t, "#15803d", green.Primary)
	assert.Equal(t, "#22c55e", green.Secondary)
	assert.Equal(t, "#86efac", green.Accent)
	assert.Equal(t, "#1e293b", green.Text)
	assert.Equal(t, "#f8fafc", green.Background)
}

func TestResolve_UnknownFallsBackToBlue(t *testing.T) {
	cs := Resolve(types.ColorSchemeID("magenta"))
	assert.Equal(t, types.ColorBlue, cs.ID)
	assert.Equal(t, "#1e40af", cs.Primary)
	assert.Equal(t, "Blue", DisplayName("magenta"))
}

func TestAllIDs_Order(t *testing.T) {
	ids := AllIDs()
	assert.Len(t, ids, 8)
	assert.Equal(t, types.ColorBlue, ids[0])
	assert.Equal(t, types.ColorPink, ids[7])
}

func TestTint(t *testing.T) {
	assert.Equal(t, "#1e40af1a", Tint("#1e40af", "1a"))
	assert.Equal(t, "white", Tint("white", "1a"))
}

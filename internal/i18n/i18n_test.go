package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToPortuguese(t *testing.T) {
	loc := New("fr-FR")
	assert.Equal(t, PortugueseBR, loc.Language())
	assert.Equal(t, "Seu Nome", loc.T(YourName))
}

func TestChangeLanguage(t *testing.T) {
	loc := New(PortugueseBR)

	require.NoError(t, loc.ChangeLanguage(EnglishUS))
	assert.Equal(t, "Present", loc.T(Present))
	assert.Equal(t, "Work Experience", loc.T(WorkExperienceTitle))

	err := loc.ChangeLanguage("de-DE")
	require.Error(t, err)
	var langErr *UnsupportedLanguageError
	assert.ErrorAs(t, err, &langErr)
	assert.Equal(t, EnglishUS, loc.Language(), "failed switch keeps the active language")
}

func TestT_MissingKeyFallsBackToKey(t *testing.T) {
	loc := New(EnglishUS)
	assert.Equal(t, "doesNotExist", loc.T(Key("doesNotExist")))
}

func TestCatalogs_HaveSameKeys(t *testing.T) {
	for key := range enUS {
		_, ok := ptBR[key]
		assert.True(t, ok, "pt-BR is missing %q", key)
	}
	for key := range ptBR {
		_, ok := enUS[key]
		assert.True(t, ok, "en-US is missing %q", key)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"pt-BR", PortugueseBR, true},
		{"pt_br", PortugueseBR, true},
		{"en", EnglishUS, true},
		{" EN-US ", EnglishUS, true},
		{"es", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLanguage(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

// Package i18n provides the localized strings used by renderers, the wizard and the CLI.
package i18n

import (
	"fmt"
	"strings"
)

// Language identifies a supported UI language
type Language string

const (
	PortugueseBR Language = "pt-BR"
	EnglishUS    Language = "en-US"
)

// DefaultLanguage is the language a Localizer starts with
const DefaultLanguage = PortugueseBR

// fallbackLanguage is consulted when the active catalog lacks a key
const fallbackLanguage = EnglishUS

// Languages returns the supported languages in display order
func Languages() []Language {
	return []Language{PortugueseBR, EnglishUS}
}

// ParseLanguage resolves a language tag, accepting "pt", "en" and
// case/underscore variants. ok is false when the tag is not supported.
func ParseLanguage(tag string) (Language, bool) {
	t := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	switch {
	case t == "pt-br" || t == "pt":
		return PortugueseBR, true
	case t == "en-us" || t == "en":
		return EnglishUS, true
	}
	return "", false
}

// UnsupportedLanguageError is returned when switching to an unknown language
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %s", e.Language)
}

// Localizer resolves string keys for the active language. It is created once
// per session (or per request) and passed to every component that needs text.
type Localizer struct {
	lang Language
}

// New creates a Localizer for lang, using DefaultLanguage when lang is unsupported
func New(lang Language) *Localizer {
	if _, ok := catalogs[lang]; !ok {
		lang = DefaultLanguage
	}
	return &Localizer{lang: lang}
}

// Language returns the active language
func (l *Localizer) Language() Language {
	return l.lang
}

// ChangeLanguage switches the active language
func (l *Localizer) ChangeLanguage(lang Language) error {
	if _, ok := catalogs[lang]; !ok {
		return &UnsupportedLanguageError{Language: string(lang)}
	}
	l.lang = lang
	return nil
}

// T returns the text for key in the active language. Missing keys fall back to
// English and finally to the key itself.
func (l *Localizer) T(key Key) string {
	if s, ok := catalogs[l.lang][key]; ok {
		return s
	}
	if s, ok := catalogs[fallbackLanguage][key]; ok {
		return s
	}
	return string(key)
}

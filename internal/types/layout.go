// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Layout identifies one of the declared resume layouts
type Layout string

const (
	LayoutModern       Layout = "modern"
	LayoutClassic      Layout = "classic"
	LayoutMinimal      Layout = "minimal"
	LayoutProfessional Layout = "professional"
	LayoutCreative     Layout = "creative"
	LayoutElegant      Layout = "elegant"
	LayoutCorporate    Layout = "corporate"
	LayoutSimple       Layout = "simple"
)

// DefaultLayout is used whenever a layout cannot be resolved
const DefaultLayout = LayoutModern

var allLayouts = []Layout{
	LayoutModern,
	LayoutClassic,
	LayoutMinimal,
	LayoutProfessional,
	LayoutCreative,
	LayoutElegant,
	LayoutCorporate,
	LayoutSimple,
}

// implementedLayouts are the layouts that have a dedicated renderer.
// elegant, corporate and simple are declared but render with the default layout.
var implementedLayouts = map[Layout]bool{
	LayoutModern:       true,
	LayoutClassic:      true,
	LayoutMinimal:      true,
	LayoutProfessional: true,
	LayoutCreative:     true,
}

// AllLayouts returns every declared layout in selection order
func AllLayouts() []Layout {
	out := make([]Layout, len(allLayouts))
	copy(out, allLayouts)
	return out
}

// Valid reports whether l is a member of the declared enumeration
func (l Layout) Valid() bool {
	for _, candidate := range allLayouts {
		if candidate == l {
			return true
		}
	}
	return false
}

// Implemented reports whether l has its own renderer
func (l Layout) Implemented() bool {
	return implementedLayouts[l]
}

// ParseLayout converts a string into a Layout, falling back to DefaultLayout
func ParseLayout(s string) Layout {
	l := Layout(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return DefaultLayout
	}
	return l
}

// ColorSchemeID identifies one of the fixed color palettes
type ColorSchemeID string

const (
	ColorBlue   ColorSchemeID = "blue"
	ColorGreen  ColorSchemeID = "green"
	ColorPurple ColorSchemeID = "purple"
	ColorRed    ColorSchemeID = "red"
	ColorOrange ColorSchemeID = "orange"
	ColorTeal   ColorSchemeID = "teal"
	ColorGray   ColorSchemeID = "gray"
	ColorPink   ColorSchemeID = "pink"
)

// DefaultColorScheme is used whenever a color scheme cannot be resolved
const DefaultColorScheme = ColorBlue

var allColorSchemes = []ColorSchemeID{
	ColorBlue,
	ColorGreen,
	ColorPurple,
	ColorRed,
	ColorOrange,
	ColorTeal,
	ColorGray,
	ColorPink,
}

// AllColorSchemes returns every color scheme id in selection order
func AllColorSchemes() []ColorSchemeID {
	out := make([]ColorSchemeID, len(allColorSchemes))
	copy(out, allColorSchemes)
	return out
}

// Valid reports whether c is a member of the declared enumeration
func (c ColorSchemeID) Valid() bool {
	for _, candidate := range allColorSchemes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseColorScheme converts a string into a ColorSchemeID, falling back to DefaultColorScheme
func ParseColorScheme(s string) ColorSchemeID {
	c := ColorSchemeID(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return DefaultColorScheme
	}
	return c
}

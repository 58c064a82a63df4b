// Package theme holds the fixed color palettes applied by the resume layouts.
package theme

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// ColorScheme is an immutable five-color palette
type ColorScheme struct {
	ID         types.ColorSchemeID
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	Background string
}

const (
	textColor       = "#1e293b"
	backgroundColor = "#f8fafc"
)

var registry = map[types.ColorSchemeID]ColorScheme{
	types.ColorBlue:   {ID: types.ColorBlue, Primary: "#1e40af", Secondary: "#3b82f6", Accent: "#93c5fd", Text: textColor, Background: backgroundColor},
	types.ColorGreen:  {ID: types.ColorGreen, Primary: "#15803d", Secondary: "#22c55e", Accent: "#86efac", Text: textColor, Background: backgroundColor},
	types.ColorPurple: {ID: types.ColorPurple, Primary: "#7e22ce", Secondary: "#a855f7", Accent: "#d8b4fe", Text: textColor, Background: backgroundColor},
	types.ColorRed:    {ID: types.ColorRed, Primary: "#b91c1c", Secondary: "#ef4444", Accent: "#fca5a5", Text: textColor, Background: backgroundColor},
	types.ColorOrange: {ID: types.ColorOrange, Primary: "#c2410c", Secondary: "#f97316", Accent: "#fdba74", Text: textColor, Background: backgroundColor},
	types.ColorTeal:   {ID: types.ColorTeal, Primary: "#0f766e", Secondary: "#14b8a6", Accent: "#5eead4", Text: textColor, Background: backgroundColor},
	types.ColorGray:   {ID: types.ColorGray, Primary: "#475569", Secondary: "#94a3b8", Accent: "#cbd5e1", Text: textColor, Background: backgroundColor},
	types.ColorPink:   {ID: types.ColorPink, Primary: "#be185d", Secondary: "#ec4899", Accent: "#f9a8d4", Text: textColor, Background: backgroundColor},
}

var displayNames = map[types.ColorSchemeID]string{
	types.ColorBlue:   "Blue",
	types.ColorGreen:  "Green",
	types.ColorPurple: "Purple",
	types.ColorRed:    "Red",
	types.ColorOrange: "Orange",
	types.ColorTeal:   "Teal",
	types.ColorGray:   "Gray",
	types.ColorPink:   "Pink",
}

// Resolve returns the palette for id. Ids outside the enumeration resolve to
// the default scheme, so the function never fails.
func Resolve(id types.ColorSchemeID) ColorScheme {
	if cs, ok := registry[id]; ok {
		return cs
	}
	return registry[types.DefaultColorScheme]
}

// DisplayName returns a human readable name for id
func DisplayName(id types.ColorSchemeID) string {
	if name, ok := displayNames[id]; ok {
		return name
	}
	return displayNames[types.DefaultColorScheme]
}

// AllIDs returns the scheme ids in selection order
func AllIDs() []types.ColorSchemeID {
	return types.AllColorSchemes()
}

// Tint appends a two-digit hex alpha to a #rrggbb color, producing the light
// panel backgrounds used by the layouts (e.g. Tint("#1e40af", "1a")).
func Tint(hex, alpha string) string {
	if len(hex) != 7 || !strings.HasPrefix(hex, "#") {
		return hex
	}
	return hex + alpha
}

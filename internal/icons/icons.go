// Package icons provides the icon-name to vector-path capability consumed by
// the presentation layer. The resolution engine itself only canonicalizes and
// passes icon names through; path lookup is an injected capability so tests
// and hosts can swap the icon set.
package icons

import (
	"strings"

	"golang.org/x/text/cases"
)

// Path is SVG-style path data for a 24x24 viewbox.
type Path string

// Fallback is drawn for icon names no set recognizes: a plain outlined square
// that makes the missing icon visible without failing the render.
const Fallback Path = "M3 3h18v18H3z"

// Lookup resolves a canonical icon name to path data.
type Lookup interface {
	// Path returns the path for a canonical name, and whether it was found.
	Path(name string) (Path, bool)
}

// folder performs Unicode case folding, so lookups are insensitive to the
// casing conventions of the authoring tool.
var folder = cases.Fold()

// Canonical normalizes an icon name for lookup: trimmed, case-folded, with
// spaces and underscores unified to hyphens.
func Canonical(name string) string {
	name = folder.String(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	return strings.ReplaceAll(name, "_", "-")
}

// Resolve canonicalizes the name, consults the set, and falls back to the
// placeholder square for unknown names.
func Resolve(l Lookup, name string) Path {
	if p, ok := l.Path(Canonical(name)); ok {
		return p
	}
	return Fallback
}

// Set is a plain map-backed Lookup.
type Set map[string]Path

// Path implements Lookup.
func (s Set) Path(name string) (Path, bool) {
	p, ok := s[name]
	return p, ok
}

// Default returns the built-in icon set covering the names wireframe
// documents most commonly use.
func Default() Set {
	return Set{
		"arrow-left":  "M20 11H7.8l5.6-5.6L12 4l-8 8 8 8 1.4-1.4L7.8 13H20z",
		"arrow-right": "M4 11h12.2l-5.6-5.6L12 4l8 8-8 8-1.4-1.4 5.6-5.6H4z",
		"check":       "M9 16.2 4.8 12l-1.4 1.4L9 19 21 7l-1.4-1.4z",
		"close":       "M19 6.4 17.6 5 12 10.6 6.4 5 5 6.4 10.6 12 5 17.6 6.4 19 12 13.4 17.6 19 19 17.6 13.4 12z",
		"gear":        "M12 8a4 4 0 1 0 0 8 4 4 0 0 0 0-8zm8.9 4.9.1-.9-.1-.9 2-1.6-2-3.4-2.4 1a7 7 0 0 0-1.5-.9L16.6 4h-4l-.4 2.2a7 7 0 0 0-1.5.9l-2.4-1-2 3.4 2 1.6-.1.9.1.9-2 1.6 2 3.4 2.4-1c.5.4 1 .7 1.5.9l.4 2.2h4l.4-2.2c.5-.2 1-.5 1.5-.9l2.4 1 2-3.4z",
		"home":        "M12 3 2 12h3v8h6v-6h2v6h6v-8h3z",
		"menu":        "M3 6h18v2H3zm0 5h18v2H3zm0 5h18v2H3z",
		"search":      "M15.5 14h-.8l-.3-.3a6.5 6.5 0 1 0-.7.7l.3.3v.8l5 5 1.5-1.5zm-6 0a4.5 4.5 0 1 1 0-9 4.5 4.5 0 0 1 0 9z",
		"star":        "m12 17.3 6.2 3.7-1.6-7 5.4-4.7-7.2-.6L12 2 9.2 8.7l-7.2.6 5.4 4.7-1.6 7z",
		"user":        "M12 12a4 4 0 1 0 0-8 4 4 0 0 0 0 8zm0 2c-2.7 0-8 1.3-8 4v2h16v-2c0-2.7-5.3-4-8-4z",
	}
}

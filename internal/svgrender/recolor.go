package svgrender

import (
	"fmt"
	"image/color"
	"strings"
)

// Recolor rewrites the value of every fill="…" and stroke="…"
// attribute in markup to the hex form of tint. Values literally equal
// to "none" or "transparent" are preserved verbatim.
//
// This is a single-pass textual scan, not a structural document
// rewrite: it covers the simple monochrome markup decals are
// documented to accept, and does not reach into style="…" values or
// single-quoted attributes.
func Recolor(markup string, tint color.NRGBA) string {
	hex := fmt.Sprintf("#%02x%02x%02x", tint.R, tint.G, tint.B)
	markup = replaceAttr(markup, "fill", hex)
	markup = replaceAttr(markup, "stroke", hex)
	return markup
}

// replaceAttr replaces every double-quoted value of the named
// attribute, keeping "none" and "transparent" untouched.
func replaceAttr(markup, attr, newColor string) string {
	pattern := attr + `="`
	var out strings.Builder
	out.Grow(len(markup))

	rest := markup
	for {
		start := strings.Index(rest, pattern)
		if start < 0 {
			break
		}
		out.WriteString(rest[:start+len(pattern)])
		rest = rest[start+len(pattern):]

		end := strings.IndexByte(rest, '"')
		if end < 0 {
			break
		}
		value := rest[:end]
		if value == "none" || value == "transparent" {
			out.WriteString(value)
		} else {
			out.WriteString(newColor)
		}
		rest = rest[end:]
	}

	out.WriteString(rest)
	return out.String()
}

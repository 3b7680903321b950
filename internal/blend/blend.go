// Package blend implements source-over alpha compositing on straight
// (non-premultiplied) RGBA values.
//
// The math follows the Porter-Duff "over" operator computed in
// normalized [0,1] channel space:
//
//	outA = sa + da*(1-sa)
//	outC = (sc*sa + dc*da*(1-sa)) / outA   when outA > 0
//
// A zero output alpha yields fully transparent black.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "math"

// SourceOver blends one source pixel over one destination pixel.
// All values are straight alpha, 0-255.
// Parameters:
//   - sr, sg, sb, sa: source color (red, green, blue, alpha)
//   - dr, dg, db, da: destination color (red, green, blue, alpha)
//
// Returns: resulting straight-alpha color after blending.
func SourceOver(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8) {
	saf := float64(sa) / 255
	daf := float64(da) / 255

	outA := saf + daf*(1-saf)
	if outA == 0 {
		return 0, 0, 0, 0
	}

	channel := func(s, d uint8) uint8 {
		sf := float64(s) / 255
		df := float64(d) / 255
		out := (sf*saf + df*daf*(1-saf)) / outA
		return uint8(math.Round(out * 255))
	}

	return channel(sr, dr), channel(sg, dg), channel(sb, db), uint8(math.Round(outA * 255))
}

// Unpremultiply converts one premultiplied pixel to straight alpha.
// Zero alpha yields transparent black; otherwise each channel is
// divided by the normalized alpha and clamped to 255.
func Unpremultiply(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
	if a == 0 {
		return 0, 0, 0, 0
	}
	af := float64(a) / 255
	un := func(c uint8) uint8 {
		v := math.Round(float64(c) / af)
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return un(r), un(g), un(b), a
}

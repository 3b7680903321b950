package folco

import (
	"image/color"
	"math"

	"github.com/ecoates2/folco-renderer/internal/hsl"
)

// HueConfig configures the hue rotation layer: every visible pixel's
// hue is shifted by Degrees, with saturation, lightness and alpha
// preserved.
//
// Hue rotation is the root layer. It publishes the dominant color of
// the rotated image for downstream layers (the decal derives its tint
// from it).
type HueConfig struct {
	// Degrees is the rotation angle, normalized to [0, 360) by
	// NewHueConfig.
	Degrees float32
}

// NewHueConfig creates a hue rotation config with the angle wrapped
// into [0, 360).
func NewHueConfig(degrees float32) *HueConfig {
	d := float32(math.Mod(float64(degrees), 360))
	if d < 0 {
		d += 360
	}
	return &HueConfig{Degrees: d}
}

// Differs reports a meaningful angle change (beyond 0.001 degrees).
func (c HueConfig) Differs(other HueConfig) bool {
	d := c.Degrees - other.Degrees
	if d < 0 {
		d = -d
	}
	return d > 0.001
}

// Dependencies returns DepNone: hue rotation is the root layer.
func (c HueConfig) Dependencies(Versions) DependencyVersion {
	return DepNone
}

// Transform rotates the hue of every non-transparent pixel in place.
// Fully transparent pixels pass through untouched.
func (c HueConfig) Transform(ctx *RenderContext) {
	data := ctx.Icon.Pix.Data()
	for i := 0; i < len(data); i += 4 {
		a := data[i+3]
		if a == 0 {
			continue
		}
		h, s, l := hsl.FromRGB(
			float32(data[i+0])/255,
			float32(data[i+1])/255,
			float32(data[i+2])/255,
		)
		r, g, b := hsl.ToRGB(h+c.Degrees, s, l)
		data[i+0] = roundChannel(r)
		data[i+1] = roundChannel(g)
		data[i+2] = roundChannel(b)
		// alpha unchanged
	}
}

// Emit publishes the dominant color sampled from the rotated image.
func (c HueConfig) Emit(ctx *RenderContext) {
	ctx.SetDominantColor(SampleDominantColor(ctx.Icon))
}

// SampleDominantColor returns the alpha-weighted average color over
// the icon's content bounds. Fully transparent pixels do not
// contribute. If the bounds hold no visible pixels, a neutral gray
// (128,128,128,255) is returned.
func SampleDominantColor(ic Icon) color.NRGBA {
	pm := ic.Pix
	bounds := ic.Content

	x0, y0 := bounds.X, bounds.Y
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	x1 := bounds.Right()
	if x1 > pm.Width() {
		x1 = pm.Width()
	}
	y1 := bounds.Bottom()
	if y1 > pm.Height() {
		y1 = pm.Height()
	}

	var totalR, totalG, totalB, totalA, count uint64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px := pm.GetPixel(x, y)
			a := uint64(px.A)
			if a == 0 {
				continue
			}
			totalR += uint64(px.R) * a
			totalG += uint64(px.G) * a
			totalB += uint64(px.B) * a
			totalA += a
			count++
		}
	}

	if count == 0 || totalA == 0 {
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return color.NRGBA{
		R: uint8(totalR / totalA),
		G: uint8(totalG / totalA),
		B: uint8(totalB / totalA),
		A: uint8(totalA / count),
	}
}

// roundChannel converts a normalized channel back to a byte.
func roundChannel(v float32) uint8 {
	r := math.Round(float64(v) * 255)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

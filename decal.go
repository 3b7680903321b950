package folco

import (
	"image/color"

	"github.com/ecoates2/folco-renderer/internal/hsl"
	"github.com/ecoates2/folco-renderer/internal/svgrender"
)

// decalDarken is the fixed lightness delta subtracted from the
// dominant color before a decal is tinted with it.
const decalDarken = 0.15

// DecalConfig configures the decal imprint layer: a monochrome SVG
// rendered at the center of the icon's content bounds, tinted with a
// slightly darkened version of the image's dominant color. All fills
// and strokes in the markup are replaced with that tint.
//
// For full-color SVGs or emoji, use [OverlayConfig] instead.
//
// The decal prefers the dominant color published by the hue layer; if
// none was published this pass, it samples the current image directly.
type DecalConfig struct {
	// Source is the SVG source; it should be monochrome markup.
	Source SVGSource

	// Scale is the decal size as a fraction of the smaller content
	// bounds dimension, clamped to [0, 1] by NewDecalConfig.
	Scale float32
}

// NewDecalConfig creates a decal config from raw SVG markup with the
// scale clamped to [0, 1].
func NewDecalConfig(markup string, scale float32) *DecalConfig {
	return &DecalConfig{Source: RawSource(markup), Scale: clamp01(scale)}
}

// NewDecalConfigFromSource creates a decal config from an existing
// source, clamping the scale. Used when applying profiles.
func NewDecalConfigFromSource(source SVGSource, scale float32) *DecalConfig {
	return &DecalConfig{Source: source, Scale: clamp01(scale)}
}

// Differs reports a source change or a meaningful scale change.
func (c DecalConfig) Differs(other DecalConfig) bool {
	if c.Source != other.Source {
		return true
	}
	d := c.Scale - other.Scale
	if d < 0 {
		d = -d
	}
	return d > 0.0001
}

// Dependencies returns the hue layer's version: the decal consumes the
// dominant color hue publishes, so disabling or reconfiguring hue must
// invalidate the decal's cache even when the decal itself is
// unchanged.
func (c DecalConfig) Dependencies(v Versions) DependencyVersion {
	return DependencyVersion(v.Hue)
}

// Transform renders the decal tinted with the darkened dominant color
// and composites it centered within the content bounds. A zero target
// size or an unrenderable source leaves the image untouched.
func (c DecalConfig) Transform(ctx *RenderContext) {
	dominant, ok := ctx.DominantColor()
	if !ok {
		dominant = SampleDominantColor(ctx.Icon)
	}
	tint := darkenColor(dominant, decalDarken)

	bounds := ctx.Icon.Content
	size := scaledTargetSize(bounds, c.Scale)
	if size == 0 {
		Logger().Debug("decal skipped: zero target size")
		return
	}

	markup, ok := c.Source.Resolve()
	if !ok {
		Logger().Warn("decal skipped: unresolvable source", "symbol", c.Source.Value)
		return
	}
	img := svgrender.RenderRecolored(markup, size, tint)
	if img == nil {
		Logger().Warn("decal skipped: unrenderable SVG")
		return
	}
	decal := FromImage(img)

	x := bounds.X + (bounds.W-decal.Width())/2
	y := bounds.Y + (bounds.H-decal.Height())/2
	ctx.Icon.Pix.DrawOver(decal, x, y)
}

// Emit publishes nothing: the decal only consumes.
func (c DecalConfig) Emit(*RenderContext) {}

// darkenColor reduces a color's HSL lightness by amount, floored at 0.
// Alpha is preserved.
func darkenColor(c color.NRGBA, amount float32) color.NRGBA {
	h, s, l := hsl.FromRGB(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
	l -= amount
	if l < 0 {
		l = 0
	}
	r, g, b := hsl.ToRGB(h, s, l)
	return color.NRGBA{
		R: roundChannel(r),
		G: roundChannel(g),
		B: roundChannel(b),
		A: c.A,
	}
}

// scaledTargetSize computes the pixel size of a decal or overlay:
// the smaller content bounds dimension times the scale fraction,
// truncated.
func scaledTargetSize(bounds Rect, scale float32) int {
	minDim := bounds.W
	if bounds.H < minDim {
		minDim = bounds.H
	}
	if minDim < 0 {
		minDim = 0
	}
	return int(float32(minDim) * scale)
}

// clamp01 clamps a fraction to [0, 1].
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

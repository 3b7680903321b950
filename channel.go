package folco

import "image/color"

// RenderContext flows through one render pass of the pipeline.
//
// It carries the image being transformed plus the properties emitted
// by earlier layers for later ones to consume, so layers can
// communicate without knowing each other's implementation. A layer
// that needs the dominant color does not care whether hue rotation
// computed it or not; it asks the context and falls back if absent.
//
// The property set is closed: each known property kind has its own
// slot and accessors. Properties live only for the duration of one
// render pass and are never stored in any cache.
type RenderContext struct {
	// Icon is the current image being processed through the pipeline.
	Icon Icon

	dominant    color.NRGBA
	hasDominant bool
}

// NewRenderContext creates a context for one render pass starting from
// the given base image.
func NewRenderContext(base Icon) *RenderContext {
	return &RenderContext{Icon: base}
}

// SetDominantColor publishes the dominant color for downstream layers,
// overwriting any previously published value in this pass.
func (ctx *RenderContext) SetDominantColor(c color.NRGBA) {
	ctx.dominant = c
	ctx.hasDominant = true
}

// DominantColor returns the published dominant color, if any.
func (ctx *RenderContext) DominantColor() (color.NRGBA, bool) {
	return ctx.dominant, ctx.hasDominant
}

// HasDominantColor reports whether a dominant color has been published
// in this pass.
func (ctx *RenderContext) HasDominantColor() bool {
	return ctx.hasDominant
}

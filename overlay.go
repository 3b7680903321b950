package folco

import "github.com/ecoates2/folco-renderer/internal/svgrender"

// Position places an overlay within the icon's content bounds.
type Position uint8

const (
	// BottomRight places the overlay at the bottom-right corner.
	BottomRight Position = iota
	// BottomLeft places the overlay at the bottom-left corner.
	BottomLeft
	// TopLeft places the overlay at the top-left corner.
	TopLeft
	// TopRight places the overlay at the top-right corner.
	TopRight
	// Center centers the overlay within the content bounds.
	Center
)

// String returns the kebab-case name used in profiles.
func (p Position) String() string {
	switch p {
	case BottomLeft:
		return "bottom-left"
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case Center:
		return "center"
	default:
		return "bottom-right"
	}
}

// OverlayConfig configures the overlay layer: an SVG rendered as-is
// (no recoloring) on top of everything else, at a corner or the center
// of the icon's content bounds.
//
// The source may be raw markup or a symbolic reference such as an
// emoji, resolved through the registered [SymbolResolver].
type OverlayConfig struct {
	// Source is the SVG source.
	Source SVGSource

	// Pos places the overlay within the content bounds.
	Pos Position

	// Scale is the overlay size as a fraction of the smaller content
	// bounds dimension, clamped to [0, 1] by NewOverlayConfig.
	Scale float32
}

// NewOverlayConfig creates an overlay config with the scale clamped to
// [0, 1].
func NewOverlayConfig(source SVGSource, pos Position, scale float32) *OverlayConfig {
	return &OverlayConfig{Source: source, Pos: pos, Scale: clamp01(scale)}
}

// Differs reports a source, placement, or meaningful scale change.
func (c OverlayConfig) Differs(other OverlayConfig) bool {
	if c.Source != other.Source || c.Pos != other.Pos {
		return true
	}
	d := c.Scale - other.Scale
	if d < 0 {
		d = -d
	}
	return d > 0.0001
}

// Dependencies returns DepNone: the overlay is always drawn last, on
// top of whatever the earlier layers produced, so its own output does
// not depend on them.
func (c OverlayConfig) Dependencies(Versions) DependencyVersion {
	return DepNone
}

// Transform renders the overlay and composites it at the configured
// position. A zero target size or an unrenderable source leaves the
// image untouched.
func (c OverlayConfig) Transform(ctx *RenderContext) {
	bounds := ctx.Icon.Content
	size := scaledTargetSize(bounds, c.Scale)
	if size == 0 {
		Logger().Debug("overlay skipped: zero target size")
		return
	}

	markup, ok := c.Source.Resolve()
	if !ok {
		Logger().Warn("overlay skipped: unresolvable source", "symbol", c.Source.Value)
		return
	}
	img := svgrender.Render(markup, size)
	if img == nil {
		Logger().Warn("overlay skipped: unrenderable SVG")
		return
	}
	overlay := FromImage(img)

	x, y := c.position(bounds, overlay.Width(), overlay.Height())
	ctx.Icon.Pix.DrawOver(overlay, x, y)
}

// Emit publishes nothing.
func (c OverlayConfig) Emit(*RenderContext) {}

// position computes the top-left compositing offset for the rendered
// overlay relative to the content bounds.
func (c OverlayConfig) position(bounds Rect, w, h int) (int, int) {
	switch c.Pos {
	case TopLeft:
		return bounds.X, bounds.Y
	case TopRight:
		return bounds.X + bounds.W - w, bounds.Y
	case BottomLeft:
		return bounds.X, bounds.Y + bounds.H - h
	case Center:
		return bounds.X + (bounds.W-w)/2, bounds.Y + (bounds.H-h)/2
	default: // BottomRight
		return bounds.X + bounds.W - w, bounds.Y + bounds.H - h
	}
}

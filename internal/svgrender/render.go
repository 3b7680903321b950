// Package svgrender rasterizes SVG markup into straight-alpha RGBA
// images using oksvg and rasterx.
//
// The package also provides the textual fill/stroke recoloring used
// for monochrome decals. All entry points are best-effort: markup that
// cannot be parsed renders to nil rather than an error, because a bad
// vector source must never fail a whole icon render.
package svgrender

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/ecoates2/folco-renderer/internal/blend"
)

// Render parses markup and rasterizes it so that the larger of the
// intrinsic width/height maps exactly to size pixels, preserving
// aspect ratio. Returns nil if the markup cannot be parsed or the
// target size is not positive.
func Render(markup string, size int) *image.NRGBA {
	if size <= 0 {
		return nil
	}

	icon := parse(markup)
	if icon == nil {
		return nil
	}

	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		return nil
	}
	scale := float64(size) / math.Max(vw, vh)
	w := int(math.Ceil(vw * scale))
	h := int(math.Ceil(vh * scale))
	if w <= 0 || h <= 0 {
		return nil
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	icon.SetTarget(0, 0, float64(w), float64(h))

	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	if !draw(icon, raster) {
		return nil
	}

	return unpremultiplied(rgba)
}

// RenderRecolored is Render with every fill and stroke value replaced
// by tint beforehand (values of "none" and "transparent" are kept).
func RenderRecolored(markup string, size int, tint color.NRGBA) *image.NRGBA {
	return Render(Recolor(markup, tint), size)
}

// parse reads SVG markup, absorbing both parse errors and the panics
// oksvg raises on some malformed path data.
func parse(markup string) (icon *oksvg.SvgIcon) {
	defer func() {
		if recover() != nil {
			icon = nil
		}
	}()

	icon, err := oksvg.ReadIconStream(strings.NewReader(markup))
	if err != nil {
		return nil
	}
	return icon
}

// draw rasterizes the icon, absorbing panics from degenerate
// geometry. Reports whether drawing completed.
func draw(icon *oksvg.SvgIcon, raster *rasterx.Dasher) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	icon.Draw(raster, 1.0)
	return true
}

// unpremultiplied converts the rasterizer's premultiplied output to
// straight alpha: zero alpha becomes transparent black, otherwise each
// channel is divided by the normalized alpha and clamped to 255.
func unpremultiplied(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for i := 0; i < len(src.Pix); i += 4 {
		r, g, bl, a := blend.Unpremultiply(src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3])
		dst.Pix[i+0] = r
		dst.Pix[i+1] = g
		dst.Pix[i+2] = bl
		dst.Pix[i+3] = a
	}
	return dst
}

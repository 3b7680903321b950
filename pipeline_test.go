package folco

import (
	"image/color"
	"testing"
)

func redBase(size int) Icon {
	pm := NewPixmap(size, size)
	pm.Fill(color.NRGBA{R: 255, A: 255})
	return FullContentIcon(pm, 1.0)
}

func TestPipelineZeroValuePassthrough(t *testing.T) {
	var p Pipeline
	base := redBase(8)

	out := p.Render(base)
	if !out.Pix.Equal(base.Pix) {
		t.Error("unconfigured pipeline changed the image")
	}

	// The result is isolated from the base.
	out.Pix.SetPixel(0, 0, color.NRGBA{})
	if base.Pix.GetPixel(0, 0) != (color.NRGBA{R: 255, A: 255}) {
		t.Error("mutating the result changed the base image")
	}
}

func TestPipelineRenderIsIdempotent(t *testing.T) {
	var p Pipeline
	p.Hue.SetConfig(NewHueConfig(120))
	p.Decal.SetConfig(NewDecalConfig(testRectSVG, 0.5))
	base := redBase(16)

	first := p.Render(base)
	second := p.Render(base)

	if !first.Pix.Equal(second.Pix) {
		t.Error("same config and base produced different pixels")
	}
	if p.CompositeCacheLen() != 1 {
		t.Errorf("CompositeCacheLen = %d, want 1", p.CompositeCacheLen())
	}
}

func TestPipelineCompositeCacheIsolation(t *testing.T) {
	var p Pipeline
	p.Hue.SetConfig(NewHueConfig(120))
	base := redBase(8)

	first := p.Render(base)
	first.Pix.Fill(color.NRGBA{A: 255})

	second := p.Render(base)
	if second.Pix.GetPixel(4, 4) != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("cached composite was corrupted: %v", second.Pix.GetPixel(4, 4))
	}
}

func TestPipelineConfigChangeInvalidatesComposite(t *testing.T) {
	var p Pipeline
	p.Hue.SetConfig(NewHueConfig(120))
	base := redBase(8)

	rotated := p.Render(base)
	if rotated.Pix.GetPixel(4, 4) != (color.NRGBA{G: 255, A: 255}) {
		t.Fatalf("120° rotation = %v, want green", rotated.Pix.GetPixel(4, 4))
	}

	p.Hue.SetConfig(NewHueConfig(240))
	blue := p.Render(base)
	if blue.Pix.GetPixel(4, 4) != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("240° rotation = %v, want blue (stale composite?)", blue.Pix.GetPixel(4, 4))
	}
}

func TestPipelineToggleInvalidatesComposite(t *testing.T) {
	var p Pipeline
	p.Hue.SetConfig(NewHueConfig(120))
	base := redBase(8)

	p.Render(base)
	p.Hue.SetEnabled(false)

	plain := p.Render(base)
	if plain.Pix.GetPixel(4, 4) != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("disabled hue = %v, want untouched red", plain.Pix.GetPixel(4, 4))
	}
}

func TestPipelineVersionsSnapshot(t *testing.T) {
	var p Pipeline
	p.Hue.SetConfig(NewHueConfig(10))
	p.Overlay.SetConfig(NewOverlayConfig(RawSource(testRectSVG), Center, 0.5))

	v := p.Versions()
	if v.Hue != 1 || v.Decal != 0 || v.Overlay != 1 {
		t.Errorf("Versions = %+v, want {1 0 1}", v)
	}
}

func TestPipelineInvalidateAll(t *testing.T) {
	var p Pipeline
	p.Hue.SetConfig(NewHueConfig(120))
	base := redBase(8)

	p.Render(base)
	if p.CompositeCacheLen() == 0 || p.Hue.CacheLen() == 0 {
		t.Fatal("expected populated caches after render")
	}

	p.InvalidateAll()
	if p.CompositeCacheLen() != 0 {
		t.Error("composite cache not cleared")
	}
	if p.Hue.CacheLen() != 0 {
		t.Error("hue cache not cleared")
	}

	// Rendering after invalidation still produces the same output.
	out := p.Render(base)
	if out.Pix.GetPixel(4, 4) != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("post-invalidation render = %v, want green", out.Pix.GetPixel(4, 4))
	}
}

func TestPipelineCachesPerSize(t *testing.T) {
	var p Pipeline
	p.Hue.SetConfig(NewHueConfig(120))

	p.Render(redBase(8))
	p.Render(redBase(16))
	if p.CompositeCacheLen() != 2 {
		t.Errorf("CompositeCacheLen = %d, want 2", p.CompositeCacheLen())
	}
}

func TestPipelineDecalFollowsHueChange(t *testing.T) {
	// The decal tint derives from the hue-rotated image, so changing the
	// hue angle must change the decal even though the decal config is
	// untouched.
	var p Pipeline
	p.Hue.SetConfig(NewHueConfig(0))
	p.Decal.SetConfig(NewDecalConfig(testRectSVG, 0.5))
	base := redBase(16)

	first := p.Render(base)
	p.Hue.SetConfig(NewHueConfig(120))
	second := p.Render(base)

	c1 := first.Pix.GetPixel(8, 8)
	c2 := second.Pix.GetPixel(8, 8)
	if c1 == c2 {
		t.Errorf("decal tint did not follow hue change: %v", c1)
	}
	if c2.G <= c2.R {
		t.Errorf("decal after 120° = %v, want green-tinted", c2)
	}
}

func TestPipelineDecalFollowsHueDisable(t *testing.T) {
	// Disabling hue still bumps its version, so the decal must recompute
	// and re-derive its tint from the un-rotated image.
	var p Pipeline
	p.Hue.SetConfig(NewHueConfig(120))
	p.Decal.SetConfig(NewDecalConfig(testRectSVG, 0.5))
	base := redBase(16)

	rotated := p.Render(base)
	if c := rotated.Pix.GetPixel(8, 8); c.G <= c.R {
		t.Fatalf("decal with hue enabled = %v, want green-tinted", c)
	}

	p.Hue.SetEnabled(false)
	plain := p.Render(base)

	got := plain.Pix.GetPixel(8, 8)
	if got.R < 170 || got.R > 190 || got.G > 10 || got.B > 10 {
		t.Errorf("decal with hue disabled = %v, want darkened red ~(179,0,0)", got)
	}
	if corner := plain.Pix.GetPixel(0, 0); corner != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("corner = %v, want untouched red", corner)
	}
}

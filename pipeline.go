package folco

import "github.com/ecoates2/folco-renderer/internal/cache"

// Pipeline owns the three customization layers and the composite
// cache, and runs them in their fixed order.
//
// Dependency graph:
//
//	Base Image
//	    │
//	    ▼
//	┌─────────┐
//	│   Hue   │ ◄── no dependencies (root layer)
//	└────┬────┘
//	     │
//	     ▼
//	┌─────────┐
//	│  Decal  │ ◄── depends on: Hue
//	└────┬────┘
//	     │
//	     ▼
//	┌─────────┐
//	│ Overlay │ ◄── no dependencies (applied last, on top)
//	└────┬────┘
//	     │
//	     ▼
//	┌───────────┐
//	│ Composite │ ◄── depends on: Hue + Decal + Overlay
//	└───────────┘
//
// The zero value is ready to use: all layers enabled and unconfigured.
type Pipeline struct {
	// Hue rotation layer (root, no dependencies).
	Hue Layer[HueConfig]

	// Decal imprint layer (depends on hue).
	Decal Layer[DecalConfig]

	// Overlay layer (independent, applied last).
	Overlay Layer[OverlayConfig]

	composite *cache.Cache[CacheKey, cachedRender]
}

// Versions returns a snapshot of all layer versions, used by each
// layer's Dependencies method during Apply.
func (p *Pipeline) Versions() Versions {
	return Versions{
		Hue:     p.Hue.Version(),
		Decal:   p.Decal.Version(),
		Overlay: p.Overlay.Version(),
	}
}

// InvalidateAll clears every cache and bumps every layer version.
func (p *Pipeline) InvalidateAll() {
	p.Hue.Invalidate()
	p.Decal.Invalidate()
	p.Overlay.Invalidate()
	if p.composite != nil {
		p.composite.Clear()
	}
}

// compositeVersion is the combined dependency version for the final
// output: the wrapping sum of all three layer versions. Any layer
// change moves the sum and invalidates matching composite entries.
func (p *Pipeline) compositeVersion() DependencyVersion {
	return CombineVersions(p.Hue.Version(), p.Decal.Version(), p.Overlay.Version())
}

// Render runs the base image through the full pipeline and returns
// the finished icon.
//
// The composite cache is consulted first: a valid entry for this size
// and combined version bypasses all per-layer work. Otherwise a fresh
// render context is built from the base image, each layer applies in
// order (deciding pass-through versus recompute on its own), and the
// result is cached.
func (p *Pipeline) Render(base Icon) Icon {
	key := CacheKeyFor(base)
	dep := p.compositeVersion()

	if p.composite != nil {
		if ent, ok := p.composite.Get(key); ok && ent.dep == dep {
			Logger().Debug("composite cache hit",
				"width", key.Width, "height", key.Height)
			return ent.icon.Clone()
		}
	}
	Logger().Debug("composite cache miss",
		"width", key.Width, "height", key.Height)

	ctx := NewRenderContext(base.Clone())
	v := p.Versions()
	p.Hue.Apply(ctx, key, v)
	p.Decal.Apply(ctx, key, v)
	p.Overlay.Apply(ctx, key, v)

	if p.composite == nil {
		p.composite = cache.New[CacheKey, cachedRender](layerCacheLimit)
	}
	p.composite.Set(key, cachedRender{icon: ctx.Icon.Clone(), dep: dep})

	return ctx.Icon
}

// CompositeCacheLen returns the number of cached composite outputs.
func (p *Pipeline) CompositeCacheLen() int {
	if p.composite == nil {
		return 0
	}
	return p.composite.Len()
}

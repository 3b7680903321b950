package folco

import (
	"math"

	"github.com/ecoates2/folco-renderer/internal/cache"
)

// DependencyVersion summarizes the upstream state a cached layer
// output was computed against. A cache entry is valid only while the
// freshly computed dependency version equals the one stored with it.
type DependencyVersion uint64

// DepNone is the dependency version of a root layer (no upstream
// dependencies).
const DepNone DependencyVersion = 0

// CombineVersions folds several layer versions into one dependency
// version by wrapping addition.
//
// The sum is not collision-free: distinct version tuples can add up to
// the same value. A collision needs a very specific sequence of
// toggles between two renders of the same size, which this design
// accepts; see the composite cache in Pipeline.
func CombineVersions(versions ...uint64) DependencyVersion {
	var sum uint64
	for _, v := range versions {
		sum += v
	}
	return DependencyVersion(sum)
}

// Versions is a snapshot of all layer versions in the pipeline, passed
// to each layer so it can compute its own dependency version without
// knowing the pipeline's structure.
type Versions struct {
	Hue     uint64
	Decal   uint64
	Overlay uint64
}

// CacheKey identifies one concrete rendering in a size-keyed cache:
// pixel dimensions plus the scale factor's bit pattern. Two icons with
// the same pixel size but different scales cache separately.
type CacheKey struct {
	Width     int
	Height    int
	ScaleBits uint32
}

// NewCacheKey creates a cache key for the given dimensions and scale.
func NewCacheKey(width, height int, scale float32) CacheKey {
	return CacheKey{Width: width, Height: height, ScaleBits: math.Float32bits(scale)}
}

// CacheKeyFor creates a cache key matching an icon's concrete size.
func CacheKeyFor(ic Icon) CacheKey {
	return NewCacheKey(ic.Pix.Width(), ic.Pix.Height(), ic.Scale)
}

// Effect is implemented by layer configuration types. Each
// configuration knows how to detect a meaningful change, which
// upstream versions it depends on, how it transforms the image, and
// what it publishes for downstream layers.
//
// The separation of Transform (pixel mutation) and Emit (property
// publication) makes the data a layer contributes to later layers an
// explicit contract: Emit runs on every render pass, including cache
// hits, because only pixels are cached.
type Effect[C any] interface {
	// Differs reports whether this configuration differs from other in
	// a way that would produce different rendering output. This
	// predicate, not structural equality, drives cache invalidation.
	Differs(other C) bool

	// Dependencies returns the dependency version for cache
	// invalidation. Root layers return DepNone.
	Dependencies(v Versions) DependencyVersion

	// Transform mutates the context's image. It may read properties
	// published by upstream layers but must not publish its own here.
	Transform(ctx *RenderContext)

	// Emit publishes properties for downstream layers. Called after
	// Transform on a cache miss, and again on every cache hit.
	Emit(ctx *RenderContext)
}

// cachedRender is one cached layer output with the upstream dependency
// version that was current when it was stored.
type cachedRender struct {
	icon Icon
	dep  DependencyVersion
}

// layerCacheLimit bounds each size-keyed cache; oldest entries are
// evicted past this many sizes.
const layerCacheLimit = 32

// Layer is one pipeline stage generic over its configuration type:
// optional configuration, an enabled flag, a monotonic (wrapping)
// version counter, and a size-keyed cache of rendered outputs.
//
// The zero value is an enabled, unconfigured layer, ready to use.
type Layer[C Effect[C]] struct {
	config   *C
	disabled bool
	version  uint64
	cache    *cache.Cache[CacheKey, cachedRender]
}

// Config returns the current configuration, or nil if none is set.
// The returned value must not be modified.
func (l *Layer[C]) Config() *C {
	return l.config
}

// HasConfig reports whether a configuration is set.
func (l *Layer[C]) HasConfig() bool {
	return l.config != nil
}

// Enabled reports whether the layer is enabled. Layers start enabled.
func (l *Layer[C]) Enabled() bool {
	return !l.disabled
}

// Active reports whether the layer will render: enabled and
// configured. An inactive layer passes the image through untouched,
// but its version still participates in downstream invalidation.
func (l *Layer[C]) Active() bool {
	return !l.disabled && l.config != nil
}

// Version returns the current version counter.
func (l *Layer[C]) Version() uint64 {
	return l.version
}

// SetEnabled enables or disables the layer without touching its
// configuration. Reports whether the state actually changed; on a
// change the version is bumped and the cache cleared.
func (l *Layer[C]) SetEnabled(enabled bool) bool {
	if l.disabled == !enabled {
		return false
	}
	l.disabled = !enabled
	l.Invalidate()
	return true
}

// SetConfig replaces the configuration. Reports whether it changed:
// nil→nil is unchanged, nil↔non-nil always changes, and two
// configurations are compared with the policy's Differs predicate.
// On a change the version is bumped and the cache cleared.
func (l *Layer[C]) SetConfig(config *C) bool {
	changed := true
	switch {
	case l.config == nil && config == nil:
		changed = false
	case l.config != nil && config != nil:
		changed = (*l.config).Differs(*config)
	}
	if !changed {
		return false
	}
	l.config = config
	l.Invalidate()
	return true
}

// Invalidate bumps the version and clears the cache. Called on any
// observable state change.
func (l *Layer[C]) Invalidate() {
	l.version++ // wraps
	if l.cache != nil {
		l.cache.Clear()
	}
}

// CacheLen returns the number of cached outputs.
func (l *Layer[C]) CacheLen() int {
	if l.cache == nil {
		return 0
	}
	return l.cache.Len()
}

// Apply runs the layer against the render context.
//
// Inactive layers do nothing. If a cached output for this size is
// still valid against the freshly computed dependency version, the
// context adopts a copy of it and the policy's Emit step re-runs, so
// downstream layers always receive fresh properties. Otherwise the
// policy transforms the image, emits, and the result is cached under
// the computed dependency version.
func (l *Layer[C]) Apply(ctx *RenderContext, key CacheKey, v Versions) {
	if !l.Active() {
		return
	}
	cfg := *l.config
	dep := cfg.Dependencies(v)

	if l.cache != nil {
		if ent, ok := l.cache.Get(key); ok && ent.dep == dep {
			ctx.Icon = ent.icon.Clone()
			cfg.Emit(ctx)
			return
		}
	}

	cfg.Transform(ctx)
	cfg.Emit(ctx)

	if l.cache == nil {
		l.cache = cache.New[CacheKey, cachedRender](layerCacheLimit)
	}
	l.cache.Set(key, cachedRender{icon: ctx.Icon.Clone(), dep: dep})
}

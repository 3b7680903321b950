package folco

// Customizer is the main icon customization engine. It holds an
// immutable base icon set and a [Pipeline] of customization layers,
// and resolves requested logical sizes to concrete base images.
//
// Configure layers directly through the Pipeline field:
//
//	c := folco.NewCustomizer(set)
//	c.Pipeline.Hue.SetConfig(folco.NewHueConfig(120))
//	icon, ok := c.Render(32)
//
// A Customizer is a single logical owner of its caches and layer
// state: concurrent mutation from multiple goroutines requires
// external serialization.
type Customizer struct {
	base *IconSet

	// Pipeline holds the customization layers. See [Pipeline] for the
	// dependency graph.
	Pipeline Pipeline
}

// NewCustomizer creates a customizer over the given base icon set.
// The set is never modified.
func NewCustomizer(base *IconSet) *Customizer {
	if base == nil {
		base = NewIconSet()
	}
	return &Customizer{base: base}
}

// BaseIcons returns the base icon set.
func (c *Customizer) BaseIcons() *IconSet {
	return c.base
}

// Render renders the base image whose logical size is closest to the
// requested one, with all active customizations applied. Returns
// false if the base set is empty.
func (c *Customizer) Render(logicalSize int) (Icon, bool) {
	base, ok := c.base.ClosestLogicalSize(logicalSize)
	if !ok {
		return Icon{}, false
	}
	return c.Pipeline.Render(base), true
}

// RenderAll renders every image in the base set with customizations
// applied, returning a new set in the same order.
func (c *Customizer) RenderAll() *IconSet {
	out := NewIconSet()
	for _, base := range c.base.Images() {
		out.Add(c.Pipeline.Render(base))
	}
	return out
}

// ClearCache invalidates every layer and composite cache, for example
// to bound memory.
func (c *Customizer) ClearCache() {
	c.Pipeline.InvalidateAll()
}

// ApplyProfile applies a profile's settings to the pipeline. Each
// field applies independently: a present layer gets its configuration
// and enabled flag, an absent layer has its configuration cleared
// (the enabled flag is left as-is).
func (c *Customizer) ApplyProfile(p *Profile) {
	if p.HueRotation != nil {
		c.Pipeline.Hue.SetConfig(NewHueConfig(p.HueRotation.Degrees))
		c.Pipeline.Hue.SetEnabled(p.HueRotation.Enabled)
	} else {
		c.Pipeline.Hue.SetConfig(nil)
	}

	if p.Decal != nil {
		c.Pipeline.Decal.SetConfig(NewDecalConfigFromSource(p.Decal.Source(), p.Decal.Scale))
		c.Pipeline.Decal.SetEnabled(p.Decal.Enabled)
	} else {
		c.Pipeline.Decal.SetConfig(nil)
	}

	if p.Overlay != nil {
		c.Pipeline.Overlay.SetConfig(NewOverlayConfig(p.Overlay.Source(), p.Overlay.Position, p.Overlay.Scale))
		c.Pipeline.Overlay.SetEnabled(p.Overlay.Enabled)
	} else {
		c.Pipeline.Overlay.SetConfig(nil)
	}
}

// ExportProfile captures the current layer configurations and enabled
// flags as a profile. Unconfigured layers are absent from the result.
func (c *Customizer) ExportProfile() *Profile {
	p := &Profile{}

	if cfg := c.Pipeline.Hue.Config(); cfg != nil {
		p.HueRotation = &HueSettings{
			Degrees: cfg.Degrees,
			Enabled: c.Pipeline.Hue.Enabled(),
		}
	}
	if cfg := c.Pipeline.Decal.Config(); cfg != nil {
		p.Decal = &DecalSettings{
			SourceSettings: SourceSettingsFor(cfg.Source),
			Scale:          cfg.Scale,
			Enabled:        c.Pipeline.Decal.Enabled(),
		}
	}
	if cfg := c.Pipeline.Overlay.Config(); cfg != nil {
		p.Overlay = &OverlaySettings{
			SourceSettings: SourceSettingsFor(cfg.Source),
			Position:       cfg.Pos,
			Scale:          cfg.Scale,
			Enabled:        c.Pipeline.Overlay.Enabled(),
		}
	}
	return p
}

// Package folco customizes raster icons through an ordered pipeline of
// visual layers: hue rotation, a centered monochrome decal, and a
// corner or centered SVG overlay.
//
// The pipeline is built around cheap re-rendering. Each layer tracks a
// version counter and a per-size cache of its output, tagged with the
// version of whatever upstream state it depends on. Changing one layer
// (toggling it, replacing its configuration) invalidates exactly the
// caches that observed it; everything else is reused on the next
// render.
//
// # Basic usage
//
//	set := folco.NewIconSet()
//	set.Add(folco.FullContentIcon(pm, 1.0))
//
//	c := folco.NewCustomizer(set)
//	c.Pipeline.Hue.SetConfig(folco.NewHueConfig(120))
//	c.Pipeline.Decal.SetConfig(folco.NewDecalConfig(markup, 0.5))
//
//	icon, ok := c.Render(32)
//
// Layers can be disabled without losing their configuration:
//
//	c.Pipeline.Hue.SetEnabled(false) // config preserved
//	c.Pipeline.Hue.SetEnabled(true)  // same output as before
//
// # Profiles
//
// A [Profile] carries every layer's settings in a flat JSON form for
// moving configuration across a process boundary. [ParseProfile]
// rejects malformed input before any layer is touched;
// [Customizer.ApplyProfile] and [Customizer.ExportProfile] round-trip
// the full pipeline state.
//
// # Logging
//
// folco produces no log output by default. Call [SetLogger] with a
// *slog.Logger to observe cache behavior and skipped render elements.
package folco

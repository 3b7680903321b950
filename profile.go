package folco

import (
	"encoding/json"
	"fmt"
)

// Profile is the serializable form of a full pipeline configuration,
// used to move settings across a process boundary.
//
// It is pure data transfer: no caching or version state crosses the
// boundary. Absent layers deserialize as "no configuration"; an
// omitted enabled flag defaults to true.
//
// JSON shape:
//
//	{
//	  "hueRotation": { "degrees": 180, "enabled": true },
//	  "decal":       { "svgData": "<svg>…</svg>", "scale": 0.5, "enabled": true },
//	  "overlay":     { "emoji": "🦆", "position": "bottom-right", "scale": 0.25, "enabled": true }
//	}
type Profile struct {
	// HueRotation holds the hue layer settings, or nil for none.
	HueRotation *HueSettings `json:"hueRotation,omitempty"`

	// Decal holds the decal layer settings, or nil for none.
	Decal *DecalSettings `json:"decal,omitempty"`

	// Overlay holds the overlay layer settings, or nil for none.
	Overlay *OverlaySettings `json:"overlay,omitempty"`
}

// SourceSettings is the wire form of an [SVGSource]: exactly one of
// SVGData or Emoji should be set. When both are present, Emoji wins.
type SourceSettings struct {
	// SVGData is raw SVG markup.
	SVGData string `json:"svgData,omitempty"`

	// Emoji is a symbolic reference resolved at render time.
	Emoji string `json:"emoji,omitempty"`
}

// SourceSettingsFor converts a source to its wire form.
func SourceSettingsFor(s SVGSource) SourceSettings {
	if s.Kind == SourceSymbol {
		return SourceSettings{Emoji: s.Value}
	}
	return SourceSettings{SVGData: s.Value}
}

// Source converts the wire form back to an [SVGSource].
func (s SourceSettings) Source() SVGSource {
	if s.Emoji != "" {
		return SymbolSource(s.Emoji)
	}
	return RawSource(s.SVGData)
}

// HueSettings is the wire form of the hue rotation layer.
type HueSettings struct {
	// Degrees is the rotation angle in degrees (0-360).
	Degrees float32 `json:"degrees"`

	// Enabled defaults to true when omitted.
	Enabled bool `json:"enabled"`
}

// UnmarshalJSON decodes with Enabled defaulting to true.
func (s *HueSettings) UnmarshalJSON(data []byte) error {
	type alias HueSettings
	a := alias{Enabled: true}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = HueSettings(a)
	return nil
}

// DecalSettings is the wire form of the decal layer. The source
// fields are inlined (svgData or emoji next to scale and enabled).
type DecalSettings struct {
	SourceSettings

	// Scale is the size fraction relative to content bounds (0-1).
	Scale float32 `json:"scale"`

	// Enabled defaults to true when omitted.
	Enabled bool `json:"enabled"`
}

// UnmarshalJSON decodes with Enabled defaulting to true.
func (s *DecalSettings) UnmarshalJSON(data []byte) error {
	type alias DecalSettings
	a := alias{Enabled: true}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = DecalSettings(a)
	return nil
}

// OverlaySettings is the wire form of the overlay layer.
type OverlaySettings struct {
	SourceSettings

	// Position is the placement within content bounds, kebab-case
	// ("bottom-right", "top-left", "center", …). Defaults to
	// bottom-right when omitted.
	Position Position `json:"position"`

	// Scale is the size fraction relative to content bounds (0-1).
	Scale float32 `json:"scale"`

	// Enabled defaults to true when omitted.
	Enabled bool `json:"enabled"`
}

// UnmarshalJSON decodes with Enabled defaulting to true.
func (s *OverlaySettings) UnmarshalJSON(data []byte) error {
	type alias OverlaySettings
	a := alias{Enabled: true}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = OverlaySettings(a)
	return nil
}

// MarshalText encodes the position as its kebab-case name.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a kebab-case position name.
func (p *Position) UnmarshalText(text []byte) error {
	switch string(text) {
	case "bottom-right":
		*p = BottomRight
	case "bottom-left":
		*p = BottomLeft
	case "top-left":
		*p = TopLeft
	case "top-right":
		*p = TopRight
	case "center":
		*p = Center
	default:
		return fmt.Errorf("folco: unknown overlay position %q", text)
	}
	return nil
}

// ParseProfile decodes a profile from JSON. Malformed input is
// reported here, before any pipeline state can be touched.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("folco: parse profile: %w", err)
	}
	return &p, nil
}

// JSON encodes the profile to its compact JSON form.
func (p *Profile) JSON() ([]byte, error) {
	return json.Marshal(p)
}

// JSONIndent encodes the profile to indented JSON.
func (p *Profile) JSONIndent() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

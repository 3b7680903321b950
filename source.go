package folco

import "sync/atomic"

// SourceKind discriminates the two ways a vector source can be given.
type SourceKind uint8

const (
	// SourceRaw is inline SVG markup.
	SourceRaw SourceKind = iota

	// SourceSymbol is a symbolic reference (an emoji or named glyph)
	// resolved to SVG markup through the registered SymbolResolver.
	SourceSymbol
)

// SVGSource is a vector-graphics source for decal and overlay layers:
// either raw SVG markup or a symbolic reference.
//
// SVGSource is comparable; layer configurations use plain equality on
// it to decide whether a new configuration differs.
type SVGSource struct {
	Kind  SourceKind
	Value string
}

// RawSource creates a source from inline SVG markup.
func RawSource(markup string) SVGSource {
	return SVGSource{Kind: SourceRaw, Value: markup}
}

// SymbolSource creates a source referencing a symbol by name.
// Whether the symbol can be rendered depends on the resolver
// registered at render time; an unsupported symbol makes the layer a
// silent no-op.
func SymbolSource(name string) SVGSource {
	return SVGSource{Kind: SourceSymbol, Value: name}
}

// IsRaw reports whether this is inline markup.
func (s SVGSource) IsRaw() bool { return s.Kind == SourceRaw }

// IsSymbol reports whether this is a symbolic reference.
func (s SVGSource) IsSymbol() bool { return s.Kind == SourceSymbol }

// Resolve returns the SVG markup for this source. Symbolic references
// resolve through the registered SymbolResolver; ok is false when no
// resolver is registered or the resolver does not support the symbol.
func (s SVGSource) Resolve() (markup string, ok bool) {
	switch s.Kind {
	case SourceRaw:
		return s.Value, true
	case SourceSymbol:
		box := resolverPtr.Load()
		if box == nil || box.r == nil {
			return "", false
		}
		return box.r.Resolve(s.Value)
	}
	return "", false
}

// SymbolResolver maps symbolic references (for example emoji) to SVG
// markup. Resolve reports ok=false for unsupported symbols.
type SymbolResolver interface {
	Resolve(symbol string) (markup string, ok bool)
}

// resolverBox wraps the interface so it can live in an atomic.Pointer.
type resolverBox struct{ r SymbolResolver }

// resolverPtr stores the active resolver. Accessed atomically so that
// RegisterSymbolResolver can race with rendering from other pipelines.
var resolverPtr atomic.Pointer[resolverBox]

// RegisterSymbolResolver installs the process-wide symbol resolver
// used by [SVGSource.Resolve]. By default no resolver is registered
// and every symbolic source is unsupported.
//
// RegisterSymbolResolver is safe for concurrent use. Pass nil to
// remove the current resolver.
func RegisterSymbolResolver(r SymbolResolver) {
	resolverPtr.Store(&resolverBox{r: r})
}

package folco

import "testing"

// mapResolver resolves symbols from a fixed table.
type mapResolver map[string]string

func (m mapResolver) Resolve(symbol string) (string, bool) {
	markup, ok := m[symbol]
	return markup, ok
}

func TestRawSourceResolves(t *testing.T) {
	s := RawSource("<svg/>")
	if !s.IsRaw() || s.IsSymbol() {
		t.Error("RawSource kind mismatch")
	}
	markup, ok := s.Resolve()
	if !ok || markup != "<svg/>" {
		t.Errorf("Resolve = (%q, %v), want (<svg/>, true)", markup, ok)
	}
}

func TestSymbolSourceWithoutResolver(t *testing.T) {
	RegisterSymbolResolver(nil)
	if _, ok := SymbolSource("🦆").Resolve(); ok {
		t.Error("symbol resolved with no resolver registered")
	}
}

func TestSymbolSourceWithResolver(t *testing.T) {
	RegisterSymbolResolver(mapResolver{"🦆": "<svg>duck</svg>"})
	t.Cleanup(func() { RegisterSymbolResolver(nil) })

	s := SymbolSource("🦆")
	if !s.IsSymbol() {
		t.Error("SymbolSource kind mismatch")
	}
	markup, ok := s.Resolve()
	if !ok || markup != "<svg>duck</svg>" {
		t.Errorf("Resolve = (%q, %v), want duck markup", markup, ok)
	}

	if _, ok := SymbolSource("🐟").Resolve(); ok {
		t.Error("unsupported symbol resolved")
	}
}

func TestRegisterSymbolResolverNilUnregisters(t *testing.T) {
	RegisterSymbolResolver(mapResolver{"🦆": "<svg/>"})
	RegisterSymbolResolver(nil)
	if _, ok := SymbolSource("🦆").Resolve(); ok {
		t.Error("symbol resolved after resolver was removed")
	}
}

func TestSVGSourceComparable(t *testing.T) {
	if RawSource("a") != RawSource("a") {
		t.Error("equal raw sources compare unequal")
	}
	if RawSource("a") == SymbolSource("a") {
		t.Error("raw and symbol sources with the same value compare equal")
	}
}

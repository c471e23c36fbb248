package cint

// Interop is implemented by provider types that have one canonical cint
// representation.
//
// A provider color type may be convertible to several cint types (an RGB
// type might reasonably map to EncodedSRGB or LinearSRGB). Implementing
// Interop names the one that should be used when converting between
// providers.
type Interop[C any] interface {
	Cint() C
}

// interopSetter is the pointer side of a provider type that can be filled
// from its canonical cint type.
type interopSetter[D any, C any] interface {
	*D
	SetCint(C)
}

// Into builds a provider value of type D from c. *D must implement
// SetCint(C).
//
//	var p theirs.Color = cint.Into[theirs.Color](mine.Cint())
func Into[D any, C any, PD interopSetter[D, C]](c C) D {
	var d D
	PD(&d).SetCint(c)
	return d
}

// Convert converts between two provider types through their shared
// canonical cint type C.
func Convert[D any, C any, PD interopSetter[D, C]](src Interop[C]) D {
	return Into[D, C, PD](src.Cint())
}

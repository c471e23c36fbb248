// Package cint provides a shared vocabulary of color types for Go.
//
// # Overview
//
// cint ("color interop") is a lean set of types that tag color values with
// the color space they belong to. It does not convert between spaces, apply
// transfer functions or manage gamuts. Libraries that do those things
// ("providers") convert their own color types to and from cint types, so two
// providers can exchange colors without importing each other.
//
// # Quick Start
//
// A color loaded from an 8-bit PNG or JPEG, or picked in an image editor, is
// almost always an [EncodedSRGB] of uint8:
//
//	c := cint.EncodedSRGB[uint8]{R: 255, G: 128, B: 0}
//
// The same color as floats is an EncodedSRGB[float32]. After applying the
// sRGB EOTF ("inverse gamma") it becomes a [LinearSRGB]. If the space you
// need is not listed, [GenericColor] carries three unlabeled components.
//
// # Alpha
//
// [Alpha] attaches an independent alpha value to any record:
//
//	a := cint.Oklab[float32]{L: 0.7, A: 0.1, B: -0.05}.WithAlpha(0.5)
//
// [PremultipliedAlpha] has the same shape but documents that the color
// components were already scaled by alpha. cint never checks that; it is a
// contract between the producer and the consumer of the value.
//
// # Layout
//
// Every record with N components of type T has the memory layout of [N]T,
// and every alpha wrapper around it has the layout of [N+1]T with alpha last.
// The ArrayPtr methods, [AlphaArrayPtr3] and friends, and [Components] rely
// on that.
//
// # Generated Code
//
// The record types live in spaces_gen.go, generated from spaces.yaml by
// cmd/cintgen. Edit the table, then run go generate.
package cint

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)

//go:generate go run ./cmd/cintgen -table spaces.yaml -out spaces_gen.go -test-out spaces_gen_test.go

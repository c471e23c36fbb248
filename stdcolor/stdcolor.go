// Package stdcolor relabels image/color values as cint records and back.
//
// Every function here is a structural, lossless conversion: the standard
// library types already carry a well-defined space and alpha convention, so
// no component is scaled or rounded. color.RGBA and color.RGBA64 are
// alpha-premultiplied and map to [cint.PremultipliedAlpha]; color.NRGBA and
// color.NRGBA64 are not and map to [cint.Alpha].
package stdcolor

import (
	"image/color"

	"github.com/gogpu/cint"
)

// Common record aliases for the standard library layouts.
type (
	// SRGBA8 is an 8-bit encoded sRGB color with independent alpha.
	SRGBA8 = cint.Alpha[uint8, cint.EncodedSRGB[uint8]]
	// PremultipliedSRGBA8 is an 8-bit encoded sRGB color with premultiplied alpha.
	PremultipliedSRGBA8 = cint.PremultipliedAlpha[uint8, cint.EncodedSRGB[uint8]]
	// SRGBA16 is a 16-bit encoded sRGB color with independent alpha.
	SRGBA16 = cint.Alpha[uint16, cint.EncodedSRGB[uint16]]
	// PremultipliedSRGBA16 is a 16-bit encoded sRGB color with premultiplied alpha.
	PremultipliedSRGBA16 = cint.PremultipliedAlpha[uint16, cint.EncodedSRGB[uint16]]
)

// FromNRGBA returns c as an sRGB color with independent alpha.
func FromNRGBA(c color.NRGBA) SRGBA8 {
	return cint.EncodedSRGB[uint8]{R: c.R, G: c.G, B: c.B}.WithAlpha(c.A)
}

// NRGBA is the inverse of [FromNRGBA].
func NRGBA(c SRGBA8) color.NRGBA {
	return color.NRGBA{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: c.Alpha}
}

// FromRGBA returns c as an sRGB color with premultiplied alpha.
func FromRGBA(c color.RGBA) PremultipliedSRGBA8 {
	return cint.EncodedSRGB[uint8]{R: c.R, G: c.G, B: c.B}.WithPremultipliedAlpha(c.A)
}

// RGBA is the inverse of [FromRGBA].
func RGBA(c PremultipliedSRGBA8) color.RGBA {
	return color.RGBA{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: c.Alpha}
}

// FromNRGBA64 returns c as a 16-bit sRGB color with independent alpha.
func FromNRGBA64(c color.NRGBA64) SRGBA16 {
	return cint.EncodedSRGB[uint16]{R: c.R, G: c.G, B: c.B}.WithAlpha(c.A)
}

// NRGBA64 is the inverse of [FromNRGBA64].
func NRGBA64(c SRGBA16) color.NRGBA64 {
	return color.NRGBA64{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: c.Alpha}
}

// FromRGBA64 returns c as a 16-bit sRGB color with premultiplied alpha.
func FromRGBA64(c color.RGBA64) PremultipliedSRGBA16 {
	return cint.EncodedSRGB[uint16]{R: c.R, G: c.G, B: c.B}.WithPremultipliedAlpha(c.A)
}

// RGBA64 is the inverse of [FromRGBA64].
func RGBA64(c PremultipliedSRGBA16) color.RGBA64 {
	return color.RGBA64{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: c.Alpha}
}

// FromGray returns c as an 8-bit sRGB-encoded gray level.
func FromGray(c color.Gray) cint.Luma[uint8] {
	return cint.Luma[uint8]{L: c.Y}
}

// Gray is the inverse of [FromGray].
func Gray(c cint.Luma[uint8]) color.Gray {
	return color.Gray{Y: c.L}
}

// FromGray16 returns c as a 16-bit sRGB-encoded gray level.
func FromGray16(c color.Gray16) cint.Luma[uint16] {
	return cint.Luma[uint16]{L: c.Y}
}

// Gray16 is the inverse of [FromGray16].
func Gray16(c cint.Luma[uint16]) color.Gray16 {
	return color.Gray16{Y: c.L}
}

// FromYCbCr returns c as a full-range BT.601 Y'CbCr record.
func FromYCbCr(c color.YCbCr) cint.YCbCr[uint8] {
	return cint.YCbCr[uint8]{Y: c.Y, Cb: c.Cb, Cr: c.Cr}
}

// YCbCr is the inverse of [FromYCbCr].
func YCbCr(c cint.YCbCr[uint8]) color.YCbCr {
	return color.YCbCr{Y: c.Y, Cb: c.Cb, Cr: c.Cr}
}

// FromNYCbCrA returns c as a Y'CbCr record with independent alpha.
func FromNYCbCrA(c color.NYCbCrA) cint.Alpha[uint8, cint.YCbCr[uint8]] {
	return FromYCbCr(c.YCbCr).WithAlpha(c.A)
}

// NYCbCrA is the inverse of [FromNYCbCrA].
func NYCbCrA(c cint.Alpha[uint8, cint.YCbCr[uint8]]) color.NYCbCrA {
	return color.NYCbCrA{YCbCr: YCbCr(c.Color), A: c.Alpha}
}

// Space returns the space of the records that c's concrete type maps to,
// or cint.SpaceUnknown for types this package does not relabel.
func Space(c color.Color) cint.Space {
	switch c.(type) {
	case color.RGBA, color.NRGBA, color.RGBA64, color.NRGBA64:
		return cint.SpaceEncodedSRGB
	case color.Gray, color.Gray16:
		return cint.SpaceLuma
	case color.YCbCr, color.NYCbCrA:
		return cint.SpaceYCbCr
	}
	return cint.SpaceUnknown
}

// Premultiplied reports whether c's concrete type stores premultiplied
// components. ok is false for types this package does not relabel, and for
// types without alpha.
func Premultiplied(c color.Color) (premultiplied, ok bool) {
	switch c.(type) {
	case color.RGBA, color.RGBA64:
		return true, true
	case color.NRGBA, color.NRGBA64, color.NYCbCrA:
		return false, true
	}
	return false, false
}

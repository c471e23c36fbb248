package cint

import "unsafe"

// Alpha is a color with an alpha component.
//
// The color components and the alpha component are independent of each
// other.
type Alpha[T Component, C Color[T]] struct {
	// Color is the contained color, untouched by Alpha.
	Color C
	// Alpha is the alpha component.
	Alpha T
}

// Space returns the space of the contained color.
func (a Alpha[T, C]) Space() Space { return a.Color.Space() }

// Premultiplied reports whether the color components are premultiplied.
// It is always false for Alpha.
func (Alpha[T, C]) Premultiplied() bool { return false }

// PremultipliedAlpha is a color whose components have been premultiplied by
// its alpha component.
//
// Premultiplication is a promise made by whoever built the value.
// PremultipliedAlpha does not perform or verify it.
type PremultipliedAlpha[T Component, C Color[T]] struct {
	// Color is the contained color, already multiplied by Alpha.
	Color C
	// Alpha is the alpha component.
	Alpha T
}

// Space returns the space of the contained color.
func (a PremultipliedAlpha[T, C]) Space() Space { return a.Color.Space() }

// Premultiplied reports whether the color components are premultiplied.
// It is always true for PremultipliedAlpha.
func (PremultipliedAlpha[T, C]) Premultiplied() bool { return true }

// setter is the pointer side of a record type, used to build records
// generically from arrays.
type setter[C any, A any] interface {
	*C
	SetArray(A)
}

// AlphaFromArray1 builds an Alpha from a one-component record and alpha.
// The last element is the alpha value.
func AlphaFromArray1[C Color1[T], T Component, PC setter[C, [1]T]](a [2]T) Alpha[T, C] {
	var c C
	PC(&c).SetArray([1]T{a[0]})
	return Alpha[T, C]{Color: c, Alpha: a[1]}
}

// AlphaToArray1 is the inverse of [AlphaFromArray1].
func AlphaToArray1[T Component, C Color1[T]](a Alpha[T, C]) [2]T {
	c := a.Color.Array()
	return [2]T{c[0], a.Alpha}
}

// AlphaFromArray2 builds an Alpha from a two-component record and alpha.
// The last element is the alpha value.
func AlphaFromArray2[C Color2[T], T Component, PC setter[C, [2]T]](a [3]T) Alpha[T, C] {
	var c C
	PC(&c).SetArray([2]T{a[0], a[1]})
	return Alpha[T, C]{Color: c, Alpha: a[2]}
}

// AlphaToArray2 is the inverse of [AlphaFromArray2].
func AlphaToArray2[T Component, C Color2[T]](a Alpha[T, C]) [3]T {
	c := a.Color.Array()
	return [3]T{c[0], c[1], a.Alpha}
}

// AlphaFromArray3 builds an Alpha from a three-component record and alpha.
// The last element is the alpha value.
//
//	c := cint.AlphaFromArray3[cint.EncodedSRGB[uint8]]([4]uint8{255, 0, 0, 128})
func AlphaFromArray3[C Color3[T], T Component, PC setter[C, [3]T]](a [4]T) Alpha[T, C] {
	var c C
	PC(&c).SetArray([3]T{a[0], a[1], a[2]})
	return Alpha[T, C]{Color: c, Alpha: a[3]}
}

// AlphaToArray3 is the inverse of [AlphaFromArray3].
func AlphaToArray3[T Component, C Color3[T]](a Alpha[T, C]) [4]T {
	c := a.Color.Array()
	return [4]T{c[0], c[1], c[2], a.Alpha}
}

// PremultipliedFromArray1 builds a PremultipliedAlpha from a one-component
// record and alpha. The last element is the alpha value.
func PremultipliedFromArray1[C Color1[T], T Component, PC setter[C, [1]T]](a [2]T) PremultipliedAlpha[T, C] {
	var c C
	PC(&c).SetArray([1]T{a[0]})
	return PremultipliedAlpha[T, C]{Color: c, Alpha: a[1]}
}

// PremultipliedToArray1 is the inverse of [PremultipliedFromArray1].
func PremultipliedToArray1[T Component, C Color1[T]](a PremultipliedAlpha[T, C]) [2]T {
	c := a.Color.Array()
	return [2]T{c[0], a.Alpha}
}

// PremultipliedFromArray2 builds a PremultipliedAlpha from a two-component
// record and alpha. The last element is the alpha value.
func PremultipliedFromArray2[C Color2[T], T Component, PC setter[C, [2]T]](a [3]T) PremultipliedAlpha[T, C] {
	var c C
	PC(&c).SetArray([2]T{a[0], a[1]})
	return PremultipliedAlpha[T, C]{Color: c, Alpha: a[2]}
}

// PremultipliedToArray2 is the inverse of [PremultipliedFromArray2].
func PremultipliedToArray2[T Component, C Color2[T]](a PremultipliedAlpha[T, C]) [3]T {
	c := a.Color.Array()
	return [3]T{c[0], c[1], a.Alpha}
}

// PremultipliedFromArray3 builds a PremultipliedAlpha from a three-component
// record and alpha. The last element is the alpha value.
func PremultipliedFromArray3[C Color3[T], T Component, PC setter[C, [3]T]](a [4]T) PremultipliedAlpha[T, C] {
	var c C
	PC(&c).SetArray([3]T{a[0], a[1], a[2]})
	return PremultipliedAlpha[T, C]{Color: c, Alpha: a[3]}
}

// PremultipliedToArray3 is the inverse of [PremultipliedFromArray3].
func PremultipliedToArray3[T Component, C Color3[T]](a PremultipliedAlpha[T, C]) [4]T {
	c := a.Color.Array()
	return [4]T{c[0], c[1], c[2], a.Alpha}
}

// AlphaArrayPtr1 views a as its two components, alpha last.
func AlphaArrayPtr1[T Component, C Color1[T]](a *Alpha[T, C]) *[2]T {
	return (*[2]T)(unsafe.Pointer(a))
}

// AlphaArrayPtr2 views a as its three components, alpha last.
func AlphaArrayPtr2[T Component, C Color2[T]](a *Alpha[T, C]) *[3]T {
	return (*[3]T)(unsafe.Pointer(a))
}

// AlphaArrayPtr3 views a as its four components, alpha last.
func AlphaArrayPtr3[T Component, C Color3[T]](a *Alpha[T, C]) *[4]T {
	return (*[4]T)(unsafe.Pointer(a))
}

// PremultipliedArrayPtr1 views a as its two components, alpha last.
func PremultipliedArrayPtr1[T Component, C Color1[T]](a *PremultipliedAlpha[T, C]) *[2]T {
	return (*[2]T)(unsafe.Pointer(a))
}

// PremultipliedArrayPtr2 views a as its three components, alpha last.
func PremultipliedArrayPtr2[T Component, C Color2[T]](a *PremultipliedAlpha[T, C]) *[3]T {
	return (*[3]T)(unsafe.Pointer(a))
}

// PremultipliedArrayPtr3 views a as its four components, alpha last.
func PremultipliedArrayPtr3[T Component, C Color3[T]](a *PremultipliedAlpha[T, C]) *[4]T {
	return (*[4]T)(unsafe.Pointer(a))
}

// AlphaComponents returns the components of colors as one flat slice,
// each color followed by its alpha, without copying. It is the alpha
// counterpart of [Components].
func AlphaComponents[T Component, C Color[T]](colors []Alpha[T, C]) []T {
	return flatten[T](colors)
}

// AlphaFromComponents is the inverse of [AlphaComponents].
func AlphaFromComponents[C Color[T], T Component](data []T) []Alpha[T, C] {
	return unflatten[Alpha[T, C]](data)
}

// PremultipliedComponents is like [AlphaComponents] for premultiplied colors.
func PremultipliedComponents[T Component, C Color[T]](colors []PremultipliedAlpha[T, C]) []T {
	return flatten[T](colors)
}

// PremultipliedFromComponents is the inverse of [PremultipliedComponents].
func PremultipliedFromComponents[C Color[T], T Component](data []T) []PremultipliedAlpha[T, C] {
	return unflatten[PremultipliedAlpha[T, C]](data)
}

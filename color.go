package cint

import (
	"fmt"
	"unsafe"
)

// Component is the set of scalar types a color record can hold.
// All components of one record share a single Component type.
type Component interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// Color is implemented by every color record in this package.
//
// T is the record's component type. Component(i) returns the i-th component
// in canonical order and panics if i is out of range, like an array index.
type Color[T Component] interface {
	comparable
	Space() Space
	Component(i int) T
}

// Color1 is a Color with a single component.
type Color1[T Component] interface {
	Color[T]
	Array() [1]T
}

// Color2 is a Color with two components.
type Color2[T Component] interface {
	Color[T]
	Array() [2]T
}

// Color3 is a Color with three components.
type Color3[T Component] interface {
	Color[T]
	Array() [3]T
}

// Compile-time checks used by spaces_gen.go. Interfaces that embed
// comparable cannot be variable types, so the checks instantiate these.
func implements1[T Component, C Color1[T]]() {}
func implements2[T Component, C Color2[T]]() {}
func implements3[T Component, C Color3[T]]() {}

// Components returns the components of colors as one flat slice, in
// canonical order, without copying. Writes through the result modify colors.
//
// The result has len(colors)*N elements, where N is the number of T values
// that make up one C. C must consist of T fields only; Components panics if
// its size is not a whole number of components.
func Components[T Component, C Color[T]](colors []C) []T {
	return flatten[T](colors)
}

// FromComponents is the inverse of [Components]: it views a flat component
// slice as records of type C without copying. Trailing components that do
// not fill a whole record are not part of the result.
func FromComponents[C Color[T], T Component](data []T) []C {
	return unflatten[C](data)
}

// stride returns how many T values make up one E. The record count of a
// view must follow the memory layout, not the record's Space, so it is
// derived from the sizes alone.
func stride[T Component, E any]() int {
	var (
		e E
		t T
	)
	size, tsize := unsafe.Sizeof(e), unsafe.Sizeof(t)
	if size == 0 || size%tsize != 0 {
		panic(fmt.Sprintf("cint: %T is not a whole number of %T components", e, t))
	}
	return int(size / tsize)
}

func flatten[T Component, E any](s []E) []T {
	n := stride[T, E]()
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*n)
}

func unflatten[E any, T Component](data []T) []E {
	count := len(data) / stride[T, E]()
	if count == 0 {
		return nil
	}
	return unsafe.Slice((*E)(unsafe.Pointer(unsafe.SliceData(data))), count)
}

// Package gpu maps cint records onto GPU-side vocabulary.
//
// A cint record has the same memory layout as an array of its components, so
// a slice of records can be uploaded to a buffer or texture without
// repacking. This package answers the questions that come up at that
// boundary: which texture format samples a given layout, what the matching
// WGSL struct looks like, and whether the shader compiler accepts it.
//
// Nothing here talks to a device. Compilation goes through naga, which
// translates WGSL to SPIR-V on the CPU.
//
// Usage:
//
//	src, _ := gpu.WGSLStruct(cint.SpaceOklab, gpu.F32, true)
//	format, ok := gpu.TextureFormat[float32](cint.SpaceOklab, true)
//	buf := gpu.Bytes[float32](pixels)
package gpu

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/cint"
)

// ErrScalar is returned for a scalar type WGSL has no host-shareable
// equivalent for.
var ErrScalar = errors.New("gpu: unsupported scalar type")

// Scalar is a WGSL scalar type name.
type Scalar string

// Scalars with a 32-bit host-shareable layout.
const (
	F32 Scalar = "f32"
	I32 Scalar = "i32"
	U32 Scalar = "u32"
)

// Valid reports whether s is one of F32, I32 or U32.
func (s Scalar) Valid() bool {
	switch s {
	case F32, I32, U32:
		return true
	}
	return false
}

// ScalarOf returns the WGSL scalar matching the Go component type T.
// Only float32, int32 and uint32 have one; named types with those
// underlying types are not recognized.
func ScalarOf[T cint.Component]() (Scalar, bool) {
	var zero T
	switch any(zero).(type) {
	case float32:
		return F32, true
	case int32:
		return I32, true
	case uint32:
		return U32, true
	}
	return "", false
}

// TextureFormat returns the texture format whose texels have the layout of
// a record of space with component type T, with a trailing alpha component
// when alpha is true.
//
// Encoded sRGB with 8-bit components maps to the sRGB texture format so
// sampling decodes it; every other 8-bit layout maps to a unorm format
// and is sampled as stored. Three components without alpha have no texture
// format, and neither do component types other than uint8 and float32.
func TextureFormat[T cint.Component](space cint.Space, alpha bool) (gputypes.TextureFormat, bool) {
	channels := space.NumComponents()
	if channels == 0 {
		return gputypes.TextureFormatUndefined, false
	}
	if alpha {
		channels++
	}

	var zero T
	switch any(zero).(type) {
	case uint8:
		switch channels {
		case 1:
			return gputypes.TextureFormatR8Unorm, true
		case 4:
			if space == cint.SpaceEncodedSRGB {
				return gputypes.TextureFormatRGBA8UnormSrgb, true
			}
			return gputypes.TextureFormatRGBA8Unorm, true
		}
	case float32:
		switch channels {
		case 1:
			return gputypes.TextureFormatR32Float, true
		case 2:
			return gputypes.TextureFormatRG32Float, true
		case 4:
			return gputypes.TextureFormatRGBA32Float, true
		}
	}
	return gputypes.TextureFormatUndefined, false
}

// StructName returns the WGSL struct name WGSLStruct uses for space.
func StructName(space cint.Space, alpha bool) string {
	if alpha {
		return space.String() + "Alpha"
	}
	return space.String()
}

// WGSLStruct returns a WGSL struct declaration whose members mirror the
// fields of a record of space, in order, each of type scalar. When alpha is
// true a trailing "alpha" member is added, matching [cint.Alpha] and
// [cint.PremultipliedAlpha].
//
// Member names are the component names in lower case:
//
//	struct Oklab {
//	    l: f32,
//	    a: f32,
//	    b: f32,
//	}
func WGSLStruct(space cint.Space, scalar Scalar, alpha bool) (string, error) {
	if !space.Valid() {
		return "", fmt.Errorf("gpu: %w: %d", cint.ErrUnknownSpace, uint8(space))
	}
	if !scalar.Valid() {
		return "", fmt.Errorf("%w: %q", ErrScalar, string(scalar))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "struct %s {\n", StructName(space, alpha))
	for _, name := range members(space, alpha) {
		fmt.Fprintf(&sb, "    %s: %s,\n", name, scalar)
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}

// members returns the WGSL member names of space's struct.
func members(space cint.Space, alpha bool) []string {
	names := space.ComponentNames()
	for i, n := range names {
		names[i] = strings.ToLower(n)
	}
	if alpha {
		names = append(names, "alpha")
	}
	return names
}

// layoutBufferLen is the element count of the storage array in Shader.
// A fixed size keeps the module within what every naga backend supports.
const layoutBufferLen = 64

// Shader returns a complete WGSL compute module that declares the struct
// from WGSLStruct, binds an array of it as a read-write storage buffer, and
// copies every member of one element through a local.
func Shader(space cint.Space, scalar Scalar, alpha bool) (string, error) {
	decl, err := WGSLStruct(space, scalar, alpha)
	if err != nil {
		return "", err
	}
	name := StructName(space, alpha)

	var sb strings.Builder
	sb.WriteString(decl)
	sb.WriteString("\n")
	sb.WriteString("@group(0) @binding(0)\n")
	fmt.Fprintf(&sb, "var<storage, read_write> colors: array<%s, %d>;\n", name, layoutBufferLen)
	sb.WriteString("\n")
	sb.WriteString("@compute @workgroup_size(1)\n")
	sb.WriteString("fn main(@builtin(global_invocation_id) id: vec3<u32>) {\n")
	fmt.Fprintf(&sb, "    let i = id.x %% %du;\n", layoutBufferLen)
	fmt.Fprintf(&sb, "    var c: %s = colors[i];\n", name)
	for _, m := range members(space, alpha) {
		fmt.Fprintf(&sb, "    colors[i].%s = c.%s;\n", m, m)
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}

// CheckLayout compiles the module from Shader to SPIR-V and returns the
// result. An error means the layout cannot be expressed in a shader.
func CheckLayout(space cint.Space, scalar Scalar, alpha bool) ([]byte, error) {
	src, err := Shader(space, scalar, alpha)
	if err != nil {
		return nil, err
	}
	spirv, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile %s layout: %w", StructName(space, alpha), err)
	}
	return spirv, nil
}

// Bytes returns the bytes of colors for a buffer upload. The result aliases
// colors; it is nil when colors is empty.
func Bytes[T cint.Component, C cint.Color[T]](colors []C) []byte {
	return sliceBytes(colors)
}

// AlphaBytes is like Bytes for colors with alpha, the layout the
// four-channel texture formats expect:
//
//	px := []stdcolor.SRGBA8{...}
//	queue.WriteTexture(dst, gpu.AlphaBytes(px), layout, size)
func AlphaBytes[T cint.Component, C cint.Color[T]](colors []cint.Alpha[T, C]) []byte {
	return sliceBytes(colors)
}

// PremultipliedBytes is like AlphaBytes for premultiplied colors.
func PremultipliedBytes[T cint.Component, C cint.Color[T]](colors []cint.PremultipliedAlpha[T, C]) []byte {
	return sliceBytes(colors)
}

func sliceBytes[E any](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero E
	size := len(s) * int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), size) //nolint:gosec // records are plain component arrays
}

package gen

const sourceTemplate = `// Code generated by cintgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import "unsafe"

// Color spaces, one per record type.
const (
{{- range $i, $s := .Spaces}}
	// Space{{$s.Name}} is the space of {{$s.Name}} records.
	Space{{$s.Name}}{{if eq $i 0}} Space = iota + 1{{end}}
{{- end}}
)

var spaceInfos = [...]spaceInfo{
{{- range .Spaces}}
	Space{{.Name}}: {
		name:       "{{.Name}}",
		components: []string{ {{- .Names -}} },
{{- if .HasCICP}}
		cicp:       {{.CICP}},
		hasCICP:    true,
{{- end}}
	},
{{- end}}
}

var (
{{- range .Spaces}}
	_ = implements{{.N}}[float32, {{.Name}}[float32]]
{{- end}}
)
{{range .Spaces}}
{{range .Doc}}{{comment .}}
{{end -}}
type {{.Name}}[T Component] struct {
{{- range .Fields}}
	{{comment .Doc}}
	{{.Name}} T
{{- end}}
}

// {{.Name}}FromArray returns the {{.Name}} whose components, in canonical order, are a.
func {{.Name}}FromArray[T Component](a [{{.N}}]T) {{.Name}}[T] {
	return {{.Name}}[T]{ {{- .Keyed "a" -}} }
}

// Array returns the components of c in canonical order.
func (c {{.Name}}[T]) Array() [{{.N}}]T {
	return [{{.N}}]T{ {{- .Selectors "c" -}} }
}

// SetArray sets the components of c from a, in canonical order.
func (c *{{.Name}}[T]) SetArray(a [{{.N}}]T) {
	{{.Selectors "c"}} = {{.Elems "a"}}
}

// ArrayPtr views the memory of c as an array of its components.
func (c *{{.Name}}[T]) ArrayPtr() *[{{.N}}]T {
	return (*[{{.N}}]T)(unsafe.Pointer(c))
}

// Component returns the i-th component of c in canonical order.
// It panics if i is not in [0, {{.N}}).
func (c {{.Name}}[T]) Component(i int) T {
	return c.Array()[i]
}

// Space returns Space{{.Name}}.
func ({{.Name}}[T]) Space() Space { return Space{{.Name}} }

// WithAlpha returns c with an independent alpha component.
func (c {{.Name}}[T]) WithAlpha(alpha T) Alpha[T, {{.Name}}[T]] {
	return Alpha[T, {{.Name}}[T]]{Color: c, Alpha: alpha}
}

// WithPremultipliedAlpha returns c with an alpha component that the caller
// asserts has already been multiplied into c.
func (c {{.Name}}[T]) WithPremultipliedAlpha(alpha T) PremultipliedAlpha[T, {{.Name}}[T]] {
	return PremultipliedAlpha[T, {{.Name}}[T]]{Color: c, Alpha: alpha}
}
{{end -}}
`

const testTemplate = `// Code generated by cintgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import "testing"
{{range .Spaces}}
func Test{{.Name}}(t *testing.T) {
	testRecord{{.N}}(t, Space{{.Name}}, {{.Name}}FromArray[float64], func(c *{{.Name}}[float64]) []*float64 {
		return []*float64{ {{- .Pointers "c" -}} }
	})
	testRecord{{.N}}(t, Space{{.Name}}, {{.Name}}FromArray[uint8], func(c *{{.Name}}[uint8]) []*uint8 {
		return []*uint8{ {{- .Pointers "c" -}} }
	})

	c := {{.Name}}FromArray[float32]([{{.N}}]float32{})
	if got := c.WithAlpha(0.5); got.Color != c || got.Alpha != 0.5 || got.Premultiplied() {
		t.Errorf("WithAlpha(0.5) = %+v", got)
	}
	if got := c.WithPremultipliedAlpha(0.5); got.Color != c || got.Alpha != 0.5 || !got.Premultiplied() {
		t.Errorf("WithPremultipliedAlpha(0.5) = %+v", got)
	}
	if names := Space{{.Name}}.ComponentNames(); len(names) != {{.N}} {{- range .Fields}} || names[{{.Index}}] != "{{.Name}}"{{end}} {
		t.Errorf("ComponentNames() = %v", names)
	}
}
{{end -}}
`

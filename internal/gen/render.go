package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// Options controls rendering.
type Options struct {
	// Package is the package clause of the output. Defaults to "cint".
	Package string
	// Source names the table in the generated header. Defaults to "spaces.yaml".
	Source string
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = "cint"
	}
	if o.Source == "" {
		o.Source = "spaces.yaml"
	}
	return o
}

// fileView is the data passed to the templates.
type fileView struct {
	Package string
	Source  string
	Spaces  []spaceView
}

type spaceView struct {
	Name    string
	Doc     []string
	N       int
	Fields  []fieldView
	HasCICP bool
	CICP    string
}

type fieldView struct {
	Name  string
	Doc   string
	Index int
}

// Names returns the quoted component names, comma separated.
func (s spaceView) Names() string {
	q := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		q[i] = strconv.Quote(f.Name)
	}
	return strings.Join(q, ", ")
}

// Selectors returns "c.R, c.G, c.B".
func (s spaceView) Selectors(recv string) string {
	q := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		q[i] = recv + "." + f.Name
	}
	return strings.Join(q, ", ")
}

// Elems returns "a[0], a[1], a[2]".
func (s spaceView) Elems(arr string) string {
	q := make([]string, len(s.Fields))
	for i := range s.Fields {
		q[i] = arr + "[" + strconv.Itoa(i) + "]"
	}
	return strings.Join(q, ", ")
}

// Keyed returns "R: a[0], G: a[1], B: a[2]".
func (s spaceView) Keyed(arr string) string {
	q := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		q[i] = f.Name + ": " + arr + "[" + strconv.Itoa(i) + "]"
	}
	return strings.Join(q, ", ")
}

// Pointers returns "&c.R, &c.G, &c.B".
func (s spaceView) Pointers(recv string) string {
	q := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		q[i] = "&" + recv + "." + f.Name
	}
	return strings.Join(q, ", ")
}

func newFileView(t *Table, opts Options) fileView {
	opts = opts.withDefaults()
	v := fileView{Package: opts.Package, Source: opts.Source}
	for _, s := range t.Spaces {
		sv := spaceView{Name: s.Name, N: len(s.Components)}
		sv.Doc = typeDoc(s.Name, s.Doc)
		for i, c := range s.Components {
			sv.Fields = append(sv.Fields, fieldView{Name: c.Name, Doc: c.Doc, Index: i})
		}
		if len(s.CICP) == 4 {
			sv.HasCICP = true
			sv.CICP = fmt.Sprintf("CICP{%d, %d, %d, %d}", s.CICP[0], s.CICP[1], s.CICP[2], s.CICP[3])
		}
		v.Spaces = append(v.Spaces, sv)
	}
	return v
}

// typeDoc turns the table's doc lines into a Go doc comment that starts
// with the type name: "A color in ..." becomes "Oklab is a color in ...".
func typeDoc(name string, lines []string) []string {
	if len(lines) == 0 {
		return []string{name + " is a color record."}
	}
	out := make([]string, len(lines))
	copy(out, lines)
	out[0] = name + " is " + lowerFirst(out[0])
	return out
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

var funcs = template.FuncMap{
	"comment": func(s string) string {
		if s == "" {
			return "//"
		}
		return "// " + s
	},
}

var (
	sourceTmpl = template.Must(template.New("source").Funcs(funcs).Parse(sourceTemplate))
	testTmpl   = template.Must(template.New("test").Funcs(funcs).Parse(testTemplate))
)

// Render writes the record declarations for t to w.
func Render(w io.Writer, t *Table, opts Options) error {
	return render(w, sourceTmpl, t, opts)
}

// RenderTests writes the layout tests for the records of t to w.
func RenderTests(w io.Writer, t *Table, opts Options) error {
	return render(w, testTmpl, t, opts)
}

func render(w io.Writer, tmpl *template.Template, t *Table, opts Options) error {
	view := newFileView(t, opts)
	for _, s := range view.Spaces {
		Logger().Debug("rendering space", "template", tmpl.Name(), "space", s.Name, "components", s.N)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("gen: execute %s template: %w", tmpl.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("gen: format %s output: %w", tmpl.Name(), err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("gen: write %s output: %w", tmpl.Name(), err)
	}

	Logger().Info("rendered", "template", tmpl.Name(), "spaces", len(view.Spaces), "bytes", len(src))
	return nil
}

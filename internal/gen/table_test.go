package gen

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

const validTable = `spaces:
  - name: Gray
    doc:
      - A gray level.
    components:
      - {name: V, doc: "Value."}
  - name: Lab
    doc:
      - A Lab color.
      - Second paragraph line.
    components:
      - {name: L, doc: "Lightness."}
      - {name: A, doc: "Green-red axis."}
      - {name: B, doc: "Blue-yellow axis."}
    cicp: [1, 13, 0, 1]
`

func TestLoadTable(t *testing.T) {
	tbl, err := LoadTable(strings.NewReader(validTable))
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if len(tbl.Spaces) != 2 {
		t.Fatalf("len(Spaces) = %d, want 2", len(tbl.Spaces))
	}
	lab := tbl.Spaces[1]
	if lab.Name != "Lab" || len(lab.Doc) != 2 || len(lab.Components) != 3 {
		t.Errorf("Lab = %+v", lab)
	}
	if lab.Components[1].Name != "A" || lab.Components[1].Doc != "Green-red axis." {
		t.Errorf("Lab.Components[1] = %+v", lab.Components[1])
	}
	if len(lab.CICP) != 4 || lab.CICP[1] != 13 {
		t.Errorf("Lab.CICP = %v", lab.CICP)
	}
	if tbl.Spaces[0].CICP != nil {
		t.Errorf("Gray.CICP = %v, want nil", tbl.Spaces[0].CICP)
	}
}

func TestLoadTableLogs(t *testing.T) {
	buf := captureLogs(t)
	if _, err := LoadTable(strings.NewReader(validTable)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "space table loaded") || !strings.Contains(buf.String(), "spaces=2") {
		t.Errorf("missing load log, got: %s", buf.String())
	}
}

func TestLoadTableSchemaErrors(t *testing.T) {
	tests := []struct {
		name  string
		table string
	}{
		{"not yaml", "spaces: [\n"},
		{"missing spaces", "other: 1\n"},
		{"empty spaces", "spaces: []\n"},
		{"lower-case name", "spaces:\n  - {name: gray, doc: [x], components: [{name: V, doc: v}]}\n"},
		{"no doc", "spaces:\n  - {name: Gray, components: [{name: V, doc: v}]}\n"},
		{"no components", "spaces:\n  - {name: Gray, doc: [x], components: []}\n"},
		{"four components", "spaces:\n  - {name: Gray, doc: [x], components: [{name: A, doc: a}, {name: B, doc: b}, {name: C, doc: c}, {name: D, doc: d}]}\n"},
		{"empty component doc", "spaces:\n  - {name: Gray, doc: [x], components: [{name: V, doc: \"\"}]}\n"},
		{"short cicp", "spaces:\n  - {name: Gray, doc: [x], components: [{name: V, doc: v}], cicp: [1, 2]}\n"},
		{"cicp out of range", "spaces:\n  - {name: Gray, doc: [x], components: [{name: V, doc: v}], cicp: [1, 2, 3, 256]}\n"},
		{"cicp full range flag", "spaces:\n  - {name: Gray, doc: [x], components: [{name: V, doc: v}], cicp: [1, 13, 0, 2]}\n"},
		{"unknown field", "spaces:\n  - {name: Gray, doc: [x], components: [{name: V, doc: v}], extra: true}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTable(strings.NewReader(tt.table)); err == nil {
				t.Error("LoadTable accepted an invalid table")
			}
		})
	}
}

func TestLoadTableSchemaErrorIsInvalidTable(t *testing.T) {
	_, err := LoadTable(strings.NewReader("spaces: []\n"))
	if !errors.Is(err, ErrInvalidTable) {
		t.Errorf("LoadTable error = %v, want ErrInvalidTable", err)
	}
}

func TestValidate(t *testing.T) {
	comp := func(names ...string) []ComponentDef {
		out := make([]ComponentDef, len(names))
		for i, n := range names {
			out[i] = ComponentDef{Name: n, Doc: n}
		}
		return out
	}
	tests := []struct {
		name   string
		table  Table
		errMsg string
	}{
		{"empty", Table{}, "no spaces declared"},
		{
			"duplicate space",
			Table{Spaces: []SpaceDef{
				{Name: "Gray", Doc: []string{"x"}, Components: comp("V")},
				{Name: "Gray", Doc: []string{"x"}, Components: comp("V")},
			}},
			`duplicate space "Gray"`,
		},
		{
			"duplicate component",
			Table{Spaces: []SpaceDef{{Name: "Lab", Doc: []string{"x"}, Components: comp("L", "L")}}},
			`duplicate component "L"`,
		},
		{
			"reserved component",
			Table{Spaces: []SpaceDef{{Name: "Odd", Doc: []string{"x"}, Components: comp("Space")}}},
			"collides with a generated method",
		},
		{
			"unexported component",
			Table{Spaces: []SpaceDef{{Name: "Odd", Doc: []string{"x"}, Components: comp("v")}}},
			"not an exported Go identifier",
		},
		{
			"bad space name",
			Table{Spaces: []SpaceDef{{Name: "1Odd", Doc: []string{"x"}, Components: comp("V")}}},
			"not an exported Go identifier",
		},
		{
			"too many components",
			Table{Spaces: []SpaceDef{{Name: "Quad", Doc: []string{"x"}, Components: comp("A", "B", "C", "D")}}},
			"4 components, want 1 to 3",
		},
		{
			"cicp length",
			Table{Spaces: []SpaceDef{{Name: "Gray", Doc: []string{"x"}, Components: comp("V"), CICP: []int{1}}}},
			"cicp has 1 code points",
		},
		{
			"cicp full range flag",
			Table{Spaces: []SpaceDef{{Name: "Gray", Doc: []string{"x"}, Components: comp("V"), CICP: []int{1, 13, 0, 2}}}},
			"video full range flag 2",
		},
		{
			"unknown redeclares SpaceUnknown",
			Table{Spaces: []SpaceDef{{Name: "Unknown", Doc: []string{"x"}, Components: comp("V")}}},
			`"SpaceUnknown" is already declared`,
		},
		{
			"alpha type",
			Table{Spaces: []SpaceDef{{Name: "Alpha", Doc: []string{"x"}, Components: comp("V")}}},
			`"Alpha" is already declared`,
		},
		{
			"space from cicp",
			Table{Spaces: []SpaceDef{{Name: "FromCICP", Doc: []string{"x"}, Components: comp("V")}}},
			`"SpaceFromCICP" is already declared`,
		},
		{
			"generated names collide",
			Table{Spaces: []SpaceDef{
				{Name: "Gray", Doc: []string{"x"}, Components: comp("V")},
				{Name: "GrayFromArray", Doc: []string{"x"}, Components: comp("V")},
			}},
			`"GrayFromArray" collides with space Gray`,
		},
		{
			"cicp range",
			Table{Spaces: []SpaceDef{{Name: "Gray", Doc: []string{"x"}, Components: comp("V"), CICP: []int{1, 2, 3, -1}}}},
			"out of range",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if !errors.Is(err, ErrInvalidTable) {
				t.Fatalf("Validate() = %v, want ErrInvalidTable", err)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() = %v, want message containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidateWarnsOnMissingDoc(t *testing.T) {
	buf := captureLogs(t)
	tbl := Table{Spaces: []SpaceDef{{Name: "Gray", Components: []ComponentDef{{Name: "V", Doc: "v"}}}}}
	if err := tbl.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if !strings.Contains(buf.String(), "space has no documentation") {
		t.Errorf("missing warning, got: %s", buf.String())
	}
}

func TestLoadFileRepositoryTable(t *testing.T) {
	tbl, err := LoadFile("../../spaces.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(tbl.Spaces) != 32 {
		t.Errorf("len(Spaces) = %d, want 32", len(tbl.Spaces))
	}
	if tbl.Spaces[0].Name != "EncodedSRGB" {
		t.Errorf("first space = %q, want EncodedSRGB", tbl.Spaces[0].Name)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	if err == nil || !strings.Contains(err.Error(), "gen: open table") {
		t.Errorf("LoadFile(missing) = %v", err)
	}
}

func TestValidateRejectsPredeclaredNames(t *testing.T) {
	for _, name := range []string{"Unknown", "Alpha", "PremultipliedAlpha", "Space", "Color", "Color1", "Color2", "Color3", "CICP", "Interop"} {
		tbl := Table{Spaces: []SpaceDef{{Name: name, Doc: []string{"x"}, Components: []ComponentDef{{Name: "V", Doc: "v"}}}}}
		if err := tbl.Validate(); !errors.Is(err, ErrInvalidTable) {
			t.Errorf("Validate(%q) = %v, want ErrInvalidTable", name, err)
		}
	}
}

// TestPredeclaredMatchesPackage keeps predeclared in step with the exported
// identifiers written by hand in the cint package.
func TestPredeclaredMatchesPackage(t *testing.T) {
	files, err := filepath.Glob("../../*.go")
	if err != nil {
		t.Fatal(err)
	}
	declared := make(map[string]bool)
	fset := token.NewFileSet()
	for _, path := range files {
		base := filepath.Base(path)
		if strings.HasSuffix(base, "_test.go") || base == "spaces_gen.go" {
			continue
		}
		f, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			t.Fatal(err)
		}
		for _, d := range f.Decls {
			switch d := d.(type) {
			case *ast.FuncDecl:
				if d.Recv == nil && d.Name.IsExported() {
					declared[d.Name.Name] = true
				}
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					switch spec := spec.(type) {
					case *ast.TypeSpec:
						if spec.Name.IsExported() {
							declared[spec.Name.Name] = true
						}
					case *ast.ValueSpec:
						for _, n := range spec.Names {
							if n.IsExported() {
								declared[n.Name] = true
							}
						}
					}
				}
			}
		}
	}
	if len(declared) == 0 {
		t.Fatal("no declarations found in ../../")
	}
	for name := range declared {
		if !predeclared[name] {
			t.Errorf("%s is declared by the package but missing from predeclared", name)
		}
	}
	for name := range predeclared {
		if !declared[name] {
			t.Errorf("%s is in predeclared but not declared by the package", name)
		}
	}
}

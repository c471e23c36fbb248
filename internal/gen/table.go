// Package gen renders the cint color space records from a YAML table.
//
// The table (spaces.yaml at the repository root) lists every color space
// with its documentation, its components in canonical order and, optionally,
// its ITU-T H.273 code points. LoadTable validates it against an embedded
// JSON Schema and a few rules the schema cannot express. Render and
// RenderTests turn it into gofmt'd Go source.
package gen

import (
	_ "embed"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTable is returned, joined with the individual problems, when a
// table fails validation.
var ErrInvalidTable = errors.New("gen: invalid space table")

//go:embed schema.json
var schemaJSON []byte

// MaxComponents is the largest component count a record may have.
const MaxComponents = 3

// reserved are the method names every generated record declares.
// Component fields must not reuse them.
var reserved = map[string]bool{
	"Array":                  true,
	"ArrayPtr":               true,
	"Component":              true,
	"SetArray":               true,
	"Space":                  true,
	"WithAlpha":              true,
	"WithPremultipliedAlpha": true,
}

// predeclared are the exported identifiers the cint package declares by
// hand. No generated identifier may reuse one.
var predeclared = map[string]bool{
	"Alpha": true, "AlphaArrayPtr1": true, "AlphaArrayPtr2": true, "AlphaArrayPtr3": true,
	"AlphaComponents": true, "AlphaFromArray1": true, "AlphaFromArray2": true, "AlphaFromArray3": true,
	"AlphaFromComponents": true, "AlphaToArray1": true, "AlphaToArray2": true, "AlphaToArray3": true,
	"CICP": true, "Color": true, "Color1": true, "Color2": true, "Color3": true,
	"Component": true, "Components": true, "Convert": true, "ErrUnknownSpace": true,
	"FromComponents": true, "Interop": true, "Into": true, "ParseSpace": true,
	"PremultipliedAlpha": true, "PremultipliedArrayPtr1": true, "PremultipliedArrayPtr2": true,
	"PremultipliedArrayPtr3": true, "PremultipliedComponents": true, "PremultipliedFromArray1": true,
	"PremultipliedFromArray2": true, "PremultipliedFromArray3": true, "PremultipliedFromComponents": true,
	"PremultipliedToArray1": true, "PremultipliedToArray2": true, "PremultipliedToArray3": true,
	"Space": true, "SpaceFromCICP": true, "SpaceUnknown": true, "Spaces": true,
	"Version": true, "VersionMajor": true, "VersionMinor": true, "VersionPatch": true,
}

// generatedIdents returns the package-level identifiers rendered for a
// space: its record type, its Space constant and its FromArray function.
func generatedIdents(name string) []string {
	return []string{name, "Space" + name, name + "FromArray"}
}

// Table is the decoded space table.
type Table struct {
	Spaces []SpaceDef `yaml:"spaces"`
}

// SpaceDef declares one color space record.
type SpaceDef struct {
	Name       string         `yaml:"name"`
	Doc        []string       `yaml:"doc"`
	Components []ComponentDef `yaml:"components"`
	CICP       []int          `yaml:"cicp,omitempty"`
}

// ComponentDef declares one field of a record.
type ComponentDef struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc"`
}

// LoadFile reads and validates the table at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gen: open table: %w", err)
	}
	defer f.Close()

	t, err := LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadTable decodes a YAML table from r and validates it.
func LoadTable(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gen: read table: %w", err)
	}

	// Validate the generic document first so schema errors point at the
	// offending field rather than at a Go type mismatch.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("gen: decode table: %w", err)
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("gen: decode table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	Logger().Info("space table loaded", "spaces", len(t.Spaces))
	return &t, nil
}

func validateSchema(doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("gen: schema validate: %w", err)
	}
	if result.Valid() {
		return nil
	}
	errs := []error{ErrInvalidTable}
	for _, e := range result.Errors() {
		errs = append(errs, errors.New(e.String()))
	}
	return errors.Join(errs...)
}

// Validate checks the rules the JSON Schema cannot express: unique space
// names, generated identifiers that collide with nothing else in the
// package, unique component names within a space, and component names that
// do not collide with generated methods.
func (t *Table) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(t.Spaces))
	owners := make(map[string]string, 3*len(t.Spaces))

	if len(t.Spaces) == 0 {
		errs = append(errs, errors.New("no spaces declared"))
	}
	for i, s := range t.Spaces {
		if !token.IsIdentifier(s.Name) || !token.IsExported(s.Name) {
			errs = append(errs, fmt.Errorf("spaces[%d]: %q is not an exported Go identifier", i, s.Name))
		}
		if seen[s.Name] {
			errs = append(errs, fmt.Errorf("spaces[%d]: duplicate space %q", i, s.Name))
		} else {
			for _, id := range generatedIdents(s.Name) {
				switch owner, ok := owners[id]; {
				case predeclared[id]:
					errs = append(errs, fmt.Errorf("%s: generated identifier %q is already declared by the package", s.Name, id))
				case ok:
					errs = append(errs, fmt.Errorf("%s: generated identifier %q collides with space %s", s.Name, id, owner))
				}
				owners[id] = s.Name
			}
		}
		seen[s.Name] = true

		if n := len(s.Components); n < 1 || n > MaxComponents {
			errs = append(errs, fmt.Errorf("%s: %d components, want 1 to %d", s.Name, n, MaxComponents))
		}
		fields := make(map[string]bool, len(s.Components))
		for _, c := range s.Components {
			switch {
			case !token.IsIdentifier(c.Name) || !token.IsExported(c.Name):
				errs = append(errs, fmt.Errorf("%s: component %q is not an exported Go identifier", s.Name, c.Name))
			case reserved[c.Name]:
				errs = append(errs, fmt.Errorf("%s: component %q collides with a generated method", s.Name, c.Name))
			case fields[c.Name]:
				errs = append(errs, fmt.Errorf("%s: duplicate component %q", s.Name, c.Name))
			}
			fields[c.Name] = true
		}

		if s.CICP != nil && len(s.CICP) != 4 {
			errs = append(errs, fmt.Errorf("%s: cicp has %d code points, want 4", s.Name, len(s.CICP)))
		}
		for _, v := range s.CICP {
			if v < 0 || v > 255 {
				errs = append(errs, fmt.Errorf("%s: cicp code point %d out of range", s.Name, v))
			}
		}
		if len(s.CICP) == 4 && s.CICP[3] != 0 && s.CICP[3] != 1 {
			errs = append(errs, fmt.Errorf("%s: cicp video full range flag %d, want 0 or 1", s.Name, s.CICP[3]))
		}
		if len(s.Doc) == 0 {
			Logger().Warn("space has no documentation", "space", s.Name)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidTable}, errs...)...)
}

package cint

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/text/cases"
)

// ErrUnknownSpace is returned when a name does not match any color space.
var ErrUnknownSpace = errors.New("cint: unknown color space")

// Space identifies the color space a record belongs to.
//
// Every record type has exactly one Space, returned by its Space method.
// The zero value, SpaceUnknown, is not a color space.
type Space uint8

// SpaceUnknown is the zero Space. The remaining constants are generated.
const SpaceUnknown Space = 0

// spaceInfo describes one declared space. Filled in by spaces_gen.go.
type spaceInfo struct {
	name       string
	components []string
	cicp       CICP
	hasCICP    bool
}

// foldedNames maps case-folded space names to spaces for ParseSpace.
var foldedNames = func() map[string]Space {
	m := make(map[string]Space, len(spaceInfos))
	for _, s := range Spaces() {
		m[foldName(s.String())] = s
	}
	return m
}()

func foldName(name string) string {
	// cases.Caser keeps state; one per call.
	return cases.Fold().String(name)
}

// Valid reports whether s is a declared color space.
func (s Space) Valid() bool {
	return s > SpaceUnknown && int(s) < len(spaceInfos)
}

// String returns the name of the record type for s, e.g. "Oklab".
func (s Space) String() string {
	switch {
	case s == SpaceUnknown:
		return "Unknown"
	case !s.Valid():
		return "Space(" + strconv.Itoa(int(s)) + ")"
	}
	return spaceInfos[s].name
}

// NumComponents returns how many scalar components records of s hold.
// It returns 0 for spaces that are not valid.
func (s Space) NumComponents() int {
	if !s.Valid() {
		return 0
	}
	return len(spaceInfos[s].components)
}

// ComponentNames returns the field names of records of s in canonical order.
func (s Space) ComponentNames() []string {
	if !s.Valid() {
		return nil
	}
	return slices.Clone(spaceInfos[s].components)
}

// MarshalText implements encoding.TextMarshaler.
func (s Space) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpace, s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Space) UnmarshalText(text []byte) error {
	v, err := ParseSpace(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Spaces returns every declared color space in declaration order.
func Spaces() []Space {
	out := make([]Space, 0, len(spaceInfos)-1)
	for s := SpaceUnknown + 1; int(s) < len(spaceInfos); s++ {
		out = append(out, s)
	}
	return out
}

// ParseSpace returns the space whose name matches name, ignoring case.
//
//	s, err := cint.ParseSpace("oklab") // cint.SpaceOklab
func ParseSpace(name string) (Space, error) {
	if s, ok := foldedNames[foldName(name)]; ok {
		return s, nil
	}
	return SpaceUnknown, fmt.Errorf("%w: %q", ErrUnknownSpace, name)
}

// Package named provides the SVG 1.1 / CSS named colors as cint records.
//
// The table comes from golang.org/x/image/colornames. All named colors are
// opaque 8-bit encoded sRGB, so they are exposed as cint.EncodedSRGB[uint8].
package named

import (
	"fmt"
	"slices"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	"github.com/gogpu/cint"
)

// Lookup returns the named color, ignoring case ("CornflowerBlue" and
// "cornflowerblue" are the same color).
func Lookup(name string) (cint.EncodedSRGB[uint8], bool) {
	c, ok := colornames.Map[cases.Fold().String(name)]
	if !ok {
		return cint.EncodedSRGB[uint8]{}, false
	}
	return cint.EncodedSRGB[uint8]{R: c.R, G: c.G, B: c.B}, true
}

// MustLookup is like Lookup but panics if name is unknown.
// It is intended for package-level palettes.
func MustLookup(name string) cint.EncodedSRGB[uint8] {
	c, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("named: unknown color %q", name))
	}
	return c
}

// Names returns every color name in sorted order.
func Names() []string {
	return slices.Clone(colornames.Names)
}

// Name returns the first name, in sorted order, whose color equals c.
// Several names share a color ("aqua" and "cyan"); the first one wins.
func Name(c cint.EncodedSRGB[uint8]) (string, bool) {
	for _, name := range colornames.Names {
		v := colornames.Map[name]
		if v.R == c.R && v.G == c.G && v.B == c.B {
			return name, true
		}
	}
	return "", false
}

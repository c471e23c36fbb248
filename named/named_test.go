package named

import (
	"slices"
	"testing"

	"github.com/gogpu/cint"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want cint.EncodedSRGB[uint8]
		ok   bool
	}{
		{"red", cint.EncodedSRGB[uint8]{R: 255}, true},
		{"Red", cint.EncodedSRGB[uint8]{R: 255}, true},
		{"CornflowerBlue", cint.EncodedSRGB[uint8]{R: 100, G: 149, B: 237}, true},
		{"rebeccapurple", cint.EncodedSRGB[uint8]{}, false},
		{"", cint.EncodedSRGB[uint8]{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.name)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Lookup(%q) = %+v, %v; want %+v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup did not panic on an unknown name")
		}
	}()
	MustLookup("not-a-color")
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) < 140 {
		t.Fatalf("len(Names()) = %d, want at least 140", len(names))
	}
	if !slices.IsSorted(names) {
		t.Error("Names() is not sorted")
	}
	for _, n := range names {
		if _, ok := Lookup(n); !ok {
			t.Errorf("Lookup(%q) failed for a listed name", n)
		}
	}
	names[0] = "mutated"
	if Names()[0] == "mutated" {
		t.Error("Names() shares its backing array with the caller")
	}
}

func TestName(t *testing.T) {
	if got, ok := Name(MustLookup("cyan")); !ok || got != "aqua" {
		t.Errorf("Name(cyan) = %q, %v; want aqua", got, ok)
	}
	if got, ok := Name(cint.EncodedSRGB[uint8]{R: 1, G: 2, B: 3}); ok {
		t.Errorf("Name(1,2,3) = %q, want no match", got)
	}
}

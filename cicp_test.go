package cint

import "testing"

func TestSpaceCICP(t *testing.T) {
	tests := []struct {
		space Space
		want  CICP
		ok    bool
	}{
		{SpaceEncodedSRGB, CICP{1, 13, 0, 1}, true},
		{SpaceLinearSRGB, CICP{1, 8, 0, 1}, true},
		{SpaceEncodedDisplayP3, CICP{12, 13, 0, 1}, true},
		{SpaceEncodedBT2100PQ, CICP{9, 16, 0, 1}, true},
		{SpaceEncodedBT2100HLG, CICP{9, 18, 0, 1}, true},
		{SpaceICtCpPQ, CICP{9, 16, 14, 1}, true},
		{SpaceDCIXYZPrime, CICP{10, 17, 0, 1}, true},
		{SpaceOklab, CICP{}, false},
		{SpaceACEScg, CICP{}, false},
		{SpaceUnknown, CICP{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.space.String(), func(t *testing.T) {
			got, ok := tt.space.CICP()
			if ok != tt.ok || got != tt.want {
				t.Errorf("CICP() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSpaceFromCICP(t *testing.T) {
	tests := []struct {
		cicp CICP
		want Space
		ok   bool
	}{
		{CICP{1, 13, 0, 1}, SpaceEncodedSRGB, true},
		// Rec709 shares these code points; the earlier declaration wins.
		{CICP{1, 8, 0, 1}, SpaceLinearSRGB, true},
		{CICP{9, 16, 0, 1}, SpaceEncodedBT2100PQ, true},
		{CICP{9, 18, 14, 1}, SpaceICtCpHLG, true},
		{CICP{2, 2, 2, 0}, SpaceUnknown, false},
	}
	for _, tt := range tests {
		got, ok := SpaceFromCICP(tt.cicp)
		if ok != tt.ok || got != tt.want {
			t.Errorf("SpaceFromCICP(%v) = %s, %v; want %s, %v", tt.cicp, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCICPRoundTrip(t *testing.T) {
	for _, s := range Spaces() {
		c, ok := s.CICP()
		if !ok {
			continue
		}
		back, ok := SpaceFromCICP(c)
		if !ok {
			t.Errorf("%s: SpaceFromCICP(%v) found nothing", s, c)
			continue
		}
		if got, _ := back.CICP(); got != c {
			t.Errorf("%s: SpaceFromCICP(%v) = %s with code points %v", s, c, back, got)
		}
	}
}

func TestCICPString(t *testing.T) {
	if got := (CICP{9, 16, 0, 1}).String(); got != "9/16/0/1" {
		t.Errorf("String() = %q, want %q", got, "9/16/0/1")
	}
}

package cint

import "fmt"

// CICP holds ITU-T H.273 coding-independent code points, the identifiers
// used by video containers, AVIF, JPEG XL and PNG cICP chunks to signal a
// color space.
type CICP struct {
	ColorPrimaries          uint8
	TransferCharacteristics uint8
	MatrixCoefficients      uint8
	VideoFullRange          uint8
}

// String formats c as "primaries/transfer/matrix/range", e.g. "1/13/0/1".
func (c CICP) String() string {
	return fmt.Sprintf("%d/%d/%d/%d",
		c.ColorPrimaries, c.TransferCharacteristics, c.MatrixCoefficients, c.VideoFullRange)
}

// CICP returns the code points that signal s.
// Spaces without a standard signalling report false.
func (s Space) CICP() (CICP, bool) {
	if !s.Valid() || !spaceInfos[s].hasCICP {
		return CICP{}, false
	}
	return spaceInfos[s].cicp, true
}

// SpaceFromCICP returns the first declared space signalled by c.
//
// Several spaces can share code points (LinearSRGB and Rec709 are both
// BT.709 primaries with linear transfer); the earlier declaration wins.
func SpaceFromCICP(c CICP) (Space, bool) {
	for _, s := range Spaces() {
		if got, ok := s.CICP(); ok && got == c {
			return s, true
		}
	}
	return SpaceUnknown, false
}

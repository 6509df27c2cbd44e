package sprout

import (
	"github.com/suffix-labs/zcash-sprout/pkg/bstream"
)

// Compressed points carry a marker in the upper seven bits of their leading
// byte and the omitted coordinate's 1-bit flag in the low bit.
const (
	g1Marker = 0x02
	g2Marker = 0x0a
)

// G1Point is a compressed element of the proof system's first group: the
// x coordinate plus the parity of the omitted y coordinate.
type G1Point struct {
	YLsb bool
	X    [32]byte
}

// G2Point is a compressed element of the second group. Its x coordinate is
// twice as wide and the flag records which of the two candidate y values
// is meant.
type G2Point struct {
	YGt bool
	X   [64]byte
}

func parseG1(r *bstream.Reader) (G1Point, error) {
	var p G1Point

	lead, err := r.ReadByte()
	if err != nil {
		return p, err
	}
	if lead&^1 != g1Marker {
		return p, &MalformedPointError{Group: "G1", Leading: lead}
	}
	p.YLsb = lead&1 == 1

	if err := r.ReadInto(p.X[:]); err != nil {
		return p, err
	}
	return p, nil
}

func parseG2(r *bstream.Reader) (G2Point, error) {
	var p G2Point

	lead, err := r.ReadByte()
	if err != nil {
		return p, err
	}
	if lead&^1 != g2Marker {
		return p, &MalformedPointError{Group: "G2", Leading: lead}
	}
	p.YGt = lead&1 == 1

	if err := r.ReadInto(p.X[:]); err != nil {
		return p, err
	}
	return p, nil
}

// writeG1 emits the marker byte with the parity flag folded in, then the
// x coordinate verbatim.
func writeG1(w *bstream.Writer, p G1Point) {
	lead := byte(g1Marker)
	if p.YLsb {
		lead |= 1
	}
	w.WriteUint8(lead)
	w.WriteBytes(p.X[:])
}

func writeG2(w *bstream.Writer, p G2Point) {
	lead := byte(g2Marker)
	if p.YGt {
		lead |= 1
	}
	w.WriteUint8(lead)
	w.WriteBytes(p.X[:])
}

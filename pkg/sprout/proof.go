package sprout

import (
	"fmt"

	"github.com/suffix-labs/zcash-sprout/pkg/bstream"
)

// Proof is the eight-element zk-SNARK proof carried by a descriptor.
//
// The declaration order is the wire order and must not change: seven G1
// elements and one G2 element (g_B), 296 bytes encoded.
type Proof struct {
	GA      G1Point
	GAPrime G1Point
	GB      G2Point
	GBPrime G1Point
	GC      G1Point
	GCPrime G1Point
	GK      G1Point
	GH      G1Point
}

func parseProof(r *bstream.Reader) (Proof, error) {
	var p Proof
	var err error

	if p.GA, err = parseG1(r); err != nil {
		return p, fmt.Errorf("reading g_A: %w", err)
	}
	if p.GAPrime, err = parseG1(r); err != nil {
		return p, fmt.Errorf("reading g_A_prime: %w", err)
	}
	if p.GB, err = parseG2(r); err != nil {
		return p, fmt.Errorf("reading g_B: %w", err)
	}
	if p.GBPrime, err = parseG1(r); err != nil {
		return p, fmt.Errorf("reading g_B_prime: %w", err)
	}
	if p.GC, err = parseG1(r); err != nil {
		return p, fmt.Errorf("reading g_C: %w", err)
	}
	if p.GCPrime, err = parseG1(r); err != nil {
		return p, fmt.Errorf("reading g_C_prime: %w", err)
	}
	if p.GK, err = parseG1(r); err != nil {
		return p, fmt.Errorf("reading g_K: %w", err)
	}
	if p.GH, err = parseG1(r); err != nil {
		return p, fmt.Errorf("reading g_H: %w", err)
	}

	return p, nil
}

func writeProof(w *bstream.Writer, p *Proof) {
	writeG1(w, p.GA)
	writeG1(w, p.GAPrime)
	writeG2(w, p.GB)
	writeG1(w, p.GBPrime)
	writeG1(w, p.GC)
	writeG1(w, p.GCPrime)
	writeG1(w, p.GK)
	writeG1(w, p.GH)
}

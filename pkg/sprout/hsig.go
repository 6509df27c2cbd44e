package sprout

import (
	"fmt"
	"hash"

	blake2b "github.com/minio/blake2b-simd"
)

// hSigPersonalization distinguishes the binding hash from every other use
// of BLAKE2b in the protocol. Personalization is a BLAKE2b parameter, not
// a key.
const hSigPersonalization = "ZcashComputehSig"

// blake2bNew256 creates a BLAKE2b-256 hash with the given personalization.
func blake2bNew256(personalization []byte) (hash.Hash, error) {
	config := &blake2b.Config{
		Size:   32,
		Person: personalization,
	}
	return blake2b.New(config)
}

// HSig computes the descriptor's binding hash over the random seed, both
// nullifiers, and the transaction's aggregate public key. Signers and
// verifiers derive it identically; it ties the descriptor to the
// transaction that carries it.
func (js *JoinSplit) HSig(joinSplitPubKey [32]byte) ([32]byte, error) {
	var out [32]byte

	h, err := blake2bNew256([]byte(hSigPersonalization))
	if err != nil {
		return out, fmt.Errorf("initializing binding hash: %w", err)
	}

	h.Write(js.RandomSeed[:])
	for i := range js.Nullifiers {
		h.Write(js.Nullifiers[i][:])
	}
	h.Write(joinSplitPubKey[:])

	copy(out[:], h.Sum(nil))
	return out, nil
}

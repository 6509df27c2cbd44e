package sprout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSig(t *testing.T) {
	js := sampleJoinSplit(3)
	var pubKey [32]byte
	for i := range pubKey {
		pubKey[i] = byte(i)
	}

	first, err := js.HSig(pubKey)
	require.NoError(t, err)

	// Deterministic for identical inputs.
	second, err := js.HSig(pubKey)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Sensitive to each input.
	seedChanged := js
	seedChanged.RandomSeed[0] ^= 0xFF
	h, err := seedChanged.HSig(pubKey)
	require.NoError(t, err)
	assert.NotEqual(t, first, h)

	nullifierChanged := js
	nullifierChanged.Nullifiers[1][0] ^= 0xFF
	h, err = nullifierChanged.HSig(pubKey)
	require.NoError(t, err)
	assert.NotEqual(t, first, h)

	keyChanged := pubKey
	keyChanged[0] ^= 0xFF
	h, err = js.HSig(keyChanged)
	require.NoError(t, err)
	assert.NotEqual(t, first, h)

	// Not sensitive to fields outside the binding: the proof and the
	// ciphertexts are covered by the signature, not by this hash.
	proofChanged := js
	proofChanged.Proof.GA.X[0] ^= 0xFF
	h, err = proofChanged.HSig(pubKey)
	require.NoError(t, err)
	assert.Equal(t, first, h)
}

package sprout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/zcash-sprout/pkg/bstream"
)

// sampleJoinSplit fills every field with seed-derived bytes so swapped or
// dropped fields break round-trip comparisons.
func sampleJoinSplit(seed byte) JoinSplit {
	js := JoinSplit{
		VPubOld: uint64(seed) * 1000,
		VPubNew: uint64(seed) * 2000,
		Proof:   sampleProof(),
	}
	fill := func(b []byte, tag byte) {
		for i := range b {
			b[i] = seed ^ tag ^ byte(i)
		}
	}
	fill(js.Anchor[:], 0x01)
	for i := range js.Nullifiers {
		fill(js.Nullifiers[i][:], 0x10+byte(i))
	}
	for i := range js.Commitments {
		fill(js.Commitments[i][:], 0x20+byte(i))
	}
	fill(js.OnetimePubKey[:], 0x03)
	fill(js.RandomSeed[:], 0x04)
	for i := range js.MACs {
		fill(js.MACs[i][:], 0x30+byte(i))
	}
	for i := range js.Ciphertexts {
		fill(js.Ciphertexts[i][:], 0x40+byte(i))
	}
	return js
}

func encodeJoinSplit(js *JoinSplit) []byte {
	w := bstream.NewWriter()
	writeJoinSplit(w, js)
	return w.Bytes()
}

func TestJoinSplitRoundTrip(t *testing.T) {
	js := sampleJoinSplit(7)

	enc := encodeJoinSplit(&js)
	require.Len(t, enc, JoinSplitSize)

	var got JoinSplit
	require.NoError(t, parseJoinSplit(bstream.NewReader(enc), &got))
	assert.Equal(t, js, got)

	// And back out again, byte for byte.
	assert.Equal(t, enc, encodeJoinSplit(&got))
}

func TestJoinSplitFieldOffsets(t *testing.T) {
	js := sampleJoinSplit(0)
	js.VPubOld = 1
	js.VPubNew = 2

	enc := encodeJoinSplit(&js)

	// vpub_old and vpub_new lead the encoding as little-endian uint64s.
	assert.Equal(t, byte(1), enc[0])
	assert.Equal(t, byte(2), enc[8])

	// The anchor follows, then the fixed-count hash fields; the proof's
	// g_A marker sits after all of them.
	proofOffset := 8 + 8 + 32 + 2*32 + 2*32 + 32 + 32 + 2*32
	assert.Equal(t, byte(0x02), enc[proofOffset]&^1)

	// Ciphertexts close out the descriptor.
	assert.Equal(t, js.Ciphertexts[1][NoteCiphertextSize-1], enc[len(enc)-1])
}

func TestJoinSplitVPubBounds(t *testing.T) {
	t.Run("at the cap", func(t *testing.T) {
		js := sampleJoinSplit(1)
		js.VPubOld = MaxMoney
		js.VPubNew = MaxMoney

		var got JoinSplit
		require.NoError(t, parseJoinSplit(bstream.NewReader(encodeJoinSplit(&js)), &got))
		assert.Equal(t, uint64(MaxMoney), got.VPubOld)
	})

	t.Run("vpub_old above the cap", func(t *testing.T) {
		js := sampleJoinSplit(1)
		js.VPubOld = MaxMoney + 1

		var got JoinSplit
		err := parseJoinSplit(bstream.NewReader(encodeJoinSplit(&js)), &got)
		var rangeErr *ValueRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "vpub_old", rangeErr.Field)
		assert.Equal(t, uint64(MaxMoney)+1, rangeErr.Value)
	})

	t.Run("vpub_new above the cap", func(t *testing.T) {
		js := sampleJoinSplit(1)
		js.VPubNew = MaxMoney + 1

		var got JoinSplit
		err := parseJoinSplit(bstream.NewReader(encodeJoinSplit(&js)), &got)
		var rangeErr *ValueRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "vpub_new", rangeErr.Field)
	})
}

func TestJoinSplitTruncated(t *testing.T) {
	js := sampleJoinSplit(9)
	enc := encodeJoinSplit(&js)

	for _, cut := range []int{0, 7, 8, 16, 48, 200, 500, ProofSize + 304, JoinSplitSize - 1} {
		var got JoinSplit
		err := parseJoinSplit(bstream.NewReader(enc[:cut]), &got)
		var trunc *bstream.TruncatedInputError
		require.True(t, errors.As(err, &trunc), "cut at %d: got %v", cut, err)
	}
}

package script

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known secp256k1 generator point, compressed and uncompressed.
const (
	genPubKeyCompressed   = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	genPubKeyUncompressed = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// p2pkScript builds <pubkey> OP_CHECKSIG around a key payload.
func p2pkScript(key []byte) []byte {
	script := []byte{byte(len(key))}
	script = append(script, key...)
	return append(script, opCheckSig)
}

func TestClassify(t *testing.T) {
	var hash [20]byte
	for i := range hash {
		hash[i] = byte(i)
	}

	p2sh := append([]byte{opHash160, opData20}, hash[:]...)
	p2sh = append(p2sh, opEqual)

	badKey := mustHex(t, genPubKeyCompressed)
	badKey[0] = 0x05 // not a valid compressed-key prefix

	tests := []struct {
		name   string
		script []byte
		want   Class
	}{
		{"p2pkh", PayToPubKeyHashScript(hash), PubKeyHash},
		{"p2sh", p2sh, ScriptHash},
		{"p2pk compressed", p2pkScript(mustHex(t, genPubKeyCompressed)), PubKey},
		{"p2pk uncompressed", p2pkScript(mustHex(t, genPubKeyUncompressed)), PubKey},
		{"p2pk bad key prefix", p2pkScript(badKey), NonStandard},
		{"empty", nil, NonStandard},
		{"op_return", []byte{0x6A, 0x04, 0xDE, 0xAD, 0xBE, 0xEF}, NonStandard},
		{"p2pkh wrong tail", append(PayToPubKeyHashScript(hash)[:24], opEqual), NonStandard},
		{"p2pkh truncated", PayToPubKeyHashScript(hash)[:24], NonStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.script))
		})
	}
}

func TestExtractAddress(t *testing.T) {
	var hash [20]byte
	for i := range hash {
		hash[i] = byte(0xA0 + i)
	}

	t.Run("p2pkh mainnet", func(t *testing.T) {
		class, addr := ExtractAddress(PayToPubKeyHashScript(hash), MainNetParams)
		require.Equal(t, PubKeyHash, class)
		assert.Len(t, addr, 35)
		assert.Equal(t, "t1", addr[:2])

		got, prefix, err := DecodeAddress(addr, MainNetParams)
		require.NoError(t, err)
		assert.Equal(t, hash, got)
		assert.Equal(t, MainNetParams.PubKeyHashPrefix, prefix)
	})

	t.Run("p2sh mainnet", func(t *testing.T) {
		p2sh := append([]byte{opHash160, opData20}, hash[:]...)
		p2sh = append(p2sh, opEqual)

		class, addr := ExtractAddress(p2sh, MainNetParams)
		require.Equal(t, ScriptHash, class)
		assert.Equal(t, "t3", addr[:2])
	})

	t.Run("p2pkh testnet", func(t *testing.T) {
		class, addr := ExtractAddress(PayToPubKeyHashScript(hash), TestNet3Params)
		require.Equal(t, PubKeyHash, class)
		assert.Equal(t, "tm", addr[:2])
	})

	t.Run("p2pk renders as pubkeyhash address", func(t *testing.T) {
		key := mustHex(t, genPubKeyCompressed)
		class, addr := ExtractAddress(p2pkScript(key), MainNetParams)
		require.Equal(t, PubKey, class)
		assert.Equal(t, EncodeAddress(Hash160(key), MainNetParams.PubKeyHashPrefix), addr)
	})

	t.Run("nonstandard has no address", func(t *testing.T) {
		class, addr := ExtractAddress([]byte{0x6A}, MainNetParams)
		assert.Equal(t, NonStandard, class)
		assert.Empty(t, addr)
	})
}

func TestAddressRoundTrip(t *testing.T) {
	var hash [20]byte
	for i := range hash {
		hash[i] = byte(0xFF - i)
	}

	for _, params := range []*Params{MainNetParams, TestNet3Params} {
		for _, prefix := range [][2]byte{params.PubKeyHashPrefix, params.ScriptHashPrefix} {
			addr := EncodeAddress(hash, prefix)
			gotHash, gotPrefix, err := DecodeAddress(addr, params)
			require.NoError(t, err, "network %s prefix %x", params.Name, prefix)
			assert.Equal(t, hash, gotHash)
			assert.Equal(t, prefix, gotPrefix)
		}
	}
}

func TestDecodeAddressErrors(t *testing.T) {
	var hash [20]byte
	addr := EncodeAddress(hash, MainNetParams.PubKeyHashPrefix)

	t.Run("corrupted checksum", func(t *testing.T) {
		last := addr[len(addr)-1]
		replacement := byte('2')
		if last == '2' {
			replacement = '3'
		}
		corrupted := addr[:len(addr)-1] + string(replacement)
		_, _, err := DecodeAddress(corrupted, MainNetParams)
		assert.Error(t, err)
	})

	t.Run("wrong network", func(t *testing.T) {
		_, _, err := DecodeAddress(addr, TestNet3Params)
		assert.Error(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		_, _, err := DecodeAddress("t1abc", MainNetParams)
		assert.Error(t, err)
	})
}

func TestHash160(t *testing.T) {
	key := mustHex(t, genPubKeyCompressed)

	first := Hash160(key)
	second := Hash160(key)
	assert.Equal(t, first, second)

	other := Hash160(mustHex(t, genPubKeyUncompressed))
	assert.NotEqual(t, first, other)
}

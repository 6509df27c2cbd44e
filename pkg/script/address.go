package script

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
)

// Address format: version (2 bytes) || hash160 (20 bytes) || checksum (4 bytes),
// base58-encoded. The checksum is the first four bytes of a double SHA-256
// over version||hash.

// EncodeAddress encodes a 20-byte hash under a two-byte version prefix.
func EncodeAddress(hash [20]byte, prefix [2]byte) string {
	payload := make([]byte, 0, 26)
	payload = append(payload, prefix[:]...)
	payload = append(payload, hash[:]...)

	checksum := doubleSHA256(payload)
	payload = append(payload, checksum[:4]...)

	return base58.Encode(payload)
}

// DecodeAddress decodes a Base58Check address, returning the hash and the
// version prefix. The prefix must match one of the network's two known
// prefixes.
func DecodeAddress(addr string, params *Params) ([20]byte, [2]byte, error) {
	var hash [20]byte
	var prefix [2]byte

	decoded := base58.Decode(addr)
	if len(decoded) != 26 {
		return hash, prefix, fmt.Errorf("invalid address length: %d", len(decoded))
	}

	payload := decoded[:22]
	providedChecksum := decoded[22:]
	computedChecksum := doubleSHA256(payload)
	for i := 0; i < 4; i++ {
		if providedChecksum[i] != computedChecksum[i] {
			return hash, prefix, errors.New("address checksum mismatch")
		}
	}

	copy(prefix[:], payload[:2])
	if prefix != params.PubKeyHashPrefix && prefix != params.ScriptHashPrefix {
		return hash, prefix, fmt.Errorf("unknown address prefix 0x%02x%02x for %s", prefix[0], prefix[1], params.Name)
	}

	copy(hash[:], payload[2:])
	return hash, prefix, nil
}

// doubleSHA256 computes SHA256(SHA256(b)).
func doubleSHA256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

package script

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ripemd160"
)

// Script opcodes used by the standard templates.
const (
	opDup         = 0x76
	opHash160     = 0xA9
	opEqual       = 0x87
	opEqualVerify = 0x88
	opCheckSig    = 0xAC
	opData20      = 0x14
	opData33      = 0x21
	opData65      = 0x41
)

// Class is the standard form of a locking script.
type Class int

const (
	// NonStandard is any script that matches no recognized template.
	NonStandard Class = iota
	// PubKeyHash is a pay-to-pubkey-hash script.
	PubKeyHash
	// ScriptHash is a pay-to-script-hash script.
	ScriptHash
	// PubKey is a pay-to-pubkey script with a well-formed secp256k1 key.
	PubKey
)

// String returns the class name used in display output.
func (c Class) String() string {
	switch c {
	case PubKeyHash:
		return "pubkeyhash"
	case ScriptHash:
		return "scripthash"
	case PubKey:
		return "pubkey"
	default:
		return "nonstandard"
	}
}

// Classify returns the standard form of a locking script.
//
// A pay-to-pubkey candidate is only classified PubKey if its key payload
// parses as a point on the curve; a 33/65-byte blob with a bad prefix or an
// x coordinate off the curve falls through to NonStandard.
func Classify(script []byte) Class {
	switch {
	case isPubKeyHash(script):
		return PubKeyHash
	case isScriptHash(script):
		return ScriptHash
	case isPubKey(script):
		return PubKey
	default:
		return NonStandard
	}
}

// isPubKeyHash matches OP_DUP OP_HASH160 <20> OP_EQUALVERIFY OP_CHECKSIG.
func isPubKeyHash(script []byte) bool {
	return len(script) == 25 &&
		script[0] == opDup &&
		script[1] == opHash160 &&
		script[2] == opData20 &&
		script[23] == opEqualVerify &&
		script[24] == opCheckSig
}

// isScriptHash matches OP_HASH160 <20> OP_EQUAL.
func isScriptHash(script []byte) bool {
	return len(script) == 23 &&
		script[0] == opHash160 &&
		script[1] == opData20 &&
		script[22] == opEqual
}

// isPubKey matches <33|65 byte pubkey> OP_CHECKSIG with a valid key.
func isPubKey(script []byte) bool {
	var key []byte
	switch {
	case len(script) == 35 && script[0] == opData33 && script[34] == opCheckSig:
		key = script[1:34]
	case len(script) == 67 && script[0] == opData65 && script[66] == opCheckSig:
		key = script[1:66]
	default:
		return false
	}
	_, err := secp256k1.ParsePubKey(key)
	return err == nil
}

// ExtractAddress classifies a locking script and renders its address under
// the given network parameters.
//
// Pay-to-pubkey scripts have no address form of their own; by convention the
// key is hashed and rendered as the pay-to-pubkey-hash address that could
// spend to the same key. NonStandard scripts yield an empty address.
func ExtractAddress(script []byte, params *Params) (Class, string) {
	switch Classify(script) {
	case PubKeyHash:
		var h [20]byte
		copy(h[:], script[3:23])
		return PubKeyHash, EncodeAddress(h, params.PubKeyHashPrefix)
	case ScriptHash:
		var h [20]byte
		copy(h[:], script[2:22])
		return ScriptHash, EncodeAddress(h, params.ScriptHashPrefix)
	case PubKey:
		key := script[1 : len(script)-1]
		return PubKey, EncodeAddress(Hash160(key), params.PubKeyHashPrefix)
	default:
		return NonStandard, ""
	}
}

// PayToPubKeyHashScript builds the standard locking script for a pubkey hash.
func PayToPubKeyHashScript(hash [20]byte) []byte {
	script := make([]byte, 0, 25)
	script = append(script, opDup, opHash160, opData20)
	script = append(script, hash[:]...)
	script = append(script, opEqualVerify, opCheckSig)
	return script
}

// Hash160 computes RIPEMD160(SHA256(b)), the hash used for addresses.
func Hash160(b []byte) [20]byte {
	sha := sha256.Sum256(b)
	r := ripemd160.New()
	r.Write(sha[:])

	var out [20]byte
	copy(out[:], r.Sum(nil))
	return out
}

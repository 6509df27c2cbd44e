// Package tx implements the base-layer transparent input and output records
// shared by every transaction version.
//
// Wire layout:
//   - input:  prevout hash (32) | prevout index (4) | scriptSig (var) | sequence (4)
//   - output: value (8) | scriptPubKey (var)
//
// All integers little-endian, variable-length fields prefixed with a
// compact size.
package tx

import (
	"encoding/hex"

	"github.com/suffix-labs/zcash-sprout/pkg/script"
)

// estimatedInputScriptSize is the size of a signed pay-to-pubkey-hash
// scriptSig: a pushed DER signature (1+72) plus a pushed compressed
// public key (1+33).
const estimatedInputScriptSize = 107

// Input is a transparent input spending a previous output.
type Input struct {
	PrevoutHash  [32]byte // referenced transaction hash, wire order
	PrevoutIndex uint32   // output index in the referenced transaction
	ScriptSig    []byte   // unlocking script, empty until signed
	Sequence     uint32
}

// PrevoutTxID returns the referenced transaction id as displayed, which is
// the wire-order hash reversed and hex-encoded.
func (in *Input) PrevoutTxID() string {
	var reversed [32]byte
	for i, b := range in.PrevoutHash {
		reversed[31-i] = b
	}
	return hex.EncodeToString(reversed[:])
}

// Output is a transparent output carrying value to a locking script.
//
// Class and Address are derived from ScriptPubKey when the output is
// parsed; Address is empty for scripts with no address form.
type Output struct {
	Value        uint64 // zatoshis
	ScriptPubKey []byte
	Index        uint32 // position within the transaction
	Class        script.Class
	Address      string
}

// TransactionLike is the capability generic code accepts in place of a
// concrete transaction type: anything that serializes and exposes its
// transparent inputs and outputs.
type TransactionLike interface {
	Serialize(estimateSize, witness bool) (string, error)
	Inputs() ([]*Input, error)
	Outputs() ([]*Output, error)
}

// InputScript returns the scriptSig to serialize for an input.
//
// When estimateSize is set and the input is not yet signed, a zeroed
// placeholder of the signed pay-to-pubkey-hash size is returned instead,
// so fee estimation sees realistic lengths.
func InputScript(in *Input, estimateSize bool) []byte {
	if estimateSize && len(in.ScriptSig) == 0 {
		return make([]byte, estimatedInputScriptSize)
	}
	return in.ScriptSig
}

package sprout

import (
	"fmt"

	"github.com/suffix-labs/zcash-sprout/pkg/script"
	"github.com/suffix-labs/zcash-sprout/pkg/tx"
)

// defaultSequence disables relative lock time for an input.
const defaultSequence uint32 = 0xFFFFFFFF

// Builder assembles a Transaction from already-structured fields, for
// callers constructing new transactions rather than parsing received ones.
//
// Add and With methods return the receiver for chaining; Build validates
// the format invariants and produces an immutable Transaction that
// serializes immediately.
type Builder struct {
	version  int32
	lockTime uint32
	params   *script.Params

	inputs     []*tx.Input
	outputs    []*tx.Output
	joinSplits []JoinSplit

	joinSplitPubKey *[32]byte
	joinSplitSig    *[64]byte
}

// NewBuilder creates a Builder for the given format version.
//
// Defaults: lock time 0, mainnet address parameters, no inputs, outputs,
// or descriptors.
func NewBuilder(version int32) *Builder {
	return &Builder{
		version: version,
		params:  script.MainNetParams,
	}
}

// WithLockTime sets the transaction lock time.
func (b *Builder) WithLockTime(lockTime uint32) *Builder {
	b.lockTime = lockTime
	return b
}

// WithParams sets the network parameters used to project output addresses.
func (b *Builder) WithParams(params *script.Params) *Builder {
	b.params = params
	return b
}

// AddInput appends a transparent input.
//
// scriptSig may be nil for a not-yet-signed input; sequence nil uses the
// default (no relative lock time).
func (b *Builder) AddInput(prevoutHash [32]byte, prevoutIndex uint32, scriptSig []byte, sequence *uint32) *Builder {
	seq := defaultSequence
	if sequence != nil {
		seq = *sequence
	}
	b.inputs = append(b.inputs, &tx.Input{
		PrevoutHash:  prevoutHash,
		PrevoutIndex: prevoutIndex,
		ScriptSig:    scriptSig,
		Sequence:     seq,
	})
	return b
}

// AddOutput appends a transparent output paying value to a locking script.
func (b *Builder) AddOutput(value uint64, scriptPubKey []byte) *Builder {
	b.outputs = append(b.outputs, &tx.Output{
		Value:        value,
		ScriptPubKey: scriptPubKey,
	})
	return b
}

// AddJoinSplit appends a shielded descriptor.
func (b *Builder) AddJoinSplit(js JoinSplit) *Builder {
	b.joinSplits = append(b.joinSplits, js)
	return b
}

// WithJoinSplitAuth sets the aggregate public key and signature covering
// the descriptors. Required exactly when descriptors are present.
func (b *Builder) WithJoinSplitAuth(pubKey [32]byte, sig [64]byte) *Builder {
	b.joinSplitPubKey = &pubKey
	b.joinSplitSig = &sig
	return b
}

// Build validates the format invariants and returns the Transaction.
//
// A version below 2 admits no shielded fields at all. For version >= 2,
// descriptors and the aggregate key/signature must be present together or
// not at all, and every descriptor's public values must respect the
// supply cap.
func (b *Builder) Build() (*Transaction, error) {
	shielded := b.version >= MinShieldedVersion

	if !shielded {
		if len(b.joinSplits) > 0 {
			return nil, fmt.Errorf("version %d transaction cannot carry joinsplits", b.version)
		}
		if b.joinSplitPubKey != nil || b.joinSplitSig != nil {
			return nil, fmt.Errorf("version %d transaction cannot carry joinsplit auth", b.version)
		}
	}

	if len(b.joinSplits) > 0 && (b.joinSplitPubKey == nil || b.joinSplitSig == nil) {
		return nil, fmt.Errorf("joinsplits present but aggregate key or signature missing")
	}
	if len(b.joinSplits) == 0 && (b.joinSplitPubKey != nil || b.joinSplitSig != nil) {
		return nil, fmt.Errorf("joinsplit auth present but no joinsplits")
	}

	for i := range b.joinSplits {
		js := &b.joinSplits[i]
		if js.VPubOld > MaxMoney {
			return nil, fmt.Errorf("joinsplit %d: %w", i, &ValueRangeError{Field: "vpub_old", Value: js.VPubOld})
		}
		if js.VPubNew > MaxMoney {
			return nil, fmt.Errorf("joinsplit %d: %w", i, &ValueRangeError{Field: "vpub_new", Value: js.VPubNew})
		}
	}

	f := &txFields{
		version:         b.version,
		lockTime:        b.lockTime,
		joinSplitPubKey: b.joinSplitPubKey,
		joinSplitSig:    b.joinSplitSig,
	}

	f.inputs = make([]*tx.Input, len(b.inputs))
	for i, in := range b.inputs {
		c := *in
		f.inputs[i] = &c
	}

	f.outputs = make([]*tx.Output, len(b.outputs))
	for i, out := range b.outputs {
		c := *out
		c.Index = uint32(i)
		c.Class, c.Address = script.ExtractAddress(c.ScriptPubKey, b.params)
		f.outputs[i] = &c
	}

	if shielded {
		f.joinSplits = make([]JoinSplit, len(b.joinSplits))
		copy(f.joinSplits, b.joinSplits)
	}

	return &Transaction{params: b.params, fields: f}, nil
}

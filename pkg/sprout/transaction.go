// Package sprout implements the bidirectional wire codec for transactions
// carrying JoinSplit shielded-transfer descriptors.
//
// Two format versions exist: version 1 is the legacy layout with no
// shielded section, and versions 2 and above append zero or more JoinSplit
// descriptors plus an aggregate public key and signature when any
// descriptors are present.
//
// Wire layout:
//
//	version (int32 LE)
//	input count (compact size) | inputs
//	output count (compact size) | outputs
//	lock time (uint32 LE)
//	-- version >= 2 only --
//	joinsplit count (compact size) | descriptors
//	joinSplitPubKey (32) | joinSplitSig (64)   -- only if count > 0
//
// Decoding a well-formed transaction and re-encoding it reproduces the
// input byte for byte. Proof validation, transaction ids, fees, and script
// interpretation are out of scope.
package sprout

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/suffix-labs/zcash-sprout/pkg/bstream"
	"github.com/suffix-labs/zcash-sprout/pkg/script"
	"github.com/suffix-labs/zcash-sprout/pkg/tx"
)

// Transaction is the structured form of one transaction.
//
// A Transaction constructed from raw bytes parses them lazily: the first
// accessor (or an explicit Deserialize call) materializes the fields, and
// the result is cached for the object's lifetime. A Transaction built from
// fields carries no raw bytes and is already materialized. Either way the
// object is immutable after construction; accessors return internal slices
// that callers must treat as read-only.
type Transaction struct {
	mu     sync.Mutex
	raw    []byte
	params *script.Params
	fields *txFields
}

var _ tx.TransactionLike = (*Transaction)(nil)

// txFields is the parsed-field cache. It is installed only after a full
// decode succeeds, never partially.
type txFields struct {
	version  int32
	lockTime uint32
	inputs   []*tx.Input
	outputs  []*tx.Output

	// joinSplits is nil for a version-1 transaction (the section is
	// absent) and non-nil, possibly empty, for version >= 2. The key and
	// signature are present exactly when joinSplits is non-empty.
	joinSplits      []JoinSplit
	joinSplitPubKey *[32]byte
	joinSplitSig    *[64]byte
}

// NewTransaction returns a lazy Transaction over a copy of raw. Nothing is
// parsed until the first accessor. Network parameters default to mainnet;
// use WithParams before the first access to change them.
func NewTransaction(raw []byte) *Transaction {
	buf := make([]byte, len(raw))
	copy(buf, raw)
	return &Transaction{raw: buf, params: script.MainNetParams}
}

// NewTransactionFromHex is NewTransaction over a hex-encoded payload.
func NewTransactionFromHex(s string) (*Transaction, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding transaction hex: %w", err)
	}
	return NewTransaction(raw), nil
}

// DecodeTransaction parses raw eagerly and fails up front on malformed
// input. params selects the network for address projection; nil means
// mainnet.
func DecodeTransaction(raw []byte, params *script.Params) (*Transaction, error) {
	t := NewTransaction(raw)
	if params != nil {
		t.params = params
	}
	if err := t.Deserialize(); err != nil {
		return nil, err
	}
	return t, nil
}

// WithParams sets the network parameters used to project output addresses
// and returns the Transaction. It must be called before the first parse;
// fields already materialized keep the addresses they were projected with.
func (t *Transaction) WithParams(params *script.Params) *Transaction {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.params = params
	return t
}

// Deserialize materializes the parsed-field cache from the raw bytes.
//
// It is idempotent and safe for concurrent use: the first caller parses,
// everyone after that observes the populated cache. Calling it on a
// Transaction with no raw bytes (one built from fields) is a no-op. On a
// failed parse no cache is installed, so the error repeats on retry.
func (t *Transaction) Deserialize() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.fields != nil || t.raw == nil {
		return nil
	}

	fields, err := decodeFields(t.raw, t.params)
	if err != nil {
		return err
	}
	t.fields = fields
	return nil
}

// materialized returns the field cache, parsing first if needed.
func (t *Transaction) materialized() (*txFields, error) {
	if err := t.Deserialize(); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fields == nil {
		return nil, errors.New("transaction has no data")
	}
	return t.fields, nil
}

// Version returns the transaction format version.
func (t *Transaction) Version() (int32, error) {
	f, err := t.materialized()
	if err != nil {
		return 0, err
	}
	return f.version, nil
}

// LockTime returns the transaction lock time.
func (t *Transaction) LockTime() (uint32, error) {
	f, err := t.materialized()
	if err != nil {
		return 0, err
	}
	return f.lockTime, nil
}

// Inputs returns the transparent inputs.
func (t *Transaction) Inputs() ([]*tx.Input, error) {
	f, err := t.materialized()
	if err != nil {
		return nil, err
	}
	return f.inputs, nil
}

// Outputs returns the transparent outputs with their projected script
// class and address.
func (t *Transaction) Outputs() ([]*tx.Output, error) {
	f, err := t.materialized()
	if err != nil {
		return nil, err
	}
	return f.outputs, nil
}

// JoinSplits returns the shielded descriptors. The result is nil for a
// version-1 transaction, where the section does not exist, and an empty
// non-nil slice for a version >= 2 transaction that carries none.
func (t *Transaction) JoinSplits() ([]JoinSplit, error) {
	f, err := t.materialized()
	if err != nil {
		return nil, err
	}
	return f.joinSplits, nil
}

// JoinSplitPubKey returns the aggregate public key, or nil when no
// descriptors are present.
func (t *Transaction) JoinSplitPubKey() (*[32]byte, error) {
	f, err := t.materialized()
	if err != nil {
		return nil, err
	}
	return f.joinSplitPubKey, nil
}

// JoinSplitSig returns the aggregate signature, or nil when no descriptors
// are present.
func (t *Transaction) JoinSplitSig() (*[64]byte, error) {
	f, err := t.materialized()
	if err != nil {
		return nil, err
	}
	return f.joinSplitSig, nil
}

// Serialize encodes the transaction and returns it hex-encoded.
//
// estimateSize substitutes placeholder scripts for unsigned inputs so the
// result has a signed transaction's length; it does not change structure.
// witness has no meaning in this format and always fails with
// *UnsupportedFeatureError.
func (t *Transaction) Serialize(estimateSize, witness bool) (string, error) {
	raw, err := t.SerializeBytes(estimateSize, witness)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// SerializeBytes is Serialize without the hex encoding.
func (t *Transaction) SerializeBytes(estimateSize, witness bool) ([]byte, error) {
	if witness {
		return nil, &UnsupportedFeatureError{Feature: "witness serialization"}
	}

	f, err := t.materialized()
	if err != nil {
		return nil, err
	}
	return encodeFields(f, estimateSize)
}

// decodeFields parses one complete transaction. Bytes past the end of the
// encoding are ignored.
func decodeFields(raw []byte, params *script.Params) (*txFields, error) {
	r := bstream.NewReader(raw)
	f := &txFields{}

	version, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}
	f.version = version

	numInputs, err := r.ReadCompactSize()
	if err != nil {
		return nil, fmt.Errorf("reading input count: %w", err)
	}
	for i := uint64(0); i < numInputs; i++ {
		in, err := tx.ParseInput(r)
		if err != nil {
			return nil, fmt.Errorf("parsing input %d: %w", i, err)
		}
		f.inputs = append(f.inputs, in)
	}

	numOutputs, err := r.ReadCompactSize()
	if err != nil {
		return nil, fmt.Errorf("reading output count: %w", err)
	}
	for i := uint64(0); i < numOutputs; i++ {
		out, err := tx.ParseOutput(r, uint32(i), params)
		if err != nil {
			return nil, fmt.Errorf("parsing output %d: %w", i, err)
		}
		f.outputs = append(f.outputs, out)
	}

	f.lockTime, err = r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("reading lock_time: %w", err)
	}

	if version >= MinShieldedVersion {
		numJoinSplits, err := r.ReadCompactSize()
		if err != nil {
			return nil, fmt.Errorf("reading joinsplit count: %w", err)
		}

		// Present-but-empty is distinct from absent: the slice exists
		// for every version >= 2 transaction.
		f.joinSplits = make([]JoinSplit, 0)
		for i := uint64(0); i < numJoinSplits; i++ {
			var js JoinSplit
			if err := parseJoinSplit(r, &js); err != nil {
				return nil, fmt.Errorf("parsing joinsplit %d: %w", i, err)
			}
			f.joinSplits = append(f.joinSplits, js)
		}

		if len(f.joinSplits) > 0 {
			var pubKey [32]byte
			if err := r.ReadInto(pubKey[:]); err != nil {
				return nil, fmt.Errorf("reading joinSplitPubKey: %w", err)
			}
			var sig [64]byte
			if err := r.ReadInto(sig[:]); err != nil {
				return nil, fmt.Errorf("reading joinSplitSig: %w", err)
			}
			f.joinSplitPubKey = &pubKey
			f.joinSplitSig = &sig
		}
	}

	return f, nil
}

// encodeFields is the mirror of decodeFields: a pure projection of the
// fields, deriving and caching nothing.
func encodeFields(f *txFields, estimateSize bool) ([]byte, error) {
	w := bstream.NewWriter()

	w.WriteInt32(f.version)

	w.WriteCompactSize(uint64(len(f.inputs)))
	for _, in := range f.inputs {
		tx.SerializeInput(w, in, tx.InputScript(in, estimateSize))
	}

	w.WriteCompactSize(uint64(len(f.outputs)))
	for _, out := range f.outputs {
		tx.SerializeOutput(w, out)
	}

	w.WriteUint32(f.lockTime)

	if f.version >= MinShieldedVersion {
		w.WriteCompactSize(uint64(len(f.joinSplits)))
		for i := range f.joinSplits {
			writeJoinSplit(w, &f.joinSplits[i])
		}

		if len(f.joinSplits) > 0 {
			if f.joinSplitPubKey == nil || f.joinSplitSig == nil {
				return nil, errors.New("joinsplits present but aggregate key or signature missing")
			}
			w.WriteBytes(f.joinSplitPubKey[:])
			w.WriteBytes(f.joinSplitSig[:])
		}
	}

	return w.Bytes(), nil
}

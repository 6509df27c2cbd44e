package sprout

import (
	"fmt"

	"github.com/suffix-labs/zcash-sprout/pkg/bstream"
)

// JoinSplit is one shielded-transfer descriptor: it consumes up to two
// notes, creates two new ones, and may move value in either direction
// between the transparent and shielded pools.
//
// Every multi-element field has its protocol-fixed count; none of them is
// length-prefixed on the wire.
type JoinSplit struct {
	// VPubOld is the value entering the shielded pool from the
	// transparent pool, VPubNew the value leaving it. Both in zatoshis,
	// both bounded by MaxMoney.
	VPubOld uint64
	VPubNew uint64

	// Anchor is the note commitment tree root this descriptor's spends
	// prove membership against.
	Anchor [32]byte

	// Nullifiers mark the spent notes without revealing them.
	Nullifiers [NumJoinSplitInputs][32]byte

	// Commitments are the new notes' commitments.
	Commitments [NumJoinSplitOutputs][32]byte

	// OnetimePubKey is the ephemeral key the recipient uses to decrypt
	// the ciphertexts.
	OnetimePubKey [32]byte

	// RandomSeed feeds the descriptor's binding hash.
	RandomSeed [32]byte

	// MACs bind each spent note's spending key to this descriptor.
	MACs [NumJoinSplitInputs][32]byte

	Proof Proof

	// Ciphertexts are the encrypted new notes. Opaque here; decryption
	// is a wallet concern.
	Ciphertexts [NumJoinSplitOutputs][NoteCiphertextSize]byte
}

// parseJoinSplit fills js from the reader, field by field in wire order.
func parseJoinSplit(r *bstream.Reader, js *JoinSplit) error {
	vpubOld, err := r.ReadUint64()
	if err != nil {
		return fmt.Errorf("reading vpub_old: %w", err)
	}
	if vpubOld > MaxMoney {
		return &ValueRangeError{Field: "vpub_old", Value: vpubOld}
	}
	js.VPubOld = vpubOld

	vpubNew, err := r.ReadUint64()
	if err != nil {
		return fmt.Errorf("reading vpub_new: %w", err)
	}
	if vpubNew > MaxMoney {
		return &ValueRangeError{Field: "vpub_new", Value: vpubNew}
	}
	js.VPubNew = vpubNew

	if err := r.ReadInto(js.Anchor[:]); err != nil {
		return fmt.Errorf("reading anchor: %w", err)
	}

	for i := range js.Nullifiers {
		if err := r.ReadInto(js.Nullifiers[i][:]); err != nil {
			return fmt.Errorf("reading nullifier %d: %w", i, err)
		}
	}
	for i := range js.Commitments {
		if err := r.ReadInto(js.Commitments[i][:]); err != nil {
			return fmt.Errorf("reading commitment %d: %w", i, err)
		}
	}

	if err := r.ReadInto(js.OnetimePubKey[:]); err != nil {
		return fmt.Errorf("reading onetime pubkey: %w", err)
	}
	if err := r.ReadInto(js.RandomSeed[:]); err != nil {
		return fmt.Errorf("reading random seed: %w", err)
	}

	for i := range js.MACs {
		if err := r.ReadInto(js.MACs[i][:]); err != nil {
			return fmt.Errorf("reading mac %d: %w", i, err)
		}
	}

	js.Proof, err = parseProof(r)
	if err != nil {
		return fmt.Errorf("reading proof: %w", err)
	}

	for i := range js.Ciphertexts {
		if err := r.ReadInto(js.Ciphertexts[i][:]); err != nil {
			return fmt.Errorf("reading ciphertext %d: %w", i, err)
		}
	}

	return nil
}

// writeJoinSplit emits js in wire order. It is a pure projection; values
// are written back exactly as held, so parse/write round-trips are
// byte-identical.
func writeJoinSplit(w *bstream.Writer, js *JoinSplit) {
	w.WriteUint64(js.VPubOld)
	w.WriteUint64(js.VPubNew)
	w.WriteBytes(js.Anchor[:])
	for i := range js.Nullifiers {
		w.WriteBytes(js.Nullifiers[i][:])
	}
	for i := range js.Commitments {
		w.WriteBytes(js.Commitments[i][:])
	}
	w.WriteBytes(js.OnetimePubKey[:])
	w.WriteBytes(js.RandomSeed[:])
	for i := range js.MACs {
		w.WriteBytes(js.MACs[i][:])
	}
	writeProof(w, &js.Proof)
	for i := range js.Ciphertexts {
		w.WriteBytes(js.Ciphertexts[i][:])
	}
}

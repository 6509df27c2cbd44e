package tx

import (
	"fmt"

	"github.com/suffix-labs/zcash-sprout/pkg/bstream"
	"github.com/suffix-labs/zcash-sprout/pkg/script"
)

// ParseInput reads a single transparent input.
func ParseInput(r *bstream.Reader) (*Input, error) {
	in := &Input{}

	if err := r.ReadInto(in.PrevoutHash[:]); err != nil {
		return nil, fmt.Errorf("reading prevout hash: %w", err)
	}

	index, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("reading prevout index: %w", err)
	}
	in.PrevoutIndex = index

	in.ScriptSig, err = r.ReadVarBytes()
	if err != nil {
		return nil, fmt.Errorf("reading scriptSig: %w", err)
	}

	in.Sequence, err = r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("reading sequence: %w", err)
	}

	return in, nil
}

// ParseOutput reads a single transparent output and projects its script
// class and address under the given network parameters.
//
// The index is the output's position within its transaction; it is recorded
// on the Output, not read from the wire.
func ParseOutput(r *bstream.Reader, index uint32, params *script.Params) (*Output, error) {
	out := &Output{Index: index}

	value, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("reading value: %w", err)
	}
	out.Value = value

	out.ScriptPubKey, err = r.ReadVarBytes()
	if err != nil {
		return nil, fmt.Errorf("reading scriptPubKey: %w", err)
	}

	out.Class, out.Address = script.ExtractAddress(out.ScriptPubKey, params)
	return out, nil
}

// SerializeInput writes an input using the provided scriptSig, which the
// caller selects via InputScript.
func SerializeInput(w *bstream.Writer, in *Input, scriptSig []byte) {
	w.WriteBytes(in.PrevoutHash[:])
	w.WriteUint32(in.PrevoutIndex)
	w.WriteVarBytes(scriptSig)
	w.WriteUint32(in.Sequence)
}

// SerializeOutput writes an output.
func SerializeOutput(w *bstream.Writer, out *Output) {
	w.WriteUint64(out.Value)
	w.WriteVarBytes(out.ScriptPubKey)
}

package bstream

import "fmt"

// TruncatedInputError is returned when the buffer runs out of bytes in the
// middle of a field.
//
// It is always fatal to the decode in progress; callers reject the input
// rather than retry.
type TruncatedInputError struct {
	Offset int    // cursor position when the read was attempted
	Want   uint64 // bytes requested
	Have   uint64 // bytes remaining
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("truncated input at offset %d: want %d bytes, have %d", e.Offset, e.Want, e.Have)
}

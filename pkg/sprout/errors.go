// Package sprout error types.
//
// Truncation errors come from the byte-stream reader as
// *bstream.TruncatedInputError; the types here cover the failures this
// package detects itself. All are fatal to the operation that returned
// them: the input is not a valid transaction of this format.
package sprout

import "fmt"

// MalformedPointError is returned when a group element's leading byte does
// not carry the expected marker.
//
// It signals corrupt or non-conforming proof data. No curve membership is
// checked anywhere; this is strictly a wire-format failure.
type MalformedPointError struct {
	Group   string // "G1" or "G2"
	Leading byte   // the rejected byte
}

func (e *MalformedPointError) Error() string {
	return fmt.Sprintf("lead byte 0x%02x of %s point not recognized", e.Leading, e.Group)
}

// UnsupportedFeatureError is returned when a caller requests an encoding
// this format does not define.
//
// It signals a caller/format mismatch, not data corruption.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("unsupported feature: %s", e.Feature)
}

// ValueRangeError is returned when a monetary field exceeds MaxMoney.
type ValueRangeError struct {
	Field string // wire name of the offending field
	Value uint64
}

func (e *ValueRangeError) Error() string {
	return fmt.Sprintf("%s value %d exceeds the %d zatoshi supply cap", e.Field, e.Value, uint64(MaxMoney))
}

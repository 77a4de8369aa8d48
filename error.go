package rdpfile

import "errors"

// The failure kinds reported by this package. Decode and Encode wrap
// these sentinels with context about the offending line or field;
// test for a kind with [errors.Is].
var (
	// ErrInvalidFile reports a structural violation: bytes that do
	// not decode to text under any supported encoding, a line that
	// does not split into key, type tag and value, or an unrecognized
	// type tag.
	ErrInvalidFile = errors.New("invalid rdp file")

	// ErrInvalidString reports a value field whose content does not
	// parse under its declared type: a malformed integer literal, a
	// malformed hex string, or a missing field for a type that
	// requires one.
	ErrInvalidString = errors.New("invalid value string")

	// ErrEncoding reports serialized output that cannot be
	// represented in the output encoding.
	ErrEncoding = errors.New("text not encodable")

	// ErrUnknown reports an internal dispatch failure, a kind with
	// no decoder. It does not occur in normal operation.
	ErrUnknown = errors.New("internal error")
)

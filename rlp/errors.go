package rlp

import "errors"

// Errors returned by the RLP codec, named after the taxonomy the wire
// format itself distinguishes (Yellow Paper Appendix B) plus the stream
// reader's own canonicality checks.
var (
	// ErrExpectedString is returned when a list is encountered where a
	// string was expected.
	ErrExpectedString = errors.New("rlp: expected string")

	// ErrExpectedList is returned when a string is encountered where a
	// list was expected.
	ErrExpectedList = errors.New("rlp: expected list")

	// ErrCanonSize is returned when a single byte in [0x00, 0x7f] was
	// wrapped in a one-byte string encoding instead of standing for itself.
	ErrCanonSize = errors.New("rlp: non-canonical size information")

	// ErrEOL is returned when a list is closed before all of its declared
	// payload bytes were consumed, or extra bytes remain after decoding.
	ErrEOL = errors.New("rlp: end of list")

	// ErrCanonInt is returned when an integer payload carries a leading
	// zero byte (non-minimal encoding).
	ErrCanonInt = errors.New("rlp: non-canonical integer encoding")

	// ErrNonCanonicalSize is returned when a long-form string/list length
	// could have been expressed in short form (<= 55 bytes) or its length
	// bytes carry a leading zero.
	ErrNonCanonicalSize = errors.New("rlp: non-canonical size")

	// ErrUint64Range is returned when a decoded unsigned integer does not
	// fit in 64 bits.
	ErrUint64Range = errors.New("rlp: uint64 overflow")

	// ErrNegativeNumber is returned when encoding is asked to serialize a
	// negative integer; RLP has no representation for negative numbers.
	ErrNegativeNumber = errors.New("rlp: negative number")

	// ErrOverflow is returned when a decoded 256-bit integer's payload is
	// longer than 32 bytes.
	ErrOverflow = errors.New("rlp: length overflow")

	// ErrUnexpectedValue is returned when a decoded value's shape doesn't
	// match what the target type requires (e.g. a non-0/1 bool payload).
	ErrUnexpectedValue = errors.New("rlp: unexpected value")

	// ErrLengthMismatch is returned when a fixed-size array's payload
	// length does not equal the array's declared length.
	ErrLengthMismatch = errors.New("rlp: length mismatch")

	// ErrInvalidEnumTag is returned when an enum's encoded name does not
	// match any known variant.
	ErrInvalidEnumTag = errors.New("rlp: invalid enum tag")

	// ErrUnsupportedType is returned for Go types the codec has no RLP
	// mapping for (e.g. signed Go integers, which RLP's unsigned-only
	// integer form cannot represent once decoding needs a sign).
	ErrUnsupportedType = errors.New("rlp: unsupported type")
)

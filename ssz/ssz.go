// Package ssz implements Simple Serialize: the fixed-then-variable layout
// used by the consensus layer, with 4-byte little-endian offset tables for
// variable-size container fields, LSB-first bit-packing for bool vectors,
// and a 1-byte selector for optional values and tagged unions.
//
// Hash-tree-root / Merkleization is not implemented here; this package only
// covers the marshal/unmarshal half of SSZ.
package ssz

import "errors"

// BytesPerLengthOffset is the width, in bytes, of the little-endian offset
// words a variable-size container writes into its fixed section.
const BytesPerLengthOffset = 4

// Errors returned by the SSZ codec.
var (
	ErrSize             = errors.New("ssz: invalid encoded size")
	ErrOffset           = errors.New("ssz: invalid offset")
	ErrListTooLong      = errors.New("ssz: list exceeds maximum length")
	ErrBufferTooSmall   = errors.New("ssz: buffer too small")
	ErrInvalidBool      = errors.New("ssz: invalid boolean byte")
	ErrIndexOutOfBounds = errors.New("ssz: offset out of bounds")
	ErrInvalidEnumType  = errors.New("ssz: unknown enum variant")
	ErrUnknownSelector  = errors.New("ssz: unknown union selector")
)

// Marshaler is implemented by types that know how to encode themselves to
// SSZ and report their encoded size (0 for variable-size types, in which
// case callers use the actual encoded length instead).
type Marshaler interface {
	MarshalSSZ() ([]byte, error)
	SizeSSZ() int
}

// Unmarshaler is implemented by types that know how to decode themselves
// from an SSZ-encoded buffer.
type Unmarshaler interface {
	UnmarshalSSZ(data []byte) error
}

// TextTag lets a Go type opt into enum-as-string wire encoding, matching
// the equivalent interface in the rlp package.
type TextTag interface {
	EnumName() string
	SetEnumName(name string) error
}

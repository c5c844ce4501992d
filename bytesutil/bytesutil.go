// Package bytesutil provides the fixed-width, endian-aware byte primitives
// that the rlp, ssz, and abi codecs build on: big/little-endian integer
// read/write, hex conversion, and 32-byte padding.
package bytesutil

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
)

// Errors returned by the primitives below.
var (
	ErrInvalidLength  = errors.New("bytesutil: invalid length")
	ErrInvalidHexChar = errors.New("bytesutil: invalid hex character")
)

// ReadBE reads a big-endian unsigned integer from b. len(b) must be 1, 2, 4,
// or 8; the returned value is widened into a uint64.
func ReadBE(b []byte) (uint64, error) {
	switch len(b) {
	case 1:
		return uint64(b[0]), nil
	case 2:
		return uint64(binary.BigEndian.Uint16(b)), nil
	case 4:
		return uint64(binary.BigEndian.Uint32(b)), nil
	case 8:
		return binary.BigEndian.Uint64(b), nil
	default:
		return 0, ErrInvalidLength
	}
}

// ReadLE reads a little-endian unsigned integer from b. len(b) must be 1, 2,
// 4, or 8.
func ReadLE(b []byte) (uint64, error) {
	switch len(b) {
	case 1:
		return uint64(b[0]), nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(b)), nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(b)), nil
	case 8:
		return binary.LittleEndian.Uint64(b), nil
	default:
		return 0, ErrInvalidLength
	}
}

// WriteBE writes v into dst as a big-endian integer. len(dst) must be 1, 2,
// 4, or 8.
func WriteBE(dst []byte, v uint64) error {
	switch len(dst) {
	case 1:
		dst[0] = byte(v)
	case 2:
		binary.BigEndian.PutUint16(dst, uint16(v))
	case 4:
		binary.BigEndian.PutUint32(dst, uint32(v))
	case 8:
		binary.BigEndian.PutUint64(dst, v)
	default:
		return ErrInvalidLength
	}
	return nil
}

// WriteLE writes v into dst as a little-endian integer. len(dst) must be 1,
// 2, 4, or 8.
func WriteLE(dst []byte, v uint64) error {
	switch len(dst) {
	case 1:
		dst[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(dst, v)
	default:
		return ErrInvalidLength
	}
	return nil
}

// HexToBytes decodes a hex string into dst, stripping an optional "0x"/"0X"
// prefix. dst must be exactly big enough to hold the decoded bytes.
func HexToBytes(dst []byte, s string) error {
	s = trim0x(s)
	if len(s)%2 != 0 {
		return ErrInvalidHexChar
	}
	if len(s)/2 != len(dst) {
		return ErrInvalidLength
	}
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		return ErrInvalidHexChar
	}
	return nil
}

// HexToBytesAlloc decodes a "0x"-optional hex string into a freshly
// allocated byte slice.
func HexToBytesAlloc(s string) ([]byte, error) {
	s = trim0x(s)
	if len(s)%2 != 0 {
		return nil, ErrInvalidHexChar
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidHexChar
	}
	return b, nil
}

// BytesToHexLower renders b as a lowercase "0x"-prefixed hex string.
func BytesToHexLower(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// LeftPad32 returns a 32-byte slice with b right-aligned (left-padded with
// zeros). Used for big-endian scalars: integers, addresses.
func LeftPad32(b []byte) [32]byte {
	var out [32]byte
	if len(b) >= 32 {
		copy(out[:], b[len(b)-32:])
		return out
	}
	copy(out[32-len(b):], b)
	return out
}

// RightPad32 returns a 32-byte slice with b left-aligned (right-padded with
// zeros). Used for fixed-bytes values and the tail bytes of dynamic strings.
func RightPad32(b []byte) [32]byte {
	var out [32]byte
	n := len(b)
	if n > 32 {
		n = 32
	}
	copy(out[:n], b[:n])
	return out
}

// LeftPad20 returns a 20-byte slice with b right-aligned, used for Address
// values read out of a 32-byte slot.
func LeftPad20(b []byte) [20]byte {
	var out [20]byte
	if len(b) >= 20 {
		copy(out[:], b[len(b)-20:])
		return out
	}
	copy(out[20-len(b):], b)
	return out
}

// Reverse returns a copy of b with byte order reversed. Used to translate
// between the big-endian convention (addresses, integers) and the
// little-endian convention some external tooling uses for bytesN values.
func Reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, x := range b {
		out[len(b)-1-i] = x
	}
	return out
}

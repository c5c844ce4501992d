package ssz

import "encoding/binary"

// --- Scalar encoding ---

// MarshalBool encodes a boolean as a single byte: 0x01 for true, 0x00 for
// false.
func MarshalBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// MarshalUint8 encodes a uint8 as a single byte.
func MarshalUint8(v uint8) []byte {
	return []byte{v}
}

// MarshalUint16 encodes a uint16 as 2 little-endian bytes.
func MarshalUint16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

// MarshalUint32 encodes a uint32 as 4 little-endian bytes.
func MarshalUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// MarshalUint64 encodes a uint64 as 8 little-endian bytes.
func MarshalUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// MarshalUint128 encodes a 128-bit unsigned integer given as little-endian
// limbs (lo, hi) into 16 little-endian bytes.
func MarshalUint128(lo, hi uint64) []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint64(b[0:8], lo)
	binary.LittleEndian.PutUint64(b[8:16], hi)
	return b
}

// MarshalUint256 encodes a 256-bit unsigned integer given as four
// little-endian limbs into 32 little-endian bytes.
func MarshalUint256(limbs [4]uint64) []byte {
	b := make([]byte, 32)
	binary.LittleEndian.PutUint64(b[0:8], limbs[0])
	binary.LittleEndian.PutUint64(b[8:16], limbs[1])
	binary.LittleEndian.PutUint64(b[16:24], limbs[2])
	binary.LittleEndian.PutUint64(b[24:32], limbs[3])
	return b
}

// --- Composite encoding ---

// MarshalVector concatenates the SSZ encodings of a fixed-length sequence
// of fixed-size elements.
func MarshalVector(elements [][]byte) []byte {
	var out []byte
	for _, e := range elements {
		out = append(out, e...)
	}
	return out
}

// MarshalFixedContainer encodes a container whose fields are all
// fixed-size by concatenating their encodings in declaration order.
func MarshalFixedContainer(fields [][]byte) []byte {
	return MarshalVector(fields)
}

// MarshalList encodes a variable-length list of fixed-size elements. Same
// bytes as MarshalVector; kept distinct for callers that want to name the
// semantic difference (lists carry an implicit max length, vectors don't).
func MarshalList(elements [][]byte) []byte {
	return MarshalVector(elements)
}

// MarshalVariableContainer encodes a container with a mix of fixed- and
// variable-size fields. fixedParts holds the encoded fixed fields (the
// entries listed in variableIndices are ignored placeholders); variableParts
// holds the variable fields' encodings in declaration order. The fixed
// section is built first, writing a 4-byte little-endian offset in place of
// each variable field, followed by the variable payloads themselves.
func MarshalVariableContainer(fixedParts [][]byte, variableParts [][]byte, variableIndices []int) []byte {
	fixedSize := 0
	for i, fp := range fixedParts {
		if isVariableIndex(i, variableIndices) {
			fixedSize += BytesPerLengthOffset
		} else {
			fixedSize += len(fp)
		}
	}

	offsets := make([]uint32, len(variableParts))
	currentOffset := uint32(fixedSize)
	for i, vp := range variableParts {
		offsets[i] = currentOffset
		currentOffset += uint32(len(vp))
	}

	out := make([]byte, 0, int(currentOffset))
	varIdx := 0
	for i, fp := range fixedParts {
		if isVariableIndex(i, variableIndices) {
			var ob [4]byte
			binary.LittleEndian.PutUint32(ob[:], offsets[varIdx])
			out = append(out, ob[:]...)
			varIdx++
		} else {
			out = append(out, fp...)
		}
	}
	for _, vp := range variableParts {
		out = append(out, vp...)
	}
	return out
}

func isVariableIndex(idx int, variableIndices []int) bool {
	for _, vi := range variableIndices {
		if vi == idx {
			return true
		}
	}
	return false
}

// --- Bitfield encoding ---

// MarshalBitvector packs exactly len(bits) bits into bytes, least
// significant bit first.
func MarshalBitvector(bits []bool) []byte {
	numBytes := (len(bits) + 7) / 8
	out := make([]byte, numBytes)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return out
}

// MarshalBitlist packs bits with a trailing sentinel bit appended after the
// data so the decoded length can be recovered without an external count.
func MarshalBitlist(bits []bool) []byte {
	withSentinel := make([]bool, len(bits)+1)
	copy(withSentinel, bits)
	withSentinel[len(bits)] = true
	return MarshalBitvector(withSentinel)
}

// MarshalByteVector copies a fixed-length byte vector.
func MarshalByteVector(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// MarshalByteList copies a variable-length byte list; its length is
// implicit in the surrounding container's offset table, not in these bytes.
func MarshalByteList(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// --- Enum encoding ---

// MarshalEnum encodes an enum-like type as the UTF-8 bytes of its variant
// name, the SSZ counterpart to the rlp package's TextTag convention (spec
// §4.8's "enums are carried as their textual name").
func MarshalEnum(tag TextTag) []byte {
	return MarshalByteList([]byte(tag.EnumName()))
}

// --- Option and union encoding ---

// MarshalOption encodes Option<T> as a 1-byte selector (0 absent, 1
// present) followed by the inner encoding when present.
func MarshalOption(present bool, inner []byte) []byte {
	if !present {
		return []byte{0}
	}
	out := make([]byte, 0, 1+len(inner))
	out = append(out, 1)
	return append(out, inner...)
}

// MarshalUnion encodes a tagged union as a 1-byte discriminator followed
// by the selected variant's body.
func MarshalUnion(selector byte, body []byte) []byte {
	out := make([]byte, 0, 1+len(body))
	out = append(out, selector)
	return append(out, body...)
}

package ssz

import "encoding/binary"

// --- Scalar decoding ---

func UnmarshalBool(data []byte) (bool, error) {
	if len(data) != 1 {
		return false, ErrSize
	}
	switch data[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

func UnmarshalUint8(data []byte) (uint8, error) {
	if len(data) != 1 {
		return 0, ErrSize
	}
	return data[0], nil
}

func UnmarshalUint16(data []byte) (uint16, error) {
	if len(data) != 2 {
		return 0, ErrSize
	}
	return binary.LittleEndian.Uint16(data), nil
}

func UnmarshalUint32(data []byte) (uint32, error) {
	if len(data) != 4 {
		return 0, ErrSize
	}
	return binary.LittleEndian.Uint32(data), nil
}

func UnmarshalUint64(data []byte) (uint64, error) {
	if len(data) != 8 {
		return 0, ErrSize
	}
	return binary.LittleEndian.Uint64(data), nil
}

func UnmarshalUint128(data []byte) (lo, hi uint64, err error) {
	if len(data) != 16 {
		return 0, 0, ErrSize
	}
	return binary.LittleEndian.Uint64(data[0:8]), binary.LittleEndian.Uint64(data[8:16]), nil
}

func UnmarshalUint256(data []byte) (limbs [4]uint64, err error) {
	if len(data) != 32 {
		return limbs, ErrSize
	}
	limbs[0] = binary.LittleEndian.Uint64(data[0:8])
	limbs[1] = binary.LittleEndian.Uint64(data[8:16])
	limbs[2] = binary.LittleEndian.Uint64(data[16:24])
	limbs[3] = binary.LittleEndian.Uint64(data[24:32])
	return limbs, nil
}

// --- Composite decoding ---

// UnmarshalVector splits data into n chunks of elemSize bytes each.
func UnmarshalVector(data []byte, n, elemSize int) ([][]byte, error) {
	if len(data) != n*elemSize {
		return nil, ErrSize
	}
	out := make([][]byte, n)
	for i := 0; i < n; i++ {
		out[i] = data[i*elemSize : (i+1)*elemSize]
	}
	return out, nil
}

// UnmarshalList splits data into elements of elemSize bytes, inferring the
// count from the buffer length.
func UnmarshalList(data []byte, elemSize int) ([][]byte, error) {
	if elemSize <= 0 || len(data)%elemSize != 0 {
		return nil, ErrSize
	}
	return UnmarshalVector(data, len(data)/elemSize, elemSize)
}

// UnmarshalVariableContainer splits a container's bytes into numFields
// field slices. fixedSizes[i] gives the byte width of field i when it is
// fixed-size, or 0 when field i is variable-size (its bytes are instead a
// 4-byte little-endian offset into the tail). The final field's tail
// extends to the end of data.
func UnmarshalVariableContainer(data []byte, numFields int, fixedSizes []int) ([][]byte, error) {
	if len(fixedSizes) != numFields {
		return nil, ErrSize
	}

	fixedEnd := 0
	for _, sz := range fixedSizes {
		if sz == 0 {
			fixedEnd += BytesPerLengthOffset
		} else {
			fixedEnd += sz
		}
	}
	if len(data) < fixedEnd {
		return nil, ErrBufferTooSmall
	}

	out := make([][]byte, numFields)
	offsets := make([]int, 0, numFields)
	offsetFieldIndices := make([]int, 0, numFields)

	pos := 0
	for i, sz := range fixedSizes {
		if sz == 0 {
			off, err := UnmarshalUint32(data[pos : pos+BytesPerLengthOffset])
			if err != nil {
				return nil, err
			}
			offsets = append(offsets, int(off))
			offsetFieldIndices = append(offsetFieldIndices, i)
			pos += BytesPerLengthOffset
		} else {
			out[i] = data[pos : pos+sz]
			pos += sz
		}
	}

	for i, off := range offsets {
		start := off
		end := len(data)
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		if start > len(data) || end > len(data) {
			return nil, ErrIndexOutOfBounds
		}
		if start < fixedEnd || end < start {
			return nil, ErrOffset
		}
		out[offsetFieldIndices[i]] = data[start:end]
	}
	return out, nil
}

// UnmarshalBitvector unpacks exactly n bits, least significant bit first.
func UnmarshalBitvector(data []byte, n int) ([]bool, error) {
	want := (n + 7) / 8
	if len(data) != want {
		return nil, ErrSize
	}
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = data[i/8]&(1<<(uint(i)%8)) != 0
	}
	return out, nil
}

// UnmarshalBitlist unpacks a bitlist, recovering the true bit length from
// the trailing sentinel bit written by MarshalBitlist.
func UnmarshalBitlist(data []byte) ([]bool, error) {
	if len(data) == 0 {
		return nil, ErrSize
	}
	totalBits := len(data) * 8
	sentinel := -1
	for i := totalBits - 1; i >= 0; i-- {
		if data[i/8]&(1<<(uint(i)%8)) != 0 {
			sentinel = i
			break
		}
	}
	if sentinel < 0 {
		return nil, ErrSize
	}
	out := make([]bool, sentinel)
	for i := 0; i < sentinel; i++ {
		out[i] = data[i/8]&(1<<(uint(i)%8)) != 0
	}
	return out, nil
}

// UnmarshalByteVector copies a fixed-length byte vector out of data,
// requiring an exact length match.
func UnmarshalByteVector(data []byte, n int) ([]byte, error) {
	if len(data) != n {
		return nil, ErrSize
	}
	out := make([]byte, n)
	copy(out, data)
	return out, nil
}

// UnmarshalByteList copies a variable-length byte list verbatim.
func UnmarshalByteList(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// --- Enum decoding ---

// UnmarshalEnum decodes data as a UTF-8 variant name and applies it to tag
// via SetEnumName, raising ErrInvalidEnumType if the name does not match
// any variant tag recognizes.
func UnmarshalEnum(data []byte, tag TextTag) error {
	if err := tag.SetEnumName(string(data)); err != nil {
		return ErrInvalidEnumType
	}
	return nil
}

// --- Option and union decoding ---

// UnmarshalOption reads the 1-byte selector and returns whether the value
// is present along with the remaining inner bytes.
func UnmarshalOption(data []byte) (present bool, inner []byte, err error) {
	if len(data) == 0 {
		return false, nil, ErrBufferTooSmall
	}
	switch data[0] {
	case 0:
		return false, nil, nil
	case 1:
		return true, data[1:], nil
	default:
		return false, nil, ErrInvalidBool
	}
}

// UnmarshalUnion reads the 1-byte discriminator and returns it along with
// the variant body.
func UnmarshalUnion(data []byte) (selector byte, body []byte, err error) {
	if len(data) == 0 {
		return 0, nil, ErrBufferTooSmall
	}
	return data[0], data[1:], nil
}

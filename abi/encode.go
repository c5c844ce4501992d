package abi

import (
	"fmt"
	"math/big"

	"github.com/ethcodec/ethcodec/bytesutil"
)

// Encode lays out values according to params in the Solidity ABI's
// head/tail scheme: static values and dynamic-value offsets go in the
// head, in order; the tails of dynamic values follow, in order. The
// result is always a multiple of 32 bytes.
func Encode(params []Parameter, values []Value) ([]byte, error) {
	if len(params) != len(values) {
		return nil, fmt.Errorf("%w: %d params, %d values", ErrInvalidAbiParameter, len(params), len(values))
	}
	return encodeSeq(params, values)
}

// EncodeFunction prepends the 4-byte selector to the head/tail encoding of
// values, the format expected by EVM call data.
func EncodeFunction(selector [4]byte, params []Parameter, values []Value) ([]byte, error) {
	body, err := Encode(params, values)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 4+len(body))
	out = append(out, selector[:]...)
	return append(out, body...), nil
}

func encodeSeq(params []Parameter, values []Value) ([]byte, error) {
	n := len(params)
	heads := make([][]byte, n)
	tails := make([][]byte, n)
	dynamic := make([]bool, n)

	headSize := 0
	for i, p := range params {
		if p.IsDynamic() {
			dynamic[i] = true
			tail, err := encodeTail(p, values[i])
			if err != nil {
				return nil, err
			}
			tails[i] = tail
			headSize += 32
			continue
		}
		head, err := encodeStatic(p, values[i])
		if err != nil {
			return nil, err
		}
		heads[i] = head
		headSize += len(head)
	}

	offset := headSize
	for i := range params {
		if dynamic[i] {
			heads[i] = pad32FromUint64(uint64(offset))
			offset += len(tails[i])
		}
	}

	out := make([]byte, 0, offset)
	for _, h := range heads {
		out = append(out, h...)
	}
	for _, t := range tails {
		out = append(out, t...)
	}
	return out, nil
}

func pad32FromUint64(v uint64) []byte {
	var b [8]byte
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	out := bytesutil.LeftPad32(b[:])
	return out[:]
}

// encodeStatic encodes a non-dynamic node directly into its fixed-width
// slot(s): 32 bytes for scalars, size*32 for a static fixed array, the
// concatenation of component slots for a static tuple.
func encodeStatic(p Parameter, v Value) ([]byte, error) {
	switch p.Kind {
	case KindBool:
		if v.Bool {
			out := bytesutil.LeftPad32([]byte{1})
			return out[:], nil
		}
		out := bytesutil.LeftPad32(nil)
		return out[:], nil

	case KindAddress:
		out := bytesutil.LeftPad32(v.Addr[:])
		return out[:], nil

	case KindUint:
		if v.Int == nil || v.Int.Sign() < 0 {
			return nil, fmt.Errorf("%w: uint%d cannot be negative", ErrInvalidSignedness, p.Bits)
		}
		out := bytesutil.LeftPad32(v.Int.Bytes())
		return out[:], nil

	case KindInt:
		return encodeSignedInt(v.Int), nil

	case KindFixedBytes:
		out := bytesutil.RightPad32(v.Fixed)
		return out[:], nil

	case KindFixedArray:
		out := make([]byte, 0, p.Size*32)
		for i := 0; i < p.Size; i++ {
			enc, err := encodeStatic(*p.Elem, v.Array[i])
			if err != nil {
				return nil, err
			}
			out = append(out, enc...)
		}
		return out, nil

	case KindTuple:
		out := make([]byte, 0, len(p.Components)*32)
		for i, c := range p.Components {
			enc, err := encodeStatic(c, v.Tuple[i])
			if err != nil {
				return nil, err
			}
			out = append(out, enc...)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %s is not static", ErrInvalidAbiParameter, p.Kind)
	}
}

// encodeSignedInt two's-complements a possibly-negative big.Int into a
// 32-byte big-endian slot.
func encodeSignedInt(v *big.Int) []byte {
	if v == nil {
		v = new(big.Int)
	}
	if v.Sign() >= 0 {
		out := bytesutil.LeftPad32(v.Bytes())
		return out[:]
	}
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	twos := new(big.Int).Add(mod, v)
	out := bytesutil.LeftPad32(twos.Bytes())
	return out[:]
}

// encodeTail encodes a dynamic node's tail region: for bytes/string, a
// length word then the right-padded payload; for arrays and tuples, their
// inner encoding as a top-level sequence (dynamic arrays are prefixed with
// a count word; fixed arrays and tuples are not, since their length is
// already known from the descriptor).
func encodeTail(p Parameter, v Value) ([]byte, error) {
	switch p.Kind {
	case KindBytes:
		return encodeDynBytes(v.Dynamic), nil
	case KindString:
		return encodeDynBytes([]byte(v.Str)), nil

	case KindDynamicArray:
		elemParams := make([]Parameter, len(v.Array))
		for i := range elemParams {
			elemParams[i] = *p.Elem
		}
		inner, err := encodeSeq(elemParams, v.Array)
		if err != nil {
			return nil, err
		}
		out := pad32FromUint64(uint64(len(v.Array)))
		return append(out, inner...), nil

	case KindFixedArray:
		elemParams := make([]Parameter, p.Size)
		for i := range elemParams {
			elemParams[i] = *p.Elem
		}
		return encodeSeq(elemParams, v.Array)

	case KindTuple:
		return encodeSeq(p.Components, v.Tuple)

	default:
		return nil, fmt.Errorf("%w: %s is not dynamic", ErrInvalidAbiParameter, p.Kind)
	}
}

func encodeDynBytes(data []byte) []byte {
	out := pad32FromUint64(uint64(len(data)))
	n := len(data)
	padded := (n + 31) / 32 * 32
	buf := make([]byte, padded)
	copy(buf, data)
	return append(out, buf...)
}

package abi

import (
	"fmt"
	"math/big"
)

// AllocateMode controls whether borrowed byte-string fields are copied out
// of the input buffer or returned as a view into it.
type AllocateMode uint8

const (
	AllocateIfNeeded AllocateMode = iota
	AlwaysAllocate
)

// Endian selects the byte order used to interpret FixedBytes(k) payloads.
type Endian uint8

const (
	BigEndian Endian = iota
	LittleEndian
)

// Options controls ABI decode behavior.
type Options struct {
	MaxBytes      uint16 // total-bytes ceiling per call; 0 means use the default (1024)
	AllowJunkData bool
	AllocateWhen  AllocateMode
	BytesEndian   Endian
}

// DefaultMaxBytes is the DoS-safety ceiling applied when Options.MaxBytes
// is left at its zero value.
const DefaultMaxBytes = 1024

type budget struct {
	max  int
	read int
}

func (b *budget) add(n int) error {
	b.read += n
	if b.read >= b.max {
		return ErrBufferOverrun
	}
	return nil
}

// Decode decodes data into one Value per descriptor in params.
func Decode(params []Parameter, data []byte, opts Options) ([]Value, error) {
	if len(data) == 0 || len(data)%32 != 0 {
		return nil, ErrInvalidDecodeDataSize
	}
	max := int(opts.MaxBytes)
	if max == 0 {
		max = DefaultMaxBytes
	}
	ctx := &budget{max: max}

	values, used, err := decodeSeq(params, data, ctx, opts)
	if err != nil {
		return nil, err
	}
	if !opts.AllowJunkData && len(data) > used {
		return nil, ErrJunkData
	}
	return values, nil
}

// decodeSeq decodes params against frame, interpreting any dynamic
// offsets as relative to frame's own start. It returns the logical number
// of bytes of frame actually consumed (head plus every tail reached).
func decodeSeq(params []Parameter, frame []byte, ctx *budget, opts Options) ([]Value, int, error) {
	n := len(params)
	headSize := 0
	for _, p := range params {
		headSize += headLen(p)
	}
	if len(frame) < headSize {
		return nil, 0, fmt.Errorf("%w: short head", ErrInvalidAbiParameter)
	}
	if err := ctx.add(headSize); err != nil {
		return nil, 0, err
	}

	values := make([]Value, n)
	used := headSize

	pos := 0
	for i, p := range params {
		head := frame[pos : pos+headLen(p)]
		pos += len(head)
		if p.IsDynamic() {
			offset, err := beUint64(head)
			if err != nil {
				return nil, 0, err
			}
			if offset > uint64(len(frame)) {
				return nil, 0, fmt.Errorf("%w: offset beyond buffer", ErrInvalidAbiParameter)
			}
			v, tailEnd, err := decodeTail(p, frame, int(offset), ctx, opts)
			if err != nil {
				return nil, 0, err
			}
			values[i] = v
			if tailEnd > used {
				used = tailEnd
			}
		} else {
			v, err := decodeStatic(p, head, opts)
			if err != nil {
				return nil, 0, err
			}
			values[i] = v
		}
	}
	return values, used, nil
}

// headLen is the number of head bytes p occupies: the whole inline
// encoding for a static fixed array or tuple, one 32-byte slot otherwise.
func headLen(p Parameter) int {
	if p.IsDynamic() || (p.Kind != KindFixedArray && p.Kind != KindTuple) {
		return 32
	}
	if p.Kind == KindFixedArray {
		return p.Size * headLen(*p.Elem)
	}
	n := 0
	for _, c := range p.Components {
		n += headLen(c)
	}
	return n
}

func beUint64(b []byte) (uint64, error) {
	// A 32-byte offset word; only the low 8 bytes may be nonzero for any
	// offset we could plausibly index a Go slice with.
	for _, x := range b[:24] {
		if x != 0 {
			return 0, fmt.Errorf("%w: offset exceeds addressable range", ErrBufferOverrun)
		}
	}
	var v uint64
	for _, x := range b[24:] {
		v = v<<8 | uint64(x)
	}
	return v, nil
}

func decodeStatic(p Parameter, head []byte, opts Options) (Value, error) {
	switch p.Kind {
	case KindBool:
		for _, b := range head[:31] {
			if b != 0 {
				return Value{}, ErrInvalidBits
			}
		}
		switch head[31] {
		case 0:
			return Value{Param: p, Bool: false}, nil
		case 1:
			return Value{Param: p, Bool: true}, nil
		default:
			return Value{}, ErrInvalidBits
		}

	case KindAddress:
		var addr [20]byte
		copy(addr[:], head[12:32])
		return Value{Param: p, Addr: addr}, nil

	case KindUint:
		return Value{Param: p, Int: new(big.Int).SetBytes(head)}, nil

	case KindInt:
		return Value{Param: p, Int: decodeSignedInt(head)}, nil

	case KindFixedBytes:
		b := make([]byte, p.Size)
		if opts.BytesEndian == LittleEndian {
			for i := 0; i < p.Size; i++ {
				b[i] = head[p.Size-1-i]
			}
		} else {
			copy(b, head[:p.Size])
		}
		return Value{Param: p, Fixed: b}, nil

	case KindFixedArray:
		elems := make([]Value, p.Size)
		size := headLen(*p.Elem)
		for i := 0; i < p.Size; i++ {
			v, err := decodeStatic(*p.Elem, head[i*size:(i+1)*size], opts)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return Value{Param: p, Array: elems}, nil

	case KindTuple:
		elems := make([]Value, len(p.Components))
		off := 0
		for i, c := range p.Components {
			size := headLen(c)
			v, err := decodeStatic(c, head[off:off+size], opts)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
			off += size
		}
		return Value{Param: p, Tuple: elems}, nil

	default:
		return Value{}, fmt.Errorf("%w: %s is not static", ErrInvalidAbiParameter, p.Kind)
	}
}

func decodeSignedInt(head []byte) *big.Int {
	v := new(big.Int).SetBytes(head)
	if head[0]&0x80 == 0 {
		return v
	}
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	return v.Sub(v, mod)
}

// decodeTail decodes a dynamic node whose tail begins at frame[offset:].
// It returns the decoded value and the absolute end (within frame) of the
// bytes the tail occupies.
func decodeTail(p Parameter, frame []byte, offset int, ctx *budget, opts Options) (Value, int, error) {
	switch p.Kind {
	case KindBytes, KindString:
		if offset+32 > len(frame) {
			return Value{}, 0, fmt.Errorf("%w: short tail length word", ErrInvalidAbiParameter)
		}
		if err := ctx.add(32); err != nil {
			return Value{}, 0, err
		}
		n, err := beUint64(frame[offset : offset+32])
		if err != nil {
			return Value{}, 0, err
		}
		padded := (int(n) + 31) / 32 * 32
		end := offset + 32 + padded
		if end > len(frame) {
			return Value{}, 0, fmt.Errorf("%w: tail exceeds buffer", ErrInvalidAbiParameter)
		}
		if err := ctx.add(padded); err != nil {
			return Value{}, 0, err
		}
		data := frame[offset+32 : offset+32+int(n)]
		if opts.AllocateWhen == AlwaysAllocate {
			cp := make([]byte, len(data))
			copy(cp, data)
			data = cp
		}
		if p.Kind == KindString {
			return Value{Param: p, Str: string(data)}, end, nil
		}
		return Value{Param: p, Dynamic: data}, end, nil

	case KindDynamicArray:
		if offset+32 > len(frame) {
			return Value{}, 0, fmt.Errorf("%w: short array count word", ErrInvalidAbiParameter)
		}
		if err := ctx.add(32); err != nil {
			return Value{}, 0, err
		}
		count, err := beUint64(frame[offset : offset+32])
		if err != nil {
			return Value{}, 0, err
		}
		inner := frame[offset+32:]
		// Every element occupies at least a 32-byte head slot, so a count
		// that couldn't possibly fit bounds the allocation below without
		// needing to decode anything first.
		if count > uint64(len(inner))/32 {
			return Value{}, 0, fmt.Errorf("%w: array count exceeds buffer", ErrInvalidAbiParameter)
		}
		elemParams := make([]Parameter, count)
		for i := range elemParams {
			elemParams[i] = *p.Elem
		}
		vals, used, err := decodeSeq(elemParams, inner, ctx, opts)
		if err != nil {
			return Value{}, 0, err
		}
		return Value{Param: p, Array: vals}, offset + 32 + used, nil

	case KindFixedArray:
		elemParams := make([]Parameter, p.Size)
		for i := range elemParams {
			elemParams[i] = *p.Elem
		}
		inner := frame[offset:]
		vals, used, err := decodeSeq(elemParams, inner, ctx, opts)
		if err != nil {
			return Value{}, 0, err
		}
		return Value{Param: p, Array: vals}, offset + used, nil

	case KindTuple:
		inner := frame[offset:]
		vals, used, err := decodeSeq(p.Components, inner, ctx, opts)
		if err != nil {
			return Value{}, 0, err
		}
		return Value{Param: p, Tuple: vals}, offset + used, nil

	default:
		return Value{}, 0, fmt.Errorf("%w: %s is not dynamic", ErrInvalidAbiParameter, p.Kind)
	}
}

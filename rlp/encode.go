package rlp

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
)

// Encode returns the canonical RLP encoding of val.
//
// Supported Go shapes: bool, unsigned integers, *big.Int, *uint256.Int,
// string, []byte/[N]byte, slices/arrays of any encodable element (encoded
// as a list), structs (encoded as a list of their exported fields in
// declaration order), pointers (nil encodes as the empty string, the way
// None does), and any type implementing TextTag (encoded as its name).
// Signed integers have no RLP representation and return ErrUnsupportedType.
func Encode(val interface{}) ([]byte, error) {
	return EncodeToBytes(val)
}

// EncodeToBytes is an alias for Encode kept for symmetry with DecodeBytes.
func EncodeToBytes(val interface{}) ([]byte, error) {
	if val == nil {
		return []byte{0x80}, nil
	}
	return encodeValue(reflect.ValueOf(val))
}

func encodeValue(v reflect.Value) ([]byte, error) {
	if !v.IsValid() {
		return []byte{0x80}, nil
	}

	if tag, ok := asTextTag(v); ok {
		return encodeString([]byte(tag.EnumName())), nil
	}

	switch x := v.Interface().(type) {
	case *big.Int:
		return encodeBigInt(x)
	case big.Int:
		return encodeBigInt(&x)
	case *uint256.Int:
		return encodeUint256(x)
	case uint256.Int:
		return encodeUint256(&x)
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return []byte{0x80}, nil
		}
		return encodeValue(v.Elem())
	case reflect.Bool:
		if v.Bool() {
			return []byte{0x01}, nil
		}
		return []byte{0x80}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return encodeUint(v.Uint()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return nil, fmt.Errorf("%w: signed integers have no RLP representation", ErrUnsupportedType)
	case reflect.String:
		return encodeString([]byte(v.String())), nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return encodeString(v.Bytes()), nil
		}
		return encodeList(v)
	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return encodeString(arrayBytes(v)), nil
		}
		return encodeList(v)
	case reflect.Struct:
		return encodeStruct(v)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, v.Kind())
	}
}

func asTextTag(v reflect.Value) (TextTag, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	if tag, ok := v.Interface().(TextTag); ok {
		return tag, true
	}
	if v.CanAddr() {
		if tag, ok := v.Addr().Interface().(TextTag); ok {
			return tag, true
		}
		return nil, false
	}
	// Not addressable (e.g. passed as a bare interface{} argument): copy
	// into an addressable value so a pointer-receiver TextTag still works.
	addressable := reflect.New(v.Type()).Elem()
	addressable.Set(v)
	if tag, ok := addressable.Addr().Interface().(TextTag); ok {
		return tag, true
	}
	return nil, false
}

func arrayBytes(v reflect.Value) []byte {
	out := make([]byte, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = byte(v.Index(i).Uint())
	}
	return out
}

func encodeUint(u uint64) []byte {
	if u == 0 {
		return []byte{0x80}
	}
	if u < 0x80 {
		return []byte{byte(u)}
	}
	return encodeString(putUintBigEndian(u))
}

func encodeBigInt(i *big.Int) ([]byte, error) {
	if i == nil {
		return []byte{0x80}, nil
	}
	if i.Sign() < 0 {
		return nil, ErrNegativeNumber
	}
	if i.Sign() == 0 {
		return []byte{0x80}, nil
	}
	return encodeString(i.Bytes()), nil
}

func encodeUint256(i *uint256.Int) ([]byte, error) {
	if i == nil || i.IsZero() {
		return []byte{0x80}, nil
	}
	return encodeString(i.Bytes()), nil
}

func putUintBigEndian(u uint64) []byte {
	var b [8]byte
	n := 8
	for n > 0 {
		b[8-n] = byte(u >> (uint(n-1) * 8))
		n--
	}
	i := 0
	for i < 7 && b[i] == 0 {
		i++
	}
	return b[i:]
}

func encodeString(data []byte) []byte {
	if len(data) == 1 && data[0] <= 0x7f {
		return []byte{data[0]}
	}
	if len(data) < 56 {
		out := make([]byte, 0, 1+len(data))
		out = append(out, 0x80+byte(len(data)))
		return append(out, data...)
	}
	return encodeLong(0xb7, data)
}

func encodeList(v reflect.Value) ([]byte, error) {
	n := v.Len()
	payload := make([]byte, 0, n*32)
	for i := 0; i < n; i++ {
		enc, err := encodeValue(v.Index(i))
		if err != nil {
			return nil, err
		}
		payload = append(payload, enc...)
	}
	return wrapList(payload), nil
}

func encodeStruct(v reflect.Value) ([]byte, error) {
	t := v.Type()
	payload := make([]byte, 0, 64)
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		enc, err := encodeValue(v.Field(i))
		if err != nil {
			return nil, err
		}
		payload = append(payload, enc...)
	}
	return wrapList(payload), nil
}

// WrapList wraps an already-encoded sequence of RLP items as a single list,
// for callers that build the list payload field-by-field rather than
// through reflection.
func WrapList(payload []byte) []byte {
	return wrapList(payload)
}

func wrapList(payload []byte) []byte {
	if len(payload) < 56 {
		out := make([]byte, 0, 1+len(payload))
		out = append(out, 0xc0+byte(len(payload)))
		return append(out, payload...)
	}
	return encodeLong(0xf7, payload)
}

func encodeLong(base byte, data []byte) []byte {
	length := uint64(len(data))
	lenBytes := putUintBigEndian(length)
	out := make([]byte, 0, 1+len(lenBytes)+len(data))
	out = append(out, base+byte(len(lenBytes)))
	out = append(out, lenBytes...)
	return append(out, data...)
}

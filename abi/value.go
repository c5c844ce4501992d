package abi

import "math/big"

// Value holds a decoded (or to-be-encoded) ABI value tagged by the
// Parameter describing its shape. Exactly one of the fields below is
// meaningful, selected by Param.Kind.
type Value struct {
	Param Parameter

	Bool    bool
	Addr    [20]byte
	Int     *big.Int // Uint(n) and Int(n); Int(n) carries the true signed value
	Fixed   []byte   // FixedBytes(k)
	Dynamic []byte   // Bytes
	Str     string   // String
	Array   []Value  // FixedArray / DynamicArray
	Tuple   []Value  // Tuple
}

// BoolValue, AddressValue, UintValue, IntValue, BytesValue, StringValue are
// small constructors for the common leaf cases, mirroring how callers
// build up a parameter/value pair by hand.
func BoolValue(b bool) Value { return Value{Param: Parameter{Kind: KindBool}, Bool: b} }

func AddressValue(addr [20]byte) Value {
	return Value{Param: Parameter{Kind: KindAddress}, Addr: addr}
}

func UintValue(bits int, v *big.Int) Value {
	return Value{Param: Parameter{Kind: KindUint, Bits: bits}, Int: v}
}

func IntValue(bits int, v *big.Int) Value {
	return Value{Param: Parameter{Kind: KindInt, Bits: bits}, Int: v}
}

func FixedBytesValue(size int, b []byte) Value {
	return Value{Param: Parameter{Kind: KindFixedBytes, Size: size}, Fixed: b}
}

func BytesValue(b []byte) Value {
	return Value{Param: Parameter{Kind: KindBytes}, Dynamic: b}
}

func StringValue(s string) Value {
	return Value{Param: Parameter{Kind: KindString}, Str: s}
}

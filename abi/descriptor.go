// Package abi implements the Solidity contract ABI's 32-byte-slot
// encoding: head/tail layout for dynamic values, function/event selector
// verification, and the log-topic codec for indexed event parameters.
package abi

import (
	"fmt"
	"strings"
)

// Kind is the closed set of ABI type tags a Parameter can carry.
type Kind uint8

const (
	KindBool Kind = iota
	KindAddress
	KindUint
	KindInt
	KindFixedBytes
	KindBytes
	KindString
	KindFixedArray
	KindDynamicArray
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindFixedBytes:
		return "fixedBytes"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindFixedArray:
		return "fixedArray"
	case KindDynamicArray:
		return "dynamicArray"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// Parameter is the recursive descriptor driving the ABI codec: every node
// carries a type tag, the bit width (Uint/Int) or byte width (FixedBytes)
// where applicable, the element descriptor for array tags, the ordered
// child descriptors for tuple tags, and an optional diagnostic name that
// the codec itself never inspects.
type Parameter struct {
	Kind       Kind
	Name       string
	Bits       int         // Uint(n) / Int(n): n in {8,16,...,256}
	Size       int         // FixedBytes(k): 1<=k<=32; FixedArray: element count
	Elem       *Parameter  // FixedArray / DynamicArray element descriptor
	Components []Parameter // Tuple (or array-of-tuple) field descriptors
}

// IsDynamic implements the dynamic-type predicate: a node is dynamic iff
// its tag is string/bytes/dynamicArray, or it's a tuple with any dynamic
// component, or a fixed array whose element is dynamic.
func (p Parameter) IsDynamic() bool {
	switch p.Kind {
	case KindString, KindBytes, KindDynamicArray:
		return true
	case KindFixedArray:
		return p.Elem != nil && p.Elem.IsDynamic()
	case KindTuple:
		for _, c := range p.Components {
			if c.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CanonicalType renders the parameter's type in Solidity's canonical
// signature form, e.g. "uint256", "bytes32", "tuple(uint256,address)[]".
func (p Parameter) CanonicalType() string {
	switch p.Kind {
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindUint:
		return fmt.Sprintf("uint%d", p.Bits)
	case KindInt:
		return fmt.Sprintf("int%d", p.Bits)
	case KindFixedBytes:
		return fmt.Sprintf("bytes%d", p.Size)
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindFixedArray:
		return fmt.Sprintf("%s[%d]", p.Elem.CanonicalType(), p.Size)
	case KindDynamicArray:
		return fmt.Sprintf("%s[]", p.Elem.CanonicalType())
	case KindTuple:
		parts := make([]string, len(p.Components))
		for i, c := range p.Components {
			parts[i] = c.CanonicalType()
		}
		return "tuple(" + strings.Join(parts, ",") + ")"
	default:
		return "?"
	}
}

// CanonicalSignature renders a function/event's canonical signature
// "name(type1,type2,...)" used to derive its selector/topic-0 hash.
func CanonicalSignature(name string, params []Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.CanonicalType()
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}

// Validate checks the structural invariants of §3.1: a tuple has at least
// one component, numeric widths are positive multiples of 8 not exceeding
// 256, fixed-bytes widths are 1..32, fixed-array sizes are non-negative,
// and array tags carry an element descriptor. Components set on a
// non-tuple node are not checked.
func (p Parameter) Validate() error {
	switch p.Kind {
	case KindUint, KindInt:
		if p.Bits <= 0 || p.Bits > 256 || p.Bits%8 != 0 {
			return fmt.Errorf("%w: %d", ErrInvalidBits, p.Bits)
		}
	case KindFixedBytes:
		if p.Size < 1 || p.Size > 32 {
			return fmt.Errorf("%w: fixedBytes(%d)", ErrInvalidArraySize, p.Size)
		}
	case KindFixedArray:
		if p.Size < 0 {
			return fmt.Errorf("%w: fixedArray size %d", ErrInvalidArraySize, p.Size)
		}
		if p.Elem == nil {
			return fmt.Errorf("%w: fixedArray missing element type", ErrInvalidAbiParameter)
		}
		return p.Elem.Validate()
	case KindDynamicArray:
		if p.Elem == nil {
			return fmt.Errorf("%w: dynamicArray missing element type", ErrInvalidAbiParameter)
		}
		return p.Elem.Validate()
	case KindTuple:
		if len(p.Components) == 0 {
			return fmt.Errorf("%w: tuple with no components", ErrInvalidAbiParameter)
		}
		for i := range p.Components {
			if err := p.Components[i].Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

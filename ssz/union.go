package ssz

import "fmt"

// MaxUnionVariants is the largest number of variants a UnionTypeRegistry can
// hold; the selector byte can only distinguish 256 values.
const MaxUnionVariants = 256

// UnionVariantCodec describes one variant of a tagged union: its selector
// byte and the functions that encode/decode its Go value.
type UnionVariantCodec struct {
	Selector byte
	Name     string
	Encode   func(interface{}) ([]byte, error)
	Decode   func([]byte) (interface{}, error)
}

// UnionTypeRegistry maps selector bytes to variant codecs, turning a
// selector byte into the matching variant's encode/decode functions.
type UnionTypeRegistry struct {
	variants map[byte]*UnionVariantCodec
	names    map[string]byte
}

// NewUnionTypeRegistry returns an empty registry.
func NewUnionTypeRegistry() *UnionTypeRegistry {
	return &UnionTypeRegistry{
		variants: make(map[byte]*UnionVariantCodec),
		names:    make(map[string]byte),
	}
}

// Register adds a variant codec, failing if its selector is already taken
// or the registry has hit MaxUnionVariants.
func (r *UnionTypeRegistry) Register(codec *UnionVariantCodec) error {
	if codec == nil {
		return fmt.Errorf("%w: nil codec", ErrUnknownSelector)
	}
	if len(r.variants) >= MaxUnionVariants {
		return fmt.Errorf("%w: registry full", ErrUnknownSelector)
	}
	if _, exists := r.variants[codec.Selector]; exists {
		return fmt.Errorf("%w: duplicate selector %d", ErrUnknownSelector, codec.Selector)
	}
	r.variants[codec.Selector] = codec
	r.names[codec.Name] = codec.Selector
	return nil
}

// Lookup returns the variant codec registered for selector, if any.
func (r *UnionTypeRegistry) Lookup(selector byte) (*UnionVariantCodec, bool) {
	c, ok := r.variants[selector]
	return c, ok
}

// Count returns the number of registered variants.
func (r *UnionTypeRegistry) Count() int {
	return len(r.variants)
}

// Encode looks up the variant registered for selector, encodes val with
// its codec, and writes the 1-byte selector followed by the variant body.
func (r *UnionTypeRegistry) Encode(selector byte, val interface{}) ([]byte, error) {
	codec, ok := r.Lookup(selector)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSelector, selector)
	}
	body, err := codec.Encode(val)
	if err != nil {
		return nil, err
	}
	return MarshalUnion(selector, body), nil
}

// Decode reads the selector byte from data and dispatches to the matching
// variant's Decode function.
func (r *UnionTypeRegistry) Decode(data []byte) (interface{}, error) {
	selector, body, err := UnmarshalUnion(data)
	if err != nil {
		return nil, err
	}
	codec, ok := r.Lookup(selector)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSelector, selector)
	}
	return codec.Decode(body)
}

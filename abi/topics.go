package abi

import (
	"fmt"

	"github.com/ethcodec/ethcodec/crypto"
)

// EncodeTopics builds the topic list for an event: topic 0 is the
// keccak-256 hash of the canonical event signature; each subsequent topic
// corresponds positionally to an indexed parameter — fixed-width scalars
// are padded directly into a 32-byte word; a string or bytes value is
// replaced by the keccak-256 hash of its raw contents, and any other
// dynamic value by the keccak-256 hash of its ABI encoding (neither can
// later be inverted back to the original value).
func EncodeTopics(eventName string, indexed []Parameter, values []Value) ([][32]byte, error) {
	if len(indexed) != len(values) {
		return nil, fmt.Errorf("%w: %d indexed params, %d values", ErrInvalidAbiParameter, len(indexed), len(values))
	}
	topics := make([][32]byte, 0, len(indexed)+1)
	topics = append(topics, crypto.Keccak256([]byte(CanonicalSignature(eventName, indexed))))

	for i, p := range indexed {
		switch p.Kind {
		case KindString:
			topics = append(topics, crypto.Keccak256([]byte(values[i].Str)))
			continue
		case KindBytes:
			topics = append(topics, crypto.Keccak256(values[i].Dynamic))
			continue
		}
		if p.IsDynamic() {
			enc, err := Encode([]Parameter{p}, []Value{values[i]})
			if err != nil {
				return nil, err
			}
			topics = append(topics, crypto.Keccak256(enc))
			continue
		}
		head, err := encodeStatic(p, values[i])
		if err != nil {
			return nil, err
		}
		var t [32]byte
		copy(t[:], head)
		topics = append(topics, t)
	}
	return topics, nil
}

// DecodedTopic is one slot of a decoded log: either a recovered scalar
// value (for non-hashed indexed parameters) or, for a dynamic-length
// parameter, the raw hash that can no longer be inverted.
type DecodedTopic struct {
	Value  *Value
	Hashed *[32]byte
}

// DecodeTopics inverts EncodeTopics for non-hashed values. topics[0] must
// be the event signature hash; topics[1:] must have one slot per indexed
// parameter (nil for a null/missing topic). Hashed (dynamic-length)
// parameters cannot be recovered and are surfaced as a raw hash instead of
// a decoded Value. A call with no indexed parameters and no non-null
// topics beyond the signature is permitted and returns just that hash.
func DecodeTopics(eventName string, indexed []Parameter, topics [][]byte, opts Options) ([32]byte, []DecodedTopic, error) {
	if len(topics) == 0 {
		return [32]byte{}, nil, fmt.Errorf("%w: missing signature topic", ErrInvalidAbiParameter)
	}
	want := crypto.Keccak256([]byte(CanonicalSignature(eventName, indexed)))
	var got [32]byte
	copy(got[:], topics[0])
	if got != want {
		return [32]byte{}, nil, ErrInvalidAbiSignature
	}

	if len(topics)-1 != len(indexed) {
		return [32]byte{}, nil, fmt.Errorf("%w: %d indexed params, %d topic slots", ErrInvalidAbiParameter, len(indexed), len(topics)-1)
	}

	out := make([]DecodedTopic, len(indexed))
	for i, p := range indexed {
		slot := topics[i+1]
		if slot == nil {
			out[i] = DecodedTopic{}
			continue
		}
		if len(slot) != 32 {
			return [32]byte{}, nil, ErrInvalidLength
		}
		if p.IsDynamic() {
			var h [32]byte
			copy(h[:], slot)
			out[i] = DecodedTopic{Hashed: &h}
			continue
		}
		v, err := decodeStatic(p, slot, opts)
		if err != nil {
			return [32]byte{}, nil, err
		}
		out[i] = DecodedTopic{Value: &v}
	}
	return want, out, nil
}

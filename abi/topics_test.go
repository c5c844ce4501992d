package abi

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethcodec/ethcodec/crypto"
)

func TestEncodeTopicsHashesDynamicIndexedParam(t *testing.T) {
	indexed := []Parameter{{Kind: KindString}}
	topics, err := EncodeTopics("Foo", indexed, []Value{StringValue("hello")})
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) != 2 {
		t.Fatalf("expected signature topic plus one indexed topic, got %d", len(topics))
	}
	wantSig := crypto.Keccak256([]byte("Foo(string)"))
	if topics[0] != wantSig {
		t.Fatalf("topic0 mismatch: got %x want %x", topics[0], wantSig)
	}
	wantHash := crypto.Keccak256([]byte("hello"))
	if topics[1] != wantHash {
		t.Fatalf("topic1 mismatch: got %x want %x", topics[1], wantHash)
	}
}

func TestEncodeTopicsPadsScalarIndexedParam(t *testing.T) {
	var addr [20]byte
	addr[19] = 0x42
	indexed := []Parameter{{Kind: KindAddress}}
	topics, err := EncodeTopics("Transfer", indexed, []Value{AddressValue(addr)})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(topics[1][12:], addr[:]) {
		t.Fatalf("expected address in low 20 bytes, got %x", topics[1])
	}
	for _, b := range topics[1][:12] {
		if b != 0 {
			t.Fatalf("expected left padding, got %x", topics[1])
		}
	}
}

func TestDecodeTopicsRoundTripsScalarAndSurfacesHash(t *testing.T) {
	indexed := []Parameter{{Kind: KindUint, Bits: 256}, {Kind: KindString}}
	topics, err := EncodeTopics("Foo", indexed, []Value{
		UintValue(256, big.NewInt(7)),
		StringValue("hello"),
	})
	if err != nil {
		t.Fatal(err)
	}
	raw := make([][]byte, len(topics))
	for i, tp := range topics {
		cp := tp
		raw[i] = cp[:]
	}
	sig, decoded, err := DecodeTopics("Foo", indexed, raw, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if sig != topics[0] {
		t.Fatalf("signature mismatch")
	}
	if decoded[0].Value == nil || decoded[0].Value.Int.Uint64() != 7 {
		t.Fatalf("expected recovered uint, got %+v", decoded[0])
	}
	if decoded[1].Hashed == nil || *decoded[1].Hashed != topics[2] {
		t.Fatalf("expected surfaced hash for dynamic indexed param, got %+v", decoded[1])
	}
}

func TestDecodeTopicsAllowsNullSlot(t *testing.T) {
	indexed := []Parameter{{Kind: KindBool}}
	sigHash := crypto.Keccak256([]byte(CanonicalSignature("Foo", indexed)))
	raw := [][]byte{sigHash[:], nil}
	_, decoded, err := DecodeTopics("Foo", indexed, raw, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if decoded[0].Value != nil || decoded[0].Hashed != nil {
		t.Fatalf("expected empty slot for null topic, got %+v", decoded[0])
	}
}

func TestDecodeTopicsRejectsSignatureMismatch(t *testing.T) {
	indexed := []Parameter{{Kind: KindBool}}
	raw := [][]byte{make([]byte, 32)}
	if _, _, err := DecodeTopics("Foo", indexed, raw, Options{}); err != ErrInvalidAbiSignature {
		t.Fatalf("expected ErrInvalidAbiSignature, got %v", err)
	}
}

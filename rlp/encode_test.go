package rlp

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

func TestEncodeEmptyString(t *testing.T) {
	got, err := Encode("")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x80}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestEncodeDog(t *testing.T) {
	got, err := Encode("dog")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x83, 0x64, 0x6f, 0x67}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestEncode55ByteStringBoundary(t *testing.T) {
	s55 := string(bytes.Repeat([]byte{'a'}, 55))
	got, err := Encode(s55)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 0xb7 || got[1] != 'a' {
		t.Fatalf("55-byte string header = %x, want b7 followed by the payload", got[:2])
	}

	s56 := string(bytes.Repeat([]byte{'a'}, 56))
	got, err = Encode(s56)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 0xb8 || got[1] != 0x38 {
		t.Fatalf("56-byte string header = %x, want b8 38 prefix", got[:2])
	}
}

func TestEncodeNestedSetTheoretic(t *testing.T) {
	type L = []interface{}
	val := L{L{}, L{L{}}, L{L{}, L{L{}}}}
	got, err := Encode(val)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xc7, 0xc0, 0xc1, 0xc0, 0xc3, 0xc0, 0xc1, 0xc0}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestEncodeUint(t *testing.T) {
	tests := []struct {
		name string
		val  interface{}
		want []byte
	}{
		{"zero", uint64(0), []byte{0x80}},
		{"small", uint64(1), []byte{0x01}},
		{"boundary 127", uint64(127), []byte{0x7f}},
		{"boundary 128", uint64(128), []byte{0x81, 0x80}},
		{"uint16", uint16(1024), []byte{0x82, 0x04, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got %x, want %x", got, tt.want)
			}
		})
	}
}

func TestEncodeBool(t *testing.T) {
	tests := []struct {
		name string
		val  bool
		want []byte
	}{
		{"true", true, []byte{0x01}},
		{"false", false, []byte{0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got %x, want %x", got, tt.want)
			}
		})
	}
}

func TestEncodeNegativeBigIntRejected(t *testing.T) {
	neg := big.NewInt(-1)
	if _, err := Encode(neg); err != ErrNegativeNumber {
		t.Fatalf("expected ErrNegativeNumber, got %v", err)
	}
}

func TestEncodeSignedIntRejected(t *testing.T) {
	if _, err := Encode(int64(5)); err == nil {
		t.Fatal("expected error encoding a signed integer")
	}
}

func TestEncodeUint256(t *testing.T) {
	v := uint256.NewInt(0x0102)
	got, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x82, 0x01, 0x02}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestEncodeStruct(t *testing.T) {
	type pair struct {
		A uint64
		B string
	}
	got, err := Encode(pair{A: 1, B: "dog"})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xc5, 0x01, 0x83, 0x64, 0x6f, 0x67}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestEncodeNilPointerIsEmptyString(t *testing.T) {
	var p *uint64
	got, err := Encode(p)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0x80}) {
		t.Fatalf("got %x, want 80", got)
	}
}

type testEnum int

const (
	enumA testEnum = iota
	enumB
)

func (e testEnum) EnumName() string {
	if e == enumB {
		return "B"
	}
	return "A"
}

func (e *testEnum) SetEnumName(name string) error {
	switch name {
	case "A":
		*e = enumA
	case "B":
		*e = enumB
	default:
		return ErrInvalidEnumTag
	}
	return nil
}

func TestEncodeEnumAsName(t *testing.T) {
	got, err := Encode(enumB)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{'B'}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

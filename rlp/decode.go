package rlp

import (
	"bytes"
	"fmt"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
)

// Kind classifies the shape of the next RLP item in a stream.
type Kind int

const (
	KindByte Kind = iota
	KindString
	KindList
)

type listFrame struct {
	end int
}

// Stream reads successive RLP items from an in-memory byte buffer.
type Stream struct {
	data  []byte
	pos   int
	stack []listFrame
}

// NewStream wraps data for sequential RLP reads.
func NewStream(data []byte) *Stream {
	return &Stream{data: data}
}

func (s *Stream) limit() int {
	if len(s.stack) > 0 {
		return s.stack[len(s.stack)-1].end
	}
	return len(s.data)
}

func (s *Stream) remaining() []byte {
	return s.data[s.pos:s.limit()]
}

// Kind peeks at the next item without consuming it, reporting its
// classification and, for short-form items, the payload size. Long-form
// strings (0xb8-0xbf) and lists (0xf8-0xff) report a size of 0.
func (s *Stream) Kind() (Kind, uint64, error) {
	b := s.remaining()
	if len(b) == 0 {
		return 0, 0, ErrEOL
	}
	prefix := b[0]
	switch {
	case prefix < 0x80:
		return KindByte, 1, nil
	case prefix <= 0xb7:
		return KindString, uint64(prefix - 0x80), nil
	case prefix <= 0xbf:
		return KindString, 0, nil
	case prefix <= 0xf7:
		return KindList, uint64(prefix - 0xc0), nil
	default:
		return KindList, 0, nil
	}
}

// readItem consumes and returns the next item's kind and payload bytes.
func (s *Stream) readItem() (Kind, []byte, error) {
	b := s.remaining()
	if len(b) == 0 {
		return 0, nil, ErrEOL
	}
	prefix := b[0]

	switch {
	case prefix < 0x80:
		s.pos++
		return KindByte, s.data[s.pos-1 : s.pos], nil

	case prefix <= 0xb7:
		n := int(prefix - 0x80)
		if n == 1 && len(b) > 1 && b[1] < 0x80 {
			return 0, nil, ErrCanonSize
		}
		if len(b) < 1+n {
			return 0, nil, ErrEOL
		}
		payload := s.data[s.pos+1 : s.pos+1+n]
		s.pos += 1 + n
		return KindString, payload, nil

	case prefix <= 0xbf:
		lenOfLen := int(prefix - 0xb7)
		if len(b) < 1+lenOfLen {
			return 0, nil, ErrEOL
		}
		lenBytes := b[1 : 1+lenOfLen]
		if lenBytes[0] == 0 {
			return 0, nil, ErrNonCanonicalSize
		}
		n, err := beToUint64(lenBytes)
		if err != nil {
			return 0, nil, err
		}
		if n < 56 {
			return 0, nil, ErrNonCanonicalSize
		}
		total := 1 + lenOfLen + int(n)
		if len(b) < total {
			return 0, nil, ErrEOL
		}
		payload := s.data[s.pos+1+lenOfLen : s.pos+total]
		s.pos += total
		return KindString, payload, nil

	case prefix <= 0xf7:
		n := int(prefix - 0xc0)
		if len(b) < 1+n {
			return 0, nil, ErrEOL
		}
		payload := s.data[s.pos+1 : s.pos+1+n]
		s.pos += 1 + n
		return KindList, payload, nil

	default:
		lenOfLen := int(prefix - 0xf7)
		if len(b) < 1+lenOfLen {
			return 0, nil, ErrEOL
		}
		lenBytes := b[1 : 1+lenOfLen]
		if lenBytes[0] == 0 {
			return 0, nil, ErrNonCanonicalSize
		}
		n, err := beToUint64(lenBytes)
		if err != nil {
			return 0, nil, err
		}
		if n < 56 {
			return 0, nil, ErrNonCanonicalSize
		}
		total := 1 + lenOfLen + int(n)
		if len(b) < total {
			return 0, nil, ErrEOL
		}
		payload := s.data[s.pos+1+lenOfLen : s.pos+total]
		s.pos += total
		return KindList, payload, nil
	}
}

func beToUint64(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, ErrUint64Range
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v, nil
}

// Bytes consumes the next item, which must be a byte (single-byte form) or
// string, and returns its payload.
func (s *Stream) Bytes() ([]byte, error) {
	kind, payload, err := s.readItem()
	if err != nil {
		return nil, err
	}
	if kind == KindList {
		return nil, ErrExpectedString
	}
	return payload, nil
}

// List enters a list item, returning the byte length of its payload, and
// pushes a frame so subsequent reads are bounded to it until ListEnd.
func (s *Stream) List() (uint64, error) {
	kind, payload, err := s.readItem()
	if err != nil {
		return 0, err
	}
	if kind != KindList {
		return 0, ErrExpectedList
	}
	start := s.pos - len(payload)
	s.stack = append(s.stack, listFrame{end: start + len(payload)})
	s.pos = start
	return uint64(len(payload)), nil
}

// ListEnd pops the current list frame, failing with ErrEOL if the frame's
// payload was not fully consumed.
func (s *Stream) ListEnd() error {
	if len(s.stack) == 0 {
		return ErrEOL
	}
	top := s.stack[len(s.stack)-1]
	if s.pos != top.end {
		return ErrEOL
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// AtListEnd reports whether the current list frame has no more items.
func (s *Stream) AtListEnd() bool {
	return s.pos >= s.limit()
}

// Uint64 decodes the next item as an unsigned integer, rejecting
// non-canonical leading zero bytes and values wider than 64 bits.
func (s *Stream) Uint64() (uint64, error) {
	b, err := s.Bytes()
	if err != nil {
		return 0, err
	}
	if len(b) > 0 && b[0] == 0 {
		return 0, ErrCanonInt
	}
	return beToUint64(b)
}

// BigInt decodes the next item as an arbitrary-precision non-negative
// integer.
func (s *Stream) BigInt() (*big.Int, error) {
	b, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) > 0 && b[0] == 0 {
		return nil, ErrCanonInt
	}
	return new(big.Int).SetBytes(b), nil
}

// Uint256 decodes the next item as a 256-bit unsigned integer.
func (s *Stream) Uint256() (*uint256.Int, error) {
	b, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) > 0 && b[0] == 0 {
		return nil, ErrCanonInt
	}
	if len(b) > 32 {
		return nil, ErrOverflow
	}
	return new(uint256.Int).SetBytes(b), nil
}

// Bool decodes the next item with the strict rule: only the empty string
// (false) or the literal byte 0x01 (true) are valid.
func (s *Stream) Bool() (bool, error) {
	b, err := s.Bytes()
	if err != nil {
		return false, err
	}
	switch {
	case len(b) == 0:
		return false, nil
	case len(b) == 1 && b[0] == 0x01:
		return true, nil
	default:
		return false, ErrUnexpectedValue
	}
}

// DecodeBytes decodes data into val, which must be a non-nil pointer.
// Trailing bytes left over after the top-level value is fully consumed are
// rejected; this is the only place junk-data is forbidden, since trailing
// bytes after an item nested inside a list are a normal part of walking
// the list's remaining siblings.
func DecodeBytes(data []byte, val interface{}) error {
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: decode target must be a non-nil pointer", ErrUnsupportedType)
	}
	s := NewStream(data)
	if err := s.decodeValue(rv.Elem()); err != nil {
		return err
	}
	if s.pos != len(s.data) {
		return ErrEOL
	}
	return nil
}

func (s *Stream) decodeValue(v reflect.Value) error {
	if tag, ok := addrTextTag(v); ok {
		b, err := s.Bytes()
		if err != nil {
			return err
		}
		return tag.SetEnumName(string(b))
	}

	if v.CanAddr() {
		switch addr := v.Addr().Interface().(type) {
		case **big.Int:
			x, err := s.BigInt()
			if err != nil {
				return err
			}
			*addr = x
			return nil
		case *big.Int:
			x, err := s.BigInt()
			if err != nil {
				return err
			}
			*addr = *x
			return nil
		case **uint256.Int:
			x, err := s.Uint256()
			if err != nil {
				return err
			}
			*addr = x
			return nil
		case *uint256.Int:
			x, err := s.Uint256()
			if err != nil {
				return err
			}
			*addr = *x
			return nil
		}
	}

	switch v.Kind() {
	case reflect.Ptr:
		b := s.remaining()
		if len(b) == 0 {
			return ErrEOL
		}
		if b[0] == 0x80 {
			s.pos++
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return s.decodeValue(v.Elem())

	case reflect.Bool:
		b, err := s.Bool()
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := s.Uint64()
		if err != nil {
			return err
		}
		v.SetUint(u)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Errorf("%w: signed integers have no RLP representation", ErrUnsupportedType)

	case reflect.String:
		b, err := s.Bytes()
		if err != nil {
			return err
		}
		v.SetString(string(b))
		return nil

	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b, err := s.Bytes()
			if err != nil {
				return err
			}
			v.SetBytes(bytes.Clone(b))
			return nil
		}
		return s.decodeSliceList(v)

	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b, err := s.Bytes()
			if err != nil {
				return err
			}
			if len(b) != v.Len() {
				return ErrLengthMismatch
			}
			for i := 0; i < v.Len(); i++ {
				v.Index(i).SetUint(uint64(b[i]))
			}
			return nil
		}
		return s.decodeArrayList(v)

	case reflect.Struct:
		return s.decodeStruct(v)

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Kind())
	}
}

func addrTextTag(v reflect.Value) (TextTag, bool) {
	if v.CanAddr() && v.Addr().CanInterface() {
		if tag, ok := v.Addr().Interface().(TextTag); ok {
			return tag, true
		}
	}
	if v.CanInterface() {
		if tag, ok := v.Interface().(TextTag); ok {
			return tag, true
		}
	}
	return nil, false
}

func (s *Stream) decodeSliceList(v reflect.Value) error {
	if _, err := s.List(); err != nil {
		return err
	}
	elemType := v.Type().Elem()
	out := reflect.MakeSlice(v.Type(), 0, 0)
	for !s.AtListEnd() {
		elem := reflect.New(elemType).Elem()
		if err := s.decodeValue(elem); err != nil {
			return err
		}
		out = reflect.Append(out, elem)
	}
	if err := s.ListEnd(); err != nil {
		return err
	}
	v.Set(out)
	return nil
}

func (s *Stream) decodeArrayList(v reflect.Value) error {
	if _, err := s.List(); err != nil {
		return err
	}
	i := 0
	for !s.AtListEnd() {
		if i >= v.Len() {
			return ErrLengthMismatch
		}
		if err := s.decodeValue(v.Index(i)); err != nil {
			return err
		}
		i++
	}
	if i != v.Len() {
		return ErrLengthMismatch
	}
	return s.ListEnd()
}

func (s *Stream) decodeStruct(v reflect.Value) error {
	if _, err := s.List(); err != nil {
		return err
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		if err := s.decodeValue(v.Field(i)); err != nil {
			return err
		}
	}
	// Items left in the list after the last field are skipped.
	s.pos = s.limit()
	return s.ListEnd()
}

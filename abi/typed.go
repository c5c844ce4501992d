package abi

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"
)

// DecodeStruct decodes data into target, a pointer to a Go struct, the
// way spec.md §4.2/§4.6 describe typed decoding into a structured type:
// each exported field of target is matched to the Parameter in params
// whose Name matches it case-insensitively, and a field with no matching
// descriptor fails with ErrUnknownField. A descriptor without components
// on a non-tuple tag is acceptable — it simply has nothing further to
// recurse into.
func DecodeStruct(params []Parameter, data []byte, target interface{}, opts Options) error {
	values, err := Decode(params, data, opts)
	if err != nil {
		return err
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: decode target must be a non-nil pointer to struct", ErrInvalidAbiParameter)
	}
	return assignFields(rv.Elem(), params, values)
}

func assignFields(sv reflect.Value, params []Parameter, values []Value) error {
	byName := make(map[string]Value, len(values))
	for i, v := range values {
		if i < len(params) {
			byName[strings.ToLower(params[i].Name)] = v
		}
	}
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		v, ok := byName[strings.ToLower(field.Name)]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field.Name)
		}
		if err := assignValue(sv.Field(i), v); err != nil {
			return err
		}
	}
	return nil
}

func assignValue(dst reflect.Value, v Value) error {
	switch v.Param.Kind {
	case KindBool:
		if dst.Kind() != reflect.Bool {
			return fmt.Errorf("%w: cannot assign bool into %s", ErrInvalidAbiParameter, dst.Type())
		}
		dst.SetBool(v.Bool)

	case KindAddress:
		switch {
		case dst.Type() == reflect.TypeOf(v.Addr):
			dst.Set(reflect.ValueOf(v.Addr))
		case dst.Kind() == reflect.Slice && dst.Type().Elem().Kind() == reflect.Uint8:
			dst.SetBytes(append([]byte(nil), v.Addr[:]...))
		default:
			return fmt.Errorf("%w: cannot assign address into %s", ErrInvalidAbiParameter, dst.Type())
		}

	case KindUint, KindInt:
		switch {
		case dst.Type() == reflect.TypeOf(&big.Int{}):
			dst.Set(reflect.ValueOf(v.Int))
		case dst.Kind() >= reflect.Int && dst.Kind() <= reflect.Int64:
			dst.SetInt(v.Int.Int64())
		case dst.Kind() >= reflect.Uint && dst.Kind() <= reflect.Uint64:
			dst.SetUint(v.Int.Uint64())
		default:
			return fmt.Errorf("%w: cannot assign %s into %s", ErrInvalidAbiParameter, v.Param.CanonicalType(), dst.Type())
		}

	case KindFixedBytes:
		if dst.Kind() == reflect.Array && dst.Type().Elem().Kind() == reflect.Uint8 {
			reflect.Copy(dst, reflect.ValueOf(v.Fixed))
		} else if dst.Kind() == reflect.Slice && dst.Type().Elem().Kind() == reflect.Uint8 {
			dst.SetBytes(append([]byte(nil), v.Fixed...))
		} else {
			return fmt.Errorf("%w: cannot assign fixedBytes into %s", ErrInvalidAbiParameter, dst.Type())
		}

	case KindBytes:
		if dst.Kind() != reflect.Slice || dst.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("%w: cannot assign bytes into %s", ErrInvalidAbiParameter, dst.Type())
		}
		dst.SetBytes(append([]byte(nil), v.Dynamic...))

	case KindString:
		if dst.Kind() != reflect.String {
			return fmt.Errorf("%w: cannot assign string into %s", ErrInvalidAbiParameter, dst.Type())
		}
		dst.SetString(v.Str)

	case KindFixedArray, KindDynamicArray:
		if dst.Kind() != reflect.Slice && dst.Kind() != reflect.Array {
			return fmt.Errorf("%w: cannot assign array into %s", ErrInvalidAbiParameter, dst.Type())
		}
		if dst.Kind() == reflect.Slice {
			dst.Set(reflect.MakeSlice(dst.Type(), len(v.Array), len(v.Array)))
		} else if dst.Len() != len(v.Array) {
			return fmt.Errorf("%w: array length %d, want %d", ErrInvalidArraySize, dst.Len(), len(v.Array))
		}
		for i, elem := range v.Array {
			if err := assignValue(dst.Index(i), elem); err != nil {
				return err
			}
		}

	case KindTuple:
		if dst.Kind() != reflect.Struct {
			return fmt.Errorf("%w: cannot assign tuple into %s", ErrInvalidAbiParameter, dst.Type())
		}
		return assignFields(dst, v.Param.Components, v.Tuple)

	default:
		return fmt.Errorf("%w: unhandled kind %s", ErrInvalidAbiParameter, v.Param.Kind)
	}
	return nil
}

package abi

import "github.com/ethcodec/ethcodec/crypto"

// Selector computes the 4-byte function/error selector: the first 4 bytes
// of the keccak-256 hash of the canonical signature "name(type1,type2,...)".
func Selector(name string, params []Parameter) [4]byte {
	sig := CanonicalSignature(name, params)
	hash := crypto.Keccak256([]byte(sig))
	var sel [4]byte
	copy(sel[:], hash[:4])
	return sel
}

// DecodeFunction strips the 4-byte function selector from data, verifies
// it matches name/params, and decodes the remaining call-data arguments.
func DecodeFunction(name string, params []Parameter, data []byte, opts Options) ([]Value, error) {
	return decodeWithSelector(name, params, data, opts)
}

// DecodeFunctionOutputs strips and verifies a 4-byte selector the same
// way DecodeFunction does, then decodes the trailing bytes as the
// function's return values.
func DecodeFunctionOutputs(name string, params []Parameter, data []byte, opts Options) ([]Value, error) {
	return decodeWithSelector(name, params, data, opts)
}

// DecodeError strips and verifies a 4-byte error selector, then decodes
// the trailing bytes as the custom error's arguments.
func DecodeError(name string, params []Parameter, data []byte, opts Options) ([]Value, error) {
	return decodeWithSelector(name, params, data, opts)
}

// DecodeConstructor decodes constructor arguments, which carry no leading
// selector.
func DecodeConstructor(params []Parameter, data []byte, opts Options) ([]Value, error) {
	return Decode(params, data, opts)
}

func decodeWithSelector(name string, params []Parameter, data []byte, opts Options) ([]Value, error) {
	if len(data) < 4 {
		return nil, ErrInvalidAbiSignature
	}
	want := Selector(name, params)
	var got [4]byte
	copy(got[:], data[:4])
	if got != want {
		return nil, ErrInvalidAbiSignature
	}
	return Decode(params, data[4:], opts)
}

package abi

import "errors"

// Errors returned by the ABI codec (C5/C6) and the log-topic codec (C7).
var (
	ErrInvalidAbiParameter   = errors.New("abi: descriptor mismatch")
	ErrInvalidAbiSignature   = errors.New("abi: selector mismatch")
	ErrInvalidDecodeDataSize = errors.New("abi: data length is not a non-zero multiple of 32")
	ErrBufferOverrun         = errors.New("abi: max_bytes budget exceeded")
	ErrJunkData              = errors.New("abi: trailing bytes after top-level value")
	ErrInvalidBits           = errors.New("abi: invalid integer bit width")
	ErrInvalidSignedness     = errors.New("abi: invalid signedness for type")
	ErrInvalidArraySize      = errors.New("abi: invalid array size")
	ErrInvalidLength         = errors.New("abi: invalid length")
	ErrUnknownField          = errors.New("abi: unmatched struct field")
)

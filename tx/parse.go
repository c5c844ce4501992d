// Package tx is the host-facing façade over core/types: parsing a wire
// transaction envelope, separating its signature from its unsigned body,
// and re-serializing the two back together.
package tx

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethcodec/ethcodec/bytesutil"
	"github.com/ethcodec/ethcodec/core/types"
	"github.com/ethcodec/ethcodec/crypto"
	"github.com/holiman/uint256"
)

// Errors specific to the parse/serialize façade, distinct from the
// decode-level errors core/types itself raises.
var (
	// ErrExpectedUnsigned is returned by Parse when the wire envelope
	// already carries a non-zero signature.
	ErrExpectedUnsigned = errors.New("tx: expected an unsigned transaction")

	// ErrExpectedSigned is returned by ParseSigned when the wire envelope
	// carries no signature.
	ErrExpectedSigned = errors.New("tx: expected a signed transaction")

	// ErrUnsupportedEnvelope is returned when Serialize is asked to attach
	// a signature to an envelope type it doesn't recognize.
	ErrUnsupportedEnvelope = errors.New("tx: unsupported transaction envelope")
)

// Signature is the (v, r, s) product an external signer hands back to this
// façade. For a legacy transaction V is the full wire-encoded recovery
// value (27/28 or the EIP-155 chainId*2+35+yParity form); for every typed
// envelope V is the raw 0/1 yParity bit.
//
// RecoveryID and ChainID are populated by ParseSigned for a legacy
// transaction only, decoded out of V via crypto.NormalizeV; they are the
// zero value for every typed envelope, whose V is already the raw yParity
// bit and whose chain id lives on the transaction body itself
// (Transaction.ChainId()), not on the signature.
type Signature struct {
	V uint64
	R *uint256.Int
	S *uint256.Int

	RecoveryID byte
	ChainID    uint64
}

// NewLegacySignature builds a Signature for a legacy envelope out of the
// raw (recoveryID, r, s) product an external signer hands back
// (crypto.Signature, spec.md §6.5), encoding the wire V via
// crypto.EncodeVLegacy when chainID is nil (the pre-EIP-155 unprotected
// form) or crypto.EncodeVEIP155 when chainID is non-nil.
func NewLegacySignature(sig crypto.Signature, chainID *uint64) *Signature {
	var v uint64
	if chainID == nil {
		v = uint64(crypto.EncodeVLegacy(sig.V))
	} else {
		v = crypto.EncodeVEIP155(sig.V, new(big.Int).SetUint64(*chainID)).Uint64()
	}
	return &Signature{V: v, R: sig.R, S: sig.S}
}

func (s *Signature) isZero() bool {
	return s == nil || (s.R == nil && s.S == nil)
}

// Parse decodes a wire transaction envelope, verifying it carries no
// signature. It returns the unsigned body on success.
func Parse(data []byte) (*types.Transaction, error) {
	t, err := types.DecodeTxRLP(data)
	if err != nil {
		return nil, err
	}
	if _, r, s := t.RawSignatureValues(); r != nil || s != nil {
		return nil, ErrExpectedUnsigned
	}
	return t, nil
}

// ParseHex is Parse for a caller that has an optionally "0x"-prefixed hex
// string instead of raw bytes, the convenience form spec.md §4.10 names
// alongside the byte-slice entry point.
func ParseHex(s string) (*types.Transaction, error) {
	data, err := bytesutil.HexToBytesAlloc(s)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ParseSigned decodes a wire transaction envelope, verifying it carries a
// signature, and returns both the transaction and the signature split out
// of it. For a legacy transaction, the chain id recovered from V is
// available afterward via tx.ChainId().
func ParseSigned(data []byte) (*types.Transaction, *Signature, error) {
	t, err := types.DecodeTxRLP(data)
	if err != nil {
		return nil, nil, err
	}
	v, r, s := t.RawSignatureValues()
	if r == nil || s == nil {
		return nil, nil, ErrExpectedSigned
	}
	sig := &Signature{V: v, R: r, S: s}
	if _, ok := t.Inner().(*types.LegacyTx); ok {
		recoveryID, chainID, err := crypto.NormalizeV(new(big.Int).SetUint64(v))
		if err != nil {
			return nil, nil, err
		}
		sig.RecoveryID = recoveryID
		sig.ChainID = chainID.Uint64()
	}
	return t, sig, nil
}

// ParseSignedHex is ParseSigned for a caller that has an optionally
// "0x"-prefixed hex string instead of raw bytes.
func ParseSignedHex(s string) (*types.Transaction, *Signature, error) {
	data, err := bytesutil.HexToBytesAlloc(s)
	if err != nil {
		return nil, nil, err
	}
	return ParseSigned(data)
}

// Serialize encodes tx as a wire envelope. If sig is nil, the envelope is
// serialized unsigned (v/r/s all zero or absent, per the envelope's own
// wire convention). Otherwise sig's v/r/s are attached before encoding.
func Serialize(t *types.Transaction, sig *Signature) ([]byte, error) {
	signed := t
	if !sig.isZero() {
		inner, err := attachSignature(t.Inner(), sig)
		if err != nil {
			return nil, err
		}
		signed = types.NewTransaction(inner)
	}
	return signed.EncodeRLP()
}

func attachSignature(inner types.TxData, sig *Signature) (types.TxData, error) {
	switch body := inner.(type) {
	case *types.LegacyTx:
		cpy := *body
		cpy.V, cpy.R, cpy.S = sig.V, sig.R, sig.S
		return &cpy, nil
	case *types.AccessListTx:
		cpy := *body
		cpy.YParity, cpy.R, cpy.S = uint8(sig.V), sig.R, sig.S
		return &cpy, nil
	case *types.DynamicFeeTx:
		cpy := *body
		cpy.YParity, cpy.R, cpy.S = uint8(sig.V), sig.R, sig.S
		return &cpy, nil
	case *types.BlobTx:
		cpy := *body
		cpy.YParity, cpy.R, cpy.S = uint8(sig.V), sig.R, sig.S
		return &cpy, nil
	case *types.SetCodeTx:
		cpy := *body
		cpy.YParity, cpy.R, cpy.S = uint8(sig.V), sig.R, sig.S
		return &cpy, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedEnvelope, inner)
	}
}

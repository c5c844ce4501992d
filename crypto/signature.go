package crypto

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
)

// Errors returned while interpreting a signature's V-encoding. Unlike the
// teacher's signature_recovery.go, this package never attempts EC point
// recovery, so there is no ErrSigRecoverFailed-equivalent here: a
// Signature is a value this module consumes from an external signer, not
// one it can produce or verify itself.
var (
	ErrInvalidRecoveryID = errors.New("crypto: invalid recovery id")
)

// Signature is the (v, r, s) product an external signer hands back to this
// module (spec.md §6.5); it is opaque beyond the V-encoding rules below.
// R and S are *uint256.Int, matching this module's domain-stack convention
// for every other 256-bit field (core/types' Value/R/S, abi.Value).
type Signature struct {
	V byte
	R *uint256.Int
	S *uint256.Int
}

// NormalizeV reduces a wire-encoded V value to its raw recovery id (0 or
// 1) plus, for EIP-155-encoded legacy values, the chain id it carried.
// Accepts raw recovery ids (0/1), pre-EIP-155 legacy ids (27/28), and
// EIP-155 ids (35+2*chainId+recoveryBit).
func NormalizeV(v *big.Int) (recoveryID byte, chainID *big.Int, err error) {
	if v == nil || !v.IsUint64() {
		return 0, nil, ErrInvalidRecoveryID
	}
	u := v.Uint64()

	switch {
	case u == 0 || u == 1:
		return byte(u), new(big.Int), nil
	case u == 27 || u == 28:
		return byte(u - 27), new(big.Int), nil
	case u >= 35:
		offset := new(big.Int).Sub(v, big.NewInt(35))
		bit := new(big.Int).And(offset, big.NewInt(1)).Uint64()
		chainID = new(big.Int).Rsh(offset, 1)
		return byte(bit), chainID, nil
	default:
		return 0, nil, ErrInvalidRecoveryID
	}
}

// EncodeVLegacy encodes a raw recovery id as a pre-EIP-155 legacy V value
// (27 or 28).
func EncodeVLegacy(recoveryID byte) byte {
	return recoveryID + 27
}

// EncodeVEIP155 encodes a raw recovery id as an EIP-155 V value for the
// given chain id: v = chainId*2 + 35 + recoveryID.
func EncodeVEIP155(recoveryID byte, chainID *big.Int) *big.Int {
	v := new(big.Int).Mul(chainID, big.NewInt(2))
	v.Add(v, big.NewInt(35))
	v.Add(v, new(big.Int).SetUint64(uint64(recoveryID)))
	return v
}

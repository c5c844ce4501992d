package types

import (
	"math/big"
	"sync/atomic"

	"github.com/ethcodec/ethcodec/crypto"
	"github.com/holiman/uint256"
)

// Transaction type tags, per the wire dispatch in transaction_rlp.go.
const (
	LegacyTxType     = 0x00
	AccessListTxType = 0x01
	DynamicFeeTxType = 0x02
	BlobTxType       = 0x03
	SetCodeTxType    = 0x04
	DepositTxType    = 0x7e
)

// Transaction wraps one of the per-hardfork envelope shapes below behind a
// single handle, caching its hash and cached sender the way a node that
// sees the same transaction many times wants to.
type Transaction struct {
	inner TxData
	hash  atomic.Pointer[Hash]
	from  atomic.Pointer[Address]
}

// TxData is the underlying per-hardfork transaction body. Every concrete
// envelope type below implements it.
type TxData interface {
	txType() byte
	chainID() uint64
	accessList() AccessList
	data() []byte
	gas() uint64
	gasPrice() uint64
	gasTipCap() uint64
	gasFeeCap() uint64
	value() *uint256.Int
	nonce() uint64
	to() *Address
	copy() TxData
}

// NewTransaction wraps inner, copying it so later mutation of the caller's
// value can't leak into the wrapped transaction.
func NewTransaction(inner TxData) *Transaction {
	return &Transaction{inner: inner.copy()}
}

func (tx *Transaction) Type() uint8           { return tx.inner.txType() }
func (tx *Transaction) ChainId() uint64       { return tx.inner.chainID() }
func (tx *Transaction) AccessList() AccessList { return tx.inner.accessList() }
func (tx *Transaction) Data() []byte          { return tx.inner.data() }
func (tx *Transaction) Gas() uint64           { return tx.inner.gas() }
func (tx *Transaction) GasPrice() uint64      { return tx.inner.gasPrice() }
func (tx *Transaction) GasTipCap() uint64     { return tx.inner.gasTipCap() }
func (tx *Transaction) GasFeeCap() uint64     { return tx.inner.gasFeeCap() }
func (tx *Transaction) Value() *uint256.Int   { return tx.inner.value() }
func (tx *Transaction) Nonce() uint64         { return tx.inner.nonce() }
func (tx *Transaction) To() *Address          { return tx.inner.to() }

// Inner exposes the concrete per-hardfork body for callers that need
// type-specific fields (blob hashes, authorization lists, raw signature).
func (tx *Transaction) Inner() TxData { return tx.inner }

func (tx *Transaction) SetSender(addr Address) {
	a := addr
	tx.from.Store(&a)
}

func (tx *Transaction) Sender() *Address { return tx.from.Load() }

// AuthorizationList returns the EIP-7702 authorization list, or nil for
// every other envelope type.
func (tx *Transaction) AuthorizationList() []Authorization {
	if sc, ok := tx.inner.(*SetCodeTx); ok {
		return sc.AuthorizationList
	}
	return nil
}

// BlobHashes returns the versioned blob hashes of a Cancun blob
// transaction, or nil for every other envelope type.
func (tx *Transaction) BlobHashes() []Hash {
	if b, ok := tx.inner.(*BlobTx); ok {
		return b.BlobHashes
	}
	return nil
}

// MaxFeePerBlobGas returns a Cancun blob transaction's blob gas fee cap,
// or zero for every other envelope type.
func (tx *Transaction) MaxFeePerBlobGas() uint64 {
	if b, ok := tx.inner.(*BlobTx); ok {
		return b.BlobFeeCap
	}
	return 0
}

// RawSignatureValues returns the (v, r, s) carried by the wrapped
// envelope. r and s are nil for an unsigned transaction.
func (tx *Transaction) RawSignatureValues() (v uint64, r, s *uint256.Int) {
	switch t := tx.inner.(type) {
	case *LegacyTx:
		return t.V, t.R, t.S
	case *AccessListTx:
		return uint64(t.YParity), t.R, t.S
	case *DynamicFeeTx:
		return uint64(t.YParity), t.R, t.S
	case *BlobTx:
		return uint64(t.YParity), t.R, t.S
	case *SetCodeTx:
		return uint64(t.YParity), t.R, t.S
	default:
		return 0, nil, nil
	}
}

// Hash returns the Keccak-256 hash of the transaction's RLP envelope
// encoding, cached on first call.
func (tx *Transaction) Hash() Hash {
	if h := tx.hash.Load(); h != nil {
		return *h
	}
	h := tx.hashRLP()
	tx.hash.Store(&h)
	return h
}

func copyAddressPtr(a *Address) *Address {
	if a == nil {
		return nil
	}
	cpy := *a
	return &cpy
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	cpy := make([]byte, len(b))
	copy(cpy, b)
	return cpy
}

func copyUint256(v *uint256.Int) *uint256.Int {
	if v == nil {
		return nil
	}
	return new(uint256.Int).Set(v)
}

func valueOrZero(v *uint256.Int) *uint256.Int {
	if v != nil {
		return v
	}
	return new(uint256.Int)
}

// deriveChainID recovers a legacy transaction's chain id from its wire V
// value. The unprotected legacy-signed form (r and s absent, v itself the
// chain id) is handled directly; everything else is the V-encoding
// arithmetic crypto.NormalizeV already implements (pre-EIP-155 27/28, and
// EIP-155 chainId*2+35+yParity for either recovery parity).
func deriveChainID(v uint64, r, s *uint256.Int) (uint64, error) {
	if r == nil && s == nil && v > 0 {
		return v, nil
	}
	_, chainID, err := crypto.NormalizeV(new(big.Int).SetUint64(v))
	if err != nil {
		return 0, ErrInvalidRecoveryId
	}
	return chainID.Uint64(), nil
}

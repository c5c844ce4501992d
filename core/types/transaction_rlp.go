package types

import (
	"fmt"

	"github.com/ethcodec/ethcodec/crypto"
	"github.com/ethcodec/ethcodec/rlp"
	"github.com/holiman/uint256"
)

// ---- RLP helper structs (field order matches the consensus wire format) ----

// legacyTxRLP is the bare-list encoding of LegacyTx:
// [nonce, gasPrice, gasLimit, to, value, data, v, r, s]
type legacyTxRLP struct {
	Nonce    uint64
	GasPrice uint64
	Gas      uint64
	To       []byte
	Value    *uint256.Int
	Data     []byte
	V        uint64
	R        *uint256.Int
	S        *uint256.Int
}

// accessListTxRLP is the payload of a type-0x01 envelope:
// [chainId, nonce, gasPrice, gasLimit, to, value, data, accessList, yParity, r, s]
type accessListTxRLP struct {
	ChainID    uint64
	Nonce      uint64
	GasPrice   uint64
	Gas        uint64
	To         []byte
	Value      *uint256.Int
	Data       []byte
	AccessList AccessList
	YParity    uint8
	R          *uint256.Int
	S          *uint256.Int
}

// dynamicFeeTxRLP is the payload of a type-0x02 envelope:
// [chainId, nonce, maxPriorityFeePerGas, maxFeePerGas, gasLimit, to, value,
//  data, accessList, yParity, r, s]
type dynamicFeeTxRLP struct {
	ChainID    uint64
	Nonce      uint64
	GasTipCap  uint64
	GasFeeCap  uint64
	Gas        uint64
	To         []byte
	Value      *uint256.Int
	Data       []byte
	AccessList AccessList
	YParity    uint8
	R          *uint256.Int
	S          *uint256.Int
}

// blobTxRLP is the payload of a type-0x03 envelope:
// [chainId, nonce, maxPriorityFeePerGas, maxFeePerGas, gasLimit, to, value,
//  data, accessList, maxFeePerBlobGas, blobVersionedHashes, yParity, r, s]
type blobTxRLP struct {
	ChainID    uint64
	Nonce      uint64
	GasTipCap  uint64
	GasFeeCap  uint64
	Gas        uint64
	To         Address
	Value      *uint256.Int
	Data       []byte
	AccessList AccessList
	BlobFeeCap uint64
	BlobHashes []Hash
	YParity    uint8
	R          *uint256.Int
	S          *uint256.Int
}

// setCodeTxRLP is the payload of a type-0x04 envelope:
// [chainId, nonce, maxPriorityFeePerGas, maxFeePerGas, gasLimit, to, value,
//  data, accessList, authorizationList, yParity, r, s]
type setCodeTxRLP struct {
	ChainID    uint64
	Nonce      uint64
	GasTipCap  uint64
	GasFeeCap  uint64
	Gas        uint64
	To         Address
	Value      *uint256.Int
	Data       []byte
	AccessList AccessList
	AuthList   []Authorization
	YParity    uint8
	R          *uint256.Int
	S          *uint256.Int
}

// ---- Encoding ----

// EncodeRLP returns the wire envelope encoding: a bare RLP list for
// legacy, or type_byte || rlp(list) for every typed envelope.
func (tx *Transaction) EncodeRLP() ([]byte, error) {
	switch inner := tx.inner.(type) {
	case *LegacyTx:
		return encodeLegacyTx(inner)
	case *AccessListTx:
		return encodeTypedTx(AccessListTxType, inner)
	case *DynamicFeeTx:
		return encodeTypedTx(DynamicFeeTxType, inner)
	case *BlobTx:
		return encodeTypedTx(BlobTxType, inner)
	case *SetCodeTx:
		return encodeTypedTx(SetCodeTxType, inner)
	default:
		return nil, ErrInvalidTransactionType
	}
}

func encodeLegacyTx(tx *LegacyTx) ([]byte, error) {
	enc := legacyTxRLP{
		Nonce:    tx.Nonce,
		GasPrice: tx.GasPrice,
		Gas:      tx.Gas,
		To:       addressPtrToBytes(tx.To),
		Value:    valueOrZero(tx.Value),
		Data:     tx.Data,
		V:        tx.V,
		R:        valueOrZero(tx.R),
		S:        valueOrZero(tx.S),
	}
	return rlp.EncodeToBytes(enc)
}

func encodeTypedTx(txType byte, inner TxData) ([]byte, error) {
	var payload []byte
	var err error

	switch tx := inner.(type) {
	case *AccessListTx:
		payload, err = rlp.EncodeToBytes(accessListTxRLP{
			ChainID:    tx.ChainID,
			Nonce:      tx.Nonce,
			GasPrice:   tx.GasPrice,
			Gas:        tx.Gas,
			To:         addressPtrToBytes(tx.To),
			Value:      valueOrZero(tx.Value),
			Data:       tx.Data,
			AccessList: tx.AccessList,
			YParity:    tx.YParity,
			R:          valueOrZero(tx.R),
			S:          valueOrZero(tx.S),
		})
	case *DynamicFeeTx:
		payload, err = rlp.EncodeToBytes(dynamicFeeTxRLP{
			ChainID:    tx.ChainID,
			Nonce:      tx.Nonce,
			GasTipCap:  tx.GasTipCap,
			GasFeeCap:  tx.GasFeeCap,
			Gas:        tx.Gas,
			To:         addressPtrToBytes(tx.To),
			Value:      valueOrZero(tx.Value),
			Data:       tx.Data,
			AccessList: tx.AccessList,
			YParity:    tx.YParity,
			R:          valueOrZero(tx.R),
			S:          valueOrZero(tx.S),
		})
	case *BlobTx:
		payload, err = rlp.EncodeToBytes(blobTxRLP{
			ChainID:    tx.ChainID,
			Nonce:      tx.Nonce,
			GasTipCap:  tx.GasTipCap,
			GasFeeCap:  tx.GasFeeCap,
			Gas:        tx.Gas,
			To:         tx.To,
			Value:      valueOrZero(tx.Value),
			Data:       tx.Data,
			AccessList: tx.AccessList,
			BlobFeeCap: tx.BlobFeeCap,
			BlobHashes: tx.BlobHashes,
			YParity:    tx.YParity,
			R:          valueOrZero(tx.R),
			S:          valueOrZero(tx.S),
		})
	case *SetCodeTx:
		payload, err = rlp.EncodeToBytes(setCodeTxRLP{
			ChainID:    tx.ChainID,
			Nonce:      tx.Nonce,
			GasTipCap:  tx.GasTipCap,
			GasFeeCap:  tx.GasFeeCap,
			Gas:        tx.Gas,
			To:         tx.To,
			Value:      valueOrZero(tx.Value),
			Data:       tx.Data,
			AccessList: tx.AccessList,
			AuthList:   tx.AuthorizationList,
			YParity:    tx.YParity,
			R:          valueOrZero(tx.R),
			S:          valueOrZero(tx.S),
		})
	default:
		return nil, ErrInvalidTransactionType
	}
	if err != nil {
		return nil, err
	}

	out := make([]byte, 1+len(payload))
	out[0] = txType
	copy(out[1:], payload)
	return out, nil
}

// ---- Decoding ----

// DecodeTxRLP dispatches on the leading type byte exactly as the state
// machine of §4.9 describes: 0x04/0x03/0x02/0x01 are typed envelopes,
// 0x7e is the named-but-rejected deposit type, a leading byte >= 0xc0 is
// a bare legacy RLP list, and anything else is invalid.
func DecodeTxRLP(data []byte) (*Transaction, error) {
	if len(data) == 0 {
		return nil, ErrInvalidTransactionType
	}
	switch b0 := data[0]; {
	case b0 == SetCodeTxType:
		return decodeTypedTx(SetCodeTxType, data[1:])
	case b0 == BlobTxType:
		return decodeTypedTx(BlobTxType, data[1:])
	case b0 == DynamicFeeTxType:
		return decodeTypedTx(DynamicFeeTxType, data[1:])
	case b0 == AccessListTxType:
		return decodeTypedTx(AccessListTxType, data[1:])
	case b0 == DepositTxType:
		return nil, ErrDepositTransaction
	case b0 >= 0xc0:
		return decodeLegacyTx(data)
	default:
		return nil, ErrInvalidTransactionType
	}
}

func decodeTypedTx(txType byte, payload []byte) (*Transaction, error) {
	if len(payload) == 0 {
		return nil, ErrShortTypedTransaction
	}
	switch txType {
	case AccessListTxType:
		var dec accessListTxRLP
		if err := rlp.DecodeBytes(payload, &dec); err != nil {
			return nil, fmt.Errorf("decode access list tx: %w", err)
		}
		return NewTransaction(&AccessListTx{
			ChainID:    dec.ChainID,
			Nonce:      dec.Nonce,
			GasPrice:   dec.GasPrice,
			Gas:        dec.Gas,
			To:         bytesToAddressPtr(dec.To),
			Value:      dec.Value,
			Data:       dec.Data,
			AccessList: dec.AccessList,
			YParity:    dec.YParity,
			R:          nilIfZeroUint256(dec.R),
			S:          nilIfZeroUint256(dec.S),
		}), nil

	case DynamicFeeTxType:
		var dec dynamicFeeTxRLP
		if err := rlp.DecodeBytes(payload, &dec); err != nil {
			return nil, fmt.Errorf("decode dynamic fee tx: %w", err)
		}
		return NewTransaction(&DynamicFeeTx{
			ChainID:    dec.ChainID,
			Nonce:      dec.Nonce,
			GasTipCap:  dec.GasTipCap,
			GasFeeCap:  dec.GasFeeCap,
			Gas:        dec.Gas,
			To:         bytesToAddressPtr(dec.To),
			Value:      dec.Value,
			Data:       dec.Data,
			AccessList: dec.AccessList,
			YParity:    dec.YParity,
			R:          nilIfZeroUint256(dec.R),
			S:          nilIfZeroUint256(dec.S),
		}), nil

	case BlobTxType:
		var dec blobTxRLP
		if err := rlp.DecodeBytes(payload, &dec); err != nil {
			return nil, fmt.Errorf("decode blob tx: %w", err)
		}
		return NewTransaction(&BlobTx{
			ChainID:    dec.ChainID,
			Nonce:      dec.Nonce,
			GasTipCap:  dec.GasTipCap,
			GasFeeCap:  dec.GasFeeCap,
			Gas:        dec.Gas,
			To:         dec.To,
			Value:      dec.Value,
			Data:       dec.Data,
			AccessList: dec.AccessList,
			BlobFeeCap: dec.BlobFeeCap,
			BlobHashes: dec.BlobHashes,
			YParity:    dec.YParity,
			R:          nilIfZeroUint256(dec.R),
			S:          nilIfZeroUint256(dec.S),
		}), nil

	case SetCodeTxType:
		var dec setCodeTxRLP
		if err := rlp.DecodeBytes(payload, &dec); err != nil {
			return nil, fmt.Errorf("decode set code tx: %w", err)
		}
		return NewTransaction(&SetCodeTx{
			ChainID:           dec.ChainID,
			Nonce:             dec.Nonce,
			GasTipCap:         dec.GasTipCap,
			GasFeeCap:         dec.GasFeeCap,
			Gas:               dec.Gas,
			To:                dec.To,
			Value:             dec.Value,
			Data:              dec.Data,
			AccessList:        dec.AccessList,
			AuthorizationList: dec.AuthList,
			YParity:           dec.YParity,
			R:                 nilIfZeroUint256(dec.R),
			S:                 nilIfZeroUint256(dec.S),
		}), nil

	default:
		return nil, ErrInvalidTransactionType
	}
}

func decodeLegacyTx(data []byte) (*Transaction, error) {
	var dec legacyTxRLP
	if err := rlp.DecodeBytes(data, &dec); err != nil {
		return nil, fmt.Errorf("decode legacy tx: %w", err)
	}
	return NewTransaction(&LegacyTx{
		Nonce:    dec.Nonce,
		GasPrice: dec.GasPrice,
		Gas:      dec.Gas,
		To:       bytesToAddressPtr(dec.To),
		Value:    dec.Value,
		Data:     dec.Data,
		V:        dec.V,
		R:        nilIfZeroUint256(dec.R),
		S:        nilIfZeroUint256(dec.S),
	}), nil
}

// nilIfZeroUint256 restores the "absent" meaning of a legacy tx's R/S: an
// unsigned legacy transaction's v/r/s all round-trip through RLP as the
// integer zero, since RLP has no separate encoding for "missing".
func nilIfZeroUint256(v *uint256.Int) *uint256.Int {
	if v == nil || v.IsZero() {
		return nil
	}
	return v
}

func addressPtrToBytes(a *Address) []byte {
	if a == nil {
		return nil
	}
	return a[:]
}

func bytesToAddressPtr(b []byte) *Address {
	if len(b) == 0 {
		return nil
	}
	a := BytesToAddress(b)
	return &a
}

// hashRLP computes Keccak-256 of the transaction's RLP envelope encoding.
func (tx *Transaction) hashRLP() Hash {
	enc, err := tx.EncodeRLP()
	if err != nil {
		return Hash{}
	}
	sum := crypto.Keccak256(enc)
	return Hash(sum)
}

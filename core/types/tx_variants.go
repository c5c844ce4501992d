package types

import "github.com/holiman/uint256"

// LegacyTx is the pre-EIP-2718 (type 0x00, bare RLP list) envelope. V
// carries the full wire-encoded recovery value (27/28 pre-EIP-155,
// chainId*2+35+yParity post-EIP-155); R and S are nil for an unsigned
// transaction.
type LegacyTx struct {
	Nonce    uint64
	GasPrice uint64
	Gas      uint64
	To       *Address
	Value    *uint256.Int
	Data     []byte
	V        uint64
	R, S     *uint256.Int
}

func (tx *LegacyTx) txType() byte            { return LegacyTxType }
func (tx *LegacyTx) chainID() uint64         { id, _ := deriveChainID(tx.V, tx.R, tx.S); return id }
func (tx *LegacyTx) accessList() AccessList  { return nil }
func (tx *LegacyTx) data() []byte            { return tx.Data }
func (tx *LegacyTx) gas() uint64             { return tx.Gas }
func (tx *LegacyTx) gasPrice() uint64        { return tx.GasPrice }
func (tx *LegacyTx) gasTipCap() uint64       { return tx.GasPrice }
func (tx *LegacyTx) gasFeeCap() uint64       { return tx.GasPrice }
func (tx *LegacyTx) value() *uint256.Int     { return tx.Value }
func (tx *LegacyTx) nonce() uint64           { return tx.Nonce }
func (tx *LegacyTx) to() *Address            { return tx.To }
func (tx *LegacyTx) copy() TxData {
	return &LegacyTx{
		Nonce:    tx.Nonce,
		GasPrice: tx.GasPrice,
		Gas:      tx.Gas,
		To:       copyAddressPtr(tx.To),
		Value:    copyUint256(tx.Value),
		Data:     copyBytes(tx.Data),
		V:        tx.V,
		R:        copyUint256(tx.R),
		S:        copyUint256(tx.S),
	}
}

// AccessListTx is the EIP-2930 (type 0x01) envelope.
type AccessListTx struct {
	ChainID    uint64
	Nonce      uint64
	GasPrice   uint64
	Gas        uint64
	To         *Address
	Value      *uint256.Int
	Data       []byte
	AccessList AccessList
	YParity    uint8
	R, S       *uint256.Int
}

func (tx *AccessListTx) txType() byte            { return AccessListTxType }
func (tx *AccessListTx) chainID() uint64         { return tx.ChainID }
func (tx *AccessListTx) accessList() AccessList  { return tx.AccessList }
func (tx *AccessListTx) data() []byte            { return tx.Data }
func (tx *AccessListTx) gas() uint64             { return tx.Gas }
func (tx *AccessListTx) gasPrice() uint64        { return tx.GasPrice }
func (tx *AccessListTx) gasTipCap() uint64       { return tx.GasPrice }
func (tx *AccessListTx) gasFeeCap() uint64       { return tx.GasPrice }
func (tx *AccessListTx) value() *uint256.Int     { return tx.Value }
func (tx *AccessListTx) nonce() uint64           { return tx.Nonce }
func (tx *AccessListTx) to() *Address            { return tx.To }
func (tx *AccessListTx) copy() TxData {
	return &AccessListTx{
		ChainID:    tx.ChainID,
		Nonce:      tx.Nonce,
		GasPrice:   tx.GasPrice,
		Gas:        tx.Gas,
		To:         copyAddressPtr(tx.To),
		Value:      copyUint256(tx.Value),
		Data:       copyBytes(tx.Data),
		AccessList: copyAccessList(tx.AccessList),
		YParity:    tx.YParity,
		R:          copyUint256(tx.R),
		S:          copyUint256(tx.S),
	}
}

// DynamicFeeTx is the EIP-1559 (type 0x02) envelope.
type DynamicFeeTx struct {
	ChainID    uint64
	Nonce      uint64
	GasTipCap  uint64 // maxPriorityFeePerGas
	GasFeeCap  uint64 // maxFeePerGas
	Gas        uint64
	To         *Address
	Value      *uint256.Int
	Data       []byte
	AccessList AccessList
	YParity    uint8
	R, S       *uint256.Int
}

func (tx *DynamicFeeTx) txType() byte            { return DynamicFeeTxType }
func (tx *DynamicFeeTx) chainID() uint64         { return tx.ChainID }
func (tx *DynamicFeeTx) accessList() AccessList  { return tx.AccessList }
func (tx *DynamicFeeTx) data() []byte            { return tx.Data }
func (tx *DynamicFeeTx) gas() uint64             { return tx.Gas }
func (tx *DynamicFeeTx) gasPrice() uint64        { return tx.GasFeeCap }
func (tx *DynamicFeeTx) gasTipCap() uint64       { return tx.GasTipCap }
func (tx *DynamicFeeTx) gasFeeCap() uint64       { return tx.GasFeeCap }
func (tx *DynamicFeeTx) value() *uint256.Int     { return tx.Value }
func (tx *DynamicFeeTx) nonce() uint64           { return tx.Nonce }
func (tx *DynamicFeeTx) to() *Address            { return tx.To }
func (tx *DynamicFeeTx) copy() TxData {
	return &DynamicFeeTx{
		ChainID:    tx.ChainID,
		Nonce:      tx.Nonce,
		GasTipCap:  tx.GasTipCap,
		GasFeeCap:  tx.GasFeeCap,
		Gas:        tx.Gas,
		To:         copyAddressPtr(tx.To),
		Value:      copyUint256(tx.Value),
		Data:       copyBytes(tx.Data),
		AccessList: copyAccessList(tx.AccessList),
		YParity:    tx.YParity,
		R:          copyUint256(tx.R),
		S:          copyUint256(tx.S),
	}
}

// BlobTx is the EIP-4844 (type 0x03) envelope. To is not optional: a blob
// transaction cannot be a contract-creation transaction.
type BlobTx struct {
	ChainID    uint64
	Nonce      uint64
	GasTipCap  uint64
	GasFeeCap  uint64
	Gas        uint64
	To         Address
	Value      *uint256.Int
	Data       []byte
	AccessList AccessList
	BlobFeeCap uint64 // maxFeePerBlobGas
	BlobHashes []Hash
	YParity    uint8
	R, S       *uint256.Int
}

func (tx *BlobTx) txType() byte           { return BlobTxType }
func (tx *BlobTx) chainID() uint64        { return tx.ChainID }
func (tx *BlobTx) accessList() AccessList { return tx.AccessList }
func (tx *BlobTx) data() []byte           { return tx.Data }
func (tx *BlobTx) gas() uint64            { return tx.Gas }
func (tx *BlobTx) gasPrice() uint64       { return tx.GasFeeCap }
func (tx *BlobTx) gasTipCap() uint64      { return tx.GasTipCap }
func (tx *BlobTx) gasFeeCap() uint64      { return tx.GasFeeCap }
func (tx *BlobTx) value() *uint256.Int    { return tx.Value }
func (tx *BlobTx) nonce() uint64          { return tx.Nonce }
func (tx *BlobTx) to() *Address           { addr := tx.To; return &addr }
func (tx *BlobTx) copy() TxData {
	cpy := &BlobTx{
		ChainID:    tx.ChainID,
		Nonce:      tx.Nonce,
		GasTipCap:  tx.GasTipCap,
		GasFeeCap:  tx.GasFeeCap,
		Gas:        tx.Gas,
		To:         tx.To,
		Value:      copyUint256(tx.Value),
		Data:       copyBytes(tx.Data),
		AccessList: copyAccessList(tx.AccessList),
		BlobFeeCap: tx.BlobFeeCap,
		YParity:    tx.YParity,
		R:          copyUint256(tx.R),
		S:          copyUint256(tx.S),
	}
	if tx.BlobHashes != nil {
		cpy.BlobHashes = make([]Hash, len(tx.BlobHashes))
		copy(cpy.BlobHashes, tx.BlobHashes)
	}
	return cpy
}

// SetCodeTx is the EIP-7702 (type 0x04) set-code envelope. Like BlobTx,
// To is mandatory: a set-code transaction always targets an account.
type SetCodeTx struct {
	ChainID           uint64
	Nonce             uint64
	GasTipCap         uint64
	GasFeeCap         uint64
	Gas               uint64
	To                Address
	Value             *uint256.Int
	Data              []byte
	AccessList        AccessList
	AuthorizationList []Authorization
	YParity           uint8
	R, S              *uint256.Int
}

func (tx *SetCodeTx) txType() byte           { return SetCodeTxType }
func (tx *SetCodeTx) chainID() uint64        { return tx.ChainID }
func (tx *SetCodeTx) accessList() AccessList { return tx.AccessList }
func (tx *SetCodeTx) data() []byte           { return tx.Data }
func (tx *SetCodeTx) gas() uint64            { return tx.Gas }
func (tx *SetCodeTx) gasPrice() uint64       { return tx.GasFeeCap }
func (tx *SetCodeTx) gasTipCap() uint64      { return tx.GasTipCap }
func (tx *SetCodeTx) gasFeeCap() uint64      { return tx.GasFeeCap }
func (tx *SetCodeTx) value() *uint256.Int    { return tx.Value }
func (tx *SetCodeTx) nonce() uint64          { return tx.Nonce }
func (tx *SetCodeTx) to() *Address           { addr := tx.To; return &addr }
func (tx *SetCodeTx) copy() TxData {
	return &SetCodeTx{
		ChainID:           tx.ChainID,
		Nonce:             tx.Nonce,
		GasTipCap:         tx.GasTipCap,
		GasFeeCap:         tx.GasFeeCap,
		Gas:               tx.Gas,
		To:                tx.To,
		Value:             copyUint256(tx.Value),
		Data:              copyBytes(tx.Data),
		AccessList:        copyAccessList(tx.AccessList),
		AuthorizationList: copyAuthorizationList(tx.AuthorizationList),
		YParity:           tx.YParity,
		R:                 copyUint256(tx.R),
		S:                 copyUint256(tx.S),
	}
}

package types

import (
	"bytes"
	"errors"
	"testing"

	"github.com/holiman/uint256"
)

func addr(hexStr string) Address { return HexToAddress(hexStr) }

func u256(v uint64) *uint256.Int { return uint256.NewInt(v) }

// TestLegacyUnsignedRoundTrip covers nonce=69, gasPrice=2 Gwei, gas=21001,
// to=0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266, value=1 ETH, data=none.
func TestLegacyUnsignedRoundTrip(t *testing.T) {
	to := addr("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	want := NewTransaction(&LegacyTx{
		Nonce:    69,
		GasPrice: 2_000_000_000,
		Gas:      21001,
		To:       &to,
		Value:    u256(1_000_000_000_000_000_000),
	})

	enc, err := want.EncodeRLP()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeTxRLP(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Type() != LegacyTxType {
		t.Fatalf("type = %d, want %d", got.Type(), LegacyTxType)
	}
	if got.Nonce() != want.Nonce() {
		t.Fatalf("nonce = %d, want %d", got.Nonce(), want.Nonce())
	}
	if got.GasPrice() != want.GasPrice() {
		t.Fatalf("gasPrice = %d, want %d", got.GasPrice(), want.GasPrice())
	}
	if got.Gas() != want.Gas() {
		t.Fatalf("gas = %d, want %d", got.Gas(), want.Gas())
	}
	if got.To() == nil || *got.To() != to {
		t.Fatalf("to = %v, want %v", got.To(), to)
	}
	if got.Value().Cmp(want.Value()) != 0 {
		t.Fatalf("value = %s, want %s", got.Value(), want.Value())
	}
	if len(got.Data()) != 0 {
		t.Fatalf("data = %x, want empty", got.Data())
	}
	if v, r, s := got.RawSignatureValues(); v != 0 || r != nil || s != nil {
		t.Fatalf("unsigned tx round-tripped with a signature: v=%d r=%v s=%v", v, r, s)
	}
}

// TestDynamicFeeSignedRoundTrip covers the EIP-1559 signed scenario:
// chainId=31337, nonce=0, maxPriorityFeePerGas=maxFeePerGas=2 Gwei,
// gas=21001, to=0x70997970C51812dc3A010C7d01b50e0d17dc79C8, value=1 ETH,
// accessList=[], signature v=1,r,s.
func TestDynamicFeeSignedRoundTrip(t *testing.T) {
	to := addr("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	r := u256(0x1111)
	s := u256(0x2222)
	want := NewTransaction(&DynamicFeeTx{
		ChainID:   31337,
		Nonce:     0,
		GasTipCap: 2_000_000_000,
		GasFeeCap: 2_000_000_000,
		Gas:       21001,
		To:        &to,
		Value:     u256(1_000_000_000_000_000_000),
		YParity:   1,
		R:         r,
		S:         s,
	})

	enc, err := want.EncodeRLP()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if enc[0] != DynamicFeeTxType {
		t.Fatalf("leading type byte = %#x, want %#x", enc[0], DynamicFeeTxType)
	}

	got, err := DecodeTxRLP(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.ChainId() != 31337 {
		t.Fatalf("chainId = %d, want 31337", got.ChainId())
	}
	if got.GasTipCap() != want.GasTipCap() || got.GasFeeCap() != want.GasFeeCap() {
		t.Fatalf("fee caps mismatch: got tip=%d fee=%d", got.GasTipCap(), got.GasFeeCap())
	}
	if got.To() == nil || *got.To() != to {
		t.Fatalf("to = %v, want %v", got.To(), to)
	}
	if len(got.AccessList()) != 0 {
		t.Fatalf("accessList = %v, want empty", got.AccessList())
	}

	v, gr, gs := got.RawSignatureValues()
	if v != 1 {
		t.Fatalf("yParity = %d, want 1", v)
	}
	if gr == nil || gr.Cmp(r) != 0 {
		t.Fatalf("r = %v, want %v", gr, r)
	}
	if gs == nil || gs.Cmp(s) != 0 {
		t.Fatalf("s = %v, want %v", gs, s)
	}
}

// TestEnvelopeRoundTripEveryShape covers property 6: every envelope shape
// round-trips unsigned.
func TestEnvelopeRoundTripEveryShape(t *testing.T) {
	to := addr("0x00000000000000000000000000000000000001")
	cases := map[string]TxData{
		"legacy": &LegacyTx{Nonce: 1, GasPrice: 1, Gas: 21000, To: &to, Value: u256(0)},
		"accessList": &AccessListTx{
			ChainID: 1, Nonce: 1, GasPrice: 1, Gas: 21000, To: &to, Value: u256(0),
		},
		"dynamicFee": &DynamicFeeTx{
			ChainID: 1, Nonce: 1, GasTipCap: 1, GasFeeCap: 2, Gas: 21000, To: &to, Value: u256(0),
		},
		"blob": &BlobTx{
			ChainID: 1, Nonce: 1, GasTipCap: 1, GasFeeCap: 2, Gas: 21000, To: to, Value: u256(0),
			BlobFeeCap: 1, BlobHashes: []Hash{{0x01}},
		},
		"setCode": &SetCodeTx{
			ChainID: 1, Nonce: 1, GasTipCap: 1, GasFeeCap: 2, Gas: 21000, To: to, Value: u256(0),
			AuthorizationList: []Authorization{{ChainID: 1, Address: to, Nonce: 0, YParity: 0, R: u256(1), S: u256(1)}},
		},
	}

	for name, inner := range cases {
		t.Run(name, func(t *testing.T) {
			tx := NewTransaction(inner)
			enc, err := tx.EncodeRLP()
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := DecodeTxRLP(enc)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Type() != tx.Type() {
				t.Fatalf("type = %d, want %d", got.Type(), tx.Type())
			}
			if got.Nonce() != tx.Nonce() || got.Gas() != tx.Gas() {
				t.Fatalf("nonce/gas mismatch: got %d/%d want %d/%d", got.Nonce(), got.Gas(), tx.Nonce(), tx.Gas())
			}
			reenc, err := got.EncodeRLP()
			if err != nil {
				t.Fatalf("re-encode: %v", err)
			}
			if !bytes.Equal(enc, reenc) {
				t.Fatalf("encoding not stable across round trip:\n got %x\nwant %x", reenc, enc)
			}
		})
	}
}

func TestDecodeTxRLPRejectsDepositType(t *testing.T) {
	_, err := DecodeTxRLP([]byte{DepositTxType, 0xc0})
	if !errors.Is(err, ErrDepositTransaction) {
		t.Fatalf("err = %v, want ErrDepositTransaction", err)
	}
}

func TestDecodeTxRLPRejectsUnknownType(t *testing.T) {
	_, err := DecodeTxRLP([]byte{0x05, 0xc0})
	if !errors.Is(err, ErrInvalidTransactionType) {
		t.Fatalf("err = %v, want ErrInvalidTransactionType", err)
	}
}

func TestDecodeTxRLPRejectsEmptyInput(t *testing.T) {
	_, err := DecodeTxRLP(nil)
	if !errors.Is(err, ErrInvalidTransactionType) {
		t.Fatalf("err = %v, want ErrInvalidTransactionType", err)
	}
}

func TestDeriveChainIDUnprotectedLegacy(t *testing.T) {
	id, err := deriveChainID(31337, nil, nil)
	if err != nil || id != 31337 {
		t.Fatalf("id=%d err=%v, want 31337/nil", id, err)
	}
}

func TestDeriveChainIDPreEIP155(t *testing.T) {
	for _, v := range []uint64{27, 28} {
		id, err := deriveChainID(v, u256(1), u256(1))
		if err != nil || id != 0 {
			t.Fatalf("v=%d: id=%d err=%v, want 0/nil", v, id, err)
		}
	}
}

func TestDeriveChainIDEIP155(t *testing.T) {
	// chainId=1, yParity=0 -> v = 1*2+35+0 = 37
	id, err := deriveChainID(37, u256(1), u256(1))
	if err != nil || id != 1 {
		t.Fatalf("id=%d err=%v, want 1/nil", id, err)
	}
}

func TestDeriveChainIDEIP155OddParity(t *testing.T) {
	// chainId=1, yParity=1 -> v = 1*2+35+1 = 38.
	id, err := deriveChainID(38, u256(1), u256(1))
	if err != nil || id != 1 {
		t.Fatalf("id=%d err=%v, want 1/nil", id, err)
	}
}

func TestDeriveChainIDRejectsBelowEIP155Floor(t *testing.T) {
	_, err := deriveChainID(29, u256(1), u256(1))
	if !errors.Is(err, ErrInvalidRecoveryId) {
		t.Fatalf("err = %v, want ErrInvalidRecoveryId", err)
	}
}

func TestHashIsCachedAndStable(t *testing.T) {
	to := addr("0x0000000000000000000000000000000000000001")
	tx := NewTransaction(&LegacyTx{Nonce: 0, GasPrice: 1, Gas: 21000, To: &to, Value: u256(0)})
	h1 := tx.Hash()
	h2 := tx.Hash()
	if h1 != h2 {
		t.Fatalf("hash not stable: %x != %x", h1, h2)
	}
	if h1.IsZero() {
		t.Fatal("hash is zero")
	}
}

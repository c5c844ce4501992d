package tx

import (
	"errors"
	"testing"

	"github.com/ethcodec/ethcodec/core/types"
	"github.com/ethcodec/ethcodec/crypto"
	"github.com/holiman/uint256"
)

func addr(hexStr string) types.Address { return types.HexToAddress(hexStr) }

// TestLegacyUnsignedRoundTrip covers scenario S9: serialize then parse an
// unsigned legacy transaction and check structural equality.
func TestLegacyUnsignedRoundTrip(t *testing.T) {
	to := addr("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	want := types.NewTransaction(&types.LegacyTx{
		Nonce:    69,
		GasPrice: 2_000_000_000,
		Gas:      21001,
		To:       &to,
		Value:    uint256.NewInt(1_000_000_000_000_000_000),
	})

	enc, err := Serialize(want, nil)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	got, err := Parse(enc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Nonce() != want.Nonce() || got.GasPrice() != want.GasPrice() || got.Gas() != want.Gas() {
		t.Fatalf("fields mismatch: got %+v", got)
	}
	if got.To() == nil || *got.To() != to {
		t.Fatalf("to = %v, want %v", got.To(), to)
	}
	if got.Value().Cmp(want.Value()) != 0 {
		t.Fatalf("value = %s, want %s", got.Value(), want.Value())
	}
}

func TestParseRejectsSignedInput(t *testing.T) {
	to := addr("0x0000000000000000000000000000000000000001")
	signed := types.NewTransaction(&types.LegacyTx{
		Nonce: 0, GasPrice: 1, Gas: 21000, To: &to, Value: uint256.NewInt(0),
		V: 27, R: uint256.NewInt(1), S: uint256.NewInt(1),
	})
	enc, err := signed.EncodeRLP()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := Parse(enc); !errors.Is(err, ErrExpectedUnsigned) {
		t.Fatalf("err = %v, want ErrExpectedUnsigned", err)
	}
}

// TestDynamicFeeSignedRoundTrip covers scenario S10: chainId=31337, nonce=0,
// maxPriorityFeePerGas=maxFeePerGas=2 Gwei, gas=21001,
// to=0x70997970C51812dc3A010C7d01b50e0d17dc79C8, value=1 ETH,
// accessList=[], signature v=1,r,s. parse_signed(serialize(tx, sig)) must
// equal tx plus the attached signature.
func TestDynamicFeeSignedRoundTrip(t *testing.T) {
	to := addr("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	unsigned := types.NewTransaction(&types.DynamicFeeTx{
		ChainID:   31337,
		Nonce:     0,
		GasTipCap: 2_000_000_000,
		GasFeeCap: 2_000_000_000,
		Gas:       21001,
		To:        &to,
		Value:     uint256.NewInt(1_000_000_000_000_000_000),
	})
	sig := &Signature{V: 1, R: uint256.NewInt(0xdead), S: uint256.NewInt(0xbeef)}

	enc, err := Serialize(unsigned, sig)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	got, gotSig, err := ParseSigned(enc)
	if err != nil {
		t.Fatalf("parse_signed: %v", err)
	}
	if got.ChainId() != 31337 {
		t.Fatalf("chainId = %d, want 31337", got.ChainId())
	}
	if got.Nonce() != 0 || got.GasTipCap() != 2_000_000_000 || got.GasFeeCap() != 2_000_000_000 {
		t.Fatalf("fields mismatch: got %+v", got)
	}
	if len(got.AccessList()) != 0 {
		t.Fatalf("accessList = %v, want empty", got.AccessList())
	}
	if gotSig.V != sig.V || gotSig.R.Cmp(sig.R) != 0 || gotSig.S.Cmp(sig.S) != 0 {
		t.Fatalf("signature mismatch: got %+v, want %+v", gotSig, sig)
	}
}

func TestParseSignedRejectsUnsignedInput(t *testing.T) {
	to := addr("0x0000000000000000000000000000000000000001")
	unsigned := types.NewTransaction(&types.LegacyTx{Nonce: 0, GasPrice: 1, Gas: 21000, To: &to, Value: uint256.NewInt(0)})
	enc, err := Serialize(unsigned, nil)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if _, _, err := ParseSigned(enc); !errors.Is(err, ErrExpectedSigned) {
		t.Fatalf("err = %v, want ErrExpectedSigned", err)
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	to := addr("0x0000000000000000000000000000000000000001")
	want := types.NewTransaction(&types.LegacyTx{Nonce: 1, GasPrice: 1, Gas: 21000, To: &to, Value: uint256.NewInt(0)})
	enc, err := Serialize(want, nil)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	got, err := ParseHex("0x" + hexEncode(enc))
	if err != nil {
		t.Fatalf("parseHex: %v", err)
	}
	if got.Nonce() != want.Nonce() {
		t.Fatalf("nonce = %d, want %d", got.Nonce(), want.Nonce())
	}
}

func TestParseSignedHexRoundTrip(t *testing.T) {
	to := addr("0x0000000000000000000000000000000000000001")
	unsigned := types.NewTransaction(&types.LegacyTx{Nonce: 1, GasPrice: 1, Gas: 21000, To: &to, Value: uint256.NewInt(0)})
	sig := &Signature{V: 27, R: uint256.NewInt(1), S: uint256.NewInt(1)}
	enc, err := Serialize(unsigned, sig)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	got, gotSig, err := ParseSignedHex("0x" + hexEncode(enc))
	if err != nil {
		t.Fatalf("parseSignedHex: %v", err)
	}
	if got.Nonce() != unsigned.Nonce() || gotSig.V != sig.V {
		t.Fatalf("mismatch: got %+v sig %+v", got, gotSig)
	}
}

func hexEncode(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, x := range b {
		out[i*2] = digits[x>>4]
		out[i*2+1] = digits[x&0xf]
	}
	return string(out)
}

// TestLegacyChainIDRecoveredFromSignature covers property 7's legacy
// chainId clause: parse_signed on an EIP-155-signed legacy transaction
// recovers the same chainId that was used to compute V.
func TestLegacyChainIDRecoveredFromSignature(t *testing.T) {
	to := addr("0x0000000000000000000000000000000000000001")
	unsigned := types.NewTransaction(&types.LegacyTx{Nonce: 5, GasPrice: 1, Gas: 21000, To: &to, Value: uint256.NewInt(0)})
	// chainId=1, yParity=0 -> v = 1*2+35+0 = 37
	sig := &Signature{V: 37, R: uint256.NewInt(1), S: uint256.NewInt(1)}

	enc, err := Serialize(unsigned, sig)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	got, gotSig, err := ParseSigned(enc)
	if err != nil {
		t.Fatalf("parse_signed: %v", err)
	}
	if got.ChainId() != 1 {
		t.Fatalf("chainId = %d, want 1", got.ChainId())
	}
	if gotSig.RecoveryID != 0 || gotSig.ChainID != 1 {
		t.Fatalf("recoveryID=%d chainID=%d, want 0/1", gotSig.RecoveryID, gotSig.ChainID)
	}
}

// TestNewLegacySignatureEIP155 covers NewLegacySignature's chainID != nil
// path: it must call crypto.EncodeVEIP155 to build the same wire V that
// ParseSigned later decodes back via crypto.NormalizeV.
func TestNewLegacySignatureEIP155(t *testing.T) {
	to := addr("0x0000000000000000000000000000000000000001")
	unsigned := types.NewTransaction(&types.LegacyTx{Nonce: 0, GasPrice: 1, Gas: 21000, To: &to, Value: uint256.NewInt(0)})

	chainID := uint64(1)
	sig := NewLegacySignature(crypto.Signature{V: 1, R: uint256.NewInt(1), S: uint256.NewInt(1)}, &chainID)
	if sig.V != 38 {
		t.Fatalf("V = %d, want 38", sig.V)
	}

	enc, err := Serialize(unsigned, sig)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	got, gotSig, err := ParseSigned(enc)
	if err != nil {
		t.Fatalf("parse_signed: %v", err)
	}
	if got.ChainId() != 1 || gotSig.RecoveryID != 1 || gotSig.ChainID != 1 {
		t.Fatalf("chainId=%d recoveryID=%d chainID=%d, want 1/1/1", got.ChainId(), gotSig.RecoveryID, gotSig.ChainID)
	}
}

// TestNewLegacySignatureUnprotected covers NewLegacySignature's chainID ==
// nil path: it must call crypto.EncodeVLegacy to build a pre-EIP-155 V.
func TestNewLegacySignatureUnprotected(t *testing.T) {
	sig := NewLegacySignature(crypto.Signature{V: 1, R: uint256.NewInt(1), S: uint256.NewInt(1)}, nil)
	if sig.V != 28 {
		t.Fatalf("V = %d, want 28", sig.V)
	}
}

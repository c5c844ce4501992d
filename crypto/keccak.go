// Package crypto holds the hash and signature value types the codec
// packages consume as external collaborators: keccak-256 hashing for
// selectors and log topics, and the V/R/S shape of a transaction
// signature. It deliberately does not implement elliptic-curve math;
// recovering a public key or address from a signature is the caller's job.
package crypto

import "golang.org/x/crypto/sha3"

// Keccak256 hashes the concatenation of data with Keccak-256 (the
// pre-standardization variant Ethereum uses, not NIST SHA3-256).
func Keccak256(data ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Keccak256Bytes is Keccak256 with a []byte return, for callers that don't
// want to deal with the fixed-size array.
func Keccak256Bytes(data ...[]byte) []byte {
	sum := Keccak256(data...)
	return sum[:]
}

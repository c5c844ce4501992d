package types

import (
	"errors"
	"fmt"
)

// Errors surfaced while dispatching or decoding a transaction envelope.
var (
	// ErrInvalidTransactionType covers both an unrecognized leading type
	// byte and a recognized-but-unsupported one (deposit).
	ErrInvalidTransactionType = errors.New("types: invalid transaction type")

	// ErrInvalidRecoveryId is returned when a legacy V value cannot be
	// interpreted as either a pre-EIP-155 (27/28) or EIP-155-encoded form.
	ErrInvalidRecoveryId = errors.New("types: invalid recovery id")

	// ErrDepositTransaction flags a deposit (type 0x7e) envelope, which
	// this dispatcher recognizes by name and refuses to parse rather than
	// treating as an ordinary unknown type byte. It wraps
	// ErrInvalidTransactionType.
	ErrDepositTransaction = fmt.Errorf("%w: deposit transactions are not parsed by this core", ErrInvalidTransactionType)

	// ErrShortTypedTransaction is returned when a typed envelope's type
	// byte is present but its RLP payload is empty.
	ErrShortTypedTransaction = errors.New("types: typed transaction payload is empty")
)

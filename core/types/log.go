package types

import (
	"fmt"

	"github.com/ethcodec/ethcodec/rlp"
)

// MaxTopicsPerLog is the number of indexed topics the EVM's LOG0..LOG4
// opcodes can produce.
const MaxTopicsPerLog = 4

// Log is a single contract event emitted during transaction execution.
// Address/Topics/Data are the consensus-encoded fields; the rest is
// block-inclusion metadata a receipt or RPC response attaches afterward.
type Log struct {
	Address     Address
	Topics      []Hash
	Data        []byte
	BlockNumber uint64
	TxHash      Hash
	TxIndex     uint
	BlockHash   Hash
	Index       uint
	Removed     bool
}

// logRLP is the consensus-encoded subset of Log: [address, topics, data].
type logRLP struct {
	Address Address
	Topics  []Hash
	Data    []byte
}

// EncodeLogRLP returns the RLP encoding of a log's consensus fields.
func EncodeLogRLP(l *Log) ([]byte, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: nil log", ErrInvalidTransactionType)
	}
	if len(l.Topics) > MaxTopicsPerLog {
		return nil, fmt.Errorf("log: too many topics: %d > %d", len(l.Topics), MaxTopicsPerLog)
	}
	return rlp.EncodeToBytes(logRLP{Address: l.Address, Topics: l.Topics, Data: l.Data})
}

// DecodeLogRLP decodes a log's consensus fields from data.
func DecodeLogRLP(data []byte) (*Log, error) {
	var dec logRLP
	if err := rlp.DecodeBytes(data, &dec); err != nil {
		return nil, fmt.Errorf("log: decode: %w", err)
	}
	if len(dec.Topics) > MaxTopicsPerLog {
		return nil, fmt.Errorf("log: too many topics: %d > %d", len(dec.Topics), MaxTopicsPerLog)
	}
	return &Log{Address: dec.Address, Topics: dec.Topics, Data: dec.Data}, nil
}

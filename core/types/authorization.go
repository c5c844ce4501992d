package types

import "github.com/holiman/uint256"

// Authorization is a single EIP-7702 delegated-execution authorization:
// an account at ChainID/Nonce signs over Address, authorizing that
// contract's code to be treated as its own for the duration of a
// SetCodeTx.
type Authorization struct {
	ChainID uint64
	Address Address
	Nonce   uint64
	YParity uint8
	R       *uint256.Int
	S       *uint256.Int
}

func copyAuthorizationList(auths []Authorization) []Authorization {
	if auths == nil {
		return nil
	}
	cpy := make([]Authorization, len(auths))
	for i, a := range auths {
		cpy[i] = Authorization{
			ChainID: a.ChainID,
			Address: a.Address,
			Nonce:   a.Nonce,
			YParity: a.YParity,
		}
		if a.R != nil {
			cpy[i].R = new(uint256.Int).Set(a.R)
		}
		if a.S != nil {
			cpy[i].S = new(uint256.Int).Set(a.S)
		}
	}
	return cpy
}

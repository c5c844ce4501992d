package types

// AccessList is the EIP-2930 list of (address, storage keys) pairs a
// Berlin-or-later transaction pre-declares access to.
type AccessList []AccessTuple

// AccessTuple is a single address and the storage slots within it that a
// transaction accesses.
type AccessTuple struct {
	Address     Address
	StorageKeys []Hash
}

func copyAccessList(al AccessList) AccessList {
	if al == nil {
		return nil
	}
	cpy := make(AccessList, len(al))
	for i, tuple := range al {
		cpy[i] = AccessTuple{
			Address:     tuple.Address,
			StorageKeys: make([]Hash, len(tuple.StorageKeys)),
		}
		copy(cpy[i].StorageKeys, tuple.StorageKeys)
	}
	return cpy
}

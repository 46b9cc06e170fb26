package stypes

import "github.com/dogechain-lab/objectchain/types"

var (
	ObjectPrefix     = []byte("o") // ObjectPrefix + object id -> encoded object
	OwnerIndexPrefix = []byte("w") // OwnerIndexPrefix + owner address + object id -> empty
)

func ObjectKey(id types.ObjectID) []byte {
	return append(append([]byte{}, ObjectPrefix...), id.Bytes()...)
}

func OwnerPrefix(owner types.Address) []byte {
	return append(append([]byte{}, OwnerIndexPrefix...), owner.Bytes()...)
}

func OwnerIndexKey(owner types.Address, id types.ObjectID) []byte {
	return append(OwnerPrefix(owner), id.Bytes()...)
}

// IDFromKey extracts the object id at the tail of an object or owner key
func IDFromKey(key []byte) types.ObjectID {
	if len(key) < types.ObjectIDLength {
		return types.ObjectID{}
	}

	return types.BytesToObjectID(key[len(key)-types.ObjectIDLength:])
}

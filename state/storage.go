package state

import (
	"github.com/dogechain-lab/objectchain/types"
)

// Storage is the capability handed to the execution layer. Calls arrive
// one at a time during a single transaction's run.
type Storage interface {
	// Reset discards every buffered change
	Reset()
	// ReadObject returns the latest version of an object visible to the
	// running transaction
	ReadObject(id types.ObjectID) (*types.Object, bool)
	// SetCreatedObjectIDs records the ids the transaction minted
	SetCreatedObjectIDs(ids map[types.ObjectID]struct{})
	// WriteObject buffers a new version of an object
	WriteObject(obj *types.Object)
	// DeleteObject buffers the deletion of an object
	DeleteObject(id types.ObjectID, version types.SequenceNumber, kind types.DeleteKind)
	// LogEvent appends an event to the transaction's effects
	LogEvent(event *types.Event)
}

// Backend is the persistent id -> object map under the scratchpad
type Backend interface {
	GetObject(id types.ObjectID) (*types.Object, bool)
	HasObject(id types.ObjectID) bool
	// ObjectsByOwner lists committed objects owned by the address, ordered by id
	ObjectsByOwner(owner types.Address) []*types.Object
	// ForEach visits committed objects in id order until fn returns false
	ForEach(fn func(obj *types.Object) bool) error
	// Apply commits a batch atomically
	Apply(batch *Batch) error
}

// Batch is the set of changes one flush commits
type Batch struct {
	Created []*types.Object
	Updated []*types.Object
	Deleted []types.ObjectID
}

func (b *Batch) Len() int {
	return len(b.Created) + len(b.Updated) + len(b.Deleted)
}

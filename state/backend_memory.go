package state

import (
	"sync"

	"github.com/dogechain-lab/objectchain/state/stypes"
	"github.com/dogechain-lab/objectchain/types"
	iradix "github.com/hashicorp/go-immutable-radix"
)

// MemoryBackend keeps committed objects in an immutable radix tree. Apply
// builds the next tree in a transaction and swaps the root, so readers
// never observe a half applied batch.
type MemoryBackend struct {
	lock sync.RWMutex
	tree *iradix.Tree
}

var _ Backend = (*MemoryBackend)(nil)

func NewMemoryBackend(objects ...*types.Object) *MemoryBackend {
	txn := iradix.New().Txn()

	for _, obj := range objects {
		putObject(txn, nil, obj.Copy())
	}

	return &MemoryBackend{
		tree: txn.Commit(),
	}
}

func (b *MemoryBackend) root() *iradix.Tree {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.tree
}

func (b *MemoryBackend) GetObject(id types.ObjectID) (*types.Object, bool) {
	v, ok := b.root().Get(stypes.ObjectKey(id))
	if !ok {
		return nil, false
	}

	//nolint:forcetypeassert
	return v.(*types.Object).Copy(), true
}

func (b *MemoryBackend) HasObject(id types.ObjectID) bool {
	_, ok := b.root().Get(stypes.ObjectKey(id))

	return ok
}

func (b *MemoryBackend) ObjectsByOwner(owner types.Address) []*types.Object {
	tree := b.root()
	objects := []*types.Object{}

	tree.Root().WalkPrefix(stypes.OwnerPrefix(owner), func(k []byte, _ interface{}) bool {
		if v, ok := tree.Get(stypes.ObjectKey(stypes.IDFromKey(k))); ok {
			//nolint:forcetypeassert
			objects = append(objects, v.(*types.Object).Copy())
		}

		return false
	})

	return objects
}

func (b *MemoryBackend) ForEach(fn func(obj *types.Object) bool) error {
	b.root().Root().WalkPrefix(stypes.ObjectPrefix, func(_ []byte, v interface{}) bool {
		//nolint:forcetypeassert
		return !fn(v.(*types.Object).Copy())
	})

	return nil
}

func (b *MemoryBackend) Len() int {
	n := 0

	b.root().Root().WalkPrefix(stypes.ObjectPrefix, func([]byte, interface{}) bool {
		n++

		return false
	})

	return n
}

func (b *MemoryBackend) Apply(batch *Batch) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	txn := b.tree.Txn()

	for _, obj := range batch.Created {
		putObject(txn, nil, obj.Copy())
	}

	for _, obj := range batch.Updated {
		old, _ := txn.Get(stypes.ObjectKey(obj.ID))
		putObject(txn, old, obj.Copy())
	}

	for _, id := range batch.Deleted {
		key := stypes.ObjectKey(id)

		if old, ok := txn.Get(key); ok {
			//nolint:forcetypeassert
			dropOwnerIndex(txn, old.(*types.Object))
			txn.Delete(key)
		}
	}

	b.tree = txn.Commit()

	return nil
}

func putObject(txn *iradix.Txn, old interface{}, obj *types.Object) {
	if prev, ok := old.(*types.Object); ok {
		dropOwnerIndex(txn, prev)
	}

	txn.Insert(stypes.ObjectKey(obj.ID), obj)

	if obj.Owner.Kind == types.OwnerAddress {
		txn.Insert(stypes.OwnerIndexKey(obj.Owner.Address, obj.ID), struct{}{})
	}
}

func dropOwnerIndex(txn *iradix.Txn, obj *types.Object) {
	if obj.Owner.Kind == types.OwnerAddress {
		txn.Delete(stypes.OwnerIndexKey(obj.Owner.Address, obj.ID))
	}
}

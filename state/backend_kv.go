package state

import (
	"fmt"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/dogechain-lab/objectchain/helper/kvdb"
	"github.com/dogechain-lab/objectchain/state/stypes"
	"github.com/dogechain-lab/objectchain/types"
	"github.com/hashicorp/go-hclog"
	lru "github.com/hashicorp/golang-lru"
)

const (
	DefaultObjectCacheSize = 4096
	DefaultRecordCacheSize = 32 // MiB
)

// KVBackend keeps committed objects in a key-value database with an owner
// index next to them. Two caches sit in front of the database: decoded
// objects in an lru, encoded records in a fastcache. Both only change after
// a batch is written.
//
// A read failure of the database is fatal and panics, like a broken
// invariant: the store can't tell the object's state.
type KVBackend struct {
	logger hclog.Logger
	db     kvdb.KVBatchStorage
	cache  *lru.Cache       // id -> *types.Object
	blobs  *fastcache.Cache // object key -> encoded record
}

var _ Backend = (*KVBackend)(nil)

// NewKVBackend opens a backend over db. cacheSize counts decoded objects,
// recordCacheMB sizes the encoded record cache; zero picks the defaults.
func NewKVBackend(
	logger hclog.Logger,
	db kvdb.KVBatchStorage,
	cacheSize int,
	recordCacheMB int,
) (*KVBackend, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultObjectCacheSize
	}

	if recordCacheMB <= 0 {
		recordCacheMB = DefaultRecordCacheSize
	}

	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}

	return &KVBackend{
		logger: logger.Named("kvbackend"),
		db:     db,
		cache:  cache,
		blobs:  fastcache.New(recordCacheMB * 1024 * 1024),
	}, nil
}

func (b *KVBackend) getObject(id types.ObjectID) (*types.Object, bool) {
	if v, ok := b.cache.Get(id); ok {
		//nolint:forcetypeassert
		return v.(*types.Object), true
	}

	data, ok := b.readRecord(id)
	if !ok {
		return nil, false
	}

	obj, err := stypes.UnmarshalObject(data)
	if err != nil {
		panic(fmt.Errorf("failed to decode object %s: %w", id, err))
	}

	b.cache.Add(id, obj)

	return obj, true
}

// readRecord returns the encoded record, filling the record cache on a miss
func (b *KVBackend) readRecord(id types.ObjectID) ([]byte, bool) {
	key := stypes.ObjectKey(id)

	if data, ok := b.blobs.HasGet(nil, key); ok {
		return data, true
	}

	data, ok, err := b.db.Get(key)
	if err != nil {
		panic(fmt.Errorf("failed to read object %s: %w", id, err))
	}

	if !ok {
		return nil, false
	}

	b.blobs.Set(key, data)

	return data, true
}

func (b *KVBackend) GetObject(id types.ObjectID) (*types.Object, bool) {
	obj, ok := b.getObject(id)
	if !ok {
		return nil, false
	}

	return obj.Copy(), true
}

func (b *KVBackend) HasObject(id types.ObjectID) bool {
	if b.cache.Contains(id) || b.blobs.Has(stypes.ObjectKey(id)) {
		return true
	}

	ok, err := b.db.Has(stypes.ObjectKey(id))
	if err != nil {
		panic(fmt.Errorf("failed to read object %s: %w", id, err))
	}

	return ok
}

func (b *KVBackend) ObjectsByOwner(owner types.Address) []*types.Object {
	objects := []*types.Object{}

	err := kvdb.ForEachPrefix(b.db, stypes.OwnerPrefix(owner), func(key, _ []byte) bool {
		if obj, ok := b.GetObject(stypes.IDFromKey(key)); ok {
			objects = append(objects, obj)
		}

		return true
	})
	if err != nil {
		panic(fmt.Errorf("failed to iterate owner index: %w", err))
	}

	return objects
}

func (b *KVBackend) ForEach(fn func(obj *types.Object) bool) error {
	var decodeErr error

	err := kvdb.ForEachPrefix(b.db, stypes.ObjectPrefix, func(key, value []byte) bool {
		obj, err := stypes.UnmarshalObject(value)
		if err != nil {
			decodeErr = fmt.Errorf("failed to decode object %s: %w", stypes.IDFromKey(key), err)

			return false
		}

		return fn(obj)
	})
	if decodeErr != nil {
		return decodeErr
	}

	return err
}

func (b *KVBackend) Apply(batch *Batch) error {
	wb := b.db.NewBatch()

	written := make(map[types.ObjectID][]byte, len(batch.Created)+len(batch.Updated))

	put := func(obj *types.Object) error {
		if old, ok := b.getObject(obj.ID); ok && old.Owner.Kind == types.OwnerAddress {
			if err := wb.Delete(stypes.OwnerIndexKey(old.Owner.Address, old.ID)); err != nil {
				return err
			}
		}

		data := stypes.MarshalObject(obj)
		if err := wb.Set(stypes.ObjectKey(obj.ID), data); err != nil {
			return err
		}

		written[obj.ID] = data

		if obj.Owner.Kind == types.OwnerAddress {
			return wb.Set(stypes.OwnerIndexKey(obj.Owner.Address, obj.ID), []byte{})
		}

		return nil
	}

	for _, obj := range batch.Created {
		if err := put(obj); err != nil {
			return err
		}
	}

	for _, obj := range batch.Updated {
		if err := put(obj); err != nil {
			return err
		}
	}

	for _, id := range batch.Deleted {
		if old, ok := b.getObject(id); ok && old.Owner.Kind == types.OwnerAddress {
			if err := wb.Delete(stypes.OwnerIndexKey(old.Owner.Address, id)); err != nil {
				return err
			}
		}

		if err := wb.Delete(stypes.ObjectKey(id)); err != nil {
			return err
		}
	}

	if err := wb.Write(); err != nil {
		return err
	}

	for _, obj := range batch.Created {
		b.cache.Add(obj.ID, obj.Copy())
	}

	for _, obj := range batch.Updated {
		b.cache.Add(obj.ID, obj.Copy())
	}

	for id, data := range written {
		b.blobs.Set(stypes.ObjectKey(id), data)
	}

	for _, id := range batch.Deleted {
		b.cache.Remove(id)
		b.blobs.Del(stypes.ObjectKey(id))
	}

	b.logger.Debug("batch written", "objects", batch.Len(), "bytes", wb.ValueSize())

	return nil
}

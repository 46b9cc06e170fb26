package leveldb

import (
	"errors"

	"github.com/dogechain-lab/objectchain/helper/kvdb"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	// minCache is the minimum memory allocate to leveldb
	// half write, half read
	minCache = 16 // 16 MiB

	// minHandles is the minimum number of files handles to leveldb open files
	minHandles = 16

	DefaultCache               = 64    // 64 MiB
	DefaultHandles             = 256   // files handles to leveldb open files
	DefaultBloomKeyBits        = 10    // bloom filter bits per key
	DefaultCompactionTableSize = 4     // 4  MiB
	DefaultCompactionTotalSize = 40    // 40 MiB
	DefaultNoSyncFlag          = false // false - sync write, true - async write
)

type batch struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	size  int // counting batch size
}

func (b *batch) Set(k, v []byte) error {
	b.batch.Put(k, v)
	b.size += len(k) + len(v)

	return nil
}

func (b *batch) Delete(k []byte) error {
	b.batch.Delete(k)
	b.size += len(k)

	return nil
}

func (b *batch) ValueSize() int {
	return b.size
}

func (b *batch) Write() error {
	return b.db.Write(b.batch, nil)
}

// database is the leveldb implementation of the kv storage
type database struct {
	db *leveldb.DB
}

// NewFromDB wraps an opened leveldb instance
func NewFromDB(db *leveldb.DB) kvdb.KVBatchStorage {
	return &database{db: db}
}

func (kv *database) NewBatch() kvdb.Batch {
	return &batch{db: kv.db, batch: &leveldb.Batch{}}
}

// bytesPrefixRange returns key range that satisfy
// - the given prefix, and
// - the given seek position
func bytesPrefixRange(prefix, start []byte) *util.Range {
	r := util.BytesPrefix(prefix)
	r.Start = append(r.Start, start...)

	return r
}

func (kv *database) NewIterator(prefix, start []byte) kvdb.Iterator {
	return kv.db.NewIterator(bytesPrefixRange(prefix, start), nil)
}

// Set sets the key-value pair in leveldb storage
func (kv *database) Set(p []byte, v []byte) error {
	return kv.db.Put(p, v, nil)
}

func (kv *database) Delete(p []byte) error {
	return kv.db.Delete(p, nil)
}

func (kv *database) Has(p []byte) (bool, error) {
	return kv.db.Has(p, nil)
}

// Get retrieves the key-value pair in leveldb storage
func (kv *database) Get(p []byte) ([]byte, bool, error) {
	data, err := kv.db.Get(p, nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return data, true, nil
}

// Close closes the leveldb storage instance
func (kv *database) Close() error {
	return kv.db.Close()
}

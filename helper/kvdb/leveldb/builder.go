package leveldb

import (
	"fmt"

	"github.com/dogechain-lab/objectchain/helper/kvdb"
	"github.com/hashicorp/go-hclog"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

type Builder interface {
	// set cache size
	SetCacheSize(int) Builder

	// set handles
	SetHandles(int) Builder

	// set bloom key bits
	SetBloomKeyBits(int) Builder

	// set compaction table size
	SetCompactionTableSize(int) Builder

	// set compaction table total size
	SetCompactionTotalSize(int) Builder

	// set no sync
	SetNoSync(bool) Builder

	// set read only
	SetReadOnly(bool) Builder

	// build the storage
	Build() (kvdb.KVBatchStorage, error)
}

// NewBuilder creates the new leveldb storage builder
func NewBuilder(logger hclog.Logger, path string) Builder {
	return &builder{
		logger: logger,
		path:   path,
		options: &opt.Options{
			OpenFilesCacheCapacity:        minHandles,
			CompactionTableSize:           DefaultCompactionTableSize * opt.MiB,
			CompactionTotalSize:           DefaultCompactionTotalSize * opt.MiB,
			BlockCacheCapacity:            minCache * opt.MiB,
			WriteBuffer:                   (DefaultCompactionTableSize * 2) * opt.MiB,
			CompactionTableSizeMultiplier: 1.1, // scale size up 1.1 multiple in next level
			Filter:                        filter.NewBloomFilter(DefaultBloomKeyBits),
			NoSync:                        DefaultNoSyncFlag,
			BlockSize:                     32 * opt.KiB, // object records are small
			DisableSeeksCompaction:        true,
		},
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}

type builder struct {
	logger  hclog.Logger
	path    string
	options *opt.Options
}

func (b *builder) SetCacheSize(cacheSize int) Builder {
	cacheSize = max(cacheSize, minCache)

	b.options.BlockCacheCapacity = cacheSize * opt.MiB

	b.logger.Debug("leveldb",
		"BlockCacheCapacity", fmt.Sprintf("%d Mib", cacheSize),
	)

	return b
}

func (b *builder) SetHandles(handles int) Builder {
	b.options.OpenFilesCacheCapacity = max(handles, minHandles)

	b.logger.Debug("leveldb",
		"OpenFilesCacheCapacity", b.options.OpenFilesCacheCapacity,
	)

	return b
}

func (b *builder) SetBloomKeyBits(bloomKeyBits int) Builder {
	b.options.Filter = filter.NewBloomFilter(bloomKeyBits)

	b.logger.Debug("leveldb",
		"BloomFilter bits", bloomKeyBits,
	)

	return b
}

func (b *builder) SetCompactionTableSize(compactionTableSize int) Builder {
	b.options.CompactionTableSize = compactionTableSize * opt.MiB
	b.options.WriteBuffer = b.options.CompactionTableSize * 2

	b.logger.Debug("leveldb",
		"CompactionTableSize", fmt.Sprintf("%d Mib", compactionTableSize),
		"WriteBuffer", fmt.Sprintf("%d Mib", b.options.WriteBuffer/opt.MiB),
	)

	return b
}

func (b *builder) SetCompactionTotalSize(compactionTotalSize int) Builder {
	b.options.CompactionTotalSize = compactionTotalSize * opt.MiB

	b.logger.Debug("leveldb",
		"CompactionTotalSize", fmt.Sprintf("%d Mib", compactionTotalSize),
	)

	return b
}

func (b *builder) SetNoSync(noSync bool) Builder {
	b.options.NoSync = noSync

	b.logger.Debug("leveldb",
		"NoSync", noSync,
	)

	return b
}

func (b *builder) SetReadOnly(readOnly bool) Builder {
	b.options.ReadOnly = readOnly

	return b
}

func (b *builder) Build() (kvdb.KVBatchStorage, error) {
	db, err := leveldb.OpenFile(b.path, b.options)
	if err != nil {
		return nil, err
	}

	b.logger.Info("opened object database", "path", b.path, "readonly", b.options.ReadOnly)

	return &database{db: db}, nil
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dogechain-lab/objectchain/command"
	"github.com/dogechain-lab/objectchain/helper/kvdb"
	"github.com/dogechain-lab/objectchain/helper/kvdb/leveldb"
	"github.com/dogechain-lab/objectchain/state"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl"
)

const objectsDirName = "objects"

var (
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrDataDirUndefined  = errors.New("data directory not defined")
)

// Config is the CLI configuration
type Config struct {
	DataDir         string   `json:"data_dir" hcl:"data_dir"`
	LogLevel        string   `json:"log_level" hcl:"log_level"`
	Catalog         string   `json:"catalog" hcl:"catalog"`
	ObjectCacheSize int      `json:"object_cache_size" hcl:"object_cache_size"`
	RecordCacheSize int      `json:"record_cache_size" hcl:"record_cache_size"` // MiB
	LevelDB         *LevelDB `json:"leveldb" hcl:"leveldb"`
}

// LevelDB holds the options of the object database
type LevelDB struct {
	CacheSize           int  `json:"cache_size" hcl:"cache_size"`
	Handles             int  `json:"handles" hcl:"handles"`
	BloomKeyBits        int  `json:"bloom_bits" hcl:"bloom_bits"`
	CompactionTableSize int  `json:"table_size" hcl:"table_size"`
	CompactionTotalSize int  `json:"total_table_size" hcl:"total_table_size"`
	NoSync              bool `json:"nosync" hcl:"nosync"`
}

// DefaultConfig returns the default CLI configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir:         command.DefaultDataDir,
		LogLevel:        command.DefaultLogLevel,
		Catalog:         "",
		ObjectCacheSize: state.DefaultObjectCacheSize,
		RecordCacheSize: state.DefaultRecordCacheSize,
		LevelDB:         defaultLevelDB(),
	}
}

func defaultLevelDB() *LevelDB {
	return &LevelDB{
		CacheSize:           leveldb.DefaultCache,
		Handles:             leveldb.DefaultHandles,
		BloomKeyBits:        leveldb.DefaultBloomKeyBits,
		CompactionTableSize: leveldb.DefaultCompactionTableSize,
		CompactionTotalSize: leveldb.DefaultCompactionTotalSize,
		NoSync:              leveldb.DefaultNoSyncFlag,
	}
}

// ReadConfigFile reads a .hcl or .json config file. Options the file leaves
// out keep their defaults.
func ReadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var unmarshal func([]byte, interface{}) error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		unmarshal = hcl.Unmarshal
	case ".json":
		unmarshal = json.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	config := DefaultConfig()
	if err := unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	config.fillDefaults()

	return config, nil
}

// fillDefaults restores zero-valued options to their defaults; a partial
// leveldb block decodes into a fresh struct
func (c *Config) fillDefaults() {
	defaults := DefaultConfig()

	if c.DataDir == "" {
		c.DataDir = defaults.DataDir
	}

	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}

	if c.ObjectCacheSize <= 0 {
		c.ObjectCacheSize = defaults.ObjectCacheSize
	}

	if c.RecordCacheSize <= 0 {
		c.RecordCacheSize = defaults.RecordCacheSize
	}

	if c.LevelDB == nil {
		c.LevelDB = defaults.LevelDB

		return
	}

	if c.LevelDB.CacheSize <= 0 {
		c.LevelDB.CacheSize = defaults.LevelDB.CacheSize
	}

	if c.LevelDB.Handles <= 0 {
		c.LevelDB.Handles = defaults.LevelDB.Handles
	}

	if c.LevelDB.BloomKeyBits <= 0 {
		c.LevelDB.BloomKeyBits = defaults.LevelDB.BloomKeyBits
	}

	if c.LevelDB.CompactionTableSize <= 0 {
		c.LevelDB.CompactionTableSize = defaults.LevelDB.CompactionTableSize
	}

	if c.LevelDB.CompactionTotalSize <= 0 {
		c.LevelDB.CompactionTotalSize = defaults.LevelDB.CompactionTotalSize
	}
}

// NewLogger builds the root logger at the configured level
func (c *Config) NewLogger() (hclog.Logger, error) {
	level := hclog.LevelFromString(c.LogLevel)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "objectchain",
		Level:  level,
		Output: os.Stderr,
	}), nil
}

// ObjectsPath is the leveldb directory of the object store
func (c *Config) ObjectsPath() string {
	return filepath.Join(c.DataDir, objectsDirName)
}

// OpenDatabase opens the object database under the data directory
func (c *Config) OpenDatabase(logger hclog.Logger, readOnly bool) (kvdb.KVBatchStorage, error) {
	if c.DataDir == "" {
		return nil, ErrDataDirUndefined
	}

	return leveldb.NewBuilder(logger, c.ObjectsPath()).
		SetCacheSize(c.LevelDB.CacheSize).
		SetHandles(c.LevelDB.Handles).
		SetBloomKeyBits(c.LevelDB.BloomKeyBits).
		SetCompactionTableSize(c.LevelDB.CompactionTableSize).
		SetCompactionTotalSize(c.LevelDB.CompactionTotalSize).
		SetNoSync(c.LevelDB.NoSync).
		SetReadOnly(readOnly).
		Build()
}

// OpenBackend opens the object database and the backend over it. The
// returned database must be closed by the caller.
func (c *Config) OpenBackend(
	logger hclog.Logger,
	readOnly bool,
) (*state.KVBackend, kvdb.KVBatchStorage, error) {
	db, err := c.OpenDatabase(logger, readOnly)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open object database: %w", err)
	}

	backend, err := state.NewKVBackend(logger, db, c.ObjectCacheSize, c.RecordCacheSize)
	if err != nil {
		db.Close()

		return nil, nil, err
	}

	return backend, db, nil
}

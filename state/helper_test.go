package state

import (
	"errors"
	"testing"

	"github.com/dogechain-lab/objectchain/helper/kvdb/leveldb"
	"github.com/dogechain-lab/objectchain/types"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = types.StringToAddress("0x1")
	addr2 = types.StringToAddress("0x2")

	id1 = types.StringToObjectID("0x101")
	id2 = types.StringToObjectID("0x102")
	id3 = types.StringToObjectID("0x103")

	coinType  = types.MustParseTypeTag("0x2::Coin::Coin")
	eventType = types.MustParseTypeTag("0x2::Event::Transfer")
)

func newObject(id types.ObjectID, version types.SequenceNumber, contents ...byte) *types.Object {
	return &types.Object{
		ID:       id,
		Version:  version,
		Owner:    types.AddressOwner(addr1),
		Type:     coinType,
		Contents: contents,
	}
}

type backendFactory func(t *testing.T, objects ...*types.Object) Backend

func newMemoryBackend(t *testing.T, objects ...*types.Object) Backend {
	t.Helper()

	return NewMemoryBackend(objects...)
}

func newKVBackend(t *testing.T, objects ...*types.Object) Backend {
	t.Helper()

	db, err := leveldb.NewBuilder(hclog.NewNullLogger(), t.TempDir()).SetNoSync(true).Build()
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	backend, err := NewKVBackend(hclog.NewNullLogger(), db, 16, 1)
	require.NoError(t, err)

	if len(objects) > 0 {
		require.NoError(t, backend.Apply(&Batch{Created: objects}))
	}

	return backend
}

var backendFactories = map[string]backendFactory{
	"memory":  newMemoryBackend,
	"leveldb": newKVBackend,
}

// forEachBackend runs the test body against every backend implementation
func forEachBackend(t *testing.T, fn func(t *testing.T, newBackend backendFactory)) {
	t.Helper()

	for name, factory := range backendFactories {
		factory := factory

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fn(t, factory)
		})
	}
}

func newTestStore(backend Backend) *Store {
	return NewStore(hclog.NewNullLogger(), backend, NilMetrics())
}

// requireViolation asserts that fn panics with an InvariantViolation
// wrapping target
func requireViolation(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		require.NotNil(t, r, "expected an invariant violation")

		violation, ok := r.(*InvariantViolation)
		require.True(t, ok, "unexpected panic value %v", r)
		require.True(t, errors.Is(violation, target), "got %v, want %v", violation, target)
	}()

	fn()
}

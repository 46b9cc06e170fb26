package state

import (
	"testing"

	"github.com/dogechain-lab/objectchain/state/stypes"
	"github.com/dogechain-lab/objectchain/types"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(backend Backend) *Executor {
	return NewExecutor(hclog.NewNullLogger(), newTestStore(backend))
}

func digest(name string) types.Digest {
	return types.DigestOf([]byte(name))
}

func TestTransition_WrapUnwrap(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, newBackend backendFactory) {
		executor := newTestExecutor(newBackend(t))
		payload := []byte("sword of truth")

		var item, bag *types.Object

		_, err := executor.Execute(addr1, digest("create"), func(tr *Transition) error {
			item = tr.CreateObject(types.AddressOwner(addr1), coinType, payload)
			bag = tr.CreateObject(types.AddressOwner(addr1), types.MustParseTypeTag("0x2::Bag::Bag"), nil)

			return nil
		})
		require.NoError(t, err)
		require.Equal(t, types.InitialVersion, item.Version)

		effects, err := executor.Execute(addr1, digest("wrap"), func(tr *Transition) error {
			_, err := tr.WrapInto(item.ID, bag.ID)

			return err
		})
		require.NoError(t, err)

		assert.Equal(t, []types.ObjectRef{{ID: item.ID, Version: 2}}, effects.Wrapped)
		assert.Equal(t, []types.ObjectRef{{ID: bag.ID, Version: 2}}, effects.Mutated)
		assert.Empty(t, effects.Deleted)

		backend := executor.store.Backend()
		assert.False(t, backend.HasObject(item.ID))

		// the bag holds the wrapped state in its contents
		held, ok := backend.GetObject(bag.ID)
		require.True(t, ok)

		wrapped, err := stypes.UnmarshalWrapped(held.Contents)
		require.NoError(t, err)
		assert.Equal(t, types.SequenceNumber(2), wrapped.Version)

		effects, err = executor.Execute(addr1, digest("unwrap"), func(tr *Transition) error {
			_, err := tr.UnwrapFrom(bag.ID, types.AddressOwner(addr1))

			return err
		})
		require.NoError(t, err)

		assert.Equal(t, []types.ObjectRef{{ID: item.ID, Version: 3}}, effects.Unwrapped)
		assert.Empty(t, effects.Created)

		unwrapped, ok := backend.GetObject(item.ID)
		require.True(t, ok)

		assert.Equal(t, item.Version+2, unwrapped.Version)
		assert.Equal(t, payload, []byte(unwrapped.Contents))
		assert.True(t, coinType.Equal(unwrapped.Type))
	})
}

func TestTransition_WrapIntoErrors(t *testing.T) {
	t.Parallel()

	frozen := newObject(id3, 1)
	frozen.Owner = types.SharedImmutable

	store := newTestStore(NewMemoryBackend(newObject(id1, 1), newObject(id2, 1, 0x01), frozen))
	tr := NewTransition(store, NewTxContext(addr1, digest("tx")))

	_, err := tr.WrapInto(id1, id1)
	assert.ErrorIs(t, err, ErrWrapSelf)

	// a container the sender can't change leaves the object in place
	_, err = tr.WrapInto(id1, id3)
	assert.ErrorIs(t, err, ErrObjectImmutable)
	assert.Empty(t, store.Deleted())

	// contents that are not a wrapped record
	_, err = tr.UnwrapFrom(id2, types.AddressOwner(addr1))
	assert.ErrorIs(t, err, ErrNotContainer)
	assert.Empty(t, store.Created())
}

func TestTransition_MutationVersions(t *testing.T) {
	t.Parallel()

	executor := newTestExecutor(NewMemoryBackend())

	var id types.ObjectID

	_, err := executor.Execute(addr1, digest("create"), func(tr *Transition) error {
		id = tr.CreateObject(types.AddressOwner(addr1), coinType, []byte{0}).ID

		return nil
	})
	require.NoError(t, err)

	for i := 2; i <= 5; i++ {
		effects, err := executor.Execute(addr1, digest("mutate"+string(rune('0'+i))), func(tr *Transition) error {
			_, err := tr.MutateObject(id, []byte{byte(i)})

			return err
		})
		require.NoError(t, err)

		assert.Equal(t, []types.ObjectRef{{ID: id, Version: types.SequenceNumber(i)}}, effects.Mutated)
	}
}

func TestTransition_CreateThenMutateInOneTransaction(t *testing.T) {
	t.Parallel()

	executor := newTestExecutor(NewMemoryBackend())

	effects, err := executor.Execute(addr1, digest("tx"), func(tr *Transition) error {
		obj := tr.CreateObject(types.AddressOwner(addr1), coinType, []byte{1})

		_, err := tr.MutateObject(obj.ID, []byte{2})

		return err
	})
	require.NoError(t, err)

	// minted by the transaction, so created even past the first version
	require.Len(t, effects.Created, 1)
	assert.Equal(t, types.SequenceNumber(2), effects.Created[0].Version)
	assert.Empty(t, effects.Unwrapped)
}

func TestTransition_TransferAndOwnerIndex(t *testing.T) {
	t.Parallel()

	forEachBackend(t, func(t *testing.T, newBackend backendFactory) {
		executor := newTestExecutor(newBackend(t))
		backend := executor.store.Backend()

		var coin *types.Object

		_, err := executor.Execute(addr1, digest("mint"), func(tr *Transition) error {
			coin = tr.CreateObject(types.AddressOwner(addr1), coinType, []byte{1})

			return nil
		})
		require.NoError(t, err)

		owned := backend.ObjectsByOwner(addr1)
		require.Len(t, owned, 1)
		assert.Equal(t, coin.ID, owned[0].ID)

		_, err = executor.Execute(addr1, digest("transfer"), func(tr *Transition) error {
			if _, err := tr.TransferObject(coin.ID, addr2); err != nil {
				return err
			}

			// the index keeps showing committed ownership until flush
			assert.Len(t, backend.ObjectsByOwner(addr1), 1)
			assert.Empty(t, backend.ObjectsByOwner(addr2))

			return nil
		})
		require.NoError(t, err)

		assert.Empty(t, backend.ObjectsByOwner(addr1))

		owned = backend.ObjectsByOwner(addr2)
		require.Len(t, owned, 1)
		assert.Equal(t, types.SequenceNumber(2), owned[0].Version)

		// the previous owner may no longer touch it
		_, err = executor.Execute(addr1, digest("steal"), func(tr *Transition) error {
			_, err := tr.MutateObject(coin.ID, nil)

			return err
		})
		assert.ErrorIs(t, err, ErrNotOwner)

		_, err = executor.Execute(addr2, digest("burn"), func(tr *Transition) error {
			return tr.DeleteObject(coin.ID)
		})
		require.NoError(t, err)

		assert.Empty(t, backend.ObjectsByOwner(addr2))
		assert.False(t, backend.HasObject(coin.ID))
	})
}

func TestTransition_Freeze(t *testing.T) {
	t.Parallel()

	executor := newTestExecutor(NewMemoryBackend())

	var id types.ObjectID

	_, err := executor.Execute(addr1, digest("mint"), func(tr *Transition) error {
		id = tr.CreateObject(types.AddressOwner(addr1), coinType, nil).ID

		_, err := tr.FreezeObject(id)

		return err
	})
	require.NoError(t, err)

	obj, ok := executor.store.Backend().GetObject(id)
	require.True(t, ok)
	assert.True(t, obj.Owner.IsImmutable())

	for name, op := range map[string]func(tr *Transition) error{
		"mutate": func(tr *Transition) error {
			_, err := tr.MutateObject(id, []byte{1})

			return err
		},
		"transfer": func(tr *Transition) error {
			_, err := tr.TransferObject(id, addr2)

			return err
		},
		"delete": func(tr *Transition) error {
			return tr.DeleteObject(id)
		},
		"wrap": func(tr *Transition) error {
			_, err := tr.WrapObject(id)

			return err
		},
	} {
		_, err := executor.Execute(addr1, digest(name), op)
		assert.ErrorIs(t, err, ErrObjectImmutable, name)
	}

	// still readable by anyone
	_, err = executor.Execute(addr2, digest("read"), func(tr *Transition) error {
		_, err := tr.ReadObject(id)

		return err
	})
	assert.NoError(t, err)
}

func TestTransition_SharedMutable(t *testing.T) {
	t.Parallel()

	shared := &types.Object{ID: id1, Version: 4, Owner: types.SharedMutable, Type: coinType}
	executor := newTestExecutor(NewMemoryBackend(shared))

	effects, err := executor.Execute(addr2, digest("poke"), func(tr *Transition) error {
		_, err := tr.MutateObject(id1, []byte{9})

		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []types.ObjectRef{{ID: id1, Version: 5}}, effects.Mutated)
}

func TestTransition_Events(t *testing.T) {
	t.Parallel()

	executor := newTestExecutor(NewMemoryBackend())

	effects, err := executor.Execute(addr1, digest("events"), func(tr *Transition) error {
		tr.EmitEvent(eventType, []byte("first"))
		tr.EmitEvent(eventType, []byte("second"))

		return nil
	})
	require.NoError(t, err)

	require.Len(t, effects.Events, 2)
	assert.Equal(t, types.HexBytes("first"), effects.Events[0].Contents)
	assert.Equal(t, types.HexBytes("second"), effects.Events[1].Contents)
}

func TestTransition_ReadMissing(t *testing.T) {
	t.Parallel()

	tr := NewTransition(newTestStore(NewMemoryBackend()), NewTxContext(addr1, digest("tx")))

	_, err := tr.ReadObject(id1)
	assert.ErrorIs(t, err, ErrObjectNotFound)

	_, err = tr.MutateObject(id1, nil)
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestTxContext_FreshID(t *testing.T) {
	t.Parallel()

	ctx := NewTxContext(addr1, digest("tx"))

	first := ctx.FreshID()
	second := ctx.FreshID()

	assert.NotEqual(t, first, second)
	assert.Equal(t, types.DeriveObjectID(digest("tx"), 0), first)
	assert.Equal(t, map[types.ObjectID]struct{}{first: {}, second: {}}, ctx.CreatedIDs())

	other := NewTxContext(addr1, digest("other"))
	assert.NotEqual(t, first, other.FreshID())
}

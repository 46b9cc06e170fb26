package state

import (
	"errors"
	"testing"

	"github.com/dogechain-lab/objectchain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errAbort = errors.New("abort")

func TestExecutor_ErrorDiscardsChanges(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend(newObject(id1, 1))
	executor := newTestExecutor(backend)

	_, err := executor.Execute(addr1, digest("tx"), func(tr *Transition) error {
		tr.CreateObject(types.AddressOwner(addr1), coinType, nil)

		if _, err := tr.MutateObject(id1, []byte{7}); err != nil {
			return err
		}

		tr.EmitEvent(eventType, nil)

		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	assert.Equal(t, 1, backend.Len())

	obj, ok := backend.GetObject(id1)
	require.True(t, ok)
	assert.Equal(t, types.SequenceNumber(1), obj.Version)

	assert.Empty(t, executor.store.Created())
	assert.Empty(t, executor.store.Events())
}

func TestExecutor_InvariantViolationPanics(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend(newObject(id1, 1))
	executor := newTestExecutor(backend)

	requireViolation(t, ErrReadDeleted, func() {
		_, _ = executor.Execute(addr1, digest("tx"), func(tr *Transition) error {
			if err := tr.DeleteObject(id1); err != nil {
				return err
			}

			_, err := tr.ReadObject(id1)

			return err
		})
	})

	// the scratchpad was discarded and the executor is usable again
	assert.Empty(t, executor.store.Deleted())
	assert.True(t, backend.HasObject(id1))

	effects, err := executor.Execute(addr1, digest("next"), func(tr *Transition) error {
		_, err := tr.MutateObject(id1, []byte{1})

		return err
	})
	require.NoError(t, err)
	assert.Equal(t, digest("next"), effects.TransactionDigest)
}

func TestExecutor_EmptyTransaction(t *testing.T) {
	t.Parallel()

	executor := newTestExecutor(NewMemoryBackend())

	effects, err := executor.Execute(addr1, digest("noop"), func(*Transition) error {
		return nil
	})
	require.NoError(t, err)
	assert.True(t, effects.IsEmpty())
}

func TestExecutor_BackendFailure(t *testing.T) {
	t.Parallel()

	executor := newTestExecutor(failingBackend{NewMemoryBackend()})

	_, err := executor.Execute(addr1, digest("tx"), func(tr *Transition) error {
		tr.CreateObject(types.AddressOwner(addr1), coinType, nil)

		return nil
	})
	assert.ErrorIs(t, err, errDiskFull)
	assert.Empty(t, executor.store.Created())
}

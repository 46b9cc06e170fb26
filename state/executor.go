package state

import (
	"fmt"
	"sync"

	"github.com/dogechain-lab/objectchain/types"
	"github.com/hashicorp/go-hclog"
)

// Executor runs transactions against a Store one after another: each runs
// on a clean scratchpad that is flushed on success and discarded otherwise.
type Executor struct {
	logger hclog.Logger
	store  *Store

	lock sync.Mutex
}

func NewExecutor(logger hclog.Logger, store *Store) *Executor {
	return &Executor{
		logger: logger.Named("executor"),
		store:  store,
	}
}

// Execute runs fn as the transaction identified by digest. An error from fn
// aborts the transaction with nothing committed. An InvariantViolation
// raised while running or flushing is logged and re-panicked.
func (e *Executor) Execute(
	sender types.Address,
	digest types.Digest,
	fn func(tr *Transition) error,
) (effects *Effects, err error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.store.Reset()

	defer func() {
		if r := recover(); r != nil {
			e.store.Reset()

			e.logger.Error("transaction aborted", "digest", digest, "panic", r)

			panic(r)
		}
	}()

	ctx := NewTxContext(sender, digest)

	if err := fn(NewTransition(e.store, ctx)); err != nil {
		e.store.Reset()

		e.logger.Debug("transaction failed", "digest", digest, "err", err)

		return nil, fmt.Errorf("transaction %s failed: %w", digest, err)
	}

	e.store.SetCreatedObjectIDs(ctx.CreatedIDs())

	if effects, err = e.store.Flush(); err != nil {
		e.store.Reset()

		return nil, err
	}

	effects.TransactionDigest = digest

	e.logger.Debug("transaction committed",
		"digest", digest,
		"created", len(effects.Created),
		"mutated", len(effects.Mutated),
		"deleted", len(effects.Deleted),
	)

	return effects, nil
}

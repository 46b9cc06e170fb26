package state

import (
	"fmt"

	"github.com/dogechain-lab/objectchain/types"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Store overlays a transaction scratchpad on a persistent backend. Reads see
// the transaction's own writes; nothing reaches the backend before Flush.
//
// A Store serves one transaction at a time and holds no lock of its own.
type Store struct {
	logger  hclog.Logger
	backend Backend
	metrics *Metrics
	pad     *scratchpad
}

var _ Storage = (*Store)(nil)

func NewStore(logger hclog.Logger, backend Backend, metrics *Metrics) *Store {
	if metrics == nil {
		metrics = NilMetrics()
	}

	return &Store{
		logger:  logger.Named("store"),
		backend: backend,
		metrics: metrics,
		pad:     newScratchpad(),
	}
}

// Backend returns the committed object map
func (s *Store) Backend() Backend {
	return s.backend
}

// ObjectsByOwner lists the committed objects owned by the address. Buffered
// writes of the running transaction are not visible here until Flush.
func (s *Store) ObjectsByOwner(owner types.Address) []*types.Object {
	return s.backend.ObjectsByOwner(owner)
}

func (s *Store) Reset() {
	if !s.pad.isEmpty() {
		s.logger.Debug("discarding scratchpad",
			"created", len(s.pad.created),
			"updated", len(s.pad.updated),
			"deleted", len(s.pad.deleted),
			"events", len(s.pad.events),
		)

		s.metrics.ResetsInc()
	}

	s.pad = newScratchpad()
}

func (s *Store) ReadObject(id types.ObjectID) (*types.Object, bool) {
	if _, ok := s.pad.deleted[id]; ok {
		panic(violation("read", id, ErrReadDeleted))
	}

	if obj, ok := s.pad.updated[id]; ok {
		return obj.Copy(), true
	}

	if obj, ok := s.pad.created[id]; ok {
		return obj.Copy(), true
	}

	return s.backend.GetObject(id)
}

func (s *Store) SetCreatedObjectIDs(ids map[types.ObjectID]struct{}) {
	s.pad.createdObjectIDs = make(map[types.ObjectID]struct{}, len(ids))

	for id := range ids {
		s.pad.createdObjectIDs[id] = struct{}{}
	}
}

func (s *Store) WriteObject(obj *types.Object) {
	if _, ok := s.pad.deleted[obj.ID]; ok {
		panic(violation("write", obj.ID, ErrWriteDeleted))
	}

	if s.backend.HasObject(obj.ID) {
		s.pad.updated[obj.ID] = obj.Copy()
	} else {
		s.pad.created[obj.ID] = obj.Copy()
	}
}

// DeleteObject records the deletion. Deleting an object created by the same
// transaction drops its buffered record so the id stays in a single set.
func (s *Store) DeleteObject(id types.ObjectID, version types.SequenceNumber, kind types.DeleteKind) {
	if _, ok := s.pad.updated[id]; ok {
		panic(violation("delete", id, ErrDeleteUpdated))
	}

	if _, ok := s.pad.deleted[id]; ok {
		panic(violation("delete", id, ErrDeleteTwice))
	}

	delete(s.pad.created, id)

	s.pad.deleted[id] = types.DeletedEntry{Version: version, Kind: kind}
}

func (s *Store) LogEvent(event *types.Event) {
	s.pad.events = append(s.pad.events, event)
}

// Flush commits the scratchpad to the backend and clears it. Broken
// preconditions panic with an InvariantViolation listing every offending
// id. A backend failure is returned and leaves the scratchpad intact.
func (s *Store) Flush() (*Effects, error) {
	var result *multierror.Error

	created := sortedIDs(s.pad.created)
	for _, id := range created {
		if s.backend.HasObject(id) {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrCreatedExists, id))
		}
	}

	updated := sortedIDs(s.pad.updated)
	for _, id := range updated {
		if !s.backend.HasObject(id) {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrUpdatedNotFound, id))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		panic(violation("flush", types.ZeroObjectID, err))
	}

	batch := &Batch{
		Created: make([]*types.Object, 0, len(created)),
		Updated: make([]*types.Object, 0, len(updated)),
		Deleted: sortedIDs(s.pad.deleted),
	}

	for _, id := range created {
		batch.Created = append(batch.Created, s.pad.created[id])
	}

	for _, id := range updated {
		batch.Updated = append(batch.Updated, s.pad.updated[id])
	}

	effects := s.Effects()

	if err := s.backend.Apply(batch); err != nil {
		s.logger.Error("failed to apply scratchpad", "err", err)

		return nil, fmt.Errorf("failed to apply scratchpad: %w", err)
	}

	s.metrics.FlushesInc()
	s.metrics.AddCreatedObjects(len(batch.Created))
	s.metrics.AddUpdatedObjects(len(batch.Updated))
	s.metrics.AddDeletedObjects(len(batch.Deleted))
	s.metrics.AddEvents(len(s.pad.events))
	s.metrics.ObserveBatchSize(batch.Len())

	s.logger.Debug("flushed scratchpad",
		"created", len(batch.Created),
		"updated", len(batch.Updated),
		"deleted", len(batch.Deleted),
		"events", len(s.pad.events),
	)

	s.pad = newScratchpad()

	return effects, nil
}

// Created returns copies of the buffered new objects
func (s *Store) Created() map[types.ObjectID]*types.Object {
	return copyObjects(s.pad.created)
}

// Updated returns copies of the buffered new versions of existing objects
func (s *Store) Updated() map[types.ObjectID]*types.Object {
	return copyObjects(s.pad.updated)
}

func (s *Store) Deleted() map[types.ObjectID]types.DeletedEntry {
	deleted := make(map[types.ObjectID]types.DeletedEntry, len(s.pad.deleted))
	for id, entry := range s.pad.deleted {
		deleted[id] = entry
	}

	return deleted
}

// Events returns the logged events in issue order
func (s *Store) Events() []*types.Event {
	return append([]*types.Event(nil), s.pad.events...)
}

// CreatedKeys lists the buffered new object ids in order
func (s *Store) CreatedKeys() []types.ObjectID {
	return sortedIDs(s.pad.created)
}

func copyObjects(m map[types.ObjectID]*types.Object) map[types.ObjectID]*types.Object {
	out := make(map[types.ObjectID]*types.Object, len(m))
	for id, obj := range m {
		out[id] = obj.Copy()
	}

	return out
}

package state

import (
	"sort"

	"github.com/dogechain-lab/objectchain/types"
)

// scratchpad buffers the changes of one transaction attempt. An id lives in
// at most one of created, updated and deleted.
type scratchpad struct {
	created          map[types.ObjectID]*types.Object
	updated          map[types.ObjectID]*types.Object
	deleted          map[types.ObjectID]types.DeletedEntry
	events           []*types.Event
	createdObjectIDs map[types.ObjectID]struct{}
}

func newScratchpad() *scratchpad {
	return &scratchpad{
		created: make(map[types.ObjectID]*types.Object),
		updated: make(map[types.ObjectID]*types.Object),
		deleted: make(map[types.ObjectID]types.DeletedEntry),
	}
}

func (s *scratchpad) isEmpty() bool {
	return len(s.created) == 0 && len(s.updated) == 0 && len(s.deleted) == 0 && len(s.events) == 0
}

func sortedIDs[V any](m map[types.ObjectID]V) []types.ObjectID {
	ids := make([]types.ObjectID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Less(ids[j])
	})

	return ids
}

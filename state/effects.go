package state

import (
	"github.com/dogechain-lab/objectchain/types"
)

// Effects summarizes what a transaction changed
type Effects struct {
	TransactionDigest types.Digest      `json:"transaction_digest"`
	Created           []types.ObjectRef `json:"created"`
	Unwrapped         []types.ObjectRef `json:"unwrapped"`
	Mutated           []types.ObjectRef `json:"mutated"`
	Deleted           []types.ObjectRef `json:"deleted"`
	Wrapped           []types.ObjectRef `json:"wrapped"`
	Events            []*types.Event    `json:"events"`
}

// IsEmpty is true when the transaction touched nothing
func (e *Effects) IsEmpty() bool {
	return len(e.Created) == 0 &&
		len(e.Unwrapped) == 0 &&
		len(e.Mutated) == 0 &&
		len(e.Deleted) == 0 &&
		len(e.Wrapped) == 0 &&
		len(e.Events) == 0
}

// Effects derives the effects of the buffered changes. A created object
// that the transaction did not mint and whose version is past the first is
// an unwrapped one.
func (s *Store) Effects() *Effects {
	e := &Effects{
		Created:   []types.ObjectRef{},
		Unwrapped: []types.ObjectRef{},
		Mutated:   []types.ObjectRef{},
		Deleted:   []types.ObjectRef{},
		Wrapped:   []types.ObjectRef{},
		Events:    s.Events(),
	}

	for _, id := range sortedIDs(s.pad.created) {
		obj := s.pad.created[id]

		_, minted := s.pad.createdObjectIDs[id]
		if !minted && obj.Version > types.InitialVersion {
			e.Unwrapped = append(e.Unwrapped, obj.Reference())
		} else {
			e.Created = append(e.Created, obj.Reference())
		}
	}

	for _, id := range sortedIDs(s.pad.updated) {
		e.Mutated = append(e.Mutated, s.pad.updated[id].Reference())
	}

	for _, id := range sortedIDs(s.pad.deleted) {
		entry := s.pad.deleted[id]
		ref := types.ObjectRef{ID: id, Version: entry.Version}

		if entry.Kind == types.DeleteKindWrap {
			e.Wrapped = append(e.Wrapped, ref)
		} else {
			e.Deleted = append(e.Deleted, ref)
		}
	}

	return e
}

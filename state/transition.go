package state

import (
	"errors"
	"fmt"

	"github.com/dogechain-lab/objectchain/state/stypes"
	"github.com/dogechain-lab/objectchain/types"
)

var (
	ErrObjectNotFound  = errors.New("object not found")
	ErrObjectImmutable = errors.New("object is immutable")
	ErrNotOwner        = errors.New("object is not owned by the sender")
	ErrWrapSelf        = errors.New("object can't wrap itself")
	ErrNotContainer    = errors.New("object holds no wrapped object")
)

// Transition performs object level operations on behalf of the execution
// layer, applying the version rules: a new object starts at version one and
// every change to it advances the version by one.
type Transition struct {
	storage Storage
	ctx     *TxContext
}

func NewTransition(storage Storage, ctx *TxContext) *Transition {
	return &Transition{
		storage: storage,
		ctx:     ctx,
	}
}

func (t *Transition) Context() *TxContext {
	return t.ctx
}

func (t *Transition) ReadObject(id types.ObjectID) (*types.Object, error) {
	obj, ok := t.storage.ReadObject(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, id)
	}

	return obj, nil
}

// usable loads an object the sender may change
func (t *Transition) usable(id types.ObjectID) (*types.Object, error) {
	obj, err := t.ReadObject(id)
	if err != nil {
		return nil, err
	}

	switch obj.Owner.Kind {
	case types.OwnerSharedImmutable:
		return nil, fmt.Errorf("%w: %s", ErrObjectImmutable, id)
	case types.OwnerAddress:
		if obj.Owner.Address != t.ctx.Sender() {
			return nil, fmt.Errorf("%w: %s owned by %s", ErrNotOwner, id, obj.Owner.Address)
		}
	}

	return obj, nil
}

// CreateObject mints a new object at the initial version
func (t *Transition) CreateObject(owner types.Owner, typ *types.TypeTag, contents []byte) *types.Object {
	obj := &types.Object{
		ID:       t.ctx.FreshID(),
		Version:  types.InitialVersion,
		Owner:    owner,
		Type:     typ,
		Contents: types.CopyBytes(contents),
	}

	t.storage.WriteObject(obj)

	return obj
}

// MutateObject replaces the contents of an object
func (t *Transition) MutateObject(id types.ObjectID, contents []byte) (*types.Object, error) {
	obj, err := t.usable(id)
	if err != nil {
		return nil, err
	}

	obj.Contents = types.CopyBytes(contents)
	obj.Version = obj.Version.Increment()

	t.storage.WriteObject(obj)

	return obj, nil
}

// TransferObject hands an object to a new owner
func (t *Transition) TransferObject(id types.ObjectID, recipient types.Address) (*types.Object, error) {
	obj, err := t.usable(id)
	if err != nil {
		return nil, err
	}

	obj.Owner = types.AddressOwner(recipient)
	obj.Version = obj.Version.Increment()

	t.storage.WriteObject(obj)

	return obj, nil
}

// FreezeObject makes an object immutable for good
func (t *Transition) FreezeObject(id types.ObjectID) (*types.Object, error) {
	obj, err := t.usable(id)
	if err != nil {
		return nil, err
	}

	obj.Owner = types.SharedImmutable
	obj.Version = obj.Version.Increment()

	t.storage.WriteObject(obj)

	return obj, nil
}

// DeleteObject removes an object, recording the version it would have
// reached
func (t *Transition) DeleteObject(id types.ObjectID) error {
	obj, err := t.usable(id)
	if err != nil {
		return err
	}

	t.storage.DeleteObject(id, obj.Version.Increment(), types.DeleteKindNormal)

	return nil
}

// WrapObject removes an object from the store and returns its state for
// embedding in another object's contents
func (t *Transition) WrapObject(id types.ObjectID) (*types.WrappedObject, error) {
	obj, err := t.usable(id)
	if err != nil {
		return nil, err
	}

	version := obj.Version.Increment()

	t.storage.DeleteObject(id, version, types.DeleteKindWrap)

	return &types.WrappedObject{
		ID:       obj.ID,
		Version:  version,
		Type:     obj.Type,
		Contents: types.CopyBytes(obj.Contents),
	}, nil
}

// UnwrapObject puts a wrapped object back into the store one version past
// the wrap
func (t *Transition) UnwrapObject(w *types.WrappedObject, owner types.Owner) *types.Object {
	obj := &types.Object{
		ID:       w.ID,
		Version:  w.Version.Increment(),
		Owner:    owner,
		Type:     w.Type,
		Contents: types.CopyBytes(w.Contents),
	}

	t.storage.WriteObject(obj)

	return obj
}

// WrapInto wraps an object and keeps its encoded state as the contents of
// the container, replacing whatever the container held
func (t *Transition) WrapInto(id, container types.ObjectID) (*types.Object, error) {
	if id == container {
		return nil, fmt.Errorf("%w: %s", ErrWrapSelf, id)
	}

	if _, err := t.usable(container); err != nil {
		return nil, err
	}

	w, err := t.WrapObject(id)
	if err != nil {
		return nil, err
	}

	return t.MutateObject(container, stypes.MarshalWrapped(w))
}

// UnwrapFrom restores the object kept in the container's contents under the
// given owner and empties the container
func (t *Transition) UnwrapFrom(container types.ObjectID, owner types.Owner) (*types.Object, error) {
	holder, err := t.usable(container)
	if err != nil {
		return nil, err
	}

	w, err := stypes.UnmarshalWrapped(holder.Contents)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotContainer, container, err)
	}

	obj := t.UnwrapObject(w, owner)

	if _, err := t.MutateObject(container, nil); err != nil {
		return nil, err
	}

	return obj, nil
}

func (t *Transition) EmitEvent(typ *types.TypeTag, contents []byte) {
	t.storage.LogEvent(&types.Event{
		Type:     typ,
		Contents: types.CopyBytes(contents),
	})
}

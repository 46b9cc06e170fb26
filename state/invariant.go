package state

import (
	"errors"
	"fmt"

	"github.com/dogechain-lab/objectchain/types"
)

var (
	ErrReadDeleted     = errors.New("read of an object deleted in this transaction")
	ErrWriteDeleted    = errors.New("write of an object deleted in this transaction")
	ErrDeleteUpdated   = errors.New("delete of an object updated in this transaction")
	ErrDeleteTwice     = errors.New("object deleted twice in this transaction")
	ErrCreatedExists   = errors.New("created object already exists in the store")
	ErrUpdatedNotFound = errors.New("updated object missing from the store")
)

// InvariantViolation is the panic value raised when the execution layer
// breaks the scratchpad contract. It aborts the transaction and is never
// returned as an error.
type InvariantViolation struct {
	Op  string
	ID  types.ObjectID
	Err error
}

func (v *InvariantViolation) Error() string {
	if v.ID == types.ZeroObjectID {
		return fmt.Sprintf("invariant violation in %s: %v", v.Op, v.Err)
	}

	return fmt.Sprintf("invariant violation in %s of %s: %v", v.Op, v.ID, v.Err)
}

func (v *InvariantViolation) Unwrap() error {
	return v.Err
}

func violation(op string, id types.ObjectID, err error) *InvariantViolation {
	return &InvariantViolation{Op: op, ID: id, Err: err}
}

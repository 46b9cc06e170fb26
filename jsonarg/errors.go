package jsonarg

import (
	"errors"
	"fmt"

	"github.com/dogechain-lab/objectchain/types"
)

var (
	ErrValidation     = errors.New("invalid json argument")
	ErrTypeMismatch   = errors.New("argument does not match the declared type")
	ErrArgumentCount  = errors.New("wrong number of arguments")
	ErrObjectIDFormat = errors.New("malformed object id argument")
	ErrArgumentOrder  = errors.New("object parameter follows a pure parameter")
	ErrEmptySignature = errors.New("function signature has no parameters")
)

// noIndex marks errors raised outside of a call
const noIndex = -1

// ValidationError rejects a JSON value at argument construction
type ValidationError struct {
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s not allowed: %s", e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TypeMismatchError is returned when a value can't be encoded as the
// declared type
type TypeMismatchError struct {
	Index    int
	Expected *types.TypeTag
	Value    string
	Reason   string
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("unable to encode %s as %s", e.Value, e.Expected)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	if e.Index != noIndex {
		msg = fmt.Sprintf("argument %d: %s", e.Index, msg)
	}

	return msg
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

type ArgumentCountError struct {
	Expected int
	Actual   int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("expected %d args, found %d", e.Expected, e.Actual)
}

func (e *ArgumentCountError) Is(target error) bool {
	return target == ErrArgumentCount
}

type ObjectIDFormatError struct {
	Index int
	Value string
	Err   error
}

func (e *ObjectIDFormatError) Error() string {
	return fmt.Sprintf(
		"unable to parse argument %d %s as object id, expected %d byte hex string prefixed with 0x: %v",
		e.Index, e.Value, types.ObjectIDLength, e.Err,
	)
}

func (e *ObjectIDFormatError) Is(target error) bool {
	return target == ErrObjectIDFormat
}

func (e *ObjectIDFormatError) Unwrap() error {
	return e.Err
}

type ArgumentOrderError struct {
	Index     int
	Parameter *types.TypeTag
}

func (e *ArgumentOrderError) Error() string {
	return fmt.Sprintf("parameter %d of type %s follows a pure parameter", e.Index, e.Parameter)
}

func (e *ArgumentOrderError) Is(target error) bool {
	return target == ErrArgumentOrder
}

package jsonarg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dogechain-lab/objectchain/catalog"
	"github.com/dogechain-lab/objectchain/helper/hex"
	"github.com/dogechain-lab/objectchain/types"
)

var errNotString = errors.New("not a string")

// ResolveFunctionArgs splits a call's arguments into the ids of the object
// arguments, which form a prefix of the parameter list, and the canonical
// encodings of the pure arguments that follow them. The trailing context
// parameter of the signature takes no argument.
func ResolveFunctionArgs(
	sig *types.FunctionSignature,
	args []*Argument,
) ([]types.ObjectID, [][]byte, error) {
	if len(sig.Parameters) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrEmptySignature, sig.Name)
	}

	params := sig.CallParameters()
	if len(args) != len(params) {
		return nil, nil, &ArgumentCountError{Expected: len(params), Actual: len(args)}
	}

	split := pureArgsStart(params)

	for i := split; i < len(params); i++ {
		if !params[i].IsPrimitive() {
			return nil, nil, &ArgumentOrderError{Index: i, Parameter: params[i]}
		}
	}

	objectIDs := make([]types.ObjectID, 0, split)

	for i := 0; i < split; i++ {
		id, err := args[i].ObjectID()
		if err != nil {
			return nil, nil, &ObjectIDFormatError{Index: i, Value: args[i].String(), Err: err}
		}

		objectIDs = append(objectIDs, id)
	}

	pureArgs := make([][]byte, 0, len(params)-split)

	for i := split; i < len(params); i++ {
		encoded, err := args[i].ToBytes(params[i])
		if err != nil {
			var mismatchErr *TypeMismatchError
			if errors.As(err, &mismatchErr) {
				mismatchErr.Index = i
			}

			return nil, nil, err
		}

		pureArgs = append(pureArgs, encoded)
	}

	return objectIDs, pureArgs, nil
}

// ResolveMoveFunctionArgs looks the function up in the catalogue and
// resolves the arguments against its signature
func ResolveMoveFunctionArgs(
	cat catalog.Catalog,
	pkg types.ObjectID,
	module string,
	function string,
	args []*Argument,
) ([]types.ObjectID, [][]byte, error) {
	sig, err := cat.FunctionSignature(pkg, module, function)
	if err != nil {
		return nil, nil, err
	}

	return ResolveFunctionArgs(sig, args)
}

// pureArgsStart returns the index of the first primitive parameter, or
// len(params) when every parameter is an object
func pureArgsStart(params []*types.TypeTag) int {
	for i, p := range params {
		if p.IsPrimitive() {
			return i
		}
	}

	return len(params)
}

// ObjectID reads the argument as a 0x marked object id
func (a *Argument) ObjectID() (types.ObjectID, error) {
	if a.value.kind != KindString {
		return types.ObjectID{}, errNotString
	}

	s := strings.ToLower(strings.TrimSpace(a.value.s))
	if !strings.HasPrefix(s, hex.Prefix) {
		return types.ObjectID{}, types.ErrMissingHexPrefix
	}

	return types.ObjectIDFromHex(s)
}

package stypes

import (
	"errors"
	"fmt"

	"github.com/dogechain-lab/fastrlp"
	"github.com/dogechain-lab/objectchain/types"
)

var ErrInvalidLength = errors.New("invalid field length")

// MarshalObject encodes an object record for the persistent store
func MarshalObject(obj *types.Object) []byte {
	ar := fastrlp.DefaultArenaPool.Get()
	defer fastrlp.DefaultArenaPool.Put(ar)

	v := ar.NewArray()
	v.Set(ar.NewBytes(obj.ID.Bytes()))
	v.Set(ar.NewUint(uint64(obj.Version)))
	v.Set(ar.NewUint(uint64(obj.Owner.Kind)))
	v.Set(ar.NewBytes(obj.Owner.Address.Bytes()))
	v.Set(ar.NewBytes(typeBytes(obj.Type)))
	v.Set(ar.NewBytes(obj.Contents))

	return v.MarshalTo(nil)
}

var objectParserPool fastrlp.ParserPool

// UnmarshalObject decodes a record written by MarshalObject
func UnmarshalObject(b []byte) (*types.Object, error) {
	p := objectParserPool.Get()
	defer objectParserPool.Put(p)

	v, err := p.Parse(b)
	if err != nil {
		return nil, err
	}

	elems, err := v.GetElems()
	if err != nil {
		return nil, err
	}

	if len(elems) < 6 {
		return nil, fmt.Errorf("incorrect number of elements to decode object, expected 6 but found %d",
			len(elems))
	}

	obj := &types.Object{}

	// id
	if obj.ID, err = objectID(elems[0]); err != nil {
		return nil, err
	}
	// version
	version, err := elems[1].GetUint64()
	if err != nil {
		return nil, err
	}

	obj.Version = types.SequenceNumber(version)
	// owner
	kind, err := elems[2].GetUint64()
	if err != nil {
		return nil, err
	}

	obj.Owner.Kind = types.OwnerKind(kind)

	addr, err := elems[3].GetBytes(nil)
	if err != nil {
		return nil, err
	}

	if len(addr) != types.AddressLength {
		return nil, fmt.Errorf("%w: owner address %d", ErrInvalidLength, len(addr))
	}

	obj.Owner.Address = types.BytesToAddress(addr)
	// type
	if obj.Type, err = typeTag(elems[4]); err != nil {
		return nil, err
	}
	// contents
	if obj.Contents, err = elems[5].GetBytes(nil); err != nil {
		return nil, err
	}

	return obj, nil
}

// MarshalWrapped encodes the state of a wrapped object, the form kept
// inside the contents of the wrapping object
func MarshalWrapped(w *types.WrappedObject) []byte {
	ar := fastrlp.DefaultArenaPool.Get()
	defer fastrlp.DefaultArenaPool.Put(ar)

	v := ar.NewArray()
	v.Set(ar.NewBytes(w.ID.Bytes()))
	v.Set(ar.NewUint(uint64(w.Version)))
	v.Set(ar.NewBytes(typeBytes(w.Type)))
	v.Set(ar.NewBytes(w.Contents))

	return v.MarshalTo(nil)
}

var wrappedParserPool fastrlp.ParserPool

func UnmarshalWrapped(b []byte) (*types.WrappedObject, error) {
	p := wrappedParserPool.Get()
	defer wrappedParserPool.Put(p)

	v, err := p.Parse(b)
	if err != nil {
		return nil, err
	}

	elems, err := v.GetElems()
	if err != nil {
		return nil, err
	}

	if len(elems) < 4 {
		return nil, fmt.Errorf("incorrect number of elements to decode wrapped object, expected 4 but found %d",
			len(elems))
	}

	w := &types.WrappedObject{}

	if w.ID, err = objectID(elems[0]); err != nil {
		return nil, err
	}

	version, err := elems[1].GetUint64()
	if err != nil {
		return nil, err
	}

	w.Version = types.SequenceNumber(version)

	if w.Type, err = typeTag(elems[2]); err != nil {
		return nil, err
	}

	if w.Contents, err = elems[3].GetBytes(nil); err != nil {
		return nil, err
	}

	return w, nil
}

func typeBytes(t *types.TypeTag) []byte {
	if t == nil {
		return nil
	}

	return []byte(t.String())
}

func typeTag(v *fastrlp.Value) (*types.TypeTag, error) {
	raw, err := v.GetBytes(nil)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, nil
	}

	return types.ParseTypeTag(string(raw))
}

func objectID(v *fastrlp.Value) (types.ObjectID, error) {
	raw, err := v.GetBytes(nil)
	if err != nil {
		return types.ObjectID{}, err
	}

	if len(raw) != types.ObjectIDLength {
		return types.ObjectID{}, fmt.Errorf("%w: object id %d", ErrInvalidLength, len(raw))
	}

	return types.BytesToObjectID(raw), nil
}

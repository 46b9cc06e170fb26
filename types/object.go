package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dogechain-lab/objectchain/helper/hex"
)

var ErrInvalidOwner = errors.New("invalid owner")

// OwnerKind tells who may use an object
type OwnerKind uint8

const (
	// OwnerAddress objects belong to a single account
	OwnerAddress OwnerKind = iota
	// OwnerSharedImmutable objects are frozen and readable by anyone
	OwnerSharedImmutable
	// OwnerSharedMutable objects are writable by anyone
	OwnerSharedMutable
)

type Owner struct {
	Kind    OwnerKind
	Address Address
}

func AddressOwner(addr Address) Owner {
	return Owner{Kind: OwnerAddress, Address: addr}
}

var (
	SharedImmutable = Owner{Kind: OwnerSharedImmutable}
	SharedMutable   = Owner{Kind: OwnerSharedMutable}
)

func (o Owner) IsImmutable() bool {
	return o.Kind == OwnerSharedImmutable
}

func (o Owner) String() string {
	switch o.Kind {
	case OwnerSharedImmutable:
		return "immutable"
	case OwnerSharedMutable:
		return "shared"
	default:
		return o.Address.String()
	}
}

func (o Owner) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Owner) UnmarshalText(input []byte) error {
	switch s := strings.TrimSpace(string(input)); s {
	case "immutable":
		*o = SharedImmutable
	case "shared":
		*o = SharedMutable
	default:
		addr, err := AddressFromHex(s)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidOwner, s, err)
		}

		*o = AddressOwner(addr)
	}

	return nil
}

// HexBytes is a byte slice rendered as 0x hex in text encodings
type HexBytes []byte

func (b HexBytes) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToHex(b)), nil
}

func (b *HexBytes) UnmarshalText(input []byte) error {
	buf, err := hex.DecodeHex(string(input))
	if err != nil {
		return err
	}

	*b = buf

	return nil
}

// Object is a versioned unit of ledger state
type Object struct {
	ID       ObjectID       `json:"id"`
	Version  SequenceNumber `json:"version"`
	Owner    Owner          `json:"owner"`
	Type     *TypeTag       `json:"type"`
	Contents HexBytes       `json:"contents"`
}

// Copy returns a deep copy so callers can't alias buffered records
func (o *Object) Copy() *Object {
	if o == nil {
		return nil
	}

	c := *o
	c.Contents = CopyBytes(o.Contents)

	return &c
}

// Reference identifies a specific version of an object
func (o *Object) Reference() ObjectRef {
	return ObjectRef{ID: o.ID, Version: o.Version}
}

type ObjectRef struct {
	ID      ObjectID       `json:"id"`
	Version SequenceNumber `json:"version"`
}

func (r ObjectRef) String() string {
	return r.ID.String() + "@" + r.Version.String()
}

// DeleteKind records why an object left the store
type DeleteKind uint8

const (
	// DeleteKindNormal is a plain deletion
	DeleteKindNormal DeleteKind = iota
	// DeleteKindWrap folds the object into another object's contents
	DeleteKindWrap
	// DeleteKindUnwrapRecreate is the inverse of a wrap, modeled as a
	// create after a delete
	DeleteKindUnwrapRecreate
)

func (k DeleteKind) String() string {
	switch k {
	case DeleteKindNormal:
		return "normal"
	case DeleteKindWrap:
		return "wrap"
	case DeleteKindUnwrapRecreate:
		return "unwrap-recreate"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// DeletedEntry is the record kept for a deleted id
type DeletedEntry struct {
	Version SequenceNumber
	Kind    DeleteKind
}

// WrappedObject is the state of an object while it lives inside another
// object's contents
type WrappedObject struct {
	ID       ObjectID
	Version  SequenceNumber
	Type     *TypeTag
	Contents []byte
}

// Event is emitted by execution and kept in issue order
type Event struct {
	Type     *TypeTag `json:"type"`
	Contents HexBytes `json:"contents"`
}

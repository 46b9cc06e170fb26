package types

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dogechain-lab/objectchain/helper/hex"
	"golang.org/x/crypto/sha3"
)

const (
	// AddressLength is the byte width of account addresses and object ids
	AddressLength = 20
	// ObjectIDLength equals the address width, ids share the address space
	ObjectIDLength = AddressLength
	// DigestLength is the byte width of transaction digests
	DigestLength = 32
)

var (
	ErrMissingHexPrefix = errors.New("missing 0x prefix")
	ErrEmptyHex         = errors.New("no hex digits after 0x prefix")
	ErrHexTooLong       = errors.New("hex value exceeds fixed width")
)

type (
	Address        [AddressLength]byte
	ObjectID       [ObjectIDLength]byte
	Digest         [DigestLength]byte
	SequenceNumber uint64
)

var (
	ZeroAddress  = Address{}
	ZeroObjectID = ObjectID{}
)

// InitialVersion is the version of a freshly created object
const InitialVersion SequenceNumber = 1

// Increment returns the next version on the object lifeline
func (s SequenceNumber) Increment() SequenceNumber {
	return s + 1
}

func (s SequenceNumber) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// decodeFixedHex decodes a 0x marked hex literal into a fixed width buffer.
// Short input is left padded with zeroes.
func decodeFixedHex(str string, width int) ([]byte, error) {
	str = strings.TrimSpace(str)

	if !hex.Has0xPrefix(str) {
		return nil, ErrMissingHexPrefix
	}

	digits := str[2:]
	if len(digits) == 0 {
		return nil, ErrEmptyHex
	}

	buf, err := hex.DecodeHexPadded(digits)
	if err != nil {
		return nil, err
	}

	if len(buf) > width {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrHexTooLong, len(buf), width)
	}

	return leftPad(buf, width), nil
}

// AddressFromHex parses a 0x marked address, shorter forms are left padded
func AddressFromHex(str string) (Address, error) {
	buf, err := decodeFixedHex(str, AddressLength)
	if err != nil {
		return Address{}, err
	}

	return BytesToAddress(buf), nil
}

func BytesToAddress(b []byte) Address {
	var a Address

	size := len(b)
	min := min(size, AddressLength)

	copy(a[AddressLength-min:], b[len(b)-min:])

	return a
}

func StringToAddress(str string) Address {
	a, _ := AddressFromHex(str)

	return a
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) String() string {
	return hex.EncodeToHex(a[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(input []byte) error {
	v, err := AddressFromHex(string(input))
	if err != nil {
		return err
	}

	*a = v

	return nil
}

// ObjectIDFromHex parses a 0x marked object id, shorter forms are left padded
func ObjectIDFromHex(str string) (ObjectID, error) {
	buf, err := decodeFixedHex(str, ObjectIDLength)
	if err != nil {
		return ObjectID{}, err
	}

	return BytesToObjectID(buf), nil
}

func BytesToObjectID(b []byte) ObjectID {
	var id ObjectID

	size := len(b)
	min := min(size, ObjectIDLength)

	copy(id[ObjectIDLength-min:], b[len(b)-min:])

	return id
}

func StringToObjectID(str string) ObjectID {
	id, _ := ObjectIDFromHex(str)

	return id
}

func (id ObjectID) Bytes() []byte {
	return id[:]
}

func (id ObjectID) String() string {
	return hex.EncodeToHex(id[:])
}

// Less orders ids by their bytes
func (id ObjectID) Less(other ObjectID) bool {
	for i := range id {
		if id[i] != other[i] {
			return id[i] < other[i]
		}
	}

	return false
}

func (id ObjectID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ObjectID) UnmarshalText(input []byte) error {
	v, err := ObjectIDFromHex(string(input))
	if err != nil {
		return err
	}

	*id = v

	return nil
}

// DeriveObjectID returns the id of the counter-th object created by the
// transaction with the given digest
func DeriveObjectID(digest Digest, counter uint64) ObjectID {
	var index [8]byte

	binary.LittleEndian.PutUint64(index[:], counter)

	hash := sha3.New256()
	hash.Write(digest[:])
	hash.Write(index[:])

	return BytesToObjectID(hash.Sum(nil)[:ObjectIDLength])
}

// DigestOf hashes arbitrary payloads into a transaction digest
func DigestOf(payloads ...[]byte) Digest {
	var d Digest

	hash := sha3.New256()
	for _, p := range payloads {
		hash.Write(p)
	}

	copy(d[:], hash.Sum(nil))

	return d
}

func (d Digest) Bytes() []byte {
	return d[:]
}

func (d Digest) String() string {
	return hex.EncodeToHex(d[:])
}

func min(i, j int) int {
	if i < j {
		return i
	}

	return j
}

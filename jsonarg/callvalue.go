package jsonarg

import (
	"github.com/dogechain-lab/objectchain/types"
	"github.com/dogechain-lab/objectchain/types/bcs"
	"github.com/holiman/uint256"
)

// CallValue is an argument resolved against its declared type, ready to
// be written in canonical form
type CallValue interface {
	callValue()
}

type (
	BoolCall     bool
	U8Call       uint8
	U64Call      uint64
	U128Call     struct{ uint256.Int } // only the low 128 bits are set
	AddressCall  types.Address
	ObjectIDCall types.ObjectID
	VectorCall   []CallValue
)

func (BoolCall) callValue()     {}
func (U8Call) callValue()       {}
func (U64Call) callValue()      {}
func (U128Call) callValue()     {}
func (AddressCall) callValue()  {}
func (ObjectIDCall) callValue() {}
func (VectorCall) callValue()   {}

// encodeCallValue writes cv as the declared type. The pairing of value and
// type is checked again so a mismatched tree never reaches the output.
func encodeCallValue(enc *bcs.Encoder, cv CallValue, typ *types.TypeTag) bool {
	switch v := cv.(type) {
	case BoolCall:
		if typ.Kind != types.TypeBool {
			return false
		}

		enc.Bool(bool(v))
	case U8Call:
		if typ.Kind != types.TypeU8 {
			return false
		}

		enc.U8(uint8(v))
	case U64Call:
		if typ.Kind != types.TypeU64 {
			return false
		}

		enc.U64(uint64(v))
	case U128Call:
		if typ.Kind != types.TypeU128 {
			return false
		}

		enc.U128(v.Int[0], v.Int[1])
	case AddressCall:
		if typ.Kind != types.TypeAddress {
			return false
		}

		enc.Fixed(v[:])
	case VectorCall:
		if typ.Kind != types.TypeVector {
			return false
		}

		enc.SequenceLength(len(v))

		for _, elem := range v {
			if !encodeCallValue(enc, elem, typ.Elem) {
				return false
			}
		}
	default:
		// object ids are never passed by value
		return false
	}

	return true
}

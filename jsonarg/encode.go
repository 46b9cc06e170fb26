package jsonarg

import (
	"math/big"
	"strings"

	"github.com/dogechain-lab/objectchain/helper/hex"
	"github.com/dogechain-lab/objectchain/types"
	"github.com/dogechain-lab/objectchain/types/bcs"
	"github.com/holiman/uint256"
)

// ToBytes encodes the argument as the declared type in canonical form
func (a *Argument) ToBytes(expected *types.TypeTag) ([]byte, error) {
	cv, err := a.ToCallValue(expected)
	if err != nil {
		return nil, err
	}

	enc := bcs.NewEncoder()

	if !encodeCallValue(enc, cv, expected) {
		return nil, mismatch(a.value, expected, "")
	}

	out, err := enc.Result()
	if err != nil {
		return nil, mismatch(a.value, expected, err.Error())
	}

	return out, nil
}

// ToCallValue resolves the argument against the declared type
func (a *Argument) ToCallValue(expected *types.TypeTag) (CallValue, error) {
	return toCallValue(a.value, expected)
}

func mismatch(v *Value, expected *types.TypeTag, reason string) *TypeMismatchError {
	return &TypeMismatchError{
		Index:    noIndex,
		Expected: expected,
		Value:    v.String(),
		Reason:   reason,
	}
}

func toCallValue(v *Value, expected *types.TypeTag) (CallValue, error) {
	switch {
	case v.kind == KindBool && expected.Kind == types.TypeBool:
		return BoolCall(v.b), nil

	case v.kind == KindNumber && isUnsigned(expected):
		var n uint256.Int

		n.SetUint64(v.n)

		return fitUnsigned(v, &n, expected)

	case v.kind == KindString && isUnsigned(expected):
		n, reason := parseUnsigned(v.s)
		if n == nil {
			return nil, mismatch(v, expected, reason)
		}

		return fitUnsigned(v, n, expected)

	case v.kind == KindString && expected.Kind == types.TypeAddress:
		addr, err := types.AddressFromHex(strings.ToLower(v.s))
		if err != nil {
			return nil, mismatch(v, expected, "address hex string must start with 0x: "+err.Error())
		}

		return AddressCall(addr), nil

	case v.kind == KindString && expected.Kind == types.TypeVector:
		if expected.Elem.Kind != types.TypeU8 {
			return nil, mismatch(v, expected, "only vector<u8> accepts a string")
		}

		return bytesFromString(v, expected)

	case v.kind == KindArray && expected.Kind == types.TypeVector:
		elems := make(VectorCall, len(v.elems))

		for i, elem := range v.elems {
			cv, err := toCallValue(elem, expected.Elem)
			if err != nil {
				return nil, err
			}

			elems[i] = cv
		}

		return elems, nil
	}

	return nil, mismatch(v, expected, "")
}

func isUnsigned(t *types.TypeTag) bool {
	return t.Kind == types.TypeU8 || t.Kind == types.TypeU64 || t.Kind == types.TypeU128
}

// bytesFromString reads a 0x marked string as hex pairs and anything else
// as its raw bytes
func bytesFromString(v *Value, expected *types.TypeTag) (CallValue, error) {
	var raw []byte

	if strings.HasPrefix(v.s, hex.Prefix) {
		buf, err := hex.DecodeString(v.s[len(hex.Prefix):])
		if err != nil {
			return nil, mismatch(v, expected, err.Error())
		}

		raw = buf
	} else {
		raw = []byte(v.s)
	}

	elems := make(VectorCall, len(raw))
	for i, b := range raw {
		elems[i] = U8Call(b)
	}

	return elems, nil
}

// parseUnsigned reads a decimal string, falling back to 0x marked hex
func parseUnsigned(s string) (*uint256.Int, string) {
	if isDecimal(s) {
		digits := strings.TrimPrefix(s, "+")

		n, err := uint256.FromDecimal(digits)
		if err != nil {
			return nil, "too large for u128"
		}

		return n, ""
	}

	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, hex.Prefix) {
		return nil, "unable to convert string to unsigned int"
	}

	digits := s[len(hex.Prefix):]
	if !isHexDigits(digits) {
		return nil, "invalid hex digits"
	}

	b, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, "invalid hex digits"
	}

	n, overflow := uint256.FromBig(b)
	if overflow {
		return nil, "too large for u128"
	}

	return n, ""
}

// isHexDigits rejects signs and separators that big.Int would accept
func isHexDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}

	return true
}

func isDecimal(s string) bool {
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// fitUnsigned range checks n against the declared width
func fitUnsigned(v *Value, n *uint256.Int, expected *types.TypeTag) (CallValue, error) {
	switch expected.Kind {
	case types.TypeU8:
		if !n.IsUint64() || n.Uint64() > 0xff {
			return nil, mismatch(v, expected, "out of range for u8")
		}

		return U8Call(n.Uint64()), nil
	case types.TypeU64:
		if !n.IsUint64() {
			return nil, mismatch(v, expected, "out of range for u64")
		}

		return U64Call(n.Uint64()), nil
	default:
		if n.BitLen() > 128 {
			return nil, mismatch(v, expected, "out of range for u128")
		}

		return U128Call{*n}, nil
	}
}

package jsonarg

import (
	"strconv"

	"github.com/valyala/fastjson"
)

// Kind is the shape class of a JSON value
type Kind uint8

const (
	KindBool Kind = iota
	KindNumber
	KindString
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a JSON value restricted to the shapes a call argument may take.
// Numbers are always unsigned 64 bit integers.
type Value struct {
	kind  Kind
	b     bool
	n     uint64
	s     string
	elems []*Value
}

func BoolValue(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

func NumberValue(n uint64) *Value {
	return &Value{kind: KindNumber, n: n}
}

func StringValue(s string) *Value {
	return &Value{kind: KindString, s: s}
}

func ArrayValue(elems ...*Value) *Value {
	return &Value{kind: KindArray, elems: elems}
}

func (v *Value) Kind() Kind {
	return v.kind
}

func (v *Value) Bool() bool {
	return v.b
}

func (v *Value) Number() uint64 {
	return v.n
}

func (v *Value) Str() string {
	return v.s
}

func (v *Value) Elems() []*Value {
	return v.elems
}

// String renders the value back to JSON text
func (v *Value) String() string {
	var a fastjson.Arena

	return string(v.toFastJSON(&a).MarshalTo(nil))
}

func (v *Value) toFastJSON(a *fastjson.Arena) *fastjson.Value {
	switch v.kind {
	case KindBool:
		if v.b {
			return a.NewTrue()
		}

		return a.NewFalse()
	case KindNumber:
		return a.NewNumberString(strconv.FormatUint(v.n, 10))
	case KindString:
		return a.NewString(v.s)
	default:
		arr := a.NewArray()
		for i, elem := range v.elems {
			arr.SetArrayItem(i, elem.toFastJSON(a))
		}

		return arr
	}
}

// kindOf maps a parsed JSON value to its shape class, false for null
// and objects
func kindOf(v *fastjson.Value) (Kind, bool) {
	switch v.Type() {
	case fastjson.TypeTrue, fastjson.TypeFalse:
		return KindBool, true
	case fastjson.TypeNumber:
		return KindNumber, true
	case fastjson.TypeString:
		return KindString, true
	case fastjson.TypeArray:
		return KindArray, true
	default:
		return 0, false
	}
}

// fromFastJSON copies a parsed value out of the parser's memory, rejecting
// shapes no argument may take
func fromFastJSON(v *fastjson.Value) (*Value, error) {
	kind, ok := kindOf(v)
	if !ok {
		return nil, &ValidationError{Value: v.String(), Reason: v.Type().String() + " is not a valid argument"}
	}

	switch kind {
	case KindBool:
		return BoolValue(v.Type() == fastjson.TypeTrue), nil
	case KindNumber:
		n, err := v.Uint64()
		if err != nil {
			return nil, &ValidationError{Value: v.String(), Reason: "number must be an unsigned 64 bit integer"}
		}

		return NumberValue(n), nil
	case KindString:
		s, err := v.StringBytes()
		if err != nil {
			return nil, &ValidationError{Value: v.String(), Reason: err.Error()}
		}

		return StringValue(string(s)), nil
	default:
		items, err := v.Array()
		if err != nil {
			return nil, &ValidationError{Value: v.String(), Reason: err.Error()}
		}

		elems := make([]*Value, len(items))

		for i, item := range items {
			if elems[i], err = fromFastJSON(item); err != nil {
				return nil, err
			}
		}

		return ArrayValue(elems...), nil
	}
}

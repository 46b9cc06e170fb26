package jsonarg

import (
	"fmt"

	"github.com/valyala/fastjson"
)

var parserPool fastjson.ParserPool

// Argument is a JSON call argument that passed validation: a bool, a
// string, an unsigned 64 bit number or a homogeneous array of those.
type Argument struct {
	value *Value
}

// NewArgument parses and validates one JSON value
func NewArgument(raw []byte) (*Argument, error) {
	return ParseArgument(string(raw))
}

// ParseArgument parses and validates one JSON value
func ParseArgument(s string) (*Argument, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.Parse(s)
	if err != nil {
		return nil, &ValidationError{Value: s, Reason: err.Error()}
	}

	return newArgument(v)
}

// ParseArguments parses a JSON array holding the arguments of one call.
// Each element is validated on its own, so the list itself may mix shapes.
func ParseArguments(s string) ([]*Argument, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.Parse(s)
	if err != nil {
		return nil, &ValidationError{Value: s, Reason: err.Error()}
	}

	items, err := v.Array()
	if err != nil {
		return nil, &ValidationError{Value: v.String(), Reason: "arguments must be a JSON array"}
	}

	args := make([]*Argument, len(items))

	for i, item := range items {
		if args[i], err = newArgument(item); err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
	}

	return args, nil
}

// ArgumentFromValue validates a value built in code
func ArgumentFromValue(v *Value) (*Argument, error) {
	if v.kind == KindArray && !isHomogeneousValue(v) {
		return nil, &ValidationError{Value: v.String(), Reason: "arrays must be homogeneous"}
	}

	return &Argument{value: v}, nil
}

func newArgument(v *fastjson.Value) (*Argument, error) {
	if v.Type() == fastjson.TypeArray && !IsHomogeneous(v) {
		return nil, &ValidationError{Value: v.String(), Reason: "arrays must be homogeneous"}
	}

	value, err := fromFastJSON(v)
	if err != nil {
		return nil, err
	}

	return &Argument{value: value}, nil
}

// Value returns the validated JSON value
func (a *Argument) Value() *Value {
	return a.value
}

func (a *Argument) String() string {
	return a.value.String()
}

func (a *Argument) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

func (a *Argument) UnmarshalJSON(input []byte) error {
	arg, err := NewArgument(input)
	if err != nil {
		return err
	}

	*a = *arg

	return nil
}

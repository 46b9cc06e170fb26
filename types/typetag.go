package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TypeKind enumerates the shapes of a declared parameter type
type TypeKind uint8

const (
	TypeBool TypeKind = iota
	TypeU8
	TypeU64
	TypeU128
	TypeAddress
	TypeSigner
	TypeVector
	TypeStruct
	TypeReference
	TypeMutableReference
	TypeParameter
)

var ErrInvalidTypeTag = errors.New("invalid type tag")

// StructTag names a struct type declared in a published module
type StructTag struct {
	Address    Address    `json:"address"`
	Module     string     `json:"module"`
	Name       string     `json:"name"`
	TypeParams []*TypeTag `json:"type_params,omitempty"`
}

// TypeTag is a declared type. Elem is set for vectors and references,
// Struct for structs, Index for type parameters.
type TypeTag struct {
	Kind   TypeKind
	Elem   *TypeTag
	Struct *StructTag
	Index  uint16
}

var (
	BoolTag    = &TypeTag{Kind: TypeBool}
	U8Tag      = &TypeTag{Kind: TypeU8}
	U64Tag     = &TypeTag{Kind: TypeU64}
	U128Tag    = &TypeTag{Kind: TypeU128}
	AddressTag = &TypeTag{Kind: TypeAddress}
	SignerTag  = &TypeTag{Kind: TypeSigner}
)

// VectorOf returns vector<elem>
func VectorOf(elem *TypeTag) *TypeTag {
	return &TypeTag{Kind: TypeVector, Elem: elem}
}

// IsPrimitive reports whether values of the type are passed by value in a
// call payload. Vectors are primitive when their element type is.
func (t *TypeTag) IsPrimitive() bool {
	switch t.Kind {
	case TypeBool, TypeU8, TypeU64, TypeU128, TypeAddress:
		return true
	case TypeVector:
		return t.Elem != nil && t.Elem.IsPrimitive()
	default:
		return false
	}
}

func (t *TypeTag) Equal(other *TypeTag) bool {
	if t == nil || other == nil {
		return t == other
	}

	if t.Kind != other.Kind || t.Index != other.Index {
		return false
	}

	if !t.Elem.Equal(other.Elem) {
		return false
	}

	if (t.Struct == nil) != (other.Struct == nil) {
		return false
	}

	if t.Struct == nil {
		return true
	}

	a, b := t.Struct, other.Struct
	if a.Address != b.Address || a.Module != b.Module || a.Name != b.Name ||
		len(a.TypeParams) != len(b.TypeParams) {
		return false
	}

	for i := range a.TypeParams {
		if !a.TypeParams[i].Equal(b.TypeParams[i]) {
			return false
		}
	}

	return true
}

func (t *TypeTag) String() string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeBool:
		return "bool"
	case TypeU8:
		return "u8"
	case TypeU64:
		return "u64"
	case TypeU128:
		return "u128"
	case TypeAddress:
		return "address"
	case TypeSigner:
		return "signer"
	case TypeVector:
		return "vector<" + t.Elem.String() + ">"
	case TypeReference:
		return "&" + t.Elem.String()
	case TypeMutableReference:
		return "&mut " + t.Elem.String()
	case TypeParameter:
		return "T" + strconv.Itoa(int(t.Index))
	case TypeStruct:
		return t.Struct.String()
	default:
		return fmt.Sprintf("unknown(%d)", t.Kind)
	}
}

func (s *StructTag) String() string {
	var sb strings.Builder

	sb.WriteString(shortAddress(s.Address))
	sb.WriteString("::")
	sb.WriteString(s.Module)
	sb.WriteString("::")
	sb.WriteString(s.Name)

	if len(s.TypeParams) > 0 {
		sb.WriteByte('<')

		for i, p := range s.TypeParams {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(p.String())
		}

		sb.WriteByte('>')
	}

	return sb.String()
}

// shortAddress prints an address without its leading zeroes, 0x2 style
func shortAddress(a Address) string {
	trimmed := strings.TrimLeft(a.String()[2:], "0")
	if trimmed == "" {
		trimmed = "0"
	}

	return "0x" + trimmed
}

func (t *TypeTag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TypeTag) UnmarshalText(input []byte) error {
	v, err := ParseTypeTag(string(input))
	if err != nil {
		return err
	}

	*t = *v

	return nil
}

// ParseTypeTag parses the textual form of a type, such as u64,
// vector<u8>, &mut 0x2::Coin::Coin<0x2::SUI::SUI> or T0
func ParseTypeTag(s string) (*TypeTag, error) {
	p := &typeParser{src: s}

	tag, err := p.parse()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected trailing input %q", p.src[p.pos:])
	}

	return tag, nil
}

// MustParseTypeTag is ParseTypeTag for literals known to be valid
func MustParseTypeTag(s string) *TypeTag {
	tag, err := ParseTypeTag(s)
	if err != nil {
		panic(err)
	}

	return tag
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %q at %d: %s", ErrInvalidTypeTag, p.src, p.pos, fmt.Sprintf(format, args...))
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *typeParser) consume(token string) bool {
	p.skipSpace()

	if strings.HasPrefix(p.src[p.pos:], token) {
		p.pos += len(token)

		return true
	}

	return false
}

func (p *typeParser) ident() string {
	p.skipSpace()

	start := p.pos

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			p.pos++

			continue
		}

		break
	}

	return p.src[start:p.pos]
}

func (p *typeParser) parse() (*TypeTag, error) {
	if p.consume("&") {
		kind := TypeReference
		if p.consume("mut ") {
			kind = TypeMutableReference
		}

		inner, err := p.parse()
		if err != nil {
			return nil, err
		}

		return &TypeTag{Kind: kind, Elem: inner}, nil
	}

	word := p.ident()

	switch word {
	case "":
		return nil, p.errorf("expected a type")
	case "bool":
		return &TypeTag{Kind: TypeBool}, nil
	case "u8":
		return &TypeTag{Kind: TypeU8}, nil
	case "u64":
		return &TypeTag{Kind: TypeU64}, nil
	case "u128":
		return &TypeTag{Kind: TypeU128}, nil
	case "address":
		return &TypeTag{Kind: TypeAddress}, nil
	case "signer":
		return &TypeTag{Kind: TypeSigner}, nil
	case "vector":
		if !p.consume("<") {
			return nil, p.errorf("expected < after vector")
		}

		elem, err := p.parse()
		if err != nil {
			return nil, err
		}

		if !p.consume(">") {
			return nil, p.errorf("expected > closing vector")
		}

		return VectorOf(elem), nil
	}

	if word[0] == 'T' && len(word) > 1 {
		if index, err := strconv.ParseUint(word[1:], 10, 16); err == nil {
			return &TypeTag{Kind: TypeParameter, Index: uint16(index)}, nil
		}
	}

	if hexDigits(word) {
		return p.parseStruct(word)
	}

	return nil, p.errorf("unknown type %q", word)
}

func hexDigits(word string) bool {
	return len(word) > 2 && word[0] == '0' && (word[1] == 'x' || word[1] == 'X')
}

func (p *typeParser) parseStruct(addr string) (*TypeTag, error) {
	address, err := AddressFromHex(addr)
	if err != nil {
		return nil, p.errorf("bad struct address: %v", err)
	}

	tag := &StructTag{Address: address}

	if !p.consume("::") {
		return nil, p.errorf("expected :: after address")
	}

	if tag.Module = p.ident(); tag.Module == "" {
		return nil, p.errorf("expected module name")
	}

	if !p.consume("::") {
		return nil, p.errorf("expected :: after module")
	}

	if tag.Name = p.ident(); tag.Name == "" {
		return nil, p.errorf("expected struct name")
	}

	if p.consume("<") {
		for {
			param, err := p.parse()
			if err != nil {
				return nil, err
			}

			tag.TypeParams = append(tag.TypeParams, param)

			if p.consume(">") {
				break
			}

			if !p.consume(",") {
				return nil, p.errorf("expected , or > in type parameters")
			}
		}
	}

	return &TypeTag{Kind: TypeStruct, Struct: tag}, nil
}

package encode

import (
	"errors"

	"github.com/dogechain-lab/objectchain/command"
	"github.com/dogechain-lab/objectchain/helper/hex"
	"github.com/dogechain-lab/objectchain/jsonarg"
	"github.com/dogechain-lab/objectchain/types"
)

const (
	typeFlag  = "type"
	valueFlag = "value"
)

var (
	errNotPrimitive = errors.New("only primitive types can be encoded")
)

var (
	params = &encodeParams{}
)

type encodeParams struct {
	typeRaw  string
	valueRaw string

	typeTag  *types.TypeTag
	argument *jsonarg.Argument

	encoded []byte
}

func (p *encodeParams) getRequiredFlags() []string {
	return []string{
		typeFlag,
		valueFlag,
	}
}

func (p *encodeParams) initRawParams() error {
	typeTag, err := types.ParseTypeTag(p.typeRaw)
	if err != nil {
		return err
	}

	if !typeTag.IsPrimitive() {
		return errNotPrimitive
	}

	argument, err := jsonarg.ParseArgument(p.valueRaw)
	if err != nil {
		return err
	}

	p.typeTag = typeTag
	p.argument = argument

	return nil
}

func (p *encodeParams) encode() error {
	encoded, err := p.argument.ToBytes(p.typeTag)
	if err != nil {
		return err
	}

	p.encoded = encoded

	return nil
}

func (p *encodeParams) getResult() command.CommandResult {
	return &EncodeResult{
		Type:    p.typeTag.String(),
		Value:   p.argument.String(),
		Encoded: hex.EncodeToHex(p.encoded),
		Length:  len(p.encoded),
	}
}

package list

import (
	"github.com/dogechain-lab/objectchain/command"
	"github.com/dogechain-lab/objectchain/command/config"
	"github.com/dogechain-lab/objectchain/command/object/record"
	"github.com/dogechain-lab/objectchain/types"
)

const (
	ownerFlag = "owner"
)

var (
	params = &listParams{}
)

type listParams struct {
	ownerRaw string

	owner   *types.Address
	objects []*types.Object
}

func (p *listParams) initRawParams() error {
	if p.ownerRaw == "" {
		return nil
	}

	owner, err := types.AddressFromHex(p.ownerRaw)
	if err != nil {
		return err
	}

	p.owner = &owner

	return nil
}

func (p *listParams) listObjects(cfg *config.Config) error {
	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}

	backend, db, err := cfg.OpenBackend(logger, true)
	if err != nil {
		return err
	}

	defer db.Close()

	if p.owner != nil {
		p.objects = backend.ObjectsByOwner(*p.owner)

		return nil
	}

	p.objects = nil

	return backend.ForEach(func(obj *types.Object) bool {
		p.objects = append(p.objects, obj)

		return true
	})
}

func (p *listParams) getResult() command.CommandResult {
	result := &ListResult{
		Objects: make([]*record.Result, 0, len(p.objects)),
	}

	for _, obj := range p.objects {
		result.Objects = append(result.Objects, record.New(obj))
	}

	return result
}

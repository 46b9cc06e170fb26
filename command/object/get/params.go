package get

import (
	"fmt"

	"github.com/dogechain-lab/objectchain/command"
	"github.com/dogechain-lab/objectchain/command/config"
	"github.com/dogechain-lab/objectchain/command/object/record"
	"github.com/dogechain-lab/objectchain/state"
	"github.com/dogechain-lab/objectchain/types"
)

const (
	idFlag = "id"
)

var (
	params = &getParams{}
)

type getParams struct {
	idRaw string

	id     types.ObjectID
	object *types.Object
}

func (p *getParams) getRequiredFlags() []string {
	return []string{
		idFlag,
	}
}

func (p *getParams) initRawParams() error {
	id, err := types.ObjectIDFromHex(p.idRaw)
	if err != nil {
		return err
	}

	p.id = id

	return nil
}

func (p *getParams) readObject(cfg *config.Config) error {
	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}

	backend, db, err := cfg.OpenBackend(logger, true)
	if err != nil {
		return err
	}

	defer db.Close()

	obj, ok := backend.GetObject(p.id)
	if !ok {
		return fmt.Errorf("%w: %s", state.ErrObjectNotFound, p.id)
	}

	p.object = obj

	return nil
}

func (p *getParams) getResult() command.CommandResult {
	return record.New(p.object)
}

package resolve

import (
	"errors"

	"github.com/dogechain-lab/objectchain/catalog"
	"github.com/dogechain-lab/objectchain/command"
	"github.com/dogechain-lab/objectchain/command/config"
	"github.com/dogechain-lab/objectchain/helper/hex"
	"github.com/dogechain-lab/objectchain/jsonarg"
	"github.com/dogechain-lab/objectchain/types"
)

const (
	packageFlag  = "package"
	moduleFlag   = "module"
	functionFlag = "function"
	argsFlag     = "args"
)

var (
	errCatalogUndefined = errors.New("catalog file not defined")
)

var (
	params = &resolveParams{}
)

type resolveParams struct {
	catalogPath string
	packageRaw  string
	module      string
	function    string
	argsRaw     string

	packageID types.ObjectID
	arguments []*jsonarg.Argument
	catalog   catalog.Catalog

	objectIDs []types.ObjectID
	pureArgs  [][]byte
}

func (p *resolveParams) getRequiredFlags() []string {
	return []string{
		packageFlag,
		moduleFlag,
		functionFlag,
	}
}

func (p *resolveParams) initRawParams(configPath string) error {
	if err := p.initCatalogPath(configPath); err != nil {
		return err
	}

	packageID, err := types.ObjectIDFromHex(p.packageRaw)
	if err != nil {
		return err
	}

	arguments, err := jsonarg.ParseArguments(p.argsRaw)
	if err != nil {
		return err
	}

	p.packageID = packageID
	p.arguments = arguments

	return nil
}

// initCatalogPath falls back to the catalog of the config file
func (p *resolveParams) initCatalogPath(configPath string) error {
	if p.catalogPath == "" && configPath != "" {
		cfg, err := config.ReadConfigFile(configPath)
		if err != nil {
			return err
		}

		p.catalogPath = cfg.Catalog
	}

	if p.catalogPath == "" {
		return errCatalogUndefined
	}

	return nil
}

func (p *resolveParams) initCatalog() error {
	c, err := catalog.LoadFile(p.catalogPath)
	if err != nil {
		return err
	}

	p.catalog = c

	return nil
}

func (p *resolveParams) resolve() error {
	objectIDs, pureArgs, err := jsonarg.ResolveMoveFunctionArgs(
		p.catalog,
		p.packageID,
		p.module,
		p.function,
		p.arguments,
	)
	if err != nil {
		return err
	}

	p.objectIDs = objectIDs
	p.pureArgs = pureArgs

	return nil
}

func (p *resolveParams) getResult() command.CommandResult {
	result := &ResolveResult{
		Function:  p.packageID.String() + "::" + p.module + "::" + p.function,
		ObjectIDs: make([]string, 0, len(p.objectIDs)),
		PureArgs:  make([]string, 0, len(p.pureArgs)),
	}

	for _, id := range p.objectIDs {
		result.ObjectIDs = append(result.ObjectIDs, id.String())
	}

	for _, arg := range p.pureArgs {
		result.PureArgs = append(result.PureArgs, hex.EncodeToHex(arg))
	}

	return result
}

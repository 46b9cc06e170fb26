// Package catalog supplies the declared signatures of published entry
// functions.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/dogechain-lab/objectchain/types"
)

var (
	ErrPackageNotFound  = errors.New("package not found")
	ErrModuleNotFound   = errors.New("module not found")
	ErrFunctionNotFound = errors.New("function not found")
)

// Catalog looks up function signatures by package, module and name
type Catalog interface {
	FunctionSignature(pkg types.ObjectID, module, function string) (*types.FunctionSignature, error)
}

type modules map[string]map[string]*types.FunctionSignature

// MemoryCatalog keeps signatures in memory
type MemoryCatalog struct {
	lock     sync.RWMutex
	packages map[types.ObjectID]modules
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		packages: make(map[types.ObjectID]modules),
	}
}

// Add registers a signature, replacing any earlier one with the same name
func (c *MemoryCatalog) Add(pkg types.ObjectID, module string, sig *types.FunctionSignature) {
	c.lock.Lock()
	defer c.lock.Unlock()

	mods, ok := c.packages[pkg]
	if !ok {
		mods = make(modules)
		c.packages[pkg] = mods
	}

	funcs, ok := mods[module]
	if !ok {
		funcs = make(map[string]*types.FunctionSignature)
		mods[module] = funcs
	}

	funcs[sig.Name] = sig
}

func (c *MemoryCatalog) FunctionSignature(
	pkg types.ObjectID,
	module string,
	function string,
) (*types.FunctionSignature, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	mods, ok := c.packages[pkg]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, pkg)
	}

	funcs, ok := mods[module]
	if !ok {
		return nil, fmt.Errorf("%w: %s::%s", ErrModuleNotFound, pkg, module)
	}

	sig, ok := funcs[function]
	if !ok {
		return nil, fmt.Errorf("%w: %s::%s::%s", ErrFunctionNotFound, pkg, module, function)
	}

	return sig, nil
}

// Functions lists the function names of a module in order
func (c *MemoryCatalog) Functions(pkg types.ObjectID, module string) []string {
	c.lock.RLock()
	defer c.lock.RUnlock()

	names := []string{}
	for name := range c.packages[pkg][module] {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

type functionEntry struct {
	Parameters []*types.TypeTag `json:"parameters"`
	Return     []*types.TypeTag `json:"return,omitempty"`
}

type packageEntry struct {
	Package types.ObjectID                      `json:"package"`
	Modules map[string]map[string]functionEntry `json:"modules"`
}

// Load decodes a JSON list of packages, each mapping module names to
// functions and their parameter types in textual form
func Load(data []byte) (*MemoryCatalog, error) {
	var entries []packageEntry

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := NewMemoryCatalog()

	for _, entry := range entries {
		for module, funcs := range entry.Modules {
			for name, fn := range funcs {
				c.Add(entry.Package, module, &types.FunctionSignature{
					Name:       name,
					Parameters: fn.Parameters,
					Return:     fn.Return,
				})
			}
		}
	}

	return c, nil
}

// LoadFile reads a catalog from a JSON file
func LoadFile(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return Load(data)
}

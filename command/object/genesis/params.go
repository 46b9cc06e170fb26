package genesis

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/dogechain-lab/objectchain/command"
	"github.com/dogechain-lab/objectchain/command/config"
	"github.com/dogechain-lab/objectchain/state"
	"github.com/dogechain-lab/objectchain/types"
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	fileFlag = "file"

	metricsNamespace = "objectchain"
)

var (
	errNoObjects       = errors.New("genesis file lists no objects")
	errDuplicateObject = errors.New("object listed twice")
	errObjectExists    = errors.New("object already stored")
	errInvalidObject   = errors.New("invalid genesis object")
)

var (
	params = &genesisParams{}
)

type genesisParams struct {
	genesisPath string

	digest   types.Digest
	objects  []*types.Object
	effects  *state.Effects
	counters map[string]float64
}

func (p *genesisParams) getRequiredFlags() []string {
	return []string{
		fileFlag,
	}
}

func (p *genesisParams) initRawParams() error {
	data, err := os.ReadFile(p.genesisPath)
	if err != nil {
		return err
	}

	objects, err := parseGenesis(data)
	if err != nil {
		return err
	}

	p.digest = types.DigestOf(data)
	p.objects = objects

	return nil
}

// parseGenesis decodes a JSON list of objects and checks each one is
// complete and listed once
func parseGenesis(data []byte) ([]*types.Object, error) {
	var objects []*types.Object

	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("failed to decode genesis file: %w", err)
	}

	if len(objects) == 0 {
		return nil, errNoObjects
	}

	seen := make(map[types.ObjectID]struct{}, len(objects))

	for i, obj := range objects {
		switch {
		case obj == nil:
			return nil, fmt.Errorf("%w: entry %d is null", errInvalidObject, i)
		case obj.Type == nil:
			return nil, fmt.Errorf("%w: %s has no type", errInvalidObject, obj.ID)
		case obj.Version == 0:
			return nil, fmt.Errorf("%w: %s has version 0", errInvalidObject, obj.ID)
		}

		if _, ok := seen[obj.ID]; ok {
			return nil, fmt.Errorf("%w: %s", errDuplicateObject, obj.ID)
		}

		seen[obj.ID] = struct{}{}
	}

	return objects, nil
}

func (p *genesisParams) importObjects(cfg *config.Config) error {
	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}

	backend, db, err := cfg.OpenBackend(logger, false)
	if err != nil {
		return err
	}

	defer db.Close()

	registry := prometheus.NewRegistry()
	metrics := state.GetPrometheusMetrics(metricsNamespace)
	metrics.Register(registry)

	effects, err := seed(logger, backend, metrics, p.objects)
	if err != nil {
		return err
	}

	effects.TransactionDigest = p.digest
	p.effects = effects

	p.counters, err = gatherCounters(registry)

	return err
}

// gatherCounters reads every counter of the registry by full metric name
func gatherCounters(gatherer prometheus.Gatherer) (map[string]float64, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	counters := make(map[string]float64, len(families))

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if counter := metric.GetCounter(); counter != nil {
				counters[family.GetName()] += counter.GetValue()
			}
		}
	}

	return counters, nil
}

// seed writes the objects through a store transaction. Every object must
// be new to the backend.
func seed(
	logger hclog.Logger,
	backend state.Backend,
	metrics *state.Metrics,
	objects []*types.Object,
) (*state.Effects, error) {
	for _, obj := range objects {
		if backend.HasObject(obj.ID) {
			return nil, fmt.Errorf("%w: %s", errObjectExists, obj.ID)
		}
	}

	store := state.NewStore(logger, backend, metrics)

	for _, obj := range objects {
		store.WriteObject(obj)
	}

	effects, err := store.Flush()
	if err != nil {
		store.Reset()

		return nil, err
	}

	return effects, nil
}

func (p *genesisParams) getResult() command.CommandResult {
	result := &GenesisResult{
		Digest:  p.digest.String(),
		Objects: make([]string, 0, len(p.effects.Created)+len(p.effects.Unwrapped)),
	}

	for _, ref := range p.effects.Created {
		result.Objects = append(result.Objects, ref.String())
	}

	for _, ref := range p.effects.Unwrapped {
		result.Objects = append(result.Objects, ref.String())
	}

	names := make([]string, 0, len(p.counters))
	for name := range p.counters {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		result.Counters = append(result.Counters, Counter{Name: name, Value: p.counters[name]})
	}

	return result
}

package optim

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/galaxsim/internal/config"
	"github.com/san-kum/galaxsim/internal/experiment"
)

// Knobs are the config values a search may vary.
var Knobs = map[string]func(c *config.Config, v float64){
	"dt":                  func(c *config.Config, v float64) { c.Dt = v },
	"g":                   func(c *config.Config, v float64) { c.Physics.G = v },
	"proximity_threshold": func(c *config.Config, v float64) { c.Physics.ProximityThreshold = v },
	"mass_cutoff":         func(c *config.Config, v float64) { c.Physics.MassCutoff = v },
}

func KnobNames() []string {
	names := make([]string, 0, len(Knobs))
	for k := range Knobs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Trial is one evaluated point of the grid.
type Trial struct {
	Params map[string]float64
	Value  float64
	Err    error
}

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) (*GridSearch, error) {
	if len(params) != len(ranges) {
		return nil, fmt.Errorf("%d params but %d ranges", len(params), len(ranges))
	}
	for _, p := range params {
		if _, ok := Knobs[p]; !ok {
			return nil, fmt.Errorf("unknown knob %q", p)
		}
	}
	return &GridSearch{paramNames: params, ranges: ranges}, nil
}

// Search runs every combination on a fresh copy of base for steps steps and
// returns the trial minimising metricName. Trials that fail to build or
// run are kept in the returned list with their error.
func (g *GridSearch) Search(
	ctx context.Context,
	base func() *config.Config,
	steps int,
	metricName string,
) (Trial, []Trial, error) {
	var trials []Trial
	g.searchRecursive(ctx, 0, make(map[string]float64), func(params map[string]float64) {
		trials = append(trials, g.evaluate(ctx, base, params, steps, metricName))
	})
	if err := ctx.Err(); err != nil {
		return Trial{}, trials, err
	}

	best := Trial{Value: math.Inf(1)}
	for _, t := range trials {
		if t.Err == nil && t.Value < best.Value {
			best = t
		}
	}
	if best.Params == nil {
		return Trial{}, trials, fmt.Errorf("no trial produced %s", metricName)
	}
	return best, trials, nil
}

func (g *GridSearch) evaluate(
	ctx context.Context,
	base func() *config.Config,
	params map[string]float64,
	steps int,
	metricName string,
) Trial {
	trial := Trial{Params: params, Value: math.NaN()}

	cfg := base()
	for k, v := range params {
		Knobs[k](cfg, v)
	}
	if err := cfg.Validate(); err != nil {
		trial.Err = err
		return trial
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		trial.Err = err
		return trial
	}
	result, err := exp.Run(ctx, steps)
	if err != nil {
		trial.Err = err
		return trial
	}

	val, ok := result.Metrics[metricName]
	if !ok {
		trial.Err = fmt.Errorf("unknown metric %q", metricName)
		return trial
	}
	trial.Value = val
	return trial
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	visit func(map[string]float64),
) {
	if ctx.Err() != nil {
		return
	}
	if depth == len(g.paramNames) {
		visit(current)
		return
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		g.searchRecursive(ctx, depth+1, newParams, visit)
	}
}

package synthesis

import (
	"math/rand"
	"time"

	"github.com/cortexsynth/agentsynth/core"
	"github.com/cortexsynth/agentsynth/graph"
	"github.com/cortexsynth/agentsynth/pareto"
	"github.com/cortexsynth/agentsynth/task"
)

// Random uniformly samples one component per stage under an evaluation
// budget, offering every feasible sample to an incremental pareto.Set. It
// requires a finite budget to terminate.
type Random struct {
	registry *core.CapabilityRegistry
}

// NewRandom builds a Random synthesizer over registry.
func NewRandom(registry *core.CapabilityRegistry) *Random {
	return &Random{registry: registry}
}

// Synthesize implements Synthesizer.
func (r *Random) Synthesize(t *task.Specification, budget *Budget) ([]*pareto.Candidate, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	stages, ok := candidatesPerStage(r.registry, t)
	if !ok {
		return nil, nil
	}

	var seed int64
	if budget != nil && budget.RandomSeed != nil {
		seed = *budget.RandomSeed
	} else {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ctx := NewContext(budget)
	paretoSet := pareto.NewSet()

	for {
		g := graph.New()
		var previous string

		for idx, candidates := range stages {
			component := candidates[rng.Intn(len(candidates))]
			nodeID := stageNodeID(component.Name, idx)
			if err := g.AddComponent(nodeID, component); err != nil {
				return nil, err
			}
			if idx > 0 {
				if err := g.AddEdge(previous, nodeID); err != nil {
					return nil, err
				}
			}
			previous = nodeID
		}

		if err := ctx.RegisterEvaluation(); err != nil {
			break
		}

		if violatesHardConstraints(g, t) {
			continue
		}

		paretoSet.Add(pareto.NewCandidate(g))
	}

	return paretoSet.ToSlice(), nil
}

package synthesis

import (
	"github.com/cortexsynth/agentsynth/core"
	"github.com/cortexsynth/agentsynth/graph"
	"github.com/cortexsynth/agentsynth/pareto"
	"github.com/cortexsynth/agentsynth/task"
)

// Exhaustive enumerates the full Cartesian product of per-capability
// candidates and keeps every feasible combination. It is not de-duplicated
// to the Pareto front — downstream code is responsible for that reduction
// when needed.
type Exhaustive struct {
	registry *core.CapabilityRegistry
}

// NewExhaustive builds an Exhaustive synthesizer over registry.
func NewExhaustive(registry *core.CapabilityRegistry) *Exhaustive {
	return &Exhaustive{registry: registry}
}

// Synthesize implements Synthesizer. budget is accepted for contract
// symmetry but unused: exhaustive search has no evaluation/time ceiling in
// the reference design, since it is the ground-truth strategy every other
// synthesizer is measured against.
func (e *Exhaustive) Synthesize(t *task.Specification, _ *Budget) ([]*pareto.Candidate, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	stages, ok := candidatesPerStage(e.registry, t)
	if !ok {
		return nil, nil
	}

	combinations := cartesianProduct(stages)

	var architectures []*pareto.Candidate
	for _, combination := range combinations {
		g := graph.New()
		var previous string

		for idx, component := range combination {
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

		if violatesHardConstraints(g, t) {
			continue
		}

		architectures = append(architectures, pareto.NewCandidate(g))
	}

	return architectures, nil
}

// cartesianProduct returns every combination drawing one element from each
// stage list, in stage order.
func cartesianProduct(stages [][]*core.ComponentMetadata) [][]*core.ComponentMetadata {
	if len(stages) == 0 {
		return nil
	}

	combinations := [][]*core.ComponentMetadata{{}}
	for _, stage := range stages {
		var next [][]*core.ComponentMetadata
		for _, combo := range combinations {
			for _, component := range stage {
				extended := make([]*core.ComponentMetadata, len(combo)+1)
				copy(extended, combo)
				extended[len(combo)] = component
				next = append(next, extended)
			}
		}
		combinations = next
	}

	return combinations
}

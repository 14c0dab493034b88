package synthesis

import (
	"sort"

	"github.com/cortexsynth/agentsynth/core"
	"github.com/cortexsynth/agentsynth/graph"
	"github.com/cortexsynth/agentsynth/pareto"
	"github.com/cortexsynth/agentsynth/task"
)

// Heuristic is the deterministic greedy synthesizer: at each stage it
// picks the lowest-scoring candidate under the task's objective weights.
// It returns exactly one candidate on success.
type Heuristic struct {
	registry *core.CapabilityRegistry
}

// NewHeuristic builds a Heuristic synthesizer over registry.
func NewHeuristic(registry *core.CapabilityRegistry) *Heuristic {
	return &Heuristic{registry: registry}
}

// Synthesize implements Synthesizer. It fails with ErrNoCandidates if any
// stage has no eligible component, and with ErrConstraintViolated if the
// constructed chain exceeds a hard cost/latency ceiling. One evaluation is
// charged after construction; an already-exhausted budget yields an empty
// frontier rather than an error.
func (h *Heuristic) Synthesize(t *task.Specification, budget *Budget) ([]*pareto.Candidate, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	g := graph.New()
	var previous string

	for idx, capability := range t.RequiredCapabilities {
		candidates := h.registry.GetByCapability(capability, t.PrivacyConstraint)
		if len(candidates) == 0 {
			return nil, core.NewError("heuristic.Synthesize", core.KindSynthesis, core.ErrNoCandidates)
		}

		sorted := append([]*core.ComponentMetadata(nil), candidates...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return score(sorted[i], t.ObjectiveWeights) < score(sorted[j], t.ObjectiveWeights)
		})

		selected := sorted[0]
		nodeID := stageNodeID(selected.Name, idx)
		if err := g.AddComponent(nodeID, selected); err != nil {
			return nil, err
		}
		if idx > 0 {
			if err := g.AddEdge(previous, nodeID); err != nil {
				return nil, err
			}
		}
		previous = nodeID
	}

	ctx := NewContext(budget)
	if err := ctx.RegisterEvaluation(); err != nil {
		return nil, nil
	}

	if violatesHardConstraints(g, t) {
		return nil, core.NewError("heuristic.Synthesize", core.KindSynthesis, core.ErrConstraintViolated)
	}

	return []*pareto.Candidate{pareto.NewCandidate(g)}, nil
}

package synthesis

import (
	"fmt"

	"github.com/cortexsynth/agentsynth/core"
	"github.com/cortexsynth/agentsynth/graph"
	"github.com/cortexsynth/agentsynth/pareto"
	"github.com/cortexsynth/agentsynth/task"
)

// Synthesizer is the shared contract every synthesis strategy implements:
// (task, budget) -> approximate Pareto frontier. A concrete strategy
// carries its own construction-time parameters (e.g. beam width); the
// random seed is supplied through Budget.RandomSeed.
type Synthesizer interface {
	Synthesize(t *task.Specification, budget *Budget) ([]*pareto.Candidate, error)
}

// score is the weighted scoring function shared by the heuristic and beam
// synthesizers. Lower is better.
func score(meta *core.ComponentMetadata, weights task.ObjectiveWeights) float64 {
	return weights["cost"]*meta.CostPerCall +
		weights["latency"]*meta.AvgLatencyMs -
		weights["error"]*meta.ReliabilityScore
}

// stageNodeID follows the shared linear-chain naming convention:
// "<component_name>_<stage_index>".
func stageNodeID(name string, stage int) string {
	return fmt.Sprintf("%s_%d", name, stage)
}

// violatesHardConstraints reports whether a fully constructed graph
// violates the task's max_cost/max_latency hard constraints.
func violatesHardConstraints(g *graph.AgentGraph, t *task.Specification) bool {
	if t.MaxCost != nil && g.TotalCost() > *t.MaxCost {
		return true
	}
	if t.MaxLatency != nil && g.TotalLatency() > *t.MaxLatency {
		return true
	}
	return false
}

// candidatesPerStage collects the privacy-filtered component list for each
// required capability, in order. It returns ok=false if any stage has no
// candidates. The exhaustive, random and beam synthesizers use it and
// return an empty frontier in that case; the heuristic synthesizer does
// its own per-stage lookup and fails with ErrNoCandidates instead.
func candidatesPerStage(registry *core.CapabilityRegistry, t *task.Specification) (stages [][]*core.ComponentMetadata, ok bool) {
	stages = make([][]*core.ComponentMetadata, 0, len(t.RequiredCapabilities))
	for _, capability := range t.RequiredCapabilities {
		candidates := registry.GetByCapability(capability, t.PrivacyConstraint)
		if len(candidates) == 0 {
			return nil, false
		}
		stages = append(stages, candidates)
	}
	return stages, true
}

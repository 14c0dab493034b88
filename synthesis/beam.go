package synthesis

import (
	"sort"

	"github.com/cortexsynth/agentsynth/core"
	"github.com/cortexsynth/agentsynth/graph"
	"github.com/cortexsynth/agentsynth/pareto"
	"github.com/cortexsynth/agentsynth/task"
)

// Beam keeps the width lowest-scoring partial chains at every intermediate
// stage, but retains every survivor at the final stage so the full
// multi-objective Pareto reduction downstream sees more than the
// scalar-score winner.
type Beam struct {
	registry *core.CapabilityRegistry
	width    int
}

// beamEntry is a partial chain under construction together with its
// cumulative scalar score under the task's objective weights.
type beamEntry struct {
	g             *graph.AgentGraph
	lastNodeID    string
	cumulativeScore float64
}

// NewBeam builds a Beam synthesizer with the given beam width. A width
// below 1 is raised to 1.
func NewBeam(registry *core.CapabilityRegistry, width int) *Beam {
	if width < 1 {
		width = 1
	}
	return &Beam{registry: registry, width: width}
}

// Synthesize implements Synthesizer.
func (b *Beam) Synthesize(t *task.Specification, budget *Budget) ([]*pareto.Candidate, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	stages, ok := candidatesPerStage(b.registry, t)
	if !ok {
		return nil, nil
	}

	beam := []beamEntry{{g: graph.New()}}

	for idx, candidates := range stages {
		var expanded []beamEntry

		for _, entry := range beam {
			for _, component := range candidates {
				g := entry.g.Copy()
				nodeID := stageNodeID(component.Name, idx)
				if err := g.AddComponent(nodeID, component); err != nil {
					return nil, err
				}
				if idx > 0 {
					if err := g.AddEdge(entry.lastNodeID, nodeID); err != nil {
						return nil, err
					}
				}
				expanded = append(expanded, beamEntry{
					g:               g,
					lastNodeID:      nodeID,
					cumulativeScore: entry.cumulativeScore + score(component, t.ObjectiveWeights),
				})
			}
		}

		sort.SliceStable(expanded, func(i, j int) bool {
			return expanded[i].cumulativeScore < expanded[j].cumulativeScore
		})

		final := idx == len(stages)-1
		if !final && len(expanded) > b.width {
			expanded = expanded[:b.width]
		}
		beam = expanded
	}

	ctx := NewContext(budget)
	paretoSet := pareto.NewSet()

	for _, entry := range beam {
		if err := ctx.RegisterEvaluation(); err != nil {
			break
		}
		if violatesHardConstraints(entry.g, t) {
			continue
		}
		paretoSet.Add(pareto.NewCandidate(entry.g))
	}

	return paretoSet.ToSlice(), nil
}

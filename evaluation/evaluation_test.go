package evaluation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexsynth/agentsynth/core"
	"github.com/cortexsynth/agentsynth/execution"
	"github.com/cortexsynth/agentsynth/pareto"
	"github.com/cortexsynth/agentsynth/synthesis"
	"github.com/cortexsynth/agentsynth/task"
)

func newHarnessRegistry(t *testing.T) *core.CapabilityRegistry {
	t.Helper()
	r := core.NewCapabilityRegistry()
	components := []*core.ComponentMetadata{
		{Name: "retriever", Capabilities: []string{"retrieve"}, CostPerCall: 0.001, AvgLatencyMs: 50, ReliabilityScore: 1.0},
		{Name: "summarizer", Capabilities: []string{"summarize"}, CostPerCall: 0.005, AvgLatencyMs: 100, ReliabilityScore: 1.0},
	}
	for _, c := range components {
		require.NoError(t, r.Register(c))
	}
	return r
}

func TestHarnessRunAggregatesAcrossRepeatedExecutions(t *testing.T) {
	registry := newHarnessRegistry(t)
	spec := task.New([]string{"retrieve", "summarize"})

	seed := int64(7)
	harness := &Harness{
		RunsPerExperiment: 5,
		Mode:              execution.Deterministic,
		BaseSeed:          &seed,
	}

	results, err := harness.Run(
		context.Background(),
		map[string]*task.Specification{"t1": spec},
		map[string]synthesis.Synthesizer{"heuristic": synthesis.NewHeuristic(registry)},
	)
	require.NoError(t, err)

	result, ok := results["t1/heuristic"]
	require.True(t, ok)
	assert.Equal(t, 5, result.Runs)
	assert.Equal(t, 1.0, result.SuccessRate)
	assert.InDelta(t, 0.006, result.AvgCost, 1e-9)
}

func TestHarnessSkipsPairsWithEmptyFrontier(t *testing.T) {
	registry := newHarnessRegistry(t)
	spec := task.New([]string{"verify"})

	harness := &Harness{RunsPerExperiment: 3, Mode: execution.Deterministic}

	results, err := harness.Run(
		context.Background(),
		map[string]*task.Specification{"t1": spec},
		map[string]synthesis.Synthesizer{"exhaustive": synthesis.NewExhaustive(registry)},
	)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEvaluateApproximationPerfectFrontierHasNoLoss(t *testing.T) {
	registry := newHarnessRegistry(t)
	spec := task.New([]string{"retrieve", "summarize"})

	frontier, err := synthesis.NewExhaustive(registry).Synthesize(spec, nil)
	require.NoError(t, err)
	require.NotEmpty(t, frontier)

	ref := pareto.ReferencePoint{Cost: 1, Latency: 1000, Reliability: 0}
	metrics := EvaluateApproximation(frontier, frontier, ref, 500, 3)

	assert.Equal(t, 1.0, metrics.Coverage)
	assert.Equal(t, 0.0, metrics.HypervolumeLoss)
	assert.Equal(t, 0.0, metrics.AvgCostRegret)
}

package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexsynth/agentsynth/core"
	"github.com/cortexsynth/agentsynth/graph"
)

func chainGraph(t *testing.T, reliabilities ...float64) *graph.AgentGraph {
	t.Helper()
	g := graph.New()
	var previous string
	for i, r := range reliabilities {
		id := "n" + string(rune('0'+i))
		require.NoError(t, g.AddComponent(id, &core.ComponentMetadata{
			Name:             id,
			CostPerCall:      1,
			AvgLatencyMs:     10,
			ReliabilityScore: r,
		}))
		if i > 0 {
			require.NoError(t, g.AddEdge(previous, id))
		}
		previous = id
	}
	return g
}

func TestDeterministicExecutorAlwaysSucceeds(t *testing.T) {
	g := chainGraph(t, 0.0, 0.0, 0.0)
	result := NewExecutor(Deterministic, nil).Run(g)

	summary := result.Summary()
	assert.True(t, summary.Success)
	assert.Equal(t, 3, summary.Steps)
}

func TestProbabilisticExecutorStopsOnFirstFailure(t *testing.T) {
	g := chainGraph(t, 0.0, 0.0, 0.0)
	seed := int64(1)
	result := NewExecutor(Probabilistic, &seed).Run(g)

	summary := result.Summary()
	assert.False(t, summary.Success)
	assert.Equal(t, 1, summary.Steps)
	assert.False(t, result.Records()[0].Success)
}

func TestExecutorIsDeterministicUnderSameSeed(t *testing.T) {
	g := chainGraph(t, 0.5, 0.5, 0.5)
	seed := int64(42)

	first := NewExecutor(Probabilistic, &seed).Run(g)
	second := NewExecutor(Probabilistic, &seed).Run(g)

	assert.Equal(t, first.Records(), second.Records())
}

func TestEmptyLogSummarySucceeds(t *testing.T) {
	logger := NewTelemetryLogger()
	summary := logger.Summary()
	assert.True(t, summary.Success)
	assert.Equal(t, 0, summary.Steps)
}

func TestTelemetryLoggerAccumulatesTotals(t *testing.T) {
	logger := NewTelemetryLogger()
	logger.Log("a", 100, 0.5, true)
	logger.Log("b", 200, 0.25, true)

	summary := logger.Summary()
	assert.InDelta(t, 0.75, summary.TotalCost, 1e-9)
	assert.InDelta(t, 300, summary.TotalLatency, 1e-9)
	assert.True(t, summary.Success)
	assert.Equal(t, 2, summary.Steps)
}

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexsynth/agentsynth/core"
)

func meta(name string, cost, latency, reliability float64) *core.ComponentMetadata {
	return &core.ComponentMetadata{
		Name:             name,
		CostPerCall:      cost,
		AvgLatencyMs:     latency,
		ReliabilityScore: reliability,
	}
}

func TestAddEdgeRejectsCycle(t *testing.T) {
	g := New()
	require.NoError(t, g.AddComponent("a", meta("a", 1, 1, 1)))
	require.NoError(t, g.AddComponent("b", meta("b", 1, 1, 1)))

	require.NoError(t, g.AddEdge("a", "b"))
	err := g.AddEdge("b", "a")
	assert.ErrorIs(t, err, core.ErrCycle)

	// The rejected edge b -> a must not have been left in place; a -> b stays.
	assert.Equal(t, []string{"b"}, g.adjacency["a"])
	assert.Empty(t, g.adjacency["b"])
}

func TestAddComponentRejectsDuplicateNode(t *testing.T) {
	g := New()
	require.NoError(t, g.AddComponent("a", meta("a", 1, 1, 1)))
	err := g.AddComponent("a", meta("a", 1, 1, 1))
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
}

func TestGetExecutionOrderIsDeterministic(t *testing.T) {
	g := New()
	require.NoError(t, g.AddComponent("c", meta("c", 1, 1, 1)))
	require.NoError(t, g.AddComponent("a", meta("a", 1, 1, 1)))
	require.NoError(t, g.AddComponent("b", meta("b", 1, 1, 1)))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))

	order := g.GetExecutionOrder()
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestAggregateMetrics(t *testing.T) {
	g := New()
	require.NoError(t, g.AddComponent("a", meta("a", 0.1, 100, 0.9)))
	require.NoError(t, g.AddComponent("b", meta("b", 0.2, 200, 0.8)))
	require.NoError(t, g.AddEdge("a", "b"))

	assert.InDelta(t, 0.3, g.TotalCost(), 1e-9)
	assert.InDelta(t, 300, g.TotalLatency(), 1e-9)
	assert.InDelta(t, 0.72, g.AggregateReliability(), 1e-9)
}

func TestCopyIsIndependent(t *testing.T) {
	g := New()
	require.NoError(t, g.AddComponent("a", meta("a", 1, 1, 1)))
	require.NoError(t, g.AddComponent("b", meta("b", 1, 1, 1)))
	require.NoError(t, g.AddEdge("a", "b"))

	dup := g.Copy()
	require.NoError(t, dup.AddComponent("c", meta("c", 1, 1, 1)))
	require.NoError(t, dup.AddEdge("b", "c"))

	assert.Len(t, g.ListNodes(), 2)
	assert.Len(t, dup.ListNodes(), 3)
}

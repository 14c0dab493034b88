package pareto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexsynth/agentsynth/core"
	"github.com/cortexsynth/agentsynth/graph"
	"github.com/cortexsynth/agentsynth/task"
)

// candidateWith builds a single-node graph whose aggregate metrics are
// exactly (cost, latency, reliability), then wraps it as a Candidate.
func candidateWith(t *testing.T, cost, latency, reliability float64) *Candidate {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddComponent("n", &core.ComponentMetadata{
		Name:             "n",
		CostPerCall:      cost,
		AvgLatencyMs:     latency,
		ReliabilityScore: reliability,
	}))
	return NewCandidate(g)
}

func TestDominatesStrictlyBetterInOneDimension(t *testing.T) {
	a := candidateWith(t, 1, 100, 0.9)
	b := candidateWith(t, 2, 100, 0.9)
	assert.True(t, Dominates(a, b))
	assert.False(t, Dominates(b, a))
}

func TestDominatesTieIsNeitherDirection(t *testing.T) {
	a := candidateWith(t, 1, 100, 0.9)
	b := candidateWith(t, 1, 100, 0.9)
	assert.False(t, Dominates(a, b))
	assert.False(t, Dominates(b, a))
}

func TestComputeParetoFrontExcludesDominated(t *testing.T) {
	cheap := candidateWith(t, 1, 200, 0.8)
	fast := candidateWith(t, 3, 50, 0.8)
	dominated := candidateWith(t, 2, 200, 0.8) // dominated by cheap: higher cost, tied on latency and reliability

	front := ComputeParetoFront([]*Candidate{cheap, fast, dominated})
	assert.Contains(t, front, cheap)
	assert.Contains(t, front, fast)
	assert.NotContains(t, front, dominated)
}

func TestParetoSetAddRemovesDominated(t *testing.T) {
	set := NewSet()
	worse := candidateWith(t, 5, 500, 0.5)
	better := candidateWith(t, 1, 100, 0.9)

	assert.True(t, set.Add(worse))
	assert.Equal(t, 1, set.Len())

	assert.True(t, set.Add(better))
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, better, set.ToSlice()[0])
}

func TestParetoSetAddIsIdempotent(t *testing.T) {
	set := NewSet()
	c := candidateWith(t, 1, 1, 1)
	assert.True(t, set.Add(c))
	assert.True(t, set.Add(c))
	assert.Equal(t, 1, set.Len())
}

func TestFrontierCoverageEmptyTrueFrontierIsOne(t *testing.T) {
	assert.Equal(t, 1.0, FrontierCoverage(nil, nil))
}

func TestFrontierCoverageFullOverlap(t *testing.T) {
	c := candidateWith(t, 1, 1, 1)
	cov := FrontierCoverage([]*Candidate{c}, []*Candidate{c})
	assert.Equal(t, 1.0, cov)
}

func TestHypervolumeMonteCarloEmptyFrontierIsZero(t *testing.T) {
	ref := ReferencePoint{Cost: 10, Latency: 1000, Reliability: 0}
	assert.Equal(t, 0.0, HypervolumeMonteCarlo(nil, ref, 1000, 1))
}

func TestHypervolumeMonteCarloIsDeterministicUnderSameSeed(t *testing.T) {
	c := candidateWith(t, 1, 100, 0.9)
	ref := ReferencePoint{Cost: 10, Latency: 1000, Reliability: 0}

	first := HypervolumeMonteCarlo([]*Candidate{c}, ref, 2000, 7)
	second := HypervolumeMonteCarlo([]*Candidate{c}, ref, 2000, 7)
	assert.Equal(t, first, second)
}

func TestAdditiveRegretZeroWhenUndominated(t *testing.T) {
	c := candidateWith(t, 1, 1, 1)
	costR, latR, relR := AdditiveRegret(c, []*Candidate{c})
	assert.Equal(t, 0.0, costR)
	assert.Equal(t, 0.0, latR)
	assert.Equal(t, 0.0, relR)
}

func TestAdditiveRegretMeasuresGapToDominator(t *testing.T) {
	dominator := candidateWith(t, 1, 100, 0.95)
	c := candidateWith(t, 2, 150, 0.9)

	costR, latR, relR := AdditiveRegret(c, []*Candidate{dominator})
	assert.InDelta(t, 1.0, costR, 1e-9)
	assert.InDelta(t, 50.0, latR, 1e-9)
	assert.InDelta(t, 0.05, relR, 1e-9)
}

func TestCandidateScorePrefersLowerWeightedCost(t *testing.T) {
	weights := task.ObjectiveWeights{"cost": 1, "latency": 0, "error": 0}
	cheap := candidateWith(t, 1, 100, 0.9)
	expensive := candidateWith(t, 5, 100, 0.9)
	assert.Less(t, cheap.Score(weights), expensive.Score(weights))
}

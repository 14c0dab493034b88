// Package pareto implements the Pareto machinery: the ArchitectureCandidate
// value type, dominance, the incremental non-dominated set, dominance-rank
// layering, and Monte Carlo hypervolume estimation.
package pareto

import (
	"github.com/google/uuid"

	"github.com/cortexsynth/agentsynth/graph"
	"github.com/cortexsynth/agentsynth/task"
)

// Candidate is an immutable architecture paired with its cached objective
// triple. Two views of equality are deliberately exposed: Metrics (for
// metric-tuple-based set membership, e.g. frontier coverage) and Identity
// (for the O(n^2) Pareto sweep's self-exclusion and dominance-rank
// layering, where two candidates can share identical metrics and still
// need to be told apart).
type Candidate struct {
	// ID correlates a candidate across telemetry and spans. It plays no
	// role in dominance or metric equality.
	ID string

	Graph *graph.AgentGraph

	TotalCost        float64
	TotalLatency     float64
	TotalReliability float64
}

// NewCandidate computes and caches the objective triple for g at
// construction time.
func NewCandidate(g *graph.AgentGraph) *Candidate {
	return &Candidate{
		ID:               uuid.NewString(),
		Graph:            g,
		TotalCost:        g.TotalCost(),
		TotalLatency:     g.TotalLatency(),
		TotalReliability: g.AggregateReliability(),
	}
}

// Metrics returns the three aggregate objectives as a map, per the public
// frontier-consumption contract.
func (c *Candidate) Metrics() map[string]float64 {
	return map[string]float64{
		"cost":        c.TotalCost,
		"latency":     c.TotalLatency,
		"reliability": c.TotalReliability,
	}
}

// Score is the weighted scalar used to pick a single representative
// candidate out of a frontier (e.g. the evaluation harness's choice of
// which architecture to execute). Lower is better.
func (c *Candidate) Score(weights task.ObjectiveWeights) float64 {
	return weights["cost"]*c.TotalCost + weights["latency"]*c.TotalLatency - weights["error"]*c.TotalReliability
}

// Identity is a reference-equality view: two distinct *Candidate values
// are never Identity-equal even when their metric triples match.
func (c *Candidate) Identity() *Candidate { return c }

// metricKey is the canonical (cost, latency, reliability) tuple used for
// metric-equality comparisons (frontier coverage). Set does not use it: it
// keys members by pointer identity.
type metricKey struct {
	cost, latency, reliability float64
}

func (c *Candidate) metricKey() metricKey {
	return metricKey{c.TotalCost, c.TotalLatency, c.TotalReliability}
}

package execution

import (
	"math/rand"
	"time"

	"github.com/cortexsynth/agentsynth/graph"
)

// Mode selects how a step's success bit is determined.
type Mode int

const (
	// Deterministic: every step succeeds.
	Deterministic Mode = iota
	// Probabilistic: a step succeeds with probability reliability_score.
	Probabilistic
)

// Result wraps the telemetry log produced by one Executor.Run call.
type Result struct {
	logger *TelemetryLogger
}

// Summary delegates to the wrapped logger.
func (r *Result) Summary() Summary {
	return r.logger.Summary()
}

// Records delegates to the wrapped logger.
func (r *Result) Records() []TelemetryRecord {
	return r.logger.Records()
}

// Executor realizes an AgentGraph step by step using declared metadata
// rather than invoking real components. Its RNG is a local, seeded
// instance isolated from any process-global source so that a given seed
// always reproduces the same telemetry sequence.
type Executor struct {
	mode Mode
	rng  *rand.Rand
}

// NewExecutor builds an Executor in the given mode. A nil seed draws
// entropy from the wall clock; a non-nil seed makes the run reproducible.
func NewExecutor(mode Mode, seed *int64) *Executor {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		s = time.Now().UnixNano()
	}
	return &Executor{mode: mode, rng: rand.New(rand.NewSource(s))}
}

// Run walks g in topological order, emitting one telemetry record per
// node. In probabilistic mode, a step succeeds iff a draw from the
// executor's local generator falls at or below the component's
// reliability_score. The walk stops at the first failed step.
func (e *Executor) Run(g *graph.AgentGraph) *Result {
	logger := NewTelemetryLogger()

	for _, nodeID := range g.GetExecutionOrder() {
		meta := g.GetMetadata(nodeID)

		success := true
		if e.mode == Probabilistic {
			u := e.rng.Float64()
			success = u <= meta.ReliabilityScore
		}

		logger.Log(meta.Name, meta.AvgLatencyMs, meta.CostPerCall, success)

		if !success {
			break
		}
	}

	return &Result{logger: logger}
}

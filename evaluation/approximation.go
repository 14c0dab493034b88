// Package evaluation measures how well an approximate Pareto frontier
// stands in for the exhaustive ground truth, and runs the (task ×
// synthesizer) evaluation harness over repeated simulated executions.
package evaluation

import "github.com/cortexsynth/agentsynth/pareto"

// ApproximationMetrics bundles the comparison of an approximate frontier
// against the exhaustive ground-truth frontier for one task.
type ApproximationMetrics struct {
	Coverage           float64
	HypervolumeLoss    float64
	AvgCostRegret      float64
	AvgLatencyRegret   float64
	AvgReliabilityRegret float64
}

// EvaluateApproximation computes the full ApproximationMetrics set for
// approx against trueFrontier, under the given hypervolume reference point,
// sample count, and seed. Common random numbers are shared between the
// true and approximate hypervolume passes via pareto.HypervolumeLoss.
func EvaluateApproximation(approx, trueFrontier []*pareto.Candidate, ref pareto.ReferencePoint, numSamples int, seed int64) ApproximationMetrics {
	coverage := pareto.FrontierCoverage(approx, trueFrontier)
	hvLoss := pareto.HypervolumeLoss(approx, trueFrontier, ref, numSamples, seed)
	costRegret, latencyRegret, reliabilityRegret := pareto.AverageRegret(approx, trueFrontier)

	return ApproximationMetrics{
		Coverage:             coverage,
		HypervolumeLoss:      hvLoss,
		AvgCostRegret:        costRegret,
		AvgLatencyRegret:     latencyRegret,
		AvgReliabilityRegret: reliabilityRegret,
	}
}

package pareto

// AdditiveRegret computes candidate's per-objective gap to its closest
// dominator in trueFrontier. If no member of trueFrontier dominates
// candidate, regret is (0, 0, 0).
func AdditiveRegret(candidate *Candidate, trueFrontier []*Candidate) (costRegret, latencyRegret, reliabilityRegret float64) {
	var dominating []*Candidate
	for _, p := range trueFrontier {
		if Dominates(p, candidate) {
			dominating = append(dominating, p)
		}
	}

	if len(dominating) == 0 {
		return 0, 0, 0
	}

	minCostDiff := candidate.TotalCost - dominating[0].TotalCost
	minLatencyDiff := candidate.TotalLatency - dominating[0].TotalLatency
	minReliabilityDiff := dominating[0].TotalReliability - candidate.TotalReliability

	for _, p := range dominating[1:] {
		if d := candidate.TotalCost - p.TotalCost; d < minCostDiff {
			minCostDiff = d
		}
		if d := candidate.TotalLatency - p.TotalLatency; d < minLatencyDiff {
			minLatencyDiff = d
		}
		if d := p.TotalReliability - candidate.TotalReliability; d < minReliabilityDiff {
			minReliabilityDiff = d
		}
	}

	costRegret = clampNonNegative(minCostDiff)
	latencyRegret = clampNonNegative(minLatencyDiff)
	reliabilityRegret = clampNonNegative(minReliabilityDiff)
	return
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// AverageRegret is the component-wise mean of AdditiveRegret across the
// approximate frontier. An empty approximate frontier returns (0, 0, 0).
func AverageRegret(approx, trueFrontier []*Candidate) (costRegret, latencyRegret, reliabilityRegret float64) {
	if len(approx) == 0 {
		return 0, 0, 0
	}

	var totalCost, totalLatency, totalReliability float64
	for _, c := range approx {
		cr, lr, rr := AdditiveRegret(c, trueFrontier)
		totalCost += cr
		totalLatency += lr
		totalReliability += rr
	}

	n := float64(len(approx))
	return totalCost / n, totalLatency / n, totalReliability / n
}

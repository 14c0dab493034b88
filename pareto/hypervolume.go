package pareto

import "math/rand"

// ReferencePoint is the worst-tolerable objective triple used as the
// corner of the hypervolume box: (worst cost, worst latency, worst
// reliability).
type ReferencePoint struct {
	Cost        float64
	Latency     float64
	Reliability float64
}

func boxVolume(ref ReferencePoint) float64 {
	return ref.Cost * ref.Latency * (1.0 - ref.Reliability)
}

func dominatesSample(frontier []*Candidate, cost, latency, reliability float64) bool {
	for _, c := range frontier {
		if c.TotalCost <= cost && c.TotalLatency <= latency && c.TotalReliability >= reliability {
			return true
		}
	}
	return false
}

// HypervolumeMonteCarlo estimates the hypervolume dominated by frontier
// relative to ref via uniform sampling of numSamples points in
// [0,ref.Cost] x [0,ref.Latency] x [ref.Reliability,1], seeded by seed for
// reproducibility. An empty frontier has zero hypervolume.
func HypervolumeMonteCarlo(frontier []*Candidate, ref ReferencePoint, numSamples int, seed int64) float64 {
	if len(frontier) == 0 {
		return 0.0
	}

	rng := rand.New(rand.NewSource(seed))
	dominated := 0

	for i := 0; i < numSamples; i++ {
		cost := rng.Float64() * ref.Cost
		latency := rng.Float64() * ref.Latency
		reliability := ref.Reliability + rng.Float64()*(1.0-ref.Reliability)

		if dominatesSample(frontier, cost, latency, reliability) {
			dominated++
		}
	}

	return (float64(dominated) / float64(numSamples)) * boxVolume(ref)
}

// HypervolumeLoss estimates max(0, hv(true) - hv(approx)) via two Monte
// Carlo passes that consume the SAME sample stream in lockstep (common
// random numbers), so that per-sample variance cancels between the two
// estimates instead of compounding across independent draws. This
// lockstep sharing is semantically significant and must not be split into
// two independent HypervolumeMonteCarlo calls.
func HypervolumeLoss(approx, true_ []*Candidate, ref ReferencePoint, numSamples int, seed int64) float64 {
	rng := rand.New(rand.NewSource(seed))

	dominatedTrue := 0
	dominatedApprox := 0

	for i := 0; i < numSamples; i++ {
		cost := rng.Float64() * ref.Cost
		latency := rng.Float64() * ref.Latency
		reliability := ref.Reliability + rng.Float64()*(1.0-ref.Reliability)

		if dominatesSample(true_, cost, latency, reliability) {
			dominatedTrue++
		}
		if dominatesSample(approx, cost, latency, reliability) {
			dominatedApprox++
		}
	}

	volume := boxVolume(ref)
	hvTrue := (float64(dominatedTrue) / float64(numSamples)) * volume
	hvApprox := (float64(dominatedApprox) / float64(numSamples)) * volume

	loss := hvTrue - hvApprox
	if loss < 0 {
		return 0
	}
	return loss
}

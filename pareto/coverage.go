package pareto

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// roundingEpsilon bounds the decimal places retained before hashing an
// objective tuple. Two metric triples that differ only by floating-point
// summation order (e.g. the same architecture reached through a different
// stage ordering) collapse to the same bucket, which is what "the same
// architecture" should mean for coverage purposes.
const roundingEpsilon = 1e-6

func roundMetric(v float64) float64 {
	return math.Round(v/roundingEpsilon) * roundingEpsilon
}

// metricHash returns a canonical xxhash digest of a candidate's rounded
// objective triple, used as the bucket key for frontier coverage's
// intersection-over-union computation.
func metricHash(c *Candidate) uint64 {
	k := c.metricKey()
	key := fmt.Sprintf("%.6f|%.6f|%.6f", roundMetric(k.cost), roundMetric(k.latency), roundMetric(k.reliability))
	return xxhash.Sum64String(key)
}

func metricHashSet(frontier []*Candidate) map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(frontier))
	for _, c := range frontier {
		set[metricHash(c)] = struct{}{}
	}
	return set
}

// FrontierCoverage computes |approx ∩ true| / |true| over objective
// tuples. An empty true frontier yields 1.0 by convention.
func FrontierCoverage(approx, true_ []*Candidate) float64 {
	trueSet := metricHashSet(true_)
	if len(trueSet) == 0 {
		return 1.0
	}
	approxSet := metricHashSet(approx)

	intersection := 0
	for h := range trueSet {
		if _, ok := approxSet[h]; ok {
			intersection++
		}
	}

	return float64(intersection) / float64(len(trueSet))
}

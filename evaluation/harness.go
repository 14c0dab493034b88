package evaluation

import (
	"context"
	"sort"

	"github.com/cortexsynth/agentsynth/execution"
	"github.com/cortexsynth/agentsynth/pareto"
	"github.com/cortexsynth/agentsynth/synthesis"
	"github.com/cortexsynth/agentsynth/task"
	"github.com/cortexsynth/agentsynth/telemetry"
)

// Result is one (task, synthesizer) pair's aggregated outcome over
// runs_per_experiment repeated executions of its chosen candidate.
type Result struct {
	TaskName       string
	SynthesizerName string
	Candidate      *pareto.Candidate
	AvgCost        float64
	AvgLatency     float64
	SuccessRate    float64
	Runs           int
}

// Harness runs the matrix of named tasks against named synthesizers. Each
// pair is synthesized once; the harness picks the lowest-scoring candidate
// from the returned frontier as its chosen architecture (the unified
// Synthesizer contract returns a list even where a single strategy, like
// Heuristic, only ever produces one element).
type Harness struct {
	RunsPerExperiment int
	Mode              execution.Mode
	BaseSeed          *int64
	Budget            *synthesis.Budget

	// Instruments is optional ambient OTel instrumentation. A nil value
	// disables metric emission entirely; the harness's domain behavior is
	// unaffected either way.
	Instruments *telemetry.Instruments
}

// Run executes the full (task x synthesizer) matrix and returns one Result
// per pair, keyed "<taskName>/<synthesizerName>".
func (h *Harness) Run(ctx context.Context, tasks map[string]*task.Specification, synthesizers map[string]synthesis.Synthesizer) (map[string]*Result, error) {
	results := make(map[string]*Result, len(tasks)*len(synthesizers))

	taskNames := sortedKeys(tasks)
	synthNames := sortedSynthKeys(synthesizers)

	for _, taskName := range taskNames {
		t := tasks[taskName]

		for _, synthName := range synthNames {
			synth := synthesizers[synthName]

			spanCtx, span := telemetry.StartSpan(ctx, "evaluation.harness.run_pair")
			frontier, err := synth.Synthesize(t, h.Budget)
			telemetry.EndSpan(span, err)
			if err != nil {
				return nil, err
			}
			if len(frontier) == 0 {
				continue
			}
			if h.Instruments != nil {
				h.Instruments.RecordEvaluation(spanCtx, synthName)
			}

			chosen := chooseCandidate(frontier, t.ObjectiveWeights)

			result := &Result{
				TaskName:        taskName,
				SynthesizerName: synthName,
				Candidate:       chosen,
				Runs:            h.RunsPerExperiment,
			}

			var totalCost, totalLatency float64
			successes := 0

			for i := 0; i < h.RunsPerExperiment; i++ {
				seed := runSeed(h.BaseSeed, i)
				executor := execution.NewExecutor(h.Mode, seed)
				executed := executor.Run(chosen.Graph)
				summary := executed.Summary()

				if h.Instruments != nil {
					for _, record := range executed.Records() {
						h.Instruments.RecordExecutionStep(spanCtx, record.Component, record.LatencyMs, record.Cost, record.Success)
					}
				}

				totalCost += summary.TotalCost
				totalLatency += summary.TotalLatency
				if summary.Success {
					successes++
				}
			}

			if h.RunsPerExperiment > 0 {
				result.AvgCost = totalCost / float64(h.RunsPerExperiment)
				result.AvgLatency = totalLatency / float64(h.RunsPerExperiment)
				result.SuccessRate = float64(successes) / float64(h.RunsPerExperiment)
			}

			results[taskName+"/"+synthName] = result
		}
	}

	return results, nil
}

// chooseCandidate resolves the open question of "one architecture from a
// frontier" by picking the lowest-scoring element under the task's
// objective weights.
func chooseCandidate(frontier []*pareto.Candidate, weights task.ObjectiveWeights) *pareto.Candidate {
	best := frontier[0]
	bestScore := best.Score(weights)
	for _, c := range frontier[1:] {
		if s := c.Score(weights); s < bestScore {
			best, bestScore = c, s
		}
	}
	return best
}

// runSeed returns base+i as a *int64, or nil if base is nil (unseeded).
func runSeed(base *int64, i int) *int64 {
	if base == nil {
		return nil
	}
	seed := *base + int64(i)
	return &seed
}

func sortedKeys(m map[string]*task.Specification) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSynthKeys(m map[string]synthesis.Synthesizer) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

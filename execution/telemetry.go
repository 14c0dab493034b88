// Package execution implements the simulated executor: it walks an
// architecture graph in topological order and realizes each step's
// declared cost/latency/reliability, producing a per-run telemetry log.
package execution

// TelemetryRecord is one executed step: the component name, its declared
// latency and cost, and whether it succeeded.
type TelemetryRecord struct {
	Component string
	LatencyMs float64
	Cost      float64
	Success   bool
}

// Summary aggregates a run's telemetry.
type Summary struct {
	TotalCost    float64
	TotalLatency float64
	Success      bool
	Steps        int
}

// TelemetryLogger accumulates TelemetryRecord values for a single
// execution run. It is plain per-run data, deliberately separate from any
// ambient observability instrumentation.
type TelemetryLogger struct {
	records []TelemetryRecord
}

// NewTelemetryLogger returns an empty logger.
func NewTelemetryLogger() *TelemetryLogger {
	return &TelemetryLogger{}
}

// Log appends one record.
func (t *TelemetryLogger) Log(component string, latencyMs, cost float64, success bool) {
	t.records = append(t.records, TelemetryRecord{
		Component: component,
		LatencyMs: latencyMs,
		Cost:      cost,
		Success:   success,
	})
}

// Records returns the accumulated log in execution order.
func (t *TelemetryLogger) Records() []TelemetryRecord {
	return t.records
}

// Summary reports total_cost, total_latency, the AND of every record's
// success bit (true for an empty log), and the step count.
func (t *TelemetryLogger) Summary() Summary {
	summary := Summary{Success: true}
	for _, record := range t.records {
		summary.TotalCost += record.Cost
		summary.TotalLatency += record.LatencyMs
		summary.Success = summary.Success && record.Success
		summary.Steps++
	}
	return summary
}

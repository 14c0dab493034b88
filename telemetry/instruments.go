// Package telemetry provides ambient OpenTelemetry instrumentation — spans
// and metrics emitted around synthesis runs and executor runs. It is
// strictly observability plumbing: the plain per-run data structures
// (execution.TelemetryLogger, execution.TelemetryRecord) do not depend on
// it and remain usable with no OTel SDK configured at all.
package telemetry

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Instruments caches the meter instruments this module emits, following
// the create-once-reuse pattern needed because repeatedly creating an
// instrument with the same name is wasteful and, for some exporters, unsafe
// for concurrent use.
type Instruments struct {
	meter      metric.Meter
	counters   map[string]metric.Int64Counter
	histograms map[string]metric.Float64Histogram
	mu         sync.RWMutex
}

// NewInstruments builds an instrument cache against the named meter.
func NewInstruments(meterName string) *Instruments {
	return &Instruments{
		meter:      otel.Meter(meterName),
		counters:   make(map[string]metric.Int64Counter),
		histograms: make(map[string]metric.Float64Histogram),
	}
}

func (i *Instruments) counter(name, description string) (metric.Int64Counter, error) {
	i.mu.RLock()
	c, ok := i.counters[name]
	i.mu.RUnlock()
	if ok {
		return c, nil
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if c, ok = i.counters[name]; ok {
		return c, nil
	}
	c, err := i.meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		return nil, fmt.Errorf("create counter %s: %w", name, err)
	}
	i.counters[name] = c
	return c, nil
}

func (i *Instruments) histogram(name, description, unit string) (metric.Float64Histogram, error) {
	i.mu.RLock()
	h, ok := i.histograms[name]
	i.mu.RUnlock()
	if ok {
		return h, nil
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if h, ok = i.histograms[name]; ok {
		return h, nil
	}
	h, err := i.meter.Float64Histogram(name, metric.WithDescription(description), metric.WithUnit(unit))
	if err != nil {
		return nil, fmt.Errorf("create histogram %s: %w", name, err)
	}
	i.histograms[name] = h
	return h, nil
}

// RecordEvaluation increments the synthesis-evaluation counter for the
// named strategy.
func (i *Instruments) RecordEvaluation(ctx context.Context, strategy string) {
	c, err := i.counter("agentsynth.synthesis.evaluations", "architectures evaluated during synthesis")
	if err != nil {
		return
	}
	c.Add(ctx, 1, metric.WithAttributes(otelStrategyAttr(strategy)))
}

// RecordExecutionStep records one executed step's declared latency and
// cost, and increments a success/failure counter.
func (i *Instruments) RecordExecutionStep(ctx context.Context, component string, latencyMs, cost float64, success bool) {
	if h, err := i.histogram("agentsynth.execution.step_latency_ms", "declared latency of an executed step", "ms"); err == nil {
		h.Record(ctx, latencyMs, metric.WithAttributes(otelComponentAttr(component)))
	}
	if h, err := i.histogram("agentsynth.execution.step_cost", "declared cost of an executed step", "1"); err == nil {
		h.Record(ctx, cost, metric.WithAttributes(otelComponentAttr(component)))
	}
	if c, err := i.counter("agentsynth.execution.steps", "executed steps by outcome"); err == nil {
		c.Add(ctx, 1, metric.WithAttributes(otelComponentAttr(component), otelSuccessAttr(success)))
	}
}

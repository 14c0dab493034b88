// Package task defines the formal task specification synthesizers consume:
// an ordered capability chain, hard feasibility constraints, and the
// scalar objective weights used by the heuristic and beam scoring
// function.
package task

import (
	"fmt"

	"github.com/cortexsynth/agentsynth/core"
)

// ObjectiveWeights weights the three optimization objectives. The map must
// contain only the keys "cost", "latency", and "error"; DefaultObjectiveWeights
// supplies 1.0 for each when the caller doesn't care to tune them.
type ObjectiveWeights map[string]float64

// DefaultObjectiveWeights returns the balanced {cost: 1, latency: 1, error: 1}
// weighting used when a task doesn't specify its own.
func DefaultObjectiveWeights() ObjectiveWeights {
	return ObjectiveWeights{"cost": 1.0, "latency": 1.0, "error": 1.0}
}

var validObjectiveKeys = map[string]bool{"cost": true, "latency": true, "error": true}

// Specification is the immutable, formal definition of a synthesis task.
type Specification struct {
	RequiredCapabilities []string

	MaxCost           *float64
	MaxLatency        *float64
	PrivacyConstraint *core.PrivacyLevel

	ObjectiveWeights ObjectiveWeights
}

// New builds a Specification, filling in default objective weights when
// none are given. It does not validate — call Validate before synthesis.
func New(requiredCapabilities []string, opts ...Option) *Specification {
	spec := &Specification{
		RequiredCapabilities: requiredCapabilities,
		ObjectiveWeights:     DefaultObjectiveWeights(),
	}
	for _, opt := range opts {
		opt(spec)
	}
	return spec
}

// Option configures a Specification at construction time.
type Option func(*Specification)

func WithMaxCost(v float64) Option {
	return func(s *Specification) { s.MaxCost = &v }
}

func WithMaxLatency(v float64) Option {
	return func(s *Specification) { s.MaxLatency = &v }
}

func WithPrivacyConstraint(v core.PrivacyLevel) Option {
	return func(s *Specification) { s.PrivacyConstraint = &v }
}

func WithObjectiveWeights(w ObjectiveWeights) Option {
	return func(s *Specification) { s.ObjectiveWeights = w }
}

// Validate checks that the task is well-formed: at least one required
// capability, and objective weight keys drawn only from {cost, latency,
// error}. Unlike the reference implementation it actually raises on an
// empty capability list (see DESIGN.md, Open Question 1).
func (s *Specification) Validate() error {
	if len(s.RequiredCapabilities) == 0 {
		return core.NewError("task.Validate", core.KindConfig, core.ErrEmptyCapabilities)
	}

	for key := range s.ObjectiveWeights {
		if !validObjectiveKeys[key] {
			return core.NewError("task.Validate", core.KindConfig,
				fmt.Errorf("%w: %q", core.ErrInvalidObjective, key))
		}
	}

	return nil
}

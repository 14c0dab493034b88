// Package synthesis implements the budget controller and the four
// synthesis strategies (exhaustive, heuristic, random, beam) that turn a
// task specification into an approximate Pareto frontier of
// pareto.Candidate values.
package synthesis

import (
	"sync"
	"time"

	"github.com/cortexsynth/agentsynth/core"
)

// Budget bounds a synthesis run: an evaluation ceiling, a wall-clock
// ceiling, and an optional deterministic seed for stochastic strategies.
// A nil MaxEvaluations or MaxTimeSeconds means "unbounded" for that
// dimension; a nil RandomSeed means stochastic strategies are unseeded.
type Budget struct {
	MaxEvaluations  *int
	MaxTimeSeconds  *float64
	RandomSeed      *int64
}

// Context tracks evaluation count and elapsed time against a Budget.
// register_evaluation() must be called immediately before counting an
// architecture as evaluated; can_evaluate() is a non-mutating check.
// Guarded by a mutex in the style of the teacher's circuit breaker state
// (resilience/circuit_breaker.go), trimmed to the much smaller surface a
// budget ceiling needs: one evaluation counter and a start time, no state
// machine.
type Context struct {
	mu         sync.Mutex
	budget     *Budget
	evaluations int
	start      time.Time
}

// NewContext starts the wall-clock timer immediately.
func NewContext(budget *Budget) *Context {
	return &Context{budget: budget, start: time.Now()}
}

func (c *Context) exceeded() bool {
	if c.budget == nil {
		return false
	}
	if c.budget.MaxEvaluations != nil && c.evaluations >= *c.budget.MaxEvaluations {
		return true
	}
	if c.budget.MaxTimeSeconds != nil && time.Since(c.start).Seconds() >= *c.budget.MaxTimeSeconds {
		return true
	}
	return false
}

// CanEvaluate is a non-mutating check of whether another evaluation would
// be permitted right now.
func (c *Context) CanEvaluate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.exceeded()
}

// RegisterEvaluation must be called immediately before counting an
// architecture as evaluated. It returns ErrBudgetExceeded if either limit
// is already reached; otherwise it increments the counter and returns nil.
func (c *Context) RegisterEvaluation() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.exceeded() {
		return core.NewError("synthesis.RegisterEvaluation", core.KindBudget, core.ErrBudgetExceeded)
	}
	c.evaluations++
	return nil
}

// Evaluations reports how many evaluations have been registered so far.
func (c *Context) Evaluations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evaluations
}

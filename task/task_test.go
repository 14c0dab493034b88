package task

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cortexsynth/agentsynth/core"
)

func TestNewAppliesDefaultWeights(t *testing.T) {
	s := New([]string{"retrieve"})
	assert.Equal(t, DefaultObjectiveWeights(), s.ObjectiveWeights)
}

func TestValidateRejectsEmptyCapabilities(t *testing.T) {
	s := New(nil)
	err := s.Validate()
	assert.ErrorIs(t, err, core.ErrEmptyCapabilities)
}

func TestValidateRejectsUnknownObjectiveKey(t *testing.T) {
	s := New([]string{"retrieve"}, WithObjectiveWeights(ObjectiveWeights{"throughput": 1.0}))
	err := s.Validate()
	assert.Error(t, err)
}

func TestValidateAcceptsWellFormedSpec(t *testing.T) {
	s := New([]string{"retrieve", "summarize"}, WithMaxCost(0.5), WithMaxLatency(1000))
	assert.NoError(t, s.Validate())
	assert.Equal(t, 0.5, *s.MaxCost)
	assert.Equal(t, 1000.0, *s.MaxLatency)
}

package registryio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexsynth/agentsynth/core"
)

const sampleCatalog = `
components:
  - name: gpt-summarizer
    component_type: model
    capabilities: [summarize]
    cost_per_call: 0.012
    avg_latency_ms: 450
    reliability_score: 0.97
    privacy_level: external
  - name: claim-verifier
    component_type: verification
    capabilities: [verify]
    cost_per_call: 0.003
    avg_latency_ms: 150
    reliability_score: 0.93
    privacy_level: internal
`

func TestLoadCatalogRegistersEveryEntry(t *testing.T) {
	registry := core.NewCapabilityRegistry()
	require.NoError(t, LoadCatalog(strings.NewReader(sampleCatalog), registry))

	assert.Len(t, registry.ListAll(), 2)

	meta, err := registry.Get("gpt-summarizer")
	require.NoError(t, err)
	assert.Equal(t, core.ComponentModel, meta.ComponentType)
	assert.Equal(t, core.PrivacyExternal, meta.PrivacyLevel)
	assert.True(t, meta.Supports("summarize"))
}

func TestLoadCatalogFailsOnDuplicateName(t *testing.T) {
	registry := core.NewCapabilityRegistry()
	require.NoError(t, LoadCatalog(strings.NewReader(sampleCatalog), registry))

	err := LoadCatalog(strings.NewReader(sampleCatalog), registry)
	assert.Error(t, err)
}

func TestLoadCatalogRejectsMalformedYAML(t *testing.T) {
	registry := core.NewCapabilityRegistry()
	err := LoadCatalog(strings.NewReader("not: [valid"), registry)
	assert.Error(t, err)
}

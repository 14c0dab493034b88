// Package registryio loads ComponentMetadata catalogs from YAML. It takes
// an io.Reader rather than a file path: the registry itself has no notion
// of config files or environment-driven paths, and callers wire in
// whatever source (embedded asset, os.Open, network fetch) fits their
// deployment.
package registryio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cortexsynth/agentsynth/core"
)

// catalogEntry mirrors core.ComponentMetadata's public fields for YAML
// decoding; it exists so the wire format can evolve independently of the
// in-memory type's field tags.
type catalogEntry struct {
	Name              string                 `yaml:"name"`
	ComponentType     string                 `yaml:"component_type"`
	Capabilities      []string               `yaml:"capabilities"`
	CostPerCall       float64                `yaml:"cost_per_call"`
	AvgLatencyMs      float64                `yaml:"avg_latency_ms"`
	ReliabilityScore  float64                `yaml:"reliability_score"`
	PrivacyLevel      string                 `yaml:"privacy_level"`
	InputSchema       map[string]interface{} `yaml:"input_schema"`
	OutputSchema      map[string]interface{} `yaml:"output_schema"`
}

type catalog struct {
	Components []catalogEntry `yaml:"components"`
}

// LoadCatalog decodes a YAML document of the form:
//
//	components:
//	  - name: gpt-summarizer
//	    component_type: model
//	    capabilities: [summarize]
//	    cost_per_call: 0.002
//	    avg_latency_ms: 450
//	    reliability_score: 0.98
//	    privacy_level: external
//
// and registers every entry into registry. It stops and returns an error
// on the first entry whose name duplicates an existing registration;
// entries are not otherwise validated.
func LoadCatalog(r io.Reader, registry *core.CapabilityRegistry) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("registryio: read catalog: %w", err)
	}

	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("registryio: parse catalog: %w", err)
	}

	for _, entry := range c.Components {
		meta := &core.ComponentMetadata{
			Name:             entry.Name,
			ComponentType:    core.ComponentType(entry.ComponentType),
			Capabilities:     entry.Capabilities,
			CostPerCall:      entry.CostPerCall,
			AvgLatencyMs:     entry.AvgLatencyMs,
			ReliabilityScore: entry.ReliabilityScore,
			PrivacyLevel:     core.PrivacyLevel(entry.PrivacyLevel),
			InputSchema:      entry.InputSchema,
			OutputSchema:     entry.OutputSchema,
		}

		if err := registry.Register(meta); err != nil {
			return fmt.Errorf("registryio: register %q: %w", entry.Name, err)
		}
	}

	return nil
}

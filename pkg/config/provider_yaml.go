package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/mdwrap/mdwrap/internal/plotcfg"
)

// YAMLProvider loads configuration documents from YAML files.
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a provider reading from filename.
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{filename: filename}
}

// LoadRunConfig loads and validates a simulation run configuration.
func (y *YAMLProvider) LoadRunConfig() (*RunConfig, error) {
	raw, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	var cfg RunConfig
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", y.filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run configuration %s: %w", y.filename, err)
	}
	return &cfg, nil
}

// LoadPlotConfig loads, validates and normalizes a plotting
// configuration. The "type" discriminator is required, the output
// section is stripped of renderer-controlled options, and the per-plot
// blocks are merged with the shared "general" block and filtered.
func (y *YAMLProvider) LoadPlotConfig() (*PlotConfig, error) {
	raw, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	var doc map[interface{}]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", y.filename, err)
	}
	tree, ok := stringKeys(doc).(plotcfg.Tree)
	if !ok {
		return nil, fmt.Errorf("%s: top-level document is not a mapping", y.filename)
	}

	plotType, err := validatePlotType(tree)
	if err != nil {
		return nil, fmt.Errorf("invalid plot configuration %s: %w", y.filename, err)
	}

	cfg := &PlotConfig{Type: plotType}

	if output, ok := tree["output"].(plotcfg.Tree); ok {
		cfg.Output = plotcfg.FilterOutput(output)
	} else {
		cfg.Output = plotcfg.Tree{}
	}

	if plotType == PlotTypeLineplots {
		plots, ok := tree["plot"].(plotcfg.Tree)
		if !ok {
			return nil, fmt.Errorf("invalid plot configuration %s: missing 'plot' section",
				y.filename)
		}
		cfg.Plots = plotcfg.NormalizeLineplots(plots)
	}

	return cfg, nil
}

// stringKeys rewrites the map[interface{}]interface{} values that
// yaml.v2 produces into string-keyed trees, recursively. Non-string
// keys are stringified with %v.
func stringKeys(v interface{}) interface{} {
	switch val := v.(type) {
	case map[interface{}]interface{}:
		out := make(plotcfg.Tree, len(val))
		for k, item := range val {
			out[fmt.Sprintf("%v", k)] = stringKeys(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = stringKeys(item)
		}
		return out
	default:
		return v
	}
}

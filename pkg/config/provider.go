// Package config loads the YAML documents that drive the mdwrap tools:
// the run configuration that describes a simulation, and the plot
// configuration that describes how state data should be rendered.
package config

import (
	"errors"
	"fmt"

	"github.com/mdwrap/mdwrap/internal/plotcfg"
)

// Errors reported while validating configuration documents.
var (
	// ErrMissingPlotType is returned when a plot configuration has no
	// top-level "type" discriminator.
	ErrMissingPlotType = errors.New("plot type missing from configuration")

	// ErrUnsupportedPlotType is returned when the discriminator names a
	// plot type this tool does not render.
	ErrUnsupportedPlotType = errors.New("unsupported plot type")
)

// PlotTypeLineplots is the only plot type currently recognized.
const PlotTypeLineplots = "lineplots"

// supportedPlotTypes lists the recognized plot types for error
// messages.
var supportedPlotTypes = []string{PlotTypeLineplots}

// PlotConfig is a validated, normalized plotting configuration.
type PlotConfig struct {
	// Type is the plot type discriminator.
	Type string

	// Output holds options for the output file, already stripped of the
	// keys the renderer controls itself.
	Output plotcfg.Tree

	// Plots maps each subplot name to its normalized settings, with the
	// shared "general" block already merged underneath.
	Plots plotcfg.Tree
}

// Provider is a source of mdwrap configuration documents.
type Provider interface {
	LoadRunConfig() (*RunConfig, error)
	LoadPlotConfig() (*PlotConfig, error)
}

func supportedPlotTypesString() string {
	s := ""
	for _, t := range supportedPlotTypes {
		if s != "" {
			s += ", "
		}
		s += "'" + t + "'"
	}
	return s
}

// validatePlotType checks the discriminator of a raw plot
// configuration.
func validatePlotType(raw plotcfg.Tree) (string, error) {
	v, ok := raw["type"]
	if !ok || v == nil {
		return "", fmt.Errorf("%w (supported plot types are: %s)",
			ErrMissingPlotType, supportedPlotTypesString())
	}
	plotType, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %v (supported plot types are: %s)",
			ErrUnsupportedPlotType, v, supportedPlotTypesString())
	}
	for _, t := range supportedPlotTypes {
		if plotType == t {
			return plotType, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported plot types are: %s)",
		ErrUnsupportedPlotType, plotType, supportedPlotTypesString())
}

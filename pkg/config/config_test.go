package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mdwrap/mdwrap/internal/plotcfg"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPlotConfig(t *testing.T) {
	path := writeConfig(t, `
type: lineplots
output:
  dpi: 300
  fname: denied.pdf
plot:
  general:
    lineplot:
      linewidth: 1.5
  temperature:
    lineplot:
      color: "#d62a28"
      xdata: [1, 2]
    title:
      label: Temperature
`)

	cfg, err := NewYAMLProvider(path).LoadPlotConfig()
	if err != nil {
		t.Fatalf("LoadPlotConfig failed: %v", err)
	}
	if cfg.Type != PlotTypeLineplots {
		t.Errorf("type: got %q, want %q", cfg.Type, PlotTypeLineplots)
	}

	if _, ok := cfg.Output["fname"]; ok {
		t.Error("output section kept the denylisted fname option")
	}
	if dpi, ok := cfg.Output["dpi"]; !ok || dpi != 300 {
		t.Errorf("output dpi: got %v", cfg.Output["dpi"])
	}

	temp, ok := cfg.Plots["temperature"].(plotcfg.Tree)
	if !ok {
		t.Fatalf("temperature plot missing: %#v", cfg.Plots)
	}
	lp := temp["lineplot"].(plotcfg.Tree)
	if lp["color"] != "#d62a28" {
		t.Errorf("color: got %v", lp["color"])
	}
	if lp["linewidth"] != 1.5 {
		t.Errorf("general linewidth not merged: got %v", lp["linewidth"])
	}
	if _, ok := lp["xdata"]; ok {
		t.Error("denylisted xdata option survived")
	}
}

func TestLoadPlotConfigTypeValidation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  error
	}{
		{"missing type", "plot: {}\n", ErrMissingPlotType},
		{"unsupported type", "type: scatter\nplot: {}\n", ErrUnsupportedPlotType},
		{"non-string type", "type: [1]\nplot: {}\n", ErrUnsupportedPlotType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)
			_, err := NewYAMLProvider(path).LoadPlotConfig()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadPlotConfigMissingPlotSection(t *testing.T) {
	path := writeConfig(t, "type: lineplots\n")
	if _, err := NewYAMLProvider(path).LoadPlotConfig(); err == nil {
		t.Error("expected an error for a missing plot section")
	}
}

func TestLoadRunConfig(t *testing.T) {
	path := writeConfig(t, `
name: npt-production
nSteps: 5000000
system:
  nonbondedMethod: PME
  nonbondedCutoff: 1.0
  constraints: HBonds
integrator:
  name: LangevinMiddleIntegrator
  isFrom: openmm
  temperature: 300.0
  frictionCoeff: 1.0
  stepSize: 0.002
barostat:
  name: MonteCarloBarostat
  pressure: 1.0
  temperature: 300.0
  frequency: 25
reporters:
  stateDataFile: state_data.csv
  stateDataInterval: 1000
`)

	cfg, err := NewYAMLProvider(path).LoadRunConfig()
	if err != nil {
		t.Fatalf("LoadRunConfig failed: %v", err)
	}
	if cfg.Name != "npt-production" || cfg.NSteps != 5000000 {
		t.Errorf("unexpected run metadata: %+v", cfg)
	}
	if cfg.Integrator.Name != IntegratorLangevinMiddle {
		t.Errorf("integrator: got %q", cfg.Integrator.Name)
	}
	if cfg.Barostat.Name != BarostatMonteCarlo {
		t.Errorf("barostat: got %q", cfg.Barostat.Name)
	}
}

func TestLoadRunConfigValidation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			"unknown integrator",
			"integrator:\n  name: LeapfrogIntegrator\n",
		},
		{
			"unknown integrator provider",
			"integrator:\n  name: VerletIntegrator\n  isFrom: openmmtools\n",
		},
		{
			"unknown thermostat",
			"thermostat:\n  name: BerendsenThermostat\n",
		},
		{
			"unknown barostat",
			"barostat:\n  name: ParrinelloRahmanBarostat\n",
		},
		{
			"negative steps",
			"nSteps: -1\n",
		},
		{
			"state data file without interval",
			"reporters:\n  stateDataFile: out.csv\n",
		},
		{
			"unknown field",
			"stepCount: 100\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)
			if _, err := NewYAMLProvider(path).LoadRunConfig(); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

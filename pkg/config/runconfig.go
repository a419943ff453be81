package config

import (
	"fmt"
)

// IntegratorKind identifies an integrator the wrapped engine provides.
// The set is closed; adding a variant means extending the validation
// switch below and nothing else.
type IntegratorKind string

const (
	IntegratorVerlet           IntegratorKind = "VerletIntegrator"
	IntegratorLangevin         IntegratorKind = "LangevinIntegrator"
	IntegratorLangevinMiddle   IntegratorKind = "LangevinMiddleIntegrator"
	IntegratorNoseHoover       IntegratorKind = "NoseHooverIntegrator"
	IntegratorBrownian         IntegratorKind = "BrownianIntegrator"
	IntegratorVariableVerlet   IntegratorKind = "VariableVerletIntegrator"
	IntegratorVariableLangevin IntegratorKind = "VariableLangevinIntegrator"
)

// Valid reports whether the kind names a supported integrator.
func (k IntegratorKind) Valid() bool {
	switch k {
	case IntegratorVerlet, IntegratorLangevin, IntegratorLangevinMiddle,
		IntegratorNoseHoover, IntegratorBrownian,
		IntegratorVariableVerlet, IntegratorVariableLangevin:
		return true
	}
	return false
}

// ThermostatKind identifies a thermostat the wrapped engine provides.
type ThermostatKind string

const (
	ThermostatAndersen ThermostatKind = "AndersenThermostat"
)

// Valid reports whether the kind names a supported thermostat.
func (k ThermostatKind) Valid() bool {
	return k == ThermostatAndersen
}

// BarostatKind identifies a barostat the wrapped engine provides.
type BarostatKind string

const (
	BarostatMonteCarlo            BarostatKind = "MonteCarloBarostat"
	BarostatMonteCarloAnisotropic BarostatKind = "MonteCarloAnisotropicBarostat"
	BarostatMonteCarloMembrane    BarostatKind = "MonteCarloMembraneBarostat"
)

// Valid reports whether the kind names a supported barostat.
func (k BarostatKind) Valid() bool {
	switch k {
	case BarostatMonteCarlo, BarostatMonteCarloAnisotropic,
		BarostatMonteCarloMembrane:
		return true
	}
	return false
}

// SystemConfig describes how the engine should build the system.
type SystemConfig struct {
	ForceFieldFiles []string `yaml:"forceFieldFiles"`
	NonbondedMethod string   `yaml:"nonbondedMethod"`
	// NonbondedCutoff is in nanometers.
	NonbondedCutoff float64 `yaml:"nonbondedCutoff"`
	Constraints     string  `yaml:"constraints"`
	RigidWater      *bool   `yaml:"rigidWater"`
}

// SolvationConfig describes the solvation step.
type SolvationConfig struct {
	Model string `yaml:"model"`
	// Padding is in nanometers.
	Padding float64 `yaml:"padding"`
	// IonicStrength is in molar units.
	IonicStrength float64 `yaml:"ionicStrength"`
	Neutralize    *bool   `yaml:"neutralize"`
}

// MinimizationConfig describes the energy minimization step.
type MinimizationConfig struct {
	// Tolerance is in kJ/(mol nm).
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"maxIterations"`
}

// IntegratorConfig selects and parameterizes the integrator.
type IntegratorConfig struct {
	Name IntegratorKind `yaml:"name"`
	// IsFrom records which provider implements the integrator. Only
	// "openmm" providers are recognized today.
	IsFrom string `yaml:"isFrom"`
	// Temperature is in kelvin.
	Temperature float64 `yaml:"temperature"`
	// FrictionCoeff is in 1/ps.
	FrictionCoeff float64 `yaml:"frictionCoeff"`
	// StepSize is in picoseconds.
	StepSize float64 `yaml:"stepSize"`
	// ErrorTolerance applies to the variable-step integrators.
	ErrorTolerance float64 `yaml:"errorTolerance"`
}

// ThermostatConfig selects and parameterizes the thermostat.
type ThermostatConfig struct {
	Name ThermostatKind `yaml:"name"`
	// Temperature is in kelvin.
	Temperature float64 `yaml:"temperature"`
	// CollisionFrequency is in 1/ps.
	CollisionFrequency float64 `yaml:"collisionFrequency"`
}

// BarostatConfig selects and parameterizes the barostat.
type BarostatConfig struct {
	Name BarostatKind `yaml:"name"`
	// Pressure is in bar.
	Pressure float64 `yaml:"pressure"`
	// Temperature is in kelvin.
	Temperature float64 `yaml:"temperature"`
	// Frequency is in steps between volume moves.
	Frequency int `yaml:"frequency"`
}

// ReportersConfig describes the files the run writes while stepping.
type ReportersConfig struct {
	TrajectoryFile     string `yaml:"trajectoryFile"`
	TrajectoryInterval int    `yaml:"trajectoryInterval"`
	StateDataFile      string `yaml:"stateDataFile"`
	StateDataInterval  int    `yaml:"stateDataInterval"`
	CheckpointFile     string `yaml:"checkpointFile"`
	CheckpointInterval int    `yaml:"checkpointInterval"`
}

// RunConfig is the document describing one simulation run. The engine
// calls themselves happen outside this toolkit; the archive and summary
// tools consume this metadata.
type RunConfig struct {
	Name         string              `yaml:"name"`
	NSteps       int                 `yaml:"nSteps"`
	System       *SystemConfig       `yaml:"system"`
	Solvation    *SolvationConfig    `yaml:"solvation"`
	Minimization *MinimizationConfig `yaml:"minimization"`
	Integrator   *IntegratorConfig   `yaml:"integrator"`
	Thermostat   *ThermostatConfig   `yaml:"thermostat"`
	Barostat     *BarostatConfig     `yaml:"barostat"`
	Reporters    *ReportersConfig    `yaml:"reporters"`
}

// Validate checks the document for values the engine would reject.
func (c *RunConfig) Validate() error {
	if c.NSteps < 0 {
		return fmt.Errorf("nSteps must not be negative, got %d", c.NSteps)
	}
	if c.Integrator != nil {
		if !c.Integrator.Name.Valid() {
			return fmt.Errorf("unknown integrator %q", string(c.Integrator.Name))
		}
		if c.Integrator.IsFrom != "" && c.Integrator.IsFrom != "openmm" {
			return fmt.Errorf("no integrators from %q are supported", c.Integrator.IsFrom)
		}
		if c.Integrator.StepSize < 0 {
			return fmt.Errorf("integrator step size must not be negative, got %g",
				c.Integrator.StepSize)
		}
	}
	if c.Thermostat != nil && !c.Thermostat.Name.Valid() {
		return fmt.Errorf("unknown thermostat %q", string(c.Thermostat.Name))
	}
	if c.Barostat != nil && !c.Barostat.Name.Valid() {
		return fmt.Errorf("unknown barostat %q", string(c.Barostat.Name))
	}
	if c.Reporters != nil {
		if c.Reporters.StateDataFile != "" && c.Reporters.StateDataInterval <= 0 {
			return fmt.Errorf("stateDataInterval must be positive when a state data file is set")
		}
		if c.Reporters.TrajectoryFile != "" && c.Reporters.TrajectoryInterval <= 0 {
			return fmt.Errorf("trajectoryInterval must be positive when a trajectory file is set")
		}
	}
	return nil
}

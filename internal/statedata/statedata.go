// Package statedata handles the "state data" logs that a simulation
// engine emits while stepping: one row per reporting interval, with
// named scalar columns (energies, temperature, box volume, density...).
package statedata

import (
	"errors"
	"fmt"
)

// Errors reported by state-data operations.
var (
	// ErrInvalidQuantity is returned when a quantity identifier is not
	// part of the supported set.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrColumnNotFound is returned when a series lacks the column a
	// quantity maps to.
	ErrColumnNotFound = errors.New("column not found in state data")

	// ErrEmptySeries is returned when an operation needs at least one
	// frame and the series has none.
	ErrEmptySeries = errors.New("state data contains no frames")
)

// Quantity identifies a physical quantity recorded in a state-data file.
type Quantity string

// The supported quantities.
const (
	Step            Quantity = "step"
	Time            Quantity = "time"
	PotentialEnergy Quantity = "potential_energy"
	KineticEnergy   Quantity = "kinetic_energy"
	TotalEnergy     Quantity = "total_energy"
	Temperature     Quantity = "temperature"
	BoxVolume       Quantity = "box_volume"
	Density         Quantity = "density"
	Mass            Quantity = "mass"
)

// quantityColumns maps each quantity to the column label used by the
// engine's state-data reporter. The mapping is closed: quantities not
// listed here are rejected.
var quantityColumns = map[Quantity]string{
	Step:            "Step",
	Time:            "Time (ps)",
	PotentialEnergy: "Potential Energy (kJ/mole)",
	KineticEnergy:   "Kinetic Energy (kJ/mole)",
	TotalEnergy:     "Total Energy (kJ/mole)",
	Temperature:     "Temperature (K)",
	BoxVolume:       "Box Volume (nm^3)",
	Density:         "Density (g/mL)",
	Mass:            "Mass",
}

// Column returns the state-data column label for a quantity.
func Column(q Quantity) (string, error) {
	col, ok := quantityColumns[q]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidQuantity, string(q))
	}
	return col, nil
}

// Frame is one recorded row of a state-data series. Columns carries the
// column labels in file order so the frame can be written back out as a
// delimited record.
type Frame struct {
	Columns []string
	Values  map[string]float64
}

// Copy returns a frame sharing no storage with the receiver.
func (f Frame) Copy() Frame {
	cols := make([]string, len(f.Columns))
	copy(cols, f.Columns)
	vals := make(map[string]float64, len(f.Values))
	for k, v := range f.Values {
		vals[k] = v
	}
	return Frame{Columns: cols, Values: vals}
}

// Series is the full recorded time series of observables for one run.
// Frames are kept in the order they were read, which is ascending
// simulation step order for well-formed state-data files.
type Series struct {
	Columns []string
	Frames  []Frame
}

// Len returns the number of frames in the series.
func (s *Series) Len() int {
	return len(s.Frames)
}

// HasColumn reports whether the series carries the given column.
func (s *Series) HasColumn(col string) bool {
	for _, c := range s.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Column returns the values of one column across all frames, in frame
// order.
func (s *Series) Column(col string) ([]float64, error) {
	if !s.HasColumn(col) {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, col)
	}
	vals := make([]float64, len(s.Frames))
	for i, f := range s.Frames {
		vals[i] = f.Values[col]
	}
	return vals, nil
}

// QuantityColumn resolves a quantity to its column label and returns
// that column's values.
func (s *Series) QuantityColumn(q Quantity) ([]float64, error) {
	col, err := Column(q)
	if err != nil {
		return nil, err
	}
	return s.Column(col)
}

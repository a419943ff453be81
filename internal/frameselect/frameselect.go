// Package frameselect picks representative frames out of a state-data
// series, using closeness to the mean of an observable as the
// criterion.
package frameselect

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mdwrap/mdwrap/internal/statedata"
)

// ErrUnsupportedMethod is returned when a selection method name is not
// one of the supported set.
var ErrUnsupportedMethod = errors.New("unsupported frame selection method")

// Method is a frame selection method. The set is closed: each method
// pairs one observable with the choice of averaging over the whole run
// or only its second half.
type Method int

const (
	ClosestToMeanTemperature Method = iota
	ClosestToMeanTemperatureSecondHalf
	ClosestToMeanDensity
	ClosestToMeanDensitySecondHalf
	ClosestToMeanVolume
	ClosestToMeanVolumeSecondHalf
)

var methodNames = map[Method]string{
	ClosestToMeanTemperature:           "closest_to_mean_temperature",
	ClosestToMeanTemperatureSecondHalf: "closest_to_mean_temperature_second_half",
	ClosestToMeanDensity:               "closest_to_mean_density",
	ClosestToMeanDensitySecondHalf:     "closest_to_mean_density_second_half",
	ClosestToMeanVolume:                "closest_to_mean_volume",
	ClosestToMeanVolumeSecondHalf:      "closest_to_mean_volume_second_half",
}

// ParseMethod resolves a method name to a Method.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (supported methods are: %s)",
		ErrUnsupportedMethod, name, MethodNames())
}

// MethodNames returns the supported method names, in declaration order.
func MethodNames() string {
	names := ""
	for m := ClosestToMeanTemperature; m <= ClosestToMeanVolumeSecondHalf; m++ {
		if names != "" {
			names += ", "
		}
		names += "'" + methodNames[m] + "'"
	}
	return names
}

func (m Method) String() string {
	if n, ok := methodNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Quantity returns the observable the method averages.
func (m Method) Quantity() statedata.Quantity {
	switch m {
	case ClosestToMeanTemperature, ClosestToMeanTemperatureSecondHalf:
		return statedata.Temperature
	case ClosestToMeanDensity, ClosestToMeanDensitySecondHalf:
		return statedata.Density
	case ClosestToMeanVolume, ClosestToMeanVolumeSecondHalf:
		return statedata.BoxVolume
	}
	panic(fmt.Sprintf("unknown method %d", int(m)))
}

// UseSecondHalf reports whether the method averages over the second
// half of the run only.
func (m Method) UseSecondHalf() bool {
	switch m {
	case ClosestToMeanTemperatureSecondHalf,
		ClosestToMeanDensitySecondHalf,
		ClosestToMeanVolumeSecondHalf:
		return true
	}
	return false
}

// Find returns the frame selected by the given method. The input series
// is not modified.
func Find(s *statedata.Series, m Method) (statedata.Frame, error) {
	return ClosestToMean(s, m.Quantity(), m.UseSecondHalf())
}

// ClosestToMean returns the frame whose value of quantity is closest to
// the mean value of that quantity, computed either over the entire
// series or over its second half only.
//
// The series is split at index len/2: the second half is frames
// [len/2, len). The candidate frames are always drawn from the second
// half, whichever range supplied the mean; this matches the behavior of
// the engine wrapper this tool descends from and is pinned by tests.
// Ties are broken in favor of the earliest frame.
func ClosestToMean(s *statedata.Series, quantity statedata.Quantity, useSecondHalf bool) (statedata.Frame, error) {
	col, err := statedata.Column(quantity)
	if err != nil {
		return statedata.Frame{}, err
	}
	if s == nil || s.Len() == 0 {
		return statedata.Frame{}, fmt.Errorf("cannot select a %s frame: %w",
			string(quantity), statedata.ErrEmptySeries)
	}

	values, err := s.Column(col)
	if err != nil {
		return statedata.Frame{}, err
	}

	mid := len(values) / 2

	meanPool := values
	if useSecondHalf {
		meanPool = values[mid:]
	}
	mean := stat.Mean(meanPool, nil)

	best := mid
	bestDiff := math.Inf(1)
	for i := mid; i < len(values); i++ {
		diff := math.Abs(values[i] - mean)
		if diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}

	return s.Frames[best].Copy(), nil
}

package lineplot

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Interval types for tick generation.
const (
	intervalDiscrete   = "discrete"
	intervalContinuous = "continuous"
)

// TickOptions describes the interval that an axis' ticks should cover.
// Unset fields get defaults derived from the data.
type TickOptions struct {
	// Type is "discrete" or "continuous".
	Type string

	// RoundToNearest controls the granularity of derived bounds and
	// spacing. Defaults to 1 for discrete intervals and 0.5 for
	// continuous ones.
	RoundToNearest *float64

	// Top and Bottom bound the interval.
	Top    *float64
	Bottom *float64

	// Steps is the number of ticks the interval should have.
	Steps *int

	// Spacing is the distance between consecutive ticks.
	Spacing *float64

	// CenterInZero makes the interval symmetric around zero.
	CenterInZero bool
}

// TickPositions generates tick positions covering values according to
// opts.
func TickPositions(values []float64, opts TickOptions) []float64 {
	if len(values) == 0 && (opts.Top == nil || opts.Bottom == nil) {
		return nil
	}

	rtn := 1.0
	if opts.Type == intervalContinuous {
		rtn = 0.5
	}
	if opts.RoundToNearest != nil {
		rtn = *opts.RoundToNearest
	}

	var top float64
	if opts.Top != nil {
		top = *opts.Top
	} else if opts.Type == intervalDiscrete {
		top = math.Ceil(floats.Max(values))
	} else {
		top = math.Ceil(floats.Max(values)/rtn) * rtn
	}

	var bottom float64
	if opts.Bottom != nil {
		bottom = *opts.Bottom
	} else if opts.Type == intervalDiscrete {
		bottom = math.Trunc(floats.Min(values))
	} else {
		bottom = math.Floor(floats.Min(values)/rtn) * rtn
	}

	if top == bottom {
		return []float64{bottom}
	}

	steps := 10
	if opts.Steps != nil {
		steps = *opts.Steps
	}

	// A spacing <= 0 cannot advance from bottom to top; ignore it and
	// derive one from the step count instead.
	var spacing float64
	if opts.Spacing != nil && *opts.Spacing > 0 {
		spacing = *opts.Spacing
	} else {
		spacing = (top - bottom) / float64(steps-1)
		if opts.Type == intervalDiscrete {
			spacing = math.Ceil(spacing)
		} else {
			spacing = math.Ceil(spacing/rtn) * rtn
		}
	}

	if !(spacing > 0) {
		return nil
	}

	if opts.CenterInZero {
		absval := math.Ceil(top)
		if top <= bottom {
			absval = math.Floor(bottom)
		}
		ticks := make([]float64, steps)
		floats.Span(ticks, -absval, absval)
		return ticks
	}

	var ticks []float64
	for v := bottom; v < top+spacing; v += spacing {
		ticks = append(ticks, v)
	}
	return ticks
}

// FormatTickLabels renders tick positions with the given format verb
// (for instance "%.3f"), trimming the trailing zeros and dangling
// decimal points that fixed-precision formatting leaves behind.
func FormatTickLabels(ticks []float64, format string) []string {
	labels := make([]string, len(ticks))
	for i, tick := range ticks {
		label := fmt.Sprintf(format, tick)
		if label == "0" {
			labels[i] = label
			continue
		}
		if strings.Contains(label, ".") {
			label = strings.TrimRight(label, "0")
		}
		label = strings.TrimSuffix(label, ".")
		labels[i] = label
	}
	return labels
}

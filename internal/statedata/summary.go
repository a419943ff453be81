package statedata

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes one observable over a series.
type Stats struct {
	Quantity Quantity
	Column   string
	N        int
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
}

// Summarize computes summary statistics for one quantity.
func Summarize(s *Series, q Quantity) (Stats, error) {
	if s.Len() == 0 {
		return Stats{}, ErrEmptySeries
	}
	col, err := Column(q)
	if err != nil {
		return Stats{}, err
	}
	values, err := s.Column(col)
	if err != nil {
		return Stats{}, err
	}
	stddev := 0.0
	if len(values) > 1 {
		stddev = stat.StdDev(values, nil)
	}
	return Stats{
		Quantity: q,
		Column:   col,
		N:        len(values),
		Mean:     stat.Mean(values, nil),
		StdDev:   stddev,
		Min:      floats.Min(values),
		Max:      floats.Max(values),
	}, nil
}

package statedata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
)

// WriteFrame writes a frame as a single delimited record, no header, in
// the frame's column order.
func WriteFrame(w io.Writer, f Frame, sep rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = sep

	record := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		v, ok := f.Values[col]
		if !ok {
			return fmt.Errorf("%w: %q", ErrColumnNotFound, col)
		}
		record[i] = formatValue(v)
	}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("failed to write frame record: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// WriteFrameFile writes a frame to path, replacing any existing file.
func WriteFrameFile(path string, f Frame, sep rune) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create frame file: %w", err)
	}
	if err := WriteFrame(out, f, sep); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func formatValue(v float64) string {
	// Whole-valued observables (step counts, masses) should not come
	// out as "1e+06".
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

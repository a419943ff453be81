package statedata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ParseSeparator validates a user-supplied column separator flag. The
// separator must be a single character.
func ParseSeparator(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("column separator must be a single character, got %q", s)
	}
	return runes[0], nil
}

// ReadFile loads a state-data file. Files ending in ".gz" are
// transparently decompressed. sep is the column separator (the engine's
// reporter defaults to a comma but is configurable).
func ReadFile(path string, sep rune) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state data file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip state data file: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	s, err := Read(r, sep)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return s, nil
}

// Read parses state data from r. The first record is the header; the
// engine's reporter prefixes it with '#' and quotes every label, so
// those artifacts are stripped before the labels are used.
func Read(r io.Reader, sep rune) (*Series, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row: %w", ErrEmptySeries)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = cleanColumnLabel(h)
	}

	s := &Series{Columns: cols}
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}
		if len(record) != len(cols) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d",
				row, len(record), len(cols))
		}

		vals := make(map[string]float64, len(cols))
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: cannot parse %q as a number",
					row, cols[i], field)
			}
			if math.IsNaN(v) {
				return nil, fmt.Errorf("row %d, column %q: NaN value", row, cols[i])
			}
			vals[cols[i]] = v
		}
		s.Frames = append(s.Frames, Frame{Columns: s.Columns, Values: vals})
	}

	return s, nil
}

// cleanColumnLabel removes the reporter's formatting artifacts from a
// header cell: a leading run of '#' and '"' characters, a trailing run
// of '"' characters, and surrounding whitespace.
func cleanColumnLabel(label string) string {
	label = strings.TrimSpace(label)
	label = strings.TrimLeft(label, `#"`)
	label = strings.TrimRight(label, `"`)
	return label
}

package statedata

import (
	"bytes"
	"compress/gzip"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `#"Step","Time (ps)","Potential Energy (kJ/mole)","Temperature (K)","Box Volume (nm^3)","Density (g/mL)"
100,0.2,-1500.5,298.1,27.0,0.997
200,0.4,-1499.8,301.4,27.1,0.995
300,0.6,-1501.2,299.0,27.0,0.996
`

func TestRead(t *testing.T) {
	s, err := Read(strings.NewReader(sampleCSV), ',')
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 frames, got %d", s.Len())
	}

	wantCols := []string{
		"Step", "Time (ps)", "Potential Energy (kJ/mole)",
		"Temperature (K)", "Box Volume (nm^3)", "Density (g/mL)",
	}
	if len(s.Columns) != len(wantCols) {
		t.Fatalf("expected %d columns, got %d", len(wantCols), len(s.Columns))
	}
	for i, want := range wantCols {
		if s.Columns[i] != want {
			t.Errorf("column %d: got %q, want %q", i, s.Columns[i], want)
		}
	}

	if got := s.Frames[1].Values["Temperature (K)"]; got != 301.4 {
		t.Errorf("frame 1 temperature: got %g, want 301.4", got)
	}
	if got := s.Frames[2].Values["Step"]; got != 300 {
		t.Errorf("frame 2 step: got %g, want 300", got)
	}
}

func TestReadSeparators(t *testing.T) {
	in := "#\"Step\";\"Temperature (K)\"\n100;298.0\n"
	s, err := Read(strings.NewReader(in), ';')
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if s.Len() != 1 || s.Frames[0].Values["Temperature (K)"] != 298.0 {
		t.Errorf("unexpected series: %+v", s)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"non-numeric value", "Step,Temperature (K)\n100,hot\n"},
		{"NaN value", "Step,Temperature (K)\n100,NaN\n"},
		{"ragged row", "Step,Temperature (K)\n100\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.in), ','); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestReadEmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""), ',')
	if !errors.Is(err, ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries, got %v", err)
	}
}

func TestReadFileGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state_data.csv.gz")

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(sampleCSV)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := ReadFile(path, ',')
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("expected 3 frames, got %d", s.Len())
	}
}

func TestColumnMapping(t *testing.T) {
	col, err := Column(Temperature)
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if col != "Temperature (K)" {
		t.Errorf("got %q, want %q", col, "Temperature (K)")
	}

	if _, err := Column(Quantity("pressure")); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestSeriesColumn(t *testing.T) {
	s, err := Read(strings.NewReader(sampleCSV), ',')
	if err != nil {
		t.Fatal(err)
	}

	vals, err := s.QuantityColumn(Density)
	if err != nil {
		t.Fatalf("QuantityColumn failed: %v", err)
	}
	want := []float64{0.997, 0.995, 0.996}
	for i := range want {
		if vals[i] != want[i] {
			t.Errorf("density %d: got %g, want %g", i, vals[i], want[i])
		}
	}

	if _, err := s.QuantityColumn(KineticEnergy); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestWriteFrame(t *testing.T) {
	f := Frame{
		Columns: []string{"Step", "Temperature (K)"},
		Values:  map[string]float64{"Step": 300, "Temperature (K)": 299.25},
	}
	var buf bytes.Buffer
	if err := WriteFrame(&buf, f, ','); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	got := strings.TrimRight(buf.String(), "\n")
	if got != "300,299.25" {
		t.Errorf("got %q, want %q", got, "300,299.25")
	}
}

func TestFrameCopy(t *testing.T) {
	f := Frame{
		Columns: []string{"Step"},
		Values:  map[string]float64{"Step": 1},
	}
	c := f.Copy()
	c.Values["Step"] = 2
	c.Columns[0] = "Other"
	if f.Values["Step"] != 1 || f.Columns[0] != "Step" {
		t.Error("Copy shares storage with the original frame")
	}
}

func TestSummarize(t *testing.T) {
	s, err := Read(strings.NewReader(sampleCSV), ',')
	if err != nil {
		t.Fatal(err)
	}

	stats, err := Summarize(s, Temperature)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	const epsilon = 1e-9
	if math.Abs(stats.Mean-299.5) > epsilon {
		t.Errorf("mean: got %g, want 299.5", stats.Mean)
	}
	if stats.N != 3 || stats.Min != 298.1 || stats.Max != 301.4 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	if _, err := Summarize(&Series{}, Temperature); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries, got %v", err)
	}
}

package lineplot

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/mdwrap/mdwrap/internal/plotcfg"
	"github.com/mdwrap/mdwrap/internal/statedata"
	"github.com/mdwrap/mdwrap/pkg/config"
)

func testSeries() *statedata.Series {
	cols := []string{"Step", "Time (ps)", "Temperature (K)", "Density (g/mL)"}
	s := &statedata.Series{Columns: cols}
	for i := 0; i < 20; i++ {
		s.Frames = append(s.Frames, statedata.Frame{
			Columns: cols,
			Values: map[string]float64{
				"Step":            float64(i * 100),
				"Time (ps)":       float64(i) * 0.2,
				"Temperature (K)": 298 + float64(i%5),
				"Density (g/mL)":  0.997,
			},
		})
	}
	return s
}

func TestRenderStateData(t *testing.T) {
	cfg := &config.PlotConfig{
		Type:   config.PlotTypeLineplots,
		Output: plotcfg.Tree{},
		Plots: plotcfg.Tree{
			"temperature": plotcfg.Tree{
				"lineplot": plotcfg.Tree{"color": "#d62a28", "linewidth": 1.5},
				"title":    plotcfg.Tree{"label": "Temperature"},
				"yaxis": plotcfg.Tree{
					"label":    plotcfg.Tree{"text": "T (K)"},
					"interval": plotcfg.Tree{"type": "continuous"},
				},
			},
		},
	}

	out := filepath.Join(t.TempDir(), "state_data.pdf")
	r := NewRenderer(zap.NewNop().Sugar())
	err := r.RenderStateData(testSeries(), cfg, out, statedata.Time, nil)
	if err != nil {
		t.Fatalf("RenderStateData failed: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output PDF missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output PDF is empty")
	}
}

func TestRenderStateDataBadTimeRep(t *testing.T) {
	cfg := &config.PlotConfig{Type: config.PlotTypeLineplots, Plots: plotcfg.Tree{}}
	r := NewRenderer(zap.NewNop().Sugar())
	out := filepath.Join(t.TempDir(), "out.pdf")

	err := r.RenderStateData(testSeries(), cfg, out, statedata.Density, nil)
	if err == nil {
		t.Error("expected an error for a non-time x quantity")
	}
}

func TestRenderStateDataNoPlottableColumns(t *testing.T) {
	cols := []string{"Step"}
	s := &statedata.Series{Columns: cols, Frames: []statedata.Frame{
		{Columns: cols, Values: map[string]float64{"Step": 0}},
	}}
	cfg := &config.PlotConfig{Type: config.PlotTypeLineplots, Plots: plotcfg.Tree{}}
	r := NewRenderer(zap.NewNop().Sugar())

	err := r.RenderStateData(s, cfg, filepath.Join(t.TempDir(), "out.pdf"), statedata.Step, nil)
	if err == nil {
		t.Error("expected an error when no quantity is plottable")
	}
}

// mdwrap-plot-state-data renders the observables recorded in a
// state-data file as a grid of line plots in a PDF, driven by a YAML
// plot configuration.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdwrap/mdwrap/internal/lineplot"
	"github.com/mdwrap/mdwrap/internal/log"
	"github.com/mdwrap/mdwrap/internal/statedata"
	"github.com/mdwrap/mdwrap/pkg/config"
)

func main() {
	inputStateData := flag.String("isd", "", "The CSV file containing the state data of the simulation")
	configFile := flag.String("c", "", "The YAML configuration file for the plot")
	outputPDF := flag.String("opl", "state_data.pdf", "The name of the output PDF file")
	timeRep := flag.String("t", "time", "The time representation on the x-axes ('step' or 'time')")
	quantities := flag.String("q", "", "Comma-separated quantities to plot (default: all available)")
	workDir := flag.String("d", ".", "The working directory")
	sep := flag.String("sep", ",", "The column separator in the input state data file")
	logFile := flag.String("lf", "logfile.log", "The name of the plain text log file")
	logConsole := flag.Bool("lc", false, "Show log messages also on the console")
	verbose := flag.Bool("v", false, "Enable verbose logging (INFO level)")
	debug := flag.Bool("vv", false, "Enable maximally verbose logging (DEBUG level)")
	flag.Parse()

	if *inputStateData == "" || *configFile == "" {
		fmt.Fprintln(os.Stderr, "both -isd and -c are required; run with -h for help")
		os.Exit(1)
	}

	logger, sync, err := log.New(log.Options{
		File:    filepath.Join(*workDir, *logFile),
		Console: *logConsole,
		Verbose: *verbose,
		Debug:   *debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer sync()

	sepRune, err := statedata.ParseSeparator(*sep)
	if err != nil {
		logger.Errorf("invalid separator: %v", err)
		os.Exit(1)
	}

	cfg, err := config.NewYAMLProvider(*configFile).LoadPlotConfig()
	if err != nil {
		logger.Errorf("could not load the plot configuration: %v", err)
		os.Exit(1)
	}

	series, err := statedata.ReadFile(*inputStateData, sepRune)
	if err != nil {
		logger.Errorf("could not read state data: %v", err)
		os.Exit(1)
	}
	logger.Infof("read %d frames from %s", series.Len(), *inputStateData)

	var toPlot []statedata.Quantity
	if *quantities != "" {
		for _, q := range strings.Split(*quantities, ",") {
			toPlot = append(toPlot, statedata.Quantity(strings.TrimSpace(q)))
		}
	}

	outPath := filepath.Join(*workDir, *outputPDF)
	renderer := lineplot.NewRenderer(logger)
	if err := renderer.RenderStateData(series, cfg, outPath,
		statedata.Quantity(*timeRep), toPlot); err != nil {
		logger.Errorf("could not render the plot: %v", err)
		os.Exit(1)
	}
	logger.Infof("plot written to %s", outPath)
}

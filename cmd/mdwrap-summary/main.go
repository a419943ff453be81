// mdwrap-summary prints per-quantity summary statistics for the state
// data of a simulation.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/mdwrap/mdwrap/internal/log"
	"github.com/mdwrap/mdwrap/internal/statedata"
)

func main() {
	inputStateData := flag.String("isd", "", "The CSV file containing the state data of the simulation")
	sep := flag.String("sep", ",", "The column separator in the input state data file")
	quantities := flag.String("q", "", "Comma-separated quantities to summarize (default: all available)")
	workDir := flag.String("d", ".", "The working directory")
	logFile := flag.String("lf", "logfile.log", "The name of the plain text log file")
	logConsole := flag.Bool("lc", false, "Show log messages also on the console")
	verbose := flag.Bool("v", false, "Enable verbose logging (INFO level)")
	debug := flag.Bool("vv", false, "Enable maximally verbose logging (DEBUG level)")
	flag.Parse()

	if *inputStateData == "" {
		fmt.Fprintln(os.Stderr, "-isd is required; run with -h for help")
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

	series, err := statedata.ReadFile(*inputStateData, sepRune)
	if err != nil {
		logger.Errorf("could not read state data: %v", err)
		os.Exit(1)
	}
	logger.Infof("read %d frames from %s", series.Len(), *inputStateData)

	var toSummarize []statedata.Quantity
	if *quantities != "" {
		for _, q := range strings.Split(*quantities, ",") {
			toSummarize = append(toSummarize, statedata.Quantity(strings.TrimSpace(q)))
		}
	} else {
		// All quantities whose column is present, in display order.
		for _, q := range []statedata.Quantity{
			statedata.PotentialEnergy, statedata.KineticEnergy,
			statedata.TotalEnergy, statedata.Temperature,
			statedata.BoxVolume, statedata.Density, statedata.Mass,
		} {
			if col, err := statedata.Column(q); err == nil && series.HasColumn(col) {
				toSummarize = append(toSummarize, q)
			}
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tCOLUMN\tN\tMEAN\tSTDDEV\tMIN\tMAX")
	for _, q := range toSummarize {
		stats, err := statedata.Summarize(series, q)
		if err != nil {
			logger.Errorf("could not summarize %s: %v", q, err)
			os.Exit(1)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
			stats.Quantity, stats.Column, stats.N,
			stats.Mean, stats.StdDev, stats.Min, stats.Max)
	}
	w.Flush()
}

// mdwrap-find-frame selects a frame of interest from the state data of
// a simulation and writes it out as a one-line CSV record.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mdwrap/mdwrap/internal/frameselect"
	"github.com/mdwrap/mdwrap/internal/log"
	"github.com/mdwrap/mdwrap/internal/statedata"
)

func main() {
	inputStateData := flag.String("isd", "", "The CSV file containing the state data of the simulation")
	outputFrame := flag.String("of", "frame.csv", "The name of the CSV file where to write the selected frame")
	method := flag.String("m", "", "The method to use to select the frame. Supported methods are: "+
		frameselect.MethodNames())
	workDir := flag.String("d", ".", "The working directory")
	sep := flag.String("sep", ",", "The column separator in the input state data file")
	logFile := flag.String("lf", "logfile.log", "The name of the plain text log file")
	logConsole := flag.Bool("lc", false, "Show log messages also on the console")
	verbose := flag.Bool("v", false, "Enable verbose logging (INFO level)")
	debug := flag.Bool("vv", false, "Enable maximally verbose logging (DEBUG level)")
	flag.Parse()

	if *inputStateData == "" || *method == "" {
		fmt.Fprintln(os.Stderr, "both -isd and -m are required; run with -h for help")
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

	m, err := frameselect.ParseMethod(*method)
	if err != nil {
		logger.Errorf("invalid method: %v", err)
		os.Exit(1)
	}

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

	frame, err := frameselect.Find(series, m)
	if err != nil {
		logger.Errorf("could not select a frame: %v", err)
		os.Exit(1)
	}

	outPath := filepath.Join(*workDir, *outputFrame)
	if err := statedata.WriteFrameFile(outPath, frame, sepRune); err != nil {
		logger.Errorf("could not write the selected frame: %v", err)
		os.Exit(1)
	}

	stepCol, _ := statedata.Column(statedata.Step)
	logger.Infof("selected frame at step %g written to %s",
		frame.Values[stepCol], outPath)
}

// mdwrap-archive maintains a SQLite archive of simulation runs and the
// frames selected from them.
//
// Usage:
//
//	mdwrap-archive import -db runs.db -isd state_data.csv -name prod1 [-m method,...]
//	mdwrap-archive list -db runs.db
//	mdwrap-archive export -db runs.db -run <id> -m <method> -of frame.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mdwrap/mdwrap/internal/archive"
	"github.com/mdwrap/mdwrap/internal/frameselect"
	"github.com/mdwrap/mdwrap/internal/log"
	"github.com/mdwrap/mdwrap/internal/statedata"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "import":
		err = runImport(os.Args[2:])
	case "list":
		err = runList(os.Args[2:])
	case "export":
		err = runExport(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mdwrap-archive <import|list|export> [flags]")
}

func newLogger(verbose, debug bool) (*zap.SugaredLogger, func(), error) {
	return log.New(log.Options{Console: true, Verbose: verbose, Debug: debug})
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	dbPath := fs.String("db", "runs.db", "The archive database file")
	inputStateData := fs.String("isd", "", "The CSV file containing the state data of the run")
	name := fs.String("name", "", "A name for the run")
	sep := fs.String("sep", ",", "The column separator in the input state data file")
	methods := fs.String("m", "", "Comma-separated selection methods to apply and store")
	verbose := fs.Bool("v", false, "Enable verbose logging")
	debug := fs.Bool("vv", false, "Enable debug logging")
	fs.Parse(args)

	if *inputStateData == "" || *name == "" {
		return fmt.Errorf("both -isd and -name are required")
	}

	logger, sync, err := newLogger(*verbose, *debug)
	if err != nil {
		return err
	}
	defer sync()

	sepRune, err := statedata.ParseSeparator(*sep)
	if err != nil {
		return err
	}
	series, err := statedata.ReadFile(*inputStateData, sepRune)
	if err != nil {
		return fmt.Errorf("could not read state data: %w", err)
	}

	a, err := archive.Open(*dbPath, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	runID, err := a.ImportRun(ctx, *name, series, *inputStateData)
	if err != nil {
		return fmt.Errorf("could not archive the run: %w", err)
	}
	fmt.Println(runID)

	if *methods == "" {
		return nil
	}
	for _, name := range strings.Split(*methods, ",") {
		m, err := frameselect.ParseMethod(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		frame, err := frameselect.Find(series, m)
		if err != nil {
			return fmt.Errorf("could not select a frame with %s: %w", m, err)
		}
		if err := a.SaveFrame(ctx, runID, m.String(), frame); err != nil {
			return fmt.Errorf("could not store the %s frame: %w", m, err)
		}
		logger.Infof("stored %s frame for run %s", m, runID)
	}
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dbPath := fs.String("db", "runs.db", "The archive database file")
	verbose := fs.Bool("v", false, "Enable verbose logging")
	fs.Parse(args)

	logger, sync, err := newLogger(*verbose, false)
	if err != nil {
		return err
	}
	defer sync()

	a, err := archive.Open(*dbPath, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	runs, err := a.ListRuns(context.Background())
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Printf("%s  %-20s  %s  %d frames\n",
			r.ID, r.Name, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Frames)
	}
	return nil
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dbPath := fs.String("db", "runs.db", "The archive database file")
	runID := fs.String("run", "", "The identifier of the archived run")
	method := fs.String("m", "", "The selection method whose frame to export")
	outputFrame := fs.String("of", "frame.csv", "The CSV file where to write the frame")
	sep := fs.String("sep", ",", "The column separator for the output file")
	verbose := fs.Bool("v", false, "Enable verbose logging")
	fs.Parse(args)

	if *runID == "" || *method == "" {
		return fmt.Errorf("both -run and -m are required")
	}
	if _, err := frameselect.ParseMethod(*method); err != nil {
		return err
	}

	logger, sync, err := newLogger(*verbose, false)
	if err != nil {
		return err
	}
	defer sync()

	sepRune, err := statedata.ParseSeparator(*sep)
	if err != nil {
		return err
	}

	a, err := archive.Open(*dbPath, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	frame, err := a.GetFrame(context.Background(), *runID, *method)
	if err != nil {
		return err
	}
	return statedata.WriteFrameFile(*outputFrame, frame, sepRune)
}

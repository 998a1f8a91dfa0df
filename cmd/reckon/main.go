// Command reckon is a command-line calculator with memory, history, and
// concurrent batch evaluation.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"nickandperla.net/reckon/internal/calc"
	"nickandperla.net/reckon/internal/config"
	"nickandperla.net/reckon/internal/logutil"
	"nickandperla.net/reckon/pkg/reckon"
)

func main() {
	var (
		batchMode  = flag.Bool("batch", false, "evaluate the arguments as a batch of expressions")
		batchFile  = flag.String("f", "", "evaluate expressions from a file, one per line")
		demoMode   = flag.Bool("demo", false, "run the demonstration routines and exit")
		version    = flag.Bool("version", false, "print the version and exit")
		configPath = flag.String("config", "", "path to a YAML config file")
		degrees    = flag.Bool("degrees", false, "interpret trigonometric operands in degrees")
		debug      = flag.Bool("debug", false, "log diagnostics to stderr")
	)

	flag.Parse()

	if *version {
		fmt.Printf("reckon v%s\n", reckon.Version)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reckon: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *degrees {
		cfg.AngleMode = calc.Degrees.String()
	}

	logger := logutil.Discard
	if *debug {
		logger = logutil.New(os.Stderr, "reckon ")
	}

	angleMode, _ := calc.ParseAngleMode(cfg.AngleMode)
	session := reckon.New(
		reckon.WithCalculator(calc.New(
			calc.WithPrecision(cfg.Precision),
			calc.WithHistorySize(cfg.HistorySize),
			calc.WithAngleMode(angleMode),
		)),
		reckon.WithLogger(logger),
		reckon.WithDisplayPrecision(cfg.DisplayPrecision),
		reckon.WithThousandsSeparator(cfg.ThousandsSeparator),
	)
	defer session.Close()

	switch {
	case *demoMode:
		runDemo(session)
	case *batchFile != "":
		lines, err := readLines(*batchFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reckon: %v\n", err)
			os.Exit(1)
		}
		for _, result := range session.EvalBatch(lines) {
			fmt.Println(result)
		}
	case *batchMode:
		for _, result := range session.EvalBatch(flag.Args()) {
			fmt.Println(result)
		}
	case flag.NArg() > 0:
		// Bare arguments form a single expression.
		fmt.Println(session.Eval(strings.Join(flag.Args(), " ")))
	default:
		runREPL(session)
	}
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"), nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

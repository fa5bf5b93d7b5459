package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os-scheduler/api"
	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/logging"
	"os-scheduler/internal/render"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/workload"
	"strings"
)

const (
	demoContextSwitch    = 1
	extremeContextSwitch = 2
	allAlgorithms        = "all"
	axisMaxEntries       = 20
)

// Options holds the parsed command line.
type Options struct {
	Demo          bool
	Extreme       bool
	FromCSV       string
	ExportHTML    string
	Algorithm     string
	ContextSwitch int
	Quantum       int
	Seed          uint64
	Count         int
	Serve         bool
	ConfigPath    string
	LogLevel      string

	contextSwitchSet bool
}

// ParseOptions parses args on an isolated flag set. Configuration values
// provide the defaults.
func ParseOptions(args []string, cfg *config.SchedulerConfig, output io.Writer) (Options, error) {
	opts := Options{
		Algorithm:     schedulers.AlgorithmFirstComeFirstServe,
		ContextSwitch: cfg.ContextSwitch,
		Quantum:       cfg.RoundRobinTimeQuantum,
		Seed:          cfg.ExtremeSeed,
		Count:         cfg.ExtremeCount,
		LogLevel:      cfg.LogLevel,
	}

	fs := flag.NewFlagSet("os-scheduler", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&opts.Demo, "demo", false, "run the built-in demo workload")
	fs.BoolVar(&opts.Extreme, "extreme", false, "run a large seeded stress workload")
	fs.StringVar(&opts.FromCSV, "from-csv", "", "load processes from a CSV file (id,priority,arrival,burst)")
	fs.StringVar(&opts.ExportHTML, "export-html", "", "write the timeline as an HTML/SVG document")
	fs.StringVar(&opts.Algorithm, "algorithm", opts.Algorithm, "fcfs, rr, srtf or all")
	fs.IntVar(&opts.Quantum, "quantum", opts.Quantum, "round robin time quantum")
	fs.Uint64Var(&opts.Seed, "seed", opts.Seed, "seed for the extreme workload")
	fs.IntVar(&opts.Count, "count", opts.Count, "process count for the extreme workload")
	fs.BoolVar(&opts.Serve, "serve", false, "start the HTTP API")
	fs.StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	fs.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level (debug, info, warn, error)")
	fs.Func("context-switch", "FCFS context switch duration", func(v string) error {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
			return fmt.Errorf("not an integer: %q", v)
		}
		opts.ContextSwitch = n
		opts.contextSwitchSet = true
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unknown arg: %s", fs.Arg(0))
	}
	return opts, nil
}

// Run executes one command line and returns the exit code. Argument errors
// are reported on stdout and still exit 0.
func Run(args []string, stdin io.Reader, stdout io.Writer) int {
	cfg, err := loadConfig(ConfigPath(args))
	if err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	opts, err := ParseOptions(args, cfg, stdout)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stdout, err)
		}
		return 0
	}

	logger := logging.New("os-scheduler", opts.LogLevel)
	if opts.Serve {
		if err := api.Serve(cfg, logger); err != nil {
			logger.Error("server stopped", "error", err)
			return 1
		}
		return 0
	}
	return Execute(opts, stdin, stdout, logger)
}

// ConfigPath finds the value of --config without parsing the other flags,
// which need the loaded configuration for their defaults.
func ConfigPath(args []string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func loadConfig(path string) (*config.SchedulerConfig, error) {
	if path == "" {
		return config.GetSchedulerConfig(), nil
	}
	return config.Load(path)
}

// Execute runs the workload selected by opts. Serve mode is handled by the
// caller.
func Execute(opts Options, stdin io.Reader, stdout io.Writer, logger *slog.Logger) int {
	var processes []core.Process
	switch {
	case opts.Demo:
		processes = workload.Demo()
		opts.ContextSwitch = pick(opts, demoContextSwitch)
	case opts.Extreme:
		procs, err := workload.Extreme(workload.DefaultExtremeParams(opts.Count, opts.Seed))
		if err != nil {
			fmt.Fprintln(stdout, err)
			return 1
		}
		processes = procs
		opts.ContextSwitch = pick(opts, extremeContextSwitch)
	case opts.FromCSV != "":
		procs, rowErrors, err := workload.LoadCSVFile(opts.FromCSV)
		if err != nil {
			fmt.Fprintf(stdout, "Failed to load CSV: %v\n", err)
			return 1
		}
		for _, rowErr := range rowErrors {
			fmt.Fprintf(stdout, "skipping row: %v\n", rowErr)
		}
		processes = procs
	default:
		processes = workload.ReadInteractive(stdin, stdout)
		if len(processes) == 0 {
			fmt.Fprintln(stdout, "No processes provided, running demo instead.")
			processes = workload.Demo()
		}
		opts.ContextSwitch = pick(opts, demoContextSwitch)
	}

	results, err := run(opts, processes)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	for _, r := range results {
		logger.Debug("schedule complete", "algorithm", r.Algorithm, "processes", len(r.Processes), "makespan", r.Makespan)
		printResult(stdout, r)
	}
	if len(results) > 1 {
		render.Comparison(stdout, results)
	}

	if opts.ExportHTML != "" {
		if err := render.ExportHTMLFile(opts.ExportHTML, results[0]); err != nil {
			fmt.Fprintf(stdout, "Export failed: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Exported HTML to %s\n", opts.ExportHTML)
	}
	return 0
}

func run(opts Options, processes []core.Process) ([]core.ScheduleResult, error) {
	if opts.Algorithm == allAlgorithms {
		all, err := schedulers.NewAll(opts.Quantum, opts.ContextSwitch)
		if err != nil {
			return nil, err
		}
		return schedulers.Compare(processes, all...), nil
	}
	s, err := schedulers.New(opts.Algorithm, opts.Quantum, opts.ContextSwitch)
	if err != nil {
		return nil, err
	}
	return []core.ScheduleResult{s.Run(processes)}, nil
}

// pick keeps an explicit --context-switch over the mode default.
func pick(opts Options, modeDefault int) int {
	if opts.contextSwitchSet {
		return opts.ContextSwitch
	}
	return modeDefault
}

func printResult(w io.Writer, r core.ScheduleResult) {
	fmt.Fprintf(w, "== %s ==\n", r.Algorithm)
	fmt.Fprintln(w, "Gantt:")
	render.Gantt(w, r.Timeline)
	if len(r.Timeline) <= axisMaxEntries {
		render.GanttAxis(w, r.Timeline)
	}
	render.Summary(w, r)
	fmt.Fprintln(w, "Per-process:")
	render.Table(w, r)
	fmt.Fprintf(w, "Averages -> Turnaround: %.3f, Waiting: %.3f\n", r.AvgTurnaround, r.AvgWaiting)
}

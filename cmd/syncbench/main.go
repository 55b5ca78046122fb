// Syncbench times an atomic add and a critical section against a serial
// loop, each summing sin(i) for i in [0, n).
//
// With no arguments it runs 1000 iterations with 8 threads and then with 1
// thread, and prints the wall time of each run in milliseconds.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jba/syncbench/bench"
	"github.com/spf13/cobra"
)

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr, newClock: bench.NewClock}
	if err := a.command().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	stdout, stderr io.Writer
	newClock       func(kind string) (bench.Clock, error)

	configFile string
	iterations int
	threads    []int
	strategies []string
	clock      string
	format     string
	output     string
	metrics    string
	title      string
	verbose    bool
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "syncbench",
		Short: "Time atomic and critical-section adds against a serial loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}
			return a.run(cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	def := bench.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&a.configFile, "config", "", "YAML file of scenarios")
	f.IntVarP(&a.iterations, "iterations", "n", def.Iterations, "loop iterations per worker")
	f.IntSliceVarP(&a.threads, "threads", "t", def.ThreadCounts, "thread counts, in run order")
	f.StringSliceVarP(&a.strategies, "strategies", "s", []string{"atomic", "critical", "serial"}, "strategies, in run order")
	f.StringVar(&a.clock, "clock", def.Clock, "time source: raw or portable")
	f.StringVar(&a.format, "format", bench.FormatText, "output format: text, markdown or html")
	f.StringVarP(&a.output, "output", "o", "", "write results to this file instead of stdout")
	f.StringVar(&a.metrics, "metrics", "", "also write results to this file in Prometheus text format")
	f.StringVar(&a.title, "title", "syncbench", "title of the HTML report")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log each run to stderr")
	return cmd
}

// config starts from the defaults or the config file, then applies the flags
// the user set.
func (a *app) config(cmd *cobra.Command) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if a.configFile != "" {
		var err error
		cfg, err = bench.LoadConfig(a.configFile)
		if err != nil {
			return cfg, err
		}
	}
	f := cmd.Flags()
	if f.Changed("iterations") {
		cfg.Iterations = a.iterations
	}
	if f.Changed("threads") {
		cfg.ThreadCounts = a.threads
	}
	if f.Changed("strategies") {
		cfg.Strategies = nil
		for _, name := range a.strategies {
			s, err := bench.ParseStrategy(name)
			if err != nil {
				return cfg, err
			}
			cfg.Strategies = append(cfg.Strategies, s)
		}
	}
	if f.Changed("clock") {
		cfg.Clock = a.clock
	}
	switch a.format {
	case bench.FormatText, bench.FormatMarkdown, bench.FormatHTML:
	default:
		return cfg, fmt.Errorf("unknown format %q", a.format)
	}
	return cfg, cfg.Validate()
}

func (a *app) run(cfg bench.Config) (err error) {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	clock, err := a.newClock(cfg.Clock)
	if err != nil {
		return err
	}

	out := a.stdout
	if a.output != "" {
		var outFile *os.File
		outFile, err = os.Create(a.output)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer func() { err = errors.Join(err, outFile.Close()) }()
		out = outFile
	}

	logger.Debug("benchmark starting", "iterations", cfg.Iterations, "threads", cfg.ThreadCounts, "clock", cfg.Clock)
	var results []bench.Result
	if a.format == bench.FormatText {
		r := bench.NewRunner(out, clock, logger)
		results = r.RunAll(cfg)
		if err := r.Err(); err != nil {
			return fmt.Errorf("error writing results: %w", err)
		}
	} else {
		results = bench.NewRunner(io.Discard, clock, logger).RunAll(cfg)
		if err := bench.WriteReport(out, a.format, a.title, results); err != nil {
			return fmt.Errorf("error writing report: %w", err)
		}
	}

	if a.metrics != "" {
		if err := bench.WriteMetrics(a.metrics, results); err != nil {
			return fmt.Errorf("error writing metrics: %w", err)
		}
		logger.Debug("metrics written", "file", a.metrics)
	}
	return nil
}

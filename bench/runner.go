package bench

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// A Scenario is one timed run.
type Scenario struct {
	Threads    int
	Strategy   Strategy
	Iterations int
}

// Section returns the heading printed above the scenario's block of runs.
func (s Scenario) Section() string {
	if s.Threads == 1 {
		return "Single Threaded"
	}
	return "Multi-Threaded"
}

// A Result is the outcome of running a Scenario.
type Result struct {
	Scenario
	Start, Finish Timestamp
	ElapsedMs     float64
	Sums          []float64 // final value of each worker's private sum
}

// A Runner times scenarios and prints each result as it finishes.
type Runner struct {
	w        *errWriter
	clock    Clock
	logger   *slog.Logger
	sections *criticalSections
}

// NewRunner returns a Runner that prints to out and times runs with clock.
// A nil logger discards log output.
func NewRunner(out io.Writer, clock Clock, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		w:        &errWriter{w: out},
		clock:    clock,
		logger:   logger,
		sections: newCriticalSections(),
	}
}

// Err returns the first error encountered writing results.
func (r *Runner) Err() error { return r.w.Err() }

// RunAll runs every combination of cfg's thread counts and strategies, in
// that order, printing a section heading before each thread count.
func (r *Runner) RunAll(cfg Config) []Result {
	var results []Result
	for _, threads := range cfg.ThreadCounts {
		first := Scenario{Threads: threads}
		fmt.Fprintf(r.w, "\n\n %s:\n", first.Section())
		for _, s := range cfg.Strategies {
			results = append(results, r.Run(Scenario{
				Threads:    threads,
				Strategy:   s,
				Iterations: cfg.Iterations,
			}))
		}
	}
	return results
}

// Run times a single scenario. Timing stops only after every worker has
// finished its loop.
func (r *Runner) Run(s Scenario) Result {
	if s.Threads < 1 {
		panic(fmt.Sprintf("bench: %d threads", s.Threads))
	}
	if _, err := s.Strategy.MarshalText(); err != nil {
		panic("bench: " + err.Error())
	}
	res := Result{Scenario: s}
	if s.Strategy == Serial {
		res.Sums = make([]float64, 1)
	} else {
		res.Sums = make([]float64, s.Threads)
	}
	r.logger.Debug("run starting", "strategy", s.Strategy, "threads", s.Threads, "iterations", s.Iterations)

	res.Start = r.clock.Now()
	r.execute(s, res.Sums)
	res.Finish = r.clock.Now()

	res.ElapsedMs = TimestampToMillis(res.Finish) - TimestampToMillis(res.Start)
	r.logger.Debug("run finished", "strategy", s.Strategy, "threads", s.Threads, "elapsed_ms", res.ElapsedMs)
	fmt.Fprintf(r.w, "\nThe amount of wall time for %s: %f", s.Strategy, res.ElapsedMs)
	return res
}

func (r *Runner) execute(s Scenario, sums []float64) {
	if s.Strategy == Serial {
		sums[0] = sumSerial(s.Iterations)
		return
	}
	var mu *sync.Mutex
	if s.Strategy == Critical {
		mu = r.sections.get(sectionName(s.Threads))
	}
	var g errgroup.Group
	g.SetLimit(s.Threads)
	for w := range sums {
		g.Go(func() error {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			switch s.Strategy {
			case Atomic:
				sums[w] = sumAtomic(s.Iterations)
			case Critical:
				sums[w] = sumCritical(s.Iterations, mu)
			default:
				panic(fmt.Sprintf("bench: unknown strategy %v", s.Strategy))
			}
			return nil
		})
	}
	// Workers never fail.
	_ = g.Wait()
}

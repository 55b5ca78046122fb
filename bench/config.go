package bench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultIterations = 1000
	DefaultThreads    = 8
)

// Config lists the scenarios RunAll executes. Every scenario uses the same
// number of iterations so the runs are comparable.
type Config struct {
	Iterations   int        `yaml:"iterations"`
	ThreadCounts []int      `yaml:"threads"`
	Strategies   []Strategy `yaml:"strategies"`
	Clock        string     `yaml:"clock"`
}

// DefaultConfig returns the six classic scenarios: 8 threads then 1 thread,
// each with ATOMIC, CRITICAL and SERIAL, 1000 iterations.
func DefaultConfig() Config {
	return Config{
		Iterations:   DefaultIterations,
		ThreadCounts: []int{DefaultThreads, 1},
		Strategies:   []Strategy{Atomic, Critical, Serial},
		Clock:        ClockRaw,
	}
}

// LoadConfig reads a YAML file over the defaults. Fields the file omits keep
// their default values.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Iterations < 0 {
		errs = append(errs, fmt.Errorf("iterations must not be negative, got %d", c.Iterations))
	}
	if len(c.ThreadCounts) == 0 {
		errs = append(errs, errors.New("no thread counts"))
	}
	for _, t := range c.ThreadCounts {
		if t < 1 {
			errs = append(errs, fmt.Errorf("thread count must be at least 1, got %d", t))
		}
	}
	if len(c.Strategies) == 0 {
		errs = append(errs, errors.New("no strategies"))
	}
	for _, s := range c.Strategies {
		if _, err := s.MarshalText(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Clock != "" && c.Clock != ClockRaw && c.Clock != ClockPortable {
		errs = append(errs, fmt.Errorf("unknown clock %q", c.Clock))
	}
	return errors.Join(errs...)
}

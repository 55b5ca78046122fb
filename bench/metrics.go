package bench

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// NewRegistry returns a registry holding one wall-time gauge per result,
// labeled by strategy and thread count.
func NewRegistry(results []Result) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	wallTime := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "syncbench",
		Name:      "wall_time_milliseconds",
		Help:      "Wall time of one benchmark run.",
	}, []string{"strategy", "threads"})
	iterations := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "syncbench",
		Name:      "iterations",
		Help:      "Loop iterations per worker.",
	}, []string{"strategy", "threads"})
	for _, c := range []prometheus.Collector{wallTime, iterations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	for _, r := range results {
		labels := prometheus.Labels{
			"strategy": r.Strategy.String(),
			"threads":  strconv.Itoa(r.Threads),
		}
		wallTime.With(labels).Set(r.ElapsedMs)
		iterations.With(labels).Set(float64(r.Iterations))
	}
	return reg, nil
}

// WriteMetrics writes results to filename in the Prometheus text format,
// for node_exporter's textfile collector.
func WriteMetrics(filename string, results []Result) error {
	reg, err := NewRegistry(results)
	if err != nil {
		return err
	}
	return prometheus.WriteToTextfile(filename, reg)
}

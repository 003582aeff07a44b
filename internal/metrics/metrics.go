// Package metrics exposes Prometheus collectors for mutation runs.
package metrics

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Package-level Prometheus collectors. They are registered via Register.
var (
	regOK atomic.Bool

	runsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kitchensink",
			Subsystem: "mutation",
			Name:      "runs_total",
			Help:      "Number of run invocations by mode (new, resume, rerun).",
		}, []string{"mode"},
	)
	runsInterrupted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kitchensink",
			Subsystem: "mutation",
			Name:      "runs_interrupted_total",
			Help:      "Number of runs stopped by an interrupt.",
		},
	)
	mutantsFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kitchensink",
			Subsystem: "mutation",
			Name:      "mutants_finished_total",
			Help:      "Number of executed mutants by outcome.",
		}, []string{"outcome"},
	)
	mutantDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kitchensink",
			Subsystem: "mutation",
			Name:      "mutant_duration_seconds",
			Help:      "Wall-clock time spent executing one mutant.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		}, []string{"outcome"},
	)
	mutationScore = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "kitchensink",
			Subsystem: "mutation",
			Name:      "score_percent",
			Help:      "Mutation score of the most recent snapshot per run.",
		}, []string{"run_id"},
	)
)

// Register registers all metrics with the provided registerer.
// It is safe to call multiple times; subsequent calls after success are no-ops.
func Register(r prometheus.Registerer) error {
	if regOK.Load() {
		return nil
	}

	cs := []prometheus.Collector{runsTotal, runsInterrupted, mutantsFinished, mutantDuration, mutationScore}
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}

			return err
		}
	}

	regOK.Store(true)

	return nil
}

// WriteTextfile writes the current values of g in the node-exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}

	return nil
}

// Below are lightweight helpers used by internal packages to record metrics.
// They no-op if Register hasn't been called.

// IncRun counts one invocation of the given mode.
func IncRun(mode string) {
	if regOK.Load() {
		runsTotal.WithLabelValues(mode).Inc()
	}
}

// IncInterrupted counts one interrupted run.
func IncInterrupted() {
	if regOK.Load() {
		runsInterrupted.Inc()
	}
}

// ObserveMutant records the outcome and duration of one executed mutant.
func ObserveMutant(outcome string, seconds float64) {
	if regOK.Load() {
		mutantsFinished.WithLabelValues(outcome).Inc()
		mutantDuration.WithLabelValues(outcome).Observe(seconds)
	}
}

// SetScore records the mutation score of a run.
func SetScore(runID string, score float64) {
	if regOK.Load() {
		mutationScore.WithLabelValues(runID).Set(score)
	}
}

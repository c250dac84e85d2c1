// Package timing measures the duration of processing steps. Durations are logged
// and recorded in a Prometheus histogram.
package timing

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for a word sorting run.
type Metrics struct {
	StepDuration *prometheus.HistogramVec
	TokensTotal  *prometheus.CounterVec
	UniqueWords  *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StepDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wordsort_step_duration_seconds",
				Help:    "Duration of word sorting steps in seconds.",
				Buckets: []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"mode", "step"},
		),
		TokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordsort_tokens_total",
				Help: "Total number of tokens read, by processing mode.",
			},
			[]string{"mode"},
		),
		UniqueWords: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wordsort_unique_words",
				Help: "Number of distinct words of the last run, by processing mode.",
			},
			[]string{"mode"},
		),
	}
	reg.MustRegister(m.StepDuration, m.TokensTotal, m.UniqueWords)
	return m
}

// Timer times the steps of one processing mode.
type Timer struct {
	mode    string
	metrics *Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewTimer creates a timer for steps run in the given mode. metrics may be nil.
func NewTimer(mode string, metrics *Metrics, logger *slog.Logger) *Timer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Timer{mode: mode, metrics: metrics, logger: logger, now: time.Now}
}

// Start starts timing step. Calling the returned function stops it and reports
// the elapsed time.
//
//	stop := timer.Start("Tokenization")
//	tokens := tokenizer.Tokenize(text)
//	stop()
func (t *Timer) Start(step string) func() time.Duration {
	start := t.now()
	return func() time.Duration {
		d := t.now().Sub(start)
		t.logger.Info(step+" took", "mode", t.mode, "duration_ms", d.Milliseconds())
		if t.metrics != nil {
			t.metrics.StepDuration.WithLabelValues(t.mode, step).Observe(d.Seconds())
		}
		return d
	}
}

// Measure runs fn as a timed step.
func (t *Timer) Measure(step string, fn func() error) error {
	stop := t.Start(step)
	defer stop()
	return fn()
}

// Count records the number of tokens and distinct words of a run.
func (t *Timer) Count(tokens, unique int) {
	if t.metrics == nil {
		return
	}
	t.metrics.TokensTotal.WithLabelValues(t.mode).Add(float64(tokens))
	t.metrics.UniqueWords.WithLabelValues(t.mode).Set(float64(unique))
}

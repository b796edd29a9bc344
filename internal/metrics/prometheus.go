package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/karatsuba/internal/orchestration"
)

const namespace = "multiply"

// Recorder exports strategy runs as Prometheus metrics. It implements
// orchestration.RunRecorder and is safe for concurrent use.
type Recorder struct {
	registry       *prometheus.Registry
	runs           *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	productDigits  *prometheus.GaugeVec
	recursiveCalls *prometheus.GaugeVec
	maxDepth       *prometheus.GaugeVec
}

var _ orchestration.RunRecorder = (*Recorder)(nil)

// NewRecorder creates a Recorder backed by its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Strategy runs by outcome.",
		}, []string{"algo", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of strategy runs.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 9),
		}, []string{"algo"}),
		productDigits: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "product_digits",
			Help:      "Length of the last normalized product.",
		}, []string{"algo"}),
		recursiveCalls: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "recursive_calls",
			Help:      "Splitting nodes in the last recursion tree.",
		}, []string{"algo"}),
		maxDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "recursion_max_depth",
			Help:      "Deepest level of the last recursion tree.",
		}, []string{"algo"}),
	}
	r.registry.MustRegister(r.runs, r.duration, r.productDigits, r.recursiveCalls, r.maxDepth)
	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveRun implements orchestration.RunRecorder.
func (r *Recorder) ObserveRun(res orchestration.CalculationResult) {
	status := "success"
	if res.Err != nil {
		status = "failure"
	}
	r.runs.WithLabelValues(res.Name, status).Inc()
	r.duration.WithLabelValues(res.Name).Observe(res.Duration.Seconds())
	if res.Err != nil {
		return
	}
	r.productDigits.WithLabelValues(res.Name).Set(float64(len(res.Product)))
	if res.Stats != nil {
		r.recursiveCalls.WithLabelValues(res.Name).Set(float64(res.Stats.RecursiveCalls))
		r.maxDepth.WithLabelValues(res.Name).Set(float64(res.Stats.MaxDepth))
	}
}

// WriteTextfile writes the current metrics to path in the text exposition
// format read by the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

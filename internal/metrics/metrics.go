// Package metrics records LLM call and fallback counters in a Prometheus
// registry and can dump them in the node-exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/alexanderramin/hrpulse/internal/llm"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets sets custom buckets for the call latency histogram.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// WithRegistry sets the registry metrics are registered in and gathered from.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// Manager owns the hrpulse collectors. It satisfies llm.Observer.
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	llmCalls     *prometheus.CounterVec
	llmLatency   *prometheus.HistogramVec
	fallbacks    *prometheus.CounterVec
	queries      *prometheus.CounterVec
	datasetGauge prometheus.Gauge
}

// NewManager creates a Manager on a private registry unless one is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "hrpulse",
		buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)
	m.llmCalls = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "llm",
		Name:      "calls_total",
		Help:      "LLM calls by task and outcome.",
	}, []string{"task", "status", "code"})
	m.llmLatency = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "llm",
		Name:      "call_duration_seconds",
		Help:      "LLM call latency by task.",
		Buckets:   m.buckets,
	}, []string{"task"})
	m.fallbacks = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "fallbacks_total",
		Help:      "Deterministic fallbacks taken by task.",
	}, []string{"task", "code"})
	m.queries = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "queries_total",
		Help:      "Chat queries answered by intent and classifier source.",
	}, []string{"intent", "source"})
	m.datasetGauge = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "dataset_employees",
		Help:      "Employees in the loaded dataset.",
	})
	return m
}

// OnCallComplete implements llm.Observer.
func (m *Manager) OnCallComplete(event llm.LLMCallEvent) {
	status := statusOK
	if !event.Success {
		status = statusError
	}
	m.llmCalls.WithLabelValues(string(event.Task), status, event.ErrorCode).Inc()
	m.llmLatency.WithLabelValues(string(event.Task)).Observe(float64(event.LatencyMs) / 1000)
}

// RecordFallback counts one deterministic fallback for task.
func (m *Manager) RecordFallback(task llm.TaskType, code string) {
	m.fallbacks.WithLabelValues(string(task), code).Inc()
}

// RecordQuery counts one answered chat query.
func (m *Manager) RecordQuery(intent, source string) {
	m.queries.WithLabelValues(intent, source).Inc()
}

// SetDatasetSize records how many employees were loaded.
func (m *Manager) SetDatasetSize(n int) {
	m.datasetGauge.Set(float64(n))
}

// Registry exposes the underlying registry for gathering.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes every metric to path in the text exposition format.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return nil
}

package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Execution outcomes used as metric label values
const (
	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
	outcomeError     = "error"
	outcomeRejected  = "rejected"
)

// Metrics holds the Prometheus collectors of the facade
type Metrics struct {
	requests          *prometheus.CounterVec
	executions        *prometheus.CounterVec
	executionDuration prometheus.Histogram
	inFlight          prometheus.Gauge
}

// NewMetrics creates collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "controltower",
			Name:      "requests_total",
			Help:      "Facade operations by operation and result",
		}, []string{"operation", "result"}),

		executions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "controltower",
			Name:      "mitigation_executions_total",
			Help:      "Mitigation execution attempts by outcome",
		}, []string{"outcome"}),

		executionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "controltower",
			Name:      "mitigation_execution_duration_seconds",
			Help:      "Time spent executing a mitigation",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "controltower",
			Name:      "mitigation_executions_in_flight",
			Help:      "Mitigation executions currently running",
		}),
	}
}

func (m *Metrics) observeRequest(operation string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.requests.WithLabelValues(operation, result).Inc()
}

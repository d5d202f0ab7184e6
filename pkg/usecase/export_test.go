package usecase

import "github.com/prometheus/client_golang/prometheus/testutil"

// ExecutionCount is exported for testing
func (m *Metrics) ExecutionCount(outcome string) float64 {
	return testutil.ToFloat64(m.executions.WithLabelValues(outcome))
}

// RequestCount is exported for testing
func (m *Metrics) RequestCount(operation, result string) float64 {
	return testutil.ToFloat64(m.requests.WithLabelValues(operation, result))
}

// InFlight is exported for testing
func (m *Metrics) InFlight() float64 {
	return testutil.ToFloat64(m.inFlight)
}

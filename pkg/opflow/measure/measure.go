package measure

import (
	"sync"
	"time"
)

// DefaultMeasure is an in-memory Measure.
type DefaultMeasure struct {
	mu          sync.Mutex
	steps       map[string]Metric
	runDuration time.Duration
}

// NewDefaultMeasure creates a new in-memory measure.
func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		steps: make(map[string]Metric),
	}
}

// AddMetric creates and stores a metric for name. An existing metric with
// the same name is replaced.
func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	mt := &DefaultMetric{
		mu: &sync.Mutex{},
	}
	m.steps[name] = mt

	return mt
}

// GetMetric returns the metric for name, or nil when none exists.
func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.steps[name]
}

// AllMetrics returns every stored metric keyed by operation name.
func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.steps
}

// SetRunDuration records the total duration of the run.
func (m *DefaultMeasure) SetRunDuration(total time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runDuration = total
}

// RunDuration returns the total duration of the run.
func (m *DefaultMeasure) RunDuration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.runDuration
}

var _ Measure = (*DefaultMeasure)(nil)

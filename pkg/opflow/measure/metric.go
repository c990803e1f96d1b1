package measure

import (
	"sync"
	"time"
)

// DefaultMetric is an in-memory Metric.
type DefaultMetric struct {
	mu         *sync.Mutex
	opsElapsed time.Duration
	total      int64
}

// AddDuration records one execution of the operation.
func (mt *DefaultMetric) AddDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.total++
	mt.opsElapsed += elapsed
}

// AVGDuration returns the rounded average duration of the executions
// recorded so far.
func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.total == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.opsElapsed) / float64(mt.total)))
}

// Count returns the number of executions recorded so far.
func (mt *DefaultMetric) Count() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.total
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}

var _ Metric = (*DefaultMetric)(nil)

package measure

import "time"

// Measure collects one Metric per operation name across a run.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
	SetRunDuration(total time.Duration)
	RunDuration() time.Duration
}

// Metric accumulates the durations of every execution of one operation name.
// Repeated variants in the same run share a metric.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AVGDuration() time.Duration
	Count() int64
}

package trace

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrReportNotFound is returned when no report exists for the requested ID.
var ErrReportNotFound = errors.New("report not found")

// Reporter manages reports. It can store them in memory, in the FS, etc.
type Reporter interface {
	AddReport(report Report) error
	GetReport(id string) (Report, error)
	GetReports() ([]Report, error)
}

// MemoryReporter stores reports in memory, in the order they were added.
// It is safe for concurrent use.
type MemoryReporter struct {
	mu      sync.RWMutex
	reports []Report
}

// NewMemoryReporter creates a new MemoryReporter.
func NewMemoryReporter() *MemoryReporter {
	return &MemoryReporter{}
}

// AddReport appends a report.
func (mr *MemoryReporter) AddReport(report Report) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.reports = append(mr.reports, report)

	return nil
}

// GetReport returns the report with the given ID.
func (mr *MemoryReporter) GetReport(id string) (Report, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	for _, rep := range mr.reports {
		if rep.ID == id {
			return rep, nil
		}
	}

	return Report{}, errors.Wrap(ErrReportNotFound, id)
}

// GetReports returns every stored report in insertion order.
func (mr *MemoryReporter) GetReports() ([]Report, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	reps := make([]Report, len(mr.reports))
	copy(reps, mr.reports)

	return reps, nil
}

var _ Reporter = (*MemoryReporter)(nil)

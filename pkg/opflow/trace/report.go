// Package trace records execution reports for pipeline runs.
//
// A report is produced for every executed operation and one more for the run
// itself, so a caller can audit after the fact which operations ran, in what
// order, how long each took and where a failed run stopped.
package trace

import (
	"time"

	"github.com/google/uuid"

	"github.com/opflow/go-opflow/pkg/opflow/model"
)

// RunReportOp is the operation name used by the run-level report.
const RunReportOp = "run"

// Report is the record of one executed operation, or of the whole run when
// Op is RunReportOp.
type Report struct {
	ID        string        `json:"id"`
	RunID     string        `json:"runId"`
	Index     int           `json:"index"`
	Op        string        `json:"op"`
	Timestamp *time.Time    `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
	Err       *ReportError  `json:"error,omitempty"`
}

// NewReport creates a new report for one executed operation.
func NewReport(run *model.RunInfo, op *model.OpInfo, elapsed time.Duration, opErr error) Report {
	now := time.Now()
	rep := Report{
		ID:        uuid.New().String(),
		RunID:     run.ID.String(),
		Index:     op.Index,
		Op:        op.Name,
		Timestamp: &now,
		Duration:  elapsed,
	}
	if opErr != nil {
		rep.Err = &ReportError{Message: opErr.Error()}
	}

	return rep
}

// ReportError represents an error in the Report.
// Its purpose is to have an exported Message field for marshalling, as a
// native error cannot be marshalled to JSON.
type ReportError struct {
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ReportError) Error() string {
	return e.Message
}

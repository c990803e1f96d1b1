package trace

import (
	"time"

	"github.com/pkg/errors"

	"github.com/opflow/go-opflow/pkg/opflow/model"
)

type pipelineTrace struct {
	Reporter
}

func (pt *pipelineTrace) New(run *model.RunInfo) error {
	return nil
}

func (pt *pipelineTrace) BeforeOp(run *model.RunInfo, op *model.OpInfo) error {
	return nil
}

func (pt *pipelineTrace) AfterOp(run *model.RunInfo, op *model.OpInfo, elapsed time.Duration, opErr error) error {
	err := pt.AddReport(NewReport(run, op, elapsed, opErr))
	if err != nil {
		return errors.Wrap(err, "unable to add op report")
	}

	return nil
}

func (pt *pipelineTrace) Finish(run *model.RunInfo, total time.Duration, runErr error) error {
	err := pt.AddReport(NewReport(run, &model.OpInfo{Index: -1, Name: RunReportOp}, total, runErr))
	if err != nil {
		return errors.Wrap(err, "unable to add run report")
	}

	return nil
}

// PipelineTrace records one report per executed operation into reporter,
// plus a run-level report once the run stops.
func PipelineTrace(reporter Reporter) model.PipelineOption {
	return &pipelineTrace{reporter}
}

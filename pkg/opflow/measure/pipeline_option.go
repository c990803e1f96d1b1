package measure

import (
	"time"

	"github.com/opflow/go-opflow/pkg/opflow/model"
)

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New(run *model.RunInfo) error {
	return nil
}

func (pm *pipelineMeasure) BeforeOp(run *model.RunInfo, op *model.OpInfo) error {
	if pm.GetMetric(op.Name) == nil {
		pm.AddMetric(op.Name)
	}

	return nil
}

func (pm *pipelineMeasure) AfterOp(run *model.RunInfo, op *model.OpInfo, elapsed time.Duration, opErr error) error {
	pm.GetMetric(op.Name).AddDuration(elapsed)

	return nil
}

func (pm *pipelineMeasure) Finish(run *model.RunInfo, total time.Duration, runErr error) error {
	pm.SetRunDuration(total)

	return nil
}

// PipelineMeasure records per-operation durations into msr for the duration
// of one run.
func PipelineMeasure(msr Measure) model.PipelineOption {
	return &pipelineMeasure{msr}
}

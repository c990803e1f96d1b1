package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/opflow/go-opflow/pkg/opflow/measure"
	"github.com/opflow/go-opflow/pkg/opflow/model"
)

type pipelineDrawer struct {
	Drawer
	m         measure.Measure
	startTime time.Time
	last      *model.OpInfo
}

func (pd *pipelineDrawer) New(run *model.RunInfo) error {
	pd.startTime = run.StartTime
	pd.last = model.StartOp

	err := pd.AddOp(model.StartOp)
	if err != nil {
		return errors.Wrap(err, "unable to add start op to drawer")
	}

	err = pd.AddOp(model.EndOp)
	if err != nil {
		return errors.Wrap(err, "unable to add end op to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) BeforeOp(run *model.RunInfo, op *model.OpInfo) error {
	err := pd.AddOp(op)
	if err != nil {
		return err
	}

	err = pd.AddLink(pd.last, op)
	if err != nil {
		return err
	}

	pd.last = op

	return nil
}

func (pd *pipelineDrawer) AfterOp(run *model.RunInfo, op *model.OpInfo, elapsed time.Duration, opErr error) error {
	return nil
}

func (pd *pipelineDrawer) Finish(run *model.RunInfo, total time.Duration, runErr error) error {
	err := pd.AddLink(pd.last, model.EndOp)
	if err != nil {
		return err
	}

	if pd.m != nil {
		err := pd.SetTotalTime(model.EndOp, pd.startTime)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}

		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err = pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw run")
	}

	return nil
}

// PipelineDrawer draws the run chain with drawer once the run finishes.
// When msr is not nil, operations are labelled and coloured with the
// durations it collected.
func PipelineDrawer(drawer Drawer, msr measure.Measure) model.PipelineOption {
	return &pipelineDrawer{Drawer: drawer, m: msr}
}

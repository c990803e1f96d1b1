package opflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/opflow/go-opflow/pkg/opflow/model"
)

// runner holds everything a run needs that does not depend on the operation
// type: the run description, the options and the consumed flag. The three
// pipeline shapes share it so the iteration logic exists once.
type runner struct {
	info     model.RunInfo
	opts     []model.PipelineOption
	consumed bool
}

func newRunner(ops int, opts []model.PipelineOption) (*runner, error) {
	run := &runner{
		info: model.RunInfo{
			ID:        uuid.New(),
			Ops:       ops,
			StartTime: time.Now(),
		},
		opts: opts,
	}

	for _, opt := range opts {
		err := opt.New(&run.info)
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return run, nil
}

// drive performs one full pass. bind resolves the operation at idx to its
// display name and an execution thunk, so drive never sees the concrete
// operation type.
func (r *runner) drive(count int, bind func(idx int) (string, func() error)) error {
	if r.consumed {
		return ErrPipelineConsumed
	}
	r.consumed = true

	for idx := 0; idx < count; idx++ {
		name, exec := bind(idx)
		opInfo := &model.OpInfo{Index: idx, Name: name}

		for _, opt := range r.opts {
			err := opt.BeforeOp(&r.info, opInfo)
			if err != nil {
				return errors.Wrapf(err, "unable to run before op hook for %s", name)
			}
		}

		startOp := time.Now()
		execErr := exec()
		elapsed := time.Since(startOp)

		for _, opt := range r.opts {
			err := opt.AfterOp(&r.info, opInfo, elapsed, execErr)
			if err != nil {
				return errors.Wrapf(err, "unable to run after op hook for %s", name)
			}
		}

		if execErr != nil {
			opErr := &OpError{Index: idx, Executed: idx, Name: name, Err: execErr}
			r.finish(opErr)

			return opErr
		}
	}

	return r.finish(nil)
}

func (r *runner) finish(runErr error) error {
	total := time.Since(r.info.StartTime)
	for _, opt := range r.opts {
		err := opt.Finish(&r.info, total, runErr)
		if err != nil && runErr == nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}

// opName resolves the display name of an operation. Catalogue types usually
// implement fmt.Stringer on the variant tag; anything else falls back to a
// positional name.
func opName(op any, idx int) string {
	if s, ok := op.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("op[%d]", idx)
}

// Pipeline is an ordered, single-use sequence of self-contained operations.
type Pipeline[T Executable] struct {
	run *runner
	ops []T
}

// New wraps ops into a pipeline, taking ownership of the slice. The slice is
// neither copied nor reordered: execution order is exactly the slice order.
// The caller must not reuse the slice afterwards.
func New[T Executable](ops []T, opts ...model.PipelineOption) (*Pipeline[T], error) {
	run, err := newRunner(len(ops), opts)
	if err != nil {
		return nil, err
	}

	return &Pipeline[T]{run: run, ops: ops}, nil
}

// Execute consumes the pipeline, running every operation in order. It stops
// at the first failure and returns an *OpError reporting its position. An
// empty pipeline returns immediately.
func (p *Pipeline[T]) Execute() error {
	if p == nil {
		return ErrPipelineMustBeSet
	}

	ops := p.ops
	p.ops = nil

	return p.run.drive(len(ops), func(idx int) (string, func() error) {
		op := ops[idx]

		return opName(op, idx), op.Execute
	})
}

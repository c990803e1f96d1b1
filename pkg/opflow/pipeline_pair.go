package opflow

import (
	"github.com/opflow/go-opflow/pkg/opflow/model"
)

// PipelineWithPair is an ordered, single-use sequence of operations sharing
// two independent pieces of caller-owned context.
type PipelineWithPair[T ExecutableWithPair[A, B], A, B any] struct {
	run *runner
	ops []T
}

// NewWithPair wraps ops into a pipeline, taking ownership of the slice. The
// slice is neither copied nor reordered: execution order is exactly the
// slice order. The caller must not reuse the slice afterwards.
func NewWithPair[T ExecutableWithPair[A, B], A, B any](ops []T, opts ...model.PipelineOption) (*PipelineWithPair[T, A, B], error) {
	run, err := newRunner(len(ops), opts)
	if err != nil {
		return nil, err
	}

	return &PipelineWithPair[T, A, B]{run: run, ops: ops}, nil
}

// Execute consumes the pipeline, running every operation in order and
// passing the same two references to each one. Execution stops at the first
// failure and returns an *OpError reporting its position.
//
// The pipeline borrows first and second only for the duration of the call;
// the caller must not mutate them from elsewhere while Execute runs.
func (p *PipelineWithPair[T, A, B]) Execute(first A, second B) error {
	if p == nil {
		return ErrPipelineMustBeSet
	}

	ops := p.ops
	p.ops = nil

	return p.run.drive(len(ops), func(idx int) (string, func() error) {
		op := ops[idx]

		return opName(op, idx), func() error {
			return op.Execute(first, second)
		}
	})
}

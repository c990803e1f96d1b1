package opflow

import (
	"github.com/opflow/go-opflow/pkg/opflow/model"
)

// PipelineWith is an ordered, single-use sequence of operations sharing one
// piece of caller-owned context.
type PipelineWith[T ExecutableWith[Arg], Arg any] struct {
	run *runner
	ops []T
}

// NewWith wraps ops into a pipeline, taking ownership of the slice. The
// slice is neither copied nor reordered: execution order is exactly the
// slice order. The caller must not reuse the slice afterwards.
func NewWith[T ExecutableWith[Arg], Arg any](ops []T, opts ...model.PipelineOption) (*PipelineWith[T, Arg], error) {
	run, err := newRunner(len(ops), opts)
	if err != nil {
		return nil, err
	}

	return &PipelineWith[T, Arg]{run: run, ops: ops}, nil
}

// Execute consumes the pipeline, running every operation in order and
// passing the same arg to each one. Mutations made through arg by an
// operation are visible to every operation after it. Execution stops at the
// first failure and returns an *OpError reporting its position.
//
// The pipeline borrows arg only for the duration of the call; the caller
// must not mutate it from elsewhere while Execute runs.
func (p *PipelineWith[T, Arg]) Execute(arg Arg) error {
	if p == nil {
		return ErrPipelineMustBeSet
	}

	ops := p.ops
	p.ops = nil

	return p.run.drive(len(ops), func(idx int) (string, func() error) {
		op := ops[idx]

		return opName(op, idx), func() error {
			return op.Execute(arg)
		}
	})
}

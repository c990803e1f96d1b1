package opflow

import (
	"golang.org/x/sync/errgroup"
)

// Executor is anything that can run to completion with a single call. A
// *Pipeline satisfies it directly; the other shapes satisfy it once their
// context has been bound with Bound.
type Executor interface {
	Execute() error
}

type boundPipeline struct {
	exec func() error
}

func (b boundPipeline) Execute() error {
	return b.exec()
}

// Bound binds arg to the pipeline so it can run through a Group. The
// returned Executor consumes the pipeline on its first Execute call.
func (p *PipelineWith[T, Arg]) Bound(arg Arg) Executor {
	return boundPipeline{exec: func() error {
		return p.Execute(arg)
	}}
}

// Bound binds both references to the pipeline so it can run through a Group.
// The returned Executor consumes the pipeline on its first Execute call.
func (p *PipelineWithPair[T, A, B]) Bound(first A, second B) Executor {
	return boundPipeline{exec: func() error {
		return p.Execute(first, second)
	}}
}

// Group runs independent pipelines concurrently. Each pipeline still
// executes its own operations strictly in order; only distinct pipelines
// overlap. Pipelines grouped together must not share mutable context.
type Group struct {
	grp errgroup.Group
}

// NewGroup creates a group running at most limit pipelines at once.
// A limit of zero or less means no limit.
func NewGroup(limit int) *Group {
	grp := &Group{}
	if limit > 0 {
		grp.grp.SetLimit(limit)
	}

	return grp
}

// Go schedules exec on the group.
func (g *Group) Go(exec Executor) {
	g.grp.Go(exec.Execute)
}

// Wait blocks until every scheduled pipeline has finished and returns the
// first error among them.
func (g *Group) Wait() error {
	return g.grp.Wait()
}

package model

import "time"

// PipelineOption defines the interface for pipeline options.
// A pipeline drives every option through the full lifecycle of a run.
type PipelineOption interface {
	// New initialises the pipeline option. It runs once, when the pipeline is built.
	New(run *RunInfo) error
	// BeforeOp runs before each operation is executed.
	BeforeOp(run *RunInfo, op *OpInfo) error
	// AfterOp runs after each operation returns, whether it succeeded or not.
	// elapsed is the time spent inside the operation only.
	AfterOp(run *RunInfo, op *OpInfo, elapsed time.Duration, opErr error) error
	// Finish runs once, after the run stops, either because every operation
	// completed or because one of them failed.
	Finish(run *RunInfo, total time.Duration, runErr error) error
}

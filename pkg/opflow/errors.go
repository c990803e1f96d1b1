package opflow

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrPipelineMustBeSet is returned when Execute is called on a nil pipeline.
	ErrPipelineMustBeSet = errors.New("p must be set")
	// ErrPipelineConsumed is returned when Execute is called on a pipeline
	// that has already been executed. A pipeline runs exactly once; build a
	// new one from a new slice to run again.
	ErrPipelineConsumed = errors.New("pipeline already consumed")
)

// OpError reports the operation that stopped a run.
type OpError struct {
	// Index is the position of the failing operation in the pipeline.
	Index int
	// Executed is the number of operations that completed before the failure.
	Executed int
	// Name is the display name of the failing operation.
	Name string
	// Err is the error returned by the operation.
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("op %s (index %d) failed after %d completed: %v", e.Name, e.Index, e.Executed, e.Err)
}

// Unwrap returns the underlying operation error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying operation error. It exists so that
// errors.Cause from github.com/pkg/errors can traverse an OpError.
func (e *OpError) Cause() error {
	return e.Err
}

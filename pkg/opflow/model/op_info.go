package model

import (
	"time"

	"github.com/google/uuid"
)

// OpInfo describes one operation inside a run.
type OpInfo struct {
	// Index is the position of the operation in the pipeline, starting at 0.
	Index int
	// Name is the display name of the operation. Operations implementing
	// fmt.Stringer are named by their String method.
	Name string
}

// RunInfo describes a single pipeline run.
type RunInfo struct {
	ID        uuid.UUID
	Ops       int
	StartTime time.Time
}

var (
	// StartOp is the virtual operation placed before the first operation of a run.
	StartOp = &OpInfo{Index: -1, Name: "start"}
	// EndOp is the virtual operation placed after the last operation of a run.
	EndOp = &OpInfo{Index: -2, Name: "end"}
)

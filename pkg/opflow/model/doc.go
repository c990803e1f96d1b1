// Package model provides the data structures shared across the opflow packages.
// It defines the description of a run and of each operation inside it,
// and the PipelineOption interface used to observe a run.
package model

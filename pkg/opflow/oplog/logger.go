// Package oplog emits structured log events for pipeline runs.
package oplog

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/opflow/go-opflow/pkg/opflow/model"
)

type pipelineLogger struct {
	log zerolog.Logger
}

func (pl *pipelineLogger) New(run *model.RunInfo) error {
	pl.log.Debug().
		Str("run_id", run.ID.String()).
		Int("ops", run.Ops).
		Msg("run starting")

	return nil
}

func (pl *pipelineLogger) BeforeOp(run *model.RunInfo, op *model.OpInfo) error {
	pl.log.Debug().
		Str("run_id", run.ID.String()).
		Int("index", op.Index).
		Str("op", op.Name).
		Msg("executing op")

	return nil
}

func (pl *pipelineLogger) AfterOp(run *model.RunInfo, op *model.OpInfo, elapsed time.Duration, opErr error) error {
	if opErr != nil {
		pl.log.Error().
			Err(opErr).
			Str("run_id", run.ID.String()).
			Int("index", op.Index).
			Str("op", op.Name).
			Dur("elapsed", elapsed).
			Msg("op failed")

		return nil
	}

	pl.log.Debug().
		Str("run_id", run.ID.String()).
		Int("index", op.Index).
		Str("op", op.Name).
		Dur("elapsed", elapsed).
		Msg("op executed")

	return nil
}

func (pl *pipelineLogger) Finish(run *model.RunInfo, total time.Duration, runErr error) error {
	if runErr != nil {
		pl.log.Error().
			Err(runErr).
			Str("run_id", run.ID.String()).
			Dur("total", total).
			Msg("run aborted")

		return nil
	}

	pl.log.Info().
		Str("run_id", run.ID.String()).
		Int("ops", run.Ops).
		Dur("total", total).
		Msg("run finished")

	return nil
}

// PipelineLogger logs every operation of a run at debug level and the run
// outcome at info or error level.
func PipelineLogger(log zerolog.Logger) model.PipelineOption {
	return &pipelineLogger{log: log}
}

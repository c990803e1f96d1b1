package oplog_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opflow/go-opflow/pkg/opflow"
	"github.com/opflow/go-opflow/pkg/opflow/oplog"
)

type noteOp struct {
	name string
	fail bool
}

func (o noteOp) String() string { return o.name }

func (o noteOp) Execute() error {
	if o.fail {
		return assert.AnError
	}

	return nil
}

func TestPipelineLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	pipe, err := opflow.New([]noteOp{
		{name: "load"},
		{name: "save"},
	}, oplog.PipelineLogger(zerolog.New(&buf)))
	require.NoError(t, err)

	require.NoError(t, pipe.Execute())

	got := buf.String()
	assert.Contains(t, got, `"message":"run starting"`)
	assert.Contains(t, got, `"op":"load"`)
	assert.Contains(t, got, `"op":"save"`)
	assert.Contains(t, got, `"message":"op executed"`)
	assert.Contains(t, got, `"message":"run finished"`)
}

func TestPipelineLoggerFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	pipe, err := opflow.New([]noteOp{
		{name: "load"},
		{name: "explode", fail: true},
	}, oplog.PipelineLogger(zerolog.New(&buf)))
	require.NoError(t, err)

	require.Error(t, pipe.Execute())

	got := buf.String()
	assert.Contains(t, got, `"message":"op failed"`)
	assert.Contains(t, got, `"op":"explode"`)
	assert.Contains(t, got, `"message":"run aborted"`)
	assert.NotContains(t, got, `"message":"run finished"`)
}

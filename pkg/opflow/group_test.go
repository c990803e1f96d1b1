package opflow_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opflow/go-opflow/pkg/opflow"
)

// tickOp increments a shared counter owned by its own pipeline run.
type tickOp struct {
	hits *atomic.Int64
}

func (o tickOp) Execute() error {
	o.hits.Add(1)

	return nil
}

func TestGroup(t *testing.T) {
	t.Parallel()

	hits := &atomic.Int64{}
	grp := opflow.NewGroup(2)

	for i := 0; i < 4; i++ {
		pipe, err := opflow.New([]tickOp{{hits: hits}, {hits: hits}})
		require.NoError(t, err)
		grp.Go(pipe)
	}

	require.NoError(t, grp.Wait())
	assert.Equal(t, int64(8), hits.Load())
}

func TestGroupBound(t *testing.T) {
	t.Parallel()

	var seenA, seenB []int

	pipeA, err := opflow.NewWith[counterOp, *int]([]counterOp{{seen: &seenA}, {seen: &seenA}})
	require.NoError(t, err)
	pipeB, err := opflow.NewWith[counterOp, *int]([]counterOp{{seen: &seenB}})
	require.NoError(t, err)

	counterA, counterB := 0, 0

	grp := opflow.NewGroup(0)
	grp.Go(pipeA.Bound(&counterA))
	grp.Go(pipeB.Bound(&counterB))

	require.NoError(t, grp.Wait())
	assert.Equal(t, 2, counterA)
	assert.Equal(t, 1, counterB)
}

func TestGroupError(t *testing.T) {
	t.Parallel()

	var trace []string

	okPipe, err := opflow.New([]simOp{{kind: simInit, trace: &trace}})
	require.NoError(t, err)
	badPipe, err := opflow.New([]simOp{{kind: simRun, fail: true, trace: &trace}})
	require.NoError(t, err)

	grp := opflow.NewGroup(1)
	grp.Go(okPipe)
	grp.Go(badPipe)

	err = grp.Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, errOpBroken)
}

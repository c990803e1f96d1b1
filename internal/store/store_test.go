package store_test

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opflow/go-opflow/internal/store"
)

func TestMemoryStoreOrderedVertices(t *testing.T) {
	t.Parallel()

	memStore := store.NewMemoryStore[string, string]()

	for _, name := range []string{"start", "end", "[0] init", "[1] run"} {
		require.NoError(t, memStore.AddVertex(name, name, graph.VertexProperties{}))
	}

	assert.Equal(t, []string{"start", "end", "[0] init", "[1] run"}, memStore.OrderedVertices())

	listed, err := memStore.ListVertices()
	require.NoError(t, err)
	assert.Equal(t, memStore.OrderedVertices(), listed)

	count, err := memStore.VertexCount()
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestMemoryStoreDuplicateVertex(t *testing.T) {
	t.Parallel()

	memStore := store.NewMemoryStore[string, string]()
	require.NoError(t, memStore.AddVertex("init", "init", graph.VertexProperties{}))
	assert.ErrorIs(t, memStore.AddVertex("init", "init", graph.VertexProperties{}), graph.ErrVertexAlreadyExists)
}

func TestMemoryStoreRemoveVertex(t *testing.T) {
	t.Parallel()

	memStore := store.NewMemoryStore[string, string]()

	assert.ErrorIs(t, memStore.RemoveVertex("missing"), graph.ErrVertexNotFound)

	require.NoError(t, memStore.AddVertex("init", "init", graph.VertexProperties{}))
	require.NoError(t, memStore.AddVertex("run", "run", graph.VertexProperties{}))
	require.NoError(t, memStore.AddEdge("init", "run", graph.Edge[string]{Source: "init", Target: "run"}))

	assert.ErrorIs(t, memStore.RemoveVertex("init"), graph.ErrVertexHasEdges)

	require.NoError(t, memStore.RemoveEdge("init", "run"))
	require.NoError(t, memStore.RemoveVertex("init"))
	assert.Equal(t, []string{"run"}, memStore.OrderedVertices())
}

func TestMemoryStoreEdges(t *testing.T) {
	t.Parallel()

	memStore := store.NewMemoryStore[string, string]()
	require.NoError(t, memStore.AddVertex("init", "init", graph.VertexProperties{}))
	require.NoError(t, memStore.AddVertex("run", "run", graph.VertexProperties{}))

	_, err := memStore.Edge("init", "run")
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)

	require.NoError(t, memStore.AddEdge("init", "run", graph.Edge[string]{Source: "init", Target: "run"}))

	edge, err := memStore.Edge("init", "run")
	require.NoError(t, err)
	assert.Equal(t, "run", edge.Target)

	edges, err := memStore.ListEdges()
	require.NoError(t, err)
	assert.Len(t, edges, 1)

	updated := graph.Edge[string]{Source: "init", Target: "run", Properties: graph.EdgeProperties{Weight: 2}}
	require.NoError(t, memStore.UpdateEdge("init", "run", updated))

	edge, err = memStore.Edge("init", "run")
	require.NoError(t, err)
	assert.Equal(t, 2, edge.Properties.Weight)

	assert.ErrorIs(t, memStore.UpdateEdge("run", "init", updated), graph.ErrEdgeNotFound)
}

func TestMemoryStoreUpdateVertex(t *testing.T) {
	t.Parallel()

	memStore := store.NewMemoryStore[string, string]()
	require.NoError(t, memStore.AddVertex("init", "init", graph.VertexProperties{Attributes: map[string]string{}}))

	memStore.UpdateVertex("init", func(p *graph.VertexProperties) {
		p.Attributes["xlabel"] = "1ms"
	})

	_, props, err := memStore.Vertex("init")
	require.NoError(t, err)
	assert.Equal(t, "1ms", props.Attributes["xlabel"])

	// unknown vertices are ignored
	memStore.UpdateVertex("missing", func(p *graph.VertexProperties) {
		p.Attributes["xlabel"] = "1ms"
	})
}

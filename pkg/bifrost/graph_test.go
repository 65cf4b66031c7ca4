package bifrost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/bifrost/pkg/mgp"
	"github.com/orneryd/bifrost/pkg/mgp/mgpmock"
)

func TestReleaseAllRunsLIFO(t *testing.T) {
	api := mgpmock.New()
	g := newTestGraph(api)

	var order []string
	g.track(func() { order = append(order, "first") })
	g.track(func() { order = append(order, "second") })

	g.ReleaseAll()
	assert.Equal(t, []string{"second", "first"}, order)

	g.ReleaseAll()
	assert.Len(t, order, 2)
}

func TestGraphArgs(t *testing.T) {
	api := mgpmock.New()
	api.On("ListSize", mgp.ListPtr(0x20)).Return(uint64(2), mgp.StatusNoError).Once()

	g := newTestGraph(api)
	args := g.Args()
	size, err := args.Size()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), size)

	// Borrowed: invocation teardown must not touch the host's list.
	g.ReleaseAll()
	api.AssertNotCalled(t, "ListDestroy", mgp.ListPtr(0x20))
}

func TestGraphVertexByID(t *testing.T) {
	t.Run("returns an owned vertex", func(t *testing.T) {
		api := mgpmock.New()
		api.On("GraphVertexByID", mgp.GraphPtr(0x10), int64(42), mgp.MemoryPtr(0x40)).
			Return(mgp.VertexPtr(0x300), mgp.StatusNoError).Once()
		api.On("VertexDestroy", mgp.VertexPtr(0x300)).Return().Once()

		g := newTestGraph(api)
		v, err := g.VertexByID(42)
		require.NoError(t, err)
		assert.Equal(t, mgp.VertexPtr(0x300), v.ptr)

		g.ReleaseAll()
		api.AssertExpectations(t)
	})

	t.Run("lookup failure keeps the find class", func(t *testing.T) {
		api := mgpmock.New()
		api.On("GraphVertexByID", mgp.GraphPtr(0x10), int64(42), mgp.MemoryPtr(0x40)).
			Return(mgp.VertexPtr(0), mgp.StatusInvalidArgument).Once()

		_, err := newTestGraph(api).VertexByID(42)
		require.ErrorIs(t, err, ErrFindVertex)
	})
}

func TestGraphVertices(t *testing.T) {
	t.Run("walks and copies every vertex", func(t *testing.T) {
		api := mgpmock.New()
		iter := mgp.VerticesIterPtr(0xF00)
		api.On("GraphIterVertices", mgp.GraphPtr(0x10), mgp.MemoryPtr(0x40)).
			Return(iter, mgp.StatusNoError).Once()
		api.On("VerticesIterGet", iter).
			Return(mgp.VertexPtr(0x300), mgp.StatusNoError).Once()
		api.On("VertexCopy", mgp.VertexPtr(0x300), mgp.MemoryPtr(0x40)).
			Return(mgp.VertexPtr(0x301), mgp.StatusNoError).Once()
		api.On("VerticesIterNext", iter).
			Return(mgp.VertexPtr(0), mgp.StatusNoError).Once()
		api.On("VerticesIterDestroy", iter).Return().Once()
		api.On("VertexDestroy", mgp.VertexPtr(0x301)).Return().Once()

		g := newTestGraph(api)
		it, err := g.Vertices()
		require.NoError(t, err)

		v, ok, err := it.Next()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, mgp.VertexPtr(0x301), v.ptr)

		_, ok, err = it.Next()
		require.NoError(t, err)
		assert.False(t, ok)

		// Exhausted: further pulls are local.
		_, ok, err = it.Next()
		require.NoError(t, err)
		assert.False(t, ok)

		g.ReleaseAll()
		api.AssertExpectations(t)
	})

	t.Run("advance failure ends the iteration", func(t *testing.T) {
		api := mgpmock.New()
		iter := mgp.VerticesIterPtr(0xF00)
		api.On("GraphIterVertices", mgp.GraphPtr(0x10), mgp.MemoryPtr(0x40)).
			Return(iter, mgp.StatusNoError).Once()
		api.On("VerticesIterGet", iter).
			Return(mgp.VertexPtr(0), mgp.StatusUnableToAllocate).Once()
		api.On("VerticesIterDestroy", iter).Return().Once()

		g := newTestGraph(api)
		it, err := g.Vertices()
		require.NoError(t, err)

		_, _, err = it.Next()
		require.ErrorIs(t, err, ErrAdvanceIterator)

		_, ok, err := it.Next()
		require.NoError(t, err)
		assert.False(t, ok)

		g.ReleaseAll()
	})
}

func TestCString(t *testing.T) {
	s, err := cString("fine")
	require.NoError(t, err)
	assert.Equal(t, "fine", s)

	_, err = cString("not\x00fine")
	require.ErrorIs(t, err, ErrStringConversion)
}

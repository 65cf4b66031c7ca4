package bifrost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/bifrost/pkg/mgp"
	"github.com/orneryd/bifrost/pkg/mgp/mgpmock"
)

func TestVertexID(t *testing.T) {
	t.Run("reads the host id", func(t *testing.T) {
		api := mgpmock.New()
		api.On("VertexGetID", mgp.VertexPtr(0x300)).
			Return(int64(77), mgp.StatusNoError).Once()

		v := BorrowedVertex(newTestGraph(api), 0x300)
		id, err := v.ID()
		require.NoError(t, err)
		assert.Equal(t, int64(77), id)
	})

	t.Run("failure keeps the id read class", func(t *testing.T) {
		api := mgpmock.New()
		api.On("VertexGetID", mgp.VertexPtr(0x300)).
			Return(int64(0), mgp.StatusDeletedObject).Once()

		v := BorrowedVertex(newTestGraph(api), 0x300)
		_, err := v.ID()
		require.ErrorIs(t, err, ErrReadVertexID)
		require.NotErrorIs(t, err, ErrReadVertexLabels)
	})
}

func TestVertexLabels(t *testing.T) {
	api := mgpmock.New()
	api.On("VertexLabelsCount", mgp.VertexPtr(0x300)).
		Return(uint64(2), mgp.StatusNoError).Once()
	api.On("VertexLabelAt", mgp.VertexPtr(0x300), uint64(0)).
		Return("Person", mgp.StatusNoError).Once()
	api.On("VertexLabelAt", mgp.VertexPtr(0x300), uint64(5)).
		Return("", mgp.StatusOutOfRange).Once()

	v := BorrowedVertex(newTestGraph(api), 0x300)
	count, err := v.LabelCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)

	label, err := v.LabelAt(0)
	require.NoError(t, err)
	assert.Equal(t, "Person", label)

	_, err = v.LabelAt(5)
	require.ErrorIs(t, err, ErrOutOfBoundLabelIndex)
}

func TestVertexProperty(t *testing.T) {
	t.Run("decodes the stored value and destroys the temporary", func(t *testing.T) {
		api := mgpmock.New()
		api.On("VertexGetProperty", mgp.VertexPtr(0x300), "score", mgp.MemoryPtr(0x40)).
			Return(mgp.ValuePtr(0x200), mgp.StatusNoError).Once()
		api.On("ValueType", mgp.ValuePtr(0x200)).
			Return(mgp.ValueTypeDouble, mgp.StatusNoError).Once()
		api.On("ValueGetDouble", mgp.ValuePtr(0x200)).
			Return(0.5, mgp.StatusNoError).Once()
		api.On("ValueDestroy", mgp.ValuePtr(0x200)).Return().Once()

		v := BorrowedVertex(newTestGraph(api), 0x300)
		value, err := v.Property("score")
		require.NoError(t, err)
		f, err := value.Double()
		require.NoError(t, err)
		assert.Equal(t, 0.5, f)
		api.AssertExpectations(t)
	})

	t.Run("the three failure points carry distinct kinds", func(t *testing.T) {
		t.Run("name conversion", func(t *testing.T) {
			api := mgpmock.New()
			v := BorrowedVertex(newTestGraph(api), 0x300)
			_, err := v.Property("bad\x00name")
			require.ErrorIs(t, err, ErrVertexPropertyNameAllocation)
			require.NotErrorIs(t, err, ErrVertexPropertyValueAllocation)
		})

		t.Run("value allocation", func(t *testing.T) {
			api := mgpmock.New()
			api.On("VertexGetProperty", mgp.VertexPtr(0x300), "score", mgp.MemoryPtr(0x40)).
				Return(mgp.ValuePtr(0), mgp.StatusUnableToAllocate).Once()

			v := BorrowedVertex(newTestGraph(api), 0x300)
			_, err := v.Property("score")
			require.ErrorIs(t, err, ErrVertexPropertyValueAllocation)
			require.NotErrorIs(t, err, ErrVertexPropertyValueCreation)
		})

		t.Run("value creation", func(t *testing.T) {
			api := mgpmock.New()
			api.On("VertexGetProperty", mgp.VertexPtr(0x300), "score", mgp.MemoryPtr(0x40)).
				Return(mgp.ValuePtr(0x200), mgp.StatusNoError).Once()
			api.On("ValueType", mgp.ValuePtr(0x200)).
				Return(mgp.ValueTypeNull, mgp.StatusDeletedObject).Once()
			api.On("ValueDestroy", mgp.ValuePtr(0x200)).Return().Once()

			v := BorrowedVertex(newTestGraph(api), 0x300)
			_, err := v.Property("score")
			require.ErrorIs(t, err, ErrVertexPropertyValueCreation)
			require.NotErrorIs(t, err, ErrVertexPropertyValueAllocation)
			api.AssertNumberOfCalls(t, "ValueDestroy", 1)
		})
	})
}

func TestVertexPropertiesIterator(t *testing.T) {
	t.Run("walks get then next until the nil entry", func(t *testing.T) {
		api := mgpmock.New()
		iter := mgp.PropertiesIterPtr(0x900)
		api.On("VertexIterProperties", mgp.VertexPtr(0x300), mgp.MemoryPtr(0x40)).
			Return(iter, mgp.StatusNoError).Once()
		api.On("PropertiesIterGet", iter).
			Return(&mgp.Property{Name: "name", Value: 0x201}, mgp.StatusNoError).Once()
		api.On("ValueType", mgp.ValuePtr(0x201)).
			Return(mgp.ValueTypeString, mgp.StatusNoError).Once()
		api.On("ValueGetString", mgp.ValuePtr(0x201)).
			Return("thor", mgp.StatusNoError).Once()
		api.On("PropertiesIterNext", iter).
			Return(nil, mgp.StatusNoError).Once()
		api.On("PropertiesIterDestroy", iter).Return().Once()

		g := newTestGraph(api)
		v := BorrowedVertex(g, 0x300)
		it, err := v.Properties()
		require.NoError(t, err)

		entry, ok, err := it.Next()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "name", entry.Name)
		s, err := entry.Value.String()
		require.NoError(t, err)
		assert.Equal(t, "thor", s)

		_, ok, err = it.Next()
		require.NoError(t, err)
		assert.False(t, ok)

		g.ReleaseAll()
		api.AssertExpectations(t)
	})

	t.Run("creation failure carries the vertex iterator kind", func(t *testing.T) {
		api := mgpmock.New()
		api.On("VertexIterProperties", mgp.VertexPtr(0x300), mgp.MemoryPtr(0x40)).
			Return(mgp.PropertiesIterPtr(0), mgp.StatusUnableToAllocate).Once()

		v := BorrowedVertex(newTestGraph(api), 0x300)
		_, err := v.Properties()
		require.ErrorIs(t, err, ErrCreateVertexPropertiesIterator)
		require.NotErrorIs(t, err, ErrCreateVertexInEdgesIterator)
	})
}

func TestVertexEdgeIterators(t *testing.T) {
	t.Run("in and out edges carry distinct creation kinds", func(t *testing.T) {
		api := mgpmock.New()
		api.On("VertexIterInEdges", mgp.VertexPtr(0x300), mgp.MemoryPtr(0x40)).
			Return(mgp.EdgesIterPtr(0), mgp.StatusUnableToAllocate).Once()
		api.On("VertexIterOutEdges", mgp.VertexPtr(0x300), mgp.MemoryPtr(0x40)).
			Return(mgp.EdgesIterPtr(0), mgp.StatusUnableToAllocate).Once()

		v := BorrowedVertex(newTestGraph(api), 0x300)
		_, err := v.InEdges()
		require.ErrorIs(t, err, ErrCreateVertexInEdgesIterator)
		_, err = v.OutEdges()
		require.ErrorIs(t, err, ErrCreateVertexOutEdgesIterator)
	})

	t.Run("each pulled edge is copied to an owned wrapper", func(t *testing.T) {
		api := mgpmock.New()
		iter := mgp.EdgesIterPtr(0xA00)
		api.On("VertexIterOutEdges", mgp.VertexPtr(0x300), mgp.MemoryPtr(0x40)).
			Return(iter, mgp.StatusNoError).Once()
		api.On("EdgesIterGet", iter).
			Return(mgp.EdgePtr(0xB00), mgp.StatusNoError).Once()
		api.On("EdgeCopy", mgp.EdgePtr(0xB00), mgp.MemoryPtr(0x40)).
			Return(mgp.EdgePtr(0xB01), mgp.StatusNoError).Once()
		api.On("EdgesIterNext", iter).
			Return(mgp.EdgePtr(0), mgp.StatusNoError).Once()
		api.On("EdgesIterDestroy", iter).Return().Once()
		api.On("EdgeDestroy", mgp.EdgePtr(0xB01)).Return().Once()

		g := newTestGraph(api)
		v := BorrowedVertex(g, 0x300)
		it, err := v.OutEdges()
		require.NoError(t, err)

		edge, ok, err := it.Next()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, mgp.EdgePtr(0xB01), edge.ptr)

		_, ok, err = it.Next()
		require.NoError(t, err)
		assert.False(t, ok)

		g.ReleaseAll()
		api.AssertExpectations(t)
	})
}

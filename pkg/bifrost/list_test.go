package bifrost

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/bifrost/pkg/mgp"
	"github.com/orneryd/bifrost/pkg/mgp/mgpmock"
)

func newTestGraph(api mgp.API) *Graph {
	return NewGraph(api, 0x10, 0x20, 0x30, 0x40)
}

func TestMakeEmptyList(t *testing.T) {
	t.Run("allocation failure maps to create error", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListMakeEmpty", uint64(8), mgp.MemoryPtr(0x40)).
			Return(mgp.ListPtr(0), mgp.StatusUnableToAllocate).Once()

		g := newTestGraph(api)
		_, err := MakeEmptyList(g, 8)
		require.ErrorIs(t, err, ErrCreateList)
		api.AssertExpectations(t)
	})

	t.Run("owned list is destroyed exactly once", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListMakeEmpty", uint64(2), mgp.MemoryPtr(0x40)).
			Return(mgp.ListPtr(0x100), mgp.StatusNoError).Once()
		api.On("ListDestroy", mgp.ListPtr(0x100)).Return().Once()

		g := newTestGraph(api)
		l, err := MakeEmptyList(g, 2)
		require.NoError(t, err)
		l.Release()
		l.Release()
		g.ReleaseAll()
		api.AssertNumberOfCalls(t, "ListDestroy", 1)
	})
}

func TestListSizeAndCapacity(t *testing.T) {
	t.Run("size", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListSize", mgp.ListPtr(0x100)).Return(uint64(3), mgp.StatusNoError).Once()

		l := BorrowedList(newTestGraph(api), 0x100)
		size, err := l.Size()
		require.NoError(t, err)
		assert.Equal(t, uint64(3), size)
	})

	t.Run("size failure is its own class", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListSize", mgp.ListPtr(0x100)).
			Return(uint64(0), mgp.StatusUnableToAllocate).Once()

		l := BorrowedList(newTestGraph(api), 0x100)
		_, err := l.Size()
		require.ErrorIs(t, err, ErrListSize)
		require.NotErrorIs(t, err, ErrListCapacity)
	})

	t.Run("capacity is queried independently of size", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListCapacity", mgp.ListPtr(0x100)).
			Return(uint64(16), mgp.StatusNoError).Once()

		l := BorrowedList(newTestGraph(api), 0x100)
		capacity, err := l.Capacity()
		require.NoError(t, err)
		assert.Equal(t, uint64(16), capacity)
		api.AssertNotCalled(t, "ListSize", mgp.ListPtr(0x100))
	})
}

func TestListValueAt(t *testing.T) {
	t.Run("out of range index is distinct", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListAt", mgp.ListPtr(0x100), uint64(9)).
			Return(mgp.ValuePtr(0), mgp.StatusOutOfRange).Once()

		l := BorrowedList(newTestGraph(api), 0x100)
		_, err := l.ValueAt(9)
		require.ErrorIs(t, err, ErrOutOfBoundIndex)
		require.NotErrorIs(t, err, ErrListElementLookup)
	})

	t.Run("other lookup failures keep the general class", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListAt", mgp.ListPtr(0x100), uint64(0)).
			Return(mgp.ValuePtr(0), mgp.StatusUnableToAllocate).Once()

		l := BorrowedList(newTestGraph(api), 0x100)
		_, err := l.ValueAt(0)
		require.ErrorIs(t, err, ErrListElementLookup)
	})

	t.Run("decodes the element", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListAt", mgp.ListPtr(0x100), uint64(1)).
			Return(mgp.ValuePtr(0x200), mgp.StatusNoError).Once()
		api.On("ValueType", mgp.ValuePtr(0x200)).
			Return(mgp.ValueTypeInt, mgp.StatusNoError).Once()
		api.On("ValueGetInt", mgp.ValuePtr(0x200)).
			Return(int64(42), mgp.StatusNoError).Once()

		l := BorrowedList(newTestGraph(api), 0x100)
		v, err := l.ValueAt(1)
		require.NoError(t, err)
		i, err := v.Int()
		require.NoError(t, err)
		assert.Equal(t, int64(42), i)
	})
}

func TestListAppend(t *testing.T) {
	t.Run("value is encoded, appended and destroyed", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ValueMakeInt", int64(7), mgp.MemoryPtr(0x40)).
			Return(mgp.ValuePtr(0x200), mgp.StatusNoError).Once()
		api.On("ListAppend", mgp.ListPtr(0x100), mgp.ValuePtr(0x200)).
			Return(mgp.StatusNoError).Once()
		api.On("ValueDestroy", mgp.ValuePtr(0x200)).Return().Once()

		l := BorrowedList(newTestGraph(api), 0x100)
		require.NoError(t, l.Append(IntValue(7)))
		api.AssertExpectations(t)
	})

	t.Run("insertion failure still destroys the staged value", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ValueMakeInt", int64(7), mgp.MemoryPtr(0x40)).
			Return(mgp.ValuePtr(0x200), mgp.StatusNoError).Once()
		api.On("ListAppendExtend", mgp.ListPtr(0x100), mgp.ValuePtr(0x200)).
			Return(mgp.StatusInsufficientBuffer).Once()
		api.On("ValueDestroy", mgp.ValuePtr(0x200)).Return().Once()

		l := BorrowedList(newTestGraph(api), 0x100)
		err := l.AppendExtend(IntValue(7))
		require.ErrorIs(t, err, ErrListAppendExtend)
		api.AssertNumberOfCalls(t, "ValueDestroy", 1)
	})
}

func TestListIter(t *testing.T) {
	t.Run("empty list makes no foreign calls past the size query", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListSize", mgp.ListPtr(0x100)).Return(uint64(0), mgp.StatusNoError).Once()

		l := BorrowedList(newTestGraph(api), 0x100)
		it, err := l.Iter()
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			v, ok, err := it.Next()
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, v)
		}
		api.AssertNumberOfCalls(t, "ListSize", 1)
		api.AssertNotCalled(t, "ListAt", mgp.ListPtr(0x100), uint64(0))
	})

	t.Run("yields each element then stops", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListSize", mgp.ListPtr(0x100)).Return(uint64(2), mgp.StatusNoError).Once()
		for i, want := range []int64{10, 11} {
			elem := mgp.ValuePtr(0x200 + uintptr(i))
			api.On("ListAt", mgp.ListPtr(0x100), uint64(i)).
				Return(elem, mgp.StatusNoError).Once()
			api.On("ValueType", elem).Return(mgp.ValueTypeInt, mgp.StatusNoError).Once()
			api.On("ValueGetInt", elem).Return(want, mgp.StatusNoError).Once()
		}

		l := BorrowedList(newTestGraph(api), 0x100)
		it, err := l.Iter()
		require.NoError(t, err)

		var got []int64
		for {
			v, ok, err := it.Next()
			require.NoError(t, err)
			if !ok {
				break
			}
			i, err := v.Int()
			require.NoError(t, err)
			got = append(got, i)
		}
		assert.Equal(t, []int64{10, 11}, got)
	})

	t.Run("size failure surfaces at construction", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListSize", mgp.ListPtr(0x100)).
			Return(uint64(0), mgp.StatusUnableToAllocate).Once()

		l := BorrowedList(newTestGraph(api), 0x100)
		_, err := l.Iter()
		require.ErrorIs(t, err, ErrListSize)
	})
}

func TestCopyList(t *testing.T) {
	t.Run("composes copy from make empty and append extend", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListSize", mgp.ListPtr(0x100)).Return(uint64(2), mgp.StatusNoError).Once()
		api.On("ListMakeEmpty", uint64(2), mgp.MemoryPtr(0x40)).
			Return(mgp.ListPtr(0x300), mgp.StatusNoError).Once()
		for i := 0; i < 2; i++ {
			elem := mgp.ValuePtr(0x200 + uintptr(i))
			api.On("ListAt", mgp.ListPtr(0x100), uint64(i)).
				Return(elem, mgp.StatusNoError).Once()
			api.On("ListAppendExtend", mgp.ListPtr(0x300), elem).
				Return(mgp.StatusNoError).Once()
		}

		g := newTestGraph(api)
		dst, err := copyList(g, 0x100)
		require.NoError(t, err)
		assert.Equal(t, mgp.ListPtr(0x300), dst.ptr)
		assert.True(t, dst.owned)
		api.AssertExpectations(t)
	})

	t.Run("partial copy is destroyed on failure", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListSize", mgp.ListPtr(0x100)).Return(uint64(2), mgp.StatusNoError).Once()
		api.On("ListMakeEmpty", uint64(2), mgp.MemoryPtr(0x40)).
			Return(mgp.ListPtr(0x300), mgp.StatusNoError).Once()
		api.On("ListAt", mgp.ListPtr(0x100), uint64(0)).
			Return(mgp.ValuePtr(0x200), mgp.StatusNoError).Once()
		api.On("ListAppendExtend", mgp.ListPtr(0x300), mgp.ValuePtr(0x200)).
			Return(mgp.StatusUnableToAllocate).Once()
		api.On("ListDestroy", mgp.ListPtr(0x300)).Return().Once()

		_, err := copyList(newTestGraph(api), 0x100)
		require.ErrorIs(t, err, ErrCopyList)
		require.False(t, errors.Is(err, ErrCreateList))
		api.AssertExpectations(t)
	})
}

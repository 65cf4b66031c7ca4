package bifrost

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/bifrost/pkg/mgp"
	"github.com/orneryd/bifrost/pkg/mgp/mgpmock"
)

func TestValueAccessorMismatch(t *testing.T) {
	v := IntValue(5)

	_, err := v.Bool()
	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "bool")
	assert.Contains(t, err.Error(), "int")

	_, err = v.String()
	require.ErrorIs(t, err, ErrTypeMismatch)

	i, err := v.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(5), i)
}

func TestValueKindAndNull(t *testing.T) {
	assert.True(t, NullValue().IsNull())
	assert.False(t, BoolValue(true).IsNull())
	assert.Equal(t, mgp.ValueTypeDouble, DoubleValue(1.5).Kind())
}

func TestNewValueScalars(t *testing.T) {
	cases := []struct {
		name   string
		script func(api *mgpmock.API, ptr mgp.ValuePtr)
		check  func(t *testing.T, v *Value)
	}{
		{
			name: "null",
			script: func(api *mgpmock.API, ptr mgp.ValuePtr) {
				api.On("ValueType", ptr).Return(mgp.ValueTypeNull, mgp.StatusNoError).Once()
			},
			check: func(t *testing.T, v *Value) {
				assert.True(t, v.IsNull())
			},
		},
		{
			name: "bool",
			script: func(api *mgpmock.API, ptr mgp.ValuePtr) {
				api.On("ValueType", ptr).Return(mgp.ValueTypeBool, mgp.StatusNoError).Once()
				api.On("ValueGetBool", ptr).Return(true, mgp.StatusNoError).Once()
			},
			check: func(t *testing.T, v *Value) {
				b, err := v.Bool()
				require.NoError(t, err)
				assert.True(t, b)
			},
		},
		{
			name: "string",
			script: func(api *mgpmock.API, ptr mgp.ValuePtr) {
				api.On("ValueType", ptr).Return(mgp.ValueTypeString, mgp.StatusNoError).Once()
				api.On("ValueGetString", ptr).Return("odin", mgp.StatusNoError).Once()
			},
			check: func(t *testing.T, v *Value) {
				s, err := v.String()
				require.NoError(t, err)
				assert.Equal(t, "odin", s)
			},
		},
		{
			name: "double",
			script: func(api *mgpmock.API, ptr mgp.ValuePtr) {
				api.On("ValueType", ptr).Return(mgp.ValueTypeDouble, mgp.StatusNoError).Once()
				api.On("ValueGetDouble", ptr).Return(0.25, mgp.StatusNoError).Once()
			},
			check: func(t *testing.T, v *Value) {
				f, err := v.Double()
				require.NoError(t, err)
				assert.Equal(t, 0.25, f)
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := mgpmock.New()
			tc.script(api, 0x200)
			v, err := newValue(newTestGraph(api), 0x200)
			require.NoError(t, err)
			tc.check(t, v)
			api.AssertExpectations(t)
		})
	}
}

func TestNewValueTagReadFailure(t *testing.T) {
	api := mgpmock.New()
	api.On("ValueType", mgp.ValuePtr(0x200)).
		Return(mgp.ValueTypeNull, mgp.StatusDeletedObject).Once()

	_, err := newValue(newTestGraph(api), 0x200)
	require.ErrorIs(t, err, ErrReadValue)
}

func TestNewValueVertexIsCopiedToOwned(t *testing.T) {
	api := mgpmock.New()
	api.On("ValueType", mgp.ValuePtr(0x200)).
		Return(mgp.ValueTypeVertex, mgp.StatusNoError).Once()
	api.On("ValueGetVertex", mgp.ValuePtr(0x200)).
		Return(mgp.VertexPtr(0x300), mgp.StatusNoError).Once()
	api.On("VertexCopy", mgp.VertexPtr(0x300), mgp.MemoryPtr(0x40)).
		Return(mgp.VertexPtr(0x301), mgp.StatusNoError).Once()
	api.On("VertexDestroy", mgp.VertexPtr(0x301)).Return().Once()

	g := newTestGraph(api)
	v, err := newValue(g, 0x200)
	require.NoError(t, err)

	vertex, err := v.Vertex()
	require.NoError(t, err)
	assert.Equal(t, mgp.VertexPtr(0x301), vertex.ptr)

	g.ReleaseAll()
	api.AssertExpectations(t)
}

func TestNewValueVertexCopyFailure(t *testing.T) {
	api := mgpmock.New()
	api.On("ValueType", mgp.ValuePtr(0x200)).
		Return(mgp.ValueTypeVertex, mgp.StatusNoError).Once()
	api.On("ValueGetVertex", mgp.ValuePtr(0x200)).
		Return(mgp.VertexPtr(0x300), mgp.StatusNoError).Once()
	api.On("VertexCopy", mgp.VertexPtr(0x300), mgp.MemoryPtr(0x40)).
		Return(mgp.VertexPtr(0), mgp.StatusUnableToAllocate).Once()

	_, err := newValue(newTestGraph(api), 0x200)
	require.ErrorIs(t, err, ErrCopyVertex)
	require.NotErrorIs(t, err, ErrReadValue)
}

func TestEncodeScalarFailuresKeepPerVariantKinds(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ValueMakeInt", int64(1), mgp.MemoryPtr(0x40)).
			Return(mgp.ValuePtr(0), mgp.StatusUnableToAllocate).Once()

		_, err := encodeValue(newTestGraph(api), IntValue(1))
		require.ErrorIs(t, err, ErrAllocateIntValue)
		require.NotErrorIs(t, err, ErrAllocateDoubleValue)
	})

	t.Run("null", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ValueMakeNull", mgp.MemoryPtr(0x40)).
			Return(mgp.ValuePtr(0), mgp.StatusUnableToAllocate).Once()

		_, err := encodeValue(newTestGraph(api), NullValue())
		require.ErrorIs(t, err, ErrAllocateNullValue)
	})
}

func TestEncodeStringWithInteriorNul(t *testing.T) {
	api := mgpmock.New()
	_, err := encodeValue(newTestGraph(api), StringValue("bad\x00string"))
	require.ErrorIs(t, err, ErrStringConversion)
	api.AssertNotCalled(t, "ValueMakeString", "bad\x00string", mgp.MemoryPtr(0x40))
}

func TestEncodeListCopiesBeforeHandoff(t *testing.T) {
	t.Run("copy is destroyed when make value fails", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListSize", mgp.ListPtr(0x100)).Return(uint64(0), mgp.StatusNoError).Once()
		api.On("ListMakeEmpty", uint64(0), mgp.MemoryPtr(0x40)).
			Return(mgp.ListPtr(0x300), mgp.StatusNoError).Once()
		api.On("ValueMakeList", mgp.ListPtr(0x300)).
			Return(mgp.ValuePtr(0), mgp.StatusUnableToAllocate).Once()
		api.On("ListDestroy", mgp.ListPtr(0x300)).Return().Once()

		g := newTestGraph(api)
		_, err := encodeValue(g, ListValue(BorrowedList(g, 0x100)))
		require.ErrorIs(t, err, ErrAllocateListValue)
		api.AssertExpectations(t)
	})

	t.Run("successful handoff leaves the copy with the value", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListSize", mgp.ListPtr(0x100)).Return(uint64(0), mgp.StatusNoError).Once()
		api.On("ListMakeEmpty", uint64(0), mgp.MemoryPtr(0x40)).
			Return(mgp.ListPtr(0x300), mgp.StatusNoError).Once()
		api.On("ValueMakeList", mgp.ListPtr(0x300)).
			Return(mgp.ValuePtr(0x400), mgp.StatusNoError).Once()

		g := newTestGraph(api)
		ptr, err := encodeValue(g, ListValue(BorrowedList(g, 0x100)))
		require.NoError(t, err)
		assert.Equal(t, mgp.ValuePtr(0x400), ptr)
		api.AssertNotCalled(t, "ListDestroy", mgp.ListPtr(0x300))
	})
}

func TestMismatchMessageNamesBothTypes(t *testing.T) {
	err := mismatchError(mgp.ValueTypeVertex, mgp.ValueTypeString)
	require.ErrorIs(t, err, ErrTypeMismatch)
	msg := err.Error()
	assert.True(t, strings.Contains(msg, mgp.ValueTypeVertex.String()))
	assert.True(t, strings.Contains(msg, mgp.ValueTypeString.String()))
}

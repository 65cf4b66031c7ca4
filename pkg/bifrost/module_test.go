package bifrost

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/bifrost/pkg/mgp"
	"github.com/orneryd/bifrost/pkg/mgp/mgpmock"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "int", TypeInt().String())
	assert.Equal(t, "list of int", TypeListOf(TypeInt()).String())
	assert.Equal(t, "nullable list of node", TypeNullable(TypeListOf(TypeNode())).String())
}

func TestModuleRegister(t *testing.T) {
	t.Run("duplicate names are rejected", func(t *testing.T) {
		m := NewModule()
		require.NoError(t, m.Register(&Procedure{Name: "ranker"}))
		err := m.Register(&Procedure{Name: "ranker"})
		require.ErrorIs(t, err, ErrDuplicateProcedure)
	})

	t.Run("interior NUL in the name is rejected", func(t *testing.T) {
		m := NewModule()
		err := m.Register(&Procedure{Name: "bad\x00proc"})
		require.ErrorIs(t, err, ErrStringConversion)
	})

	t.Run("procedures keep registration order", func(t *testing.T) {
		m := NewModule()
		require.NoError(t, m.Register(&Procedure{Name: "b"}))
		require.NoError(t, m.Register(&Procedure{Name: "a"}))
		var names []string
		for _, p := range m.Procedures() {
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{"b", "a"}, names)
	})
}

func TestModuleInit(t *testing.T) {
	t.Run("declares arguments and results", func(t *testing.T) {
		api := mgpmock.New()
		proc := mgp.ProcPtr(0xD00)
		api.On("ModuleAddReadProcedure", mgp.ModulePtr(0x50), "ranker").
			Return(proc, mgp.StatusNoError).Once()
		api.On("TypeInt").Return(mgp.TypePtr(0xE01), mgp.StatusNoError)
		api.On("TypeList", mgp.TypePtr(0xE01)).
			Return(mgp.TypePtr(0xE02), mgp.StatusNoError).Once()
		api.On("ProcAddArg", proc, "node_list", mgp.TypePtr(0xE02)).
			Return(mgp.StatusNoError).Once()
		api.On("TypeFloat").Return(mgp.TypePtr(0xE03), mgp.StatusNoError).Once()
		api.On("ValueMakeDouble", 0.1, mgp.MemoryPtr(0x60)).
			Return(mgp.ValuePtr(0x200), mgp.StatusNoError).Once()
		api.On("ProcAddOptArg", proc, "threshold", mgp.TypePtr(0xE03), mgp.ValuePtr(0x200)).
			Return(mgp.StatusNoError).Once()
		api.On("ValueDestroy", mgp.ValuePtr(0x200)).Return().Once()
		api.On("ProcAddResult", proc, "node_id", mgp.TypePtr(0xE01)).
			Return(mgp.StatusNoError).Once()

		m := NewModule()
		require.NoError(t, m.Register(&Procedure{
			Name: "ranker",
			Args: []Parameter{{Name: "node_list", Type: TypeListOf(TypeInt())}},
			OptArgs: []OptionalParameter{
				{Name: "threshold", Type: TypeFloat(), Default: DoubleValue(0.1)},
			},
			Results: []ResultField{{Name: "node_id", Type: TypeInt()}},
		}))
		require.NoError(t, m.Init(api, 0x50, 0x60))
		api.AssertExpectations(t)
	})

	t.Run("declaration failure names the procedure", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ModuleAddReadProcedure", mgp.ModulePtr(0x50), "ranker").
			Return(mgp.ProcPtr(0), mgp.StatusUnableToAllocate).Once()

		m := NewModule()
		require.NoError(t, m.Register(&Procedure{Name: "ranker"}))
		err := m.Init(api, 0x50, 0x60)
		require.ErrorIs(t, err, ErrAddProcedure)
		assert.Contains(t, err.Error(), "ranker")
	})

	t.Run("type descriptor failure keeps its own class", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ModuleAddReadProcedure", mgp.ModulePtr(0x50), "ranker").
			Return(mgp.ProcPtr(0xD00), mgp.StatusNoError).Once()
		api.On("TypeInt").Return(mgp.TypePtr(0), mgp.StatusUnableToAllocate).Once()

		m := NewModule()
		require.NoError(t, m.Register(&Procedure{
			Name: "ranker",
			Args: []Parameter{{Name: "n", Type: TypeInt()}},
		}))
		err := m.Init(api, 0x50, 0x60)
		require.ErrorIs(t, err, ErrAddProcedureParameterType)
	})
}

func TestModuleInvoke(t *testing.T) {
	t.Run("unknown procedure reports through the result", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ResultSetErrorMsg", mgp.ResultPtr(0x30), mock.Anything).
			Return(mgp.StatusNoError).Once()

		m := NewModule()
		err := m.Invoke(api, "missing", 0x20, 0x10, 0x30, 0x40)
		require.ErrorIs(t, err, ErrUnknownProcedure)
		api.AssertExpectations(t)
	})

	t.Run("handler runs against a fresh graph", func(t *testing.T) {
		api := mgpmock.New()
		m := NewModule()
		var got *Graph
		require.NoError(t, m.Register(&Procedure{
			Name: "ok",
			Handler: func(g *Graph) error {
				got = g
				return nil
			},
		}))
		require.NoError(t, m.Invoke(api, "ok", 0x20, 0x10, 0x30, 0x40))
		require.NotNil(t, got)
		assert.Equal(t, mgp.MemoryPtr(0x40), got.Memory())
	})

	t.Run("handler error is reported and wrappers are still released", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListMakeEmpty", uint64(1), mgp.MemoryPtr(0x40)).
			Return(mgp.ListPtr(0x100), mgp.StatusNoError).Once()
		api.On("ListDestroy", mgp.ListPtr(0x100)).Return().Once()
		api.On("ResultSetErrorMsg", mgp.ResultPtr(0x30), mock.Anything).
			Return(mgp.StatusNoError).Once()

		boom := errors.New("boom")
		m := NewModule()
		require.NoError(t, m.Register(&Procedure{
			Name: "failing",
			Handler: func(g *Graph) error {
				_, err := MakeEmptyList(g, 1)
				require.NoError(t, err)
				return boom
			},
		}))
		err := m.Invoke(api, "failing", 0x20, 0x10, 0x30, 0x40)
		require.ErrorIs(t, err, boom)
		api.AssertNumberOfCalls(t, "ListDestroy", 1)
	})

	t.Run("panic is converted to a result error", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListMakeEmpty", uint64(1), mgp.MemoryPtr(0x40)).
			Return(mgp.ListPtr(0x100), mgp.StatusNoError).Once()
		api.On("ListDestroy", mgp.ListPtr(0x100)).Return().Once()
		api.On("ResultSetErrorMsg", mgp.ResultPtr(0x30), mock.Anything).
			Return(mgp.StatusNoError).Once()

		m := NewModule()
		require.NoError(t, m.Register(&Procedure{
			Name: "panicking",
			Handler: func(g *Graph) error {
				_, err := MakeEmptyList(g, 1)
				require.NoError(t, err)
				panic("unexpected")
			},
		}))
		err := m.Invoke(api, "panicking", 0x20, 0x10, 0x30, 0x40)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "panicked")
		api.AssertNumberOfCalls(t, "ListDestroy", 1)
		api.AssertNumberOfCalls(t, "ResultSetErrorMsg", 1)
	})

	t.Run("released wrappers are not released twice at invocation end", func(t *testing.T) {
		api := mgpmock.New()
		api.On("ListMakeEmpty", uint64(1), mgp.MemoryPtr(0x40)).
			Return(mgp.ListPtr(0x100), mgp.StatusNoError).Once()
		api.On("ListDestroy", mgp.ListPtr(0x100)).Return().Once()

		m := NewModule()
		require.NoError(t, m.Register(&Procedure{
			Name: "eager",
			Handler: func(g *Graph) error {
				l, err := MakeEmptyList(g, 1)
				require.NoError(t, err)
				l.Release()
				return nil
			},
		}))
		require.NoError(t, m.Invoke(api, "eager", 0x20, 0x10, 0x30, 0x40))
		api.AssertNumberOfCalls(t, "ListDestroy", 1)
	})
}

func TestModuleShutdown(t *testing.T) {
	m := NewModule()
	var order []int
	m.OnShutdown(func() { order = append(order, 1) })
	m.OnShutdown(func() { order = append(order, 2) })
	m.Shutdown()
	m.Shutdown()
	assert.Equal(t, []int{2, 1}, order)
}

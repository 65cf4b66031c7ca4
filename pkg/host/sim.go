package host

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/orneryd/bifrost/pkg/mgp"
)

// Sim implements mgp.API against an in-memory Graph. Every foreign object a
// procedure allocates gets a handle in the table; destroy entry points
// remove them, so a leak or double free shows up as a table mismatch.
//
// The allocation budget injects single-point failures: once the budget is
// spent, every further allocating entry point reports
// StatusUnableToAllocate.
type Sim struct {
	mu    sync.Mutex
	graph *Graph
	log   zerolog.Logger
	id    string

	handles map[uintptr]any
	next    uintptr

	allocBudget int
	allocCount  int

	module simModule
	types  map[string]uintptr
}

// Option configures a Sim.
type Option func(*Sim)

// WithLogger routes the simulator's logs.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Sim) { s.log = log }
}

// WithAllocBudget fails every allocating entry point after n successful
// allocations.
func WithAllocBudget(n int) Option {
	return func(s *Sim) { s.allocBudget = n }
}

// New builds a simulator over g.
func New(g *Graph, opts ...Option) *Sim {
	s := &Sim{
		graph:       g,
		log:         zerolog.Nop(),
		id:          uuid.NewString(),
		handles:     make(map[uintptr]any),
		next:        0x1000,
		allocBudget: -1,
		types:       make(map[string]uintptr),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("sim", s.id).Logger()
	return s
}

// ID returns the simulator instance id.
func (s *Sim) ID() string { return s.id }

// LiveHandles returns the number of live foreign objects. After a procedure
// invocation that released everything it owned, only the handles the
// harness itself created remain.
func (s *Sim) LiveHandles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

func (s *Sim) put(obj any) uintptr {
	h := s.next
	s.next++
	s.handles[h] = obj
	return h
}

func (s *Sim) drop(h uintptr) {
	delete(s.handles, h)
}

// alloc spends one unit of the allocation budget.
func (s *Sim) alloc() bool {
	if s.allocBudget >= 0 && s.allocCount >= s.allocBudget {
		s.log.Debug().Int("count", s.allocCount).Msg("allocation budget exhausted")
		return false
	}
	s.allocCount++
	return true
}

// Internal object representations behind the handle table.

type simValue struct {
	kind mgp.ValueType
	b    bool
	i    int64
	f    float64
	s    string
	h    uintptr
}

type simList struct {
	elems    []uintptr
	capacity uint64
}

type simMap struct {
	keys []string
	vals map[string]uintptr
}

type simMapItem struct {
	key string
	val uintptr
}

type simVertex struct{ id int64 }

// simEdge caches lazily created endpoint handles; the edge owns them, as
// the host owns the borrowed vertices its endpoint lookups return.
type simEdge struct {
	id         int64
	fromH, toH uintptr
}

// simPath owns the element handles its lookups hand out.
type simPath struct {
	nodes  []int64
	edges  []int64
	nodeHs map[uint64]uintptr
	edgeHs map[uint64]uintptr
}

type simDate struct{ year, month, day int32 }

type simLocalTime struct{ hour, minute, second, ms, us int32 }

type simLocalDateTime struct {
	date simDate
	lt   simLocalTime
}

type simDuration struct{ micros int64 }

type simPropsIter struct {
	entries []mgp.Property
	pos     int
}

// Element iterators own the handles of the elements they yield; advancing
// past an element or destroying the iterator invalidates them, which is why
// the wrapper layer copies each element before handing it out.
type simEdgesIter struct {
	handles []uintptr
	pos     int
}

type simVerticesIter struct {
	handles []uintptr
	pos     int
}

type simItemsIter struct {
	items []uintptr
	pos   int
}

type simResult struct {
	rows   []map[string]uintptr
	errMsg string
}

type simRecord struct {
	res uintptr
	row int
}

type simMemory struct{}

type simGraph struct{}

type simModule struct {
	procs []*simProc
}

type simProc struct {
	name    string
	args    []simField
	optArgs []simField
	results []simField
}

type simField struct {
	name string
	typ  string
}

type simType struct{ name string }

func get[T any](s *Sim, h uintptr) (T, bool) {
	obj, ok := s.handles[h]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := obj.(T)
	return t, ok
}

// Harness surface, used by the CLI and tests rather than by procedures.

// GraphHandle returns the handle passed to procedures as the graph context.
func (s *Sim) GraphHandle() mgp.GraphPtr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mgp.GraphPtr(s.put(&simGraph{}))
}

// NewMemory returns a fresh allocator handle.
func (s *Sim) NewMemory() mgp.MemoryPtr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mgp.MemoryPtr(s.put(&simMemory{}))
}

// NewResult returns an empty result set handle.
func (s *Sim) NewResult() mgp.ResultPtr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mgp.ResultPtr(s.put(&simResult{}))
}

// ModuleHandle returns the handle passed to the registration entry point.
func (s *Sim) ModuleHandle() mgp.ModulePtr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mgp.ModulePtr(s.put(&s.module))
}

// DeclaredProcedures lists the procedures registered through
// ModuleAddReadProcedure, in declaration order.
func (s *Sim) DeclaredProcedures() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.module.procs))
	for _, p := range s.module.procs {
		names = append(names, p.name)
	}
	return names
}

// NewArgList builds an argument list from Go natives (nil, bool, int,
// int64, float64, string, []any, map[string]any).
func (s *Sim) NewArgList(args ...any) (mgp.ListPtr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elems := make([]uintptr, 0, len(args))
	for _, arg := range args {
		h, err := s.fromNative(arg)
		if err != nil {
			return 0, err
		}
		elems = append(elems, h)
	}
	return mgp.ListPtr(s.put(&simList{elems: elems, capacity: uint64(len(elems))})), nil
}

func (s *Sim) fromNative(v any) (uintptr, error) {
	switch x := v.(type) {
	case nil:
		return s.put(&simValue{kind: mgp.ValueTypeNull}), nil
	case bool:
		return s.put(&simValue{kind: mgp.ValueTypeBool, b: x}), nil
	case int:
		return s.put(&simValue{kind: mgp.ValueTypeInt, i: int64(x)}), nil
	case int64:
		return s.put(&simValue{kind: mgp.ValueTypeInt, i: x}), nil
	case float64:
		return s.put(&simValue{kind: mgp.ValueTypeDouble, f: x}), nil
	case string:
		return s.put(&simValue{kind: mgp.ValueTypeString, s: x}), nil
	case []any:
		elems := make([]uintptr, 0, len(x))
		for _, e := range x {
			h, err := s.fromNative(e)
			if err != nil {
				return 0, err
			}
			elems = append(elems, h)
		}
		lh := s.put(&simList{elems: elems, capacity: uint64(len(elems))})
		return s.put(&simValue{kind: mgp.ValueTypeList, h: lh}), nil
	case map[string]any:
		sm := &simMap{vals: make(map[string]uintptr)}
		for _, key := range sortedPropNames(x) {
			h, err := s.fromNative(x[key])
			if err != nil {
				return 0, err
			}
			sm.keys = append(sm.keys, key)
			sm.vals[key] = h
		}
		mh := s.put(sm)
		return s.put(&simValue{kind: mgp.ValueTypeMap, h: mh}), nil
	default:
		return 0, fmt.Errorf("unsupported native value %T", v)
	}
}

// toNative decodes a value handle back to a Go native for assertions and
// CLI output.
func (s *Sim) toNative(h uintptr) (any, error) {
	v, ok := get[*simValue](s, h)
	if !ok {
		return nil, fmt.Errorf("unknown value handle %#x", h)
	}
	switch v.kind {
	case mgp.ValueTypeNull:
		return nil, nil
	case mgp.ValueTypeBool:
		return v.b, nil
	case mgp.ValueTypeInt:
		return v.i, nil
	case mgp.ValueTypeDouble:
		return v.f, nil
	case mgp.ValueTypeString:
		return v.s, nil
	case mgp.ValueTypeList:
		l, ok := get[*simList](s, v.h)
		if !ok {
			return nil, fmt.Errorf("unknown list handle %#x", v.h)
		}
		out := make([]any, 0, len(l.elems))
		for _, e := range l.elems {
			n, err := s.toNative(e)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	case mgp.ValueTypeMap:
		m, ok := get[*simMap](s, v.h)
		if !ok {
			return nil, fmt.Errorf("unknown map handle %#x", v.h)
		}
		out := make(map[string]any, len(m.keys))
		for _, key := range m.keys {
			n, err := s.toNative(m.vals[key])
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case mgp.ValueTypeVertex:
		vx, ok := get[*simVertex](s, v.h)
		if !ok {
			return nil, fmt.Errorf("unknown vertex handle %#x", v.h)
		}
		return s.graph.Node(vx.id), nil
	case mgp.ValueTypeEdge:
		e, ok := get[*simEdge](s, v.h)
		if !ok {
			return nil, fmt.Errorf("unknown edge handle %#x", v.h)
		}
		return s.graph.Edge(e.id), nil
	case mgp.ValueTypeDuration:
		d, ok := get[*simDuration](s, v.h)
		if !ok {
			return nil, fmt.Errorf("unknown duration handle %#x", v.h)
		}
		return d.micros, nil
	default:
		return nil, fmt.Errorf("value kind %s has no native decoding", v.kind)
	}
}

// Rows decodes the accumulated result rows to Go natives, plus the error
// message if the procedure reported one.
func (s *Sim) Rows(r mgp.ResultPtr) ([]map[string]any, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := get[*simResult](s, uintptr(r))
	if !ok {
		return nil, "", fmt.Errorf("unknown result handle %#x", uintptr(r))
	}
	rows := make([]map[string]any, 0, len(res.rows))
	for _, row := range res.rows {
		decoded := make(map[string]any, len(row))
		for field, h := range row {
			n, err := s.toNative(h)
			if err != nil {
				return nil, "", err
			}
			decoded[field] = n
		}
		rows = append(rows, decoded)
	}
	return rows, res.errMsg, nil
}

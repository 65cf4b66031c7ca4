package bifrost

import (
	"fmt"

	"github.com/orneryd/bifrost/pkg/mgp"
)

// Vertex is an opaque graph element handle. It exposes property lookup and
// lazy iterators over incident edges; it never stores graph data itself.
type Vertex struct {
	g        *Graph
	ptr      mgp.VertexPtr
	owned    bool
	released bool
}

// BorrowedVertex wraps a host-owned vertex handle.
func BorrowedVertex(g *Graph, ptr mgp.VertexPtr) *Vertex {
	return &Vertex{g: g, ptr: ptr}
}

func newOwnedVertex(g *Graph, ptr mgp.VertexPtr) *Vertex {
	v := &Vertex{g: g, ptr: ptr, owned: true}
	g.track(v.Release)
	return v
}

// Release destroys an owned vertex. Safe to call more than once.
func (v *Vertex) Release() {
	if !v.owned || v.released {
		return
	}
	v.released = true
	v.g.api.VertexDestroy(v.ptr)
}

// ID returns the host's vertex id.
func (v *Vertex) ID() (int64, error) {
	id, st := v.g.api.VertexGetID(v.ptr)
	if !st.OK() {
		return 0, statusError(ErrReadVertexID, st)
	}
	return id, nil
}

// LabelCount returns the number of labels on the vertex.
func (v *Vertex) LabelCount() (uint64, error) {
	count, st := v.g.api.VertexLabelsCount(v.ptr)
	if !st.OK() {
		return 0, statusError(ErrReadVertexLabels, st)
	}
	return count, nil
}

// LabelAt returns the label at index.
func (v *Vertex) LabelAt(index uint64) (string, error) {
	label, st := v.g.api.VertexLabelAt(v.ptr, index)
	if !st.OK() {
		return "", statusError(ErrOutOfBoundLabelIndex, st)
	}
	return label, nil
}

// Property decodes the property stored under name. Name conversion, value
// allocation, and value creation fail with distinct kinds, so a partial
// failure stays diagnosable. A missing property decodes as the null variant.
func (v *Vertex) Property(name string) (*Value, error) {
	name, err := cString(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVertexPropertyNameAllocation, err)
	}
	ptr, st := v.g.api.VertexGetProperty(v.ptr, name, v.g.memory)
	if !st.OK() {
		return nil, statusError(ErrVertexPropertyValueAllocation, st)
	}
	defer v.g.api.ValueDestroy(ptr)
	value, err := newValue(v.g, ptr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVertexPropertyValueCreation, err)
	}
	return value, nil
}

// Properties requests a foreign iterator over the vertex's properties.
func (v *Vertex) Properties() (*PropertiesIterator, error) {
	ptr, st := v.g.api.VertexIterProperties(v.ptr, v.g.memory)
	if !st.OK() {
		return nil, statusError(ErrCreateVertexPropertiesIterator, st)
	}
	return newPropertiesIterator(v.g, ptr), nil
}

// InEdges requests a foreign iterator over the vertex's incoming edges.
func (v *Vertex) InEdges() (*EdgesIterator, error) {
	ptr, st := v.g.api.VertexIterInEdges(v.ptr, v.g.memory)
	if !st.OK() {
		return nil, statusError(ErrCreateVertexInEdgesIterator, st)
	}
	return newEdgesIterator(v.g, ptr), nil
}

// OutEdges requests a foreign iterator over the vertex's outgoing edges.
func (v *Vertex) OutEdges() (*EdgesIterator, error) {
	ptr, st := v.g.api.VertexIterOutEdges(v.ptr, v.g.memory)
	if !st.OK() {
		return nil, statusError(ErrCreateVertexOutEdgesIterator, st)
	}
	return newEdgesIterator(v.g, ptr), nil
}

// PropertyEntry is one decoded property: its name and value.
type PropertyEntry struct {
	Name  string
	Value *Value
}

// PropertiesIterator walks a foreign properties iterator. The host's
// current entry is borrowed; the value is decoded (copied) on each pull.
type PropertiesIterator struct {
	g        *Graph
	ptr      mgp.PropertiesIterPtr
	started  bool
	done     bool
	released bool
}

func newPropertiesIterator(g *Graph, ptr mgp.PropertiesIterPtr) *PropertiesIterator {
	it := &PropertiesIterator{g: g, ptr: ptr}
	g.track(it.Release)
	return it
}

// Next decodes the next property, or returns ok == false once exhausted.
func (it *PropertiesIterator) Next() (*PropertyEntry, bool, error) {
	if it.done {
		return nil, false, nil
	}
	var (
		prop *mgp.Property
		st   mgp.Status
	)
	if !it.started {
		it.started = true
		prop, st = it.g.api.PropertiesIterGet(it.ptr)
	} else {
		prop, st = it.g.api.PropertiesIterNext(it.ptr)
	}
	if !st.OK() {
		it.done = true
		return nil, false, statusError(ErrAdvanceIterator, st)
	}
	if prop == nil {
		it.done = true
		return nil, false, nil
	}
	value, err := newValue(it.g, prop.Value)
	if err != nil {
		it.done = true
		return nil, false, err
	}
	return &PropertyEntry{Name: prop.Name, Value: value}, true, nil
}

// Release destroys the foreign iterator. Safe to call more than once.
func (it *PropertiesIterator) Release() {
	if it.released {
		return
	}
	it.released = true
	it.g.api.PropertiesIterDestroy(it.ptr)
}

// EdgesIterator walks a foreign edge iterator. Each pull copies the current
// edge into an owned wrapper.
type EdgesIterator struct {
	g        *Graph
	ptr      mgp.EdgesIterPtr
	started  bool
	done     bool
	released bool
}

func newEdgesIterator(g *Graph, ptr mgp.EdgesIterPtr) *EdgesIterator {
	it := &EdgesIterator{g: g, ptr: ptr}
	g.track(it.Release)
	return it
}

// Next returns the next edge, or ok == false once exhausted.
func (it *EdgesIterator) Next() (*Edge, bool, error) {
	if it.done {
		return nil, false, nil
	}
	var (
		ptr mgp.EdgePtr
		st  mgp.Status
	)
	if !it.started {
		it.started = true
		ptr, st = it.g.api.EdgesIterGet(it.ptr)
	} else {
		ptr, st = it.g.api.EdgesIterNext(it.ptr)
	}
	if !st.OK() {
		it.done = true
		return nil, false, statusError(ErrAdvanceIterator, st)
	}
	if ptr == 0 {
		it.done = true
		return nil, false, nil
	}
	copied, st := it.g.api.EdgeCopy(ptr, it.g.memory)
	if !st.OK() {
		it.done = true
		return nil, false, statusError(ErrCopyEdge, st)
	}
	return newOwnedEdge(it.g, copied), true, nil
}

// Release destroys the foreign iterator. Safe to call more than once.
func (it *EdgesIterator) Release() {
	if it.released {
		return
	}
	it.released = true
	it.g.api.EdgesIterDestroy(it.ptr)
}

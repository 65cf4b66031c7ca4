package bifrost

import (
	"fmt"

	"github.com/orneryd/bifrost/pkg/mgp"
)

// Edge is an opaque graph element handle for one directed relationship.
type Edge struct {
	g        *Graph
	ptr      mgp.EdgePtr
	owned    bool
	released bool
}

// BorrowedEdge wraps a host-owned edge handle.
func BorrowedEdge(g *Graph, ptr mgp.EdgePtr) *Edge {
	return &Edge{g: g, ptr: ptr}
}

func newOwnedEdge(g *Graph, ptr mgp.EdgePtr) *Edge {
	e := &Edge{g: g, ptr: ptr, owned: true}
	g.track(e.Release)
	return e
}

// Release destroys an owned edge. Safe to call more than once.
func (e *Edge) Release() {
	if !e.owned || e.released {
		return
	}
	e.released = true
	e.g.api.EdgeDestroy(e.ptr)
}

// Type returns the edge's relationship type name.
func (e *Edge) Type() (string, error) {
	name, st := e.g.api.EdgeGetType(e.ptr)
	if !st.OK() {
		return "", statusError(ErrReadEdgeType, st)
	}
	return name, nil
}

// From returns the source vertex as an owned copy.
func (e *Edge) From() (*Vertex, error) {
	return e.endpoint(e.g.api.EdgeFromVertex)
}

// To returns the destination vertex as an owned copy.
func (e *Edge) To() (*Vertex, error) {
	return e.endpoint(e.g.api.EdgeToVertex)
}

func (e *Edge) endpoint(op func(mgp.EdgePtr) (mgp.VertexPtr, mgp.Status)) (*Vertex, error) {
	ptr, st := op(e.ptr)
	if !st.OK() {
		return nil, statusError(ErrReadEdgeEndpoint, st)
	}
	copied, st := e.g.api.VertexCopy(ptr, e.g.memory)
	if !st.OK() {
		return nil, statusError(ErrCopyVertex, st)
	}
	return newOwnedVertex(e.g, copied), nil
}

// Property decodes the property stored under name, with the same three
// independently fallible steps as Vertex.Property but edge-specific kinds.
func (e *Edge) Property(name string) (*Value, error) {
	name, err := cString(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEdgePropertyNameAllocation, err)
	}
	ptr, st := e.g.api.EdgeGetProperty(e.ptr, name, e.g.memory)
	if !st.OK() {
		return nil, statusError(ErrEdgePropertyValueAllocation, st)
	}
	defer e.g.api.ValueDestroy(ptr)
	value, err := newValue(e.g, ptr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEdgePropertyValueCreation, err)
	}
	return value, nil
}

// Properties requests a foreign iterator over the edge's properties.
func (e *Edge) Properties() (*PropertiesIterator, error) {
	ptr, st := e.g.api.EdgeIterProperties(e.ptr, e.g.memory)
	if !st.OK() {
		return nil, statusError(ErrCreateEdgePropertiesIterator, st)
	}
	return newPropertiesIterator(e.g, ptr), nil
}

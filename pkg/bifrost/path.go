package bifrost

import (
	"github.com/orneryd/bifrost/pkg/mgp"
)

// Path is an alternating sequence of vertices and edges. A path of length n
// has n+1 vertices and n edges.
type Path struct {
	g        *Graph
	ptr      mgp.PathPtr
	owned    bool
	released bool
}

// BorrowedPath wraps a host-owned path handle.
func BorrowedPath(g *Graph, ptr mgp.PathPtr) *Path {
	return &Path{g: g, ptr: ptr}
}

func newOwnedPath(g *Graph, ptr mgp.PathPtr) *Path {
	p := &Path{g: g, ptr: ptr, owned: true}
	g.track(p.Release)
	return p
}

// Release destroys an owned path. Safe to call more than once.
func (p *Path) Release() {
	if !p.owned || p.released {
		return
	}
	p.released = true
	p.g.api.PathDestroy(p.ptr)
}

// Size returns the number of edges in the path.
func (p *Path) Size() (uint64, error) {
	size, st := p.g.api.PathSize(p.ptr)
	if !st.OK() {
		return 0, statusError(ErrPathSize, st)
	}
	return size, nil
}

// VertexAt returns the vertex at index as an owned copy.
func (p *Path) VertexAt(index uint64) (*Vertex, error) {
	ptr, st := p.g.api.PathVertexAt(p.ptr, index)
	if st == mgp.StatusOutOfRange {
		return nil, statusError(ErrOutOfBoundIndex, st)
	}
	if !st.OK() {
		return nil, statusError(ErrPathElementLookup, st)
	}
	copied, st := p.g.api.VertexCopy(ptr, p.g.memory)
	if !st.OK() {
		return nil, statusError(ErrCopyVertex, st)
	}
	return newOwnedVertex(p.g, copied), nil
}

// EdgeAt returns the edge at index as an owned copy.
func (p *Path) EdgeAt(index uint64) (*Edge, error) {
	ptr, st := p.g.api.PathEdgeAt(p.ptr, index)
	if st == mgp.StatusOutOfRange {
		return nil, statusError(ErrOutOfBoundIndex, st)
	}
	if !st.OK() {
		return nil, statusError(ErrPathElementLookup, st)
	}
	copied, st := p.g.api.EdgeCopy(ptr, p.g.memory)
	if !st.OK() {
		return nil, statusError(ErrCopyEdge, st)
	}
	return newOwnedEdge(p.g, copied), nil
}

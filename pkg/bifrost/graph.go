// Package bifrost is a safety wrapper over the graph database host's
// procedure ABI (pkg/mgp). It exposes the host's values, graph elements,
// temporal types, and result records as ownership-checked Go objects with a
// closed error taxonomy.
//
// Ownership discipline:
//   - An owned object was allocated through the foreign API by this layer
//     and is released exactly once, on every exit path. Owned objects
//     register with the per-invocation Graph at construction; the dispatch
//     layer runs ReleaseAll before control returns to the host.
//   - A borrowed object wraps a host-owned handle. It has no release path
//     at all and must not outlive the invocation that produced it.
//
// All operations are synchronous, single-threaded calls into the foreign
// API. A failed composed operation propagates its first failure and makes
// no further foreign calls, since foreign state after an error is not
// assumed consistent.
package bifrost

import (
	"strings"

	"github.com/orneryd/bifrost/pkg/mgp"
)

// Graph is the per-invocation procedure context: the seam, the borrowed
// graph/argument/result/memory handles the host passed in, and the registry
// of owned handles acquired during the call.
//
// A Graph must not be retained past the invocation that created it.
type Graph struct {
	api    mgp.API
	graph  mgp.GraphPtr
	args   mgp.ListPtr
	result mgp.ResultPtr
	memory mgp.MemoryPtr

	cleanup []func()
}

// NewGraph wraps the borrowed handles of one procedure invocation. Dispatch
// (Module.Invoke) builds one per call; tests build them directly around a
// scripted seam.
func NewGraph(api mgp.API, graph mgp.GraphPtr, args mgp.ListPtr, result mgp.ResultPtr, memory mgp.MemoryPtr) *Graph {
	return &Graph{api: api, graph: graph, args: args, result: result, memory: memory}
}

// API returns the foreign-call seam of this invocation.
func (g *Graph) API() mgp.API { return g.api }

// Memory returns the host allocator handle for this invocation.
func (g *Graph) Memory() mgp.MemoryPtr { return g.memory }

// track registers the release of one owned handle. Releases run LIFO so
// containers outlive their contents.
func (g *Graph) track(release func()) {
	g.cleanup = append(g.cleanup, release)
}

// ReleaseAll releases every owned handle acquired during the invocation
// that has not already been released explicitly. It is idempotent.
func (g *Graph) ReleaseAll() {
	for i := len(g.cleanup) - 1; i >= 0; i-- {
		g.cleanup[i]()
	}
	g.cleanup = nil
}

// Args returns the borrowed argument list of the invocation.
func (g *Graph) Args() *List {
	return BorrowedList(g, g.args)
}

// VertexByID looks up a vertex by its host id. The returned vertex is owned.
func (g *Graph) VertexByID(id int64) (*Vertex, error) {
	ptr, st := g.api.GraphVertexByID(g.graph, id, g.memory)
	if !st.OK() {
		return nil, statusError(ErrFindVertex, st)
	}
	return newOwnedVertex(g, ptr), nil
}

// Vertices returns a lazy single-pass iterator over every vertex in the
// graph. Creating the foreign iterator is itself fallible.
func (g *Graph) Vertices() (*VerticesIterator, error) {
	ptr, st := g.api.GraphIterVertices(g.graph, g.memory)
	if !st.OK() {
		return nil, statusError(ErrCreateGraphVerticesIterator, st)
	}
	it := &VerticesIterator{g: g, ptr: ptr}
	g.track(it.Release)
	return it, nil
}

// VerticesIterator walks a foreign vertex iterator. Each pull copies the
// current vertex into an owned wrapper.
type VerticesIterator struct {
	g        *Graph
	ptr      mgp.VerticesIterPtr
	started  bool
	done     bool
	released bool
}

// Next returns the next vertex, or ok == false once the sequence is
// exhausted. After exhaustion no further foreign calls are made.
func (it *VerticesIterator) Next() (*Vertex, bool, error) {
	if it.done {
		return nil, false, nil
	}
	var (
		ptr mgp.VertexPtr
		st  mgp.Status
	)
	if !it.started {
		it.started = true
		ptr, st = it.g.api.VerticesIterGet(it.ptr)
	} else {
		ptr, st = it.g.api.VerticesIterNext(it.ptr)
	}
	if !st.OK() {
		it.done = true
		return nil, false, statusError(ErrAdvanceIterator, st)
	}
	if ptr == 0 {
		it.done = true
		return nil, false, nil
	}
	copied, st := it.g.api.VertexCopy(ptr, it.g.memory)
	if !st.OK() {
		it.done = true
		return nil, false, statusError(ErrCopyVertex, st)
	}
	return newOwnedVertex(it.g, copied), true, nil
}

// Release destroys the foreign iterator. Safe to call more than once.
func (it *VerticesIterator) Release() {
	if it.released {
		return
	}
	it.released = true
	it.g.api.VerticesIterDestroy(it.ptr)
}

// cString validates a Go string for the foreign boundary before any foreign
// call is attempted. The host consumes NUL-terminated strings, so an
// interior NUL cannot be represented.
func cString(s string) (string, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return "", ErrStringConversion
	}
	return s, nil
}

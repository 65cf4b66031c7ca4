package bifrost

import (
	"github.com/orneryd/bifrost/pkg/mgp"
)

// List is an ordered sequence of values backed by a foreign handle.
type List struct {
	g        *Graph
	ptr      mgp.ListPtr
	owned    bool
	released bool
}

// MakeEmptyList allocates a new owned list with the given capacity.
func MakeEmptyList(g *Graph, capacity uint64) (*List, error) {
	ptr, st := g.api.ListMakeEmpty(capacity, g.memory)
	if !st.OK() {
		return nil, statusError(ErrCreateList, st)
	}
	return newOwnedList(g, ptr), nil
}

// BorrowedList wraps a host-owned list handle. It has no release path.
func BorrowedList(g *Graph, ptr mgp.ListPtr) *List {
	return &List{g: g, ptr: ptr}
}

func newOwnedList(g *Graph, ptr mgp.ListPtr) *List {
	l := &List{g: g, ptr: ptr, owned: true}
	g.track(l.Release)
	return l
}

// Release destroys an owned list. Safe to call more than once; a no-op for
// borrowed lists.
func (l *List) Release() {
	if !l.owned || l.released {
		return
	}
	l.released = true
	l.g.api.ListDestroy(l.ptr)
}

// Size returns the number of elements.
func (l *List) Size() (uint64, error) {
	size, st := l.g.api.ListSize(l.ptr)
	if !st.OK() {
		return 0, statusError(ErrListSize, st)
	}
	return size, nil
}

// Capacity returns the allocated capacity. Size and Capacity are two
// independently fallible foreign queries and are never merged.
func (l *List) Capacity() (uint64, error) {
	capacity, st := l.g.api.ListCapacity(l.ptr)
	if !st.OK() {
		return 0, statusError(ErrListCapacity, st)
	}
	return capacity, nil
}

// ValueAt decodes the element at index. An out-of-range index is reported
// distinctly from any other lookup failure.
func (l *List) ValueAt(index uint64) (*Value, error) {
	ptr, st := l.g.api.ListAt(l.ptr, index)
	if st == mgp.StatusOutOfRange {
		return nil, statusError(ErrOutOfBoundIndex, st)
	}
	if !st.OK() {
		return nil, statusError(ErrListElementLookup, st)
	}
	return newValue(l.g, ptr)
}

// Append inserts a value within the list's existing capacity. The value is
// encoded as a fresh foreign copy first; foreign objects are never relocated
// across owners.
func (l *List) Append(v *Value) error {
	return l.insert(v, l.g.api.ListAppend, ErrListAppend)
}

// AppendExtend inserts a value, growing the list if needed.
func (l *List) AppendExtend(v *Value) error {
	return l.insert(v, l.g.api.ListAppendExtend, ErrListAppendExtend)
}

func (l *List) insert(v *Value, op func(mgp.ListPtr, mgp.ValuePtr) mgp.Status, kind error) error {
	ptr, err := encodeValue(l.g, v)
	if err != nil {
		return err
	}
	defer l.g.api.ValueDestroy(ptr)
	if st := op(l.ptr, ptr); !st.OK() {
		return statusError(kind, st)
	}
	return nil
}

// Iter returns a lazy single-pass iterator. The size is queried eagerly, so
// construction can fail with the same error class as Size; iterating a list
// reported as size 0 terminates on the first pull with no further foreign
// calls.
func (l *List) Iter() (*ListIterator, error) {
	size, err := l.Size()
	if err != nil {
		return nil, err
	}
	return &ListIterator{list: l, size: size}, nil
}

// ListIterator is a lazy cursor over a List.
type ListIterator struct {
	list *List
	size uint64
	next uint64
}

// Next decodes the next element, or returns ok == false once exhausted.
func (it *ListIterator) Next() (*Value, bool, error) {
	if it.next >= it.size {
		return nil, false, nil
	}
	v, err := it.list.ValueAt(it.next)
	if err != nil {
		return nil, false, err
	}
	it.next++
	return v, true, nil
}

// copyList copies a borrowed foreign list into a new owned wrapper.
func copyList(g *Graph, src mgp.ListPtr) (*List, error) {
	ptr, err := copyListPtr(g, src)
	if err != nil {
		return nil, err
	}
	return newOwnedList(g, ptr), nil
}

// copyListPtr composes a foreign list copy from make-empty and
// append-extend, since the ABI defines no copy entry point. The caller owns
// the returned handle.
func copyListPtr(g *Graph, src mgp.ListPtr) (mgp.ListPtr, error) {
	size, st := g.api.ListSize(src)
	if !st.OK() {
		return 0, statusError(ErrCopyList, st)
	}
	dst, st := g.api.ListMakeEmpty(size, g.memory)
	if !st.OK() {
		return 0, statusError(ErrCopyList, st)
	}
	for i := uint64(0); i < size; i++ {
		elem, st := g.api.ListAt(src, i)
		if !st.OK() {
			g.api.ListDestroy(dst)
			return 0, statusError(ErrCopyList, st)
		}
		if st := g.api.ListAppendExtend(dst, elem); !st.OK() {
			g.api.ListDestroy(dst)
			return 0, statusError(ErrCopyList, st)
		}
	}
	return dst, nil
}

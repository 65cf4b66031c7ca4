package bifrost

import (
	"github.com/orneryd/bifrost/pkg/mgp"
)

// Map is an unordered mapping from string keys to values backed by a
// foreign handle. Keys are unique.
type Map struct {
	g        *Graph
	ptr      mgp.MapPtr
	owned    bool
	released bool
}

// MakeEmptyMap allocates a new owned map.
func MakeEmptyMap(g *Graph) (*Map, error) {
	ptr, st := g.api.MapMakeEmpty(g.memory)
	if !st.OK() {
		return nil, statusError(ErrCreateMap, st)
	}
	return newOwnedMap(g, ptr), nil
}

// BorrowedMap wraps a host-owned map handle. It has no release path.
func BorrowedMap(g *Graph, ptr mgp.MapPtr) *Map {
	return &Map{g: g, ptr: ptr}
}

func newOwnedMap(g *Graph, ptr mgp.MapPtr) *Map {
	m := &Map{g: g, ptr: ptr, owned: true}
	g.track(m.Release)
	return m
}

// Release destroys an owned map. Safe to call more than once.
func (m *Map) Release() {
	if !m.owned || m.released {
		return
	}
	m.released = true
	m.g.api.MapDestroy(m.ptr)
}

// Size returns the number of entries.
func (m *Map) Size() (uint64, error) {
	size, st := m.g.api.MapSize(m.ptr)
	if !st.OK() {
		return 0, statusError(ErrMapSize, st)
	}
	return size, nil
}

// At decodes the value stored under key. A missing key returns (nil, nil).
func (m *Map) At(key string) (*Value, error) {
	key, err := cString(key)
	if err != nil {
		return nil, err
	}
	ptr, st := m.g.api.MapAt(m.ptr, key)
	if !st.OK() {
		return nil, statusError(ErrMapElementLookup, st)
	}
	if ptr == 0 {
		return nil, nil
	}
	return newValue(m.g, ptr)
}

// Insert stores a value under key. The value is encoded as a fresh foreign
// copy first. Inserting a duplicate key fails; keys are unique.
func (m *Map) Insert(key string, v *Value) error {
	key, err := cString(key)
	if err != nil {
		return err
	}
	ptr, err := encodeValue(m.g, v)
	if err != nil {
		return err
	}
	defer m.g.api.ValueDestroy(ptr)
	if st := m.g.api.MapInsert(m.ptr, key, ptr); !st.OK() {
		return statusError(ErrMapInsert, st)
	}
	return nil
}

// Items returns a lazy single-pass iterator over the entries. The size is
// queried eagerly; a map reported as size 0 never creates the foreign items
// iterator, so the first pull makes no foreign calls at all.
func (m *Map) Items() (*MapIterator, error) {
	size, err := m.Size()
	if err != nil {
		return nil, err
	}
	it := &MapIterator{m: m}
	if size == 0 {
		it.done = true
		return it, nil
	}
	ptr, st := m.g.api.MapIterItems(m.ptr, m.g.memory)
	if !st.OK() {
		return nil, statusError(ErrCreateMapItemsIterator, st)
	}
	it.ptr = ptr
	it.foreign = true
	m.g.track(it.Release)
	return it, nil
}

// MapItem is one decoded map entry.
type MapItem struct {
	Key   string
	Value *Value
}

// MapIterator walks a foreign map items iterator.
type MapIterator struct {
	m        *Map
	ptr      mgp.MapItemsIterPtr
	foreign  bool
	started  bool
	done     bool
	released bool
}

// Next decodes the next entry, or returns ok == false once exhausted.
func (it *MapIterator) Next() (*MapItem, bool, error) {
	if it.done {
		return nil, false, nil
	}
	var (
		item mgp.MapItemPtr
		st   mgp.Status
	)
	if !it.started {
		it.started = true
		item, st = it.m.g.api.MapItemsIterGet(it.ptr)
	} else {
		item, st = it.m.g.api.MapItemsIterNext(it.ptr)
	}
	if !st.OK() {
		it.done = true
		return nil, false, statusError(ErrAdvanceIterator, st)
	}
	if item == 0 {
		it.done = true
		return nil, false, nil
	}
	key, st := it.m.g.api.MapItemKey(item)
	if !st.OK() {
		it.done = true
		return nil, false, statusError(ErrReadMapItem, st)
	}
	vptr, st := it.m.g.api.MapItemValue(item)
	if !st.OK() {
		it.done = true
		return nil, false, statusError(ErrReadMapItem, st)
	}
	v, err := newValue(it.m.g, vptr)
	if err != nil {
		it.done = true
		return nil, false, err
	}
	return &MapItem{Key: key, Value: v}, true, nil
}

// Release destroys the foreign iterator, if one was created.
func (it *MapIterator) Release() {
	if !it.foreign || it.released {
		return
	}
	it.released = true
	it.m.g.api.MapItemsIterDestroy(it.ptr)
}

// copyMap copies a borrowed foreign map into a new owned wrapper.
func copyMap(g *Graph, src mgp.MapPtr) (*Map, error) {
	ptr, err := copyMapPtr(g, src)
	if err != nil {
		return nil, err
	}
	return newOwnedMap(g, ptr), nil
}

// copyMapPtr composes a foreign map copy from make-empty, an items
// iterator, and per-entry inserts. The caller owns the returned handle.
func copyMapPtr(g *Graph, src mgp.MapPtr) (mgp.MapPtr, error) {
	dst, st := g.api.MapMakeEmpty(g.memory)
	if !st.OK() {
		return 0, statusError(ErrCopyMap, st)
	}
	size, st := g.api.MapSize(src)
	if !st.OK() {
		g.api.MapDestroy(dst)
		return 0, statusError(ErrCopyMap, st)
	}
	if size == 0 {
		return dst, nil
	}
	iter, st := g.api.MapIterItems(src, g.memory)
	if !st.OK() {
		g.api.MapDestroy(dst)
		return 0, statusError(ErrCopyMap, st)
	}
	defer g.api.MapItemsIterDestroy(iter)

	item, st := g.api.MapItemsIterGet(iter)
	for {
		if !st.OK() {
			g.api.MapDestroy(dst)
			return 0, statusError(ErrCopyMap, st)
		}
		if item == 0 {
			return dst, nil
		}
		key, kst := g.api.MapItemKey(item)
		if !kst.OK() {
			g.api.MapDestroy(dst)
			return 0, statusError(ErrCopyMap, kst)
		}
		vptr, vst := g.api.MapItemValue(item)
		if !vst.OK() {
			g.api.MapDestroy(dst)
			return 0, statusError(ErrCopyMap, vst)
		}
		if ist := g.api.MapInsert(dst, key, vptr); !ist.OK() {
			g.api.MapDestroy(dst)
			return 0, statusError(ErrCopyMap, ist)
		}
		item, st = g.api.MapItemsIterNext(iter)
	}
}

package host

import (
	"github.com/orneryd/bifrost/pkg/mgp"
)

// mgp.API implementation. Ownership mirrors the real host: containers own
// their elements, values own the container they were made from, borrowed
// handles returned by lookups stay owned by their container. Destroy entry
// points drop the whole owned subtree from the handle table.

var _ mgp.API = (*Sim)(nil)

// deepCopy duplicates a value subtree into fresh handles. Insertion entry
// points copy, matching the host's copy-on-insert semantics.
func (s *Sim) deepCopy(h uintptr) (uintptr, bool) {
	v, ok := get[*simValue](s, h)
	if !ok {
		return 0, false
	}
	cp := *v
	switch v.kind {
	case mgp.ValueTypeList:
		l, ok := get[*simList](s, v.h)
		if !ok {
			return 0, false
		}
		nl := &simList{capacity: l.capacity}
		for _, e := range l.elems {
			ce, ok := s.deepCopy(e)
			if !ok {
				return 0, false
			}
			nl.elems = append(nl.elems, ce)
		}
		cp.h = s.put(nl)
	case mgp.ValueTypeMap:
		m, ok := get[*simMap](s, v.h)
		if !ok {
			return 0, false
		}
		nm := &simMap{vals: make(map[string]uintptr, len(m.keys))}
		for _, key := range m.keys {
			cv, ok := s.deepCopy(m.vals[key])
			if !ok {
				return 0, false
			}
			nm.keys = append(nm.keys, key)
			nm.vals[key] = cv
		}
		cp.h = s.put(nm)
	case mgp.ValueTypeVertex:
		vx, ok := get[*simVertex](s, v.h)
		if !ok {
			return 0, false
		}
		cp.h = s.put(&simVertex{id: vx.id})
	case mgp.ValueTypeEdge:
		e, ok := get[*simEdge](s, v.h)
		if !ok {
			return 0, false
		}
		cp.h = s.put(&simEdge{id: e.id})
	case mgp.ValueTypePath:
		p, ok := get[*simPath](s, v.h)
		if !ok {
			return 0, false
		}
		cp.h = s.put(&simPath{nodes: append([]int64(nil), p.nodes...), edges: append([]int64(nil), p.edges...)})
	case mgp.ValueTypeDate:
		d, ok := get[*simDate](s, v.h)
		if !ok {
			return 0, false
		}
		dd := *d
		cp.h = s.put(&dd)
	case mgp.ValueTypeLocalTime:
		lt, ok := get[*simLocalTime](s, v.h)
		if !ok {
			return 0, false
		}
		tt := *lt
		cp.h = s.put(&tt)
	case mgp.ValueTypeLocalDateTime:
		dt, ok := get[*simLocalDateTime](s, v.h)
		if !ok {
			return 0, false
		}
		dd := *dt
		cp.h = s.put(&dd)
	case mgp.ValueTypeDuration:
		d, ok := get[*simDuration](s, v.h)
		if !ok {
			return 0, false
		}
		dd := *d
		cp.h = s.put(&dd)
	}
	return s.put(&cp), true
}

// deepDrop removes a value subtree from the handle table.
func (s *Sim) deepDrop(h uintptr) {
	v, ok := get[*simValue](s, h)
	if !ok {
		s.drop(h)
		return
	}
	switch v.kind {
	case mgp.ValueTypeList:
		s.dropList(v.h)
	case mgp.ValueTypeMap:
		s.dropMap(v.h)
	case mgp.ValueTypeEdge:
		s.dropEdge(v.h)
	case mgp.ValueTypePath:
		s.dropPath(v.h)
	default:
		if v.h != 0 {
			s.drop(v.h)
		}
	}
	s.drop(h)
}

func (s *Sim) dropList(h uintptr) {
	if l, ok := get[*simList](s, h); ok {
		for _, e := range l.elems {
			s.deepDrop(e)
		}
	}
	s.drop(h)
}

func (s *Sim) dropMap(h uintptr) {
	if m, ok := get[*simMap](s, h); ok {
		for _, key := range m.keys {
			s.deepDrop(m.vals[key])
		}
	}
	s.drop(h)
}

// dropEdge also drops the endpoint handles the edge lent out.
func (s *Sim) dropEdge(h uintptr) {
	if se, ok := get[*simEdge](s, h); ok {
		if se.fromH != 0 {
			s.drop(se.fromH)
		}
		if se.toH != 0 {
			s.drop(se.toH)
		}
	}
	s.drop(h)
}

func (s *Sim) dropPath(h uintptr) {
	if sp, ok := get[*simPath](s, h); ok {
		for _, vh := range sp.nodeHs {
			s.drop(vh)
		}
		for _, eh := range sp.edgeHs {
			s.dropEdge(eh)
		}
	}
	s.drop(h)
}

// Values.

func (s *Sim) value(v mgp.ValuePtr) (*simValue, bool) {
	return get[*simValue](s, uintptr(v))
}

func (s *Sim) ValueType(v mgp.ValuePtr) (mgp.ValueType, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv, ok := s.value(v)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return sv.kind, mgp.StatusNoError
}

func (s *Sim) ValueGetBool(v mgp.ValuePtr) (bool, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv, ok := s.value(v)
	if !ok || sv.kind != mgp.ValueTypeBool {
		return false, mgp.StatusInvalidArgument
	}
	return sv.b, mgp.StatusNoError
}

func (s *Sim) ValueGetInt(v mgp.ValuePtr) (int64, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv, ok := s.value(v)
	if !ok || sv.kind != mgp.ValueTypeInt {
		return 0, mgp.StatusInvalidArgument
	}
	return sv.i, mgp.StatusNoError
}

func (s *Sim) ValueGetDouble(v mgp.ValuePtr) (float64, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv, ok := s.value(v)
	if !ok || sv.kind != mgp.ValueTypeDouble {
		return 0, mgp.StatusInvalidArgument
	}
	return sv.f, mgp.StatusNoError
}

func (s *Sim) ValueGetString(v mgp.ValuePtr) (string, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv, ok := s.value(v)
	if !ok || sv.kind != mgp.ValueTypeString {
		return "", mgp.StatusInvalidArgument
	}
	return sv.s, mgp.StatusNoError
}

func (s *Sim) valuePayload(v mgp.ValuePtr, kind mgp.ValueType) (uintptr, mgp.Status) {
	sv, ok := s.value(v)
	if !ok || sv.kind != kind {
		return 0, mgp.StatusInvalidArgument
	}
	return sv.h, mgp.StatusNoError
}

func (s *Sim) ValueGetList(v mgp.ValuePtr) (mgp.ListPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, st := s.valuePayload(v, mgp.ValueTypeList)
	return mgp.ListPtr(h), st
}

func (s *Sim) ValueGetMap(v mgp.ValuePtr) (mgp.MapPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, st := s.valuePayload(v, mgp.ValueTypeMap)
	return mgp.MapPtr(h), st
}

func (s *Sim) ValueGetVertex(v mgp.ValuePtr) (mgp.VertexPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, st := s.valuePayload(v, mgp.ValueTypeVertex)
	return mgp.VertexPtr(h), st
}

func (s *Sim) ValueGetEdge(v mgp.ValuePtr) (mgp.EdgePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, st := s.valuePayload(v, mgp.ValueTypeEdge)
	return mgp.EdgePtr(h), st
}

func (s *Sim) ValueGetPath(v mgp.ValuePtr) (mgp.PathPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, st := s.valuePayload(v, mgp.ValueTypePath)
	return mgp.PathPtr(h), st
}

func (s *Sim) ValueGetDate(v mgp.ValuePtr) (mgp.DatePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, st := s.valuePayload(v, mgp.ValueTypeDate)
	return mgp.DatePtr(h), st
}

func (s *Sim) ValueGetLocalTime(v mgp.ValuePtr) (mgp.LocalTimePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, st := s.valuePayload(v, mgp.ValueTypeLocalTime)
	return mgp.LocalTimePtr(h), st
}

func (s *Sim) ValueGetLocalDateTime(v mgp.ValuePtr) (mgp.LocalDateTimePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, st := s.valuePayload(v, mgp.ValueTypeLocalDateTime)
	return mgp.LocalDateTimePtr(h), st
}

func (s *Sim) ValueGetDuration(v mgp.ValuePtr) (mgp.DurationPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, st := s.valuePayload(v, mgp.ValueTypeDuration)
	return mgp.DurationPtr(h), st
}

func (s *Sim) makeScalar(v simValue) (mgp.ValuePtr, mgp.Status) {
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	return mgp.ValuePtr(s.put(&v)), mgp.StatusNoError
}

func (s *Sim) ValueMakeNull(mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeScalar(simValue{kind: mgp.ValueTypeNull})
}

func (s *Sim) ValueMakeBool(b bool, mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeScalar(simValue{kind: mgp.ValueTypeBool, b: b})
}

func (s *Sim) ValueMakeInt(i int64, mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeScalar(simValue{kind: mgp.ValueTypeInt, i: i})
}

func (s *Sim) ValueMakeDouble(f float64, mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeScalar(simValue{kind: mgp.ValueTypeDouble, f: f})
}

func (s *Sim) ValueMakeString(str string, mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeScalar(simValue{kind: mgp.ValueTypeString, s: str})
}

// makeOwning wraps an existing container handle; the value takes ownership.
func (s *Sim) makeOwning(kind mgp.ValueType, h uintptr) (mgp.ValuePtr, mgp.Status) {
	if _, ok := s.handles[h]; !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	return mgp.ValuePtr(s.put(&simValue{kind: kind, h: h})), mgp.StatusNoError
}

func (s *Sim) ValueMakeList(l mgp.ListPtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeOwning(mgp.ValueTypeList, uintptr(l))
}

func (s *Sim) ValueMakeMap(m mgp.MapPtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeOwning(mgp.ValueTypeMap, uintptr(m))
}

func (s *Sim) ValueMakeVertex(v mgp.VertexPtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeOwning(mgp.ValueTypeVertex, uintptr(v))
}

func (s *Sim) ValueMakeEdge(e mgp.EdgePtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeOwning(mgp.ValueTypeEdge, uintptr(e))
}

func (s *Sim) ValueMakePath(p mgp.PathPtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeOwning(mgp.ValueTypePath, uintptr(p))
}

func (s *Sim) ValueMakeDate(d mgp.DatePtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeOwning(mgp.ValueTypeDate, uintptr(d))
}

func (s *Sim) ValueMakeLocalTime(t mgp.LocalTimePtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeOwning(mgp.ValueTypeLocalTime, uintptr(t))
}

func (s *Sim) ValueMakeLocalDateTime(dt mgp.LocalDateTimePtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeOwning(mgp.ValueTypeLocalDateTime, uintptr(dt))
}

func (s *Sim) ValueMakeDuration(d mgp.DurationPtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.makeOwning(mgp.ValueTypeDuration, uintptr(d))
}

func (s *Sim) ValueDestroy(v mgp.ValuePtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deepDrop(uintptr(v))
}

// Lists.

func (s *Sim) ListMakeEmpty(capacity uint64, mem mgp.MemoryPtr) (mgp.ListPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	return mgp.ListPtr(s.put(&simList{capacity: capacity})), mgp.StatusNoError
}

func (s *Sim) ListDestroy(l mgp.ListPtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropList(uintptr(l))
}

func (s *Sim) list(l mgp.ListPtr) (*simList, bool) {
	return get[*simList](s, uintptr(l))
}

func (s *Sim) ListSize(l mgp.ListPtr) (uint64, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.list(l)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return uint64(len(sl.elems)), mgp.StatusNoError
}

func (s *Sim) ListCapacity(l mgp.ListPtr) (uint64, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.list(l)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return sl.capacity, mgp.StatusNoError
}

func (s *Sim) ListAt(l mgp.ListPtr, index uint64) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.list(l)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if index >= uint64(len(sl.elems)) {
		return 0, mgp.StatusOutOfRange
	}
	return mgp.ValuePtr(sl.elems[index]), mgp.StatusNoError
}

func (s *Sim) listInsert(l mgp.ListPtr, v mgp.ValuePtr, extend bool) mgp.Status {
	sl, ok := s.list(l)
	if !ok {
		return mgp.StatusInvalidArgument
	}
	if !extend && uint64(len(sl.elems)) >= sl.capacity {
		return mgp.StatusInsufficientBuffer
	}
	cp, ok := s.deepCopy(uintptr(v))
	if !ok {
		return mgp.StatusInvalidArgument
	}
	sl.elems = append(sl.elems, cp)
	if uint64(len(sl.elems)) > sl.capacity {
		sl.capacity = uint64(len(sl.elems))
	}
	return mgp.StatusNoError
}

func (s *Sim) ListAppend(l mgp.ListPtr, v mgp.ValuePtr) mgp.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listInsert(l, v, false)
}

func (s *Sim) ListAppendExtend(l mgp.ListPtr, v mgp.ValuePtr) mgp.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listInsert(l, v, true)
}

// Maps.

func (s *Sim) MapMakeEmpty(mem mgp.MemoryPtr) (mgp.MapPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	return mgp.MapPtr(s.put(&simMap{vals: make(map[string]uintptr)})), mgp.StatusNoError
}

func (s *Sim) MapDestroy(m mgp.MapPtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropMap(uintptr(m))
}

func (s *Sim) simMapAt(m mgp.MapPtr) (*simMap, bool) {
	return get[*simMap](s, uintptr(m))
}

func (s *Sim) MapSize(m mgp.MapPtr) (uint64, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sm, ok := s.simMapAt(m)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return uint64(len(sm.keys)), mgp.StatusNoError
}

func (s *Sim) MapAt(m mgp.MapPtr, key string) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sm, ok := s.simMapAt(m)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	h, ok := sm.vals[key]
	if !ok {
		return 0, mgp.StatusNoError
	}
	return mgp.ValuePtr(h), mgp.StatusNoError
}

func (s *Sim) MapInsert(m mgp.MapPtr, key string, v mgp.ValuePtr) mgp.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	sm, ok := s.simMapAt(m)
	if !ok {
		return mgp.StatusInvalidArgument
	}
	if _, dup := sm.vals[key]; dup {
		return mgp.StatusKeyAlreadyExists
	}
	cp, ok := s.deepCopy(uintptr(v))
	if !ok {
		return mgp.StatusInvalidArgument
	}
	sm.keys = append(sm.keys, key)
	sm.vals[key] = cp
	return mgp.StatusNoError
}

func (s *Sim) MapIterItems(m mgp.MapPtr, mem mgp.MemoryPtr) (mgp.MapItemsIterPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sm, ok := s.simMapAt(m)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	it := &simItemsIter{}
	for _, key := range sm.keys {
		it.items = append(it.items, s.put(&simMapItem{key: key, val: sm.vals[key]}))
	}
	return mgp.MapItemsIterPtr(s.put(it)), mgp.StatusNoError
}

func (s *Sim) itemsIterAt(it mgp.MapItemsIterPtr) (*simItemsIter, bool) {
	return get[*simItemsIter](s, uintptr(it))
}

func (s *Sim) MapItemsIterGet(it mgp.MapItemsIterPtr) (mgp.MapItemPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	si, ok := s.itemsIterAt(it)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if si.pos >= len(si.items) {
		return 0, mgp.StatusNoError
	}
	return mgp.MapItemPtr(si.items[si.pos]), mgp.StatusNoError
}

func (s *Sim) MapItemsIterNext(it mgp.MapItemsIterPtr) (mgp.MapItemPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	si, ok := s.itemsIterAt(it)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	si.pos++
	if si.pos >= len(si.items) {
		return 0, mgp.StatusNoError
	}
	return mgp.MapItemPtr(si.items[si.pos]), mgp.StatusNoError
}

func (s *Sim) MapItemsIterDestroy(it mgp.MapItemsIterPtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if si, ok := s.itemsIterAt(it); ok {
		for _, item := range si.items {
			s.drop(item)
		}
	}
	s.drop(uintptr(it))
}

func (s *Sim) MapItemKey(item mgp.MapItemPtr) (string, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	si, ok := get[*simMapItem](s, uintptr(item))
	if !ok {
		return "", mgp.StatusInvalidArgument
	}
	return si.key, mgp.StatusNoError
}

func (s *Sim) MapItemValue(item mgp.MapItemPtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	si, ok := get[*simMapItem](s, uintptr(item))
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return mgp.ValuePtr(si.val), mgp.StatusNoError
}

// Vertices.

func (s *Sim) vertexNode(v mgp.VertexPtr) (*Node, bool) {
	sv, ok := get[*simVertex](s, uintptr(v))
	if !ok {
		return nil, false
	}
	n := s.graph.Node(sv.id)
	return n, n != nil
}

func (s *Sim) VertexGetID(v mgp.VertexPtr) (int64, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.vertexNode(v)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return n.ID, mgp.StatusNoError
}

func (s *Sim) VertexLabelsCount(v mgp.VertexPtr) (uint64, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.vertexNode(v)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return uint64(len(n.Labels)), mgp.StatusNoError
}

func (s *Sim) VertexLabelAt(v mgp.VertexPtr, index uint64) (string, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.vertexNode(v)
	if !ok {
		return "", mgp.StatusInvalidArgument
	}
	if index >= uint64(len(n.Labels)) {
		return "", mgp.StatusOutOfRange
	}
	return n.Labels[index], mgp.StatusNoError
}

func (s *Sim) VertexGetProperty(v mgp.VertexPtr, name string, mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.vertexNode(v)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	prop, ok := n.Props[name]
	if !ok {
		return mgp.ValuePtr(s.put(&simValue{kind: mgp.ValueTypeNull})), mgp.StatusNoError
	}
	h, err := s.fromNative(prop)
	if err != nil {
		return 0, mgp.StatusInvalidArgument
	}
	return mgp.ValuePtr(h), mgp.StatusNoError
}

func (s *Sim) propsIter(props map[string]any) (mgp.PropertiesIterPtr, mgp.Status) {
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	it := &simPropsIter{}
	for _, name := range sortedPropNames(props) {
		h, err := s.fromNative(props[name])
		if err != nil {
			return 0, mgp.StatusInvalidArgument
		}
		it.entries = append(it.entries, mgp.Property{Name: name, Value: mgp.ValuePtr(h)})
	}
	return mgp.PropertiesIterPtr(s.put(it)), mgp.StatusNoError
}

func (s *Sim) VertexIterProperties(v mgp.VertexPtr, mem mgp.MemoryPtr) (mgp.PropertiesIterPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.vertexNode(v)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return s.propsIter(n.Props)
}

func (s *Sim) edgesIter(ids []int64) (mgp.EdgesIterPtr, mgp.Status) {
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	it := &simEdgesIter{}
	for _, id := range ids {
		it.handles = append(it.handles, s.put(&simEdge{id: id}))
	}
	return mgp.EdgesIterPtr(s.put(it)), mgp.StatusNoError
}

func (s *Sim) VertexIterInEdges(v mgp.VertexPtr, mem mgp.MemoryPtr) (mgp.EdgesIterPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.vertexNode(v)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return s.edgesIter(s.graph.InEdges(n.ID))
}

func (s *Sim) VertexIterOutEdges(v mgp.VertexPtr, mem mgp.MemoryPtr) (mgp.EdgesIterPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.vertexNode(v)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return s.edgesIter(s.graph.OutEdges(n.ID))
}

func (s *Sim) VertexCopy(v mgp.VertexPtr, mem mgp.MemoryPtr) (mgp.VertexPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.vertexNode(v)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	return mgp.VertexPtr(s.put(&simVertex{id: n.ID})), mgp.StatusNoError
}

func (s *Sim) VertexDestroy(v mgp.VertexPtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop(uintptr(v))
}

// Edges.

func (s *Sim) edgeAt(e mgp.EdgePtr) (*Edge, bool) {
	se, ok := get[*simEdge](s, uintptr(e))
	if !ok {
		return nil, false
	}
	edge := s.graph.Edge(se.id)
	return edge, edge != nil
}

func (s *Sim) EdgeGetType(e mgp.EdgePtr) (string, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	edge, ok := s.edgeAt(e)
	if !ok {
		return "", mgp.StatusInvalidArgument
	}
	return edge.Type, mgp.StatusNoError
}

// Endpoint handles stay owned by the edge and are dropped with it, so
// repeated lookups return the same borrowed handle.
func (s *Sim) edgeEndpoint(e mgp.EdgePtr, from bool) (mgp.VertexPtr, mgp.Status) {
	se, ok := get[*simEdge](s, uintptr(e))
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	edge := s.graph.Edge(se.id)
	if edge == nil {
		return 0, mgp.StatusInvalidArgument
	}
	if from {
		if se.fromH == 0 {
			se.fromH = s.put(&simVertex{id: edge.From})
		}
		return mgp.VertexPtr(se.fromH), mgp.StatusNoError
	}
	if se.toH == 0 {
		se.toH = s.put(&simVertex{id: edge.To})
	}
	return mgp.VertexPtr(se.toH), mgp.StatusNoError
}

func (s *Sim) EdgeFromVertex(e mgp.EdgePtr) (mgp.VertexPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edgeEndpoint(e, true)
}

func (s *Sim) EdgeToVertex(e mgp.EdgePtr) (mgp.VertexPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edgeEndpoint(e, false)
}

func (s *Sim) EdgeGetProperty(e mgp.EdgePtr, name string, mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	edge, ok := s.edgeAt(e)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	prop, ok := edge.Props[name]
	if !ok {
		return mgp.ValuePtr(s.put(&simValue{kind: mgp.ValueTypeNull})), mgp.StatusNoError
	}
	h, err := s.fromNative(prop)
	if err != nil {
		return 0, mgp.StatusInvalidArgument
	}
	return mgp.ValuePtr(h), mgp.StatusNoError
}

func (s *Sim) EdgeIterProperties(e mgp.EdgePtr, mem mgp.MemoryPtr) (mgp.PropertiesIterPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	edge, ok := s.edgeAt(e)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return s.propsIter(edge.Props)
}

func (s *Sim) EdgeCopy(e mgp.EdgePtr, mem mgp.MemoryPtr) (mgp.EdgePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	edge, ok := s.edgeAt(e)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	return mgp.EdgePtr(s.put(&simEdge{id: edge.ID})), mgp.StatusNoError
}

func (s *Sim) EdgeDestroy(e mgp.EdgePtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropEdge(uintptr(e))
}

// Paths.

func (s *Sim) pathAt(p mgp.PathPtr) (*simPath, bool) {
	return get[*simPath](s, uintptr(p))
}

func (s *Sim) PathSize(p mgp.PathPtr) (uint64, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.pathAt(p)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return uint64(len(sp.edges)), mgp.StatusNoError
}

func (s *Sim) PathVertexAt(p mgp.PathPtr, index uint64) (mgp.VertexPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.pathAt(p)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if index >= uint64(len(sp.nodes)) {
		return 0, mgp.StatusOutOfRange
	}
	if sp.nodeHs == nil {
		sp.nodeHs = make(map[uint64]uintptr)
	}
	h, ok := sp.nodeHs[index]
	if !ok {
		h = s.put(&simVertex{id: sp.nodes[index]})
		sp.nodeHs[index] = h
	}
	return mgp.VertexPtr(h), mgp.StatusNoError
}

func (s *Sim) PathEdgeAt(p mgp.PathPtr, index uint64) (mgp.EdgePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.pathAt(p)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if index >= uint64(len(sp.edges)) {
		return 0, mgp.StatusOutOfRange
	}
	if sp.edgeHs == nil {
		sp.edgeHs = make(map[uint64]uintptr)
	}
	h, ok := sp.edgeHs[index]
	if !ok {
		h = s.put(&simEdge{id: sp.edges[index]})
		sp.edgeHs[index] = h
	}
	return mgp.EdgePtr(h), mgp.StatusNoError
}

func (s *Sim) PathCopy(p mgp.PathPtr, mem mgp.MemoryPtr) (mgp.PathPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.pathAt(p)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	cp := &simPath{
		nodes: append([]int64(nil), sp.nodes...),
		edges: append([]int64(nil), sp.edges...),
	}
	return mgp.PathPtr(s.put(cp)), mgp.StatusNoError
}

func (s *Sim) PathDestroy(p mgp.PathPtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropPath(uintptr(p))
}

// Foreign iterators.

func (s *Sim) PropertiesIterGet(it mgp.PropertiesIterPtr) (*mgp.Property, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pi, ok := get[*simPropsIter](s, uintptr(it))
	if !ok {
		return nil, mgp.StatusInvalidArgument
	}
	if pi.pos >= len(pi.entries) {
		return nil, mgp.StatusNoError
	}
	entry := pi.entries[pi.pos]
	return &entry, mgp.StatusNoError
}

func (s *Sim) PropertiesIterNext(it mgp.PropertiesIterPtr) (*mgp.Property, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pi, ok := get[*simPropsIter](s, uintptr(it))
	if !ok {
		return nil, mgp.StatusInvalidArgument
	}
	pi.pos++
	if pi.pos >= len(pi.entries) {
		return nil, mgp.StatusNoError
	}
	entry := pi.entries[pi.pos]
	return &entry, mgp.StatusNoError
}

func (s *Sim) PropertiesIterDestroy(it mgp.PropertiesIterPtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pi, ok := get[*simPropsIter](s, uintptr(it)); ok {
		for _, entry := range pi.entries {
			s.deepDrop(uintptr(entry.Value))
		}
	}
	s.drop(uintptr(it))
}

func (s *Sim) EdgesIterGet(it mgp.EdgesIterPtr) (mgp.EdgePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ei, ok := get[*simEdgesIter](s, uintptr(it))
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if ei.pos >= len(ei.handles) {
		return 0, mgp.StatusNoError
	}
	return mgp.EdgePtr(ei.handles[ei.pos]), mgp.StatusNoError
}

func (s *Sim) EdgesIterNext(it mgp.EdgesIterPtr) (mgp.EdgePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ei, ok := get[*simEdgesIter](s, uintptr(it))
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	ei.pos++
	if ei.pos >= len(ei.handles) {
		return 0, mgp.StatusNoError
	}
	return mgp.EdgePtr(ei.handles[ei.pos]), mgp.StatusNoError
}

func (s *Sim) EdgesIterDestroy(it mgp.EdgesIterPtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ei, ok := get[*simEdgesIter](s, uintptr(it)); ok {
		for _, h := range ei.handles {
			s.dropEdge(h)
		}
	}
	s.drop(uintptr(it))
}

func (s *Sim) VerticesIterGet(it mgp.VerticesIterPtr) (mgp.VertexPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vi, ok := get[*simVerticesIter](s, uintptr(it))
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if vi.pos >= len(vi.handles) {
		return 0, mgp.StatusNoError
	}
	return mgp.VertexPtr(vi.handles[vi.pos]), mgp.StatusNoError
}

func (s *Sim) VerticesIterNext(it mgp.VerticesIterPtr) (mgp.VertexPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vi, ok := get[*simVerticesIter](s, uintptr(it))
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	vi.pos++
	if vi.pos >= len(vi.handles) {
		return 0, mgp.StatusNoError
	}
	return mgp.VertexPtr(vi.handles[vi.pos]), mgp.StatusNoError
}

func (s *Sim) VerticesIterDestroy(it mgp.VerticesIterPtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if vi, ok := get[*simVerticesIter](s, uintptr(it)); ok {
		for _, h := range vi.handles {
			s.drop(h)
		}
	}
	s.drop(uintptr(it))
}

// Graph access.

func (s *Sim) GraphVertexByID(g mgp.GraphPtr, id int64, mem mgp.MemoryPtr) (mgp.VertexPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := get[*simGraph](s, uintptr(g)); !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if s.graph.Node(id) == nil {
		return 0, mgp.StatusInvalidArgument
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	return mgp.VertexPtr(s.put(&simVertex{id: id})), mgp.StatusNoError
}

func (s *Sim) GraphIterVertices(g mgp.GraphPtr, mem mgp.MemoryPtr) (mgp.VerticesIterPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := get[*simGraph](s, uintptr(g)); !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	it := &simVerticesIter{}
	for _, id := range s.graph.NodeIDs() {
		it.handles = append(it.handles, s.put(&simVertex{id: id}))
	}
	return mgp.VerticesIterPtr(s.put(it)), mgp.StatusNoError
}

// Temporal types.

func (s *Sim) DateFromParameters(p *mgp.DateParameters, mem mgp.MemoryPtr) (mgp.DatePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Year < 0 || p.Year > 9999 || p.Month < 1 || p.Month > 12 || p.Day < 1 || p.Day > 31 {
		return 0, mgp.StatusInvalidArgument
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	return mgp.DatePtr(s.put(&simDate{year: p.Year, month: p.Month, day: p.Day})), mgp.StatusNoError
}

func (s *Sim) dateAt(d mgp.DatePtr) (*simDate, bool) {
	return get[*simDate](s, uintptr(d))
}

func (s *Sim) DateGetYear(d mgp.DatePtr) (int32, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.dateAt(d)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return sd.year, mgp.StatusNoError
}

func (s *Sim) DateGetMonth(d mgp.DatePtr) (int32, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.dateAt(d)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return sd.month, mgp.StatusNoError
}

func (s *Sim) DateGetDay(d mgp.DatePtr) (int32, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.dateAt(d)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return sd.day, mgp.StatusNoError
}

func (s *Sim) DateDestroy(d mgp.DatePtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop(uintptr(d))
}

func (s *Sim) LocalTimeFromParameters(p *mgp.LocalTimeParameters, mem mgp.MemoryPtr) (mgp.LocalTimePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Hour < 0 || p.Hour > 23 || p.Minute < 0 || p.Minute > 59 || p.Second < 0 || p.Second > 59 ||
		p.Millisecond < 0 || p.Millisecond > 999 || p.Microsecond < 0 || p.Microsecond > 999 {
		return 0, mgp.StatusInvalidArgument
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	lt := &simLocalTime{hour: p.Hour, minute: p.Minute, second: p.Second, ms: p.Millisecond, us: p.Microsecond}
	return mgp.LocalTimePtr(s.put(lt)), mgp.StatusNoError
}

func (s *Sim) localTimeAt(t mgp.LocalTimePtr) (*simLocalTime, bool) {
	return get[*simLocalTime](s, uintptr(t))
}

func (s *Sim) LocalTimeGetHour(t mgp.LocalTimePtr) (int32, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lt, ok := s.localTimeAt(t)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return lt.hour, mgp.StatusNoError
}

func (s *Sim) LocalTimeGetMinute(t mgp.LocalTimePtr) (int32, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lt, ok := s.localTimeAt(t)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return lt.minute, mgp.StatusNoError
}

func (s *Sim) LocalTimeGetSecond(t mgp.LocalTimePtr) (int32, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lt, ok := s.localTimeAt(t)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return lt.second, mgp.StatusNoError
}

func (s *Sim) LocalTimeGetMillisecond(t mgp.LocalTimePtr) (int32, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lt, ok := s.localTimeAt(t)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return lt.ms, mgp.StatusNoError
}

func (s *Sim) LocalTimeGetMicrosecond(t mgp.LocalTimePtr) (int32, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lt, ok := s.localTimeAt(t)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return lt.us, mgp.StatusNoError
}

func (s *Sim) LocalTimeDestroy(t mgp.LocalTimePtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop(uintptr(t))
}

func (s *Sim) LocalDateTimeFromParameters(p *mgp.LocalDateTimeParameters, mem mgp.MemoryPtr) (mgp.LocalDateTimePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := p.Date
	lt := p.LocalTime
	if d.Year < 0 || d.Year > 9999 || d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return 0, mgp.StatusInvalidArgument
	}
	if lt.Hour < 0 || lt.Hour > 23 || lt.Minute < 0 || lt.Minute > 59 || lt.Second < 0 || lt.Second > 59 ||
		lt.Millisecond < 0 || lt.Millisecond > 999 || lt.Microsecond < 0 || lt.Microsecond > 999 {
		return 0, mgp.StatusInvalidArgument
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	dt := &simLocalDateTime{
		date: simDate{year: d.Year, month: d.Month, day: d.Day},
		lt:   simLocalTime{hour: lt.Hour, minute: lt.Minute, second: lt.Second, ms: lt.Millisecond, us: lt.Microsecond},
	}
	return mgp.LocalDateTimePtr(s.put(dt)), mgp.StatusNoError
}

func (s *Sim) localDateTimeAt(dt mgp.LocalDateTimePtr) (*simLocalDateTime, bool) {
	return get[*simLocalDateTime](s, uintptr(dt))
}

func (s *Sim) ldtField(dt mgp.LocalDateTimePtr, pick func(*simLocalDateTime) int32) (int32, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sdt, ok := s.localDateTimeAt(dt)
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return pick(sdt), mgp.StatusNoError
}

func (s *Sim) LocalDateTimeGetYear(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	return s.ldtField(dt, func(d *simLocalDateTime) int32 { return d.date.year })
}

func (s *Sim) LocalDateTimeGetMonth(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	return s.ldtField(dt, func(d *simLocalDateTime) int32 { return d.date.month })
}

func (s *Sim) LocalDateTimeGetDay(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	return s.ldtField(dt, func(d *simLocalDateTime) int32 { return d.date.day })
}

func (s *Sim) LocalDateTimeGetHour(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	return s.ldtField(dt, func(d *simLocalDateTime) int32 { return d.lt.hour })
}

func (s *Sim) LocalDateTimeGetMinute(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	return s.ldtField(dt, func(d *simLocalDateTime) int32 { return d.lt.minute })
}

func (s *Sim) LocalDateTimeGetSecond(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	return s.ldtField(dt, func(d *simLocalDateTime) int32 { return d.lt.second })
}

func (s *Sim) LocalDateTimeGetMillisecond(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	return s.ldtField(dt, func(d *simLocalDateTime) int32 { return d.lt.ms })
}

func (s *Sim) LocalDateTimeGetMicrosecond(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	return s.ldtField(dt, func(d *simLocalDateTime) int32 { return d.lt.us })
}

func (s *Sim) LocalDateTimeDestroy(dt mgp.LocalDateTimePtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop(uintptr(dt))
}

func (s *Sim) DurationFromMicroseconds(micros int64, mem mgp.MemoryPtr) (mgp.DurationPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	return mgp.DurationPtr(s.put(&simDuration{micros: micros})), mgp.StatusNoError
}

func (s *Sim) DurationGetMicroseconds(d mgp.DurationPtr) (int64, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := get[*simDuration](s, uintptr(d))
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return sd.micros, mgp.StatusNoError
}

func (s *Sim) DurationDestroy(d mgp.DurationPtr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop(uintptr(d))
}

// Result records.

func (s *Sim) ResultNewRecord(r mgp.ResultPtr) (mgp.RecordPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := get[*simResult](s, uintptr(r))
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	res.rows = append(res.rows, make(map[string]uintptr))
	rec := &simRecord{res: uintptr(r), row: len(res.rows) - 1}
	return mgp.RecordPtr(s.put(rec)), mgp.StatusNoError
}

func (s *Sim) RecordInsert(rec mgp.RecordPtr, field string, v mgp.ValuePtr) mgp.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	sr, ok := get[*simRecord](s, uintptr(rec))
	if !ok {
		return mgp.StatusInvalidArgument
	}
	res, ok := get[*simResult](s, sr.res)
	if !ok {
		return mgp.StatusInvalidArgument
	}
	if _, dup := res.rows[sr.row][field]; dup {
		return mgp.StatusKeyAlreadyExists
	}
	cp, ok := s.deepCopy(uintptr(v))
	if !ok {
		return mgp.StatusInvalidArgument
	}
	res.rows[sr.row][field] = cp
	return mgp.StatusNoError
}

func (s *Sim) ResultSetErrorMsg(r mgp.ResultPtr, msg string) mgp.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := get[*simResult](s, uintptr(r))
	if !ok {
		return mgp.StatusInvalidArgument
	}
	res.errMsg = msg
	s.log.Debug().Str("error", msg).Msg("procedure reported an error")
	return mgp.StatusNoError
}

// Procedure registration.

func (s *Sim) ModuleAddReadProcedure(mod mgp.ModulePtr, name string) (mgp.ProcPtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := get[*simModule](s, uintptr(mod))
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	for _, p := range m.procs {
		if p.name == name {
			return 0, mgp.StatusInvalidArgument
		}
	}
	if !s.alloc() {
		return 0, mgp.StatusUnableToAllocate
	}
	p := &simProc{name: name}
	m.procs = append(m.procs, p)
	s.log.Debug().Str("procedure", name).Msg("read procedure declared")
	return mgp.ProcPtr(s.put(p)), mgp.StatusNoError
}

func (s *Sim) procAt(p mgp.ProcPtr) (*simProc, bool) {
	return get[*simProc](s, uintptr(p))
}

func (s *Sim) typeNameAt(t mgp.TypePtr) (string, bool) {
	st, ok := get[*simType](s, uintptr(t))
	if !ok {
		return "", false
	}
	return st.name, true
}

func (s *Sim) ProcAddArg(p mgp.ProcPtr, name string, t mgp.TypePtr) mgp.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.procAt(p)
	if !ok {
		return mgp.StatusInvalidArgument
	}
	tn, ok := s.typeNameAt(t)
	if !ok {
		return mgp.StatusInvalidArgument
	}
	sp.args = append(sp.args, simField{name: name, typ: tn})
	return mgp.StatusNoError
}

func (s *Sim) ProcAddOptArg(p mgp.ProcPtr, name string, t mgp.TypePtr, defaultValue mgp.ValuePtr) mgp.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.procAt(p)
	if !ok {
		return mgp.StatusInvalidArgument
	}
	tn, ok := s.typeNameAt(t)
	if !ok {
		return mgp.StatusInvalidArgument
	}
	if _, ok := s.value(defaultValue); !ok {
		return mgp.StatusInvalidArgument
	}
	sp.optArgs = append(sp.optArgs, simField{name: name, typ: tn})
	return mgp.StatusNoError
}

func (s *Sim) ProcAddResult(p mgp.ProcPtr, name string, t mgp.TypePtr) mgp.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.procAt(p)
	if !ok {
		return mgp.StatusInvalidArgument
	}
	tn, ok := s.typeNameAt(t)
	if !ok {
		return mgp.StatusInvalidArgument
	}
	sp.results = append(sp.results, simField{name: name, typ: tn})
	return mgp.StatusNoError
}

// Type descriptors are interned singletons, like the host's.
func (s *Sim) typeFor(name string) (mgp.TypePtr, mgp.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.types[name]; ok {
		return mgp.TypePtr(h), mgp.StatusNoError
	}
	h := s.put(&simType{name: name})
	s.types[name] = h
	return mgp.TypePtr(h), mgp.StatusNoError
}

func (s *Sim) TypeAny() (mgp.TypePtr, mgp.Status)           { return s.typeFor("any") }
func (s *Sim) TypeBool() (mgp.TypePtr, mgp.Status)          { return s.typeFor("bool") }
func (s *Sim) TypeInt() (mgp.TypePtr, mgp.Status)           { return s.typeFor("int") }
func (s *Sim) TypeFloat() (mgp.TypePtr, mgp.Status)         { return s.typeFor("float") }
func (s *Sim) TypeString() (mgp.TypePtr, mgp.Status)        { return s.typeFor("string") }
func (s *Sim) TypeMap() (mgp.TypePtr, mgp.Status)           { return s.typeFor("map") }
func (s *Sim) TypeNode() (mgp.TypePtr, mgp.Status)          { return s.typeFor("node") }
func (s *Sim) TypeRelationship() (mgp.TypePtr, mgp.Status)  { return s.typeFor("relationship") }
func (s *Sim) TypePath() (mgp.TypePtr, mgp.Status)          { return s.typeFor("path") }
func (s *Sim) TypeDate() (mgp.TypePtr, mgp.Status)          { return s.typeFor("date") }
func (s *Sim) TypeLocalTime() (mgp.TypePtr, mgp.Status)     { return s.typeFor("local_time") }
func (s *Sim) TypeLocalDateTime() (mgp.TypePtr, mgp.Status) { return s.typeFor("local_date_time") }
func (s *Sim) TypeDuration() (mgp.TypePtr, mgp.Status)      { return s.typeFor("duration") }

func (s *Sim) TypeList(elem mgp.TypePtr) (mgp.TypePtr, mgp.Status) {
	s.mu.Lock()
	name, ok := s.typeNameAt(elem)
	s.mu.Unlock()
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return s.typeFor("list of " + name)
}

func (s *Sim) TypeNullable(t mgp.TypePtr) (mgp.TypePtr, mgp.Status) {
	s.mu.Lock()
	name, ok := s.typeNameAt(t)
	s.mu.Unlock()
	if !ok {
		return 0, mgp.StatusInvalidArgument
	}
	return s.typeFor("nullable " + name)
}

package mgp

import (
	"errors"
	"sync"
)

// Errors
var (
	ErrHostNotAvailable = errors.New("mgp: host entry points are not available (not loaded by a database host)")
	ErrUnsupportedOS    = errors.New("mgp: host binding is not supported on this platform")
)

var (
	hostMu   sync.Mutex
	hostInit bool
	hostErr  error
)

// initHost resolves every mgp_* entry point from the host process image.
// The database host exports them to loaded procedure modules, so resolution
// happens against the running process rather than a shared library on disk.
func initHost() error {
	hostMu.Lock()
	defer hostMu.Unlock()

	if hostInit {
		return nil
	}
	if hostErr != nil {
		return hostErr // Previously failed
	}

	img, err := openProcessImage()
	if err != nil {
		hostErr = err
		return err
	}

	registerEntryPoints(img)
	hostInit = true
	return nil
}

// Host is the production API implementation. Every method forwards to the
// corresponding mgp_* entry point through a registered function pointer.
//
// Dispatch receives procedure invocations trampolined back from the host;
// it must be set before any procedure is registered.
type Host struct {
	Dispatch func(procName string, args ListPtr, graph GraphPtr, result ResultPtr, memory MemoryPtr)
}

// NewHost resolves the foreign entry points and returns the production API.
func NewHost() (*Host, error) {
	if err := initHost(); err != nil {
		return nil, err
	}
	return &Host{}, nil
}

func (h *Host) ValueType(v ValuePtr) (ValueType, Status) {
	var out ValueType
	st := mgpValueGetType(v, &out)
	return out, st
}

func (h *Host) ValueGetBool(v ValuePtr) (bool, Status) {
	var out int32
	st := mgpValueGetBool(v, &out)
	return out != 0, st
}

func (h *Host) ValueGetInt(v ValuePtr) (int64, Status) {
	var out int64
	st := mgpValueGetInt(v, &out)
	return out, st
}

func (h *Host) ValueGetDouble(v ValuePtr) (float64, Status) {
	var out float64
	st := mgpValueGetDouble(v, &out)
	return out, st
}

func (h *Host) ValueGetString(v ValuePtr) (string, Status) {
	var out uintptr
	st := mgpValueGetString(v, &out)
	return goString(out), st
}

func (h *Host) ValueGetList(v ValuePtr) (ListPtr, Status) {
	var out ListPtr
	st := mgpValueGetList(v, &out)
	return out, st
}

func (h *Host) ValueGetMap(v ValuePtr) (MapPtr, Status) {
	var out MapPtr
	st := mgpValueGetMap(v, &out)
	return out, st
}

func (h *Host) ValueGetVertex(v ValuePtr) (VertexPtr, Status) {
	var out VertexPtr
	st := mgpValueGetVertex(v, &out)
	return out, st
}

func (h *Host) ValueGetEdge(v ValuePtr) (EdgePtr, Status) {
	var out EdgePtr
	st := mgpValueGetEdge(v, &out)
	return out, st
}

func (h *Host) ValueGetPath(v ValuePtr) (PathPtr, Status) {
	var out PathPtr
	st := mgpValueGetPath(v, &out)
	return out, st
}

func (h *Host) ValueGetDate(v ValuePtr) (DatePtr, Status) {
	var out DatePtr
	st := mgpValueGetDate(v, &out)
	return out, st
}

func (h *Host) ValueGetLocalTime(v ValuePtr) (LocalTimePtr, Status) {
	var out LocalTimePtr
	st := mgpValueGetLocalTime(v, &out)
	return out, st
}

func (h *Host) ValueGetLocalDateTime(v ValuePtr) (LocalDateTimePtr, Status) {
	var out LocalDateTimePtr
	st := mgpValueGetLocalDateTime(v, &out)
	return out, st
}

func (h *Host) ValueGetDuration(v ValuePtr) (DurationPtr, Status) {
	var out DurationPtr
	st := mgpValueGetDuration(v, &out)
	return out, st
}

func (h *Host) ValueMakeNull(mem MemoryPtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpValueMakeNull(mem, &out)
	return out, st
}

func (h *Host) ValueMakeBool(b bool, mem MemoryPtr) (ValuePtr, Status) {
	var out ValuePtr
	cb := int32(0)
	if b {
		cb = 1
	}
	st := mgpValueMakeBool(cb, mem, &out)
	return out, st
}

func (h *Host) ValueMakeInt(i int64, mem MemoryPtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpValueMakeInt(i, mem, &out)
	return out, st
}

func (h *Host) ValueMakeDouble(f float64, mem MemoryPtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpValueMakeDouble(f, mem, &out)
	return out, st
}

func (h *Host) ValueMakeString(s string, mem MemoryPtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpValueMakeString(s, mem, &out)
	return out, st
}

func (h *Host) ValueMakeList(l ListPtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpValueMakeList(l, &out)
	return out, st
}

func (h *Host) ValueMakeMap(m MapPtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpValueMakeMap(m, &out)
	return out, st
}

func (h *Host) ValueMakeVertex(v VertexPtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpValueMakeVertex(v, &out)
	return out, st
}

func (h *Host) ValueMakeEdge(e EdgePtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpValueMakeEdge(e, &out)
	return out, st
}

func (h *Host) ValueMakePath(p PathPtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpValueMakePath(p, &out)
	return out, st
}

func (h *Host) ValueMakeDate(d DatePtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpValueMakeDate(d, &out)
	return out, st
}

func (h *Host) ValueMakeLocalTime(t LocalTimePtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpValueMakeLocalTime(t, &out)
	return out, st
}

func (h *Host) ValueMakeLocalDateTime(dt LocalDateTimePtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpValueMakeLocalDateTime(dt, &out)
	return out, st
}

func (h *Host) ValueMakeDuration(d DurationPtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpValueMakeDuration(d, &out)
	return out, st
}

func (h *Host) ValueDestroy(v ValuePtr) { mgpValueDestroy(v) }

func (h *Host) ListMakeEmpty(capacity uint64, mem MemoryPtr) (ListPtr, Status) {
	var out ListPtr
	st := mgpListMakeEmpty(capacity, mem, &out)
	return out, st
}

func (h *Host) ListDestroy(l ListPtr) { mgpListDestroy(l) }

func (h *Host) ListSize(l ListPtr) (uint64, Status) {
	var out uint64
	st := mgpListSize(l, &out)
	return out, st
}

func (h *Host) ListCapacity(l ListPtr) (uint64, Status) {
	var out uint64
	st := mgpListCapacity(l, &out)
	return out, st
}

func (h *Host) ListAt(l ListPtr, index uint64) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpListAt(l, index, &out)
	return out, st
}

func (h *Host) ListAppend(l ListPtr, v ValuePtr) Status       { return mgpListAppend(l, v) }
func (h *Host) ListAppendExtend(l ListPtr, v ValuePtr) Status { return mgpListAppendExtend(l, v) }

func (h *Host) MapMakeEmpty(mem MemoryPtr) (MapPtr, Status) {
	var out MapPtr
	st := mgpMapMakeEmpty(mem, &out)
	return out, st
}

func (h *Host) MapDestroy(m MapPtr) { mgpMapDestroy(m) }

func (h *Host) MapSize(m MapPtr) (uint64, Status) {
	var out uint64
	st := mgpMapSize(m, &out)
	return out, st
}

func (h *Host) MapAt(m MapPtr, key string) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpMapAt(m, key, &out)
	return out, st
}

func (h *Host) MapInsert(m MapPtr, key string, v ValuePtr) Status {
	return mgpMapInsert(m, key, v)
}

func (h *Host) MapIterItems(m MapPtr, mem MemoryPtr) (MapItemsIterPtr, Status) {
	var out MapItemsIterPtr
	st := mgpMapIterItems(m, mem, &out)
	return out, st
}

func (h *Host) MapItemsIterGet(it MapItemsIterPtr) (MapItemPtr, Status) {
	var out MapItemPtr
	st := mgpMapItemsIterGet(it, &out)
	return out, st
}

func (h *Host) MapItemsIterNext(it MapItemsIterPtr) (MapItemPtr, Status) {
	var out MapItemPtr
	st := mgpMapItemsIterNext(it, &out)
	return out, st
}

func (h *Host) MapItemsIterDestroy(it MapItemsIterPtr) { mgpMapItemsIterDestroy(it) }

func (h *Host) MapItemKey(item MapItemPtr) (string, Status) {
	var out uintptr
	st := mgpMapItemKey(item, &out)
	return goString(out), st
}

func (h *Host) MapItemValue(item MapItemPtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpMapItemValue(item, &out)
	return out, st
}

func (h *Host) VertexGetID(v VertexPtr) (int64, Status) {
	var out int64
	st := mgpVertexGetID(v, &out)
	return out, st
}

func (h *Host) VertexLabelsCount(v VertexPtr) (uint64, Status) {
	var out uint64
	st := mgpVertexLabelsCount(v, &out)
	return out, st
}

func (h *Host) VertexLabelAt(v VertexPtr, index uint64) (string, Status) {
	var out uintptr
	st := mgpVertexLabelAt(v, index, &out)
	return goString(out), st
}

func (h *Host) VertexGetProperty(v VertexPtr, name string, mem MemoryPtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpVertexGetProperty(v, name, mem, &out)
	return out, st
}

func (h *Host) VertexIterProperties(v VertexPtr, mem MemoryPtr) (PropertiesIterPtr, Status) {
	var out PropertiesIterPtr
	st := mgpVertexIterProperties(v, mem, &out)
	return out, st
}

func (h *Host) VertexIterInEdges(v VertexPtr, mem MemoryPtr) (EdgesIterPtr, Status) {
	var out EdgesIterPtr
	st := mgpVertexIterInEdges(v, mem, &out)
	return out, st
}

func (h *Host) VertexIterOutEdges(v VertexPtr, mem MemoryPtr) (EdgesIterPtr, Status) {
	var out EdgesIterPtr
	st := mgpVertexIterOutEdges(v, mem, &out)
	return out, st
}

func (h *Host) VertexCopy(v VertexPtr, mem MemoryPtr) (VertexPtr, Status) {
	var out VertexPtr
	st := mgpVertexCopy(v, mem, &out)
	return out, st
}

func (h *Host) VertexDestroy(v VertexPtr) { mgpVertexDestroy(v) }

func (h *Host) EdgeGetType(e EdgePtr) (string, Status) {
	var out uintptr
	st := mgpEdgeGetType(e, &out)
	return goString(out), st
}

func (h *Host) EdgeFromVertex(e EdgePtr) (VertexPtr, Status) {
	var out VertexPtr
	st := mgpEdgeGetFrom(e, &out)
	return out, st
}

func (h *Host) EdgeToVertex(e EdgePtr) (VertexPtr, Status) {
	var out VertexPtr
	st := mgpEdgeGetTo(e, &out)
	return out, st
}

func (h *Host) EdgeGetProperty(e EdgePtr, name string, mem MemoryPtr) (ValuePtr, Status) {
	var out ValuePtr
	st := mgpEdgeGetProperty(e, name, mem, &out)
	return out, st
}

func (h *Host) EdgeIterProperties(e EdgePtr, mem MemoryPtr) (PropertiesIterPtr, Status) {
	var out PropertiesIterPtr
	st := mgpEdgeIterProperties(e, mem, &out)
	return out, st
}

func (h *Host) EdgeCopy(e EdgePtr, mem MemoryPtr) (EdgePtr, Status) {
	var out EdgePtr
	st := mgpEdgeCopy(e, mem, &out)
	return out, st
}

func (h *Host) EdgeDestroy(e EdgePtr) { mgpEdgeDestroy(e) }

func (h *Host) PathSize(p PathPtr) (uint64, Status) {
	var out uint64
	st := mgpPathSize(p, &out)
	return out, st
}

func (h *Host) PathVertexAt(p PathPtr, index uint64) (VertexPtr, Status) {
	var out VertexPtr
	st := mgpPathVertexAt(p, index, &out)
	return out, st
}

func (h *Host) PathEdgeAt(p PathPtr, index uint64) (EdgePtr, Status) {
	var out EdgePtr
	st := mgpPathEdgeAt(p, index, &out)
	return out, st
}

func (h *Host) PathCopy(p PathPtr, mem MemoryPtr) (PathPtr, Status) {
	var out PathPtr
	st := mgpPathCopy(p, mem, &out)
	return out, st
}

func (h *Host) PathDestroy(p PathPtr) { mgpPathDestroy(p) }

func (h *Host) PropertiesIterGet(it PropertiesIterPtr) (*Property, Status) {
	var out uintptr
	st := mgpPropertiesIterGet(it, &out)
	return propertyAt(out), st
}

func (h *Host) PropertiesIterNext(it PropertiesIterPtr) (*Property, Status) {
	var out uintptr
	st := mgpPropertiesIterNext(it, &out)
	return propertyAt(out), st
}

func (h *Host) PropertiesIterDestroy(it PropertiesIterPtr) { mgpPropertiesIterDestroy(it) }

func (h *Host) EdgesIterGet(it EdgesIterPtr) (EdgePtr, Status) {
	var out EdgePtr
	st := mgpEdgesIterGet(it, &out)
	return out, st
}

func (h *Host) EdgesIterNext(it EdgesIterPtr) (EdgePtr, Status) {
	var out EdgePtr
	st := mgpEdgesIterNext(it, &out)
	return out, st
}

func (h *Host) EdgesIterDestroy(it EdgesIterPtr) { mgpEdgesIterDestroy(it) }

func (h *Host) VerticesIterGet(it VerticesIterPtr) (VertexPtr, Status) {
	var out VertexPtr
	st := mgpVerticesIterGet(it, &out)
	return out, st
}

func (h *Host) VerticesIterNext(it VerticesIterPtr) (VertexPtr, Status) {
	var out VertexPtr
	st := mgpVerticesIterNext(it, &out)
	return out, st
}

func (h *Host) VerticesIterDestroy(it VerticesIterPtr) { mgpVerticesIterDestroy(it) }

func (h *Host) GraphVertexByID(g GraphPtr, id int64, mem MemoryPtr) (VertexPtr, Status) {
	var out VertexPtr
	st := mgpGraphGetVertexByID(g, id, mem, &out)
	return out, st
}

func (h *Host) GraphIterVertices(g GraphPtr, mem MemoryPtr) (VerticesIterPtr, Status) {
	var out VerticesIterPtr
	st := mgpGraphIterVertices(g, mem, &out)
	return out, st
}

func (h *Host) DateFromParameters(p *DateParameters, mem MemoryPtr) (DatePtr, Status) {
	var out DatePtr
	st := mgpDateFromParameters(p, mem, &out)
	return out, st
}

func (h *Host) DateGetYear(d DatePtr) (int32, Status) {
	var out int32
	st := mgpDateGetYear(d, &out)
	return out, st
}

func (h *Host) DateGetMonth(d DatePtr) (int32, Status) {
	var out int32
	st := mgpDateGetMonth(d, &out)
	return out, st
}

func (h *Host) DateGetDay(d DatePtr) (int32, Status) {
	var out int32
	st := mgpDateGetDay(d, &out)
	return out, st
}

func (h *Host) DateDestroy(d DatePtr) { mgpDateDestroy(d) }

func (h *Host) LocalTimeFromParameters(p *LocalTimeParameters, mem MemoryPtr) (LocalTimePtr, Status) {
	var out LocalTimePtr
	st := mgpLocalTimeFromParameters(p, mem, &out)
	return out, st
}

func (h *Host) LocalTimeGetHour(t LocalTimePtr) (int32, Status) {
	var out int32
	st := mgpLocalTimeGetHour(t, &out)
	return out, st
}

func (h *Host) LocalTimeGetMinute(t LocalTimePtr) (int32, Status) {
	var out int32
	st := mgpLocalTimeGetMinute(t, &out)
	return out, st
}

func (h *Host) LocalTimeGetSecond(t LocalTimePtr) (int32, Status) {
	var out int32
	st := mgpLocalTimeGetSecond(t, &out)
	return out, st
}

func (h *Host) LocalTimeGetMillisecond(t LocalTimePtr) (int32, Status) {
	var out int32
	st := mgpLocalTimeGetMillisecond(t, &out)
	return out, st
}

func (h *Host) LocalTimeGetMicrosecond(t LocalTimePtr) (int32, Status) {
	var out int32
	st := mgpLocalTimeGetMicrosecond(t, &out)
	return out, st
}

func (h *Host) LocalTimeDestroy(t LocalTimePtr) { mgpLocalTimeDestroy(t) }

func (h *Host) LocalDateTimeFromParameters(p *LocalDateTimeParameters, mem MemoryPtr) (LocalDateTimePtr, Status) {
	var out LocalDateTimePtr
	st := mgpLocalDateTimeFromParameters(p, mem, &out)
	return out, st
}

func (h *Host) LocalDateTimeGetYear(dt LocalDateTimePtr) (int32, Status) {
	var out int32
	st := mgpLocalDateTimeGetYear(dt, &out)
	return out, st
}

func (h *Host) LocalDateTimeGetMonth(dt LocalDateTimePtr) (int32, Status) {
	var out int32
	st := mgpLocalDateTimeGetMonth(dt, &out)
	return out, st
}

func (h *Host) LocalDateTimeGetDay(dt LocalDateTimePtr) (int32, Status) {
	var out int32
	st := mgpLocalDateTimeGetDay(dt, &out)
	return out, st
}

func (h *Host) LocalDateTimeGetHour(dt LocalDateTimePtr) (int32, Status) {
	var out int32
	st := mgpLocalDateTimeGetHour(dt, &out)
	return out, st
}

func (h *Host) LocalDateTimeGetMinute(dt LocalDateTimePtr) (int32, Status) {
	var out int32
	st := mgpLocalDateTimeGetMinute(dt, &out)
	return out, st
}

func (h *Host) LocalDateTimeGetSecond(dt LocalDateTimePtr) (int32, Status) {
	var out int32
	st := mgpLocalDateTimeGetSecond(dt, &out)
	return out, st
}

func (h *Host) LocalDateTimeGetMillisecond(dt LocalDateTimePtr) (int32, Status) {
	var out int32
	st := mgpLocalDateTimeGetMillisecond(dt, &out)
	return out, st
}

func (h *Host) LocalDateTimeGetMicrosecond(dt LocalDateTimePtr) (int32, Status) {
	var out int32
	st := mgpLocalDateTimeGetMicrosecond(dt, &out)
	return out, st
}

func (h *Host) LocalDateTimeDestroy(dt LocalDateTimePtr) { mgpLocalDateTimeDestroy(dt) }

func (h *Host) DurationFromMicroseconds(micros int64, mem MemoryPtr) (DurationPtr, Status) {
	var out DurationPtr
	st := mgpDurationFromMicroseconds(micros, mem, &out)
	return out, st
}

func (h *Host) DurationGetMicroseconds(d DurationPtr) (int64, Status) {
	var out int64
	st := mgpDurationGetMicroseconds(d, &out)
	return out, st
}

func (h *Host) DurationDestroy(d DurationPtr) { mgpDurationDestroy(d) }

func (h *Host) ResultNewRecord(r ResultPtr) (RecordPtr, Status) {
	var out RecordPtr
	st := mgpResultNewRecord(r, &out)
	return out, st
}

func (h *Host) RecordInsert(rec RecordPtr, field string, v ValuePtr) Status {
	return mgpResultRecordInsert(rec, field, v)
}

func (h *Host) ResultSetErrorMsg(r ResultPtr, msg string) Status {
	return mgpResultSetErrorMsg(r, msg)
}

func (h *Host) ModuleAddReadProcedure(mod ModulePtr, name string) (ProcPtr, Status) {
	var out ProcPtr
	cb := h.procCallback(name)
	st := mgpModuleAddReadProcedure(mod, name, cb, &out)
	return out, st
}

func (h *Host) ProcAddArg(p ProcPtr, name string, t TypePtr) Status {
	return mgpProcAddArg(p, name, t)
}

func (h *Host) ProcAddOptArg(p ProcPtr, name string, t TypePtr, def ValuePtr) Status {
	return mgpProcAddOptArg(p, name, t, def)
}

func (h *Host) ProcAddResult(p ProcPtr, name string, t TypePtr) Status {
	return mgpProcAddResult(p, name, t)
}

func (h *Host) TypeAny() (TypePtr, Status)          { return typeOut(mgpTypeAny) }
func (h *Host) TypeBool() (TypePtr, Status)         { return typeOut(mgpTypeBool) }
func (h *Host) TypeInt() (TypePtr, Status)          { return typeOut(mgpTypeInt) }
func (h *Host) TypeFloat() (TypePtr, Status)        { return typeOut(mgpTypeFloat) }
func (h *Host) TypeString() (TypePtr, Status)       { return typeOut(mgpTypeString) }
func (h *Host) TypeMap() (TypePtr, Status)          { return typeOut(mgpTypeMap) }
func (h *Host) TypeNode() (TypePtr, Status)         { return typeOut(mgpTypeNode) }
func (h *Host) TypeRelationship() (TypePtr, Status) { return typeOut(mgpTypeRelationship) }
func (h *Host) TypePath() (TypePtr, Status)         { return typeOut(mgpTypePath) }
func (h *Host) TypeDate() (TypePtr, Status)         { return typeOut(mgpTypeDate) }
func (h *Host) TypeLocalTime() (TypePtr, Status)    { return typeOut(mgpTypeLocalTime) }
func (h *Host) TypeLocalDateTime() (TypePtr, Status) {
	return typeOut(mgpTypeLocalDateTime)
}
func (h *Host) TypeDuration() (TypePtr, Status) { return typeOut(mgpTypeDuration) }

func (h *Host) TypeList(elem TypePtr) (TypePtr, Status) {
	var out TypePtr
	st := mgpTypeList(elem, &out)
	return out, st
}

func (h *Host) TypeNullable(t TypePtr) (TypePtr, Status) {
	var out TypePtr
	st := mgpTypeNullable(t, &out)
	return out, st
}

func typeOut(fn func(out *TypePtr) Status) (TypePtr, Status) {
	var out TypePtr
	st := fn(&out)
	return out, st
}

var _ API = (*Host)(nil)

package mgp

import "unsafe"

// Foreign entry points, registered from the host process image by
// registerEntryPoints. Signatures mirror the C ABI: a status return plus
// output parameters.
var (
	mgpValueGetType          func(v ValuePtr, out *ValueType) Status
	mgpValueGetBool          func(v ValuePtr, out *int32) Status
	mgpValueGetInt           func(v ValuePtr, out *int64) Status
	mgpValueGetDouble        func(v ValuePtr, out *float64) Status
	mgpValueGetString        func(v ValuePtr, out *uintptr) Status
	mgpValueGetList          func(v ValuePtr, out *ListPtr) Status
	mgpValueGetMap           func(v ValuePtr, out *MapPtr) Status
	mgpValueGetVertex        func(v ValuePtr, out *VertexPtr) Status
	mgpValueGetEdge          func(v ValuePtr, out *EdgePtr) Status
	mgpValueGetPath          func(v ValuePtr, out *PathPtr) Status
	mgpValueGetDate          func(v ValuePtr, out *DatePtr) Status
	mgpValueGetLocalTime     func(v ValuePtr, out *LocalTimePtr) Status
	mgpValueGetLocalDateTime func(v ValuePtr, out *LocalDateTimePtr) Status
	mgpValueGetDuration      func(v ValuePtr, out *DurationPtr) Status

	mgpValueMakeNull          func(mem MemoryPtr, out *ValuePtr) Status
	mgpValueMakeBool          func(b int32, mem MemoryPtr, out *ValuePtr) Status
	mgpValueMakeInt           func(i int64, mem MemoryPtr, out *ValuePtr) Status
	mgpValueMakeDouble        func(f float64, mem MemoryPtr, out *ValuePtr) Status
	mgpValueMakeString        func(s string, mem MemoryPtr, out *ValuePtr) Status
	mgpValueMakeList          func(l ListPtr, out *ValuePtr) Status
	mgpValueMakeMap           func(m MapPtr, out *ValuePtr) Status
	mgpValueMakeVertex        func(v VertexPtr, out *ValuePtr) Status
	mgpValueMakeEdge          func(e EdgePtr, out *ValuePtr) Status
	mgpValueMakePath          func(p PathPtr, out *ValuePtr) Status
	mgpValueMakeDate          func(d DatePtr, out *ValuePtr) Status
	mgpValueMakeLocalTime     func(t LocalTimePtr, out *ValuePtr) Status
	mgpValueMakeLocalDateTime func(dt LocalDateTimePtr, out *ValuePtr) Status
	mgpValueMakeDuration      func(d DurationPtr, out *ValuePtr) Status
	mgpValueDestroy           func(v ValuePtr)

	mgpListMakeEmpty    func(capacity uint64, mem MemoryPtr, out *ListPtr) Status
	mgpListDestroy      func(l ListPtr)
	mgpListSize         func(l ListPtr, out *uint64) Status
	mgpListCapacity     func(l ListPtr, out *uint64) Status
	mgpListAt           func(l ListPtr, index uint64, out *ValuePtr) Status
	mgpListAppend       func(l ListPtr, v ValuePtr) Status
	mgpListAppendExtend func(l ListPtr, v ValuePtr) Status

	mgpMapMakeEmpty        func(mem MemoryPtr, out *MapPtr) Status
	mgpMapDestroy          func(m MapPtr)
	mgpMapSize             func(m MapPtr, out *uint64) Status
	mgpMapAt               func(m MapPtr, key string, out *ValuePtr) Status
	mgpMapInsert           func(m MapPtr, key string, v ValuePtr) Status
	mgpMapIterItems        func(m MapPtr, mem MemoryPtr, out *MapItemsIterPtr) Status
	mgpMapItemsIterGet     func(it MapItemsIterPtr, out *MapItemPtr) Status
	mgpMapItemsIterNext    func(it MapItemsIterPtr, out *MapItemPtr) Status
	mgpMapItemsIterDestroy func(it MapItemsIterPtr)
	mgpMapItemKey          func(item MapItemPtr, out *uintptr) Status
	mgpMapItemValue        func(item MapItemPtr, out *ValuePtr) Status

	mgpVertexGetID          func(v VertexPtr, out *int64) Status
	mgpVertexLabelsCount    func(v VertexPtr, out *uint64) Status
	mgpVertexLabelAt        func(v VertexPtr, index uint64, out *uintptr) Status
	mgpVertexGetProperty    func(v VertexPtr, name string, mem MemoryPtr, out *ValuePtr) Status
	mgpVertexIterProperties func(v VertexPtr, mem MemoryPtr, out *PropertiesIterPtr) Status
	mgpVertexIterInEdges    func(v VertexPtr, mem MemoryPtr, out *EdgesIterPtr) Status
	mgpVertexIterOutEdges   func(v VertexPtr, mem MemoryPtr, out *EdgesIterPtr) Status
	mgpVertexCopy           func(v VertexPtr, mem MemoryPtr, out *VertexPtr) Status
	mgpVertexDestroy        func(v VertexPtr)

	mgpEdgeGetType        func(e EdgePtr, out *uintptr) Status
	mgpEdgeGetFrom        func(e EdgePtr, out *VertexPtr) Status
	mgpEdgeGetTo          func(e EdgePtr, out *VertexPtr) Status
	mgpEdgeGetProperty    func(e EdgePtr, name string, mem MemoryPtr, out *ValuePtr) Status
	mgpEdgeIterProperties func(e EdgePtr, mem MemoryPtr, out *PropertiesIterPtr) Status
	mgpEdgeCopy           func(e EdgePtr, mem MemoryPtr, out *EdgePtr) Status
	mgpEdgeDestroy        func(e EdgePtr)

	mgpPathSize     func(p PathPtr, out *uint64) Status
	mgpPathVertexAt func(p PathPtr, index uint64, out *VertexPtr) Status
	mgpPathEdgeAt   func(p PathPtr, index uint64, out *EdgePtr) Status
	mgpPathCopy     func(p PathPtr, mem MemoryPtr, out *PathPtr) Status
	mgpPathDestroy  func(p PathPtr)

	mgpPropertiesIterGet     func(it PropertiesIterPtr, out *uintptr) Status
	mgpPropertiesIterNext    func(it PropertiesIterPtr, out *uintptr) Status
	mgpPropertiesIterDestroy func(it PropertiesIterPtr)
	mgpEdgesIterGet          func(it EdgesIterPtr, out *EdgePtr) Status
	mgpEdgesIterNext         func(it EdgesIterPtr, out *EdgePtr) Status
	mgpEdgesIterDestroy      func(it EdgesIterPtr)
	mgpVerticesIterGet       func(it VerticesIterPtr, out *VertexPtr) Status
	mgpVerticesIterNext      func(it VerticesIterPtr, out *VertexPtr) Status
	mgpVerticesIterDestroy   func(it VerticesIterPtr)

	mgpGraphGetVertexByID func(g GraphPtr, id int64, mem MemoryPtr, out *VertexPtr) Status
	mgpGraphIterVertices  func(g GraphPtr, mem MemoryPtr, out *VerticesIterPtr) Status

	mgpDateFromParameters          func(p *DateParameters, mem MemoryPtr, out *DatePtr) Status
	mgpDateGetYear                 func(d DatePtr, out *int32) Status
	mgpDateGetMonth                func(d DatePtr, out *int32) Status
	mgpDateGetDay                  func(d DatePtr, out *int32) Status
	mgpDateDestroy                 func(d DatePtr)
	mgpLocalTimeFromParameters     func(p *LocalTimeParameters, mem MemoryPtr, out *LocalTimePtr) Status
	mgpLocalTimeGetHour            func(t LocalTimePtr, out *int32) Status
	mgpLocalTimeGetMinute          func(t LocalTimePtr, out *int32) Status
	mgpLocalTimeGetSecond          func(t LocalTimePtr, out *int32) Status
	mgpLocalTimeGetMillisecond     func(t LocalTimePtr, out *int32) Status
	mgpLocalTimeGetMicrosecond     func(t LocalTimePtr, out *int32) Status
	mgpLocalTimeDestroy            func(t LocalTimePtr)
	mgpLocalDateTimeFromParameters func(p *LocalDateTimeParameters, mem MemoryPtr, out *LocalDateTimePtr) Status
	mgpLocalDateTimeGetYear        func(dt LocalDateTimePtr, out *int32) Status
	mgpLocalDateTimeGetMonth       func(dt LocalDateTimePtr, out *int32) Status
	mgpLocalDateTimeGetDay         func(dt LocalDateTimePtr, out *int32) Status
	mgpLocalDateTimeGetHour        func(dt LocalDateTimePtr, out *int32) Status
	mgpLocalDateTimeGetMinute      func(dt LocalDateTimePtr, out *int32) Status
	mgpLocalDateTimeGetSecond      func(dt LocalDateTimePtr, out *int32) Status
	mgpLocalDateTimeGetMillisecond func(dt LocalDateTimePtr, out *int32) Status
	mgpLocalDateTimeGetMicrosecond func(dt LocalDateTimePtr, out *int32) Status
	mgpLocalDateTimeDestroy        func(dt LocalDateTimePtr)
	mgpDurationFromMicroseconds    func(micros int64, mem MemoryPtr, out *DurationPtr) Status
	mgpDurationGetMicroseconds     func(d DurationPtr, out *int64) Status
	mgpDurationDestroy             func(d DurationPtr)

	mgpResultNewRecord        func(r ResultPtr, out *RecordPtr) Status
	mgpResultRecordInsert     func(rec RecordPtr, field string, v ValuePtr) Status
	mgpResultSetErrorMsg      func(r ResultPtr, msg string) Status
	mgpModuleAddReadProcedure func(mod ModulePtr, name string, cb uintptr, out *ProcPtr) Status
	mgpProcAddArg             func(p ProcPtr, name string, t TypePtr) Status
	mgpProcAddOptArg          func(p ProcPtr, name string, t TypePtr, def ValuePtr) Status
	mgpProcAddResult          func(p ProcPtr, name string, t TypePtr) Status

	mgpTypeAny           func(out *TypePtr) Status
	mgpTypeBool          func(out *TypePtr) Status
	mgpTypeInt           func(out *TypePtr) Status
	mgpTypeFloat         func(out *TypePtr) Status
	mgpTypeString        func(out *TypePtr) Status
	mgpTypeMap           func(out *TypePtr) Status
	mgpTypeNode          func(out *TypePtr) Status
	mgpTypeRelationship  func(out *TypePtr) Status
	mgpTypePath          func(out *TypePtr) Status
	mgpTypeDate          func(out *TypePtr) Status
	mgpTypeLocalTime     func(out *TypePtr) Status
	mgpTypeLocalDateTime func(out *TypePtr) Status
	mgpTypeDuration      func(out *TypePtr) Status
	mgpTypeList          func(elem TypePtr, out *TypePtr) Status
	mgpTypeNullable      func(t TypePtr, out *TypePtr) Status
)

// cProperty is the host's property struct: a C string name and a borrowed
// value handle.
type cProperty struct {
	name  uintptr
	value uintptr
}

// propertyAt reads a host-owned property struct. A zero pointer (iterator
// exhausted) maps to nil.
func propertyAt(p uintptr) *Property {
	if p == 0 {
		return nil
	}
	cp := (*cProperty)(unsafe.Pointer(p))
	return &Property{Name: goString(cp.name), Value: ValuePtr(cp.value)}
}

// goString copies a NUL-terminated C string into a Go string.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	var b []byte
	for {
		c := *(*byte)(unsafe.Pointer(p))
		if c == 0 {
			break
		}
		b = append(b, c)
		p++
	}
	return string(b)
}

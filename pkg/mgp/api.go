package mgp

// API is the single indirection boundary through which every foreign entry
// point is invoked. The production implementation (Host, see purego.go)
// forwards to symbols resolved from the database host process; mgpmock.API
// is a scripted double for deterministic tests.
//
// Conventions, shared by every method:
//   - The returned Status is the host's result code. Any other return value
//     is meaningful only when the status is StatusNoError.
//   - Handles passed in are never released by the callee; release happens
//     only through the explicit *Destroy entry points.
//   - Iterator Get returns the current element, Next advances and returns
//     the new current element. A zero handle (or nil Property) signals
//     exhaustion, with StatusNoError.
type API interface {
	// Values.
	ValueType(v ValuePtr) (ValueType, Status)
	ValueGetBool(v ValuePtr) (bool, Status)
	ValueGetInt(v ValuePtr) (int64, Status)
	ValueGetDouble(v ValuePtr) (float64, Status)
	ValueGetString(v ValuePtr) (string, Status)
	ValueGetList(v ValuePtr) (ListPtr, Status)
	ValueGetMap(v ValuePtr) (MapPtr, Status)
	ValueGetVertex(v ValuePtr) (VertexPtr, Status)
	ValueGetEdge(v ValuePtr) (EdgePtr, Status)
	ValueGetPath(v ValuePtr) (PathPtr, Status)
	ValueGetDate(v ValuePtr) (DatePtr, Status)
	ValueGetLocalTime(v ValuePtr) (LocalTimePtr, Status)
	ValueGetLocalDateTime(v ValuePtr) (LocalDateTimePtr, Status)
	ValueGetDuration(v ValuePtr) (DurationPtr, Status)
	ValueMakeNull(mem MemoryPtr) (ValuePtr, Status)
	ValueMakeBool(b bool, mem MemoryPtr) (ValuePtr, Status)
	ValueMakeInt(i int64, mem MemoryPtr) (ValuePtr, Status)
	ValueMakeDouble(f float64, mem MemoryPtr) (ValuePtr, Status)
	ValueMakeString(s string, mem MemoryPtr) (ValuePtr, Status)
	ValueMakeList(l ListPtr) (ValuePtr, Status)
	ValueMakeMap(m MapPtr) (ValuePtr, Status)
	ValueMakeVertex(v VertexPtr) (ValuePtr, Status)
	ValueMakeEdge(e EdgePtr) (ValuePtr, Status)
	ValueMakePath(p PathPtr) (ValuePtr, Status)
	ValueMakeDate(d DatePtr) (ValuePtr, Status)
	ValueMakeLocalTime(t LocalTimePtr) (ValuePtr, Status)
	ValueMakeLocalDateTime(dt LocalDateTimePtr) (ValuePtr, Status)
	ValueMakeDuration(d DurationPtr) (ValuePtr, Status)
	ValueDestroy(v ValuePtr)

	// Lists. The ABI defines no list copy entry point; copying is composed
	// from ListMakeEmpty and ListAppendExtend by the wrapper layer.
	ListMakeEmpty(capacity uint64, mem MemoryPtr) (ListPtr, Status)
	ListDestroy(l ListPtr)
	ListSize(l ListPtr) (uint64, Status)
	ListCapacity(l ListPtr) (uint64, Status)
	ListAt(l ListPtr, index uint64) (ValuePtr, Status)
	ListAppend(l ListPtr, v ValuePtr) Status
	ListAppendExtend(l ListPtr, v ValuePtr) Status

	// Maps.
	MapMakeEmpty(mem MemoryPtr) (MapPtr, Status)
	MapDestroy(m MapPtr)
	MapSize(m MapPtr) (uint64, Status)
	MapAt(m MapPtr, key string) (ValuePtr, Status)
	MapInsert(m MapPtr, key string, v ValuePtr) Status
	MapIterItems(m MapPtr, mem MemoryPtr) (MapItemsIterPtr, Status)
	MapItemsIterGet(it MapItemsIterPtr) (MapItemPtr, Status)
	MapItemsIterNext(it MapItemsIterPtr) (MapItemPtr, Status)
	MapItemsIterDestroy(it MapItemsIterPtr)
	MapItemKey(item MapItemPtr) (string, Status)
	MapItemValue(item MapItemPtr) (ValuePtr, Status)

	// Vertices.
	VertexGetID(v VertexPtr) (int64, Status)
	VertexLabelsCount(v VertexPtr) (uint64, Status)
	VertexLabelAt(v VertexPtr, index uint64) (string, Status)
	VertexGetProperty(v VertexPtr, name string, mem MemoryPtr) (ValuePtr, Status)
	VertexIterProperties(v VertexPtr, mem MemoryPtr) (PropertiesIterPtr, Status)
	VertexIterInEdges(v VertexPtr, mem MemoryPtr) (EdgesIterPtr, Status)
	VertexIterOutEdges(v VertexPtr, mem MemoryPtr) (EdgesIterPtr, Status)
	VertexCopy(v VertexPtr, mem MemoryPtr) (VertexPtr, Status)
	VertexDestroy(v VertexPtr)

	// Edges.
	EdgeGetType(e EdgePtr) (string, Status)
	EdgeFromVertex(e EdgePtr) (VertexPtr, Status)
	EdgeToVertex(e EdgePtr) (VertexPtr, Status)
	EdgeGetProperty(e EdgePtr, name string, mem MemoryPtr) (ValuePtr, Status)
	EdgeIterProperties(e EdgePtr, mem MemoryPtr) (PropertiesIterPtr, Status)
	EdgeCopy(e EdgePtr, mem MemoryPtr) (EdgePtr, Status)
	EdgeDestroy(e EdgePtr)

	// Paths.
	PathSize(p PathPtr) (uint64, Status)
	PathVertexAt(p PathPtr, index uint64) (VertexPtr, Status)
	PathEdgeAt(p PathPtr, index uint64) (EdgePtr, Status)
	PathCopy(p PathPtr, mem MemoryPtr) (PathPtr, Status)
	PathDestroy(p PathPtr)

	// Iterators over foreign collections.
	PropertiesIterGet(it PropertiesIterPtr) (*Property, Status)
	PropertiesIterNext(it PropertiesIterPtr) (*Property, Status)
	PropertiesIterDestroy(it PropertiesIterPtr)
	EdgesIterGet(it EdgesIterPtr) (EdgePtr, Status)
	EdgesIterNext(it EdgesIterPtr) (EdgePtr, Status)
	EdgesIterDestroy(it EdgesIterPtr)
	VerticesIterGet(it VerticesIterPtr) (VertexPtr, Status)
	VerticesIterNext(it VerticesIterPtr) (VertexPtr, Status)
	VerticesIterDestroy(it VerticesIterPtr)

	// Graph access.
	GraphVertexByID(g GraphPtr, id int64, mem MemoryPtr) (VertexPtr, Status)
	GraphIterVertices(g GraphPtr, mem MemoryPtr) (VerticesIterPtr, Status)

	// Temporal types.
	DateFromParameters(p *DateParameters, mem MemoryPtr) (DatePtr, Status)
	DateGetYear(d DatePtr) (int32, Status)
	DateGetMonth(d DatePtr) (int32, Status)
	DateGetDay(d DatePtr) (int32, Status)
	DateDestroy(d DatePtr)
	LocalTimeFromParameters(p *LocalTimeParameters, mem MemoryPtr) (LocalTimePtr, Status)
	LocalTimeGetHour(t LocalTimePtr) (int32, Status)
	LocalTimeGetMinute(t LocalTimePtr) (int32, Status)
	LocalTimeGetSecond(t LocalTimePtr) (int32, Status)
	LocalTimeGetMillisecond(t LocalTimePtr) (int32, Status)
	LocalTimeGetMicrosecond(t LocalTimePtr) (int32, Status)
	LocalTimeDestroy(t LocalTimePtr)
	LocalDateTimeFromParameters(p *LocalDateTimeParameters, mem MemoryPtr) (LocalDateTimePtr, Status)
	LocalDateTimeGetYear(dt LocalDateTimePtr) (int32, Status)
	LocalDateTimeGetMonth(dt LocalDateTimePtr) (int32, Status)
	LocalDateTimeGetDay(dt LocalDateTimePtr) (int32, Status)
	LocalDateTimeGetHour(dt LocalDateTimePtr) (int32, Status)
	LocalDateTimeGetMinute(dt LocalDateTimePtr) (int32, Status)
	LocalDateTimeGetSecond(dt LocalDateTimePtr) (int32, Status)
	LocalDateTimeGetMillisecond(dt LocalDateTimePtr) (int32, Status)
	LocalDateTimeGetMicrosecond(dt LocalDateTimePtr) (int32, Status)
	LocalDateTimeDestroy(dt LocalDateTimePtr)
	DurationFromMicroseconds(micros int64, mem MemoryPtr) (DurationPtr, Status)
	DurationGetMicroseconds(d DurationPtr) (int64, Status)
	DurationDestroy(d DurationPtr)

	// Result records.
	ResultNewRecord(r ResultPtr) (RecordPtr, Status)
	RecordInsert(rec RecordPtr, field string, v ValuePtr) Status
	ResultSetErrorMsg(r ResultPtr, msg string) Status

	// Procedure registration.
	ModuleAddReadProcedure(mod ModulePtr, name string) (ProcPtr, Status)
	ProcAddArg(p ProcPtr, name string, t TypePtr) Status
	ProcAddOptArg(p ProcPtr, name string, t TypePtr, defaultValue ValuePtr) Status
	ProcAddResult(p ProcPtr, name string, t TypePtr) Status
	TypeAny() (TypePtr, Status)
	TypeBool() (TypePtr, Status)
	TypeInt() (TypePtr, Status)
	TypeFloat() (TypePtr, Status)
	TypeString() (TypePtr, Status)
	TypeMap() (TypePtr, Status)
	TypeNode() (TypePtr, Status)
	TypeRelationship() (TypePtr, Status)
	TypePath() (TypePtr, Status)
	TypeDate() (TypePtr, Status)
	TypeLocalTime() (TypePtr, Status)
	TypeLocalDateTime() (TypePtr, Status)
	TypeDuration() (TypePtr, Status)
	TypeList(elem TypePtr) (TypePtr, Status)
	TypeNullable(t TypePtr) (TypePtr, Status)
}

// Package mgpmock provides a scripted double for mgp.API built on
// testify/mock. Tests script each entry point with On(...).Return(...) and
// assert call counts and arguments, which makes zero-call paths,
// single-point allocation failures, and calendar boundary values
// reproducible without a database host.
package mgpmock

import (
	"github.com/stretchr/testify/mock"

	"github.com/orneryd/bifrost/pkg/mgp"
)

// API is a mock implementation of mgp.API.
type API struct {
	mock.Mock
}

// New returns a mock with no scripted expectations. Calling an unscripted
// entry point panics, which keeps the zero-foreign-call assertions honest.
func New() *API { return &API{} }

func ret[T any](args mock.Arguments, i int) T {
	return args.Get(i).(T)
}

func status(args mock.Arguments, i int) mgp.Status {
	return args.Get(i).(mgp.Status)
}

func (m *API) ValueType(v mgp.ValuePtr) (mgp.ValueType, mgp.Status) {
	args := m.Called(v)
	return ret[mgp.ValueType](args, 0), status(args, 1)
}

func (m *API) ValueGetBool(v mgp.ValuePtr) (bool, mgp.Status) {
	args := m.Called(v)
	return args.Bool(0), status(args, 1)
}

func (m *API) ValueGetInt(v mgp.ValuePtr) (int64, mgp.Status) {
	args := m.Called(v)
	return ret[int64](args, 0), status(args, 1)
}

func (m *API) ValueGetDouble(v mgp.ValuePtr) (float64, mgp.Status) {
	args := m.Called(v)
	return ret[float64](args, 0), status(args, 1)
}

func (m *API) ValueGetString(v mgp.ValuePtr) (string, mgp.Status) {
	args := m.Called(v)
	return args.String(0), status(args, 1)
}

func (m *API) ValueGetList(v mgp.ValuePtr) (mgp.ListPtr, mgp.Status) {
	args := m.Called(v)
	return ret[mgp.ListPtr](args, 0), status(args, 1)
}

func (m *API) ValueGetMap(v mgp.ValuePtr) (mgp.MapPtr, mgp.Status) {
	args := m.Called(v)
	return ret[mgp.MapPtr](args, 0), status(args, 1)
}

func (m *API) ValueGetVertex(v mgp.ValuePtr) (mgp.VertexPtr, mgp.Status) {
	args := m.Called(v)
	return ret[mgp.VertexPtr](args, 0), status(args, 1)
}

func (m *API) ValueGetEdge(v mgp.ValuePtr) (mgp.EdgePtr, mgp.Status) {
	args := m.Called(v)
	return ret[mgp.EdgePtr](args, 0), status(args, 1)
}

func (m *API) ValueGetPath(v mgp.ValuePtr) (mgp.PathPtr, mgp.Status) {
	args := m.Called(v)
	return ret[mgp.PathPtr](args, 0), status(args, 1)
}

func (m *API) ValueGetDate(v mgp.ValuePtr) (mgp.DatePtr, mgp.Status) {
	args := m.Called(v)
	return ret[mgp.DatePtr](args, 0), status(args, 1)
}

func (m *API) ValueGetLocalTime(v mgp.ValuePtr) (mgp.LocalTimePtr, mgp.Status) {
	args := m.Called(v)
	return ret[mgp.LocalTimePtr](args, 0), status(args, 1)
}

func (m *API) ValueGetLocalDateTime(v mgp.ValuePtr) (mgp.LocalDateTimePtr, mgp.Status) {
	args := m.Called(v)
	return ret[mgp.LocalDateTimePtr](args, 0), status(args, 1)
}

func (m *API) ValueGetDuration(v mgp.ValuePtr) (mgp.DurationPtr, mgp.Status) {
	args := m.Called(v)
	return ret[mgp.DurationPtr](args, 0), status(args, 1)
}

func (m *API) ValueMakeNull(mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(mem)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueMakeBool(b bool, mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(b, mem)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueMakeInt(i int64, mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(i, mem)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueMakeDouble(f float64, mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(f, mem)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueMakeString(s string, mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(s, mem)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueMakeList(l mgp.ListPtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(l)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueMakeMap(mp mgp.MapPtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(mp)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueMakeVertex(v mgp.VertexPtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(v)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueMakeEdge(e mgp.EdgePtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(e)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueMakePath(p mgp.PathPtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(p)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueMakeDate(d mgp.DatePtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(d)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueMakeLocalTime(t mgp.LocalTimePtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(t)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueMakeLocalDateTime(dt mgp.LocalDateTimePtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(dt)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueMakeDuration(d mgp.DurationPtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(d)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ValueDestroy(v mgp.ValuePtr) {
	m.Called(v)
}

func (m *API) ListMakeEmpty(capacity uint64, mem mgp.MemoryPtr) (mgp.ListPtr, mgp.Status) {
	args := m.Called(capacity, mem)
	return ret[mgp.ListPtr](args, 0), status(args, 1)
}

func (m *API) ListDestroy(l mgp.ListPtr) {
	m.Called(l)
}

func (m *API) ListSize(l mgp.ListPtr) (uint64, mgp.Status) {
	args := m.Called(l)
	return ret[uint64](args, 0), status(args, 1)
}

func (m *API) ListCapacity(l mgp.ListPtr) (uint64, mgp.Status) {
	args := m.Called(l)
	return ret[uint64](args, 0), status(args, 1)
}

func (m *API) ListAt(l mgp.ListPtr, index uint64) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(l, index)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) ListAppend(l mgp.ListPtr, v mgp.ValuePtr) mgp.Status {
	args := m.Called(l, v)
	return status(args, 0)
}

func (m *API) ListAppendExtend(l mgp.ListPtr, v mgp.ValuePtr) mgp.Status {
	args := m.Called(l, v)
	return status(args, 0)
}

func (m *API) MapMakeEmpty(mem mgp.MemoryPtr) (mgp.MapPtr, mgp.Status) {
	args := m.Called(mem)
	return ret[mgp.MapPtr](args, 0), status(args, 1)
}

func (m *API) MapDestroy(mp mgp.MapPtr) {
	m.Called(mp)
}

func (m *API) MapSize(mp mgp.MapPtr) (uint64, mgp.Status) {
	args := m.Called(mp)
	return ret[uint64](args, 0), status(args, 1)
}

func (m *API) MapAt(mp mgp.MapPtr, key string) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(mp, key)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) MapInsert(mp mgp.MapPtr, key string, v mgp.ValuePtr) mgp.Status {
	args := m.Called(mp, key, v)
	return status(args, 0)
}

func (m *API) MapIterItems(mp mgp.MapPtr, mem mgp.MemoryPtr) (mgp.MapItemsIterPtr, mgp.Status) {
	args := m.Called(mp, mem)
	return ret[mgp.MapItemsIterPtr](args, 0), status(args, 1)
}

func (m *API) MapItemsIterGet(it mgp.MapItemsIterPtr) (mgp.MapItemPtr, mgp.Status) {
	args := m.Called(it)
	return ret[mgp.MapItemPtr](args, 0), status(args, 1)
}

func (m *API) MapItemsIterNext(it mgp.MapItemsIterPtr) (mgp.MapItemPtr, mgp.Status) {
	args := m.Called(it)
	return ret[mgp.MapItemPtr](args, 0), status(args, 1)
}

func (m *API) MapItemsIterDestroy(it mgp.MapItemsIterPtr) {
	m.Called(it)
}

func (m *API) MapItemKey(item mgp.MapItemPtr) (string, mgp.Status) {
	args := m.Called(item)
	return args.String(0), status(args, 1)
}

func (m *API) MapItemValue(item mgp.MapItemPtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(item)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) VertexGetID(v mgp.VertexPtr) (int64, mgp.Status) {
	args := m.Called(v)
	return ret[int64](args, 0), status(args, 1)
}

func (m *API) VertexLabelsCount(v mgp.VertexPtr) (uint64, mgp.Status) {
	args := m.Called(v)
	return ret[uint64](args, 0), status(args, 1)
}

func (m *API) VertexLabelAt(v mgp.VertexPtr, index uint64) (string, mgp.Status) {
	args := m.Called(v, index)
	return args.String(0), status(args, 1)
}

func (m *API) VertexGetProperty(v mgp.VertexPtr, name string, mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(v, name, mem)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) VertexIterProperties(v mgp.VertexPtr, mem mgp.MemoryPtr) (mgp.PropertiesIterPtr, mgp.Status) {
	args := m.Called(v, mem)
	return ret[mgp.PropertiesIterPtr](args, 0), status(args, 1)
}

func (m *API) VertexIterInEdges(v mgp.VertexPtr, mem mgp.MemoryPtr) (mgp.EdgesIterPtr, mgp.Status) {
	args := m.Called(v, mem)
	return ret[mgp.EdgesIterPtr](args, 0), status(args, 1)
}

func (m *API) VertexIterOutEdges(v mgp.VertexPtr, mem mgp.MemoryPtr) (mgp.EdgesIterPtr, mgp.Status) {
	args := m.Called(v, mem)
	return ret[mgp.EdgesIterPtr](args, 0), status(args, 1)
}

func (m *API) VertexCopy(v mgp.VertexPtr, mem mgp.MemoryPtr) (mgp.VertexPtr, mgp.Status) {
	args := m.Called(v, mem)
	return ret[mgp.VertexPtr](args, 0), status(args, 1)
}

func (m *API) VertexDestroy(v mgp.VertexPtr) {
	m.Called(v)
}

func (m *API) EdgeGetType(e mgp.EdgePtr) (string, mgp.Status) {
	args := m.Called(e)
	return args.String(0), status(args, 1)
}

func (m *API) EdgeFromVertex(e mgp.EdgePtr) (mgp.VertexPtr, mgp.Status) {
	args := m.Called(e)
	return ret[mgp.VertexPtr](args, 0), status(args, 1)
}

func (m *API) EdgeToVertex(e mgp.EdgePtr) (mgp.VertexPtr, mgp.Status) {
	args := m.Called(e)
	return ret[mgp.VertexPtr](args, 0), status(args, 1)
}

func (m *API) EdgeGetProperty(e mgp.EdgePtr, name string, mem mgp.MemoryPtr) (mgp.ValuePtr, mgp.Status) {
	args := m.Called(e, name, mem)
	return ret[mgp.ValuePtr](args, 0), status(args, 1)
}

func (m *API) EdgeIterProperties(e mgp.EdgePtr, mem mgp.MemoryPtr) (mgp.PropertiesIterPtr, mgp.Status) {
	args := m.Called(e, mem)
	return ret[mgp.PropertiesIterPtr](args, 0), status(args, 1)
}

func (m *API) EdgeCopy(e mgp.EdgePtr, mem mgp.MemoryPtr) (mgp.EdgePtr, mgp.Status) {
	args := m.Called(e, mem)
	return ret[mgp.EdgePtr](args, 0), status(args, 1)
}

func (m *API) EdgeDestroy(e mgp.EdgePtr) {
	m.Called(e)
}

func (m *API) PathSize(p mgp.PathPtr) (uint64, mgp.Status) {
	args := m.Called(p)
	return ret[uint64](args, 0), status(args, 1)
}

func (m *API) PathVertexAt(p mgp.PathPtr, index uint64) (mgp.VertexPtr, mgp.Status) {
	args := m.Called(p, index)
	return ret[mgp.VertexPtr](args, 0), status(args, 1)
}

func (m *API) PathEdgeAt(p mgp.PathPtr, index uint64) (mgp.EdgePtr, mgp.Status) {
	args := m.Called(p, index)
	return ret[mgp.EdgePtr](args, 0), status(args, 1)
}

func (m *API) PathCopy(p mgp.PathPtr, mem mgp.MemoryPtr) (mgp.PathPtr, mgp.Status) {
	args := m.Called(p, mem)
	return ret[mgp.PathPtr](args, 0), status(args, 1)
}

func (m *API) PathDestroy(p mgp.PathPtr) {
	m.Called(p)
}

func (m *API) PropertiesIterGet(it mgp.PropertiesIterPtr) (*mgp.Property, mgp.Status) {
	args := m.Called(it)
	var p *mgp.Property
	if args.Get(0) != nil {
		p = args.Get(0).(*mgp.Property)
	}
	return p, status(args, 1)
}

func (m *API) PropertiesIterNext(it mgp.PropertiesIterPtr) (*mgp.Property, mgp.Status) {
	args := m.Called(it)
	var p *mgp.Property
	if args.Get(0) != nil {
		p = args.Get(0).(*mgp.Property)
	}
	return p, status(args, 1)
}

func (m *API) PropertiesIterDestroy(it mgp.PropertiesIterPtr) {
	m.Called(it)
}

func (m *API) EdgesIterGet(it mgp.EdgesIterPtr) (mgp.EdgePtr, mgp.Status) {
	args := m.Called(it)
	return ret[mgp.EdgePtr](args, 0), status(args, 1)
}

func (m *API) EdgesIterNext(it mgp.EdgesIterPtr) (mgp.EdgePtr, mgp.Status) {
	args := m.Called(it)
	return ret[mgp.EdgePtr](args, 0), status(args, 1)
}

func (m *API) EdgesIterDestroy(it mgp.EdgesIterPtr) {
	m.Called(it)
}

func (m *API) VerticesIterGet(it mgp.VerticesIterPtr) (mgp.VertexPtr, mgp.Status) {
	args := m.Called(it)
	return ret[mgp.VertexPtr](args, 0), status(args, 1)
}

func (m *API) VerticesIterNext(it mgp.VerticesIterPtr) (mgp.VertexPtr, mgp.Status) {
	args := m.Called(it)
	return ret[mgp.VertexPtr](args, 0), status(args, 1)
}

func (m *API) VerticesIterDestroy(it mgp.VerticesIterPtr) {
	m.Called(it)
}

func (m *API) GraphVertexByID(g mgp.GraphPtr, id int64, mem mgp.MemoryPtr) (mgp.VertexPtr, mgp.Status) {
	args := m.Called(g, id, mem)
	return ret[mgp.VertexPtr](args, 0), status(args, 1)
}

func (m *API) GraphIterVertices(g mgp.GraphPtr, mem mgp.MemoryPtr) (mgp.VerticesIterPtr, mgp.Status) {
	args := m.Called(g, mem)
	return ret[mgp.VerticesIterPtr](args, 0), status(args, 1)
}

func (m *API) DateFromParameters(p *mgp.DateParameters, mem mgp.MemoryPtr) (mgp.DatePtr, mgp.Status) {
	args := m.Called(p, mem)
	return ret[mgp.DatePtr](args, 0), status(args, 1)
}

func (m *API) DateGetYear(d mgp.DatePtr) (int32, mgp.Status) {
	args := m.Called(d)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) DateGetMonth(d mgp.DatePtr) (int32, mgp.Status) {
	args := m.Called(d)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) DateGetDay(d mgp.DatePtr) (int32, mgp.Status) {
	args := m.Called(d)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) DateDestroy(d mgp.DatePtr) {
	m.Called(d)
}

func (m *API) LocalTimeFromParameters(p *mgp.LocalTimeParameters, mem mgp.MemoryPtr) (mgp.LocalTimePtr, mgp.Status) {
	args := m.Called(p, mem)
	return ret[mgp.LocalTimePtr](args, 0), status(args, 1)
}

func (m *API) LocalTimeGetHour(t mgp.LocalTimePtr) (int32, mgp.Status) {
	args := m.Called(t)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) LocalTimeGetMinute(t mgp.LocalTimePtr) (int32, mgp.Status) {
	args := m.Called(t)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) LocalTimeGetSecond(t mgp.LocalTimePtr) (int32, mgp.Status) {
	args := m.Called(t)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) LocalTimeGetMillisecond(t mgp.LocalTimePtr) (int32, mgp.Status) {
	args := m.Called(t)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) LocalTimeGetMicrosecond(t mgp.LocalTimePtr) (int32, mgp.Status) {
	args := m.Called(t)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) LocalTimeDestroy(t mgp.LocalTimePtr) {
	m.Called(t)
}

func (m *API) LocalDateTimeFromParameters(p *mgp.LocalDateTimeParameters, mem mgp.MemoryPtr) (mgp.LocalDateTimePtr, mgp.Status) {
	args := m.Called(p, mem)
	return ret[mgp.LocalDateTimePtr](args, 0), status(args, 1)
}

func (m *API) LocalDateTimeGetYear(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	args := m.Called(dt)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) LocalDateTimeGetMonth(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	args := m.Called(dt)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) LocalDateTimeGetDay(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	args := m.Called(dt)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) LocalDateTimeGetHour(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	args := m.Called(dt)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) LocalDateTimeGetMinute(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	args := m.Called(dt)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) LocalDateTimeGetSecond(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	args := m.Called(dt)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) LocalDateTimeGetMillisecond(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	args := m.Called(dt)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) LocalDateTimeGetMicrosecond(dt mgp.LocalDateTimePtr) (int32, mgp.Status) {
	args := m.Called(dt)
	return ret[int32](args, 0), status(args, 1)
}

func (m *API) LocalDateTimeDestroy(dt mgp.LocalDateTimePtr) {
	m.Called(dt)
}

func (m *API) DurationFromMicroseconds(micros int64, mem mgp.MemoryPtr) (mgp.DurationPtr, mgp.Status) {
	args := m.Called(micros, mem)
	return ret[mgp.DurationPtr](args, 0), status(args, 1)
}

func (m *API) DurationGetMicroseconds(d mgp.DurationPtr) (int64, mgp.Status) {
	args := m.Called(d)
	return ret[int64](args, 0), status(args, 1)
}

func (m *API) DurationDestroy(d mgp.DurationPtr) {
	m.Called(d)
}

func (m *API) ResultNewRecord(r mgp.ResultPtr) (mgp.RecordPtr, mgp.Status) {
	args := m.Called(r)
	return ret[mgp.RecordPtr](args, 0), status(args, 1)
}

func (m *API) RecordInsert(rec mgp.RecordPtr, field string, v mgp.ValuePtr) mgp.Status {
	args := m.Called(rec, field, v)
	return status(args, 0)
}

func (m *API) ResultSetErrorMsg(r mgp.ResultPtr, msg string) mgp.Status {
	args := m.Called(r, msg)
	return status(args, 0)
}

func (m *API) ModuleAddReadProcedure(mod mgp.ModulePtr, name string) (mgp.ProcPtr, mgp.Status) {
	args := m.Called(mod, name)
	return ret[mgp.ProcPtr](args, 0), status(args, 1)
}

func (m *API) ProcAddArg(p mgp.ProcPtr, name string, t mgp.TypePtr) mgp.Status {
	args := m.Called(p, name, t)
	return status(args, 0)
}

func (m *API) ProcAddOptArg(p mgp.ProcPtr, name string, t mgp.TypePtr, def mgp.ValuePtr) mgp.Status {
	args := m.Called(p, name, t, def)
	return status(args, 0)
}

func (m *API) ProcAddResult(p mgp.ProcPtr, name string, t mgp.TypePtr) mgp.Status {
	args := m.Called(p, name, t)
	return status(args, 0)
}

func (m *API) TypeAny() (mgp.TypePtr, mgp.Status) {
	args := m.Called()
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypeBool() (mgp.TypePtr, mgp.Status) {
	args := m.Called()
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypeInt() (mgp.TypePtr, mgp.Status) {
	args := m.Called()
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypeFloat() (mgp.TypePtr, mgp.Status) {
	args := m.Called()
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypeString() (mgp.TypePtr, mgp.Status) {
	args := m.Called()
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypeMap() (mgp.TypePtr, mgp.Status) {
	args := m.Called()
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypeNode() (mgp.TypePtr, mgp.Status) {
	args := m.Called()
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypeRelationship() (mgp.TypePtr, mgp.Status) {
	args := m.Called()
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypePath() (mgp.TypePtr, mgp.Status) {
	args := m.Called()
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypeDate() (mgp.TypePtr, mgp.Status) {
	args := m.Called()
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypeLocalTime() (mgp.TypePtr, mgp.Status) {
	args := m.Called()
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypeLocalDateTime() (mgp.TypePtr, mgp.Status) {
	args := m.Called()
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypeDuration() (mgp.TypePtr, mgp.Status) {
	args := m.Called()
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypeList(elem mgp.TypePtr) (mgp.TypePtr, mgp.Status) {
	args := m.Called(elem)
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

func (m *API) TypeNullable(t mgp.TypePtr) (mgp.TypePtr, mgp.Status) {
	args := m.Called(t)
	return ret[mgp.TypePtr](args, 0), status(args, 1)
}

var _ mgp.API = (*API)(nil)

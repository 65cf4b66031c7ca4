package bifrost

import (
	"github.com/orneryd/bifrost/pkg/mgp"
)

// Value is the closed variant over every property value type the host
// understands. Scalar payloads are copied by value when a Value is decoded;
// handle-bearing payloads wrap a secondary owned or borrowed object.
//
// There is no implicit coercion: reading a Value as the wrong variant
// returns ErrTypeMismatch, distinguishable from allocation and lookup
// failures.
type Value struct {
	kind mgp.ValueType

	boolVal   bool
	intVal    int64
	doubleVal float64
	stringVal string

	listVal          *List
	mapVal           *Map
	vertexVal        *Vertex
	edgeVal          *Edge
	pathVal          *Path
	dateVal          *Date
	localTimeVal     *LocalTime
	localDateTimeVal *LocalDateTime
	durationVal      *Duration
}

// Native constructors, used for optional-parameter defaults and for values
// built by procedure code rather than decoded from the host.

func NullValue() *Value             { return &Value{kind: mgp.ValueTypeNull} }
func BoolValue(b bool) *Value       { return &Value{kind: mgp.ValueTypeBool, boolVal: b} }
func IntValue(i int64) *Value       { return &Value{kind: mgp.ValueTypeInt, intVal: i} }
func DoubleValue(f float64) *Value  { return &Value{kind: mgp.ValueTypeDouble, doubleVal: f} }
func StringValue(s string) *Value   { return &Value{kind: mgp.ValueTypeString, stringVal: s} }
func ListValue(l *List) *Value      { return &Value{kind: mgp.ValueTypeList, listVal: l} }
func MapValue(m *Map) *Value        { return &Value{kind: mgp.ValueTypeMap, mapVal: m} }
func VertexValue(v *Vertex) *Value  { return &Value{kind: mgp.ValueTypeVertex, vertexVal: v} }
func EdgeValue(e *Edge) *Value      { return &Value{kind: mgp.ValueTypeEdge, edgeVal: e} }
func DateValue(d *Date) *Value      { return &Value{kind: mgp.ValueTypeDate, dateVal: d} }
func DurationValue(d *Duration) *Value {
	return &Value{kind: mgp.ValueTypeDuration, durationVal: d}
}

// Kind returns the variant tag.
func (v *Value) Kind() mgp.ValueType { return v.kind }

// IsNull reports whether the value is the null variant.
func (v *Value) IsNull() bool { return v.kind == mgp.ValueTypeNull }

func (v *Value) Bool() (bool, error) {
	if v.kind != mgp.ValueTypeBool {
		return false, mismatchError(mgp.ValueTypeBool, v.kind)
	}
	return v.boolVal, nil
}

func (v *Value) Int() (int64, error) {
	if v.kind != mgp.ValueTypeInt {
		return 0, mismatchError(mgp.ValueTypeInt, v.kind)
	}
	return v.intVal, nil
}

func (v *Value) Double() (float64, error) {
	if v.kind != mgp.ValueTypeDouble {
		return 0, mismatchError(mgp.ValueTypeDouble, v.kind)
	}
	return v.doubleVal, nil
}

func (v *Value) String() (string, error) {
	if v.kind != mgp.ValueTypeString {
		return "", mismatchError(mgp.ValueTypeString, v.kind)
	}
	return v.stringVal, nil
}

func (v *Value) List() (*List, error) {
	if v.kind != mgp.ValueTypeList {
		return nil, mismatchError(mgp.ValueTypeList, v.kind)
	}
	return v.listVal, nil
}

func (v *Value) Map() (*Map, error) {
	if v.kind != mgp.ValueTypeMap {
		return nil, mismatchError(mgp.ValueTypeMap, v.kind)
	}
	return v.mapVal, nil
}

func (v *Value) Vertex() (*Vertex, error) {
	if v.kind != mgp.ValueTypeVertex {
		return nil, mismatchError(mgp.ValueTypeVertex, v.kind)
	}
	return v.vertexVal, nil
}

func (v *Value) Edge() (*Edge, error) {
	if v.kind != mgp.ValueTypeEdge {
		return nil, mismatchError(mgp.ValueTypeEdge, v.kind)
	}
	return v.edgeVal, nil
}

func (v *Value) Path() (*Path, error) {
	if v.kind != mgp.ValueTypePath {
		return nil, mismatchError(mgp.ValueTypePath, v.kind)
	}
	return v.pathVal, nil
}

func (v *Value) Date() (*Date, error) {
	if v.kind != mgp.ValueTypeDate {
		return nil, mismatchError(mgp.ValueTypeDate, v.kind)
	}
	return v.dateVal, nil
}

func (v *Value) LocalTime() (*LocalTime, error) {
	if v.kind != mgp.ValueTypeLocalTime {
		return nil, mismatchError(mgp.ValueTypeLocalTime, v.kind)
	}
	return v.localTimeVal, nil
}

func (v *Value) LocalDateTime() (*LocalDateTime, error) {
	if v.kind != mgp.ValueTypeLocalDateTime {
		return nil, mismatchError(mgp.ValueTypeLocalDateTime, v.kind)
	}
	return v.localDateTimeVal, nil
}

func (v *Value) Duration() (*Duration, error) {
	if v.kind != mgp.ValueTypeDuration {
		return nil, mismatchError(mgp.ValueTypeDuration, v.kind)
	}
	return v.durationVal, nil
}

// newValue decodes a borrowed foreign value handle. One foreign query reads
// the variant tag; the tag selects the constructor. Scalars are copied out,
// handle-bearing variants are wrapped as secondary objects: lists, maps,
// vertices, edges and paths as owned copies, temporal values as borrowed
// views into the enclosing host-owned context.
func newValue(g *Graph, ptr mgp.ValuePtr) (*Value, error) {
	kind, st := g.api.ValueType(ptr)
	if !st.OK() {
		return nil, statusError(ErrReadValue, st)
	}

	switch kind {
	case mgp.ValueTypeNull:
		return NullValue(), nil

	case mgp.ValueTypeBool:
		b, st := g.api.ValueGetBool(ptr)
		if !st.OK() {
			return nil, statusError(ErrReadValue, st)
		}
		return BoolValue(b), nil

	case mgp.ValueTypeInt:
		i, st := g.api.ValueGetInt(ptr)
		if !st.OK() {
			return nil, statusError(ErrReadValue, st)
		}
		return IntValue(i), nil

	case mgp.ValueTypeDouble:
		f, st := g.api.ValueGetDouble(ptr)
		if !st.OK() {
			return nil, statusError(ErrReadValue, st)
		}
		return DoubleValue(f), nil

	case mgp.ValueTypeString:
		s, st := g.api.ValueGetString(ptr)
		if !st.OK() {
			return nil, statusError(ErrReadValue, st)
		}
		return StringValue(s), nil

	case mgp.ValueTypeList:
		lp, st := g.api.ValueGetList(ptr)
		if !st.OK() {
			return nil, statusError(ErrReadValue, st)
		}
		copied, err := copyList(g, lp)
		if err != nil {
			return nil, err
		}
		return ListValue(copied), nil

	case mgp.ValueTypeMap:
		mp, st := g.api.ValueGetMap(ptr)
		if !st.OK() {
			return nil, statusError(ErrReadValue, st)
		}
		copied, err := copyMap(g, mp)
		if err != nil {
			return nil, err
		}
		return MapValue(copied), nil

	case mgp.ValueTypeVertex:
		vp, st := g.api.ValueGetVertex(ptr)
		if !st.OK() {
			return nil, statusError(ErrReadValue, st)
		}
		copied, st := g.api.VertexCopy(vp, g.memory)
		if !st.OK() {
			return nil, statusError(ErrCopyVertex, st)
		}
		return VertexValue(newOwnedVertex(g, copied)), nil

	case mgp.ValueTypeEdge:
		ep, st := g.api.ValueGetEdge(ptr)
		if !st.OK() {
			return nil, statusError(ErrReadValue, st)
		}
		copied, st := g.api.EdgeCopy(ep, g.memory)
		if !st.OK() {
			return nil, statusError(ErrCopyEdge, st)
		}
		return EdgeValue(newOwnedEdge(g, copied)), nil

	case mgp.ValueTypePath:
		pp, st := g.api.ValueGetPath(ptr)
		if !st.OK() {
			return nil, statusError(ErrReadValue, st)
		}
		copied, st := g.api.PathCopy(pp, g.memory)
		if !st.OK() {
			return nil, statusError(ErrCopyPath, st)
		}
		return &Value{kind: mgp.ValueTypePath, pathVal: newOwnedPath(g, copied)}, nil

	case mgp.ValueTypeDate:
		dp, st := g.api.ValueGetDate(ptr)
		if !st.OK() {
			return nil, statusError(ErrReadValue, st)
		}
		return DateValue(BorrowedDate(g, dp)), nil

	case mgp.ValueTypeLocalTime:
		tp, st := g.api.ValueGetLocalTime(ptr)
		if !st.OK() {
			return nil, statusError(ErrReadValue, st)
		}
		return &Value{kind: mgp.ValueTypeLocalTime, localTimeVal: BorrowedLocalTime(g, tp)}, nil

	case mgp.ValueTypeLocalDateTime:
		dtp, st := g.api.ValueGetLocalDateTime(ptr)
		if !st.OK() {
			return nil, statusError(ErrReadValue, st)
		}
		return &Value{kind: mgp.ValueTypeLocalDateTime, localDateTimeVal: BorrowedLocalDateTime(g, dtp)}, nil

	case mgp.ValueTypeDuration:
		dp, st := g.api.ValueGetDuration(ptr)
		if !st.OK() {
			return nil, statusError(ErrReadValue, st)
		}
		return DurationValue(BorrowedDuration(g, dp)), nil
	}
	return nil, statusError(ErrReadValue, mgp.StatusLogicError)
}

// encodeValue allocates an owned foreign value from a native Value, for
// insertion into records, lists and maps. Handle-bearing variants are
// explicitly copied before the foreign value takes ownership, since foreign
// objects are not movable across owners. The caller destroys the returned
// handle once the host has consumed it.
func encodeValue(g *Graph, v *Value) (mgp.ValuePtr, error) {
	api, mem := g.api, g.memory
	switch v.kind {
	case mgp.ValueTypeNull:
		return makeValue(api.ValueMakeNull(mem))(ErrAllocateNullValue)

	case mgp.ValueTypeBool:
		return makeValue(api.ValueMakeBool(v.boolVal, mem))(ErrAllocateBoolValue)

	case mgp.ValueTypeInt:
		return makeValue(api.ValueMakeInt(v.intVal, mem))(ErrAllocateIntValue)

	case mgp.ValueTypeDouble:
		return makeValue(api.ValueMakeDouble(v.doubleVal, mem))(ErrAllocateDoubleValue)

	case mgp.ValueTypeString:
		s, err := cString(v.stringVal)
		if err != nil {
			return 0, err
		}
		return makeValue(api.ValueMakeString(s, mem))(ErrAllocateStringValue)

	case mgp.ValueTypeList:
		copied, err := copyListPtr(g, v.listVal.ptr)
		if err != nil {
			return 0, err
		}
		ptr, st := api.ValueMakeList(copied)
		if !st.OK() {
			api.ListDestroy(copied)
			return 0, statusError(ErrAllocateListValue, st)
		}
		return ptr, nil

	case mgp.ValueTypeMap:
		copied, err := copyMapPtr(g, v.mapVal.ptr)
		if err != nil {
			return 0, err
		}
		ptr, st := api.ValueMakeMap(copied)
		if !st.OK() {
			api.MapDestroy(copied)
			return 0, statusError(ErrAllocateMapValue, st)
		}
		return ptr, nil

	case mgp.ValueTypeVertex:
		copied, st := api.VertexCopy(v.vertexVal.ptr, mem)
		if !st.OK() {
			return 0, statusError(ErrCopyVertex, st)
		}
		ptr, st := api.ValueMakeVertex(copied)
		if !st.OK() {
			api.VertexDestroy(copied)
			return 0, statusError(ErrAllocateVertexValue, st)
		}
		return ptr, nil

	case mgp.ValueTypeEdge:
		copied, st := api.EdgeCopy(v.edgeVal.ptr, mem)
		if !st.OK() {
			return 0, statusError(ErrCopyEdge, st)
		}
		ptr, st := api.ValueMakeEdge(copied)
		if !st.OK() {
			api.EdgeDestroy(copied)
			return 0, statusError(ErrAllocateEdgeValue, st)
		}
		return ptr, nil

	case mgp.ValueTypePath:
		copied, st := api.PathCopy(v.pathVal.ptr, mem)
		if !st.OK() {
			return 0, statusError(ErrCopyPath, st)
		}
		ptr, st := api.ValueMakePath(copied)
		if !st.OK() {
			api.PathDestroy(copied)
			return 0, statusError(ErrAllocatePathValue, st)
		}
		return ptr, nil

	case mgp.ValueTypeDate:
		copied, err := v.dateVal.reconstruct()
		if err != nil {
			return 0, err
		}
		ptr, st := api.ValueMakeDate(copied)
		if !st.OK() {
			api.DateDestroy(copied)
			return 0, statusError(ErrAllocateDateValue, st)
		}
		return ptr, nil

	case mgp.ValueTypeLocalTime:
		copied, err := v.localTimeVal.reconstruct()
		if err != nil {
			return 0, err
		}
		ptr, st := api.ValueMakeLocalTime(copied)
		if !st.OK() {
			api.LocalTimeDestroy(copied)
			return 0, statusError(ErrAllocateLocalTimeValue, st)
		}
		return ptr, nil

	case mgp.ValueTypeLocalDateTime:
		copied, err := v.localDateTimeVal.reconstruct()
		if err != nil {
			return 0, err
		}
		ptr, st := api.ValueMakeLocalDateTime(copied)
		if !st.OK() {
			api.LocalDateTimeDestroy(copied)
			return 0, statusError(ErrAllocateLocalDateTimeValue, st)
		}
		return ptr, nil

	case mgp.ValueTypeDuration:
		copied, err := v.durationVal.reconstruct()
		if err != nil {
			return 0, err
		}
		ptr, st := api.ValueMakeDuration(copied)
		if !st.OK() {
			api.DurationDestroy(copied)
			return 0, statusError(ErrAllocateDurationValue, st)
		}
		return ptr, nil
	}
	return 0, statusError(ErrReadValue, mgp.StatusLogicError)
}

// makeValue adapts a (ptr, status) pair into the one-kind-per-variant
// translation used by encodeValue's scalar arms.
func makeValue(ptr mgp.ValuePtr, st mgp.Status) func(kind error) (mgp.ValuePtr, error) {
	return func(kind error) (mgp.ValuePtr, error) {
		if !st.OK() {
			return 0, statusError(kind, st)
		}
		return ptr, nil
	}
}

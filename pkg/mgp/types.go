// Package mgp declares the foreign procedure ABI of the graph database host:
// opaque handles, status codes, variant tags, and the API seam through which
// every foreign entry point is invoked.
//
// The package carries no safety logic of its own. Ownership discipline, error
// translation, and iteration live in pkg/bifrost; pkg/mgp only fixes the
// shape of the boundary so that the production binding (purego against the
// host process image) and the scripted test double (mgpmock) are
// interchangeable at identical call sites.
package mgp

// Opaque foreign handles. The host hands these out and interprets them; this
// side never dereferences one.
type (
	GraphPtr          uintptr
	VertexPtr         uintptr
	EdgePtr           uintptr
	PathPtr           uintptr
	ListPtr           uintptr
	MapPtr            uintptr
	MapItemPtr        uintptr
	ValuePtr          uintptr
	ResultPtr         uintptr
	RecordPtr         uintptr
	MemoryPtr         uintptr
	DatePtr           uintptr
	LocalTimePtr      uintptr
	LocalDateTimePtr  uintptr
	DurationPtr       uintptr
	PropertiesIterPtr uintptr
	EdgesIterPtr      uintptr
	VerticesIterPtr   uintptr
	MapItemsIterPtr   uintptr
	ModulePtr         uintptr
	ProcPtr           uintptr
	TypePtr           uintptr
)

// ValueType is the host's variant tag for a value handle.
type ValueType int32

const (
	ValueTypeNull ValueType = iota
	ValueTypeBool
	ValueTypeInt
	ValueTypeDouble
	ValueTypeString
	ValueTypeList
	ValueTypeMap
	ValueTypeVertex
	ValueTypeEdge
	ValueTypePath
	ValueTypeDate
	ValueTypeLocalTime
	ValueTypeLocalDateTime
	ValueTypeDuration
)

var valueTypeNames = map[ValueType]string{
	ValueTypeNull:          "null",
	ValueTypeBool:          "bool",
	ValueTypeInt:           "int",
	ValueTypeDouble:        "double",
	ValueTypeString:        "string",
	ValueTypeList:          "list",
	ValueTypeMap:           "map",
	ValueTypeVertex:        "vertex",
	ValueTypeEdge:          "edge",
	ValueTypePath:          "path",
	ValueTypeDate:          "date",
	ValueTypeLocalTime:     "local time",
	ValueTypeLocalDateTime: "local date time",
	ValueTypeDuration:      "duration",
}

func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}
	return "invalid value type"
}

// DateParameters mirrors the host's date construction struct.
type DateParameters struct {
	Year  int32
	Month int32
	Day   int32
}

// LocalTimeParameters mirrors the host's time-of-day construction struct.
// Millisecond and Microsecond are independent components, each in [0, 999].
type LocalTimeParameters struct {
	Hour        int32
	Minute      int32
	Second      int32
	Millisecond int32
	Microsecond int32
}

// LocalDateTimeParameters combines a date and a time of day.
type LocalDateTimeParameters struct {
	Date      DateParameters
	LocalTime LocalTimeParameters
}

// Property is one entry produced by a properties iterator: the property name
// and a borrowed value handle, valid until the iterator advances.
type Property struct {
	Name  string
	Value ValuePtr
}

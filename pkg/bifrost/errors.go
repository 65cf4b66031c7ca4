package bifrost

import (
	"errors"
	"fmt"

	"github.com/orneryd/bifrost/pkg/mgp"
)

// The error taxonomy is closed: every foreign status translates at its call
// site into exactly one of these kinds, so callers can tell an allocation
// failure from a lookup failure from a type mismatch without parsing
// messages. There is no generic fallback kind and no retry; every failure is
// terminal for the operation that produced it.
var (
	// Value model.
	ErrTypeMismatch = errors.New("value type mismatch")
	ErrReadValue    = errors.New("unable to read value payload")

	// Per-variant allocation failures when building a foreign value.
	ErrAllocateNullValue          = errors.New("unable to allocate null value")
	ErrAllocateBoolValue          = errors.New("unable to allocate bool value")
	ErrAllocateIntValue           = errors.New("unable to allocate integer value")
	ErrAllocateDoubleValue        = errors.New("unable to allocate double value")
	ErrAllocateStringValue        = errors.New("unable to allocate string value")
	ErrAllocateListValue          = errors.New("unable to allocate list value")
	ErrAllocateMapValue           = errors.New("unable to allocate map value")
	ErrAllocateVertexValue        = errors.New("unable to allocate vertex value")
	ErrAllocateEdgeValue          = errors.New("unable to allocate edge value")
	ErrAllocatePathValue          = errors.New("unable to allocate path value")
	ErrAllocateDateValue          = errors.New("unable to allocate date value")
	ErrAllocateLocalTimeValue     = errors.New("unable to allocate local time value")
	ErrAllocateLocalDateTimeValue = errors.New("unable to allocate local date time value")
	ErrAllocateDurationValue      = errors.New("unable to allocate duration value")

	// Lists.
	ErrCreateList        = errors.New("unable to allocate new list")
	ErrCopyList          = errors.New("unable to copy list")
	ErrListSize          = errors.New("unable to read list size")
	ErrListCapacity      = errors.New("unable to read list capacity")
	ErrOutOfBoundIndex   = errors.New("out of bound index")
	ErrListElementLookup = errors.New("unable to access list element")
	ErrListAppend        = errors.New("unable to append list value")
	ErrListAppendExtend  = errors.New("unable to append-extend list value")

	// Maps.
	ErrCreateMap              = errors.New("unable to allocate new map")
	ErrCopyMap                = errors.New("unable to copy map")
	ErrMapSize                = errors.New("unable to read map size")
	ErrMapElementLookup       = errors.New("unable to access map element")
	ErrMapInsert              = errors.New("unable to insert map value")
	ErrCreateMapItemsIterator = errors.New("unable to create map items iterator")
	ErrReadMapItem            = errors.New("unable to read map item")

	// Vertices.
	ErrReadVertexID                   = errors.New("unable to read vertex id")
	ErrReadVertexLabels               = errors.New("unable to read vertex labels")
	ErrOutOfBoundLabelIndex           = errors.New("out of bound label index")
	ErrCopyVertex                     = errors.New("unable to copy vertex")
	ErrVertexPropertyNameAllocation   = errors.New("unable to return vertex property because of name allocation error")
	ErrVertexPropertyValueAllocation  = errors.New("unable to return vertex property because of value allocation error")
	ErrVertexPropertyValueCreation    = errors.New("unable to return vertex property because of value creation error")
	ErrCreateVertexPropertiesIterator = errors.New("unable to return vertex properties iterator")
	ErrCreateVertexInEdgesIterator    = errors.New("unable to return vertex in_edges iterator")
	ErrCreateVertexOutEdgesIterator   = errors.New("unable to return vertex out_edges iterator")

	// Edges.
	ErrReadEdgeType                 = errors.New("unable to read edge type")
	ErrReadEdgeEndpoint             = errors.New("unable to read edge endpoint")
	ErrCopyEdge                     = errors.New("unable to copy edge")
	ErrEdgePropertyNameAllocation   = errors.New("unable to return edge property because of name allocation error")
	ErrEdgePropertyValueAllocation  = errors.New("unable to return edge property because of value allocation error")
	ErrEdgePropertyValueCreation    = errors.New("unable to return edge property because of value creation error")
	ErrCreateEdgePropertiesIterator = errors.New("unable to return edge properties iterator")

	// Paths.
	ErrPathSize          = errors.New("unable to read path length")
	ErrPathElementLookup = errors.New("unable to access path element")
	ErrCopyPath          = errors.New("unable to copy path")

	// Graph traversal.
	ErrCreateGraphVerticesIterator = errors.New("unable to create graph vertices iterator")
	ErrFindVertex                  = errors.New("unable to find vertex by id")
	ErrAdvanceIterator             = errors.New("unable to advance iterator")

	// Temporal construction and read-back, one kind per type covering both
	// range violations and foreign allocation failures.
	ErrCreateDate          = errors.New("unable to create date")
	ErrCreateLocalTime     = errors.New("unable to create local time")
	ErrCreateLocalDateTime = errors.New("unable to create local date time")
	ErrCreateDuration      = errors.New("unable to create duration")
	ErrReadDate            = errors.New("unable to read date")
	ErrReadLocalTime       = errors.New("unable to read local time")
	ErrReadLocalDateTime   = errors.New("unable to read local date time")
	ErrReadDuration        = errors.New("unable to read duration")

	// Result records.
	ErrCreateResultRecord = errors.New("unable to create result record")
	ErrPrepareResult      = errors.New("unable to prepare result record field")

	// Registration and dispatch.
	ErrStringConversion          = errors.New("unable to convert string for foreign call")
	ErrAddProcedure              = errors.New("unable to register procedure")
	ErrAddProcedureParameterType = errors.New("unable to add a type of procedure parameter")
	ErrDuplicateProcedure        = errors.New("procedure already registered")
	ErrUnknownProcedure          = errors.New("unknown procedure")
)

// statusError wraps kind with the foreign status that produced it. The kind
// stays the branch target; the status is diagnostic detail.
func statusError(kind error, st mgp.Status) error {
	return fmt.Errorf("%w: %s", kind, st)
}

func mismatchError(want, got mgp.ValueType) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, want, got)
}

package mgp

// Status is the result code every foreign entry point returns.
//
// The set is closed: the host never returns a code outside this list, and
// output parameters are meaningfully populated only when the code is
// StatusNoError.
type Status int32

const (
	StatusNoError Status = iota
	StatusUnknownError
	StatusUnableToAllocate
	StatusInsufficientBuffer
	StatusOutOfRange
	StatusLogicError
	StatusDeletedObject
	StatusInvalidArgument
	StatusKeyAlreadyExists
	StatusImmutableObject
	StatusValueConversion
	StatusSerializationError
)

var statusNames = map[Status]string{
	StatusNoError:            "no error",
	StatusUnknownError:       "unknown error",
	StatusUnableToAllocate:   "unable to allocate",
	StatusInsufficientBuffer: "insufficient buffer",
	StatusOutOfRange:         "out of range",
	StatusLogicError:         "logic error",
	StatusDeletedObject:      "deleted object",
	StatusInvalidArgument:    "invalid argument",
	StatusKeyAlreadyExists:   "key already exists",
	StatusImmutableObject:    "immutable object",
	StatusValueConversion:    "value conversion error",
	StatusSerializationError: "serialization error",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "invalid status"
}

// OK reports whether the call succeeded.
func (s Status) OK() bool { return s == StatusNoError }

package bifrost

import (
	"time"

	"github.com/orneryd/bifrost/pkg/mgp"
)

// Record is one result row under construction. Records are owned by the
// host's result set; there is nothing to release.
type Record struct {
	g   *Graph
	ptr mgp.RecordPtr
}

// NewRecord appends a fresh row to the procedure's result set.
func (g *Graph) NewRecord() (*Record, error) {
	ptr, st := g.api.ResultNewRecord(g.result)
	if !st.OK() {
		return nil, statusError(ErrCreateResultRecord, st)
	}
	return &Record{g: g, ptr: ptr}, nil
}

// Insert writes v under the named result field. The foreign value built for
// the insert is destroyed before returning, whether or not the insert
// succeeded; the host copies on insert.
func (r *Record) Insert(field string, v *Value) error {
	name, err := cString(field)
	if err != nil {
		return err
	}
	ptr, err := encodeValue(r.g, v)
	if err != nil {
		return err
	}
	defer r.g.api.ValueDestroy(ptr)
	if st := r.g.api.RecordInsert(r.ptr, name, ptr); !st.OK() {
		return statusError(ErrPrepareResult, st)
	}
	return nil
}

// Typed convenience writers over Insert.

func (r *Record) InsertNull(field string) error {
	return r.Insert(field, NullValue())
}

func (r *Record) InsertBool(field string, b bool) error {
	return r.Insert(field, BoolValue(b))
}

func (r *Record) InsertInt(field string, i int64) error {
	return r.Insert(field, IntValue(i))
}

func (r *Record) InsertDouble(field string, d float64) error {
	return r.Insert(field, DoubleValue(d))
}

func (r *Record) InsertString(field, s string) error {
	return r.Insert(field, StringValue(s))
}

func (r *Record) InsertList(field string, l *List) error {
	return r.Insert(field, ListValue(l))
}

func (r *Record) InsertMap(field string, m *Map) error {
	return r.Insert(field, MapValue(m))
}

func (r *Record) InsertVertex(field string, v *Vertex) error {
	return r.Insert(field, VertexValue(v))
}

func (r *Record) InsertEdge(field string, e *Edge) error {
	return r.Insert(field, EdgeValue(e))
}

func (r *Record) InsertDate(field string, t time.Time) error {
	d, err := DateFromTime(r.g, t)
	if err != nil {
		return err
	}
	defer d.Release()
	return r.Insert(field, DateValue(d))
}

func (r *Record) InsertDuration(field string, span time.Duration) error {
	d, err := DurationFromGo(r.g, span)
	if err != nil {
		return err
	}
	defer d.Release()
	return r.Insert(field, DurationValue(d))
}

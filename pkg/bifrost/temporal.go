package bifrost

import (
	"time"

	"github.com/orneryd/bifrost/pkg/mgp"
)

// The host's date representation covers years 0 through 9999. Conversion
// validates the year before any foreign call is attempted; an out-of-range
// year fails locally without ever invoking the foreign allocator.
const (
	minYear = 0
	maxYear = 9999
)

func yearInRange(year int) bool {
	return year >= minYear && year <= maxYear
}

// subsecondComponents splits sub-second precision, given in microseconds,
// into the host's independent millisecond and microsecond components. Input
// carrying one second or more of sub-second precision (a leap second
// representation) is folded modulo one second: a deterministic, lossy
// normalization rather than a hard failure.
func subsecondComponents(micros int64) (millisecond, microsecond int32) {
	micros %= 1_000_000
	if micros < 0 {
		micros += 1_000_000
	}
	return int32(micros / 1_000), int32(micros % 1_000)
}

// Date is a calendar date backed by a foreign handle.
type Date struct {
	g        *Graph
	ptr      mgp.DatePtr
	owned    bool
	released bool
}

// BorrowedDate wraps a host-owned date handle.
func BorrowedDate(g *Graph, ptr mgp.DatePtr) *Date {
	return &Date{g: g, ptr: ptr}
}

func newOwnedDate(g *Graph, ptr mgp.DatePtr) *Date {
	d := &Date{g: g, ptr: ptr, owned: true}
	g.track(d.Release)
	return d
}

// DateFromTime allocates an owned date from the calendar date of t.
func DateFromTime(g *Graph, t time.Time) (*Date, error) {
	ptr, err := allocDate(g, t)
	if err != nil {
		return nil, err
	}
	return newOwnedDate(g, ptr), nil
}

func allocDate(g *Graph, t time.Time) (mgp.DatePtr, error) {
	if !yearInRange(t.Year()) {
		return 0, statusError(ErrCreateDate, mgp.StatusOutOfRange)
	}
	params := mgp.DateParameters{
		Year:  int32(t.Year()),
		Month: int32(t.Month()),
		Day:   int32(t.Day()),
	}
	ptr, st := g.api.DateFromParameters(&params, g.memory)
	if !st.OK() {
		return 0, statusError(ErrCreateDate, st)
	}
	return ptr, nil
}

// Release destroys an owned date. Safe to call more than once.
func (d *Date) Release() {
	if !d.owned || d.released {
		return
	}
	d.released = true
	d.g.api.DateDestroy(d.ptr)
}

func (d *Date) Year() (int32, error) {
	year, st := d.g.api.DateGetYear(d.ptr)
	if !st.OK() {
		return 0, statusError(ErrReadDate, st)
	}
	return year, nil
}

func (d *Date) Month() (int32, error) {
	month, st := d.g.api.DateGetMonth(d.ptr)
	if !st.OK() {
		return 0, statusError(ErrReadDate, st)
	}
	return month, nil
}

func (d *Date) Day() (int32, error) {
	day, st := d.g.api.DateGetDay(d.ptr)
	if !st.OK() {
		return 0, statusError(ErrReadDate, st)
	}
	return day, nil
}

// ToTime reads the date back as a UTC midnight time.Time.
func (d *Date) ToTime() (time.Time, error) {
	year, err := d.Year()
	if err != nil {
		return time.Time{}, err
	}
	month, err := d.Month()
	if err != nil {
		return time.Time{}, err
	}
	day, err := d.Day()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC), nil
}

// reconstruct allocates a fresh foreign date carrying this wrapper's
// components. Used when a date value crosses into another foreign owner.
func (d *Date) reconstruct() (mgp.DatePtr, error) {
	t, err := d.ToTime()
	if err != nil {
		return 0, err
	}
	return allocDate(d.g, t)
}

// LocalTime is a time of day backed by a foreign handle.
type LocalTime struct {
	g        *Graph
	ptr      mgp.LocalTimePtr
	owned    bool
	released bool
}

// BorrowedLocalTime wraps a host-owned local time handle.
func BorrowedLocalTime(g *Graph, ptr mgp.LocalTimePtr) *LocalTime {
	return &LocalTime{g: g, ptr: ptr}
}

func newOwnedLocalTime(g *Graph, ptr mgp.LocalTimePtr) *LocalTime {
	t := &LocalTime{g: g, ptr: ptr, owned: true}
	g.track(t.Release)
	return t
}

// LocalTimeFromTime allocates an owned local time from the clock reading
// of t.
func LocalTimeFromTime(g *Graph, t time.Time) (*LocalTime, error) {
	return LocalTimeFromParts(g, t.Hour(), t.Minute(), t.Second(), int64(t.Nanosecond())/1_000)
}

// LocalTimeFromParts allocates an owned local time. subsecondMicros may
// carry more than one second of precision (a leap second reading) and is
// folded to the in-range millisecond/microsecond pair.
func LocalTimeFromParts(g *Graph, hour, minute, second int, subsecondMicros int64) (*LocalTime, error) {
	ptr, err := allocLocalTime(g, hour, minute, second, subsecondMicros)
	if err != nil {
		return nil, err
	}
	return newOwnedLocalTime(g, ptr), nil
}

func allocLocalTime(g *Graph, hour, minute, second int, subsecondMicros int64) (mgp.LocalTimePtr, error) {
	ms, us := subsecondComponents(subsecondMicros)
	params := mgp.LocalTimeParameters{
		Hour:        int32(hour),
		Minute:      int32(minute),
		Second:      int32(second),
		Millisecond: ms,
		Microsecond: us,
	}
	ptr, st := g.api.LocalTimeFromParameters(&params, g.memory)
	if !st.OK() {
		return 0, statusError(ErrCreateLocalTime, st)
	}
	return ptr, nil
}

// Release destroys an owned local time. Safe to call more than once.
func (t *LocalTime) Release() {
	if !t.owned || t.released {
		return
	}
	t.released = true
	t.g.api.LocalTimeDestroy(t.ptr)
}

func (t *LocalTime) Hour() (int32, error)   { return t.read(t.g.api.LocalTimeGetHour) }
func (t *LocalTime) Minute() (int32, error) { return t.read(t.g.api.LocalTimeGetMinute) }
func (t *LocalTime) Second() (int32, error) { return t.read(t.g.api.LocalTimeGetSecond) }
func (t *LocalTime) Millisecond() (int32, error) {
	return t.read(t.g.api.LocalTimeGetMillisecond)
}
func (t *LocalTime) Microsecond() (int32, error) {
	return t.read(t.g.api.LocalTimeGetMicrosecond)
}

func (t *LocalTime) read(op func(mgp.LocalTimePtr) (int32, mgp.Status)) (int32, error) {
	v, st := op(t.ptr)
	if !st.OK() {
		return 0, statusError(ErrReadLocalTime, st)
	}
	return v, nil
}

// reconstruct allocates a fresh foreign local time carrying this wrapper's
// components.
func (t *LocalTime) reconstruct() (mgp.LocalTimePtr, error) {
	hour, err := t.Hour()
	if err != nil {
		return 0, err
	}
	minute, err := t.Minute()
	if err != nil {
		return 0, err
	}
	second, err := t.Second()
	if err != nil {
		return 0, err
	}
	ms, err := t.Millisecond()
	if err != nil {
		return 0, err
	}
	us, err := t.Microsecond()
	if err != nil {
		return 0, err
	}
	return allocLocalTime(t.g, int(hour), int(minute), int(second), int64(ms)*1_000+int64(us))
}

// LocalDateTime is a calendar date with a time of day, backed by a foreign
// handle.
type LocalDateTime struct {
	g        *Graph
	ptr      mgp.LocalDateTimePtr
	owned    bool
	released bool
}

// BorrowedLocalDateTime wraps a host-owned local date time handle.
func BorrowedLocalDateTime(g *Graph, ptr mgp.LocalDateTimePtr) *LocalDateTime {
	return &LocalDateTime{g: g, ptr: ptr}
}

func newOwnedLocalDateTime(g *Graph, ptr mgp.LocalDateTimePtr) *LocalDateTime {
	dt := &LocalDateTime{g: g, ptr: ptr, owned: true}
	g.track(dt.Release)
	return dt
}

// LocalDateTimeFromTime allocates an owned local date time from t. The year
// is range-validated before any foreign call, like DateFromTime.
func LocalDateTimeFromTime(g *Graph, t time.Time) (*LocalDateTime, error) {
	ptr, err := allocLocalDateTime(g, t)
	if err != nil {
		return nil, err
	}
	return newOwnedLocalDateTime(g, ptr), nil
}

func allocLocalDateTime(g *Graph, t time.Time) (mgp.LocalDateTimePtr, error) {
	if !yearInRange(t.Year()) {
		return 0, statusError(ErrCreateLocalDateTime, mgp.StatusOutOfRange)
	}
	ms, us := subsecondComponents(int64(t.Nanosecond()) / 1_000)
	params := mgp.LocalDateTimeParameters{
		Date: mgp.DateParameters{
			Year:  int32(t.Year()),
			Month: int32(t.Month()),
			Day:   int32(t.Day()),
		},
		LocalTime: mgp.LocalTimeParameters{
			Hour:        int32(t.Hour()),
			Minute:      int32(t.Minute()),
			Second:      int32(t.Second()),
			Millisecond: ms,
			Microsecond: us,
		},
	}
	ptr, st := g.api.LocalDateTimeFromParameters(&params, g.memory)
	if !st.OK() {
		return 0, statusError(ErrCreateLocalDateTime, st)
	}
	return ptr, nil
}

// Release destroys an owned local date time. Safe to call more than once.
func (dt *LocalDateTime) Release() {
	if !dt.owned || dt.released {
		return
	}
	dt.released = true
	dt.g.api.LocalDateTimeDestroy(dt.ptr)
}

func (dt *LocalDateTime) Year() (int32, error)  { return dt.read(dt.g.api.LocalDateTimeGetYear) }
func (dt *LocalDateTime) Month() (int32, error) { return dt.read(dt.g.api.LocalDateTimeGetMonth) }
func (dt *LocalDateTime) Day() (int32, error)   { return dt.read(dt.g.api.LocalDateTimeGetDay) }
func (dt *LocalDateTime) Hour() (int32, error)  { return dt.read(dt.g.api.LocalDateTimeGetHour) }
func (dt *LocalDateTime) Minute() (int32, error) {
	return dt.read(dt.g.api.LocalDateTimeGetMinute)
}
func (dt *LocalDateTime) Second() (int32, error) {
	return dt.read(dt.g.api.LocalDateTimeGetSecond)
}
func (dt *LocalDateTime) Millisecond() (int32, error) {
	return dt.read(dt.g.api.LocalDateTimeGetMillisecond)
}
func (dt *LocalDateTime) Microsecond() (int32, error) {
	return dt.read(dt.g.api.LocalDateTimeGetMicrosecond)
}

func (dt *LocalDateTime) read(op func(mgp.LocalDateTimePtr) (int32, mgp.Status)) (int32, error) {
	v, st := op(dt.ptr)
	if !st.OK() {
		return 0, statusError(ErrReadLocalDateTime, st)
	}
	return v, nil
}

// ToTime reads the full timestamp back as a UTC time.Time.
func (dt *LocalDateTime) ToTime() (time.Time, error) {
	read := func(get func() (int32, error), dst *int) error {
		v, err := get()
		if err == nil {
			*dst = int(v)
		}
		return err
	}
	var year, month, day, hour, minute, second, ms, us int
	for _, step := range []func() error{
		func() error { return read(dt.Year, &year) },
		func() error { return read(dt.Month, &month) },
		func() error { return read(dt.Day, &day) },
		func() error { return read(dt.Hour, &hour) },
		func() error { return read(dt.Minute, &minute) },
		func() error { return read(dt.Second, &second) },
		func() error { return read(dt.Millisecond, &ms) },
		func() error { return read(dt.Microsecond, &us) },
	} {
		if err := step(); err != nil {
			return time.Time{}, err
		}
	}
	nanos := (ms*1_000 + us) * 1_000
	return time.Date(year, time.Month(month), day, hour, minute, second, nanos, time.UTC), nil
}

// reconstruct allocates a fresh foreign local date time carrying this
// wrapper's components.
func (dt *LocalDateTime) reconstruct() (mgp.LocalDateTimePtr, error) {
	t, err := dt.ToTime()
	if err != nil {
		return 0, err
	}
	return allocLocalDateTime(dt.g, t)
}

// Duration is a signed microsecond span backed by a foreign handle.
type Duration struct {
	g        *Graph
	ptr      mgp.DurationPtr
	owned    bool
	released bool
}

// BorrowedDuration wraps a host-owned duration handle.
func BorrowedDuration(g *Graph, ptr mgp.DurationPtr) *Duration {
	return &Duration{g: g, ptr: ptr}
}

func newOwnedDuration(g *Graph, ptr mgp.DurationPtr) *Duration {
	d := &Duration{g: g, ptr: ptr, owned: true}
	g.track(d.Release)
	return d
}

// DurationFromGo allocates an owned duration from d, truncated to
// microsecond precision.
func DurationFromGo(g *Graph, d time.Duration) (*Duration, error) {
	return DurationFromMicroseconds(g, d.Microseconds())
}

// DurationFromMicroseconds allocates an owned duration.
func DurationFromMicroseconds(g *Graph, micros int64) (*Duration, error) {
	ptr, st := g.api.DurationFromMicroseconds(micros, g.memory)
	if !st.OK() {
		return nil, statusError(ErrCreateDuration, st)
	}
	return newOwnedDuration(g, ptr), nil
}

// Release destroys an owned duration. Safe to call more than once.
func (d *Duration) Release() {
	if !d.owned || d.released {
		return
	}
	d.released = true
	d.g.api.DurationDestroy(d.ptr)
}

// Microseconds returns the span in microseconds.
func (d *Duration) Microseconds() (int64, error) {
	micros, st := d.g.api.DurationGetMicroseconds(d.ptr)
	if !st.OK() {
		return 0, statusError(ErrReadDuration, st)
	}
	return micros, nil
}

// ToGo returns the span as a time.Duration.
func (d *Duration) ToGo() (time.Duration, error) {
	micros, err := d.Microseconds()
	if err != nil {
		return 0, err
	}
	return time.Duration(micros) * time.Microsecond, nil
}

// reconstruct allocates a fresh foreign duration carrying this wrapper's
// span.
func (d *Duration) reconstruct() (mgp.DurationPtr, error) {
	micros, err := d.Microseconds()
	if err != nil {
		return 0, err
	}
	ptr, st := d.g.api.DurationFromMicroseconds(micros, d.g.memory)
	if !st.OK() {
		return 0, statusError(ErrCreateDuration, st)
	}
	return ptr, nil
}

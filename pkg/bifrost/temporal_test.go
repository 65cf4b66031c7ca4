package bifrost

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/bifrost/pkg/mgp"
	"github.com/orneryd/bifrost/pkg/mgp/mgpmock"
)

func TestSubsecondComponents(t *testing.T) {
	cases := []struct {
		name   string
		micros int64
		ms, us int32
	}{
		{"zero", 0, 0, 0},
		{"microseconds only", 999, 0, 999},
		{"milliseconds and microseconds", 123_456, 123, 456},
		{"just under one second", 999_999, 999, 999},
		{"leap second folds to the same pair", 1_999_999, 999, 999},
		{"whole extra second drops out", 1_000_000, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ms, us := subsecondComponents(tc.micros)
			assert.Equal(t, tc.ms, ms)
			assert.Equal(t, tc.us, us)
		})
	}
}

func TestDateFromTime(t *testing.T) {
	t.Run("valid date reaches the host with exact components", func(t *testing.T) {
		api := mgpmock.New()
		want := &mgp.DateParameters{Year: 1994, Month: 12, Day: 7}
		api.On("DateFromParameters", want, mgp.MemoryPtr(0x40)).
			Return(mgp.DatePtr(0x500), mgp.StatusNoError).Once()
		api.On("DateDestroy", mgp.DatePtr(0x500)).Return().Once()

		g := newTestGraph(api)
		d, err := DateFromTime(g, time.Date(1994, 12, 7, 10, 30, 0, 0, time.UTC))
		require.NoError(t, err)
		g.ReleaseAll()
		_ = d
		api.AssertExpectations(t)
	})

	t.Run("year past the upper bound never calls the allocator", func(t *testing.T) {
		api := mgpmock.New()
		g := newTestGraph(api)
		_, err := DateFromTime(g, time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC))
		require.ErrorIs(t, err, ErrCreateDate)
		api.AssertNotCalled(t, "DateFromParameters", mock.Anything, mock.Anything)
	})

	t.Run("negative year never calls the allocator", func(t *testing.T) {
		api := mgpmock.New()
		g := newTestGraph(api)
		_, err := DateFromTime(g, time.Date(-1, 6, 15, 0, 0, 0, 0, time.UTC))
		require.ErrorIs(t, err, ErrCreateDate)
		api.AssertNotCalled(t, "DateFromParameters", mock.Anything, mock.Anything)
	})

	t.Run("boundary years are accepted", func(t *testing.T) {
		for _, year := range []int{0, 9999} {
			api := mgpmock.New()
			api.On("DateFromParameters", mock.Anything, mgp.MemoryPtr(0x40)).
				Return(mgp.DatePtr(0x500), mgp.StatusNoError).Once()
			api.On("DateDestroy", mgp.DatePtr(0x500)).Return().Once()

			g := newTestGraph(api)
			_, err := DateFromTime(g, time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC))
			require.NoError(t, err)
			g.ReleaseAll()
		}
	})
}

func TestDateAccessors(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		api := mgpmock.New()
		api.On("DateGetYear", mgp.DatePtr(0x500)).Return(int32(1947), mgp.StatusNoError).Once()
		api.On("DateGetMonth", mgp.DatePtr(0x500)).Return(int32(1), mgp.StatusNoError).Once()
		api.On("DateGetDay", mgp.DatePtr(0x500)).Return(int32(14), mgp.StatusNoError).Once()

		d := BorrowedDate(newTestGraph(api), 0x500)
		got, err := d.ToTime()
		require.NoError(t, err)
		assert.Equal(t, time.Date(1947, 1, 14, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("read failure keeps the read class", func(t *testing.T) {
		api := mgpmock.New()
		api.On("DateGetYear", mgp.DatePtr(0x500)).
			Return(int32(0), mgp.StatusDeletedObject).Once()

		d := BorrowedDate(newTestGraph(api), 0x500)
		_, err := d.Year()
		require.ErrorIs(t, err, ErrReadDate)
		require.NotErrorIs(t, err, ErrCreateDate)
	})
}

func TestLocalTimeFromParts(t *testing.T) {
	t.Run("leap second reading folds into range", func(t *testing.T) {
		api := mgpmock.New()
		want := &mgp.LocalTimeParameters{
			Hour: 23, Minute: 59, Second: 59,
			Millisecond: 999, Microsecond: 999,
		}
		api.On("LocalTimeFromParameters", want, mgp.MemoryPtr(0x40)).
			Return(mgp.LocalTimePtr(0x600), mgp.StatusNoError).Once()
		api.On("LocalTimeDestroy", mgp.LocalTimePtr(0x600)).Return().Once()

		g := newTestGraph(api)
		_, err := LocalTimeFromParts(g, 23, 59, 59, 1_999_999)
		require.NoError(t, err)
		g.ReleaseAll()
		api.AssertExpectations(t)
	})

	t.Run("allocation failure maps to create error", func(t *testing.T) {
		api := mgpmock.New()
		api.On("LocalTimeFromParameters", mock.Anything, mgp.MemoryPtr(0x40)).
			Return(mgp.LocalTimePtr(0), mgp.StatusUnableToAllocate).Once()

		_, err := LocalTimeFromParts(newTestGraph(api), 1, 2, 3, 0)
		require.ErrorIs(t, err, ErrCreateLocalTime)
	})
}

func TestLocalTimeAccessors(t *testing.T) {
	api := mgpmock.New()
	api.On("LocalTimeGetHour", mgp.LocalTimePtr(0x600)).Return(int32(4), mgp.StatusNoError).Once()
	api.On("LocalTimeGetMillisecond", mgp.LocalTimePtr(0x600)).
		Return(int32(0), mgp.StatusDeletedObject).Once()

	lt := BorrowedLocalTime(newTestGraph(api), 0x600)
	hour, err := lt.Hour()
	require.NoError(t, err)
	assert.Equal(t, int32(4), hour)

	_, err = lt.Millisecond()
	require.ErrorIs(t, err, ErrReadLocalTime)
}

func TestLocalDateTimeFromTime(t *testing.T) {
	t.Run("components are split like the standalone types", func(t *testing.T) {
		api := mgpmock.New()
		want := &mgp.LocalDateTimeParameters{
			Date: mgp.DateParameters{Year: 2024, Month: 2, Day: 29},
			LocalTime: mgp.LocalTimeParameters{
				Hour: 6, Minute: 30, Second: 15,
				Millisecond: 123, Microsecond: 456,
			},
		}
		api.On("LocalDateTimeFromParameters", want, mgp.MemoryPtr(0x40)).
			Return(mgp.LocalDateTimePtr(0x700), mgp.StatusNoError).Once()
		api.On("LocalDateTimeDestroy", mgp.LocalDateTimePtr(0x700)).Return().Once()

		g := newTestGraph(api)
		_, err := LocalDateTimeFromTime(g, time.Date(2024, 2, 29, 6, 30, 15, 123_456_000, time.UTC))
		require.NoError(t, err)
		g.ReleaseAll()
		api.AssertExpectations(t)
	})

	t.Run("year range is enforced before any foreign call", func(t *testing.T) {
		api := mgpmock.New()
		_, err := LocalDateTimeFromTime(newTestGraph(api),
			time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC))
		require.ErrorIs(t, err, ErrCreateLocalDateTime)
		api.AssertNotCalled(t, "LocalDateTimeFromParameters", mock.Anything, mock.Anything)
	})
}

func TestLocalDateTimeToTime(t *testing.T) {
	api := mgpmock.New()
	dt := mgp.LocalDateTimePtr(0x700)
	api.On("LocalDateTimeGetYear", dt).Return(int32(1999), mgp.StatusNoError).Once()
	api.On("LocalDateTimeGetMonth", dt).Return(int32(12), mgp.StatusNoError).Once()
	api.On("LocalDateTimeGetDay", dt).Return(int32(31), mgp.StatusNoError).Once()
	api.On("LocalDateTimeGetHour", dt).Return(int32(23), mgp.StatusNoError).Once()
	api.On("LocalDateTimeGetMinute", dt).Return(int32(59), mgp.StatusNoError).Once()
	api.On("LocalDateTimeGetSecond", dt).Return(int32(59), mgp.StatusNoError).Once()
	api.On("LocalDateTimeGetMillisecond", dt).Return(int32(999), mgp.StatusNoError).Once()
	api.On("LocalDateTimeGetMicrosecond", dt).Return(int32(999), mgp.StatusNoError).Once()

	wrapped := BorrowedLocalDateTime(newTestGraph(api), dt)
	got, err := wrapped.ToTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(1999, 12, 31, 23, 59, 59, 999_999_000, time.UTC), got)
}

func TestDuration(t *testing.T) {
	t.Run("truncates to microseconds", func(t *testing.T) {
		api := mgpmock.New()
		api.On("DurationFromMicroseconds", int64(1_500_000), mgp.MemoryPtr(0x40)).
			Return(mgp.DurationPtr(0x800), mgp.StatusNoError).Once()
		api.On("DurationDestroy", mgp.DurationPtr(0x800)).Return().Once()

		g := newTestGraph(api)
		_, err := DurationFromGo(g, 1500*time.Millisecond+300*time.Nanosecond)
		require.NoError(t, err)
		g.ReleaseAll()
		api.AssertExpectations(t)
	})

	t.Run("negative spans are preserved", func(t *testing.T) {
		api := mgpmock.New()
		api.On("DurationGetMicroseconds", mgp.DurationPtr(0x800)).
			Return(int64(-2_000_000), mgp.StatusNoError).Once()

		d := BorrowedDuration(newTestGraph(api), 0x800)
		span, err := d.ToGo()
		require.NoError(t, err)
		assert.Equal(t, -2*time.Second, span)
	})

	t.Run("read failure keeps the read class", func(t *testing.T) {
		api := mgpmock.New()
		api.On("DurationGetMicroseconds", mgp.DurationPtr(0x800)).
			Return(int64(0), mgp.StatusDeletedObject).Once()

		d := BorrowedDuration(newTestGraph(api), 0x800)
		_, err := d.Microseconds()
		require.ErrorIs(t, err, ErrReadDuration)
	})
}

package reservation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costumerental/costume-rental-backend/internal/reservation"
)

func date(s string) time.Time {
	t, err := time.Parse(reservation.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func rng(start, end string) reservation.DateRange {
	return reservation.NewDateRange(date(start), date(end))
}

func TestDateRangeOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b reservation.DateRange
		want bool
	}{
		{"disjoint", rng("2026-01-01", "2026-01-05"), rng("2026-01-07", "2026-01-10"), false},
		{"contained", rng("2026-01-01", "2026-01-10"), rng("2026-01-03", "2026-01-05"), true},
		{"partial", rng("2026-01-01", "2026-01-05"), rng("2026-01-04", "2026-01-10"), true},
		{"touching end to start", rng("2026-01-01", "2026-01-05"), rng("2026-01-05", "2026-01-10"), true},
		{"touching start to end", rng("2026-01-05", "2026-01-10"), rng("2026-01-01", "2026-01-05"), true},
		{"single day equal", rng("2026-01-05", "2026-01-05"), rng("2026-01-05", "2026-01-05"), true},
		{"adjacent with gap of one day", rng("2026-01-01", "2026-01-05"), rng("2026-01-06", "2026-01-10"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestDateRangeOverlapsSelf(t *testing.T) {
	r := rng("2026-03-01", "2026-03-04")
	assert.True(t, r.Overlaps(r))
}

func TestDateRangeContains(t *testing.T) {
	r := rng("2026-01-03", "2026-01-06")

	assert.False(t, r.Contains(date("2026-01-02")))
	assert.True(t, r.Contains(date("2026-01-03")))
	assert.True(t, r.Contains(date("2026-01-05")))
	assert.True(t, r.Contains(date("2026-01-06")))
	assert.False(t, r.Contains(date("2026-01-07")))
}

func TestDateRangeDays(t *testing.T) {
	assert.Equal(t, 1, rng("2026-01-05", "2026-01-05").Days())
	assert.Equal(t, 2, rng("2026-01-05", "2026-01-06").Days())
	assert.Equal(t, 31, rng("2026-01-01", "2026-01-31").Days())
}

func TestDateRangeDayAfterEnd(t *testing.T) {
	assert.Equal(t, date("2026-01-06"), rng("2026-01-01", "2026-01-05").DayAfterEnd())
	// Month boundary
	assert.Equal(t, date("2026-02-01"), rng("2026-01-20", "2026-01-31").DayAfterEnd())
}

func TestNewDateRangeTruncatesToCalendarDay(t *testing.T) {
	start := time.Date(2026, 1, 3, 15, 30, 12, 0, time.UTC)
	end := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

	r := reservation.NewDateRange(start, end)
	require.Equal(t, date("2026-01-03"), r.Start)
	require.Equal(t, date("2026-01-05"), r.End)
	assert.True(t, r.IsValid())
}

func TestDateRangeIsValid(t *testing.T) {
	assert.True(t, rng("2026-01-01", "2026-01-01").IsValid())
	assert.False(t, reservation.NewDateRange(date("2026-01-05"), date("2026-01-01")).IsValid())
}

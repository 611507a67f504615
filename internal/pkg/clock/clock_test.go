package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/costumerental/costume-rental-backend/internal/pkg/clock"
)

func TestDateTruncates(t *testing.T) {
	in := time.Date(2026, 7, 14, 23, 59, 59, 123, time.UTC)
	got := clock.Date(in)

	assert.Equal(t, time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestDateNormalizesZone(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 02:00 on the 15th in UTC+9 is still the 14th in UTC.
	in := time.Date(2026, 7, 15, 2, 0, 0, 0, loc)

	assert.Equal(t, time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC), clock.Date(in))
}

func TestFixedClock(t *testing.T) {
	day := time.Date(2026, 1, 10, 18, 30, 0, 0, time.UTC)
	c := clock.Fixed{Day: day}

	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), c.Today())
}

func TestSystemClockMidnight(t *testing.T) {
	today := clock.NewSystemClock().Today()

	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, time.UTC, today.Location())
}

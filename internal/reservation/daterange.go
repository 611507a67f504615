package reservation

import (
	"time"

	"github.com/costumerental/costume-rental-backend/internal/pkg/clock"
)

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// DateRange is a closed interval of calendar dates. Both endpoints are
// inclusive and normalized to UTC midnight; there is no time-of-day component.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a DateRange, truncating both endpoints to calendar dates.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{
		Start: clock.Date(start),
		End:   clock.Date(end),
	}
}

// Overlaps reports whether the two closed intervals share at least one day.
// Touching endpoints count: a range ending on another's start date conflicts.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// Contains reports whether date falls within the range, endpoints included.
func (r DateRange) Contains(date time.Time) bool {
	return !date.Before(r.Start) && !date.After(r.End)
}

// DayAfterEnd returns the first date after the range.
func (r DateRange) DayAfterEnd() time.Time {
	return r.End.AddDate(0, 0, 1)
}

// Days returns the inclusive day count of the range.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// IsValid reports whether the range is well-formed (start not after end).
func (r DateRange) IsValid() bool {
	return !r.Start.After(r.End)
}

// String renders the range as "start to end" using calendar dates.
func (r DateRange) String() string {
	return r.Start.Format(DateFormat) + " to " + r.End.Format(DateFormat)
}

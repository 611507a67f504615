package reservation

import "time"

// Availability is the projected state of one costume as of a given day.
type Availability struct {
	IsAvailable bool
	// NextAvailableDate is set only when the costume is unavailable.
	NextAvailableDate *time.Time
}

// ProjectAvailability computes whether a costume is available today, given
// its approved reservations that have not yet ended (end >= today).
//
// The costume is unavailable when a reservation covers today, or when the
// earliest upcoming reservation starts exactly today. In either case the
// next available date is found by walking the chain of consecutive or
// overlapping reservations past the blocker.
func ProjectAvailability(active []*Reservation, today time.Time) Availability {
	if len(active) == 0 {
		return Availability{IsAvailable: true}
	}

	for _, r := range active {
		if r.Range.Contains(today) {
			next := NextAvailableAfter(active, r.Range.End)
			return Availability{NextAvailableDate: &next}
		}
	}

	earliest := active[0]
	for _, r := range active[1:] {
		if r.Range.Start.Before(earliest.Range.Start) {
			earliest = r
		}
	}
	if earliest.Range.Start.Equal(today) {
		next := NextAvailableAfter(active, earliest.Range.End)
		return Availability{NextAvailableDate: &next}
	}

	// Today precedes every upcoming reservation.
	return Availability{IsAvailable: true}
}

// NextAvailableAfter returns the first date after `after` not covered by any
// of the given reservations. It walks chains of back-to-back or overlapping
// bookings: whenever a reservation covers or starts on the candidate date,
// the candidate jumps past that reservation's end and the scan restarts.
//
// Each jump moves the candidate strictly past at least one reservation's
// end, so the walk terminates.
func NextAvailableAfter(reservations []*Reservation, after time.Time) time.Time {
	next := after.AddDate(0, 0, 1)

	for {
		advanced := false
		for _, r := range reservations {
			if r.Range.Contains(next) || r.Range.Start.Equal(next) {
				next = r.Range.DayAfterEnd()
				advanced = true
				break
			}
		}
		if !advanced {
			return next
		}
	}
}

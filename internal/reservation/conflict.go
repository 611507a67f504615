package reservation

// FindConflict returns the existing reservation whose range overlaps the
// candidate, or nil when none does. Only reservations matching statusFilter
// are considered (StatusAny matches all), and the reservation with
// excludeID is skipped so an in-flight approval is not checked against
// itself.
//
// When several reservations conflict, the one with the earliest end date
// wins: the soonest-ending blocker is the one that determines the next
// available date.
func FindConflict(candidate DateRange, existing []*Reservation, statusFilter Status, excludeID string) *Reservation {
	var blocker *Reservation

	for _, r := range existing {
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		if statusFilter != StatusAny && r.Status != statusFilter {
			continue
		}
		if !candidate.Overlaps(r.Range) {
			continue
		}
		if blocker == nil || r.Range.End.Before(blocker.Range.End) {
			blocker = r
		}
	}

	return blocker
}

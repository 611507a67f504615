package reservation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costumerental/costume-rental-backend/internal/reservation"
)

func approved(id, start, end string) *reservation.Reservation {
	return &reservation.Reservation{
		ID:     id,
		Range:  rng(start, end),
		Status: reservation.StatusApproved,
	}
}

func pending(id, start, end string) *reservation.Reservation {
	return &reservation.Reservation{
		ID:     id,
		Range:  rng(start, end),
		Status: reservation.StatusPending,
	}
}

func TestFindConflictNone(t *testing.T) {
	existing := []*reservation.Reservation{
		approved("a", "2026-01-01", "2026-01-05"),
	}

	got := reservation.FindConflict(rng("2026-01-07", "2026-01-09"), existing, reservation.StatusApproved, "")
	assert.Nil(t, got)
}

func TestFindConflictReportsSoonestEndingBlocker(t *testing.T) {
	existing := []*reservation.Reservation{
		approved("late", "2026-01-02", "2026-01-20"),
		approved("early", "2026-01-04", "2026-01-08"),
	}

	got := reservation.FindConflict(rng("2026-01-05", "2026-01-10"), existing, reservation.StatusApproved, "")
	require.NotNil(t, got)
	assert.Equal(t, "early", got.ID)
}

func TestFindConflictTouchingBoundaryConflicts(t *testing.T) {
	existing := []*reservation.Reservation{
		approved("a", "2026-01-01", "2026-01-05"),
	}

	// Candidate starting exactly on an existing end date conflicts.
	got := reservation.FindConflict(rng("2026-01-05", "2026-01-08"), existing, reservation.StatusApproved, "")
	require.NotNil(t, got)

	// Candidate ending exactly on an existing start date conflicts.
	got = reservation.FindConflict(rng("2025-12-28", "2026-01-01"), existing, reservation.StatusApproved, "")
	require.NotNil(t, got)
}

func TestFindConflictIgnoresNonMatchingStatus(t *testing.T) {
	existing := []*reservation.Reservation{
		pending("p", "2026-01-01", "2026-01-10"),
		{ID: "r", Range: rng("2026-01-01", "2026-01-10"), Status: reservation.StatusRejected},
	}

	got := reservation.FindConflict(rng("2026-01-03", "2026-01-06"), existing, reservation.StatusApproved, "")
	assert.Nil(t, got)
}

func TestFindConflictStatusAnyMatchesPending(t *testing.T) {
	existing := []*reservation.Reservation{
		pending("p", "2026-01-01", "2026-01-10"),
	}

	got := reservation.FindConflict(rng("2026-01-03", "2026-01-06"), existing, reservation.StatusAny, "")
	require.NotNil(t, got)
	assert.Equal(t, "p", got.ID)
}

func TestFindConflictExcludesGivenID(t *testing.T) {
	existing := []*reservation.Reservation{
		approved("self", "2026-01-01", "2026-01-05"),
	}

	got := reservation.FindConflict(rng("2026-01-01", "2026-01-05"), existing, reservation.StatusApproved, "self")
	assert.Nil(t, got)
}

package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/costumerental/costume-rental-backend/internal/costume"
	"github.com/costumerental/costume-rental-backend/internal/pkg/clock"
)

type CreateRequest struct {
	UserID    string
	CostumeID string
	StartDate time.Time
	EndDate   time.Time
}

// AvailabilityCheck is the result of the read-only availability probe.
type AvailabilityCheck struct {
	Available bool
	Blocking  *Reservation
}

type Service interface {
	// Create validates the request and persists a pending reservation,
	// unless an approved reservation for the same costume overlaps it.
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)

	// Approve transitions a reservation to approved after re-checking it
	// against the other approved reservations of the same costume. On
	// conflict the reservation keeps its previous status.
	Approve(ctx context.Context, id string) (*Reservation, error)

	// Reject transitions a reservation to rejected. Rejection never
	// conflicts, so no availability check is made.
	Reject(ctx context.Context, id string) (*Reservation, error)

	ListForUser(ctx context.Context, userID string) ([]*Reservation, error)
	List(ctx context.Context, page, pageSize int) ([]*Reservation, int, error)

	// CheckAvailability probes whether the range is free of overlap with
	// any existing reservation row, pending included. This is broader than
	// the approved-only check used by Create and Approve; the asymmetry is
	// kept for compatibility with existing clients.
	CheckAvailability(ctx context.Context, costumeID string, rng DateRange) (*AvailabilityCheck, error)

	// AvailabilityFor projects a costume's current availability and next
	// free date from its approved upcoming reservations.
	AvailabilityFor(ctx context.Context, costumeID string) (Availability, error)
}

type service struct {
	repo           Repository
	costumeService costume.Service
	clock          clock.Clock
}

func NewService(repo Repository, costumeService costume.Service, clk clock.Clock) Service {
	return &service{
		repo:           repo,
		costumeService: costumeService,
		clock:          clk,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	rng := NewDateRange(req.StartDate, req.EndDate)
	today := s.clock.Today()

	if rng.Start.Before(today) {
		return nil, ErrStartDatePast
	}
	if !rng.End.After(rng.Start) {
		return nil, ErrInvalidDateRange
	}
	if rng.Days() < MinRentalDays {
		return nil, ErrRentalTooShort
	}
	if rng.Days() > MaxRentalDays {
		return nil, ErrRentalTooLong
	}

	if _, err := s.costumeService.GetByID(ctx, req.CostumeID); err != nil {
		if errors.Is(err, costume.ErrNotFound) {
			return nil, ErrCostumeNotFound
		}
		return nil, err
	}

	var res *Reservation
	err := s.repo.WithCostumeLock(ctx, req.CostumeID, func(r Repository) error {
		approved, err := r.ListForCostume(ctx, req.CostumeID, StatusApproved)
		if err != nil {
			return err
		}

		if blocker := FindConflict(rng, approved, StatusApproved, ""); blocker != nil {
			return &ConflictError{
				Blocking:      blocker.Range,
				NextAvailable: NextAvailableAfter(approved, blocker.Range.End),
			}
		}

		res = &Reservation{
			CostumeID: req.CostumeID,
			UserID:    req.UserID,
			Range:     rng,
			Status:    StatusPending,
		}
		if err := r.Create(ctx, res); err != nil {
			return err
		}

		// Re-read to pick up the joined costume and user names.
		res, err = r.GetByID(ctx, res.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *service) Approve(ctx context.Context, id string) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.repo.WithCostumeLock(ctx, res.CostumeID, func(r Repository) error {
		// Re-read under the lock; the reservation may have changed since.
		res, err = r.GetByID(ctx, id)
		if err != nil {
			return err
		}

		approved, err := r.ListForCostume(ctx, res.CostumeID, StatusApproved)
		if err != nil {
			return err
		}

		if blocker := FindConflict(res.Range, approved, StatusApproved, res.ID); blocker != nil {
			return &ConflictError{Blocking: blocker.Range}
		}

		if err := r.UpdateStatus(ctx, id, StatusApproved); err != nil {
			return err
		}
		res.Status = StatusApproved
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *service) Reject(ctx context.Context, id string) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusRejected); err != nil {
		return nil, err
	}
	res.Status = StatusRejected

	return res, nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]*Reservation, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *service) List(ctx context.Context, page, pageSize int) ([]*Reservation, int, error) {
	return s.repo.List(ctx, page, pageSize)
}

func (s *service) CheckAvailability(ctx context.Context, costumeID string, rng DateRange) (*AvailabilityCheck, error) {
	if _, err := s.costumeService.GetByID(ctx, costumeID); err != nil {
		if errors.Is(err, costume.ErrNotFound) {
			return nil, ErrCostumeNotFound
		}
		return nil, err
	}
	if !rng.End.After(rng.Start) {
		return nil, ErrInvalidDateRange
	}

	existing, err := s.repo.ListForCostume(ctx, costumeID, StatusAny)
	if err != nil {
		return nil, err
	}

	blocker := FindConflict(rng, existing, StatusAny, "")
	return &AvailabilityCheck{
		Available: blocker == nil,
		Blocking:  blocker,
	}, nil
}

func (s *service) AvailabilityFor(ctx context.Context, costumeID string) (Availability, error) {
	today := s.clock.Today()

	active, err := s.repo.ListActiveForCostume(ctx, costumeID, today)
	if err != nil {
		return Availability{}, err
	}

	return ProjectAvailability(active, today), nil
}

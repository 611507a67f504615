package reservation

import (
	"fmt"
	"net/http"
	"time"

	"github.com/costumerental/costume-rental-backend/internal/pkg/apperror"
)

// Rental duration bounds, in inclusive days.
const (
	MinRentalDays = 1
	MaxRentalDays = 30
)

var (
	ErrNotFound         = apperror.NotFound("reservation not found")
	ErrCostumeNotFound  = apperror.NotFound("costume not found")
	ErrInvalidDateRange = apperror.New(http.StatusUnprocessableEntity, "end date must be after start date")
	ErrStartDatePast    = apperror.New(http.StatusUnprocessableEntity, "start date must be today or later")
	ErrRentalTooShort   = apperror.BadRequest(fmt.Sprintf("reservation must be for at least %d day", MinRentalDays))
	ErrRentalTooLong    = apperror.BadRequest(fmt.Sprintf("reservation cannot exceed %d days", MaxRentalDays))
)

// Status is the lifecycle state of a reservation. Only approved
// reservations block availability; pending and rejected never do.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"

	// StatusAny matches every status when used as a filter.
	StatusAny Status = ""
)

// Reservation is a date-range booking of one costume by one user.
type Reservation struct {
	ID          string
	CostumeID   string
	CostumeName string
	UserID      string
	UserName    string
	Range       DateRange
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ConflictError reports that a candidate range overlaps an existing
// reservation. NextAvailable is the first bookable date after the blocking
// chain, when it was computed.
type ConflictError struct {
	Blocking      DateRange
	NextAvailable time.Time
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("costume is already reserved from %s to %s",
		e.Blocking.Start.Format(DateFormat), e.Blocking.End.Format(DateFormat))
	if !e.NextAvailable.IsZero() {
		msg += ". Next available date: " + e.NextAvailable.Format(DateFormat)
	}
	return msg
}

package http

import (
	"time"

	"github.com/costumerental/costume-rental-backend/internal/pkg/request"
	"github.com/costumerental/costume-rental-backend/internal/reservation"

	costumeHttp "github.com/costumerental/costume-rental-backend/internal/costume/http"
	userHttp "github.com/costumerental/costume-rental-backend/internal/user/http"
)

type CreateReservationBody struct {
	CostumeID string `json:"costume_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type CheckAvailabilityBody struct {
	CostumeID string `json:"costume_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type ListReservationsRequest struct {
	request.ListParams
}

type ReservationResponse struct {
	ID        string                 `json:"id"`
	Costume   costumeHttp.CostumeTag `json:"costume"`
	User      userHttp.UserTag       `json:"user"`
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Status    string                 `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		Costume:   costumeHttp.CostumeTag{ID: r.CostumeID, Name: r.CostumeName},
		User:      userHttp.UserTag{ID: r.UserID, Name: r.UserName},
		StartDate: r.Range.Start.Format(reservation.DateFormat),
		EndDate:   r.Range.End.Format(reservation.DateFormat),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type AvailabilityCheckResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// parseDate parses a calendar date in "2006-01-02" form.
func parseDate(s string) (time.Time, error) {
	return time.Parse(reservation.DateFormat, s)
}

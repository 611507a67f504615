package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/costumerental/costume-rental-backend/internal/auth"
	"github.com/costumerental/costume-rental-backend/internal/pkg/request"
	"github.com/costumerental/costume-rental-backend/internal/pkg/response"
	"github.com/costumerental/costume-rental-backend/internal/reservation"
)

type Handler struct {
	service reservation.Service
}

func NewHandler(service reservation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	start, err := parseDate(body.StartDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "start date must be a valid date"})
		return
	}
	end, err := parseDate(body.EndDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "end date must be a valid date"})
		return
	}

	res, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		UserID:    auth.GetUserID(c),
		CostumeID: body.CostumeID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Reservation created successfully for %d day(s). Waiting for admin approval.", res.Range.Days()),
		"data":    NewReservationResponse(res),
	})
}

// My lists the authenticated user's own reservations.
func (h *Handler) My(c *gin.Context) {
	reservations, err := h.service.ListForUser(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	items := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		items[i] = NewReservationResponse(r)
	}
	c.JSON(http.StatusOK, items)
}

// List lists all reservations, paged. Admin only.
func (h *Handler) List(c *gin.Context) {
	var req ListReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	reservations, total, err := h.service.List(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		h.respondError(c, err)
		return
	}

	items := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		items[i] = NewReservationResponse(r)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Approve(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}

	res, err := h.service.Approve(c.Request.Context(), uri.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reservation approved successfully",
		"data":    NewReservationResponse(res),
	})
}

func (h *Handler) Reject(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}

	res, err := h.service.Reject(c.Request.Context(), uri.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reservation rejected successfully",
		"data":    NewReservationResponse(res),
	})
}

// CheckAvailability probes a (costume, date range) pair without writing
// anything.
func (h *Handler) CheckAvailability(c *gin.Context) {
	var body CheckAvailabilityBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	start, err := parseDate(body.StartDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "start date must be a valid date"})
		return
	}
	end, err := parseDate(body.EndDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "end date must be a valid date"})
		return
	}

	check, err := h.service.CheckAvailability(c.Request.Context(), body.CostumeID,
		reservation.NewDateRange(start, end))
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := AvailabilityCheckResponse{Available: check.Available}
	if check.Available {
		resp.Message = "Costume is available for these dates"
	} else {
		resp.Message = fmt.Sprintf("Costume is already reserved from %s to %s",
			check.Blocking.Range.Start.Format(reservation.DateFormat),
			check.Blocking.Range.End.Format(reservation.DateFormat))
	}
	c.JSON(http.StatusOK, resp)
}

// respondError maps conflict errors to 409 and defers everything else to
// the shared error responder.
func (h *Handler) respondError(c *gin.Context, err error) {
	var conflict *reservation.ConflictError
	if errors.As(err, &conflict) {
		payload := gin.H{
			"error":          conflict.Error(),
			"blocking_range": gin.H{"start_date": conflict.Blocking.Start.Format(reservation.DateFormat), "end_date": conflict.Blocking.End.Format(reservation.DateFormat)},
		}
		if !conflict.NextAvailable.IsZero() {
			payload["next_available_date"] = conflict.NextAvailable.Format(reservation.DateFormat)
		}
		c.JSON(http.StatusConflict, payload)
		return
	}

	response.Error(c, err)
}

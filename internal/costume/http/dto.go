package http

import (
	"time"

	"github.com/costumerental/costume-rental-backend/internal/costume"
	"github.com/costumerental/costume-rental-backend/internal/reservation"
)

// CostumeTag is a compact costume reference embedded in other responses.
type CostumeTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateCostumeBody struct {
	Name  string  `json:"name" binding:"required,max=255"`
	Size  string  `json:"size" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Image string  `json:"image"`
}

type CostumeResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Size              string    `json:"size"`
	Price             float64   `json:"price"`
	Image             string    `json:"image"`
	IsAvailable       bool      `json:"is_available"`
	NextAvailableDate *string   `json:"next_available_date"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewCostumeResponse(c *costume.Costume, av reservation.Availability) CostumeResponse {
	resp := CostumeResponse{
		ID:          c.ID,
		Name:        c.Name,
		Size:        c.Size,
		Price:       c.Price,
		Image:       c.Image,
		IsAvailable: av.IsAvailable,
		CreatedAt:   c.CreatedAt,
	}
	if av.NextAvailableDate != nil {
		s := av.NextAvailableDate.Format(reservation.DateFormat)
		resp.NextAvailableDate = &s
	}
	return resp
}

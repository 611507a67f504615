package costume

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("costume not found")
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrEmptySize    = errors.New("size cannot be empty")
	ErrInvalidPrice = errors.New("price must be greater than zero")
	ErrNoImage      = errors.New("costume has no image")
	ErrNotAnImage   = errors.New("uploaded file is not a valid image")
)

// Costume represents a rentable costume.
type Costume struct {
	ID        string // UUID
	Name      string
	Size      string
	Price     float64
	Image     string // storage path of the costume photo
	CreatedAt time.Time
}

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/costumerental/costume-rental-backend/internal/costume"
	"github.com/costumerental/costume-rental-backend/internal/pkg/request"
	"github.com/costumerental/costume-rental-backend/internal/reservation"
)

// maxImageBytes bounds costume photo uploads.
const maxImageBytes = 10 << 20

type Handler struct {
	service    costume.Service
	resService reservation.Service
}

func NewHandler(service costume.Service, resService reservation.Service) *Handler {
	return &Handler{
		service:    service,
		resService: resService,
	}
}

// List returns all costumes, each decorated with its projected availability.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	costumes, err := h.service.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list costumes"})
		return
	}

	items := make([]CostumeResponse, 0, len(costumes))
	for _, cos := range costumes {
		av, err := h.resService.AvailabilityFor(ctx, cos.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
			return
		}
		items = append(items, NewCostumeResponse(cos, av))
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid costume id"})
		return
	}

	ctx := c.Request.Context()

	cos, err := h.service.GetByID(ctx, uri.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	av, err := h.resService.AvailabilityFor(ctx, cos.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
		return
	}

	c.JSON(http.StatusOK, NewCostumeResponse(cos, av))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateCostumeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	cos, err := h.service.Create(c.Request.Context(), costume.CreateRequest{
		Name:  body.Name,
		Size:  body.Size,
		Price: body.Price,
		Image: body.Image,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Costume added successfully",
		"data":    NewCostumeResponse(cos, reservation.Availability{IsAvailable: true}),
	})
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid costume id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Costume deleted successfully"})
}

// UploadImage replaces the costume's photo. Admin only.
func (h *Handler) UploadImage(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid costume id"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the maximum allowed size"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer src.Close()

	cos, err := h.service.UploadImage(c.Request.Context(), uri.ID, src)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Costume image updated successfully",
		"data":    gin.H{"id": cos.ID, "image": cos.Image},
	})
}

// GetImage streams the costume's photo, or its thumbnail with ?thumb=true.
func (h *Handler) GetImage(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid costume id"})
		return
	}

	thumb := c.Query("thumb") == "true"

	rc, err := h.service.OpenImage(c.Request.Context(), uri.ID, thumb)
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, costume.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, costume.ErrNoImage):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, costume.ErrEmptyName),
		errors.Is(err, costume.ErrEmptySize),
		errors.Is(err, costume.ErrInvalidPrice),
		errors.Is(err, costume.ErrNotAnImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

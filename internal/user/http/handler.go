package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/costumerental/costume-rental-backend/internal/auth"
	"github.com/costumerental/costume-rental-backend/internal/user"
)

type Handler struct {
	service    user.Service
	jwtManager *auth.JWTManager
}

func NewHandler(service user.Service, jwtManager *auth.JWTManager) *Handler {
	return &Handler{
		service:    service,
		jwtManager: jwtManager,
	}
}

// Register creates a new client account and returns an access token.
// Administrator accounts are provisioned out of band.
func (h *Handler) Register(c *gin.Context) {
	var body RegisterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	u, err := h.service.Register(c.Request.Context(), user.RegisterRequest{
		Email:    body.Email,
		Password: body.Password,
		Name:     body.Name,
		Role:     user.RoleClient,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailAlreadyUsed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, user.ErrEmailRequired),
			errors.Is(err, user.ErrNameRequired),
			errors.Is(err, user.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		}
		return
	}

	h.respondWithToken(c, http.StatusCreated, u)
}

func (h *Handler) Login(c *gin.Context) {
	var body LoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u, err := h.service.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to login"})
		return
	}

	h.respondWithToken(c, http.StatusOK, u)
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(c *gin.Context) {
	userID := auth.GetUserID(c)

	u, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}

	c.JSON(http.StatusOK, NewUserResponse(u))
}

func (h *Handler) respondWithToken(c *gin.Context, status int, u *user.User) {
	token, err := h.jwtManager.GenerateAccessToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(status, AuthResponse{
		AccessToken: token,
		User:        NewUserResponse(u),
	})
}

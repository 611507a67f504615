package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/costumerental/costume-rental-backend/internal/auth"
	"github.com/costumerental/costume-rental-backend/internal/costume"
	costumeHttp "github.com/costumerental/costume-rental-backend/internal/costume/http"
	"github.com/costumerental/costume-rental-backend/internal/reservation"
	reservationHttp "github.com/costumerental/costume-rental-backend/internal/reservation/http"
	"github.com/costumerental/costume-rental-backend/internal/user"
	userHttp "github.com/costumerental/costume-rental-backend/internal/user/http"
)

// Config holds everything the router needs to assemble the API.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService        user.Service
	CostumeService     costume.Service
	ReservationService reservation.Service
	JWTManager         *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: global middleware (logger,
// recovery, CORS) and the per-module route groups under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	costumeHandler := costumeHttp.NewHandler(cfg.CostumeService, cfg.ReservationService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		costumeHttp.RegisterRoutes(v1, costumeHandler, authMiddleware, adminMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware, adminMiddleware)
	}

	return r
}

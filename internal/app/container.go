package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/costumerental/costume-rental-backend/internal/api"
	"github.com/costumerental/costume-rental-backend/internal/auth"
	"github.com/costumerental/costume-rental-backend/internal/costume"
	"github.com/costumerental/costume-rental-backend/internal/pkg/clock"
	"github.com/costumerental/costume-rental-backend/internal/pkg/storage"
	"github.com/costumerental/costume-rental-backend/internal/reservation"
	"github.com/costumerental/costume-rental-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	FileStore    storage.Storage
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	clk := clock.NewSystemClock()

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Costume Module
	costumeRepo := costume.NewPgxRepository(cfg.DBPool)
	imageStore := costume.NewImageStore(cfg.FileStore)
	costumeService := costume.NewService(costumeRepo, imageStore)

	// Reservation Module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)
	reservationService := reservation.NewService(reservationRepo, costumeService, clk)

	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		UserService:        userService,
		CostumeService:     costumeService,
		ReservationService: reservationService,
		JWTManager:         jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}

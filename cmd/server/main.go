package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/costumerental/costume-rental-backend/internal/app"
	"github.com/costumerental/costume-rental-backend/internal/config"
	"github.com/costumerental/costume-rental-backend/internal/db"
	"github.com/costumerental/costume-rental-backend/internal/pkg/storage"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	fileStore, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		log.Fatalf("failed to init file storage: %v", err)
	}

	container := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		DBPool:       pool,
		FileStore:    fileStore,
		JWTSecret:    cfg.JWTSecret,
		JWTTTL:       cfg.JWTAccessTokenTTL,
		BcryptCost:   cfg.BcryptCost,
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	go func() {
		log.Printf("server running on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("server exited gracefully")
}

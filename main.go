package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"invoice-dashboard/config"
	"invoice-dashboard/internal/app"
	"invoice-dashboard/internal/database"
	"invoice-dashboard/internal/server"

	"github.com/go-playground/validator/v10"
)

// @title           Invoice Dashboard API
// @version         1.0
// @description     Server backing the invoice dashboard: invoice CRUD over Postgres with a cached list view and credentials sign-in.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}

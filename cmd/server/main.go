package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/csbs-dept/portal-api/internal/auth"
	"github.com/csbs-dept/portal-api/internal/config"
	"github.com/csbs-dept/portal-api/internal/database"
	"github.com/csbs-dept/portal-api/internal/handlers"
	"github.com/csbs-dept/portal-api/internal/notifier"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Handlers
	var n notifier.Notifier
	if discordNotifier, err := notifier.NewDiscordNotifier(cfg); err != nil {
		log.Printf("Discord notifier not initialized: %v", err)
	} else {
		n = discordNotifier
	}

	authHandler := auth.NewAuthHandler(cfg)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, db, authHandler, n)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

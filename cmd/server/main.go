package main

import (
	"log"

	"github.com/dreyes/vitrina/internal/config"
	"github.com/dreyes/vitrina/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		// slog is not configured yet; the standard logger is fine for setup failures.
		log.Fatalf("configuration error: %v", err)
	}

	// Create a new server instance.
	s := server.New(cfg)

	// Register all application routes.
	s.RegisterRoutes()

	// Start the server.
	s.Start()
}

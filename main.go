package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"padaria-backoffice/app"
	"padaria-backoffice/config"
	"padaria-backoffice/db"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		} else {
			log.Printf("Loaded environment variables from .env")
		}
	}

	configPath := os.Getenv("APP_CONFIG")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", configPath, err)
	}

	// Initialize application
	if err := app.Initialize(cfg); err != nil {
		log.Fatal(err)
	}
	defer db.CloseDB()

	log.Printf("Server starting on %s", cfg.HTTP.Addr)
	if err := http.ListenAndServe(cfg.HTTP.Addr, nil); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

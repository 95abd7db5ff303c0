package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"armario-outfits/app"
	"armario-outfits/db"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("ENV") != "production" {
		// Use Overload to ensure .env values override system environment variables
		envPath := ".env"
		if err := godotenv.Overload(envPath); err != nil {
			log.Printf("Warning: .env file not found at %s, using system environment variables", envPath)
		} else {
			log.Printf("Successfully loaded environment variables from %s", envPath)
		}
	}

	// Initialize application
	if err := app.Initialize(context.Background(), http.DefaultServeMux); err != nil {
		log.Fatal(err)
	}
	defer db.CloseDB()

	addr := app.Addr()
	log.Printf("Server starting on %s", addr)
	log.Printf("Generate outfits endpoint: POST http://%s/api/outfits/generate", addr)

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/writewell/writewell/internal/app"
)

func main() {
	// Optional .env for local development; real deployments use the environment.
	_ = godotenv.Load()

	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ writewell failed to start: %v", err)
	}
}

package main

import (
	"log"

	"klodtattoo_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; deployed environments set real variables.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

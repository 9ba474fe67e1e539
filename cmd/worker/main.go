package main

import (
	"log"

	"github.com/fieldstock/inventory-backend/internal/audit"
	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/fieldstock/inventory-backend/internal/database"
	"github.com/fieldstock/inventory-backend/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := logging.Init(&cfg.Logging); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	worker := audit.NewWorker(&cfg.Redis, db.Queries())

	log.Println("Starting audit worker...")
	if err := worker.Run(); err != nil {
		log.Fatalf("Worker exited: %v", err)
	}
}

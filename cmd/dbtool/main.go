package main

import (
	"database/sql"
	"log"
	"os"
	"strings"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	destSeedPath := config.Get("DEST_SEED_PATH", "data/seeds/destinations.json")
	transportSeedPath := config.Get("TRANSPORT_SEED_PATH", "data/seeds/transport.json")
	if err := initAndSeed(db, destSeedPath, transportSeedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(db *sql.DB, destSeedPath, transportSeedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedPostgresDestinationsFromJSON(db, destSeedPath); err != nil {
		log.Fatalf("destination seeding failed: %v", err)
	}
	if err := repositories.SeedPostgresTransportFromJSON(db, transportSeedPath); err != nil {
		log.Fatalf("transport seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}

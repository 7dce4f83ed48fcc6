package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"
	"trip-planner-service/internal/adapters/activities"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/adapters/transport"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/config"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite catalog, SQL transport graph, static
// activity provider) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	destSeedPath := config.Get("DEST_SEED_PATH", "data/seeds/destinations.json")
	transportSeedPath := config.Get("TRANSPORT_SEED_PATH", "data/seeds/transport.json")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed the catalog and transport graph on startup
	// for local runs.
	if err := initAndSeed(db, destSeedPath, transportSeedPath); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteDestinationRepository(db)
	graph := transport.NewSQLTransportGraph(db)
	provider := activities.NewStaticActivityProvider()
	router := api.NewRouter(repo, graph, provider)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, destSeedPath, transportSeedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedDestinationsFromJSON(db, destSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedTransportFromJSON(db, transportSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

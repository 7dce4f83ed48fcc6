package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDestinationsQuery := `
	CREATE TABLE IF NOT EXISTS destinations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		region TEXT NOT NULL,
		interests TEXT NOT NULL,
		suitable_pace TEXT NOT NULL,
		minimum_days INTEGER NOT NULL,
		weather_sensitive INTEGER NOT NULL,
		position INTEGER NOT NULL
	);
	`

	createTransportQuery := `
	CREATE TABLE IF NOT EXISTS transport_connections (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        method TEXT NOT NULL,
        duration TEXT NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_transport_connections_destination_origin
    ON transport_connections(destination, origin);
	`

	statements := []string{
		createDestinationsQuery,
		createTransportQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type DestinationSeed struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Region           string   `json:"region"`
	Interests        []string `json:"interests"`
	SuitablePace     []string `json:"suitable_pace"`
	MinimumDays      int      `json:"minimum_days"`
	WeatherSensitive bool     `json:"weather_sensitive"`
}

type TransportSeed struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Method      string `json:"method"`
	Duration    string `json:"duration"`
}

// Populate the catalog from a JSON seed file.
// Seed order becomes the curated catalog order.
func SeedDestinationsFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed destinations: read %q: %w", jsonPath, err)
	}

	var data []DestinationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed destinations: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("seed destinations: item at index %d: id cannot be empty", i+1)
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed destinations: item %q: name cannot be empty", item.ID)
		}
		if item.MinimumDays < 1 {
			return fmt.Errorf("seed destinations: item %q: minimum_days must be >= 1, got %d", item.ID, item.MinimumDays)
		}
		if !validRegion(item.Region) {
			return fmt.Errorf("seed destinations: item %q: unknown region %q", item.ID, item.Region)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed destinations: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO destinations (
		id,
		name,
		region,
		interests,
		suitable_pace,
		minimum_days,
		weather_sensitive,
		position
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed destinations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, d := range data {
		weatherSensitive := 0
		if d.WeatherSensitive {
			weatherSensitive = 1
		}

		_, err := stmt.Exec(
			d.ID,
			d.Name,
			d.Region,
			strings.Join(d.Interests, ","),
			strings.Join(d.SuitablePace, ","),
			d.MinimumDays,
			weatherSensitive,
			i,
		)
		if err != nil {
			return fmt.Errorf("seed destinations: insert id=%q: %w", d.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed destinations: commit tx: %w", err)
	}

	return nil
}

// Populate the transport graph from a JSON seed file.
// Edges are directional and inserted exactly as curated; no reverse edges
// are inferred.
func SeedTransportFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed transport: read %q: %w", jsonPath, err)
	}

	var data []TransportSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed transport: parse json: %w", err)
	}

	for i, e := range data {
		if strings.TrimSpace(e.Origin) == "" || strings.TrimSpace(e.Destination) == "" {
			return fmt.Errorf("seed transport: edge at index %d: origin and destination cannot be empty", i+1)
		}
		if strings.TrimSpace(e.Method) == "" {
			return fmt.Errorf("seed transport: edge %q -> %q: method cannot be empty", e.Origin, e.Destination)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed transport: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO transport_connections (
		origin,
		destination,
		method,
		duration
	)
	VALUES (?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed transport: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range data {
		if _, err := stmt.Exec(e.Origin, e.Destination, e.Method, e.Duration); err != nil {
			return fmt.Errorf("seed transport: insert %q -> %q: %w", e.Origin, e.Destination, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed transport: commit tx: %w", err)
	}

	return nil
}

func validRegion(region string) bool {
	switch region {
	case "North", "East", "South", "West", "Central":
		return true
	}
	return false
}

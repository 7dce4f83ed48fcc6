package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Postgres variants of schema initialization and seeding, used by the
// dbtool for shared environments. pgx's database/sql driver only accepts
// $n placeholders, so these cannot share the SQLite statements.

func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
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
		`,
		`
		CREATE TABLE IF NOT EXISTS transport_connections (
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			method TEXT NOT NULL,
			duration TEXT NOT NULL,
			PRIMARY KEY (origin, destination)
		);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_transport_connections_destination_origin
		ON transport_connections(destination, origin);
		`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

func SeedPostgresDestinationsFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed destinations: read %q: %w", jsonPath, err)
	}

	var data []DestinationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed destinations: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed destinations: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO destinations (
		id, name, region, interests, suitable_pace, minimum_days, weather_sensitive, position
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		region = EXCLUDED.region,
		interests = EXCLUDED.interests,
		suitable_pace = EXCLUDED.suitable_pace,
		minimum_days = EXCLUDED.minimum_days,
		weather_sensitive = EXCLUDED.weather_sensitive,
		position = EXCLUDED.position;
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

func SeedPostgresTransportFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed transport: read %q: %w", jsonPath, err)
	}

	var data []TransportSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed transport: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed transport: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO transport_connections (origin, destination, method, duration)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (origin, destination) DO UPDATE SET
		method = EXCLUDED.method,
		duration = EXCLUDED.duration;
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

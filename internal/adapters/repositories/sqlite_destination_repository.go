package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// SQLite-backed implementation of the DestinationRepository port.
type SqliteDestinationRepository struct{ DB *sql.DB }

func NewSqliteDestinationRepository(db *sql.DB) *SqliteDestinationRepository {
	return &SqliteDestinationRepository{DB: db}
}

// Return the full catalog in curated order.
func (s *SqliteDestinationRepository) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite destination repository: DB is nil")
	}

	query := `
	SELECT
		id,
		name,
		region,
		interests,
		suitable_pace,
		minimum_days,
		weather_sensitive
	FROM destinations
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list destinations: query destinations table: %w", err)
	}
	defer rows.Close()

	destinations := make([]domain.Destination, 0, 32)
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("list destinations: %w", err)
		}
		destinations = append(destinations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list destinations: row iteration: %w", err)
	}

	return destinations, nil
}

// Return destinations by ID, preserving the order of ids.
// An unknown id is a data error, not a "no results" outcome.
func (s *SqliteDestinationRepository) GetDestinations(ctx context.Context, ids []string) ([]domain.Destination, error) {
	if len(ids) == 0 {
		return []domain.Destination{}, nil
	}

	catalog, err := s.ListDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("get destinations: %w", err)
	}

	byID := make(map[string]domain.Destination, len(catalog))
	for _, d := range catalog {
		byID[d.ID] = d
	}

	destinations := make([]domain.Destination, 0, len(ids))
	for _, id := range ids {
		d, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("get destinations: %w: %q", ports.ErrUnknownDestination, id)
		}
		destinations = append(destinations, d)
	}

	return destinations, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDestination(row rowScanner) (domain.Destination, error) {
	var (
		d                domain.Destination
		region           string
		interests        string
		suitablePace     string
		weatherSensitive int
	)

	err := row.Scan(&d.ID, &d.Name, &region, &interests, &suitablePace, &d.MinimumDays, &weatherSensitive)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("scan row: %w", err)
	}

	d.Region = domain.Region(region)
	d.Interests = splitList(interests)
	d.WeatherSensitive = weatherSensitive != 0

	for _, p := range splitList(suitablePace) {
		d.SuitablePace = append(d.SuitablePace, domain.TravelPace(p))
	}

	return d, nil
}

func splitList(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}

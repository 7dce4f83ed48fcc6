package transport

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

// SQLTransportGraph is a SQL-backed lookup of directed transport edges.
// The underlying table is curated asymmetrically; lookups never infer
// reverse edges and a missing row yields a nil connection, not an error.
type SQLTransportGraph struct {
	DB *sql.DB
}

func NewSQLTransportGraph(db *sql.DB) *SQLTransportGraph {
	return &SQLTransportGraph{DB: db}
}

// Return the connection from origin to destination, or nil when the graph
// has no such edge.
func (s *SQLTransportGraph) GetConnection(
	ctx context.Context,
	origin string,
	destination string,
) (_ *domain.TransportConnection, err error) {
	defer obs.Time(ctx, "transport.graph.GetConnection")(&err)

	results, err := s.GetConnections(ctx, origin, []string{destination})
	if err != nil {
		return nil, err
	}

	return results[destination], nil
}

// Fetch connections for one origin and multiple destinations.
// Destinations without a known edge are absent from the result map.
func (s *SQLTransportGraph) GetConnections(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]*domain.TransportConnection, err error) {
	defer obs.Time(ctx, "transport.graph.GetConnections")(&err)

	if s.DB == nil {
		return nil, errors.New("transport graph: db is nil")
	}

	if origin == "" {
		return nil, errors.New("get connections: origin must not be empty")
	}

	if len(destinations) == 0 {
		return map[string]*domain.TransportConnection{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(destinations))
	ph := make([]string, 0, len(destinations))
	for _, d := range destinations {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}

		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		uniq = append(uniq, d)
		ph = append(ph, "?")
	}

	if len(uniq) == 0 {
		return map[string]*domain.TransportConnection{}, nil
	}

	placeholders := strings.Join(ph, ",")
	args := make([]any, 0, 1+len(uniq))
	args = append(args, origin)
	for _, d := range uniq {
		args = append(args, d)
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
        destination,
        method,
        duration
    FROM transport_connections
    WHERE origin = ?
        AND destination IN (%s);
	`, placeholders)

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get connections: query transport_connections: %w", err)
	}
	defer rows.Close()

	results := make(map[string]*domain.TransportConnection, len(uniq))
	for rows.Next() {
		var (
			destination string
			method      string
			duration    string
		)
		if err := rows.Scan(&destination, &method, &duration); err != nil {
			return nil, fmt.Errorf("get connections: scan row: %w", err)
		}

		results[destination] = &domain.TransportConnection{
			Method:   domain.TransportMethod(method),
			Duration: duration,
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get connections: row iteration: %w", err)
	}

	return results, nil
}

package ports

import (
	"context"
	"trip-planner-service/internal/domain"
)

// Contract for looking up directed transport connections between destinations.
// The graph is static and deliberately sparse: lookups are directional and a
// missing edge yields (nil, nil), never an error.
type TransportGraph interface {
	// Return the connection from origin to destination, or nil when no
	// direct connection is known.
	GetConnection(ctx context.Context, origin string, destination string) (*domain.TransportConnection, error)
}

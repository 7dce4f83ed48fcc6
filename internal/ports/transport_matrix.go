package ports

import (
	"context"
	"trip-planner-service/internal/domain"
)

// Optional extension of TransportGraph that supports batched lookups.
type TransportMatrix interface {
	TransportGraph
	// Return connections from one origin to many destinations.
	// Destinations without a known edge are absent from the result map.
	GetConnections(ctx context.Context, origin string, destinations []string) (map[string]*domain.TransportConnection, error)
}

package ports

import (
	"context"
	"errors"
	"trip-planner-service/internal/domain"
)

// ErrUnknownDestination marks a lookup for an id absent from the catalog.
// Callers use errors.Is to distinguish bad input from infrastructure failure.
var ErrUnknownDestination = errors.New("unknown destination id")

// Port: a boundary for retrieving the destination catalog from a data source.
type DestinationRepository interface {
	// Retrieve the full catalog in its curated order.
	ListDestinations(ctx context.Context) ([]domain.Destination, error)

	// Retrieve destinations by ID, preserving the order of ids.
	// An id absent from the catalog is a contract violation and returns an error.
	GetDestinations(ctx context.Context, ids []string) ([]domain.Destination, error)
}

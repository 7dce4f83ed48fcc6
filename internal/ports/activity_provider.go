package ports

import (
	"context"
	"trip-planner-service/internal/domain"
)

// Kind of day a detailed activity lookup is requested for.
type DayType string

const (
	DayTypeTemple  DayType = "temple"
	DayTypeNature  DayType = "nature"
	DayTypeHistory DayType = "history"
	DayTypeFood    DayType = "food"
	DayTypeCity    DayType = "city"
)

// Port: a boundary for retrieving detailed per-day activity suggestions.
// Lookups are keyed by destination and day type; no curated entry yields
// (nil, nil) and the day keeps its high-level activity list only.
type ActivityProvider interface {
	DayActivities(ctx context.Context, destinationID string, dayType DayType) ([]domain.ItineraryItem, error)
}

package activities

import (
	"context"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// StaticActivityProvider serves curated per-day activity blocks from an
// in-memory table keyed by destination and day type. Coverage is sparse:
// most destinations have no curated detail yet and fall back to high-level
// day items only.
type StaticActivityProvider struct {
	items map[string][]domain.ItineraryItem
}

func NewStaticActivityProvider() *StaticActivityProvider {
	return &StaticActivityProvider{items: curatedActivities}
}

func (p *StaticActivityProvider) DayActivities(
	ctx context.Context,
	destinationID string,
	dayType ports.DayType,
) ([]domain.ItineraryItem, error) {
	return p.items[destinationID+"|"+string(dayType)], nil
}

// Curated sample blocks. Keys are "<destination-id>|<day-type>".
var curatedActivities = map[string][]domain.ItineraryItem{
	"beijing|temple": {
		{
			Order:            1,
			Category:         domain.ItemAttraction,
			Title:            "Temple of Heaven",
			ShortDescription: "Ancient imperial complex with stunning architecture",
			Connection: &domain.ItemConnection{
				DistanceKm:  8.5,
				DurationMin: 25,
				Mode:        "metro",
			},
		},
		{
			Order:            2,
			Category:         domain.ItemFood,
			Title:            "Traditional Beijing Lunch",
			ShortDescription: "Authentic Peking duck at local restaurant",
			Connection: &domain.ItemConnection{
				DistanceKm:  3.2,
				DurationMin: 15,
				Mode:        "walk",
			},
		},
		{
			Order:            3,
			Category:         domain.ItemAttraction,
			Title:            "Lama Temple",
			ShortDescription: "Beautiful Tibetan Buddhist monastery",
			Connection: &domain.ItemConnection{
				DistanceKm:  1.5,
				DurationMin: 8,
				Mode:        "walk",
			},
		},
		{
			Order:            4,
			Category:         domain.ItemActivity,
			Title:            "Tea Ceremony Experience",
			ShortDescription: "Learn traditional Chinese tea preparation",
		},
	},
}

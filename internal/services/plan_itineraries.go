package services

import (
	"context"
	"fmt"
	"time"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

type PlanItinerariesRequest struct {
	DestinationIDs []string
	Inputs         domain.UserInputs
	Now            time.Time
}

// PlanItineraries resolves the interested destinations, prefetches every
// directed transport edge and curated activity block they could need, and
// hands the resulting lookup maps to the pure generator.
//
// Unknown destination IDs are a data error and fail hard; missing transport
// edges are expected and simply leave segments without an outbound
// connection.
func PlanItineraries(
	ctx context.Context,
	req PlanItinerariesRequest,
	repo ports.DestinationRepository,
	graph ports.TransportGraph,
	activities ports.ActivityProvider,
) (ItineraryGenerationResult, error) {
	interested, err := repo.GetDestinations(ctx, req.DestinationIDs)
	if err != nil {
		return ItineraryGenerationResult{}, fmt.Errorf("plan itineraries: resolve destinations: %w", err)
	}

	connections, err := prefetchConnections(ctx, graph, interested)
	if err != nil {
		return ItineraryGenerationResult{}, fmt.Errorf("plan itineraries: %w", err)
	}

	dayActivities, err := prefetchActivities(ctx, activities, interested)
	if err != nil {
		return ItineraryGenerationResult{}, fmt.Errorf("plan itineraries: %w", err)
	}

	return GenerateItineraries(interested, req.Inputs, req.Now, connections, dayActivities), nil
}

// prefetchConnections builds "origin|destination" → connection for every
// ordered pair of interested destinations. Batched lookups are preferred
// when the graph supports them.
func prefetchConnections(
	ctx context.Context,
	graph ports.TransportGraph,
	destinations []domain.Destination,
) (map[string]*domain.TransportConnection, error) {
	connections := make(map[string]*domain.TransportConnection)
	matrix, hasMatrix := graph.(ports.TransportMatrix)

	for _, origin := range destinations {
		targets := make([]string, 0, len(destinations)-1)
		for _, t := range destinations {
			if t.ID != origin.ID {
				targets = append(targets, t.ID)
			}
		}

		if hasMatrix {
			results, err := matrix.GetConnections(ctx, origin.ID, targets)
			if err != nil {
				return nil, fmt.Errorf("get connections from %q: %w", origin.ID, err)
			}
			for id, conn := range results {
				if conn != nil {
					connections[TransportKey(origin.ID, id)] = conn
				}
			}
			continue
		}

		for _, id := range targets {
			conn, err := graph.GetConnection(ctx, origin.ID, id)
			if err != nil {
				return nil, fmt.Errorf("get connection %q -> %q: %w", origin.ID, id, err)
			}
			if conn != nil {
				connections[TransportKey(origin.ID, id)] = conn
			}
		}
	}

	return connections, nil
}

// prefetchActivities loads curated temple-day activity blocks for the
// temple-tagged destinations; other day types carry no curated detail yet.
func prefetchActivities(
	ctx context.Context,
	provider ports.ActivityProvider,
	destinations []domain.Destination,
) (map[string][]domain.ItineraryItem, error) {
	byDestination := make(map[string][]domain.ItineraryItem)

	for _, d := range destinations {
		if !d.HasInterest("temples") {
			continue
		}

		items, err := provider.DayActivities(ctx, d.ID, ports.DayTypeTemple)
		if err != nil {
			return nil, fmt.Errorf("get day activities for %q: %w", d.ID, err)
		}
		if len(items) > 0 {
			byDestination[d.ID] = items
		}
	}

	return byDestination, nil
}

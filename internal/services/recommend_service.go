package services

import (
	"context"
	"errors"
	"fmt"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// RecommendDestinations loads the catalog and runs the ranker against it.
// An empty catalog is a contract violation by the data owner, not a
// "no results" outcome, and fails hard.
func RecommendDestinations(
	ctx context.Context,
	inputs domain.UserInputs,
	repo ports.DestinationRepository,
) (RecommendationResult, error) {
	catalog, err := repo.ListDestinations(ctx)
	if err != nil {
		return RecommendationResult{}, fmt.Errorf("recommend destinations: list catalog: %w", err)
	}

	if len(catalog) == 0 {
		return RecommendationResult{}, errors.New("recommend destinations: catalog is empty")
	}

	return Rank(catalog, inputs), nil
}

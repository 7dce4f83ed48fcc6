package services

import "trip-planner-service/internal/domain"

// Order destinations into a sensible touring sequence.
//
// Destinations are grouped by macro-region and the groups concatenated in
// the fixed North → East → South → West → Central order, preserving input
// order within each group. This is a coarse anti-zigzag heuristic, not a
// shortest-path solver: it is deterministic, does no scoring, and passes
// sets of size two or fewer through unchanged.
func OrderByRegion(destinations []domain.Destination) []domain.Destination {
	if len(destinations) <= 2 {
		return destinations
	}

	byRegion := map[domain.Region][]domain.Destination{}
	for _, d := range destinations {
		byRegion[d.Region] = append(byRegion[d.Region], d)
	}

	ordered := make([]domain.Destination, 0, len(destinations))
	for _, region := range domain.RegionRouteOrder {
		ordered = append(ordered, byRegion[region]...)
	}

	return ordered
}

package services

import (
	"fmt"
	"slices"
	"trip-planner-service/internal/domain"
)

// Destination recommendation ranker.
//
// Filters the catalog by interest overlap, scores the survivors with a
// weighted sum (popularity, regional diversity, interest strength, plus flat
// pace and planning-effort bonuses), and returns a bounded list reordered so
// consecutive entries do not cluster by region. When strict filtering leaves
// too few candidates the ranker relaxes to same-region fill instead of
// scoring. Every path is deterministic for identical inputs.

const (
	maxRecommendations = 8
	minStrictMatches   = 3

	popularityWeight = 0.4
	diversityWeight  = 0.35
	interestWeight   = 0.25
)

// Major destinations most first-time visitors should consider.
var firstTimeDestinations = map[string]struct{}{
	"beijing":     {},
	"shanghai":    {},
	"xian":        {},
	"chengdu":     {},
	"guilin":      {},
	"hongkong":    {},
	"suzhou":      {},
	"hangzhou":    {},
	"lijiang":     {},
	"zhangjiajie": {},
}

// Destinations with UNESCO World Heritage recognition.
var unescoSites = map[string]struct{}{
	"beijing":        {},
	"xian":           {},
	"guilin":         {},
	"suzhou":         {},
	"hangzhou":       {},
	"huangshan":      {},
	"pingyao":        {},
	"lijiang":        {},
	"jiuzhaigou":     {},
	"zhangye-danxia": {},
	"hongkong":       {},
	"luoyang":        {},
	"datong":         {},
}

// Destinations reachable on the high-speed rail network.
var highSpeedRailCities = map[string]struct{}{
	"beijing":   {},
	"shanghai":  {},
	"xian":      {},
	"hangzhou":  {},
	"suzhou":    {},
	"nanjing":   {},
	"guangzhou": {},
	"shenzhen":  {},
	"wuhan":     {},
	"changsha":  {},
	"chengdu":   {},
	"chongqing": {},
}

// Ranker-internal scoring record; created per ranking call and discarded
// after sorting.
type scoredDestination struct {
	destination     domain.Destination
	score           float64
	interestMatches int
}

// Result of one ranking call.
// Relaxed reports that strict interest filtering found too few candidates
// and same-region destinations were added without scoring.
type RecommendationResult struct {
	Destinations []domain.Destination
	Relaxed      bool
	Message      string
}

// Rank filters and orders catalog destinations against the user's inputs.
// It never fails: empty interests and zero matches both degrade to an empty
// result carrying a guidance message.
func Rank(catalog []domain.Destination, inputs domain.UserInputs) RecommendationResult {
	if len(inputs.Interests) == 0 {
		return RecommendationResult{
			Destinations: []domain.Destination{},
			Message:      "Please select at least one interest to see recommendations.",
		}
	}

	// Hard filter: at least one shared interest tag, catalog order preserved.
	filtered := make([]domain.Destination, 0, len(catalog))
	for _, d := range catalog {
		if d.HasAnyInterest(inputs.Interests) {
			filtered = append(filtered, d)
		}
	}

	if len(filtered) == 0 {
		return RecommendationResult{
			Destinations: []domain.Destination{},
			Message:      "No destinations match your interests. Try selecting different interests.",
		}
	}

	if len(filtered) < minStrictMatches {
		return relaxByRegion(catalog, filtered)
	}

	// Score pass. The per-region counter advances destination-by-destination
	// so earlier catalog entries in a region outscore later ones. Selection
	// below keeps its own independent counter.
	scoringRegions := map[domain.Region]int{}
	scored := make([]scoredDestination, 0, len(filtered))

	for _, d := range filtered {
		total := popularityScore(d) * popularityWeight
		total += diversityScore(d, scoringRegions) * diversityWeight
		total += interestScore(d, inputs.Interests) * interestWeight
		total += paceScore(d, inputs.Pace)
		total += effortScore(d, inputs.PlanningEffort)

		scoringRegions[d.Region]++

		scored = append(scored, scoredDestination{
			destination:     d,
			score:           total,
			interestMatches: len(d.MatchedInterests(inputs.Interests)),
		})
	}

	// Descending score; tie-break by matched-interest count. The stable sort
	// keeps catalog order for full ties so ranking is reproducible.
	slices.SortStableFunc(scored, func(a, b scoredDestination) int {
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		return b.interestMatches - a.interestMatches
	})

	// Selection walk with its own per-region bookkeeping counter.
	selected := make([]domain.Destination, 0, maxRecommendations)
	selectedRegions := map[domain.Region]int{}
	for _, s := range scored {
		if len(selected) >= maxRecommendations {
			break
		}
		selectedRegions[s.destination.Region]++
		selected = append(selected, s.destination)
	}

	return RecommendationResult{
		Destinations: alternateRegions(selected),
		Relaxed:      false,
	}
}

// relaxByRegion widens a too-small strict match set with other destinations
// from the same regions, in catalog order, skipping scoring entirely.
func relaxByRegion(catalog, matched []domain.Destination) RecommendationResult {
	regions := map[domain.Region]struct{}{}
	inMatched := map[string]struct{}{}
	for _, d := range matched {
		regions[d.Region] = struct{}{}
		inMatched[d.ID] = struct{}{}
	}

	combined := slices.Clone(matched)
	for _, d := range catalog {
		if len(combined) >= maxRecommendations {
			break
		}
		if _, ok := regions[d.Region]; !ok {
			continue
		}
		if _, ok := inMatched[d.ID]; ok {
			continue
		}
		combined = append(combined, d)
	}

	return RecommendationResult{
		Destinations: combined,
		Relaxed:      true,
		Message: fmt.Sprintf(
			"We found %d matches. We've included nearby destinations to give you more options.",
			len(matched),
		),
	}
}

// popularityScore rates first-timer suitability (max 10).
func popularityScore(d domain.Destination) float64 {
	score := 0.0

	if _, ok := firstTimeDestinations[d.ID]; ok {
		score += 10
	}
	if _, ok := unescoSites[d.ID]; ok {
		score += 8
	}
	if _, ok := highSpeedRailCities[d.ID]; ok {
		score += 5
	}

	return min(score, 10)
}

// diversityScore rewards regions not yet represented in the running counter.
func diversityScore(d domain.Destination, regionCounts map[domain.Region]int) float64 {
	switch regionCounts[d.Region] {
	case 0:
		return 10
	case 1:
		return 5
	default:
		return -5
	}
}

// interestScore rates interest overlap (max 10), with a bonus when the
// destination covers the user's first-listed interest.
func interestScore(d domain.Destination, interests []string) float64 {
	score := float64(len(d.MatchedInterests(interests))) * 5

	if len(interests) > 0 && d.HasInterest(interests[0]) {
		score += 3
	}

	return min(score, 10)
}

// paceScore is a flat bonus when the destination suits the chosen pace.
func paceScore(d domain.Destination, pace domain.TravelPace) float64 {
	if pace == "" {
		return 0
	}
	if d.SuitsPace(pace) {
		return 5
	}
	return 0
}

// effortScore rewards matching destinations to the traveler's appetite for
// planning work: hidden gems for high-effort planners, must-sees for
// low-effort ones.
func effortScore(d domain.Destination, effort domain.PlanningEffort) float64 {
	_, mustSee := firstTimeDestinations[d.ID]

	switch {
	case effort == domain.EffortHigh && !mustSee:
		return 3
	case effort == domain.EffortLow && mustSee:
		return 3
	case effort == domain.EffortMedium:
		return 2
	default:
		return 0
	}
}

// alternateRegions reorders the selected list round-robin across regions
// (in order of first appearance) so the display does not cluster by region.
// Relative order within each region is preserved.
func alternateRegions(selected []domain.Destination) []domain.Destination {
	regionOrder := make([]domain.Region, 0, len(selected))
	queues := map[domain.Region][]domain.Destination{}
	for _, d := range selected {
		if _, ok := queues[d.Region]; !ok {
			regionOrder = append(regionOrder, d.Region)
		}
		queues[d.Region] = append(queues[d.Region], d)
	}

	alternated := make([]domain.Destination, 0, len(selected))
	for len(alternated) < len(selected) {
		for _, region := range regionOrder {
			if len(queues[region]) == 0 {
				continue
			}
			alternated = append(alternated, queues[region][0])
			queues[region] = queues[region][1:]
		}
	}

	return alternated
}

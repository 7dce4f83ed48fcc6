package services

import (
	"fmt"
	"strings"
	"time"
	"trip-planner-service/internal/domain"
)

// Itinerary generation.
//
// Produces up to four themed plan variants from the destinations a traveler
// marked interested. Each variant orders its destinations with the route
// optimizer, allocates nights against the trip length, synthesizes
// day-by-day plans, attaches inter-city transport segments, and computes
// summary stats and trade-off notes. Transport lookups come from a
// prefetched "origin|destination" map, so generation itself performs no
// I/O and is deterministic apart from the timestamp embedded in plan IDs.

const maxPlanVariants = 4

// Interest vocabularies selecting destinations for the themed variants.
var (
	natureInterests  = []string{"mountains", "national-parks", "pandas"}
	cityInterests    = []string{"city-skylines", "ancient-cities", "street-food", "night-markets"}
	cultureInterests = []string{"temples", "classical-gardens", "tea-culture", "ancient-cities"}
)

// Result of one generation call.
type ItineraryGenerationResult struct {
	Itineraries []domain.ItineraryPlan
	Message     string
	Warnings    []string
}

// TransportKey builds the lookup key for a directed transport edge.
func TransportKey(origin, destination string) string {
	return origin + "|" + destination
}

// GenerateItineraries builds themed itinerary variants for the interested
// destinations. It never fails: zero or one destinations degrade to an
// empty result with guidance, and missing transport edges produce segments
// without an outbound connection.
func GenerateItineraries(
	interested []domain.Destination,
	inputs domain.UserInputs,
	now time.Time,
	transport map[string]*domain.TransportConnection,
	activities map[string][]domain.ItineraryItem,
) ItineraryGenerationResult {
	if len(interested) == 0 {
		return ItineraryGenerationResult{
			Itineraries: []domain.ItineraryPlan{},
			Message:     "No destinations selected. Please mark destinations as interested first.",
		}
	}

	if len(interested) == 1 {
		return ItineraryGenerationResult{
			Itineraries: []domain.ItineraryPlan{},
			Message:     "Only one destination selected. Itineraries work best with 2+ destinations.",
			Warnings:    []string{"Consider adding more destinations for a multi-city trip."},
		}
	}

	plans := make([]domain.ItineraryPlan, 0, maxPlanVariants)

	appendPlan := func(p *domain.ItineraryPlan) {
		if p != nil {
			plans = append(plans, *p)
		}
	}

	// Balanced always runs; the themed variants need at least two
	// destinations matching their vocabulary.
	appendPlan(generateItinerary(
		firstN(interested, 5), inputs, domain.ThemeBalanced, "Balanced Explorer", now, transport, activities,
	))

	if nature := filterByInterests(interested, natureInterests); len(nature) >= 2 {
		appendPlan(generateItinerary(
			firstN(nature, 4), inputs, domain.ThemeNatureFocused, "Nature Immersion", now, transport, activities,
		))
	}

	if cities := filterByInterests(interested, cityInterests); len(cities) >= 2 {
		appendPlan(generateItinerary(
			firstN(cities, 4), inputs, domain.ThemeCitiesFirst, "Urban Explorer", now, transport, activities,
		))
	}

	if culture := filterByInterests(interested, cultureInterests); len(culture) >= 2 {
		appendPlan(generateItinerary(
			firstN(culture, 4), inputs, domain.ThemeCultureDeep, "Cultural Journey", now, transport, activities,
		))
	}

	unique := dedupeBySequence(plans)
	if len(unique) > maxPlanVariants {
		unique = unique[:maxPlanVariants]
	}

	result := ItineraryGenerationResult{Itineraries: unique}
	if len(unique) < 3 {
		result.Message = "Limited itinerary options based on your selections. Consider adding more destinations."
	}

	return result
}

// generateItinerary builds a single plan variant, or nil for an empty set.
func generateItinerary(
	destinations []domain.Destination,
	inputs domain.UserInputs,
	theme domain.ItineraryTheme,
	name string,
	now time.Time,
	transport map[string]*domain.TransportConnection,
	activities map[string][]domain.ItineraryItem,
) *domain.ItineraryPlan {
	if len(destinations) == 0 {
		return nil
	}

	ordered := OrderByRegion(destinations)

	tripLength := inputs.TripLength
	if tripLength == 0 {
		tripLength = 10
	}

	route := make([]domain.RouteSegment, 0, len(ordered))
	currentDay := 1
	totalNights := 0

	for i, destination := range ordered {
		isFirst := i == 0
		isLast := i == len(ordered)-1

		nights := minimumNights(destination, inputs.Interests)

		// The arrival city gets a settling-in buffer; the final city is
		// capped so the route fits the requested trip length.
		if isFirst {
			nights = max(nights, 2)
		}
		if isLast && totalNights+nights > tripLength-1 {
			nights = max(tripLength-totalNights-1, 1)
		}

		arrivalDay := currentDay
		departureDay := arrivalDay + nights

		var nextTransport *domain.TransportConnection
		if !isLast {
			if conn, ok := transport[TransportKey(destination.ID, ordered[i+1].ID)]; ok && conn != nil {
				c := *conn
				c.TravelDay = departureDay
				nextTransport = &c
			}
		}

		role := domain.RoleMainDestination
		if isFirst {
			role = domain.RoleArrivalCity
		}
		if isLast {
			role = domain.RoleDepartureCity
		}

		segment := domain.RouteSegment{
			DestinationID:   destination.ID,
			DestinationName: destination.Name,
			Nights:          nights,
			ArrivalDay:      arrivalDay,
			DepartureDay:    departureDay,
			Role:            role,
			NextTransport:   nextTransport,
		}
		segment.Days = buildDayPlans(segment, destination, activities)

		route = append(route, segment)

		// A present connection consumes one travel day; a missing edge
		// advances straight to the next stay (known quirk, kept as-is).
		currentDay = departureDay
		if nextTransport != nil {
			currentDay++
		}
		totalNights += nights
	}

	totalDays := currentDay

	stats := computeStats(route)
	ids := make([]string, 0, len(ordered))
	for _, d := range ordered {
		ids = append(ids, d.ID)
	}

	pace := inputs.Pace
	if pace == "" {
		pace = domain.PaceBalanced
	}

	return &domain.ItineraryPlan{
		ID:             fmt.Sprintf("itinerary-%s-%d", theme, now.UnixMilli()),
		Name:           name,
		Theme:          theme,
		Tagline:        fmt.Sprintf("%d-day journey through %d destinations", totalDays, len(ordered)),
		TotalDays:      totalDays,
		TotalNights:    totalNights,
		DestinationIDs: ids,
		Route:          route,
		BestFor: domain.BestFor{
			Paces:         []domain.TravelPace{pace},
			Interests:     inputs.Interests,
			TripLengthMin: totalDays - 2,
			TripLengthMax: totalDays + 2,
		},
		Tradeoffs: tradeoffs(stats, totalDays, len(ordered)),
		Stats:     stats,
	}
}

// minimumNights derives the nights a stay needs: the destination's minimum
// stay less the arrival day, floored at one, plus an extra night when three
// or more of the traveler's interests match.
func minimumNights(d domain.Destination, interests []string) int {
	nights := max(d.MinimumDays-1, 1)

	if len(d.MatchedInterests(interests)) >= 3 {
		nights++
	}

	return nights
}

func computeStats(route []domain.RouteSegment) domain.PlanStats {
	var stats domain.PlanStats

	for _, segment := range route {
		if segment.NextTransport != nil {
			if segment.NextTransport.Method == domain.MethodFlight {
				stats.TotalFlights++
			} else {
				stats.TotalTrainRides++
			}
			stats.TravelDays++
		}

		for _, day := range segment.Days {
			switch day.Pace {
			case domain.DayPaceLight:
				stats.LightDays++
			case domain.DayPaceModerate:
				stats.ModerateDays++
			case domain.DayPacePacked:
				stats.PackedDays++
			}
		}
	}

	return stats
}

func tradeoffs(stats domain.PlanStats, totalDays, destinationCount int) []string {
	notes := make([]string, 0, 3)

	if stats.TotalFlights > 2 {
		notes = append(notes, "Multiple flights required for this route")
	}
	if 2*stats.PackedDays > totalDays {
		notes = append(notes, "Fast-paced itinerary with many activities")
	}
	if destinationCount > 4 {
		notes = append(notes, "Covers many destinations - limited time per city")
	}

	return notes
}

// filterByInterests keeps destinations sharing at least one tag with the
// vocabulary, preserving input order.
func filterByInterests(destinations []domain.Destination, vocabulary []string) []domain.Destination {
	kept := make([]domain.Destination, 0, len(destinations))
	for _, d := range destinations {
		if d.HasAnyInterest(vocabulary) {
			kept = append(kept, d)
		}
	}
	return kept
}

// dedupeBySequence drops plans whose destination-id sequence already
// appeared, keeping the first occurrence.
func dedupeBySequence(plans []domain.ItineraryPlan) []domain.ItineraryPlan {
	seen := map[string]struct{}{}
	unique := make([]domain.ItineraryPlan, 0, len(plans))

	for _, p := range plans {
		key := strings.Join(p.DestinationIDs, ",")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, p)
	}

	return unique
}

func firstN(destinations []domain.Destination, n int) []domain.Destination {
	if len(destinations) > n {
		return destinations[:n]
	}
	return destinations
}

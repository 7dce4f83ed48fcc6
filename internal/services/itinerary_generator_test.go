package services

import (
	"fmt"
	"reflect"
	"testing"
	"time"
	"trip-planner-service/internal/domain"
)

func planDestinations() []domain.Destination {
	return []domain.Destination{
		{
			ID: "beijing", Name: "Beijing", Region: domain.RegionNorth,
			Interests:    []string{"temples", "ancient-cities", "city-skylines", "tea-culture"},
			SuitablePace: []domain.TravelPace{domain.PaceBalanced, domain.PaceFast},
			MinimumDays:  2,
		},
		{
			ID: "xian", Name: "Xi'an", Region: domain.RegionNorth,
			Interests:    []string{"ancient-cities", "street-food", "regional-cuisine", "temples"},
			SuitablePace: []domain.TravelPace{domain.PaceSlow, domain.PaceBalanced},
			MinimumDays:  2,
		},
		{
			ID: "chengdu", Name: "Chengdu", Region: domain.RegionWest,
			Interests:    []string{"pandas", "street-food", "regional-cuisine", "tea-culture"},
			SuitablePace: []domain.TravelPace{domain.PaceSlow, domain.PaceBalanced},
			MinimumDays:  2,
		},
		{
			ID: "guilin", Name: "Guilin & Yangshuo", Region: domain.RegionSouth,
			Interests:        []string{"mountains", "national-parks"},
			SuitablePace:     []domain.TravelPace{domain.PaceSlow, domain.PaceBalanced},
			MinimumDays:      2,
			WeatherSensitive: true,
		},
	}
}

func planTransport() map[string]*domain.TransportConnection {
	return map[string]*domain.TransportConnection{
		TransportKey("beijing", "xian"):    {Method: domain.MethodHighSpeedTrain, Duration: "5h"},
		TransportKey("xian", "guilin"):     {Method: domain.MethodFlight, Duration: "2h"},
		TransportKey("guilin", "chengdu"):  {Method: domain.MethodFlight, Duration: "2h"},
		TransportKey("beijing", "chengdu"): {Method: domain.MethodFlight, Duration: "3h"},
	}
}

// checkDayArithmetic verifies nights + travel days == totalDays - 1 for a plan.
func checkDayArithmetic(t *testing.T, plan domain.ItineraryPlan) {
	t.Helper()

	nights := 0
	for _, segment := range plan.Route {
		nights += segment.Nights
	}
	if nights != plan.TotalNights {
		t.Fatalf("plan %q: segment nights sum %d, TotalNights %d", plan.Name, nights, plan.TotalNights)
	}
	if nights+plan.Stats.TravelDays != plan.TotalDays-1 {
		t.Fatalf("plan %q: nights %d + travel %d != totalDays %d - 1",
			plan.Name, nights, plan.Stats.TravelDays, plan.TotalDays)
	}
}

func TestGenerateItinerariesTenDayRoute(t *testing.T) {
	inputs := domain.UserInputs{
		Interests:  []string{"ancient-cities", "mountains"},
		TripLength: 10,
		Pace:       domain.PaceBalanced,
	}
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	result := GenerateItineraries(planDestinations(), inputs, now, planTransport(), nil)

	// Balanced, nature and cities variants survive; the culture variant
	// collapses into the cities sequence and is deduplicated.
	if len(result.Itineraries) != 3 {
		t.Fatalf("expected 3 itineraries, got %d", len(result.Itineraries))
	}
	if result.Message != "" {
		t.Fatalf("unexpected message: %q", result.Message)
	}

	balanced := result.Itineraries[0]
	if balanced.Theme != domain.ThemeBalanced {
		t.Fatalf("first plan theme = %q, want %q", balanced.Theme, domain.ThemeBalanced)
	}
	wantID := fmt.Sprintf("itinerary-balanced-%d", now.UnixMilli())
	if balanced.ID != wantID {
		t.Fatalf("plan id = %q, want %q", balanced.ID, wantID)
	}

	wantRoute := []string{"beijing", "xian", "guilin", "chengdu"}
	if len(balanced.DestinationIDs) != len(wantRoute) {
		t.Fatalf("expected %d destinations, got %v", len(wantRoute), balanced.DestinationIDs)
	}
	for i, id := range wantRoute {
		if balanced.DestinationIDs[i] != id {
			t.Fatalf("route position %d = %q, want %q", i, balanced.DestinationIDs[i], id)
		}
	}

	if balanced.TotalDays != 9 {
		t.Fatalf("totalDays = %d, want 9", balanced.TotalDays)
	}
	if balanced.TotalNights != 5 {
		t.Fatalf("totalNights = %d, want 5", balanced.TotalNights)
	}
	if balanced.Stats.TravelDays != 3 {
		t.Fatalf("travelDays = %d, want 3", balanced.Stats.TravelDays)
	}
	if balanced.Stats.TotalFlights != 2 || balanced.Stats.TotalTrainRides != 1 {
		t.Fatalf("flights = %d, trains = %d, want 2 and 1",
			balanced.Stats.TotalFlights, balanced.Stats.TotalTrainRides)
	}
	if balanced.Stats.LightDays != 7 || balanced.Stats.ModerateDays != 2 || balanced.Stats.PackedDays != 0 {
		t.Fatalf("pace histogram light=%d moderate=%d packed=%d, want 7/2/0",
			balanced.Stats.LightDays, balanced.Stats.ModerateDays, balanced.Stats.PackedDays)
	}
	if len(balanced.Tradeoffs) != 0 {
		t.Fatalf("unexpected tradeoffs: %v", balanced.Tradeoffs)
	}

	if balanced.Route[0].Role != domain.RoleArrivalCity {
		t.Fatalf("first segment role = %q, want %q", balanced.Route[0].Role, domain.RoleArrivalCity)
	}
	if balanced.Route[3].Role != domain.RoleDepartureCity {
		t.Fatalf("last segment role = %q, want %q", balanced.Route[3].Role, domain.RoleDepartureCity)
	}

	for _, plan := range result.Itineraries {
		checkDayArithmetic(t, plan)

		seen := map[string]struct{}{}
		for _, id := range plan.DestinationIDs {
			if _, ok := seen[id]; ok {
				t.Fatalf("plan %q visits %q twice", plan.Name, id)
			}
			seen[id] = struct{}{}
		}
	}
}

func TestGenerateItinerariesNoDestinations(t *testing.T) {
	result := GenerateItineraries(nil, domain.UserInputs{}, time.Now(), nil, nil)

	if len(result.Itineraries) != 0 {
		t.Fatalf("expected no itineraries, got %d", len(result.Itineraries))
	}
	want := "No destinations selected. Please mark destinations as interested first."
	if result.Message != want {
		t.Fatalf("message = %q, want %q", result.Message, want)
	}
}

func TestGenerateItinerariesSingleDestination(t *testing.T) {
	result := GenerateItineraries(planDestinations()[:1], domain.UserInputs{}, time.Now(), nil, nil)

	if len(result.Itineraries) != 0 {
		t.Fatalf("expected no itineraries, got %d", len(result.Itineraries))
	}
	want := "Only one destination selected. Itineraries work best with 2+ destinations."
	if result.Message != want {
		t.Fatalf("message = %q, want %q", result.Message, want)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", result.Warnings)
	}
}

// A missing transport edge leaves the segment without an outbound connection
// and consumes no travel day: the next arrival lands on the departure day.
func TestGenerateItinerariesMissingEdgeNoTravelDay(t *testing.T) {
	interested := planDestinations()[:2] // beijing, xian
	inputs := domain.UserInputs{Interests: []string{"temples"}}

	result := GenerateItineraries(
		interested, inputs, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		map[string]*domain.TransportConnection{}, nil,
	)

	if len(result.Itineraries) != 1 {
		t.Fatalf("expected 1 itinerary, got %d", len(result.Itineraries))
	}
	want := "Limited itinerary options based on your selections. Consider adding more destinations."
	if result.Message != want {
		t.Fatalf("message = %q, want %q", result.Message, want)
	}

	plan := result.Itineraries[0]
	if plan.Route[0].NextTransport != nil {
		t.Fatalf("expected no outbound transport on first segment")
	}
	if plan.Stats.TravelDays != 0 {
		t.Fatalf("travelDays = %d, want 0", plan.Stats.TravelDays)
	}
	if plan.Route[1].ArrivalDay != plan.Route[0].DepartureDay {
		t.Fatalf("second arrival day %d, want departure day %d",
			plan.Route[1].ArrivalDay, plan.Route[0].DepartureDay)
	}
	if plan.TotalDays != 4 {
		t.Fatalf("totalDays = %d, want 4", plan.TotalDays)
	}
	checkDayArithmetic(t, plan)
}

func TestGenerateItinerariesLastCityNightFloor(t *testing.T) {
	interested := []domain.Destination{
		{ID: "shijiazhuang", Name: "Shijiazhuang", Region: domain.RegionNorth,
			Interests: []string{"temples"}, MinimumDays: 2},
		{ID: "qingdao", Name: "Qingdao", Region: domain.RegionEast,
			Interests: []string{"temples"}, MinimumDays: 4},
	}
	transport := map[string]*domain.TransportConnection{
		TransportKey("shijiazhuang", "qingdao"): {Method: domain.MethodHighSpeedTrain, Duration: "3h"},
	}
	inputs := domain.UserInputs{Interests: []string{"temples"}, TripLength: 4}

	result := GenerateItineraries(
		interested, inputs, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), transport, nil,
	)

	plan := result.Itineraries[0]
	if plan.Route[1].Nights != 1 {
		t.Fatalf("last segment nights = %d, want 1 (capped to trip length)", plan.Route[1].Nights)
	}
	if plan.TotalNights != 3 {
		t.Fatalf("totalNights = %d, want 3", plan.TotalNights)
	}
}

func TestGenerateItinerariesInterestBonusNight(t *testing.T) {
	catalog := planDestinations()
	interested := []domain.Destination{catalog[2], catalog[0]} // chengdu, beijing
	transport := map[string]*domain.TransportConnection{
		TransportKey("chengdu", "beijing"): {Method: domain.MethodFlight, Duration: "3h"},
	}
	inputs := domain.UserInputs{Interests: []string{"temples", "ancient-cities", "tea-culture"}}

	result := GenerateItineraries(
		interested, inputs, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), transport, nil,
	)

	// Beijing matches three interests and earns an extra night.
	plan := result.Itineraries[0]
	if plan.Route[1].DestinationID != "beijing" {
		t.Fatalf("second segment = %q, want beijing", plan.Route[1].DestinationID)
	}
	if plan.Route[1].Nights != 2 {
		t.Fatalf("beijing nights = %d, want 2", plan.Route[1].Nights)
	}
}

func TestGenerateItinerariesRegenerationDiffersOnlyByID(t *testing.T) {
	inputs := domain.UserInputs{
		Interests:  []string{"ancient-cities", "mountains"},
		TripLength: 10,
		Pace:       domain.PaceBalanced,
	}

	first := GenerateItineraries(planDestinations(), inputs,
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), planTransport(), nil)
	second := GenerateItineraries(planDestinations(), inputs,
		time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC), planTransport(), nil)

	if len(first.Itineraries) != len(second.Itineraries) {
		t.Fatalf("plan counts differ: %d vs %d", len(first.Itineraries), len(second.Itineraries))
	}

	for i := range first.Itineraries {
		a, b := first.Itineraries[i], second.Itineraries[i]
		if a.ID == b.ID {
			t.Fatalf("plan %d: regenerated id did not change (%q)", i, a.ID)
		}
		a.ID, b.ID = "", ""
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("plan %d differs beyond its id:\n first = %+v\nsecond = %+v", i, a, b)
		}
	}
}

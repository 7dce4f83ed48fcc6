package services

import (
	"testing"
	"trip-planner-service/internal/domain"
)

func TestBuildDayPlansArrivalDepartureAndThemes(t *testing.T) {
	beijing := domain.Destination{
		ID: "beijing", Name: "Beijing", Region: domain.RegionNorth,
		Interests:   []string{"temples", "ancient-cities", "city-skylines", "tea-culture"},
		MinimumDays: 2,
	}
	segment := domain.RouteSegment{
		DestinationID:   "beijing",
		DestinationName: "Beijing",
		Nights:          3,
		ArrivalDay:      1,
		DepartureDay:    4,
		NextTransport:   &domain.TransportConnection{Method: domain.MethodHighSpeedTrain, Duration: "5h"},
	}

	days := buildDayPlans(segment, beijing, nil)

	if len(days) != 4 {
		t.Fatalf("expected 4 days for a 3-night stay, got %d", len(days))
	}

	if days[0].Theme != "Arrival & Orientation" {
		t.Fatalf("day 1 theme = %q, want arrival", days[0].Theme)
	}
	if days[0].Pace != domain.DayPaceLight {
		t.Fatalf("day 1 pace = %q, want light", days[0].Pace)
	}
	if days[0].Notes != "Light day to recover from travel" {
		t.Fatalf("day 1 notes = %q", days[0].Notes)
	}

	// Temple days land on odd local days; day 2 falls back to the history
	// theme from the ancient-cities tag.
	if days[1].Theme != "Historical & Cultural Exploration" {
		t.Fatalf("day 2 theme = %q, want history", days[1].Theme)
	}
	if days[2].Theme != "Temples & Spiritual Sites" {
		t.Fatalf("day 3 theme = %q, want temples", days[2].Theme)
	}
	if days[2].StructuredItems != nil {
		t.Fatalf("day 3 should carry no structured items, got %d", len(days[2].StructuredItems))
	}

	if days[3].Theme != "Departure" {
		t.Fatalf("day 4 theme = %q, want departure", days[3].Theme)
	}
	if days[3].Items[1] != "Depart by high speed train" {
		t.Fatalf("day 4 departure item = %q", days[3].Items[1])
	}

	for i, day := range days {
		if day.DayNumber != i+1 || day.LocalDay != i+1 {
			t.Fatalf("day %d numbered DayNumber=%d LocalDay=%d", i+1, day.DayNumber, day.LocalDay)
		}
	}
}

func TestBuildDayPlansRestOverride(t *testing.T) {
	guilin := domain.Destination{
		ID: "guilin", Name: "Guilin & Yangshuo", Region: domain.RegionSouth,
		Interests:   []string{"mountains", "national-parks"},
		MinimumDays: 2,
	}
	// Final stay: no outbound transport, so the last day stays an exploration
	// day instead of a departure day.
	segment := domain.RouteSegment{
		DestinationID:   "guilin",
		DestinationName: "Guilin & Yangshuo",
		Nights:          3,
		ArrivalDay:      3,
		DepartureDay:    6,
	}

	days := buildDayPlans(segment, guilin, nil)

	if days[1].Theme != "Nature & Scenic Areas" || days[1].Pace != domain.DayPacePacked {
		t.Fatalf("day 4 = %q/%q, want packed nature day", days[1].Theme, days[1].Pace)
	}

	// Trip day 5 hits the every-fifth-day rest buffer.
	if days[2].DayNumber != 5 {
		t.Fatalf("day 3 of stay numbered %d, want trip day 5", days[2].DayNumber)
	}
	if days[2].Theme != "Rest & Leisure Day" {
		t.Fatalf("rest day theme = %q", days[2].Theme)
	}
	if days[2].Pace != domain.DayPaceLight {
		t.Fatalf("rest day pace = %q, want light", days[2].Pace)
	}

	if days[3].Theme != "Nature & Scenic Areas" {
		t.Fatalf("final day theme = %q, want exploration without transport", days[3].Theme)
	}
}

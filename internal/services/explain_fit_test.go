package services

import (
	"testing"
	"trip-planner-service/internal/domain"
)

func TestExplainFitJoinsAllReasons(t *testing.T) {
	beijing := domain.Destination{
		ID: "beijing", Name: "Beijing", Region: domain.RegionNorth,
		Interests:    []string{"temples", "ancient-cities", "city-skylines", "tea-culture"},
		SuitablePace: []domain.TravelPace{domain.PaceBalanced, domain.PaceFast},
		MinimumDays:  2,
	}
	inputs := domain.UserInputs{
		Interests:          []string{"temples", "tea-culture"},
		TripLength:         10,
		Pace:               domain.PaceBalanced,
		WeatherFlexibility: domain.WeatherComfortFocused,
	}

	got := ExplainFit(beijing, inputs)
	want := "Your interests align with Beijing's strengths in temples and tea-culture. " +
		"With 10 days total, you have enough time to explore Beijing properly (2 days recommended). " +
		"Beijing works well at your balanced travel pace. " +
		"Beijing has reliable weather year-round, fitting your comfort preference."

	if got != want {
		t.Fatalf("explanation mismatch:\n got = %q\nwant = %q", got, want)
	}
}

func TestExplainFitNamesAtMostTwoInterests(t *testing.T) {
	beijing := domain.Destination{
		ID: "beijing", Name: "Beijing", Region: domain.RegionNorth,
		Interests:   []string{"temples", "ancient-cities", "city-skylines", "tea-culture"},
		MinimumDays: 2,
	}
	inputs := domain.UserInputs{
		Interests: []string{"temples", "ancient-cities", "tea-culture"},
	}

	got := ExplainFit(beijing, inputs)
	want := "Your interests align with Beijing's strengths in temples and ancient-cities."

	if got != want {
		t.Fatalf("explanation mismatch:\n got = %q\nwant = %q", got, want)
	}
}

func TestExplainFitFallback(t *testing.T) {
	guilin := domain.Destination{
		ID: "guilin", Name: "Guilin & Yangshuo", Region: domain.RegionSouth,
		Interests:        []string{"mountains", "national-parks"},
		SuitablePace:     []domain.TravelPace{domain.PaceSlow, domain.PaceBalanced},
		MinimumDays:      2,
		WeatherSensitive: true,
	}
	inputs := domain.UserInputs{
		Interests:          []string{"street-food"},
		TripLength:         1,
		Pace:               domain.PaceFast,
		WeatherFlexibility: domain.WeatherFlexible,
	}

	got := ExplainFit(guilin, inputs)
	want := "Guilin & Yangshuo is a well-regarded destination for first-time visitors to China."

	if got != want {
		t.Fatalf("explanation mismatch:\n got = %q\nwant = %q", got, want)
	}
}

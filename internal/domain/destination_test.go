package domain

import "testing"

func TestDestinationMatchedInterests(t *testing.T) {
	beijing := Destination{
		ID:        "beijing",
		Interests: []string{"temples", "ancient-cities", "city-skylines", "tea-culture"},
	}

	matched := beijing.MatchedInterests([]string{"tea-culture", "temples", "beaches"})

	// Destination tag order wins, not the order of the user's interests.
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %v", matched)
	}
	if matched[0] != "temples" || matched[1] != "tea-culture" {
		t.Fatalf("matched = %v, want [temples tea-culture]", matched)
	}
}

func TestDestinationHasAnyInterest(t *testing.T) {
	guilin := Destination{ID: "guilin", Interests: []string{"mountains", "national-parks"}}

	if !guilin.HasAnyInterest([]string{"beaches", "mountains"}) {
		t.Fatalf("expected a shared interest")
	}
	if guilin.HasAnyInterest([]string{"beaches", "temples"}) {
		t.Fatalf("expected no shared interest")
	}
	if guilin.HasAnyInterest(nil) {
		t.Fatalf("empty interests should match nothing")
	}
}

func TestDestinationSuitsPace(t *testing.T) {
	chengdu := Destination{ID: "chengdu", SuitablePace: []TravelPace{PaceSlow, PaceBalanced}}

	if !chengdu.SuitsPace(PaceBalanced) {
		t.Fatalf("expected balanced pace to suit")
	}
	if chengdu.SuitsPace(PaceFast) {
		t.Fatalf("expected fast pace not to suit")
	}
}

package domain

// Declared intensity preference of a traveler.
type TravelPace string

const (
	PaceSlow     TravelPace = "slow"
	PaceBalanced TravelPace = "balanced"
	PaceFast     TravelPace = "fast"
)

// How much planning work the traveler wants to put in themselves.
type PlanningEffort string

const (
	EffortLow    PlanningEffort = "low"
	EffortMedium PlanningEffort = "medium"
	EffortHigh   PlanningEffort = "high"
)

// Tolerance for weather disruption when choosing destinations.
type WeatherFlexibility string

const (
	WeatherFlexible       WeatherFlexibility = "flexible"
	WeatherSomewhat       WeatherFlexibility = "somewhat"
	WeatherComfortFocused WeatherFlexibility = "comfort-focused"
)

// Answers collected once per planning session.
// Interests are ordered by priority (first entry is the strongest signal).
// The planning core reads these values and never modifies them; validation
// against the interest vocabulary and the 3-30 day range is the caller's job.
type UserInputs struct {
	Interests          []string
	TripLength         int
	Pace               TravelPace
	PlanningEffort     PlanningEffort
	WeatherFlexibility WeatherFlexibility
}

// FirstInterest returns the traveler's highest-priority interest,
// or "" when no interests were supplied.
func (u UserInputs) FirstInterest() string {
	if len(u.Interests) == 0 {
		return ""
	}
	return u.Interests[0]
}

package domain

// Macro-region of China used for coarse route ordering.
type Region string

const (
	RegionNorth   Region = "North"
	RegionEast    Region = "East"
	RegionSouth   Region = "South"
	RegionWest    Region = "West"
	RegionCentral Region = "Central"
)

// RegionRouteOrder is the preferred touring sequence across macro-regions.
// Routing north to south and east to west avoids most backtracking for
// first-time visitors arriving through a northern or eastern gateway city.
var RegionRouteOrder = []Region{
	RegionNorth,
	RegionEast,
	RegionSouth,
	RegionWest,
	RegionCentral,
}

// Represents a city or area a traveler can visit.
// Destinations are loaded from the catalog and never mutated by the
// planning core; all planning output references them by ID.
type Destination struct {
	ID               string
	Name             string
	Region           Region
	Interests        []string
	SuitablePace     []TravelPace
	MinimumDays      int
	WeatherSensitive bool
}

// MatchedInterests returns the destination's interest tags that also appear
// in the given user interests, preserving the destination's tag order.
func (d Destination) MatchedInterests(interests []string) []string {
	matched := make([]string, 0, len(d.Interests))
	for _, tag := range d.Interests {
		for _, want := range interests {
			if tag == want {
				matched = append(matched, tag)
				break
			}
		}
	}
	return matched
}

// HasInterest reports whether the destination carries the given interest tag.
func (d Destination) HasInterest(tag string) bool {
	for _, t := range d.Interests {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyInterest reports whether the destination shares at least one tag
// with the given interests.
func (d Destination) HasAnyInterest(interests []string) bool {
	for _, want := range interests {
		if d.HasInterest(want) {
			return true
		}
	}
	return false
}

// SuitsPace reports whether the destination is suited to the given pace.
func (d Destination) SuitsPace(pace TravelPace) bool {
	for _, p := range d.SuitablePace {
		if p == pace {
			return true
		}
	}
	return false
}

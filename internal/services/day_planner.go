package services

import (
	"fmt"
	"strings"
	"trip-planner-service/internal/domain"
)

// Day themes synthesized for a stay.
const (
	themeArrival   = "Arrival & Orientation"
	themeDeparture = "Departure"
	themeRest      = "Rest & Leisure Day"
	themeTemples   = "Temples & Spiritual Sites"
	themeNature    = "Nature & Scenic Areas"
	themeHistory   = "Historical & Cultural Exploration"
	themeFood      = "Food & Local Life"
	themeCity      = "City Exploration"
)

// Rest buffer: every fifth trip day is forced light, except day one.
const restDayInterval = 5

// buildDayPlans synthesizes the day-by-day plan for one stay.
//
// Day one is always an arrival day and the last day a departure day when an
// outbound transport exists. Remaining days pick a theme from the
// destination's interest tags, with temple days alternating on even
// local-day offsets. The every-fifth-day rest override takes priority over
// the interest-based theme. Detailed activity items come from the prefetched
// activities map (keyed by destination ID) and attach only on the second
// local day of a temple-themed stay.
func buildDayPlans(
	segment domain.RouteSegment,
	destination domain.Destination,
	activities map[string][]domain.ItineraryItem,
) []domain.DayPlan {
	stayDays := segment.Nights + 1
	days := make([]domain.DayPlan, 0, stayDays)

	for i := 0; i < stayDays; i++ {
		localDay := i + 1
		tripDay := segment.ArrivalDay + i

		switch {
		case localDay == 1:
			days = append(days, domain.DayPlan{
				DayNumber: tripDay,
				LocalDay:  localDay,
				Theme:     themeArrival,
				Intent:    "Settle in and get your bearings",
				Items: []string{
					"Arrive in " + destination.Name,
					"Check into hotel",
					"Evening walk around neighborhood",
				},
				Pace:  domain.DayPaceLight,
				Notes: "Light day to recover from travel",
			})

		case localDay == stayDays && segment.NextTransport != nil:
			days = append(days, domain.DayPlan{
				DayNumber: tripDay,
				LocalDay:  localDay,
				Theme:     themeDeparture,
				Intent:    "Prepare for next destination",
				Items: []string{
					"Morning: Last-minute sights or shopping",
					fmt.Sprintf("Depart by %s", methodLabel(segment.NextTransport.Method)),
				},
				Pace: domain.DayPaceLight,
			})

		default:
			days = append(days, explorationDay(localDay, tripDay, destination, activities))
		}
	}

	return days
}

// explorationDay picks a theme for a full day from the destination's
// interest tags, then applies the periodic rest override.
func explorationDay(
	localDay, tripDay int,
	destination domain.Destination,
	activities map[string][]domain.ItineraryItem,
) domain.DayPlan {
	offset := localDay - 1

	var (
		theme      string
		items      []string
		structured []domain.ItineraryItem
	)
	pace := domain.DayPaceModerate

	switch {
	case destination.HasInterest("temples") && offset%2 == 0:
		theme = themeTemples
		items = []string{
			"Morning: Visit major temple",
			"Afternoon: Explore secondary shrines",
			"Evening: Traditional tea ceremony",
		}
		if localDay == 2 {
			structured = activities[destination.ID]
		}

	case destination.HasInterest("mountains") || destination.HasInterest("national-parks"):
		theme = themeNature
		items = []string{
			"Full day: Hiking or nature park visit",
			"Packed lunch",
			"Return by evening",
		}
		pace = domain.DayPacePacked

	case destination.HasInterest("ancient-cities") || destination.HasInterest("classical-gardens"):
		theme = themeHistory
		items = []string{
			"Morning: Ancient architecture walk",
			"Lunch: Local specialty",
			"Afternoon: Museum or historic site",
		}

	case destination.HasInterest("street-food") || destination.HasInterest("night-markets"):
		theme = themeFood
		items = []string{
			"Morning: Local market visit",
			"Afternoon: Cooking class or food tour",
			"Evening: Night market exploration",
		}

	default:
		theme = themeCity
		items = []string{
			"Morning: Major landmark",
			"Afternoon: Free exploration",
			"Evening: Skyline or waterfront",
		}
	}

	// Rest buffer overrides whatever theme was picked above.
	if tripDay%restDayInterval == 0 && tripDay > 1 {
		theme = themeRest
		pace = domain.DayPaceLight
		structured = nil
		items = []string{
			"Slow morning - sleep in",
			"Optional: Light sightseeing or shopping",
			"Afternoon: Relax at hotel or café",
		}
	}

	return domain.DayPlan{
		DayNumber:       tripDay,
		LocalDay:        localDay,
		Theme:           theme,
		Intent:          "Full exploration day",
		Items:           items,
		StructuredItems: structured,
		Pace:            pace,
	}
}

func methodLabel(method domain.TransportMethod) string {
	return strings.ReplaceAll(string(method), "-", " ")
}

package services

import (
	"fmt"
	"strings"
	"trip-planner-service/internal/domain"
)

// ExplainFit builds a one-paragraph explanation of why a destination suits
// the given inputs. It is a pure function of both arguments; destinations
// carry no explanation logic of their own.
func ExplainFit(d domain.Destination, inputs domain.UserInputs) string {
	reasons := make([]string, 0, 4)

	matched := d.MatchedInterests(inputs.Interests)
	if len(matched) > 0 {
		named := matched
		if len(named) > 2 {
			named = named[:2]
		}
		reasons = append(reasons, fmt.Sprintf(
			"Your interests align with %s's strengths in %s.",
			d.Name, strings.Join(named, " and "),
		))
	}

	if inputs.TripLength >= d.MinimumDays {
		reasons = append(reasons, fmt.Sprintf(
			"With %d days total, you have enough time to explore %s properly (%d days recommended).",
			inputs.TripLength, d.Name, d.MinimumDays,
		))
	}

	if inputs.Pace != "" && d.SuitsPace(inputs.Pace) {
		reasons = append(reasons, fmt.Sprintf(
			"%s works well at your %s travel pace.", d.Name, inputs.Pace,
		))
	}

	if inputs.WeatherFlexibility == domain.WeatherComfortFocused && !d.WeatherSensitive {
		reasons = append(reasons, fmt.Sprintf(
			"%s has reliable weather year-round, fitting your comfort preference.", d.Name,
		))
	}

	if len(reasons) == 0 {
		return fmt.Sprintf(
			"%s is a well-regarded destination for first-time visitors to China.", d.Name,
		)
	}

	return strings.Join(reasons, " ")
}

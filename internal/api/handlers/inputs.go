package handlers

import (
	"fmt"
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
)

const (
	maxInterests  = 5
	minTripLength = 3
	maxTripLength = 30
)

// parseUserInputs validates a request body against the onboarding contract
// and converts it to domain inputs. The planning core assumes validated
// inputs, so all enum and range checks live here.
// The second return value is a client-facing problem description, empty on
// success.
func parseUserInputs(req dto.UserInputsRequest, requireTripLength bool) (domain.UserInputs, string) {
	if len(req.Interests) > maxInterests {
		return domain.UserInputs{}, fmt.Sprintf("at most %d interests are allowed", maxInterests)
	}

	if requireTripLength || req.TripLength != 0 {
		if req.TripLength < minTripLength || req.TripLength > maxTripLength {
			return domain.UserInputs{}, fmt.Sprintf(
				"trip_length must be between %d and %d", minTripLength, maxTripLength,
			)
		}
	}

	pace := domain.TravelPace(req.Pace)
	switch pace {
	case "", domain.PaceSlow, domain.PaceBalanced, domain.PaceFast:
	default:
		return domain.UserInputs{}, "pace must be one of slow, balanced, fast"
	}

	effort := domain.PlanningEffort(req.PlanningEffort)
	switch effort {
	case "", domain.EffortLow, domain.EffortMedium, domain.EffortHigh:
	default:
		return domain.UserInputs{}, "planning_effort must be one of low, medium, high"
	}

	weather := domain.WeatherFlexibility(req.WeatherFlexibility)
	switch weather {
	case "", domain.WeatherFlexible, domain.WeatherSomewhat, domain.WeatherComfortFocused:
	default:
		return domain.UserInputs{}, "weather_flexibility must be one of flexible, somewhat, comfort-focused"
	}

	return domain.UserInputs{
		Interests:          req.Interests,
		TripLength:         req.TripLength,
		Pace:               pace,
		PlanningEffort:     effort,
		WeatherFlexibility: weather,
	}, ""
}

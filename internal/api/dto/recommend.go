package dto

type UserInputsRequest struct {
	Interests          []string `json:"interests"`
	TripLength         int      `json:"trip_length"`
	Pace               string   `json:"pace"`
	PlanningEffort     string   `json:"planning_effort"`
	WeatherFlexibility string   `json:"weather_flexibility"`
}

type RecommendRequest struct {
	UserInputsRequest
}

type RecommendedDestinationResponse struct {
	DestinationResponse
	InterestMatches []string `json:"interest_matches"`
	WhyThisFits     string   `json:"why_this_fits"`
}

type RecommendResponse struct {
	Destinations  []RecommendedDestinationResponse `json:"destinations"`
	RelaxedFilter bool                             `json:"relaxed_filter"`
	Message       string                           `json:"message,omitempty"`
}

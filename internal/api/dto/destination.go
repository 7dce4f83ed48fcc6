package dto

type DestinationResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Region           string   `json:"region"`
	Interests        []string `json:"interests"`
	SuitablePace     []string `json:"suitable_pace"`
	MinimumDays      int      `json:"minimum_days"`
	WeatherSensitive bool     `json:"weather_sensitive"`
}

type ListDestinationsResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
}

package dto

type GenerateItinerariesRequest struct {
	DestinationIDs []string `json:"destination_ids"`
	UserInputsRequest
}

type ItemConnectionResponse struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
	Mode        string  `json:"mode"`
}

type ItineraryItemResponse struct {
	Order            int                     `json:"order"`
	Category         string                  `json:"category"`
	Title            string                  `json:"title"`
	ShortDescription string                  `json:"short_description"`
	Connection       *ItemConnectionResponse `json:"connection,omitempty"`
}

type DayPlanResponse struct {
	DayNumber       int                     `json:"day_number"`
	LocalDay        int                     `json:"local_day"`
	Theme           string                  `json:"theme"`
	Intent          string                  `json:"intent"`
	Items           []string                `json:"items"`
	StructuredItems []ItineraryItemResponse `json:"structured_items,omitempty"`
	Pace            string                  `json:"pace"`
	Notes           string                  `json:"notes,omitempty"`
}

type TransportConnectionResponse struct {
	Method    string `json:"method"`
	Duration  string `json:"duration"`
	TravelDay int    `json:"travel_day"`
}

type RouteSegmentResponse struct {
	DestinationID   string                       `json:"destination_id"`
	DestinationName string                       `json:"destination_name"`
	Nights          int                          `json:"nights"`
	ArrivalDay      int                          `json:"arrival_day"`
	DepartureDay    int                          `json:"departure_day"`
	Role            string                       `json:"role"`
	NextTransport   *TransportConnectionResponse `json:"next_transport,omitempty"`
	Days            []DayPlanResponse            `json:"days"`
}

type BestForResponse struct {
	Paces         []string `json:"paces"`
	Interests     []string `json:"interests"`
	TripLengthMin int      `json:"trip_length_min"`
	TripLengthMax int      `json:"trip_length_max"`
}

type PlanStatsResponse struct {
	TotalFlights    int `json:"total_flights"`
	TotalTrainRides int `json:"total_train_rides"`
	LightDays       int `json:"light_days"`
	ModerateDays    int `json:"moderate_days"`
	PackedDays      int `json:"packed_days"`
	TravelDays      int `json:"travel_days"`
}

type ItineraryPlanResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Theme          string                 `json:"theme"`
	Tagline        string                 `json:"tagline"`
	TotalDays      int                    `json:"total_days"`
	TotalNights    int                    `json:"total_nights"`
	DestinationIDs []string               `json:"destination_ids"`
	Route          []RouteSegmentResponse `json:"route"`
	BestFor        BestForResponse        `json:"best_for"`
	Tradeoffs      []string               `json:"tradeoffs"`
	Stats          PlanStatsResponse      `json:"stats"`
}

type GenerateItinerariesResponse struct {
	Itineraries []ItineraryPlanResponse `json:"itineraries"`
	Message     string                  `json:"message,omitempty"`
	Warnings    []string                `json:"warnings,omitempty"`
}

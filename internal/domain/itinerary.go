package domain

// Activity density of a single day.
type DayPace string

const (
	DayPaceLight    DayPace = "light"
	DayPaceModerate DayPace = "moderate"
	DayPacePacked   DayPace = "packed"
)

// Category of a structured itinerary item.
type ItemCategory string

const (
	ItemTransport     ItemCategory = "transport"
	ItemAttraction    ItemCategory = "attraction"
	ItemFood          ItemCategory = "food"
	ItemShopping      ItemCategory = "shopping"
	ItemAccommodation ItemCategory = "accommodation"
	ItemActivity      ItemCategory = "activity"
	ItemRest          ItemCategory = "rest"
)

// How to get from one itinerary item to the next.
type ItemConnection struct {
	DistanceKm  float64
	DurationMin int
	Mode        string
}

// A single typed entry within a day's detailed plan.
type ItineraryItem struct {
	Order            int
	Category         ItemCategory
	Title            string
	ShortDescription string
	Connection       *ItemConnection
}

// Plan for one day of the trip.
// DayNumber counts from the start of the whole trip, LocalDay from the
// start of the current stay; both are 1-based.
type DayPlan struct {
	DayNumber       int
	LocalDay        int
	Theme           string
	Intent          string
	Items           []string
	StructuredItems []ItineraryItem
	Pace            DayPace
	Notes           string
}

// Role a destination plays in the overall route.
type SegmentRole string

const (
	RoleArrivalCity     SegmentRole = "arrival-city"
	RoleMainDestination SegmentRole = "main-destination"
	RoleDepartureCity   SegmentRole = "departure-city"
)

// One continuous stay at one destination inside a plan.
// NextTransport is nil for the final segment, and also for intermediate
// segments when the transport graph has no edge for the pair.
type RouteSegment struct {
	DestinationID   string
	DestinationName string
	Nights          int
	ArrivalDay      int
	DepartureDay    int
	Role            SegmentRole
	NextTransport   *TransportConnection
	Days            []DayPlan
}

// Focus of a generated plan variant.
type ItineraryTheme string

const (
	ThemeBalanced      ItineraryTheme = "balanced"
	ThemeNatureFocused ItineraryTheme = "nature-focused"
	ThemeCitiesFirst   ItineraryTheme = "cities-first"
	ThemeCultureDeep   ItineraryTheme = "culture-deep-dive"
)

// Who a plan suits: declared paces, covered interests, and the trip-length
// window (in days) the plan fits comfortably.
type BestFor struct {
	Paces         []TravelPace
	Interests     []string
	TripLengthMin int
	TripLengthMax int
}

// Aggregate counts across a whole plan.
type PlanStats struct {
	TotalFlights    int
	TotalTrainRides int
	LightDays       int
	ModerateDays    int
	PackedDays      int
	TravelDays      int
}

// A complete generated itinerary.
// An ItineraryPlan is the output of the generator and is immutable planning
// data; each generation call produces fresh plan values.
type ItineraryPlan struct {
	ID             string
	Name           string
	Theme          ItineraryTheme
	Tagline        string
	TotalDays      int
	TotalNights    int
	DestinationIDs []string
	Route          []RouteSegment
	BestFor        BestFor
	Tradeoffs      []string
	Stats          PlanStats
}

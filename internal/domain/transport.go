package domain

// Means of travel between two destinations.
type TransportMethod string

const (
	MethodHighSpeedTrain TransportMethod = "high-speed-train"
	MethodFlight         TransportMethod = "flight"
	MethodOvernightTrain TransportMethod = "overnight-train"
	MethodRegionalTrain  TransportMethod = "regional-train"
	MethodBus            TransportMethod = "bus"
	MethodFerry          TransportMethod = "ferry"
)

// A known directed connection between two destinations.
// The transport graph is directional and deliberately sparse: a missing
// reverse edge means "no known direct connection", not an error.
type TransportConnection struct {
	Method    TransportMethod
	Duration  string
	TravelDay int
}

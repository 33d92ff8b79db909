package serpapi

// Raw response shapes for the SerpApi google_flights engine. Every field is
// optional; missing keys decode to zero values and the normalizer defaults
// them rather than assuming a strict schema.

type Airport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"` // "2006-01-02 15:04", local airport time
}

type Segment struct {
	DepartureAirport Airport `json:"departure_airport"`
	ArrivalAirport   Airport `json:"arrival_airport"`
	Airline          string  `json:"airline"`
	FlightNumber     string  `json:"flight_number"`
	Airplane         string  `json:"airplane"`
	Duration         int     `json:"duration"`
}

type Layover struct {
	Duration int    `json:"duration"` // minutes
	Name     string `json:"name"`
	ID       string `json:"id"`
}

// OfferGroup is one priceable itinerary option: an ordered segment list,
// layovers between them, a total duration and a price. BookURL is not part
// of the wire format; the client attaches the response-level deep link so
// the normalizer can reuse it.
type OfferGroup struct {
	Flights       []Segment `json:"flights"`
	Layovers      []Layover `json:"layovers"`
	TotalDuration int       `json:"total_duration"`
	Price         float64   `json:"price"`
	BookURL       string    `json:"-"`
}

type searchMetadata struct {
	GoogleFlightsURL string `json:"google_flights_url"`
}

type searchResponse struct {
	SearchMetadata searchMetadata `json:"search_metadata"`
	BestFlights    []OfferGroup   `json:"best_flights"`
	OtherFlights   []OfferGroup   `json:"other_flights"`
	Error          string         `json:"error"`
}

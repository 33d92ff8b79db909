package models

type TripType string

const (
	TripOutbound  TripType = "outbound"
	TripReturn    TripType = "return"
	TripRoundTrip TripType = "roundtrip"
)

func ParseTripType(s string) (TripType, bool) {
	switch TripType(s) {
	case TripOutbound, TripReturn, TripRoundTrip:
		return TripType(s), true
	}
	return "", false
}

// Offer is the flattened, display-ready form of one priceable itinerary.
// Times are local clock strings (HH:MM) at the respective airports; no
// timezone conversion is applied.
type Offer struct {
	TripType        TripType `json:"trip_type"`
	Destination     string   `json:"destination"`
	DestCode        string   `json:"dest_code"`
	DepartureDate   string   `json:"departure_date"`
	ReturnDate      string   `json:"return_date,omitempty"`
	Airlines        string   `json:"airlines"`
	DepartTime      string   `json:"depart_time"`
	ArriveTime      string   `json:"arrive_time"`
	ArriveDate      string   `json:"arrive_date"`
	Duration        string   `json:"duration"`
	DurationMinutes int      `json:"duration_minutes"`
	Stops           string   `json:"stops"`
	StopCount       int      `json:"stop_count"`
	Via             string   `json:"via"`
	Price           float64  `json:"price"`
	PriceStr        string   `json:"price_str"`
	Currency        string   `json:"currency"`
	BookURL         string   `json:"book_url"`
}

// Results maps trip type -> destination name -> offers in discovery order.
// Display sorting happens at render time.
type Results map[TripType]map[string][]Offer

func NewResults(tripTypes []TripType, destNames []string) Results {
	r := make(Results, len(tripTypes))
	for _, tt := range tripTypes {
		r[tt] = make(map[string][]Offer, len(destNames))
		for _, name := range destNames {
			r[tt][name] = nil
		}
	}
	return r
}

func (r Results) Total() int {
	total := 0
	for _, byDest := range r {
		for _, offers := range byDest {
			total += len(offers)
		}
	}
	return total
}

package normalizer

import (
	"strings"

	"flight-report/internal/models"
	"flight-report/internal/serpapi"
	"flight-report/pkg/currency"
)

// Params carries the run-level settings the normalizer needs for derived
// fields (fallback booking links, displayed currency).
type Params struct {
	Origin   string
	Currency string
	Adults   int
}

// Normalize flattens one raw offer group into a display-ready Offer. The
// second return value is false when the group carries no flight segments.
//
// Segment timestamps are "YYYY-MM-DD HH:MM" strings in local airport time;
// only the date and clock substrings are extracted, no timezone arithmetic.
// For round trips the response carries the outbound leg plus the combined
// price only, so the record never holds return-leg times.
func Normalize(
	group serpapi.OfferGroup,
	destName, destCode, depDate string,
	tripType models.TripType,
	retDate string,
	p Params,
) (models.Offer, bool) {
	if len(group.Flights) == 0 {
		return models.Offer{}, false
	}

	first := group.Flights[0]
	last := group.Flights[len(group.Flights)-1]

	depAt := first.DepartureAirport.Time
	arrAt := last.ArrivalAirport.Time

	depTime := depAt
	if len(depAt) >= 16 {
		depTime = depAt[11:16]
	}
	arrTime := arrAt
	if len(arrAt) >= 16 {
		arrTime = arrAt[11:16]
	}
	arrDate := ""
	if len(arrAt) >= 10 {
		arrDate = arrAt[:10]
	}

	// Distinct carrier names, first-seen order.
	var airlines []string
	seen := make(map[string]struct{})
	for _, seg := range group.Flights {
		if seg.Airline == "" {
			continue
		}
		if _, ok := seen[seg.Airline]; ok {
			continue
		}
		seen[seg.Airline] = struct{}{}
		airlines = append(airlines, seg.Airline)
	}

	stops := len(group.Layovers)

	duration := ""
	if group.TotalDuration > 0 {
		duration = FormatMinutes(group.TotalDuration)
	}

	// Observed airport codes beat the configured ones for the fallback
	// deep link; a connection may land at a different airport.
	originCode := first.DepartureAirport.ID
	if originCode == "" {
		originCode = p.Origin
	}
	arrivalCode := last.ArrivalAirport.ID
	if arrivalCode == "" {
		arrivalCode = destCode
	}

	bookURL := group.BookURL
	if bookURL == "" {
		bookURL = serpapi.BookingURL(originCode, arrivalCode, depDate, p.Adults)
	}

	return models.Offer{
		TripType:        tripType,
		Destination:     destName,
		DestCode:        destCode,
		DepartureDate:   depDate,
		ReturnDate:      retDate,
		Airlines:        strings.Join(airlines, " / "),
		DepartTime:      depTime,
		ArriveTime:      arrTime,
		ArriveDate:      arrDate,
		Duration:        duration,
		DurationMinutes: group.TotalDuration,
		Stops:           FormatStops(stops),
		StopCount:       stops,
		Via:             FormatLayovers(group.Layovers),
		Price:           group.Price,
		PriceStr:        currency.Format(group.Price),
		Currency:        p.Currency,
		BookURL:         bookURL,
	}, true
}

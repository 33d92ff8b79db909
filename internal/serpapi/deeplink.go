package serpapi

import "fmt"

// BookingURL builds a Google Flights results URL for a one-way trip,
// pre-filled with origin, destination, date and passenger count. Used as a
// fallback when a response carries no deep link of its own.
func BookingURL(origin, destination, date string, adults int) string {
	return fmt.Sprintf(
		"https://www.google.com/travel/flights?f=%s&t=%s&d=%s&return=0&adults=%d&curr=CAD",
		origin, destination, date, adults,
	)
}

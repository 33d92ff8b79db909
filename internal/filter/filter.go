package filter

import "flight-report/internal/models"

// Cutoff excludes offers departing too early on one specific calendar date.
// Both fields must be set for the filter to apply; Date is ISO (YYYY-MM-DD)
// and Time is zero-padded 24-hour HH:MM, so lexicographic comparison equals
// chronological comparison within a day.
type Cutoff struct {
	Date string
	Time string
}

func (c Cutoff) Enabled() bool {
	return c.Date != "" && c.Time != ""
}

// Excludes reports whether the offer departs on the cutoff date strictly
// before the cutoff time. Departures at exactly the cutoff time survive.
func (c Cutoff) Excludes(offer models.Offer) bool {
	if !c.Enabled() {
		return false
	}
	if offer.DepartureDate != c.Date {
		return false
	}
	return offer.DepartTime < c.Time
}

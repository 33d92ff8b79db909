package ranking

import (
	"sort"

	"flight-report/internal/models"
)

// Cheapest returns the lowest-priced offer in the slice. The boolean is
// false for an empty slice.
func Cheapest(offers []models.Offer) (models.Offer, bool) {
	if len(offers) == 0 {
		return models.Offer{}, false
	}
	best := offers[0]
	for _, o := range offers[1:] {
		if o.Price < best.Price {
			best = o
		}
	}
	return best, true
}

// SortOneWay orders offers by departure date, then price ascending. Returns
// a copy; the aggregate keeps discovery order.
func SortOneWay(offers []models.Offer) []models.Offer {
	sorted := make([]models.Offer, len(offers))
	copy(sorted, offers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DepartureDate != sorted[j].DepartureDate {
			return sorted[i].DepartureDate < sorted[j].DepartureDate
		}
		return sorted[i].Price < sorted[j].Price
	})
	return sorted
}

// SortRoundTrip orders offers by departure date, return date, then price
// ascending.
func SortRoundTrip(offers []models.Offer) []models.Offer {
	sorted := make([]models.Offer, len(offers))
	copy(sorted, offers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DepartureDate != sorted[j].DepartureDate {
			return sorted[i].DepartureDate < sorted[j].DepartureDate
		}
		if sorted[i].ReturnDate != sorted[j].ReturnDate {
			return sorted[i].ReturnDate < sorted[j].ReturnDate
		}
		return sorted[i].Price < sorted[j].Price
	})
	return sorted
}

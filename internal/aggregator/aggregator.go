package aggregator

import (
	"context"
	"log/slog"

	"flight-report/internal/config"
	"flight-report/internal/filter"
	"flight-report/internal/models"
	"flight-report/internal/normalizer"
	"flight-report/internal/serpapi"
	"flight-report/pkg/apperr"
)

// Searcher is the one search backend the aggregator drives. Satisfied by
// the live serpapi client and by fakes in tests.
type Searcher interface {
	Search(ctx context.Context, origin, destination, depDate, retDate string) ([]serpapi.OfferGroup, error)
}

// Aggregator drives the normalizer across the full cross-product of
// destinations, dates and trip types. Searches run strictly sequentially,
// destinations outer, dates inner.
type Aggregator struct {
	searcher     Searcher
	origin       string
	destinations []config.Destination
	cutoff       filter.Cutoff
	params       normalizer.Params
	log          *slog.Logger
}

func New(searcher Searcher, cfg *config.Config, log *slog.Logger) *Aggregator {
	return &Aggregator{
		searcher:     searcher,
		origin:       cfg.Origin,
		destinations: cfg.Destinations,
		cutoff:       filter.Cutoff{Date: cfg.EarliestDepDate, Time: cfg.EarliestDepTime},
		params: normalizer.Params{
			Origin:   cfg.Origin,
			Currency: cfg.Currency,
			Adults:   cfg.Adults,
		},
		log: log,
	}
}

// FetchAll searches every destination × date × trip-type combination.
//
// A failed combination is logged and contributes zero offers; only missing
// fixtures and missing credentials abort the fetch phase, since every
// subsequent combination would fail the same way.
func (a *Aggregator) FetchAll(
	ctx context.Context,
	depDates, retDates []string,
	tripTypes []models.TripType,
) (models.Results, error) {
	results := models.NewResults(tripTypes, destinationNames(a.destinations))
	active := make(map[models.TripType]bool, len(tripTypes))
	for _, tt := range tripTypes {
		active[tt] = true
	}

	for _, dest := range a.destinations {

		if active[models.TripOutbound] {
			for _, date := range depDates {
				a.log.Info("searching", "trip", "outbound", "route", a.origin+" -> "+dest.Code, "date", date)
				offers, err := a.collect(ctx, a.origin, dest.Code, date, "", dest, models.TripOutbound, true)
				if err != nil {
					return nil, err
				}
				results[models.TripOutbound][dest.Name] = append(results[models.TripOutbound][dest.Name], offers...)
			}
		}

		if active[models.TripReturn] {
			for _, date := range retDates {
				a.log.Info("searching", "trip", "return", "route", dest.Code+" -> "+a.origin, "date", date)
				offers, err := a.collect(ctx, dest.Code, a.origin, date, "", dest, models.TripReturn, false)
				if err != nil {
					return nil, err
				}
				results[models.TripReturn][dest.Name] = append(results[models.TripReturn][dest.Name], offers...)
			}
		}

		if active[models.TripRoundTrip] {
			for _, dep := range depDates {
				for _, ret := range retDates {
					if ret <= dep {
						// Return must be strictly after departure.
						continue
					}
					a.log.Info("searching", "trip", "roundtrip", "route", a.origin+" <-> "+dest.Code, "depart", dep, "return", ret)
					offers, err := a.collect(ctx, a.origin, dest.Code, dep, ret, dest, models.TripRoundTrip, true)
					if err != nil {
						return nil, err
					}
					results[models.TripRoundTrip][dest.Name] = append(results[models.TripRoundTrip][dest.Name], offers...)
				}
			}
		}
	}

	return results, nil
}

// collect runs one search combination and normalizes the survivors. A nil
// error with an empty slice means the combination failed recoverably.
func (a *Aggregator) collect(
	ctx context.Context,
	searchOrigin, searchDest, depDate, retDate string,
	dest config.Destination,
	tripType models.TripType,
	applyCutoff bool,
) ([]models.Offer, error) {
	groups, err := a.searcher.Search(ctx, searchOrigin, searchDest, depDate, retDate)
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) || apperr.IsCode(err, apperr.CodeConfig) {
			return nil, err
		}
		a.log.Warn("search failed, skipping combination",
			"route", searchOrigin+" -> "+searchDest, "date", depDate, "error", err)
		return nil, nil
	}

	var offers []models.Offer
	for _, group := range groups {
		offer, ok := normalizer.Normalize(group, dest.Name, dest.Code, depDate, tripType, retDate, a.params)
		if !ok {
			continue
		}
		if applyCutoff && a.cutoff.Excludes(offer) {
			continue
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

func destinationNames(dests []config.Destination) []string {
	names := make([]string, 0, len(dests))
	for _, d := range dests {
		names = append(names, d.Name)
	}
	return names
}

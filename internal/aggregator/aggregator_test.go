package aggregator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"flight-report/internal/config"
	"flight-report/internal/models"
	"flight-report/internal/serpapi"
	"flight-report/pkg/apperr"
)

type call struct {
	origin, dest, dep, ret string
}

type fakeSearcher struct {
	calls     []call
	responses map[call][]serpapi.OfferGroup
	errs      map[call]error
}

func (f *fakeSearcher) Search(_ context.Context, origin, dest, dep, ret string) ([]serpapi.OfferGroup, error) {
	c := call{origin, dest, dep, ret}
	f.calls = append(f.calls, c)
	if err, ok := f.errs[c]; ok {
		return nil, err
	}
	return f.responses[c], nil
}

func groupAt(depTime string, price float64) serpapi.OfferGroup {
	return serpapi.OfferGroup{
		Flights: []serpapi.Segment{{
			DepartureAirport: serpapi.Airport{ID: "YYZ", Time: depTime},
			ArrivalAirport:   serpapi.Airport{ID: "NRT", Time: "2026-10-24 15:00"},
			Airline:          "Air Canada",
		}},
		TotalDuration: 800,
		Price:         price,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Origin: "YYZ",
		Destinations: []config.Destination{
			{Name: "Japan (Tokyo)", Code: "NRT", Flag: "JP"},
		},
		Currency: "CAD",
		Adults:   1,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetchAllOutbound(t *testing.T) {
	searcher := &fakeSearcher{
		responses: map[call][]serpapi.OfferGroup{
			{"YYZ", "NRT", "2026-10-23", ""}: {groupAt("2026-10-23 19:30", 1450)},
			{"YYZ", "NRT", "2026-10-24", ""}: {groupAt("2026-10-24 10:00", 1200)},
		},
	}
	agg := New(searcher, testConfig(), discardLogger())

	results, err := agg.FetchAll(context.Background(),
		[]string{"2026-10-23", "2026-10-24"}, nil, []models.TripType{models.TripOutbound})
	require.NoError(t, err)

	offers := results[models.TripOutbound]["Japan (Tokyo)"]
	require.Len(t, offers, 2)
	require.Equal(t, 1450.0, offers[0].Price)
	require.Equal(t, 1200.0, offers[1].Price)
}

func TestFetchAllReturnSwapsRoute(t *testing.T) {
	searcher := &fakeSearcher{
		responses: map[call][]serpapi.OfferGroup{
			{"NRT", "YYZ", "2026-11-05", ""}: {groupAt("2026-11-05 11:00", 990)},
		},
	}
	agg := New(searcher, testConfig(), discardLogger())

	results, err := agg.FetchAll(context.Background(),
		[]string{"2026-10-23"}, []string{"2026-11-05"}, []models.TripType{models.TripReturn})
	require.NoError(t, err)

	require.Equal(t, []call{{"NRT", "YYZ", "2026-11-05", ""}}, searcher.calls)
	require.Len(t, results[models.TripReturn]["Japan (Tokyo)"], 1)
}

func TestFetchAllRoundTripSkipsInvalidPairs(t *testing.T) {
	searcher := &fakeSearcher{responses: map[call][]serpapi.OfferGroup{}}
	agg := New(searcher, testConfig(), discardLogger())

	_, err := agg.FetchAll(context.Background(),
		[]string{"2026-10-23", "2026-11-05"}, []string{"2026-10-23", "2026-11-05"},
		[]models.TripType{models.TripRoundTrip})
	require.NoError(t, err)

	// Only the strictly-later pair is queried; equal or earlier return
	// dates are skipped without a search.
	require.Equal(t, []call{{"YYZ", "NRT", "2026-10-23", "2026-11-05"}}, searcher.calls)
}

func TestFetchAllContinuesPastTransportFailure(t *testing.T) {
	searcher := &fakeSearcher{
		responses: map[call][]serpapi.OfferGroup{
			{"YYZ", "NRT", "2026-10-24", ""}: {groupAt("2026-10-24 10:00", 1200)},
		},
		errs: map[call]error{
			{"YYZ", "NRT", "2026-10-23", ""}: apperr.Wrap(apperr.CodeTransport, "search API status 500", errors.New("boom")),
		},
	}
	agg := New(searcher, testConfig(), discardLogger())

	results, err := agg.FetchAll(context.Background(),
		[]string{"2026-10-23", "2026-10-24"}, nil, []models.TripType{models.TripOutbound})
	require.NoError(t, err)

	offers := results[models.TripOutbound]["Japan (Tokyo)"]
	require.Len(t, offers, 1)
	require.Equal(t, "2026-10-24", offers[0].DepartureDate)
}

func TestFetchAllAbortsOnMissingFixture(t *testing.T) {
	searcher := &fakeSearcher{
		errs: map[call]error{
			{"YYZ", "NRT", "2026-10-23", ""}: apperr.New(apperr.CodeNotFound, "no fixture"),
		},
	}
	agg := New(searcher, testConfig(), discardLogger())

	_, err := agg.FetchAll(context.Background(),
		[]string{"2026-10-23", "2026-10-24"}, nil, []models.TripType{models.TripOutbound})
	require.Error(t, err)
	require.True(t, apperr.IsCode(err, apperr.CodeNotFound))
	require.Len(t, searcher.calls, 1)
}

func TestFetchAllCutoffAppliesToOutboundOnly(t *testing.T) {
	cfg := testConfig()
	cfg.EarliestDepDate = "2026-10-23"
	cfg.EarliestDepTime = "19:00"

	early := groupAt("2026-10-23 06:00", 900)
	late := groupAt("2026-10-23 19:30", 1450)

	searcher := &fakeSearcher{
		responses: map[call][]serpapi.OfferGroup{
			{"YYZ", "NRT", "2026-10-23", ""}: {early, late},
			{"NRT", "YYZ", "2026-10-23", ""}: {early},
		},
	}
	agg := New(searcher, cfg, discardLogger())

	results, err := agg.FetchAll(context.Background(),
		[]string{"2026-10-23"}, []string{"2026-10-23"},
		[]models.TripType{models.TripOutbound, models.TripReturn})
	require.NoError(t, err)

	outbound := results[models.TripOutbound]["Japan (Tokyo)"]
	require.Len(t, outbound, 1)
	require.Equal(t, "19:30", outbound[0].DepartTime)

	// The return leg ignores the departure cutoff.
	require.Len(t, results[models.TripReturn]["Japan (Tokyo)"], 1)
}

func TestFetchAllSkipsEmptyGroups(t *testing.T) {
	searcher := &fakeSearcher{
		responses: map[call][]serpapi.OfferGroup{
			{"YYZ", "NRT", "2026-10-23", ""}: {{Price: 100}, groupAt("2026-10-23 19:30", 1450)},
		},
	}
	agg := New(searcher, testConfig(), discardLogger())

	results, err := agg.FetchAll(context.Background(),
		[]string{"2026-10-23"}, nil, []models.TripType{models.TripOutbound})
	require.NoError(t, err)
	require.Len(t, results[models.TripOutbound]["Japan (Tokyo)"], 1)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"flight-report/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "YYZ", cfg.Origin)
	require.Equal(t, "Asia", cfg.RegionLabel)
	require.Equal(t, 1, cfg.Adults)
	require.Equal(t, 5, cfg.MaxResults)
	require.Equal(t, "CAD", cfg.Currency)
	require.Equal(t, "https://serpapi.com/search", cfg.SerpAPIURL)
	require.Equal(t, []int{30, 60, 90}, cfg.DaysAhead)

	require.Len(t, cfg.Destinations, 3)
	require.Equal(t, Destination{Name: "Japan (Tokyo)", Code: "NRT", Flag: "JP"}, cfg.Destinations[0])
	require.Equal(t, Destination{Name: "Japan (Osaka)", Code: "KIX", Flag: "JP"}, cfg.Destinations[1])
	require.Equal(t, Destination{Name: "Taiwan", Code: "TPE", Flag: "TW"}, cfg.Destinations[2])
}

func TestLoadDestinationCodeOverride(t *testing.T) {
	t.Setenv("DEST_JAPAN", "HND")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "HND", cfg.Destinations[0].Code)
}

func TestLoadDestinationListOverride(t *testing.T) {
	t.Setenv("DESTINATIONS", "South Korea=ICN, Vietnam=SGN")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []Destination{
		{Name: "South Korea", Code: "ICN"},
		{Name: "Vietnam", Code: "SGN"},
	}, cfg.Destinations)
}

func TestDepartureDatesExplicitListWins(t *testing.T) {
	t.Setenv("DEPARTURE_DATES", "2026-10-23, 2026-10-24")
	t.Setenv("DAYS_AHEAD", "7")

	cfg, err := Load()
	require.NoError(t, err)

	dates := cfg.DepartureDates(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	require.Equal(t, []string{"2026-10-23", "2026-10-24"}, dates)
}

func TestDepartureDatesFromDaysAhead(t *testing.T) {
	t.Setenv("DAYS_AHEAD", "1,30")

	cfg, err := Load()
	require.NoError(t, err)

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	require.Equal(t, []string{"2026-09-01", "2026-09-30"}, cfg.DepartureDates(now))
}

func TestActiveTripTypesRequireReturnDates(t *testing.T) {
	t.Setenv("TRIP_TYPES", "outbound,return,roundtrip")

	cfg, err := Load()
	require.NoError(t, err)
	// No return dates configured: only outbound is active regardless of
	// the preference list.
	require.Equal(t, []models.TripType{models.TripOutbound}, cfg.ActiveTripTypes())
}

func TestActiveTripTypesHonorsListOrder(t *testing.T) {
	t.Setenv("RETURN_DATES", "2026-11-05")
	t.Setenv("TRIP_TYPES", "roundtrip,outbound,bogus")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t,
		[]models.TripType{models.TripRoundTrip, models.TripOutbound},
		cfg.ActiveTripTypes())
}

func TestSMTPFallbacks(t *testing.T) {
	t.Setenv("SMTP_USER", "reports@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "reports@example.com", cfg.SMTP.From)
	require.Equal(t, []string{"reports@example.com"}, cfg.SMTP.To)
}

func TestSMTPRecipientList(t *testing.T) {
	t.Setenv("EMAIL_TO", "a@example.com, b@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.SMTP.To)
}

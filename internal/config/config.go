package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"flight-report/internal/models"
	"flight-report/pkg/email"
)

// Destination is one configured target airport. Order matters: the slice
// order is the display order in every report section.
type Destination struct {
	Name string
	Code string
	Flag string
}

type Config struct {
	Origin       string
	RegionLabel  string
	Destinations []Destination

	// Explicit departure dates take priority over days-ahead offsets.
	ExplicitDepartureDates []string
	DaysAhead              []int
	ReturnDatesRaw         []string
	TripTypesRaw           []string

	Adults     int
	MaxResults int
	Currency   string

	// Optional time-of-day exclusion for one specific departure date.
	EarliestDepDate string
	EarliestDepTime string

	SerpAPIKey string
	SerpAPIURL string

	MockMode     bool
	SaveFixtures bool
	FixturesDir  string

	SMTP email.Config
}

const defaultSerpAPIURL = "https://serpapi.com/search"

// Load reads the process environment into a single immutable Config that is
// passed explicitly into every component.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ORIGIN", "YYZ")
	v.SetDefault("REGION_LABEL", "Asia")
	v.SetDefault("DESTINATIONS", "")
	v.SetDefault("DEST_JAPAN", "NRT")
	v.SetDefault("DEST_OSAKA", "KIX")
	v.SetDefault("DEST_TAIWAN", "TPE")
	v.SetDefault("DEPARTURE_DATES", "")
	v.SetDefault("DAYS_AHEAD", "30,60,90")
	v.SetDefault("RETURN_DATES", "")
	v.SetDefault("TRIP_TYPES", "outbound,return,roundtrip")
	v.SetDefault("ADULTS", 1)
	v.SetDefault("MAX_RESULTS", 5)
	v.SetDefault("CURRENCY", "CAD")
	v.SetDefault("EARLIEST_DEP_DATE", "")
	v.SetDefault("EARLIEST_DEP_TIME", "")
	v.SetDefault("SERPAPI_KEY", "")
	v.SetDefault("SERPAPI_URL", defaultSerpAPIURL)
	v.SetDefault("MOCK_MODE", false)
	v.SetDefault("SAVE_FIXTURES", false)
	v.SetDefault("FIXTURES_DIR", "fixtures")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("EMAIL_FROM", "")
	v.SetDefault("EMAIL_TO", "")

	cfg := &Config{
		Origin:                 strings.TrimSpace(v.GetString("ORIGIN")),
		RegionLabel:            strings.TrimSpace(v.GetString("REGION_LABEL")),
		Destinations:           parseDestinations(v),
		ExplicitDepartureDates: splitList(v.GetString("DEPARTURE_DATES")),
		DaysAhead:              parseInts(v.GetString("DAYS_AHEAD")),
		ReturnDatesRaw:         splitList(v.GetString("RETURN_DATES")),
		TripTypesRaw:           splitList(v.GetString("TRIP_TYPES")),
		Adults:                 v.GetInt("ADULTS"),
		MaxResults:             v.GetInt("MAX_RESULTS"),
		Currency:               strings.TrimSpace(v.GetString("CURRENCY")),
		EarliestDepDate:        strings.TrimSpace(v.GetString("EARLIEST_DEP_DATE")),
		EarliestDepTime:        strings.TrimSpace(v.GetString("EARLIEST_DEP_TIME")),
		SerpAPIKey:             strings.TrimSpace(v.GetString("SERPAPI_KEY")),
		SerpAPIURL:             strings.TrimSpace(v.GetString("SERPAPI_URL")),
		MockMode:               v.GetBool("MOCK_MODE"),
		SaveFixtures:           v.GetBool("SAVE_FIXTURES"),
		FixturesDir:            v.GetString("FIXTURES_DIR"),
		SMTP: email.Config{
			Host:     strings.TrimSpace(v.GetString("SMTP_HOST")),
			Port:     v.GetInt("SMTP_PORT"),
			Username: strings.TrimSpace(v.GetString("SMTP_USER")),
			Password: strings.TrimSpace(v.GetString("SMTP_PASS")),
			From:     strings.TrimSpace(v.GetString("EMAIL_FROM")),
			To:       splitList(v.GetString("EMAIL_TO")),
		},
	}

	if cfg.Adults <= 0 {
		cfg.Adults = 1
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 5
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}
	if len(cfg.SMTP.To) == 0 && cfg.SMTP.Username != "" {
		cfg.SMTP.To = []string{cfg.SMTP.Username}
	}

	return cfg, nil
}

// DepartureDates resolves the outbound dates to search: the explicit list
// when configured, otherwise days-ahead offsets from now.
func (c *Config) DepartureDates(now time.Time) []string {
	if len(c.ExplicitDepartureDates) > 0 {
		return c.ExplicitDepartureDates
	}
	dates := make([]string, 0, len(c.DaysAhead))
	for _, d := range c.DaysAhead {
		dates = append(dates, now.AddDate(0, 0, d).Format("2006-01-02"))
	}
	return dates
}

func (c *Config) ReturnDates() []string {
	return c.ReturnDatesRaw
}

// ActiveTripTypes returns the configured trip types, dropping unknown
// entries. Without any return dates only outbound searches make sense, so
// the preference list is overridden.
func (c *Config) ActiveTripTypes() []models.TripType {
	if len(c.ReturnDatesRaw) == 0 {
		return []models.TripType{models.TripOutbound}
	}
	types := make([]models.TripType, 0, len(c.TripTypesRaw))
	for _, raw := range c.TripTypesRaw {
		if tt, ok := models.ParseTripType(raw); ok {
			types = append(types, tt)
		}
	}
	if len(types) == 0 {
		types = []models.TripType{models.TripOutbound}
	}
	return types
}

// parseDestinations reads DESTINATIONS as comma-separated Name=Code pairs.
// When unset, the built-in destinations apply, with their airport codes
// individually overridable.
func parseDestinations(v *viper.Viper) []Destination {
	raw := strings.TrimSpace(v.GetString("DESTINATIONS"))
	if raw == "" {
		return []Destination{
			{Name: "Japan (Tokyo)", Code: strings.TrimSpace(v.GetString("DEST_JAPAN")), Flag: "JP"},
			{Name: "Japan (Osaka)", Code: strings.TrimSpace(v.GetString("DEST_OSAKA")), Flag: "JP"},
			{Name: "Taiwan", Code: strings.TrimSpace(v.GetString("DEST_TAIWAN")), Flag: "TW"},
		}
	}

	var dests []Destination
	for _, pair := range strings.Split(raw, ",") {
		name, code, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		code = strings.TrimSpace(code)
		if !ok || name == "" || code == "" {
			continue
		}
		dests = append(dests, Destination{Name: name, Code: code})
	}
	return dests
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseInts(s string) []int {
	var out []int
	for _, part := range splitList(s) {
		if n, err := strconv.Atoi(part); err == nil {
			out = append(out, n)
		}
	}
	return out
}

package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"flight-report/internal/aggregator"
	"flight-report/internal/config"
	"flight-report/internal/fixtures"
	"flight-report/internal/models"
	"flight-report/internal/report"
	"flight-report/internal/serpapi"
	"flight-report/pkg/email"
	"flight-report/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env for local development; in production the variables are set
	// directly on the process.
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		return 1
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	depDates := cfg.DepartureDates(now)
	retDates := cfg.ReturnDates()
	tripTypes := cfg.ActiveTripTypes()

	log.Info("flight price report", "date", today)
	log.Info("run configuration",
		"trip_types", joinTypes(tripTypes),
		"departure_dates", strings.Join(depDates, ", "),
		"return_dates", strings.Join(retDates, ", "))

	store := fixtures.NewStore(cfg.FixturesDir)
	client := serpapi.NewClient(serpapi.Config{
		BaseURL:      cfg.SerpAPIURL,
		APIKey:       cfg.SerpAPIKey,
		Currency:     cfg.Currency,
		Adults:       cfg.Adults,
		MaxResults:   cfg.MaxResults,
		MockMode:     cfg.MockMode,
		SaveFixtures: cfg.SaveFixtures,
	}, store, log)

	agg := aggregator.New(client, cfg, log)
	sender := email.NewSender(cfg.SMTP, log)

	params := report.Params{
		Origin:       cfg.Origin,
		RegionLabel:  cfg.RegionLabel,
		Destinations: cfg.Destinations,
		Currency:     cfg.Currency,
		Adults:       cfg.Adults,
		ReportDate:   today,
	}

	ctx := context.Background()

	results, err := agg.FetchAll(ctx, depDates, retDates, tripTypes)
	if err != nil {
		log.Error("data fetch failed", "error", err)
		// Best effort: a notification failure must not mask the fetch failure.
		if sendErr := sender.Send(ctx, report.ErrorSubject(today), report.RenderError(err)); sendErr != nil {
			log.Error("failed to send error email", "error", sendErr)
		}
		return 1
	}

	html, err := report.Render(results, depDates, retDates, tripTypes, params)
	if err != nil {
		log.Error("failed to render report", "error", err)
		return 1
	}

	total := results.Total()
	if err := sender.Send(ctx, report.Subject(params, depDates, total), html); err != nil {
		log.Error("failed to send report email", "error", err)
		return 1
	}

	log.Info("report delivered", "options", total)
	return 0
}

func joinTypes(types []models.TripType) string {
	parts := make([]string, 0, len(types))
	for _, tt := range types {
		parts = append(parts, string(tt))
	}
	return strings.Join(parts, ", ")
}

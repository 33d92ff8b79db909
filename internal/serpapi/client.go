package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	pkgerrors "github.com/pkg/errors"

	"flight-report/internal/fixtures"
	"flight-report/pkg/apperr"
)

const requestTimeout = 30 * time.Second

// Trip type codes used by the google_flights engine.
const (
	tripTypeRoundTrip = "1"
	tripTypeOneWay    = "2"
)

type Config struct {
	BaseURL      string
	APIKey       string
	Currency     string
	Adults       int
	MaxResults   int
	MockMode     bool
	SaveFixtures bool
}

// Client searches flights through the SerpApi google_flights engine, either
// live over HTTP or by replaying captured fixtures.
type Client struct {
	cfg        Config
	store      *fixtures.Store
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, store *fixtures.Store, log *slog.Logger) *Client {
	return &Client{
		cfg:   cfg,
		store: store,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		log: log,
	}
}

// Search returns the combined best + other offer groups for one route/date
// combination, truncated to the configured maximum. retDate may be empty
// for a one-way search.
//
// Client-error statuses (400/404) are logged and yield an empty result so a
// single bad route or date cannot abort a whole run.
func (c *Client) Search(ctx context.Context, origin, destination, depDate, retDate string) ([]OfferGroup, error) {
	key := fixtures.Key(origin, destination, depDate, retDate)

	if c.cfg.MockMode {
		body, err := c.store.Load(key)
		if err != nil {
			return nil, err
		}
		return c.parseResponse(body)
	}

	if c.cfg.APIKey == "" {
		return nil, apperr.New(apperr.CodeConfig,
			"SERPAPI_KEY must be set; register free at https://serpapi.com")
	}

	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("api_key", c.cfg.APIKey)
	params.Set("departure_id", origin)
	params.Set("arrival_id", destination)
	params.Set("outbound_date", depDate)
	params.Set("currency", c.cfg.Currency)
	params.Set("adults", strconv.Itoa(c.cfg.Adults))
	if retDate != "" {
		params.Set("type", tripTypeRoundTrip)
		params.Set("return_date", retDate)
	} else {
		params.Set("type", tripTypeOneWay)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeTransport, "build search request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeTransport, "search request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeTransport, "read search response", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		if c.cfg.SaveFixtures {
			if err := c.store.Save(key, body); err != nil {
				c.log.Warn("fixture save failed", "key", key, "error", err)
			} else {
				c.log.Info("fixture saved", "file", key+".json")
			}
		}
		return c.parseResponse(body)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		c.log.Error("search API rejected request",
			"status", resp.StatusCode,
			"route", origin+"->"+destination,
			"date", depDate,
			"error", errorBody(body))
		return []OfferGroup{}, nil

	default:
		return nil, apperr.New(apperr.CodeTransport,
			fmt.Sprintf("search API status %d: %s", resp.StatusCode, errorBody(body)))
	}
}

// parseResponse decodes a raw response body, concatenates the two ranked
// offer lists, truncates, and attaches the pre-built deep-link URL from the
// response metadata to every group.
func (c *Client) parseResponse(body []byte) ([]OfferGroup, error) {
	var data searchResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, pkgerrors.Wrap(err, "decode search response")
	}

	groups := append(data.BestFlights, data.OtherFlights...)
	if c.cfg.MaxResults > 0 && len(groups) > c.cfg.MaxResults {
		groups = groups[:c.cfg.MaxResults]
	}
	for i := range groups {
		groups[i].BookURL = data.SearchMetadata.GoogleFlightsURL
	}
	return groups, nil
}

func errorBody(body []byte) string {
	var data struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &data); err == nil && data.Error != "" {
		return data.Error
	}
	if len(body) > 300 {
		body = body[:300]
	}
	return string(body)
}

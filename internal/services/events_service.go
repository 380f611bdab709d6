package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"quickmap/internal/infra"
	"quickmap/internal/models/response_models"
	"quickmap/pkg/utils"
)

const eventsPageSize = 25

// EventsQuery mirrors the query parameters of the events endpoint. Lat and Lon
// are passed through verbatim; the upstream validates them.
type EventsQuery struct {
	Lat   string
	Lon   string
	Range string
	Type  string
}

type EventsService interface {
	ListNearbyEvents(ctx context.Context, query EventsQuery) ([]response_models.Event, error)
}

// SeatGeekClient is a live pass-through to the SeatGeek events API. No
// retries, no caching; every request hits the upstream once.
type SeatGeekClient struct {
	HTTP         *http.Client
	ClientID     string
	BaseURL      string
	DefaultRange string
	logger       *zap.Logger
	now          func() time.Time
}

func NewSeatGeekClient(cfg *infra.Config, log *zap.Logger) EventsService {
	return &SeatGeekClient{
		HTTP:         &http.Client{Timeout: cfg.UpstreamTimeout},
		ClientID:     cfg.SeatGeekClientID,
		BaseURL:      "https://api.seatgeek.com",
		DefaultRange: cfg.EventsDefaultRange,
		logger:       log,
		now:          time.Now,
	}
}

// seatGeekEvent is the upstream wire shape. Venue location uses "lon", which
// gets remapped to "lng" in the response model.
type seatGeekEvent struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	DatetimeLocal string  `json:"datetime_local"`
	Description   string  `json:"description"`
	URL           string  `json:"url"`
	Score         float64 `json:"score"`
	Type          string  `json:"type"`
	Taxonomies    []struct {
		Name string `json:"name"`
	} `json:"taxonomies"`
	Venue *struct {
		Name     string `json:"name"`
		Address  string `json:"address"`
		City     string `json:"city"`
		State    string `json:"state"`
		Location *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"location"`
	} `json:"venue"`
}

func (c *SeatGeekClient) ListNearbyEvents(ctx context.Context, query EventsQuery) ([]response_models.Event, error) {
	if c.ClientID == "" {
		return nil, utils.ErrMissingCredential
	}

	params := url.Values{}
	params.Set("client_id", c.ClientID)
	params.Set("per_page", strconv.Itoa(eventsPageSize))
	params.Set("sort", "datetime_local.asc")
	// Lower-bound on event time so past events never show up.
	params.Set("datetime_utc.gte", c.now().UTC().Format(time.RFC3339))

	if query.Lat != "" && query.Lon != "" {
		params.Set("lat", query.Lat)
		params.Set("lon", query.Lon)
		if query.Range != "" {
			params.Set("range", query.Range)
		} else {
			params.Set("range", c.DefaultRange)
		}
	}
	if query.Type != "" {
		params.Set("taxonomies.name", query.Type)
	}

	reqURL := c.BaseURL + "/2/events?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seatgeek http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("seatgeek rejected client id", zap.ByteString("body", body))
		return nil, &utils.UpstreamAuthError{Details: string(body)}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &utils.UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload struct {
		Events []seatGeekEvent `json:"events"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("seatgeek decode: %w", err)
	}

	// Zero events is a valid outcome, not an error.
	events := make([]response_models.Event, 0, len(payload.Events))
	for _, e := range payload.Events {
		events = append(events, normalizeEvent(e))
	}

	c.logger.Info("seatgeek events fetched", zap.Int("count", len(events)))
	return events, nil
}

// normalizeEvent reshapes an upstream event for the map client: the type falls
// back to the first taxonomy name and venue coordinates are renamed lon→lng.
// A missing venue or venue location stays absent.
func normalizeEvent(e seatGeekEvent) response_models.Event {
	eventType := e.Type
	if eventType == "" && len(e.Taxonomies) > 0 {
		eventType = e.Taxonomies[0].Name
	}

	var venue *response_models.EventVenue
	if e.Venue != nil {
		venue = &response_models.EventVenue{
			Name:    e.Venue.Name,
			Address: e.Venue.Address,
			City:    e.Venue.City,
			State:   e.Venue.State,
		}
		if e.Venue.Location != nil {
			venue.Location = &response_models.EventVenueLocation{
				Lat: e.Venue.Location.Lat,
				Lng: e.Venue.Location.Lon,
			}
		}
	}

	return response_models.Event{
		ID:            e.ID,
		Title:         e.Title,
		DatetimeLocal: e.DatetimeLocal,
		Description:   e.Description,
		URL:           e.URL,
		Score:         e.Score,
		Type:          eventType,
		Venue:         venue,
	}
}

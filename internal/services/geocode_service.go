package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"quickmap/internal/infra"
	"quickmap/pkg/utils"
)

// GeocodingService turns a free-text address into coordinates. Only activity
// creation uses it.
type GeocodingService interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}

type GoogleGeocodingClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
	logger  *zap.Logger
}

func NewGoogleGeocodingClient(cfg *infra.Config, log *zap.Logger) GeocodingService {
	return &GoogleGeocodingClient{
		HTTP:    &http.Client{Timeout: cfg.UpstreamTimeout},
		APIKey:  cfg.GoogleMapsAPIKey,
		BaseURL: "https://maps.googleapis.com",
		logger:  log,
	}
}

func (c *GoogleGeocodingClient) Geocode(ctx context.Context, address string) (float64, float64, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.APIKey)

	reqURL := c.BaseURL + "/maps/api/geocode/json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoding bad status: %s", resp.Status)
	}

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, 0, fmt.Errorf("geocoding decode: %w", err)
	}

	if len(payload.Results) == 0 {
		c.logger.Info("geocoding returned no results",
			zap.String("address", address),
			zap.String("status", payload.Status))
		return 0, 0, utils.ErrInvalidAddress
	}

	loc := payload.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

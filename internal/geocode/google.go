// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/models"
)

// DefaultGoogleBaseURL is the Google Geocoding API endpoint.
const DefaultGoogleBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// DefaultTimeout bounds a single provider round trip.
const DefaultTimeout = 10 * time.Second

// ClientConfig holds the settings shared by HTTP providers.
type ClientConfig struct {
	APIKey     string
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

func (c ClientConfig) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// GoogleProvider implements Provider using the Google Geocoding API.
// Only country and locality components are requested.
type GoogleProvider struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// googleResponse is the subset of the Geocoding API response Wayfarer reads.
type googleResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

// NewGoogleProvider creates a Google provider. A placeholder key leaves the
// provider unavailable.
func NewGoogleProvider(cfg ClientConfig) *GoogleProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultGoogleBaseURL
	}
	return &GoogleProvider{
		client:  newHTTPClient(cfg),
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
	}
}

// Name returns the provider name.
func (p *GoogleProvider) Name() string {
	return "google"
}

// IsAvailable returns false for an empty or placeholder API key.
func (p *GoogleProvider) IsAvailable() bool {
	return !IsPlaceholderKey(p.apiKey)
}

// ReverseGeocode queries the Geocoding API for the coordinate.
func (p *GoogleProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (models.Place, error) {
	if !p.IsAvailable() {
		return models.UnknownPlace(), ErrProviderUnavailable
	}

	q := url.Values{}
	q.Set("latlng", strconv.FormatFloat(lat, 'f', 6, 64)+","+strconv.FormatFloat(lng, 'f', 6, 64))
	q.Set("result_type", "country|locality")
	q.Set("key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return models.UnknownPlace(), fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return models.UnknownPlace(), fmt.Errorf("failed to query google geocoding: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.UnknownPlace(), &StatusError{Provider: p.Name(), HTTPStatus: resp.StatusCode}
	}

	var body googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.UnknownPlace(), fmt.Errorf("failed to decode google response: %w", err)
	}

	if body.Status != "OK" {
		return models.UnknownPlace(), &StatusError{
			Provider:   p.Name(),
			HTTPStatus: resp.StatusCode,
			Status:     body.Status,
			Message:    body.ErrorMessage,
		}
	}

	return extractGooglePlace(&body), nil
}

// extractGooglePlace takes the first country and the first locality across
// all results and components.
func extractGooglePlace(body *googleResponse) models.Place {
	var city, country string
	for _, result := range body.Results {
		for _, comp := range result.AddressComponents {
			for _, typ := range comp.Types {
				switch typ {
				case "country":
					if country == "" {
						country = comp.LongName
					}
				case "locality":
					if city == "" {
						city = comp.LongName
					}
				}
			}
		}
	}
	return models.NewPlace(city, country)
}

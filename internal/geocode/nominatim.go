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

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/models"
)

// DefaultNominatimBaseURL is the public OpenStreetMap Nominatim instance.
const DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

// DefaultUserAgent identifies Wayfarer to providers that require it.
const DefaultUserAgent = "Wayfarer/1.0 (photo-travel-history)"

// NominatimProvider implements Provider using the OpenStreetMap Nominatim API.
// No key is needed, but the public instance allows one request per second
// and requires an identifying User-Agent. Wrap it in a RateLimitedProvider.
type NominatimProvider struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

type nominatimResponse struct {
	Error   string `json:"error"`
	Address struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
		Country      string `json:"country"`
	} `json:"address"`
}

// NewNominatimProvider creates a Nominatim provider.
func NewNominatimProvider(cfg ClientConfig) *NominatimProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultNominatimBaseURL
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &NominatimProvider{
		client:    newHTTPClient(cfg),
		baseURL:   baseURL,
		userAgent: ua,
	}
}

// Name returns the provider name.
func (p *NominatimProvider) Name() string {
	return "nominatim"
}

// IsAvailable always returns true; Nominatim needs no credentials.
func (p *NominatimProvider) IsAvailable() bool {
	return true
}

// ReverseGeocode queries /reverse at city zoom.
func (p *NominatimProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (models.Place, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', 6, 64))
	q.Set("format", "jsonv2")
	q.Set("zoom", "10")
	q.Set("addressdetails", "1")
	q.Set("accept-language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/reverse?"+q.Encode(), http.NoBody)
	if err != nil {
		return models.UnknownPlace(), fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return models.UnknownPlace(), fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.UnknownPlace(), &StatusError{Provider: p.Name(), HTTPStatus: resp.StatusCode}
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.UnknownPlace(), fmt.Errorf("failed to parse nominatim response: %w", err)
	}
	if body.Error != "" {
		return models.UnknownPlace(), &StatusError{Provider: p.Name(), HTTPStatus: resp.StatusCode, Status: "ERROR", Message: body.Error}
	}

	return models.NewPlace(nominatimCity(&body), body.Address.Country), nil
}

// nominatimCity picks the most specific settlement name present.
func nominatimCity(body *nominatimResponse) string {
	for _, name := range []string{body.Address.City, body.Address.Town, body.Address.Village, body.Address.Municipality} {
		if name != "" {
			return name
		}
	}
	return ""
}

package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GeocodeService resolves coordinates to display addresses through the
// LocationIQ reverse geocoding API.
type GeocodeService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGeocodeService creates a geocoder client. baseURL normally points
// at https://us1.locationiq.com; tests point it at a local stub.
func NewGeocodeService(baseURL, apiKey string) *GeocodeService {
	return &GeocodeService{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ReverseGeocode returns a display address for the coordinates. When
// the provider has no display name the raw coordinates are formatted
// instead, so callers always get something presentable.
func (s *GeocodeService) ReverseGeocode(lat, lon float64) (string, error) {
	query := url.Values{}
	query.Set("key", s.apiKey)
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lon))
	query.Set("format", "json")

	resp, err := s.client.Get(s.baseURL + "/v1/reverse?" + query.Encode())
	if err != nil {
		return "", fmt.Errorf("reverse geocoding failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocoding returned status %d", resp.StatusCode)
	}

	var result struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode geocoding response: %w", err)
	}

	if result.DisplayName == "" {
		return fmt.Sprintf("Lat: %.6f, Lng: %.6f", lat, lon), nil
	}
	return result.DisplayName, nil
}

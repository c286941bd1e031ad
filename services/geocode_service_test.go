package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReverseGeocode(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/reverse" {
			t.Errorf("path = %s, want /v1/reverse", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("key") != "test-key" || query.Get("format") != "json" {
			t.Errorf("query = %v", query)
		}
		w.Write([]byte(`{"display_name":"Main St, Springfield"}`))
	}))
	defer provider.Close()

	svc := NewGeocodeService(provider.URL, "test-key")
	address, err := svc.ReverseGeocode(40.7128, -74.006)
	if err != nil {
		t.Fatalf("ReverseGeocode: %v", err)
	}
	if address != "Main St, Springfield" {
		t.Errorf("address = %q", address)
	}
}

func TestReverseGeocodeFallsBackToCoordinates(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer provider.Close()

	svc := NewGeocodeService(provider.URL, "test-key")
	address, err := svc.ReverseGeocode(40.7128, -74.006)
	if err != nil {
		t.Fatalf("ReverseGeocode: %v", err)
	}
	if address != "Lat: 40.712800, Lng: -74.006000" {
		t.Errorf("address = %q", address)
	}
}

func TestReverseGeocodeProviderError(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer provider.Close()

	svc := NewGeocodeService(provider.URL, "test-key")
	if _, err := svc.ReverseGeocode(1, 2); err == nil {
		t.Fatal("expected error when provider rejects the key")
	}
}

package geo

import (
	"errors"
	"fmt"

	"github.com/kelvins/geocoder"

	"github.com/renewsite/site-analyzer/internal/analysis"
)

// ErrNotConfigured is returned when no geocoding API key was provided.
var ErrNotConfigured = errors.New("geocoder is not configured")

// Resolver turns a city/country pair into coordinates via the Google
// geocoding API. It is optional; without an API key every lookup fails with
// ErrNotConfigured.
type Resolver struct {
	configured bool
}

// NewResolver creates a Resolver. An empty apiKey leaves it unconfigured.
func NewResolver(apiKey string) *Resolver {
	if apiKey != "" {
		geocoder.ApiKey = apiKey
	}
	return &Resolver{configured: apiKey != ""}
}

// Configured reports whether lookups can be performed.
func (r *Resolver) Configured() bool {
	return r.configured
}

// Resolve returns the coordinates for a city/country pair.
func (r *Resolver) Resolve(city, country string) (analysis.Site, error) {
	if !r.configured {
		return analysis.Site{}, ErrNotConfigured
	}

	location, err := geocoder.Geocoding(geocoder.Address{
		City:    city,
		Country: country,
	})
	if err != nil {
		return analysis.Site{}, fmt.Errorf("geocoding %s, %s: %w", city, country, err)
	}

	return analysis.Site{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}, nil
}

// Package power provides a client for the NASA POWER daily point API, the
// upstream source of wind and solar observations. Successful fetches are
// cached per (lat, lon, year) for a fixed time-to-live so repeated analyses
// of the same site do not hit the network.
package power

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/renewsite/site-analyzer/internal/analysis"
	"github.com/renewsite/site-analyzer/internal/cache"
)

const defaultBaseURL = "https://power.larc.nasa.gov/api/temporal/daily/point"

// Client fetches daily point data from the POWER API. It implements
// analysis.Source.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *cache.TTLCache
	circuit    *gobreaker.CircuitBreaker
}

// NewClient creates a POWER client. The cache may be nil to disable caching.
func NewClient(httpClient *http.Client, seriesCache *cache.TTLCache) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "nasa-power",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		cache:      seriesCache,
		circuit:    cb,
	}
}

// SetBaseURL sets the base URL for the API (useful for testing).
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// FetchYear retrieves one calendar year of daily wind and solar data for the
// site. Results are served from the cache within its TTL. Failures map to the
// typed errors in this package; none are retried.
func (c *Client) FetchYear(ctx context.Context, site analysis.Site, year int) (analysis.YearSeries, error) {
	key := site.Key(year)
	if c.cache != nil {
		if series, ok := c.cache.Get(key); ok {
			return series, nil
		}
	}

	reqURL, err := c.buildURL(site, year)
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.httpClient.Do(req)
		if execErr != nil {
			return nil, &NetworkError{Operation: "fetch", Err: execErr}
		}
		defer resp.Body.Close()

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, &NetworkError{Operation: "read response", Err: readErr}
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		}
		return body, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &NetworkError{Operation: "fetch", Err: err}
		}
		return nil, err
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}

	series, err := parseSeries(body)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(key, series)
	}
	return series, nil
}

// buildURL constructs the API URL with query parameters for the full year.
func (c *Client) buildURL(site analysis.Site, year int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("parameters", fmt.Sprintf("%s,%s,%s", ParamWindSpeed, ParamWindDirection, ParamSolarIrradiance))
	query.Set("community", "RE")
	query.Set("latitude", formatFloat(site.Latitude))
	query.Set("longitude", formatFloat(site.Longitude))
	query.Set("start", fmt.Sprintf("%d0101", year))
	query.Set("end", fmt.Sprintf("%d1231", year))
	query.Set("format", "JSON")

	u.RawQuery = query.Encode()
	return u.String(), nil
}

// parseSeries converts the parameter-keyed response into a date-ascending
// series. The three parameter maps are aligned by date key; a date absent
// from one map yields a record with that field missing. Sentinel values are
// converted to explicit missing markers here, at the parse boundary.
func parseSeries(body []byte) (analysis.YearSeries, error) {
	var payload pointResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if payload.Properties == nil || payload.Properties.Parameter == nil {
		return nil, &MalformedResponseError{Reason: "missing properties.parameter"}
	}

	params := payload.Properties.Parameter
	windSpeed := params[ParamWindSpeed]
	windDirection := params[ParamWindDirection]
	solar := params[ParamSolarIrradiance]
	if windSpeed == nil && windDirection == nil && solar == nil {
		return nil, &MalformedResponseError{Reason: "no expected parameters present"}
	}

	dateKeys := make(map[string]struct{})
	for k := range windSpeed {
		dateKeys[k] = struct{}{}
	}
	for k := range windDirection {
		dateKeys[k] = struct{}{}
	}
	for k := range solar {
		dateKeys[k] = struct{}{}
	}

	keys := make([]string, 0, len(dateKeys))
	for k := range dateKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make(analysis.YearSeries, 0, len(keys))
	for _, k := range keys {
		date, err := time.Parse("20060102", k)
		if err != nil {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("invalid date key %q", k)}
		}

		rec := analysis.DailyRecord{Date: date.UTC()}
		if v, ok := windSpeed[k]; ok {
			rec.WindSpeed = analysis.Float64Ptr(v)
		}
		if v, ok := windDirection[k]; ok {
			rec.WindDirection = analysis.Float64Ptr(v)
		}
		if v, ok := solar[k]; ok {
			rec.SolarIrradiance = analysis.Float64Ptr(v)
		}
		series = append(series, rec)
	}

	return analysis.Clean(series), nil
}

// formatFloat formats a float64 to a string with appropriate precision.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

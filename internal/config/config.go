package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/renewsite/site-analyzer/internal/analysis"
)

// WatchSite is a (site, year) tuple whose data is pre-fetched by the optional
// cache-warming scheduler.
type WatchSite struct {
	Site analysis.Site
	Year int
}

type AppConfig struct {
	Port string

	// Outbound HTTP timeout for the POWER API.
	HTTPTimeout time.Duration

	// PowerBaseURL overrides the POWER API endpoint (mainly for testing).
	PowerBaseURL string

	// CacheTTL controls how long fetched year series stay cached.
	CacheTTL time.Duration

	// FetchInterval controls how often watched sites are refreshed.
	FetchInterval time.Duration

	// WatchSites are pre-fetched on the scheduler; empty disables it.
	WatchSites []WatchSite

	// GeocoderAPIKey enables the optional address lookup endpoint.
	GeocoderAPIKey string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.PowerBaseURL = os.Getenv("POWER_BASE_URL")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	ttlStr := getenvDefault("CACHE_TTL", "1h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	intervalStr := getenvDefault("FETCH_INTERVAL", "1h")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.FetchInterval = interval

	sites, err := parseWatchSites(os.Getenv("WATCH_SITES"))
	if err != nil {
		return nil, err
	}
	cfg.WatchSites = sites

	return cfg, nil
}

// parseWatchSites parses "lat,lon,year" tuples separated by semicolons, e.g.
// "40.7128,-74.0060,2023;34.05,-118.24,2023".
func parseWatchSites(raw string) ([]WatchSite, error) {
	if raw == "" {
		return nil, nil
	}

	var sites []WatchSite
	for _, tuple := range strings.Split(raw, ";") {
		tuple = strings.TrimSpace(tuple)
		if tuple == "" {
			continue
		}
		parts := strings.Split(tuple, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid WATCH_SITES entry %q: want lat,lon,year", tuple)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude in WATCH_SITES entry %q: %w", tuple, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude in WATCH_SITES entry %q: %w", tuple, err)
		}
		year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("invalid year in WATCH_SITES entry %q: %w", tuple, err)
		}
		sites = append(sites, WatchSite{
			Site: analysis.Site{Latitude: lat, Longitude: lon},
			Year: year,
		})
	}
	return sites, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

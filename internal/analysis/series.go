package analysis

import (
	"context"
	"fmt"
	"time"
)

// Site represents the geographic point under analysis.
type Site struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Key returns a canonical string key for indexing this site in caches.
func (s Site) Key(year int) string {
	return fmt.Sprintf("%.4f:%.4f:%d", s.Latitude, s.Longitude, year)
}

// DailyRecord holds one calendar day of observations. A nil field means the
// provider reported no observation for that day.
type DailyRecord struct {
	Date            time.Time `json:"date"` // UTC midnight
	WindSpeed       *float64  `json:"windSpeed,omitempty"`       // m/s at 10m
	WindDirection   *float64  `json:"windDirection,omitempty"`   // degrees
	SolarIrradiance *float64  `json:"solarIrradiance,omitempty"` // kWh/m²/day
}

// YearSeries is one calendar year of daily records, ordered by date ascending.
// It is built fresh per (site, year) request and not mutated afterwards.
type YearSeries []DailyRecord

// Source abstracts the upstream point-data provider (NASA POWER in the
// reference deployment).
type Source interface {
	FetchYear(ctx context.Context, site Site, year int) (YearSeries, error)
}

// Float64Ptr is a helper to get a pointer to a float64 value.
func Float64Ptr(f float64) *float64 {
	return &f
}

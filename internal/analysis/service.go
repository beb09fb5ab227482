package analysis

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
)

// AnalysisResult bundles everything one analysis run produces: the cleaned
// series, the derived metrics and suitability bands, and the chart-ready
// projections. WindRose is nil and Degraded is set when the directional data
// was entirely missing; the rest of the result stays usable.
type AnalysisResult struct {
	ID     string     `json:"id"`
	Site   Site       `json:"site"`
	Year   int        `json:"year"`
	Series YearSeries `json:"series"`

	Metrics   Metrics  `json:"metrics"`
	WindBand  Band     `json:"windBand"`
	SolarBand Band     `json:"solarBand"`
	Daylight  Daylight `json:"daylight"`

	WindSpeedChart  []TimePoint   `json:"windSpeedChart"`
	SolarChart      []TimePoint   `json:"solarChart"`
	WindRose        []WindRoseRow `json:"windRose,omitempty"`
	Degraded        bool          `json:"degraded"`
	DegradedReasons []string      `json:"degradedReasons,omitempty"`
}

// Service runs the full analysis pipeline: validate input, fetch the year of
// point data, then derive metrics, bands, and chart projections.
type Service struct {
	source Source
	clock  func() time.Time
}

// NewService creates a Service backed by the given point-data source.
func NewService(source Source) *Service {
	return &Service{
		source: source,
		clock:  time.Now,
	}
}

// SetClock overrides the service clock (useful for testing year validation).
func (s *Service) SetClock(clock func() time.Time) {
	s.clock = clock
}

// Analyze runs one analysis for the given site and year.
func (s *Service) Analyze(ctx context.Context, site Site, year int) (*AnalysisResult, error) {
	if err := s.validate(site, year); err != nil {
		return nil, err
	}

	series, err := s.source.FetchYear(ctx, site, year)
	if err != nil {
		return nil, err
	}

	metrics := ComputeMetrics(series)

	result := &AnalysisResult{
		ID:             uuid.NewString(),
		Site:           site,
		Year:           year,
		Series:         series,
		Metrics:        metrics,
		WindBand:       ClassifyWind(metrics.AvgWindSpeed),
		SolarBand:      ClassifySolar(metrics.AvgSolarIrradiance),
		Daylight:       ComputeDaylight(site, series),
		WindSpeedChart: WindSpeedSeries(series),
		SolarChart:     SolarIrradianceSeries(series),
	}

	if math.IsNaN(metrics.AvgWindSpeed) {
		result.degrade("no valid wind speed observations")
	}
	if math.IsNaN(metrics.AvgSolarIrradiance) {
		result.degrade("no valid solar irradiance observations")
	}

	rose, err := WindRose(series)
	if err != nil {
		log.Printf("INFO: wind rose unavailable for %s: %v", site.Key(year), err)
		result.degrade("insufficient data for wind rose")
	} else {
		result.WindRose = rose
	}

	return result, nil
}

func (s *Service) validate(site Site, year int) error {
	if site.Latitude < -90 || site.Latitude > 90 {
		return &ValidationError{
			Field:   "latitude",
			Message: fmt.Sprintf("must be between -90 and 90, got %f", site.Latitude),
		}
	}
	if site.Longitude < -180 || site.Longitude > 180 {
		return &ValidationError{
			Field:   "longitude",
			Message: fmt.Sprintf("must be between -180 and 180, got %f", site.Longitude),
		}
	}
	if maxYear := s.clock().Year(); year > maxYear {
		return &ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("must not be later than %d, got %d", maxYear, year),
		}
	}
	return nil
}

func (r *AnalysisResult) degrade(reason string) {
	r.Degraded = true
	r.DegradedReasons = append(r.DegradedReasons, reason)
}

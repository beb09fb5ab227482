package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/renewsite/site-analyzer/internal/analysis"
	"github.com/renewsite/site-analyzer/internal/geo"
)

// stubSource serves a fixed three-day series.
type stubSource struct{}

func (stubSource) FetchYear(ctx context.Context, site analysis.Site, year int) (analysis.YearSeries, error) {
	d := func(day int) time.Time {
		return time.Date(year, 1, day, 0, 0, 0, 0, time.UTC)
	}
	return analysis.YearSeries{
		{Date: d(1), WindSpeed: analysis.Float64Ptr(2), WindDirection: analysis.Float64Ptr(10), SolarIrradiance: analysis.Float64Ptr(1)},
		{Date: d(2), WindSpeed: analysis.Float64Ptr(4), WindDirection: analysis.Float64Ptr(20), SolarIrradiance: analysis.Float64Ptr(3)},
		{Date: d(3), WindSpeed: analysis.Float64Ptr(6), WindDirection: analysis.Float64Ptr(30), SolarIrradiance: analysis.Float64Ptr(5)},
	}, nil
}

func newTestApp() *fiber.App {
	app := fiber.New()
	service := analysis.NewService(stubSource{})
	RegisterRoutes(app, service, geo.NewResolver(""))
	return app
}

func TestAnalysisValidation(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name   string
		target string
	}{
		{"missing parameters", "/api/v1/analysis?lat=40.7"},
		{"latitude out of range", "/api/v1/analysis?lat=91&lon=0&year=2023"},
		{"longitude out of range", "/api/v1/analysis?lat=0&lon=-181&year=2023"},
		{"year before records begin", "/api/v1/analysis?lat=0&lon=0&year=1800"},
		{"non-numeric latitude", "/api/v1/analysis?lat=abc&lon=0&year=2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
			}
		})
	}
}

func TestAnalysisSuccess(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis?lat=40.7128&lon=-74.0060&year=2023", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body struct {
		WindBand  analysis.Band `json:"windBand"`
		SolarBand analysis.Band `json:"solarBand"`
		Metrics   struct {
			AvgWindSpeed float64 `json:"avgWindSpeed"`
		} `json:"metrics"`
		Degraded bool `json:"degraded"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.WindBand != analysis.BandMarginal {
		t.Errorf("expected wind band %v, got %v", analysis.BandMarginal, body.WindBand)
	}
	if body.SolarBand != analysis.BandFair {
		t.Errorf("expected solar band %v, got %v", analysis.BandFair, body.SolarBand)
	}
	if body.Metrics.AvgWindSpeed != 4 {
		t.Errorf("expected avg wind speed 4, got %v", body.Metrics.AvgWindSpeed)
	}
	if body.Degraded {
		t.Error("result should not be degraded")
	}
}

func TestAnalysisExport(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/export?lat=40.7128&lon=-74.0060&year=2023", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != "text/csv" {
		t.Errorf("expected text/csv content type, got %q", ct)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); cd == "" {
		t.Error("expected a content disposition header")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	want := "date,wind_speed,wind_direction,solar_irradiance\n" +
		"2023-01-01,2,10,1\n" +
		"2023-01-02,4,20,3\n" +
		"2023-01-03,6,30,5\n"
	if string(data) != want {
		t.Errorf("unexpected CSV body:\n%s", data)
	}
}

func TestGeocodeUnconfigured(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/geocode?city=Paris&country=FR", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, resp.StatusCode)
	}
}

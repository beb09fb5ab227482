package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/renewsite/site-analyzer/internal/analysis"
	"github.com/renewsite/site-analyzer/internal/geo"
	"github.com/renewsite/site-analyzer/internal/power"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *analysis.Service, resolver *geo.Resolver) {
	v1 := app.Group("/api/v1")

	v1.Get("/analysis", func(c *fiber.Ctx) error {
		req, err := parseAnalysisQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := service.Analyze(c.Context(), req.toSite(), req.Year)
		if err != nil {
			return mapAnalysisError(err)
		}

		return c.JSON(result)
	})

	v1.Get("/analysis/export", func(c *fiber.Ctx) error {
		req, err := parseAnalysisQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := service.Analyze(c.Context(), req.toSite(), req.Year)
		if err != nil {
			return mapAnalysisError(err)
		}

		var buf bytes.Buffer
		if err := analysis.WriteCSV(&buf, result.Series); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render CSV")
		}

		filename := fmt.Sprintf("renewable_energy_data_%g_%g_%d.csv", req.Lat, req.Lon, req.Year)
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return c.Send(buf.Bytes())
	})

	v1.Get("/geocode", func(c *fiber.Ctx) error {
		if !resolver.Configured() {
			return fiber.NewError(fiber.StatusServiceUnavailable, "geocoding is not configured")
		}

		city := c.Query("city")
		country := c.Query("country")
		if city == "" {
			return fiber.NewError(fiber.StatusBadRequest, "city query parameter is required")
		}

		site, err := resolver.Resolve(city, country)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}

		return c.JSON(site)
	})
}

// mapAnalysisError translates the analysis/power error taxonomy into HTTP
// statuses: invalid input 400, remote failure 502, transient network 504.
func mapAnalysisError(err error) error {
	var (
		validationErr *analysis.ValidationError
		apiErr        *power.APIError
		netErr        *power.NetworkError
		malformedErr  *power.MalformedResponseError
	)
	switch {
	case errors.As(err, &validationErr):
		return fiber.NewError(fiber.StatusBadRequest, validationErr.Error())
	case errors.As(err, &apiErr):
		return fiber.NewError(fiber.StatusBadGateway,
			fmt.Sprintf("data provider returned status %d", apiErr.StatusCode))
	case errors.As(err, &malformedErr):
		return fiber.NewError(fiber.StatusBadGateway, malformedErr.Error())
	case errors.As(err, &netErr):
		return fiber.NewError(fiber.StatusGatewayTimeout, "data provider did not respond")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "analysis failed")
	}
}

// analysisQuery holds query parameters for the analysis endpoints.
type analysisQuery struct {
	Lat  float64 `validate:"min=-90,max=90"`
	Lon  float64 `validate:"min=-180,max=180"`
	Year int     `validate:"min=1981"` // POWER daily records start in 1981
}

func (q analysisQuery) toSite() analysis.Site {
	return analysis.Site{Latitude: q.Lat, Longitude: q.Lon}
}

func parseAnalysisQuery(c *fiber.Ctx) (analysisQuery, error) {
	var q analysisQuery

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	yearStr := c.Query("year")
	if latStr == "" || lonStr == "" || yearStr == "" {
		return q, errors.New("lat, lon and year query parameters are required")
	}

	var err error
	if q.Lat, err = strconv.ParseFloat(latStr, 64); err != nil {
		return q, fmt.Errorf("invalid lat: %w", err)
	}
	if q.Lon, err = strconv.ParseFloat(lonStr, 64); err != nil {
		return q, fmt.Errorf("invalid lon: %w", err)
	}
	if q.Year, err = strconv.Atoi(yearStr); err != nil {
		return q, fmt.Errorf("invalid year: %w", err)
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

package analysis

import (
	"encoding/json"
	"math"
)

// Metrics holds the summary statistics derived from one YearSeries. Missing
// days are excluded from every aggregate; a field whose days are all missing
// aggregates to NaN.
type Metrics struct {
	AvgWindSpeed         float64 `json:"avgWindSpeed"`
	MaxWindSpeed         float64 `json:"maxWindSpeed"`
	AvgSolarIrradiance   float64 `json:"avgSolarIrradiance"`
	MaxSolarIrradiance   float64 `json:"maxSolarIrradiance"`
	TotalSolarIrradiance float64 `json:"totalSolarIrradiance"`
}

// MarshalJSON renders undefined (NaN) aggregates as null, since JSON has no
// NaN literal.
func (m Metrics) MarshalJSON() ([]byte, error) {
	type jsonMetrics struct {
		AvgWindSpeed         *float64 `json:"avgWindSpeed"`
		MaxWindSpeed         *float64 `json:"maxWindSpeed"`
		AvgSolarIrradiance   *float64 `json:"avgSolarIrradiance"`
		MaxSolarIrradiance   *float64 `json:"maxSolarIrradiance"`
		TotalSolarIrradiance *float64 `json:"totalSolarIrradiance"`
	}
	opt := func(f float64) *float64 {
		if math.IsNaN(f) {
			return nil
		}
		return &f
	}
	return json.Marshal(jsonMetrics{
		AvgWindSpeed:         opt(m.AvgWindSpeed),
		MaxWindSpeed:         opt(m.MaxWindSpeed),
		AvgSolarIrradiance:   opt(m.AvgSolarIrradiance),
		MaxSolarIrradiance:   opt(m.MaxSolarIrradiance),
		TotalSolarIrradiance: opt(m.TotalSolarIrradiance),
	})
}

// ComputeMetrics derives summary statistics from a cleaned series.
func ComputeMetrics(series YearSeries) Metrics {
	var (
		windSum, windMax   float64
		windCount          int
		solarSum, solarMax float64
		solarCount         int
	)

	for _, rec := range series {
		if rec.WindSpeed != nil {
			windSum += *rec.WindSpeed
			if windCount == 0 || *rec.WindSpeed > windMax {
				windMax = *rec.WindSpeed
			}
			windCount++
		}
		if rec.SolarIrradiance != nil {
			solarSum += *rec.SolarIrradiance
			if solarCount == 0 || *rec.SolarIrradiance > solarMax {
				solarMax = *rec.SolarIrradiance
			}
			solarCount++
		}
	}

	m := Metrics{
		AvgWindSpeed:         math.NaN(),
		MaxWindSpeed:         math.NaN(),
		AvgSolarIrradiance:   math.NaN(),
		MaxSolarIrradiance:   math.NaN(),
		TotalSolarIrradiance: math.NaN(),
	}
	if windCount > 0 {
		m.AvgWindSpeed = windSum / float64(windCount)
		m.MaxWindSpeed = windMax
	}
	if solarCount > 0 {
		m.AvgSolarIrradiance = solarSum / float64(solarCount)
		m.MaxSolarIrradiance = solarMax
		m.TotalSolarIrradiance = solarSum
	}
	return m
}

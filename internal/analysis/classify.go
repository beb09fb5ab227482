package analysis

import "math"

// Band is an ordinal suitability category for one energy resource.
type Band string

const (
	BandNoData    Band = "no_data"
	BandPoor      Band = "poor"
	BandMarginal  Band = "marginal"
	BandFair      Band = "fair"
	BandGood      Band = "good"
	BandExcellent Band = "excellent"
)

// bandRule maps an inclusive lower bound to a band. Rules are evaluated in
// ascending order; the last rule whose bound the value reaches wins, giving
// half-open [lower, next) intervals.
type bandRule struct {
	lower float64
	band  Band
}

// Thresholds follow the standard wind-power and solar-resource class
// boundaries (m/s and kWh/m²/day).
var (
	windBands = []bandRule{
		{math.Inf(-1), BandPoor},
		{3, BandMarginal},
		{5, BandFair},
		{6.5, BandGood},
		{7.5, BandExcellent},
	}
	solarBands = []bandRule{
		{math.Inf(-1), BandPoor},
		{3, BandFair},
		{4, BandGood},
		{5, BandExcellent},
	}
)

// ClassifyWind maps an average wind speed to a suitability band.
// NaN (no valid observations) yields BandNoData.
func ClassifyWind(avgWindSpeed float64) Band {
	return classify(avgWindSpeed, windBands)
}

// ClassifySolar maps an average solar irradiance to a suitability band.
// NaN (no valid observations) yields BandNoData.
func ClassifySolar(avgSolarIrradiance float64) Band {
	return classify(avgSolarIrradiance, solarBands)
}

func classify(v float64, rules []bandRule) Band {
	if math.IsNaN(v) {
		return BandNoData
	}
	band := rules[0].band
	for _, r := range rules {
		if v >= r.lower {
			band = r.band
		}
	}
	return band
}

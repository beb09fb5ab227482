package analysis

import (
	"time"

	"github.com/sixdouglas/suncalc"
)

// Daylight summarizes astronomical day length over the analyzed year, as
// context for the solar assessment.
type Daylight struct {
	AvgHours float64 `json:"avgHours"`
	MinHours float64 `json:"minHours"`
	MaxHours float64 `json:"maxHours"`
}

// ComputeDaylight derives the day-length summary for the site across the
// dates of the series. Polar days and nights, where the sun never crosses the
// horizon, count as 24 h or 0 h depending on the sun altitude at solar noon.
func ComputeDaylight(site Site, series YearSeries) Daylight {
	if len(series) == 0 {
		return Daylight{}
	}

	var sum, min, max float64
	for i, rec := range series {
		hours := dayLengthHours(rec.Date, site.Latitude, site.Longitude)
		sum += hours
		if i == 0 || hours < min {
			min = hours
		}
		if i == 0 || hours > max {
			max = hours
		}
	}
	return Daylight{
		AvgHours: sum / float64(len(series)),
		MinHours: min,
		MaxHours: max,
	}
}

func dayLengthHours(date time.Time, lat, lon float64) float64 {
	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC)
	times := suncalc.GetTimes(noon, lat, lon)
	sunrise := times["sunrise"].Value
	sunset := times["sunset"].Value

	if sunrise.IsZero() || sunset.IsZero() || !sunset.After(sunrise) {
		// Polar day or night: decide by the sun's altitude at solar noon.
		if suncalc.GetPosition(noon, lat, lon).Altitude > 0 {
			return 24
		}
		return 0
	}
	return sunset.Sub(sunrise).Hours()
}

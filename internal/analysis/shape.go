package analysis

import "time"

// TimePoint is one chart sample. A nil Value renders as a gap, not as zero.
type TimePoint struct {
	Date  time.Time `json:"date"`
	Value *float64  `json:"value"`
}

// WindRoseRow pairs a wind direction with the speed observed from it. Rows
// are only emitted when both fields are present.
type WindRoseRow struct {
	Direction float64 `json:"direction"`
	Speed     float64 `json:"speed"`
}

// WindSpeedSeries projects the series into date-ordered wind speed samples,
// keeping missing days as gaps.
func WindSpeedSeries(series YearSeries) []TimePoint {
	points := make([]TimePoint, len(series))
	for i, rec := range series {
		points[i] = TimePoint{Date: rec.Date, Value: rec.WindSpeed}
	}
	return points
}

// SolarIrradianceSeries projects the series into date-ordered solar
// irradiance samples, keeping missing days as gaps.
func SolarIrradianceSeries(series YearSeries) []TimePoint {
	points := make([]TimePoint, len(series))
	for i, rec := range series {
		points[i] = TimePoint{Date: rec.Date, Value: rec.SolarIrradiance}
	}
	return points
}

// WindRose pairs wind direction with wind speed for directional-distribution
// rendering. Days missing either field are dropped. ErrInsufficientData is
// returned when no day has both.
func WindRose(series YearSeries) ([]WindRoseRow, error) {
	var rows []WindRoseRow
	for _, rec := range series {
		if rec.WindDirection == nil || rec.WindSpeed == nil {
			continue
		}
		rows = append(rows, WindRoseRow{
			Direction: *rec.WindDirection,
			Speed:     *rec.WindSpeed,
		})
	}
	if len(rows) == 0 {
		return nil, ErrInsufficientData
	}
	return rows, nil
}

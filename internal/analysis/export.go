package analysis

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"date", "wind_speed", "wind_direction", "solar_irradiance"}

// WriteCSV writes the series as comma-separated rows for download. Missing
// values render as empty fields.
func WriteCSV(w io.Writer, series YearSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range series {
		row := []string{
			rec.Date.Format("2006-01-02"),
			csvField(rec.WindSpeed),
			csvField(rec.WindDirection),
			csvField(rec.SolarIrradiance),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvField(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

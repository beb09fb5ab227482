package analysis

// MissingSentinel is the numeric constant NASA POWER uses to mark a day with
// no observation. It is converted to an explicit nil at the parse boundary so
// no downstream component ever re-checks for it.
const MissingSentinel = -999

// Clean returns a copy of the series with every sentinel-valued field replaced
// by nil. Each field is handled independently. Cleaning already-clean data is
// a no-op.
func Clean(series YearSeries) YearSeries {
	if series == nil {
		return nil
	}
	out := make(YearSeries, len(series))
	for i, rec := range series {
		out[i] = DailyRecord{
			Date:            rec.Date,
			WindSpeed:       cleanValue(rec.WindSpeed),
			WindDirection:   cleanValue(rec.WindDirection),
			SolarIrradiance: cleanValue(rec.SolarIrradiance),
		}
	}
	return out
}

func cleanValue(v *float64) *float64 {
	if v == nil || *v == MissingSentinel {
		return nil
	}
	return v
}

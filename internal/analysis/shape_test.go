package analysis

import (
	"errors"
	"testing"
)

func TestTimeSeriesProjectionsKeepGaps(t *testing.T) {
	series := YearSeries{
		{Date: day(1), WindSpeed: Float64Ptr(4), SolarIrradiance: Float64Ptr(2)},
		{Date: day(2)},
		{Date: day(3), WindSpeed: Float64Ptr(6), SolarIrradiance: Float64Ptr(5)},
	}

	wind := WindSpeedSeries(series)
	solar := SolarIrradianceSeries(series)

	if len(wind) != 3 || len(solar) != 3 {
		t.Fatalf("projections must keep full length, got %d and %d", len(wind), len(solar))
	}
	if wind[1].Value != nil {
		t.Error("missing wind day must stay a gap")
	}
	if solar[1].Value != nil {
		t.Error("missing solar day must stay a gap")
	}
	if !wind[0].Date.Equal(day(1)) || !wind[2].Date.Equal(day(3)) {
		t.Error("projection must preserve date order")
	}
	if *wind[2].Value != 6 || *solar[2].Value != 5 {
		t.Error("projection must carry values through")
	}
}

func TestWindRose_DropsPartialRows(t *testing.T) {
	series := YearSeries{
		{Date: day(1), WindSpeed: Float64Ptr(4), WindDirection: Float64Ptr(270)},
		{Date: day(2), WindSpeed: Float64Ptr(5)},                    // no direction
		{Date: day(3), WindDirection: Float64Ptr(90)},               // no speed
		{Date: day(4), WindSpeed: Float64Ptr(7), WindDirection: Float64Ptr(180)},
	}

	rows, err := WindRose(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 complete rows, got %d", len(rows))
	}
	if rows[0].Direction != 270 || rows[0].Speed != 4 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Direction != 180 || rows[1].Speed != 7 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestWindRose_AllDirectionsMissing(t *testing.T) {
	series := YearSeries{
		{Date: day(1), WindSpeed: Float64Ptr(4), SolarIrradiance: Float64Ptr(2)},
		{Date: day(2), WindSpeed: Float64Ptr(6), SolarIrradiance: Float64Ptr(3)},
	}

	if _, err := WindRose(series); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}

	// Time-series shaping of the same input still yields full-length output.
	if got := len(WindSpeedSeries(series)); got != 2 {
		t.Errorf("expected full-length wind series, got %d", got)
	}
}

package analysis

import (
	"bytes"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	series := YearSeries{
		{Date: day(1), WindSpeed: Float64Ptr(4.5), WindDirection: Float64Ptr(270), SolarIrradiance: Float64Ptr(2.25)},
		{Date: day(2), SolarIrradiance: Float64Ptr(3)},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, series); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := "date,wind_speed,wind_direction,solar_irradiance\n" +
		"2023-01-01,4.5,270,2.25\n" +
		"2023-01-02,,,3\n"
	if buf.String() != want {
		t.Errorf("unexpected CSV output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteCSV_EmptySeries(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if buf.String() != "date,wind_speed,wind_direction,solar_irradiance\n" {
		t.Errorf("expected header only, got %q", buf.String())
	}
}

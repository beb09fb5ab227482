package power

// Daily parameter codes requested from the POWER API, renewable-energy
// community profile.
const (
	ParamWindSpeed       = "WS10M"           // wind speed at 10m, m/s
	ParamWindDirection   = "WD10M"           // wind direction at 10m, degrees
	ParamSolarIrradiance = "ALLSKY_SFC_SW_DWN" // all-sky surface shortwave downward irradiance, kWh/m²/day
)

// pointResponse mirrors the relevant part of the POWER daily point response:
// properties.parameter.<CODE> maps "YYYYMMDD" date keys to values.
type pointResponse struct {
	Properties *struct {
		Parameter map[string]map[string]float64 `json:"parameter"`
	} `json:"properties"`
}

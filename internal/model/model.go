package model

import (
	"encoding/json"
	"fmt"
)

// LocationQuery selects a place either by city name or by coordinates.
type LocationQuery struct {
	City      string
	Lat       float64
	Lon       float64
	HasCoords bool
}

// WeatherObservation is a single point-in-time reading normalized from the
// provider payload. Metric units: temperatures in °C, wind in m/s,
// visibility in meters, pressure in hPa.
type WeatherObservation struct {
	Timestamp   int64   `json:"timestamp"`
	City        string  `json:"city,omitempty"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Clouds      int     `json:"clouds"`
	Humidity    int     `json:"humidity"`
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feelsLike"`
	WindSpeed   float64 `json:"windSpeed"`
	Visibility  int     `json:"visibility,omitempty"`
	Pressure    int     `json:"pressure,omitempty"`
	Sunrise     int64   `json:"sunrise,omitempty"`
	Sunset      int64   `json:"sunset,omitempty"`
}

// Verdict is the hang/no-hang classification for one observation.
// Reasons is non-empty only when CanHang is false; Warnings only when it is
// true. Both keep the order the checks ran in.
type Verdict struct {
	CanHang  bool     `json:"canHang"`
	Message  string   `json:"message"`
	Reasons  []string `json:"reasons,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ForecastBadge is the collapsed per-entry verdict used in forecast views.
type ForecastBadge struct {
	CanHang  bool     `json:"canHang"`
	Findings []string `json:"findings,omitempty"`
	Label    string   `json:"label"`
}

// CurrentVerdict pairs a current-conditions observation with its verdict.
type CurrentVerdict struct {
	City        string             `json:"city"`
	Observation WeatherObservation `json:"observation"`
	Verdict     Verdict            `json:"verdict"`
}

// DayEntry is one forecast point inside a day bucket.
type DayEntry struct {
	Observation WeatherObservation `json:"observation"`
	Hour        string             `json:"hour"`
	IsDay       bool               `json:"isDay"`
	Badge       ForecastBadge      `json:"badge"`
}

// DayBucket groups forecast entries belonging to one local calendar date,
// entries ordered by timestamp ascending.
type DayBucket struct {
	Date    string     `json:"date"`
	Label   string     `json:"label"`
	Entries []DayEntry `json:"entries"`
}

// CitySuggestion is a geocoding result used to pick coordinates for a
// weather query.
type CitySuggestion struct {
	Name        string  `json:"name"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"displayName"`
}

// ComposeDisplayName builds the "name, state, country" display string,
// collapsing an empty state.
func (c CitySuggestion) ComposeDisplayName() string {
	if c.State != "" {
		return fmt.Sprintf("%s, %s, %s", c.Name, c.State, c.Country)
	}
	return fmt.Sprintf("%s, %s", c.Name, c.Country)
}

// providerConditions mirrors the provider's main/weather/wind/clouds blocks
// shared by the current-weather and forecast payloads.
type providerConditions struct {
	Dt      int64 `json:"dt"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Visibility int `json:"visibility"`
}

func (p *providerConditions) toObservation() WeatherObservation {
	obs := WeatherObservation{
		Timestamp:  p.Dt,
		Clouds:     p.Clouds.All,
		Humidity:   p.Main.Humidity,
		Temp:       p.Main.Temp,
		FeelsLike:  p.Main.FeelsLike,
		WindSpeed:  p.Wind.Speed,
		Visibility: p.Visibility,
		Pressure:   p.Main.Pressure,
	}
	// a missing weather block means no condition category, not an error
	if len(p.Weather) > 0 {
		obs.Condition = p.Weather[0].Main
		obs.Description = p.Weather[0].Description
		obs.Icon = p.Weather[0].Icon
	}
	return obs
}

// ParseCurrent decodes a raw provider current-weather payload.
func ParseCurrent(raw json.RawMessage) (*WeatherObservation, error) {
	var payload struct {
		providerConditions
		Name string `json:"name"`
		Sys  struct {
			Sunrise int64 `json:"sunrise"`
			Sunset  int64 `json:"sunset"`
		} `json:"sys"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode current weather payload: %w", err)
	}

	obs := payload.toObservation()
	obs.City = payload.Name
	obs.Sunrise = payload.Sys.Sunrise
	obs.Sunset = payload.Sys.Sunset

	return &obs, nil
}

// ParseForecast decodes a raw provider forecast payload into its ordered
// list of observations.
func ParseForecast(raw json.RawMessage) ([]WeatherObservation, error) {
	var payload struct {
		List []providerConditions `json:"list"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode forecast payload: %w", err)
	}

	observations := make([]WeatherObservation, 0, len(payload.List))
	for i := range payload.List {
		observations = append(observations, payload.List[i].toObservation())
	}

	return observations, nil
}

// Package openweather wraps the OpenWeatherMap HTTP API: city geocoding,
// reverse geocoding, current weather and the 5-day/3-hour forecast. The
// credential stays server-side; callers never see it.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/umahmood/haversine"

	"github.com/tendedero-app/tendedero-api/internal/logger"
	"github.com/tendedero-app/tendedero-api/internal/model"
)

const (
	defaultDataBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultGeoBaseURL  = "https://api.openweathermap.org/geo/1.0"

	// OpenWeatherMap keys are typically 32 hex characters.
	minAPIKeyLength = 20

	// Placeholder city name when reverse geocoding finds no match.
	FallbackCityName = "Tu ubicación"
)

var apiKeyFormat = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Localized messages the gateway forwards to users, one per error kind.
const (
	msgAuthentication = "Error de autenticación con la API del clima. Verifica tu API key."
	msgCityNotFound   = "Ciudad no encontrada. Intenta con otro nombre."
	msgUpstream       = "No se pudieron obtener los datos del clima. Intenta nuevamente más tarde."
)

// ValidateAPIKey checks the credential format without calling the provider.
// The returned error, if any, is of KindConfiguration.
func ValidateAPIKey(apiKey string) error {
	if apiKey == "" {
		return newError(KindConfiguration,
			"API key is missing. Make sure OPENWEATHER_API_KEY is set in your environment variables.", nil)
	}
	if len(apiKey) < minAPIKeyLength {
		return newError(KindConfiguration,
			"API key appears to be too short. OpenWeatherMap API keys are typically 32 characters long.", nil)
	}
	if !apiKeyFormat.MatchString(apiKey) {
		return newError(KindConfiguration,
			"API key contains invalid characters. API keys should only contain letters and numbers.", nil)
	}
	return nil
}

// Client issues requests against the provider. Exactly one upstream call
// per logical operation: no retries, no caching.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	dataBaseURL string
	geoBaseURL  string
}

// New creates a Client using the given http client and credential.
func New(httpClient *http.Client, apiKey string) *Client {
	return &Client{
		httpClient:  httpClient,
		apiKey:      apiKey,
		dataBaseURL: defaultDataBaseURL,
		geoBaseURL:  defaultGeoBaseURL,
	}
}

// SearchCities geocodes a free-text query into up to limit suggestions,
// provider order preserved.
func (c *Client) SearchCities(ctx context.Context, query string, limit int) ([]model.CitySuggestion, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, c.geoBaseURL+"/direct", params)
	if err != nil {
		return nil, err
	}

	var results []struct {
		Name    string  `json:"name"`
		State   string  `json:"state"`
		Country string  `json:"country"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, newError(KindUpstream, msgUpstream, fmt.Errorf("failed to decode geocoding response: %w", err))
	}

	suggestions := make([]model.CitySuggestion, 0, len(results))
	for _, r := range results {
		s := model.CitySuggestion{
			Name:    r.Name,
			State:   r.State,
			Country: r.Country,
			Lat:     r.Lat,
			Lon:     r.Lon,
		}
		s.DisplayName = s.ComposeDisplayName()
		suggestions = append(suggestions, s)
	}

	return suggestions, nil
}

// ReverseGeocode resolves coordinates to the nearest known city name,
// falling back to a placeholder when the provider returns no match.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("limit", "5")

	body, err := c.get(ctx, c.geoBaseURL+"/reverse", params)
	if err != nil {
		return "", err
	}

	var results []struct {
		Name string  `json:"name"`
		Lat  float64 `json:"lat"`
		Lon  float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return "", newError(KindUpstream, msgUpstream, fmt.Errorf("failed to decode reverse geocoding response: %w", err))
	}

	if len(results) == 0 {
		return FallbackCityName, nil
	}

	// provider candidates are not guaranteed nearest-first
	origin := haversine.Coord{Lat: lat, Lon: lon}
	best := 0
	var bestKm float64
	for i, r := range results {
		_, km := haversine.Distance(origin, haversine.Coord{Lat: r.Lat, Lon: r.Lon})
		if i == 0 || km < bestKm {
			bestKm = km
			best = i
		}
	}

	return results[best].Name, nil
}

// CurrentWeather fetches current conditions, metric units, Spanish text
// fields. Returns the raw provider payload.
func (c *Client) CurrentWeather(ctx context.Context, q model.LocationQuery) (json.RawMessage, error) {
	return c.get(ctx, c.dataBaseURL+"/weather", locationParams(q))
}

// Forecast fetches the 5-day/3-hour forecast list. Returns the raw
// provider payload.
func (c *Client) Forecast(ctx context.Context, q model.LocationQuery) (json.RawMessage, error) {
	return c.get(ctx, c.dataBaseURL+"/forecast", locationParams(q))
}

func locationParams(q model.LocationQuery) url.Values {
	params := url.Values{}
	if q.HasCoords {
		params.Set("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(q.Lon, 'f', -1, 64))
	} else {
		params.Set("q", q.City)
	}
	params.Set("units", "metric")
	params.Set("lang", "es")
	return params
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := ValidateAPIKey(c.apiKey); err != nil {
		return nil, err
	}

	params.Set("appid", c.apiKey)
	requestURL := endpoint + "?" + params.Encode()

	logger.Info(fmt.Sprintf("fetching %s", redactKey(requestURL, c.apiKey)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, newError(KindUpstream, msgUpstream, fmt.Errorf("failed to build request: %w", err))
	}
	// data must always be fresh
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError(KindUpstream, msgUpstream, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		cause := fmt.Errorf("provider status %d: %s", resp.StatusCode, snippet)

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, newError(KindAuthentication, msgAuthentication, cause)
		case http.StatusNotFound:
			return nil, newError(KindNotFound, msgCityNotFound, cause)
		default:
			return nil, newError(KindUpstream, msgUpstream, cause)
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindUpstream, msgUpstream, fmt.Errorf("failed to read response body: %w", err))
	}
	if len(body) == 0 {
		return nil, newError(KindUpstream, msgUpstream, errors.New("empty response body"))
	}

	return body, nil
}

// redactKey truncates the credential in a URL destined for logs.
func redactKey(requestURL, apiKey string) string {
	if len(apiKey) < 4 {
		return requestURL
	}
	redacted := url.Values{"appid": {apiKey[:3] + "..."}}.Encode()
	full := url.Values{"appid": {apiKey}}.Encode()
	return strings.Replace(requestURL, full, redacted, 1)
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tendedero-app/tendedero-api/internal/logger"
	"github.com/tendedero-app/tendedero-api/internal/model"
	"github.com/tendedero-app/tendedero-api/internal/openweather"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go WeatherService

const defaultSearchLimit = 5

// WeatherService provides laundry-weather service methods.
type WeatherService interface {
	SearchCities(ctx context.Context, query string, limit int) ([]model.CitySuggestion, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
	CurrentWeather(ctx context.Context, q model.LocationQuery) (json.RawMessage, error)
	Forecast(ctx context.Context, q model.LocationQuery) (json.RawMessage, error)
	CurrentVerdict(ctx context.Context, q model.LocationQuery) (*model.CurrentVerdict, error)
	ForecastDays(ctx context.Context, q model.LocationQuery) ([]model.DayBucket, error)
}

// WeatherServer is a server for laundry-weather request processing.
type WeatherServer struct {
	service WeatherService
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(service WeatherService) *WeatherServer {
	return &WeatherServer{service}
}

// CitySearchHandler handles city suggestion requests.
func (s *WeatherServer) CitySearchHandler(w http.ResponseWriter, r *http.Request) {
	query, limit, err := validateSearchParams(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	suggestions, err := s.service.SearchCities(r.Context(), query, limit)
	if err != nil {
		respondUpstreamErr(w, err, "No se pudieron obtener resultados de búsqueda")
		return
	}

	respond(w, http.StatusOK, suggestions)
}

// ReverseGeocodeHandler handles coordinate-to-city-name requests.
func (s *WeatherServer) ReverseGeocodeHandler(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := validateCoordParams(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	cityName, err := s.service.ReverseGeocode(r.Context(), lat, lon)
	if err != nil {
		respondUpstreamErr(w, err, "No se pudo obtener el nombre de la ciudad")
		return
	}

	respond(w, http.StatusOK, map[string]string{"cityName": cityName})
}

// CurrentWeatherHandler proxies current conditions for a city or a
// coordinate pair.
func (s *WeatherServer) CurrentWeatherHandler(w http.ResponseWriter, r *http.Request) {
	q, err := validateLocationParams(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	raw, err := s.service.CurrentWeather(r.Context(), q)
	if err != nil {
		respondUpstreamErr(w, err, "No se pudieron obtener los datos del clima. Intenta nuevamente más tarde.")
		return
	}

	respondRaw(w, http.StatusOK, raw)
}

// ForecastHandler proxies the forecast list for a city or a coordinate pair.
func (s *WeatherServer) ForecastHandler(w http.ResponseWriter, r *http.Request) {
	q, err := validateLocationParams(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	raw, err := s.service.Forecast(r.Context(), q)
	if err != nil {
		respondUpstreamErr(w, err, "No se pudieron obtener los datos del clima. Intenta nuevamente más tarde.")
		return
	}

	respondRaw(w, http.StatusOK, raw)
}

// CurrentVerdictHandler returns current conditions classified into a
// hang/no-hang verdict.
func (s *WeatherServer) CurrentVerdictHandler(w http.ResponseWriter, r *http.Request) {
	q, err := validateLocationParams(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	verdict, err := s.service.CurrentVerdict(r.Context(), q)
	if err != nil {
		respondUpstreamErr(w, err, "No se pudieron obtener los datos del clima. Intenta nuevamente más tarde.")
		return
	}

	respond(w, http.StatusOK, verdict)
}

// ForecastDaysHandler returns the forecast grouped into calendar-day
// buckets with per-entry badges.
func (s *WeatherServer) ForecastDaysHandler(w http.ResponseWriter, r *http.Request) {
	q, err := validateLocationParams(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	days, err := s.service.ForecastDays(r.Context(), q)
	if err != nil {
		respondUpstreamErr(w, err, "No se pudieron obtener los datos del clima. Intenta nuevamente más tarde.")
		return
	}

	respond(w, http.StatusOK, days)
}

// SetAPIKeyHandler validates a submitted credential's format. Best-effort
// demo affordance: it reports success without storing anything.
func (s *WeatherServer) SetAPIKeyHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		APIKey string `json:"apiKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Error(fmt.Errorf("failed to decode set-api-key body: %w", err))
		respondErr(w, http.StatusBadRequest, errors.New("API key is required"))
		return
	}

	if body.APIKey == "" {
		respondErr(w, http.StatusBadRequest, errors.New("API key is required"))
		return
	}

	if err := openweather.ValidateAPIKey(body.APIKey); err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, errors.New("Invalid API key format"))
		return
	}

	respond(w, http.StatusOK, map[string]bool{"success": true})
}

func validateSearchParams(params url.Values) (string, int, error) {
	query := params.Get("query")
	if len(query) < 2 {
		return "", 0, errors.New("query parameter must be at least 2 characters")
	}

	limit := defaultSearchLimit
	if limitStr := params.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			return "", 0, fmt.Errorf("limit parameter is not a positive number: %q", limitStr)
		}
		limit = parsed
	}

	return query, limit, nil
}

func validateCoordParams(params url.Values) (float64, float64, error) {
	latStr := params.Get("lat")
	lonStr := params.Get("lon")
	if latStr == "" || lonStr == "" {
		return 0, 0, errors.New("lat and lon parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("lat parameter is not a number: %q", latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("lon parameter is not a number: %q", lonStr)
	}

	return lat, lon, nil
}

func validateLocationParams(params url.Values) (model.LocationQuery, error) {
	if city := params.Get("city"); city != "" {
		return model.LocationQuery{City: city}, nil
	}

	if params.Get("lat") != "" || params.Get("lon") != "" {
		lat, lon, err := validateCoordParams(params)
		if err != nil {
			return model.LocationQuery{}, err
		}
		return model.LocationQuery{Lat: lat, Lon: lon, HasCoords: true}, nil
	}

	return model.LocationQuery{}, errors.New("city parameter or lat and lon parameters are required")
}

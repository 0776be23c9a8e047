package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tendedero-app/tendedero-api/internal/decision"
	"github.com/tendedero-app/tendedero-api/internal/forecast"
	"github.com/tendedero-app/tendedero-api/internal/model"
)

// UpstreamClient provides the provider operations the service needs.
type UpstreamClient interface {
	SearchCities(ctx context.Context, query string, limit int) ([]model.CitySuggestion, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
	CurrentWeather(ctx context.Context, q model.LocationQuery) (json.RawMessage, error)
	Forecast(ctx context.Context, q model.LocationQuery) (json.RawMessage, error)
}

// WeatherService provides laundry-weather service functionality.
type WeatherService struct {
	client UpstreamClient
	now    func() time.Time
}

// New creates new WeatherService.
func New(client UpstreamClient) *WeatherService {
	return &WeatherService{
		client: client,
		now:    time.Now,
	}
}

// SearchCities implements city suggestion lookup.
func (ws *WeatherService) SearchCities(ctx context.Context, query string, limit int) ([]model.CitySuggestion, error) {
	return ws.client.SearchCities(ctx, query, limit)
}

// ReverseGeocode implements coordinate-to-city-name resolution.
func (ws *WeatherService) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	return ws.client.ReverseGeocode(ctx, lat, lon)
}

// CurrentWeather proxies the raw current-conditions payload.
func (ws *WeatherService) CurrentWeather(ctx context.Context, q model.LocationQuery) (json.RawMessage, error) {
	return ws.client.CurrentWeather(ctx, q)
}

// Forecast proxies the raw forecast payload.
func (ws *WeatherService) Forecast(ctx context.Context, q model.LocationQuery) (json.RawMessage, error) {
	return ws.client.Forecast(ctx, q)
}

// CurrentVerdict fetches current conditions and classifies them.
func (ws *WeatherService) CurrentVerdict(ctx context.Context, q model.LocationQuery) (*model.CurrentVerdict, error) {
	raw, err := ws.client.CurrentWeather(ctx, q)
	if err != nil {
		return nil, err
	}

	obs, err := model.ParseCurrent(raw)
	if err != nil {
		return nil, err
	}

	return &model.CurrentVerdict{
		City:        obs.City,
		Observation: *obs,
		Verdict:     decision.Evaluate(*obs),
	}, nil
}

// ForecastDays fetches the forecast and groups it into local calendar-day
// buckets with per-entry badges.
func (ws *WeatherService) ForecastDays(ctx context.Context, q model.LocationQuery) ([]model.DayBucket, error) {
	raw, err := ws.client.Forecast(ctx, q)
	if err != nil {
		return nil, err
	}

	observations, err := model.ParseForecast(raw)
	if err != nil {
		return nil, err
	}

	return forecast.GroupByDay(observations, ws.now()), nil
}

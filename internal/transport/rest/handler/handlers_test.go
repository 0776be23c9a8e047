package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/tj/assert"

	"github.com/tendedero-app/tendedero-api/internal/model"
	"github.com/tendedero-app/tendedero-api/internal/openweather"
	mock "github.com/tendedero-app/tendedero-api/internal/transport/rest/handler/mock"
)

var errTest = errors.New("test error")

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	var resBody errorResponse
	err := json.NewDecoder(w.Result().Body).Decode(&resBody)
	assert.Nil(t, err)
	return resBody.Error
}

func TestCitySearchHandler(t *testing.T) {
	suggestions := []model.CitySuggestion{{Name: "Córdoba", Country: "AR", DisplayName: "Córdoba, AR"}}

	cases := []struct {
		name           string
		target         string
		expectedStatus int
		expectedLimit  int
		serviceErr     error
		serviceResult  []model.CitySuggestion
		isMockCalled   bool
	}{
		{
			name:           "missing query",
			target:         "/api/city-search",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "query too short",
			target:         "/api/city-search?query=c",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed limit",
			target:         "/api/city-search?query=cor&limit=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "default limit",
			target:         "/api/city-search?query=cor",
			expectedStatus: http.StatusOK,
			expectedLimit:  5,
			serviceResult:  suggestions,
			isMockCalled:   true,
		},
		{
			name:           "explicit limit honored",
			target:         "/api/city-search?query=cor&limit=3",
			expectedStatus: http.StatusOK,
			expectedLimit:  3,
			serviceResult:  suggestions,
			isMockCalled:   true,
		},
		{
			name:           "upstream failure",
			target:         "/api/city-search?query=cor",
			expectedStatus: http.StatusInternalServerError,
			expectedLimit:  5,
			serviceErr:     errTest,
			isMockCalled:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockWeatherService := mock.NewMockWeatherService(ctrl)
			s := NewWeatherServer(mockWeatherService)

			if tc.isMockCalled {
				mockWeatherService.EXPECT().
					SearchCities(gomock.Any(), "cor", tc.expectedLimit).
					Return(tc.serviceResult, tc.serviceErr)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			s.CitySearchHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)

			if tc.expectedStatus == http.StatusOK {
				var got []model.CitySuggestion
				err := json.NewDecoder(w.Result().Body).Decode(&got)
				assert.Nil(t, err)
				assert.Equal(t, tc.serviceResult, got)
			} else {
				assert.NotEmpty(t, decodeError(t, w))
			}
		})
	}
}

func TestCitySearchHandlerUpstreamFallbackMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWeatherService := mock.NewMockWeatherService(ctrl)
	s := NewWeatherServer(mockWeatherService)

	mockWeatherService.EXPECT().
		SearchCities(gomock.Any(), "cor", 5).
		Return(nil, errTest)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/city-search?query=cor", nil)

	s.CitySearchHandler(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	assert.Equal(t, "No se pudieron obtener resultados de búsqueda", decodeError(t, w))
}

func TestReverseGeocodeHandler(t *testing.T) {
	cases := []struct {
		name           string
		target         string
		expectedStatus int
		isMockCalled   bool
	}{
		{
			name:           "missing coordinates",
			target:         "/api/reverse-geocode",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed latitude",
			target:         "/api/reverse-geocode?lat=abc&lon=-64.18",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "ok",
			target:         "/api/reverse-geocode?lat=-31.42&lon=-64.18",
			expectedStatus: http.StatusOK,
			isMockCalled:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockWeatherService := mock.NewMockWeatherService(ctrl)
			s := NewWeatherServer(mockWeatherService)

			if tc.isMockCalled {
				mockWeatherService.EXPECT().
					ReverseGeocode(gomock.Any(), -31.42, -64.18).
					Return("Córdoba", nil)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			s.ReverseGeocodeHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)

			if tc.expectedStatus == http.StatusOK {
				var got map[string]string
				err := json.NewDecoder(w.Result().Body).Decode(&got)
				assert.Nil(t, err)
				assert.Equal(t, "Córdoba", got["cityName"])
			}
		})
	}
}

func TestCurrentWeatherHandler(t *testing.T) {
	payload := json.RawMessage(`{"name":"Rosario","main":{"temp":18.3}}`)

	cases := []struct {
		name           string
		target         string
		expectedQuery  model.LocationQuery
		expectedStatus int
		serviceErr     error
		isMockCalled   bool
	}{
		{
			name:           "missing location",
			target:         "/api/weather",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "by city",
			target:         "/api/weather?city=Rosario",
			expectedQuery:  model.LocationQuery{City: "Rosario"},
			expectedStatus: http.StatusOK,
			isMockCalled:   true,
		},
		{
			name:           "by coordinates",
			target:         "/api/weather?lat=-31.42&lon=-64.18",
			expectedQuery:  model.LocationQuery{Lat: -31.42, Lon: -64.18, HasCoords: true},
			expectedStatus: http.StatusOK,
			isMockCalled:   true,
		},
		{
			name:           "credential rejected upstream",
			target:         "/api/weather?city=Rosario",
			expectedQuery:  model.LocationQuery{City: "Rosario"},
			expectedStatus: http.StatusUnauthorized,
			serviceErr:     &openweather.Error{Kind: openweather.KindAuthentication, Message: "Error de autenticación con la API del clima. Verifica tu API key."},
			isMockCalled:   true,
		},
		{
			name:           "unknown city",
			target:         "/api/weather?city=Nadalandia",
			expectedQuery:  model.LocationQuery{City: "Nadalandia"},
			expectedStatus: http.StatusNotFound,
			serviceErr:     &openweather.Error{Kind: openweather.KindNotFound, Message: "Ciudad no encontrada. Intenta con otro nombre."},
			isMockCalled:   true,
		},
		{
			name:           "credential misconfigured",
			target:         "/api/weather?city=Rosario",
			expectedQuery:  model.LocationQuery{City: "Rosario"},
			expectedStatus: http.StatusInternalServerError,
			serviceErr:     &openweather.Error{Kind: openweather.KindConfiguration, Message: "API key is missing. Make sure OPENWEATHER_API_KEY is set in your environment variables."},
			isMockCalled:   true,
		},
		{
			name:           "generic upstream failure",
			target:         "/api/weather?city=Rosario",
			expectedQuery:  model.LocationQuery{City: "Rosario"},
			expectedStatus: http.StatusInternalServerError,
			serviceErr:     errTest,
			isMockCalled:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockWeatherService := mock.NewMockWeatherService(ctrl)
			s := NewWeatherServer(mockWeatherService)

			if tc.isMockCalled {
				var result json.RawMessage
				if tc.serviceErr == nil {
					result = payload
				}
				mockWeatherService.EXPECT().
					CurrentWeather(gomock.Any(), tc.expectedQuery).
					Return(result, tc.serviceErr)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			s.CurrentWeatherHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)

			if tc.expectedStatus == http.StatusOK {
				body := w.Body.String()
				assert.Equal(t, string(payload), body)
			} else if tc.serviceErr != nil {
				var oerr *openweather.Error
				if errors.As(tc.serviceErr, &oerr) {
					assert.Equal(t, oerr.Message, decodeError(t, w))
				}
			}
		})
	}
}

func TestForecastDaysHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWeatherService := mock.NewMockWeatherService(ctrl)
	s := NewWeatherServer(mockWeatherService)

	days := []model.DayBucket{{Date: "2025-06-10", Label: "Hoy"}}

	mockWeatherService.EXPECT().
		ForecastDays(gomock.Any(), model.LocationQuery{City: "Rosario"}).
		Return(days, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/forecast/days?city=Rosario", nil)

	s.ForecastDaysHandler(w, r)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var got []model.DayBucket
	err := json.NewDecoder(w.Result().Body).Decode(&got)
	assert.Nil(t, err)
	assert.Equal(t, days, got)
}

func TestCurrentVerdictHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWeatherService := mock.NewMockWeatherService(ctrl)
	s := NewWeatherServer(mockWeatherService)

	verdict := &model.CurrentVerdict{
		City: "Rosario",
		Verdict: model.Verdict{
			CanHang: false,
			Message: "No colgar - Está lloviendo",
			Reasons: []string{"Está lloviendo"},
		},
	}

	mockWeatherService.EXPECT().
		CurrentVerdict(gomock.Any(), model.LocationQuery{City: "Rosario"}).
		Return(verdict, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/weather/verdict?city=Rosario", nil)

	s.CurrentVerdictHandler(w, r)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var got model.CurrentVerdict
	err := json.NewDecoder(w.Result().Body).Decode(&got)
	assert.Nil(t, err)
	assert.Equal(t, *verdict, got)
}

func TestSetAPIKeyHandler(t *testing.T) {
	cases := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid key",
			body:           `{"apiKey":"abcdef0123456789abcdef0123456789"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing key",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "key too short",
			body:           `{"apiKey":"abc123"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "key with invalid characters",
			body:           `{"apiKey":"abcdef0123456789abcdef-123456789"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockWeatherService := mock.NewMockWeatherService(ctrl)
			s := NewWeatherServer(mockWeatherService)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/set-api-key", bytes.NewReader([]byte(tc.body)))

			s.SetAPIKeyHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)

			if tc.expectedStatus == http.StatusOK {
				var got map[string]bool
				err := json.NewDecoder(w.Result().Body).Decode(&got)
				assert.Nil(t, err)
				assert.True(t, got["success"])
			}
		})
	}
}

package api

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/tendedero-app/tendedero-api/internal/logger"
	"github.com/tendedero-app/tendedero-api/internal/openweather"
	"github.com/tendedero-app/tendedero-api/internal/service"
	"github.com/tendedero-app/tendedero-api/internal/transport/rest/handler"
)

// RunAPI runs the laundry-weather gateway API.
func RunAPI() error {
	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	if err := openweather.ValidateAPIKey(apiKey); err != nil {
		// requests fail with a configuration error until a valid key is set
		logger.Error(fmt.Errorf("weather provider credential check: %w", err))
	}

	client := openweather.New(&http.Client{Timeout: 15 * time.Second}, apiKey)
	service := service.New(client)
	server := handler.NewWeatherServer(service)

	r := mux.NewRouter()

	r.HandleFunc("/api/city-search", server.CitySearchHandler).Methods("GET")
	r.HandleFunc("/api/reverse-geocode", server.ReverseGeocodeHandler).Methods("GET")
	r.HandleFunc("/api/weather", server.CurrentWeatherHandler).Methods("GET")
	r.HandleFunc("/api/weather/verdict", server.CurrentVerdictHandler).Methods("GET")
	r.HandleFunc("/api/forecast", server.ForecastHandler).Methods("GET")
	r.HandleFunc("/api/forecast/days", server.ForecastDaysHandler).Methods("GET")
	r.HandleFunc("/api/set-api-key", server.SetAPIKeyHandler).Methods("POST")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		logger.Info(fmt.Sprintf("Defaulting to port %s", port))
	}

	logger.Info(fmt.Sprintf("Starting tendedero api at port %s", port))

	options := setupCorsOptions()
	return http.ListenAndServe(":"+port, handlers.CORS(options...)(r))
}

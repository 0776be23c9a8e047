package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tendedero-app/tendedero-api/internal/logger"
	"github.com/tendedero-app/tendedero-api/internal/openweather"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Respond is a function to send http responses.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, fmt.Sprintf("can't marshal the given payload: %v", err), http.StatusInternalServerError)
		logger.Error(err)
		return
	}

	respondRaw(w, code, body)
}

// RespondRaw sends a pre-encoded JSON body as-is (provider pass-through).
func respondRaw(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_, err := w.Write(body)
	if err != nil {
		logger.Error(fmt.Errorf("can't write response: %w", err))
	}
}

// RespondErr is a function to make http error responses.
func respondErr(w http.ResponseWriter, code int, err error) {
	respond(w, code, errorResponse{Error: err.Error()})
}

// RespondUpstreamErr maps an upstream client failure to a status code and
// a localized message; fallback is the endpoint's message for generic
// upstream failures. The full diagnostic goes only to the log.
func respondUpstreamErr(w http.ResponseWriter, err error, fallback string) {
	logger.Error(err)

	code := http.StatusInternalServerError
	message := fallback

	switch openweather.KindOf(err) {
	case openweather.KindConfiguration:
		message = openweather.UserMessage(err, fallback)
	case openweather.KindAuthentication:
		code = http.StatusUnauthorized
		message = openweather.UserMessage(err, fallback)
	case openweather.KindNotFound:
		code = http.StatusNotFound
		message = openweather.UserMessage(err, fallback)
	}

	respondErr(w, code, errors.New(message))
}

// Package restapi exposes the routing engine over HTTP: the best-route
// report and the windowed next-departures timetable.
package restapi

import (
	"encoding/json"
	"net/http"

	"github.com/avdivo/nearest-bus/internal/app"
	"github.com/avdivo/nearest-bus/internal/logging"
)

const apiVersion = 1

// RestAPI wires the application's dependencies into HTTP handlers.
type RestAPI struct {
	*app.Application
}

// NewRestAPI creates the API surface over a built application.
func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{Application: application}
}

// ResponseModel is the envelope wrapping every reply.
type ResponseModel struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
	Data        any    `json:"data,omitempty"`
}

func (api *RestAPI) writeResponse(w http.ResponseWriter, r *http.Request, status int, model ResponseModel) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(model); err != nil {
		logging.LogError(api.Logger, "writing response", err, "path", r.URL.Path)
	}
}

// sendResponse replies 200 with the given payload.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, data any) {
	api.writeResponse(w, r, http.StatusOK, ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: api.Clock.Now().UnixMilli(),
		Text:        "OK",
		Version:     apiVersion,
		Data:        data,
	})
}

// validationErrorResponse replies 400 with per-field messages.
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	api.writeResponse(w, r, http.StatusBadRequest, ResponseModel{
		Code:        http.StatusBadRequest,
		CurrentTime: api.Clock.Now().UnixMilli(),
		Text:        "invalid request",
		Version:     apiVersion,
		Data:        map[string]any{"fieldErrors": fieldErrors},
	})
}

// serverErrorResponse logs the failure and replies 500 without leaking it.
func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(api.Logger, "request failed", err, "method", r.Method, "path", r.URL.Path)
	api.writeResponse(w, r, http.StatusInternalServerError, ResponseModel{
		Code:        http.StatusInternalServerError,
		CurrentTime: api.Clock.Now().UnixMilli(),
		Text:        "internal server error",
		Version:     apiVersion,
	})
}

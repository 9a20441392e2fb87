package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/Spidey0819/Tutorial-7/api"
)

const HTTP_ERROR_METRIC_NAME = "http_error"

//go:generate counterfeiter -o fakes/metrics_sender.go --fake-name MetricsSender . metricsSender
type metricsSender interface {
	SendDuration(string, time.Duration)
	IncrementCounter(string)
}

//go:generate counterfeiter -o fakes/error_response.go --fake-name ErrorResponse . errorResponse
type errorResponse interface {
	InternalServerError(lager.Logger, http.ResponseWriter, error, string)
	BadRequest(lager.Logger, http.ResponseWriter, error, string)
	Unauthorized(lager.Logger, http.ResponseWriter, error, string)
	NotFound(lager.Logger, http.ResponseWriter, error, string)
	ServiceUnavailable(lager.Logger, http.ResponseWriter, error, string)
}

// ErrorResponse renders the error envelopes. MaskDetails hides internal
// error text from 500 responses in production.
type ErrorResponse struct {
	MetricsSender metricsSender
	MaskDetails   bool
}

func (e *ErrorResponse) InternalServerError(logger lager.Logger, w http.ResponseWriter, err error, description string) {
	logger.Error(description, err)
	w.WriteHeader(http.StatusInternalServerError)
	details := "Please try again"
	if !e.MaskDetails && err != nil {
		details = err.Error()
	}
	j, _ := json.Marshal(details)
	w.Write([]byte(fmt.Sprintf(`{"error": "%s", "details": %s}`, description, j)))
	e.MetricsSender.IncrementCounter(HTTP_ERROR_METRIC_NAME)
}

func (e *ErrorResponse) BadRequest(logger lager.Logger, w http.ResponseWriter, err error, description string) {
	e.respondWithCode(http.StatusBadRequest, logger, w, err, description)
}

func (e *ErrorResponse) Unauthorized(logger lager.Logger, w http.ResponseWriter, err error, description string) {
	w.Header().Add("WWW-Authenticate", "Bearer")
	e.respondWithCode(http.StatusUnauthorized, logger, w, err, description)
}

func (e *ErrorResponse) NotFound(logger lager.Logger, w http.ResponseWriter, err error, description string) {
	e.respondWithCode(http.StatusNotFound, logger, w, err, description)
}

func (e *ErrorResponse) ServiceUnavailable(logger lager.Logger, w http.ResponseWriter, err error, description string) {
	e.respondWithCode(http.StatusServiceUnavailable, logger, w, err, description)
}

func (e *ErrorResponse) respondWithCode(statusCode int, logger lager.Logger, w http.ResponseWriter, err error, description string) {
	logger.Error(description, err)
	w.WriteHeader(statusCode)
	if validationErr, ok := err.(api.ValidationError); ok {
		j, _ := json.Marshal(validationErr.FieldErrors())
		w.Write([]byte(fmt.Sprintf(`{"error": "%s", "errors": %s}`, description, j)))
	} else {
		w.Write([]byte(fmt.Sprintf(`{"error": "%s"}`, description)))
	}
	e.MetricsSender.IncrementCounter(HTTP_ERROR_METRIC_NAME)
}

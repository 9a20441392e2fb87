package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Spidey0819/Tutorial-7/api"
)

//go:generate counterfeiter -o fakes/database_checker.go --fake-name DatabaseChecker . databaseChecker
type databaseChecker interface {
	CheckDatabase() error
}

type healthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Database    string `json:"database,omitempty"`
	Error       string `json:"error,omitempty"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment,omitempty"`
}

// Health pings the database. A nil DatabaseChecker means the server
// came up without one and reports itself degraded instead of failing.
type Health struct {
	DatabaseChecker databaseChecker
	Environment     string
}

func NewHealth(databaseChecker databaseChecker, environment string) *Health {
	return &Health{
		DatabaseChecker: databaseChecker,
		Environment:     environment,
	}
}

func (h *Health) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("health")

	status := "healthy"
	database := "connected"
	if h.DatabaseChecker == nil {
		status = "degraded"
		database = "unavailable"
	} else if err := h.DatabaseChecker.CheckDatabase(); err != nil {
		logger.Error("check database failed", err)
		responseBytes, _ := json.Marshal(healthResponse{
			Status:    "unhealthy",
			Message:   "Database connection failed",
			Error:     "Connection error",
			Timestamp: api.FormatTime(time.Now()),
		})
		w.WriteHeader(http.StatusInternalServerError)
		w.Write(responseBytes)
		return
	}

	responseBytes, _ := json.Marshal(healthResponse{
		Status:      status,
		Message:     "API is running",
		Database:    database,
		Timestamp:   api.FormatTime(time.Now()),
		Environment: h.Environment,
	})
	w.Write(responseBytes)
}

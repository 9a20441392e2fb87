package handlers

import (
	"encoding/json"
	"net/http"
)

type infoResponse struct {
	Message     string   `json:"message"`
	Version     string   `json:"version"`
	Status      string   `json:"status"`
	Environment string   `json:"environment"`
	Endpoints   []string `json:"endpoints"`
}

// Info describes the service at the root path.
type Info struct {
	Environment string
}

func NewInfo(environment string) *Info {
	return &Info{
		Environment: environment,
	}
}

func (h *Info) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	responseBytes, _ := json.Marshal(infoResponse{
		Message:     "Product Management API",
		Version:     "1.0.0",
		Status:      "running",
		Environment: h.Environment,
		Endpoints: []string{
			"/api/health",
			"/api/auth/register",
			"/api/auth/login",
			"/api/auth/verify",
			"/api/products",
			"/api/register",
			"/api/login",
			"/api/users",
		},
	})
	w.Write(responseBytes)
}

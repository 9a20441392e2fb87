package handlers

import (
	"encoding/json"
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/rata"
)

type notFoundResponse struct {
	Error              string   `json:"error"`
	Message            string   `json:"message"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

// NotFoundWrapper answers requests no route matches with a JSON body
// instead of the router's plain 404.
type NotFoundWrapper struct {
	Routes rata.Routes
}

func (n NotFoundWrapper) Wrap(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		for _, route := range n.Routes {
			if route.Method != req.Method {
				continue
			}
			match, err := matchRoute(route.Path, req.URL.Path)
			if err != nil {
				continue
			}
			if match {
				handler.ServeHTTP(w, req)
				return
			}
		}

		logger := getLogger(req)
		logger.Info("endpoint-not-found", lager.Data{"method": req.Method, "path": req.URL.Path})

		responseBytes, _ := json.Marshal(notFoundResponse{
			Error:   "Endpoint not found",
			Message: "The requested API endpoint does not exist",
			AvailableEndpoints: []string{
				"/api/health",
				"/api/register",
				"/api/auth/register",
				"/api/auth/login",
				"/api/products",
			},
		})
		w.WriteHeader(http.StatusNotFound)
		w.Write(responseBytes)
	})
}

package handlers

import "net/http"

// JSONContentTypeHandler labels every response as JSON up front so
// error bodies written with WriteHeader are not left to content
// sniffing.
type JSONContentTypeHandler struct {
}

func (j JSONContentTypeHandler) Wrap(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		handler.ServeHTTP(w, req)
	})
}

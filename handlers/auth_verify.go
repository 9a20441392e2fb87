package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Spidey0819/Tutorial-7/api"
)

// AuthVerify reports the user the authentication middleware resolved.
type AuthVerify struct {
	ErrorResponse errorResponse
}

func NewAuthVerify(errorResponse errorResponse) *AuthVerify {
	return &AuthVerify{
		ErrorResponse: errorResponse,
	}
}

func (h *AuthVerify) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("auth-verify")

	currentUser := getCurrentUser(req)

	responseBytes, err := json.Marshal(api.AuthResponse{
		Message: "Token is valid",
		User:    api.MapAuthUser(currentUser),
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	w.Write(responseBytes)
}

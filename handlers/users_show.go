package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/store"
	"github.com/tedsuo/rata"
)

type UsersShow struct {
	Store         store.UserStore
	ErrorResponse errorResponse
}

func NewUsersShow(userStore store.UserStore, errorResponse errorResponse) *UsersShow {
	return &UsersShow{
		Store:         userStore,
		ErrorResponse: errorResponse,
	}
}

func (h *UsersShow) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("users-show")

	if h.Store == nil {
		err := errors.New("user store is not available")
		h.ErrorResponse.ServiceUnavailable(logger, w, err, "Service temporarily unavailable")
		return
	}

	userID := rata.Param(req, "id")
	user, err := h.Store.ByID(userID)
	if err != nil {
		if err == store.ErrNotFound {
			h.ErrorResponse.NotFound(logger, w, err, "User not found")
			return
		}
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	responseBytes, err := json.Marshal(api.UserResponse{
		Message: "User retrieved successfully",
		User:    api.MapUserRecord(user),
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	w.Write(responseBytes)
}

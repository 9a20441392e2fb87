package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/store"
)

type UsersIndex struct {
	Store         store.UserStore
	ErrorResponse errorResponse
}

func NewUsersIndex(userStore store.UserStore, errorResponse errorResponse) *UsersIndex {
	return &UsersIndex{
		Store:         userStore,
		ErrorResponse: errorResponse,
	}
}

func (h *UsersIndex) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("users-index")

	if h.Store == nil {
		err := errors.New("user store is not available")
		h.ErrorResponse.ServiceUnavailable(logger, w, err, "Service temporarily unavailable")
		return
	}

	users, err := h.Store.All()
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	responseBytes, err := json.Marshal(api.UsersResponse{
		Message: "Users retrieved successfully",
		Users:   api.MapUserRecords(users),
		Count:   len(users),
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	w.Write(responseBytes)
}

package handlers

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/store"
)

// UsersLogin is the original session-style login. It checks the
// credentials and echoes the profile back without issuing a token.
type UsersLogin struct {
	Store          store.UserStore
	Mapper         api.UserMapper
	PasswordHasher passwordHasher
	ErrorResponse  errorResponse
}

func NewUsersLogin(userStore store.UserStore, mapper api.UserMapper, passwordHasher passwordHasher,
	errorResponse errorResponse) *UsersLogin {
	return &UsersLogin{
		Store:          userStore,
		Mapper:         mapper,
		PasswordHasher: passwordHasher,
		ErrorResponse:  errorResponse,
	}
}

func (h *UsersLogin) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("users-login")

	if h.Store == nil {
		err := errors.New("user store is not available")
		h.ErrorResponse.ServiceUnavailable(logger, w, err, "Service temporarily unavailable")
		return
	}

	requestBytes, err := ioutil.ReadAll(req.Body)
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	creds, err := h.Mapper.AsCredentials(requestBytes)
	if err != nil {
		h.ErrorResponse.BadRequest(logger, w, err, "Email and password are required")
		return
	}

	user, err := h.Store.ByEmail(creds.Email)
	if err != nil {
		if err == store.ErrNotFound {
			h.ErrorResponse.Unauthorized(logger, w, errors.New("unknown email"), "Invalid email or password")
			return
		}
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	err = h.PasswordHasher.Compare(user.Password, creds.Password)
	if err != nil {
		h.ErrorResponse.Unauthorized(logger, w, err, "Invalid email or password")
		return
	}

	responseBytes, err := json.Marshal(api.LegacyLoginResponse{
		Message: "Login successful",
		User:    api.MapLegacyUser(user),
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	w.Write(responseBytes)
}

package handlers

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/store"
)

type AuthLogin struct {
	Store          store.UserStore
	Mapper         api.UserMapper
	PasswordHasher passwordHasher
	TokenGenerator tokenGenerator
	ErrorResponse  errorResponse
}

func NewAuthLogin(userStore store.UserStore, mapper api.UserMapper, passwordHasher passwordHasher,
	tokenGenerator tokenGenerator, errorResponse errorResponse) *AuthLogin {
	return &AuthLogin{
		Store:          userStore,
		Mapper:         mapper,
		PasswordHasher: passwordHasher,
		TokenGenerator: tokenGenerator,
		ErrorResponse:  errorResponse,
	}
}

func (h *AuthLogin) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("auth-login")

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

	creds, err := h.Mapper.AsAuthCredentials(requestBytes)
	if err != nil {
		if validationErr, ok := err.(api.ValidationError); ok {
			h.ErrorResponse.BadRequest(logger, w, validationErr, "Validation failed")
			return
		}
		h.ErrorResponse.BadRequest(logger, w, err, "No data provided")
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

	token, err := h.TokenGenerator.Generate(user.ID(), user.Email)
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	responseBytes, err := json.Marshal(api.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    api.MapAuthUser(user),
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	w.Write(responseBytes)
}

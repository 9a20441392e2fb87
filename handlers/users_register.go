package handlers

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/store"
)

// UsersRegister is the original registration endpoint. Unlike the auth
// variant it records a full name and phone number and issues no token.
type UsersRegister struct {
	Store          store.UserStore
	Mapper         api.UserMapper
	PasswordHasher passwordHasher
	ErrorResponse  errorResponse
}

func NewUsersRegister(userStore store.UserStore, mapper api.UserMapper, passwordHasher passwordHasher,
	errorResponse errorResponse) *UsersRegister {
	return &UsersRegister{
		Store:          userStore,
		Mapper:         mapper,
		PasswordHasher: passwordHasher,
		ErrorResponse:  errorResponse,
	}
}

func (h *UsersRegister) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("users-register")

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

	user, err := h.Mapper.AsRegistration(requestBytes)
	if err != nil {
		if validationErr, ok := err.(api.ValidationError); ok {
			h.ErrorResponse.BadRequest(logger, w, validationErr, "Validation failed")
			return
		}
		h.ErrorResponse.BadRequest(logger, w, err, "No data provided")
		return
	}

	_, err = h.Store.ByEmail(user.Email)
	if err == nil {
		validationErr := api.NewValidationError(map[string]string{"email": "Email already registered"})
		h.ErrorResponse.BadRequest(logger, w, validationErr, "Validation failed")
		return
	}
	if err != store.ErrNotFound {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	hashedPassword, err := h.PasswordHasher.Hash(user.Password)
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}
	user.Password = hashedPassword

	createdUser, err := h.Store.Create(user)
	if err != nil {
		if _, ok := err.(store.DuplicateKeyError); ok {
			validationErr := api.NewValidationError(map[string]string{"email": "Email already registered"})
			h.ErrorResponse.BadRequest(logger, w, validationErr, "Validation failed")
			return
		}
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	responseBytes, err := json.Marshal(api.RegistrationResponse{
		Message: "User registered successfully",
		User:    api.MapRegisteredUser(createdUser),
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write(responseBytes)
}

package handlers

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/Spidey0819/Tutorial-7/api"
	"github.com/Spidey0819/Tutorial-7/store"
)

//go:generate counterfeiter -o fakes/token_generator.go --fake-name TokenGenerator . tokenGenerator
type tokenGenerator interface {
	Generate(userID, email string) (string, error)
}

//go:generate counterfeiter -o fakes/password_hasher.go --fake-name PasswordHasher . passwordHasher
type passwordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hashedPassword, plaintext string) error
}

type AuthRegister struct {
	Store          store.UserStore
	Mapper         api.UserMapper
	PasswordHasher passwordHasher
	TokenGenerator tokenGenerator
	ErrorResponse  errorResponse
}

func NewAuthRegister(userStore store.UserStore, mapper api.UserMapper, passwordHasher passwordHasher,
	tokenGenerator tokenGenerator, errorResponse errorResponse) *AuthRegister {
	return &AuthRegister{
		Store:          userStore,
		Mapper:         mapper,
		PasswordHasher: passwordHasher,
		TokenGenerator: tokenGenerator,
		ErrorResponse:  errorResponse,
	}
}

func (h *AuthRegister) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("auth-register")

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

	user, err := h.Mapper.AsAuthRegistration(requestBytes)
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
		// two registrations for the same email can race past the
		// lookup above, so the unique index gets the same envelope
		if _, ok := err.(store.DuplicateKeyError); ok {
			validationErr := api.NewValidationError(map[string]string{"email": "Email already registered"})
			h.ErrorResponse.BadRequest(logger, w, validationErr, "Validation failed")
			return
		}
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	token, err := h.TokenGenerator.Generate(createdUser.ID(), createdUser.Email)
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	responseBytes, err := json.Marshal(api.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    api.MapCreatedAuthUser(createdUser),
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write(responseBytes)
}

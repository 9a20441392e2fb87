package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"code.cloudfoundry.org/cf-networking-helpers/middleware"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerflags"
	"github.com/Spidey0819/Tutorial-7/cmd/common"
	"github.com/Spidey0819/Tutorial-7/store"
	"github.com/Spidey0819/Tutorial-7/tokens"
)

type Key string

const CurrentUserKey = Key("currentUser")

const MAX_REQ_BODY_SIZE = 10 << 20 // 10 MB

//go:generate counterfeiter -o fakes/http_handler.go --fake-name HTTPHandler . http_handler
type http_handler interface {
	http.Handler
}

//go:generate counterfeiter -o fakes/token_checker.go --fake-name TokenChecker . tokenChecker
type tokenChecker interface {
	CheckToken(token string) (tokens.TokenData, error)
}

// Authenticator guards routes behind a bearer token and stores the
// matching user on the request context.
type Authenticator struct {
	TokenChecker  tokenChecker
	UserStore     store.UserStore
	ErrorResponse errorResponse
}

func getLogger(req *http.Request) lager.Logger {
	if v := req.Context().Value(middleware.Key("logger")); v != nil {
		if logger, ok := v.(lager.Logger); ok {
			return logger
		}
	}
	logger, _ := lagerflags.NewFromConfig("tutorial7.product-api", common.GetLagerConfig())
	return logger
}

func getCurrentUser(req *http.Request) store.User {
	if v := req.Context().Value(CurrentUserKey); v != nil {
		if user, ok := v.(store.User); ok {
			return user
		}
	}
	return store.User{}
}

func (a *Authenticator) Wrap(handle http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logger := getLogger(req)
		logger = logger.Session("authentication")

		if a.UserStore == nil {
			err := errors.New("user store is not available")
			a.ErrorResponse.ServiceUnavailable(logger, w, err, "Database unavailable")
			return
		}

		var token string
		authorization := req.Header["Authorization"]
		if len(authorization) > 0 {
			parts := strings.Split(authorization[0], " ")
			if len(parts) < 2 {
				err := errors.New("malformed authorization header")
				a.ErrorResponse.Unauthorized(logger, w, err, "Invalid token format")
				return
			}
			token = parts[1]
		}

		if token == "" {
			err := errors.New("no token provided")
			a.ErrorResponse.Unauthorized(logger, w, err, "Token is missing")
			return
		}

		tokenData, err := a.TokenChecker.CheckToken(token)
		if err != nil {
			description := "Token is invalid"
			if err == tokens.ErrTokenExpired {
				description = "Token has expired"
			}
			a.ErrorResponse.Unauthorized(logger, w, err, description)
			return
		}

		user, err := a.UserStore.ByID(tokenData.UserID)
		if err != nil {
			if err == store.ErrNotFound {
				a.ErrorResponse.Unauthorized(logger, w, err, "User not found")
				return
			}
			a.ErrorResponse.Unauthorized(logger, w, err, "Token validation failed")
			return
		}

		req.Body = http.MaxBytesReader(w, req.Body, MAX_REQ_BODY_SIZE)

		contextWithUser := context.WithValue(req.Context(), CurrentUserKey, user)
		req = req.WithContext(contextWithUser)
		handle.ServeHTTP(w, req)
	})
}

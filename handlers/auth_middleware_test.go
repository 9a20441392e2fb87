package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/cf-networking-helpers/middleware"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/Spidey0819/Tutorial-7/handlers"
	"github.com/Spidey0819/Tutorial-7/handlers/fakes"
	"github.com/Spidey0819/Tutorial-7/store"
	storeFakes "github.com/Spidey0819/Tutorial-7/store/fakes"
	"github.com/Spidey0819/Tutorial-7/tokens"
	"go.mongodb.org/mongo-driver/bson/primitive"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Authentication middleware", func() {
	var (
		request       *http.Request
		unprotected   http.HandlerFunc
		protected     http.Handler
		authenticator *handlers.Authenticator

		resp                 *httptest.ResponseRecorder
		fakeTokenChecker     *fakes.TokenChecker
		fakeUserStore        *storeFakes.UserStore
		fakeErrorResponse    *fakes.ErrorResponse
		logger               *lagertest.TestLogger
		expectedLogger       lager.Logger
		currentUser          store.User
		unprotectedCallCount = 0
	)

	BeforeEach(func() {
		var err error
		request, err = http.NewRequest("GET", "/api/auth/verify", bytes.NewBuffer([]byte{}))
		Expect(err).NotTo(HaveOccurred())
		request.Header.Set("Authorization", "Bearer correct-token")

		mongoID, err := primitive.ObjectIDFromHex("64a1f0b2c3d4e5f601234567")
		Expect(err).NotTo(HaveOccurred())
		currentUser = store.User{
			MongoID:  mongoID,
			Name:     "Ada",
			Email:    "ada@example.com",
			IsActive: true,
		}

		fakeTokenChecker = &fakes.TokenChecker{}
		fakeTokenChecker.CheckTokenReturns(tokens.TokenData{
			UserID: "64a1f0b2c3d4e5f601234567",
			Email:  "ada@example.com",
		}, nil)

		fakeUserStore = &storeFakes.UserStore{}
		fakeUserStore.ByIDReturns(currentUser, nil)

		logger = lagertest.NewTestLogger("test-logger")

		expectedLogger = lager.NewLogger("test-logger").Session("authentication")

		testSink := lagertest.NewTestSink()
		expectedLogger.RegisterSink(testSink)
		expectedLogger.RegisterSink(lager.NewWriterSink(GinkgoWriter, lager.DEBUG))

		unprotected = func(w http.ResponseWriter, r *http.Request) {
			unprotectedCallCount += 1
			By("passing the resolved user to the unprotected request")
			user := r.Context().Value(handlers.CurrentUserKey)
			Expect(user).ToNot(BeNil())
			Expect(user).To(Equal(currentUser))

			Expect(w).To(Equal(resp))
		}
		unprotectedCallCount = 0
		fakeErrorResponse = &fakes.ErrorResponse{}

		authenticator = &handlers.Authenticator{
			TokenChecker:  fakeTokenChecker,
			UserStore:     fakeUserStore,
			ErrorResponse: fakeErrorResponse,
		}

		protected = authenticator.Wrap(unprotected)

		resp = httptest.NewRecorder()
	})

	makeRequest := func() {
		if logger != nil {
			contextWithLogger := context.WithValue(request.Context(), middleware.Key("logger"), logger)
			request = request.WithContext(contextWithLogger)
		}
		protected.ServeHTTP(resp, request)
	}

	It("calls into the unprotected handler", func() {
		makeRequest()
		Expect(unprotectedCallCount).To(Equal(1))
	})

	It("checks the authorization bearer token and loads the user", func() {
		makeRequest()
		Expect(unprotectedCallCount).To(Equal(1))

		Expect(fakeTokenChecker.CheckTokenCallCount()).To(Equal(1))
		Expect(fakeTokenChecker.CheckTokenArgsForCall(0)).To(Equal("correct-token"))

		Expect(fakeUserStore.ByIDCallCount()).To(Equal(1))
		Expect(fakeUserStore.ByIDArgsForCall(0)).To(Equal("64a1f0b2c3d4e5f601234567"))
	})

	Context("when the logger isn't on the request", func() {
		BeforeEach(func() {
			logger = nil
		})
		It("still works", func() {
			makeRequest()
			Expect(unprotectedCallCount).To(Equal(1))
		})
	})

	Context("when the header has a lowercase bearer token", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "bearer correct-token")
		})

		It("still extracts the token", func() {
			makeRequest()
			Expect(unprotectedCallCount).To(Equal(1))

			Expect(fakeTokenChecker.CheckTokenCallCount()).To(Equal(1))
			Expect(fakeTokenChecker.CheckTokenArgsForCall(0)).To(Equal("correct-token"))
		})
	})

	Context("when the user store is not available", func() {
		BeforeEach(func() {
			authenticator.UserStore = nil
			protected = authenticator.Wrap(unprotected)
		})

		It("calls the service unavailable error handler", func() {
			makeRequest()
			Expect(unprotectedCallCount).To(Equal(0))

			Expect(fakeErrorResponse.ServiceUnavailableCallCount()).To(Equal(1))

			l, w, err, description := fakeErrorResponse.ServiceUnavailableArgsForCall(0)
			Expect(l).To(Equal(expectedLogger))
			Expect(w).To(Equal(resp))
			Expect(err).To(MatchError("user store is not available"))
			Expect(description).To(Equal("Database unavailable"))
		})
	})

	Context("when the request does not have any authorization header", func() {
		BeforeEach(func() {
			request.Header.Del("Authorization")
		})

		It("calls the unauthorized error handler", func() {
			makeRequest()
			Expect(unprotectedCallCount).To(Equal(0))

			Expect(fakeErrorResponse.UnauthorizedCallCount()).To(Equal(1))

			l, w, err, description := fakeErrorResponse.UnauthorizedArgsForCall(0)
			Expect(l).To(Equal(expectedLogger))
			Expect(w).To(Equal(resp))
			Expect(err).To(MatchError("no token provided"))
			Expect(description).To(Equal("Token is missing"))
		})
	})

	Context("when the authorization header has no spaces", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "correct-token")
		})

		It("rejects the token format", func() {
			makeRequest()
			Expect(unprotectedCallCount).To(Equal(0))

			Expect(fakeErrorResponse.UnauthorizedCallCount()).To(Equal(1))

			l, w, err, description := fakeErrorResponse.UnauthorizedArgsForCall(0)
			Expect(l).To(Equal(expectedLogger))
			Expect(w).To(Equal(resp))
			Expect(err).To(MatchError("malformed authorization header"))
			Expect(description).To(Equal("Invalid token format"))
		})
	})

	Context("when the bearer token is empty", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "Bearer ")
		})

		It("reports the token as missing", func() {
			makeRequest()
			Expect(unprotectedCallCount).To(Equal(0))

			Expect(fakeErrorResponse.UnauthorizedCallCount()).To(Equal(1))

			_, _, err, description := fakeErrorResponse.UnauthorizedArgsForCall(0)
			Expect(err).To(MatchError("no token provided"))
			Expect(description).To(Equal("Token is missing"))
		})
	})

	Context("when the token has expired", func() {
		BeforeEach(func() {
			fakeTokenChecker.CheckTokenReturns(tokens.TokenData{}, tokens.ErrTokenExpired)
		})

		It("calls the unauthorized error handler", func() {
			makeRequest()
			Expect(unprotectedCallCount).To(Equal(0))

			Expect(fakeErrorResponse.UnauthorizedCallCount()).To(Equal(1))

			l, w, err, description := fakeErrorResponse.UnauthorizedArgsForCall(0)
			Expect(l).To(Equal(expectedLogger))
			Expect(w).To(Equal(resp))
			Expect(err).To(Equal(tokens.ErrTokenExpired))
			Expect(description).To(Equal("Token has expired"))
		})
	})

	Context("when the token cannot be verified", func() {
		BeforeEach(func() {
			fakeTokenChecker.CheckTokenReturns(tokens.TokenData{}, tokens.ErrTokenInvalid)
		})

		It("calls the unauthorized error handler", func() {
			makeRequest()
			Expect(unprotectedCallCount).To(Equal(0))

			Expect(fakeErrorResponse.UnauthorizedCallCount()).To(Equal(1))

			_, _, err, description := fakeErrorResponse.UnauthorizedArgsForCall(0)
			Expect(err).To(Equal(tokens.ErrTokenInvalid))
			Expect(description).To(Equal("Token is invalid"))
		})
	})

	Context("when the token's user no longer exists", func() {
		BeforeEach(func() {
			fakeUserStore.ByIDReturns(store.User{}, store.ErrNotFound)
		})

		It("calls the unauthorized error handler", func() {
			makeRequest()
			Expect(unprotectedCallCount).To(Equal(0))

			Expect(fakeErrorResponse.UnauthorizedCallCount()).To(Equal(1))

			l, w, err, description := fakeErrorResponse.UnauthorizedArgsForCall(0)
			Expect(l).To(Equal(expectedLogger))
			Expect(w).To(Equal(resp))
			Expect(err).To(Equal(store.ErrNotFound))
			Expect(description).To(Equal("User not found"))
		})
	})

	Context("when the user lookup fails", func() {
		BeforeEach(func() {
			fakeUserStore.ByIDReturns(store.User{}, errors.New("banana"))
		})

		It("calls the unauthorized error handler", func() {
			makeRequest()
			Expect(unprotectedCallCount).To(Equal(0))

			Expect(fakeErrorResponse.UnauthorizedCallCount()).To(Equal(1))

			_, _, err, description := fakeErrorResponse.UnauthorizedArgsForCall(0)
			Expect(err).To(MatchError("banana"))
			Expect(description).To(Equal("Token validation failed"))
		})
	})
})
